package extradata

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/voxelgridgo/internal/block"
	"github.com/vk/voxelgridgo/internal/ctxlog"
)

// blockSet is an applicability set: the blocks a field's predicate accepted.
type blockSet map[*block.Block]struct{}

func (s blockSet) disjoint(other blockSet) bool {
	for b := range s {
		if _, ok := other[b]; ok {
			return false
		}
	}
	return true
}

// resolveApplicability evaluates every valid declaration against every known
// block and groups the resulting applicability sets by bit width.
//
// Malformed declarations (empty name, nil predicate, unsupported width, a
// predicate that reports an evaluation error, or a name reused across
// different widths) are logged and skipped; they never abort resolution.
// A predicate panic is fatal and surfaces as an error.
func resolveApplicability(ctx context.Context, decls []Declaration, blocks []*block.Block, widths []int) (map[int]map[string]blockSet, error) {
	logger := ctxlog.FromContext(ctx)

	supported := make(map[int]struct{}, len(widths))
	groups := make(map[int]map[string]blockSet, len(widths))
	for _, w := range widths {
		supported[w] = struct{}{}
		groups[w] = make(map[string]blockSet)
	}

	// Tracks which width first claimed a name, to reject cross-width reuse:
	// the final name->slot table is flat, so the same name at two widths
	// would silently alias two unrelated fields.
	nameWidth := make(map[string]int)

	for _, d := range decls {
		if reason := validateDeclaration(d, supported); reason != "" {
			logger.Error("Unable to register extra block data field.",
				"name", d.Name, "bits", d.Bits, "source", d.Source, "reason", reason)
			continue
		}
		if w, seen := nameWidth[d.Name]; seen && w != d.Bits {
			logger.Error("Unable to register extra block data field: name already registered with a different bit width.",
				"name", d.Name, "bits", d.Bits, "existingBits", w, "source", d.Source)
			continue
		}
		if _, dup := groups[d.Bits][d.Name]; dup {
			logger.Warn("Extra block data field registered twice with the same bit width; the later registration wins.",
				"name", d.Name, "bits", d.Bits, "source", d.Source)
		}

		applicable, err := evaluate(d, blocks)
		if err != nil {
			var fatal *predicatePanicError
			if errors.As(err, &fatal) {
				return nil, err
			}
			logger.Error("Unable to register extra block data field: predicate evaluation failed.",
				"name", d.Name, "bits", d.Bits, "source", d.Source, "error", err)
			continue
		}

		nameWidth[d.Name] = d.Bits
		groups[d.Bits][d.Name] = applicable
	}

	return groups, nil
}

// validateDeclaration returns a non-empty reason if the declaration is
// malformed.
func validateDeclaration(d Declaration, supported map[int]struct{}) string {
	switch {
	case d.Name == "":
		return "field name is empty"
	case d.Predicate == nil:
		return "predicate is nil"
	default:
		if _, ok := supported[d.Bits]; !ok {
			return fmt.Sprintf("bit width %d is not supported; must be 4, 8 or 16", d.Bits)
		}
		return ""
	}
}

// predicatePanicError marks a predicate panic, which is always fatal.
type predicatePanicError struct {
	decl  Declaration
	block *block.Block
	value any
}

func (e *predicatePanicError) Error() string {
	return fmt.Sprintf("predicate for extra-data field %q (registered by %s) panicked on block %q: %v",
		e.decl.Name, e.decl.Source, e.block.ID(), e.value)
}

// evaluate runs the declaration's predicate over every block, collecting the
// applicability set.
func evaluate(d Declaration, blocks []*block.Block) (blockSet, error) {
	applicable := make(blockSet)
	for _, b := range blocks {
		ok, err := evaluateOne(d, b)
		if err != nil {
			return nil, err
		}
		if ok {
			applicable[b] = struct{}{}
		}
	}
	return applicable, nil
}

func evaluateOne(d Declaration, b *block.Block) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &predicatePanicError{decl: d, block: b, value: r}
		}
	}()
	ok, err = d.Predicate(b)
	if err != nil {
		return false, fmt.Errorf("block %q: %w", b.ID(), err)
	}
	return ok, nil
}
