package extradata

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/voxelgridgo/internal/block"
	"github.com/vk/voxelgridgo/internal/ctxlog"
	"github.com/vk/voxelgridgo/internal/tera"
)

// Manager is the immutable result of slot allocation: it knows which slot
// each field name lives in and how to construct the backing array for each
// slot. It is built once during session startup; afterwards concurrent reads
// and concurrent InstantiateAll calls are safe without locking.
type Manager struct {
	slots         map[string]int
	slotFactories []tera.Factory
}

// New runs the full allocation pipeline: evaluate every registered
// declaration against every known block, build the disjointness graph per
// bit-width group, compute its minimum clique cover, and assign one slot per
// clique. Width groups are processed in ascending width order and cliques in
// cover order, so the assignment is deterministic.
//
// Malformed declarations are logged and skipped. A panicking predicate is
// the only fatal condition.
func New(ctx context.Context, reg *Registry, blocks []*block.Block, factories tera.FactoryTable) (*Manager, error) {
	logger := ctxlog.FromContext(ctx)
	widths := factories.Widths()

	groups, err := resolveApplicability(ctx, reg.Declarations(), blocks, widths)
	if err != nil {
		return nil, fmt.Errorf("resolving extra-data applicability: %w", err)
	}

	m := &Manager{slots: make(map[string]int)}
	for _, width := range widths {
		fields := groups[width]
		if len(fields) == 0 {
			continue
		}
		cover := findCliqueCover(disjointnessGraph(fields))
		for _, clique := range cover {
			for _, name := range clique {
				m.slots[name] = len(m.slotFactories)
			}
			m.slotFactories = append(m.slotFactories, factories[width])
		}
	}

	logger.Info("Extra data slots registered.", "fields", len(m.slots), "slots", len(m.slotFactories), "mapping", m.summary())
	return m, nil
}

// SlotIndex returns the slot assigned to the given field name. Most
// extra-data access paths address storage by this index rather than by name.
// Asking for a name that was never validly registered is a caller bug and
// returns an error immediately.
func (m *Manager) SlotIndex(name string) (int, error) {
	index, ok := m.slots[name]
	if !ok {
		return 0, fmt.Errorf("extra-data name not registered: %q", name)
	}
	return index, nil
}

// SlotCount returns the total number of allocated slots.
func (m *Manager) SlotCount() int {
	return len(m.slotFactories)
}

// Slots returns a copy of the full name-to-slot mapping.
func (m *Manager) Slots() map[string]int {
	out := make(map[string]int, len(m.slots))
	for name, index := range m.slots {
		out[name] = index
	}
	return out
}

// InstantiateAll constructs one fresh backing array per slot for a chunk of
// the given dimensions, index-aligned with slot indices. Every call
// allocates independent storage, so concurrent calls are safe.
func (m *Manager) InstantiateAll(sizeX, sizeY, sizeZ int) []tera.Array {
	arrays := make([]tera.Array, len(m.slotFactories))
	for i, factory := range m.slotFactories {
		arrays[i] = factory(sizeX, sizeY, sizeZ)
	}
	return arrays
}

// summary renders the name->slot mapping in name order for the startup log.
func (m *Manager) summary() string {
	names := make([]string, 0, len(m.slots))
	for name := range m.slots {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s -> %d", name, m.slots[name])
	}
	return strings.Join(parts, ", ")
}
