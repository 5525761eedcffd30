package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/vk/voxelgridgo/internal/block"
	"github.com/vk/voxelgridgo/internal/extradata"
)

// predicateFunctions are the functions available to applies_to expressions.
var predicateFunctions = map[string]function.Function{
	"contains": stdlib.ContainsFunc,
	"length":   stdlib.LengthFunc,
}

// CompilePredicate turns an applies_to expression into an applicability
// predicate. The expression sees the block under evaluation as an object
// variable `block` with attributes `id` (string) and `tags` (list of
// string), and must produce a boolean; anything else is reported as an
// evaluation error, which marks the declaration as misconfigured.
func CompilePredicate(expr hcl.Expression) extradata.Predicate {
	return func(b *block.Block) (bool, error) {
		evalCtx := &hcl.EvalContext{
			Variables: map[string]cty.Value{"block": blockValue(b)},
			Functions: predicateFunctions,
		}
		v, diags := expr.Value(evalCtx)
		if diags.HasErrors() {
			return false, fmt.Errorf("evaluating applies_to: %w", diags)
		}
		if v.IsNull() || !v.Type().Equals(cty.Bool) {
			return false, fmt.Errorf("applies_to must evaluate to bool, got %s", v.Type().FriendlyName())
		}
		return v.True(), nil
	}
}

// blockValue exposes a block to the expression evaluator.
func blockValue(b *block.Block) cty.Value {
	tags := b.Tags()
	tagList := cty.ListValEmpty(cty.String)
	if len(tags) > 0 {
		vals := make([]cty.Value, len(tags))
		for i, t := range tags {
			vals[i] = cty.StringVal(t)
		}
		tagList = cty.ListVal(vals)
	}
	return cty.ObjectVal(map[string]cty.Value{
		"id":   cty.StringVal(b.ID()),
		"tags": tagList,
	})
}
