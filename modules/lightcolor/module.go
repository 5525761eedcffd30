// Package lightcolor is an example extension that stores the hue and
// saturation of light emitted by luminous blocks.
package lightcolor

import (
	"github.com/vk/voxelgridgo/internal/block"
	"github.com/vk/voxelgridgo/internal/extradata"
)

// Module implements the extradata.Module interface for this package.
type Module struct{}

// Register declares the module's extra-data fields with the engine.
func (m *Module) Register(r *extradata.Registry) {
	r.RegisterField(extradata.Declaration{
		Name: "lightcolor.hue",
		Bits: 16,
		Predicate: func(b *block.Block) (bool, error) {
			return b.HasTag("luminous"), nil
		},
		Source: "modules/lightcolor",
	})
	r.RegisterField(extradata.Declaration{
		Name: "lightcolor.saturation",
		Bits: 8,
		Predicate: func(b *block.Block) (bool, error) {
			return b.HasTag("luminous"), nil
		},
		Source: "modules/lightcolor",
	})
}
