// Package moisture is an example extension that tracks water-related
// per-block state for soil and snow blocks.
package moisture

import (
	"github.com/vk/voxelgridgo/internal/block"
	"github.com/vk/voxelgridgo/internal/extradata"
)

// Module implements the extradata.Module interface for this package.
type Module struct{}

// Register declares the module's extra-data fields with the engine.
func (m *Module) Register(r *extradata.Registry) {
	r.RegisterField(extradata.Declaration{
		Name: "moisture.soilWetness",
		Bits: 8,
		Predicate: func(b *block.Block) (bool, error) {
			return b.HasTag("soil"), nil
		},
		Source: "modules/moisture",
	})
	r.RegisterField(extradata.Declaration{
		Name: "moisture.snowDepth",
		Bits: 4,
		Predicate: func(b *block.Block) (bool, error) {
			return b.HasTag("snow"), nil
		},
		Source: "modules/moisture",
	})
}
