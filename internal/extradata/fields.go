// Package extradata assigns storage slots to the extra per-block data fields
// that extensions register for their own use. Fields of the same bit width
// whose applicability sets never overlap are aliased onto one backing array
// per chunk, so rarely-used or mutually exclusive fields cost no extra space.
//
// Extensions declare fields through the explicit registration API: implement
// the Module interface and register Declaration values during startup.
// The Manager is built once per session and is immutable afterwards.
package extradata

import "github.com/vk/voxelgridgo/internal/block"

// Predicate decides, for a single block, whether a field applies to it.
// A returned error marks the declaration as misconfigured: it is logged and
// the declaration is dropped. A panic inside a predicate aborts
// initialization entirely, since it indicates a broken extension.
type Predicate func(b *block.Block) (bool, error)

// Declaration is one extra-data field as registered by an extension.
// Declarations are collected during startup and discarded once the slot
// assignment has been computed.
type Declaration struct {
	// Name is the globally unique field name, conventionally prefixed with
	// the registering module, e.g. "moisture.soilWetness".
	Name string

	// Bits is the requested storage width per block. It must be one of the
	// widths the factory table passed to New supports (4, 8 or 16 by
	// default).
	Bits int

	// Predicate reports whether the field applies to a given block.
	Predicate Predicate

	// Source identifies where the declaration came from (module name or
	// manifest location), used in diagnostics only.
	Source string
}

// Registry collects field declarations during startup. It performs no
// validation itself; declarations are validated when the Manager is built,
// so a misconfigured extension cannot abort registration of the others.
type Registry struct {
	decls []Declaration
}

// NewRegistry creates an empty field registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterField records a field declaration.
func (r *Registry) RegisterField(d Declaration) {
	r.decls = append(r.decls, d)
}

// Declarations returns the registered declarations in registration order.
func (r *Registry) Declarations() []Declaration {
	out := make([]Declaration, len(r.decls))
	copy(out, r.decls)
	return out
}

// Module is the interface extensions implement to register their extra-data
// fields with the engine.
type Module interface {
	Register(r *Registry)
}
