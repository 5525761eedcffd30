package block

import "fmt"

// Registry holds every block type known to the session. It is populated once
// during startup and read-only afterwards.
type Registry struct {
	byID  map[string]*Block
	order []*Block
}

// NewRegistry creates an empty block registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Block)}
}

// Register adds a block to the registry. Registering the same ID twice is a
// programmer error.
func (r *Registry) Register(b *Block) {
	if _, exists := r.byID[b.ID()]; exists {
		panic(fmt.Sprintf("block with ID '%s' already registered", b.ID()))
	}
	r.byID[b.ID()] = b
	r.order = append(r.order, b)
}

// Get returns the block registered under the given ID.
func (r *Registry) Get(id string) (*Block, bool) {
	b, ok := r.byID[id]
	return b, ok
}

// All returns every registered block in registration order. The returned
// slice is a copy and safe for the caller to hold.
func (r *Registry) All() []*Block {
	out := make([]*Block, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered blocks.
func (r *Registry) Len() int {
	return len(r.order)
}
