// Package block defines the opaque block type and the session-wide block
// registry. The extra-data pipeline only ever needs block identity and tag
// membership; everything else about a block lives outside this system.
package block

import "sort"

// Block is a single registered block type. Blocks are compared by pointer
// identity: the registry hands out one instance per ID for the lifetime of
// the session.
type Block struct {
	id   string
	tags map[string]struct{}
}

// New creates a block with the given ID and tags.
func New(id string, tags ...string) *Block {
	b := &Block{id: id, tags: make(map[string]struct{}, len(tags))}
	for _, t := range tags {
		b.tags[t] = struct{}{}
	}
	return b
}

// ID returns the block's unique identifier.
func (b *Block) ID() string {
	return b.id
}

// HasTag reports whether the block carries the given tag.
func (b *Block) HasTag(tag string) bool {
	_, ok := b.tags[tag]
	return ok
}

// Tags returns the block's tags in sorted order.
func (b *Block) Tags() []string {
	tags := make([]string, 0, len(b.tags))
	for t := range b.tags {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
