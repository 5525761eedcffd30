// Package config defines the format-agnostic world manifest model and the
// Loader interface implemented by format-specific packages (see
// internal/hcl). The model carries the raw applicability expressions;
// compiling them into predicates is the loader package's concern.
package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Model is the loaded world manifest: the session's block types and any
// extra-data fields declared in configuration rather than in Go code.
type Model struct {
	Blocks []*BlockDefinition
	Fields []*FieldDefinition
}

// BlockDefinition declares one block type.
type BlockDefinition struct {
	ID   string
	Tags []string
}

// FieldDefinition declares one extra-data field. AppliesTo is the raw
// per-block applicability expression; it is evaluated once per known block
// during slot allocation.
type FieldDefinition struct {
	Name      string
	Bits      int
	AppliesTo hcl.Expression

	// DeclRange locates the declaration in its source file, for diagnostics.
	DeclRange hcl.Range
}

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads the manifest from the given path (a file or a directory of
	// files) and translates it into the format-agnostic model.
	Load(ctx context.Context, path string) (*Model, error)
}
