// Package hcl is the HCL implementation of the world manifest loader. A
// manifest declares block types and, optionally, extra-data fields whose
// applicability is an HCL expression evaluated once per block:
//
//	block "core.grass" {
//	  tags = ["soil", "plant"]
//	}
//
//	field "moisture.soilWetness" {
//	  bits       = 8
//	  applies_to = contains(block.tags, "soil")
//	}
package hcl

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/voxelgridgo/internal/config"
	"github.com/vk/voxelgridgo/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// blockSchema decodes a `block` manifest entry.
type blockSchema struct {
	ID   string   `hcl:"id,label"`
	Tags []string `hcl:"tags,optional"`
}

// fieldSchema decodes a `field` manifest entry. The applicability expression
// is kept unevaluated; it is compiled into a predicate and run once per
// block during slot allocation.
type fieldSchema struct {
	Name      string         `hcl:"name,label"`
	Bits      int            `hcl:"bits"`
	AppliesTo hcl.Expression `hcl:"applies_to"`
}

// fileRoot decodes all top-level blocks from any manifest file.
type fileRoot struct {
	Blocks []*blockSchema `hcl:"block,block"`
	Fields []*fieldSchema `hcl:"field,block"`
}

// Load parses the manifest at path (a single .hcl file or a directory of
// them) into the format-agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := findManifestFiles(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest file %s: %w", file, diags)
		}

		for _, b := range root.Blocks {
			model.Blocks = append(model.Blocks, &config.BlockDefinition{
				ID:   b.ID,
				Tags: b.Tags,
			})
		}
		for _, f := range root.Fields {
			model.Fields = append(model.Fields, &config.FieldDefinition{
				Name:      f.Name,
				Bits:      f.Bits,
				AppliesTo: f.AppliesTo,
				DeclRange: f.AppliesTo.Range(),
			})
		}
	}

	logger.Debug("Manifest loaded.", "blocks", len(model.Blocks), "fields", len(model.Fields))
	return model, nil
}

// findManifestFiles resolves path to the list of .hcl files it names: the
// file itself, or every .hcl file under the directory.
func findManifestFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("manifest path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("manifest path %s contains no .hcl files", path)
	}
	return files, nil
}
