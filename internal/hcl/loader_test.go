package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/voxelgridgo/internal/block"
)

const sampleManifest = `
block "core.grass" {
  tags = ["soil", "plant"]
}

block "core.stone" {
}

block "core.glowstone" {
  tags = ["luminous"]
}

field "moisture.soilWetness" {
  bits       = 8
  applies_to = contains(block.tags, "soil")
}

field "debug.everywhere" {
  bits       = 4
  applies_to = true
}
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, sampleManifest)
	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, model.Blocks, 3)
	assert.Equal(t, "core.grass", model.Blocks[0].ID)
	assert.Equal(t, []string{"soil", "plant"}, model.Blocks[0].Tags)
	assert.Equal(t, "core.stone", model.Blocks[1].ID)
	assert.Empty(t, model.Blocks[1].Tags)

	require.Len(t, model.Fields, 2)
	assert.Equal(t, "moisture.soilWetness", model.Fields[0].Name)
	assert.Equal(t, 8, model.Fields[0].Bits)
	assert.Equal(t, "debug.everywhere", model.Fields[1].Name)
	assert.Equal(t, 4, model.Fields[1].Bits)
}

func TestLoader_LoadDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blocks.hcl"),
		[]byte("block \"core.dirt\" {\n  tags = [\"soil\"]\n}\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fields.hcl"),
		[]byte("field \"f\" {\n  bits = 8\n  applies_to = true\n}\n"), 0600))

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, model.Blocks, 1)
	assert.Len(t, model.Fields, 1)
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		manifest string
		errPart  string
	}{
		{
			name:     "syntax error",
			manifest: "block \"x\" {\n",
			errPart:  "failed to parse",
		},
		{
			name:     "missing bits attribute",
			manifest: "field \"f\" {\n  applies_to = true\n}\n",
			errPart:  "failed to decode",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeManifest(t, tc.manifest)
			_, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestLoader_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}

func TestCompilePredicate(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, sampleManifest)
	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	grass := block.New("core.grass", "soil", "plant")
	stone := block.New("core.stone")

	soilOnly := CompilePredicate(model.Fields[0].AppliesTo)
	ok, err := soilOnly(grass)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = soilOnly(stone)
	require.NoError(t, err)
	assert.False(t, ok)

	everywhere := CompilePredicate(model.Fields[1].AppliesTo)
	for _, b := range []*block.Block{grass, stone} {
		ok, err := everywhere(b)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestCompilePredicate_NonBooleanResult(t *testing.T) {
	t.Parallel()

	manifest := "field \"f\" {\n  bits = 8\n  applies_to = block.id\n}\n"
	path := writeManifest(t, manifest)
	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	pred := CompilePredicate(model.Fields[0].AppliesTo)
	_, err = pred(block.New("core.stone"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must evaluate to bool")
}

func TestCompilePredicate_UndefinedVariable(t *testing.T) {
	t.Parallel()

	manifest := "field \"f\" {\n  bits = 8\n  applies_to = chunk.biome == \"desert\"\n}\n"
	path := writeManifest(t, manifest)
	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	pred := CompilePredicate(model.Fields[0].AppliesTo)
	_, err = pred(block.New("core.sand"))
	require.Error(t, err, "expressions may only reference the block variable")
}
