// Package app wires the pieces of the extra-data pipeline together: it loads
// the world manifest, populates the block registry, collects field
// declarations from compiled-in modules and from the manifest, and builds
// the immutable slot manager.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/vk/voxelgridgo/internal/block"
	"github.com/vk/voxelgridgo/internal/config"
	"github.com/vk/voxelgridgo/internal/ctxlog"
	"github.com/vk/voxelgridgo/internal/extradata"
	"github.com/vk/voxelgridgo/internal/hcl"
	"github.com/vk/voxelgridgo/internal/tera"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	blocks  *block.Registry
	manager *extradata.Manager
}

// New is the constructor for the main application. It runs the whole
// initialization pipeline once and returns a fully built App. Initialization
// failures (unreadable manifest, panicking predicate) are fatal startup
// errors and panic; main recovers them into a clean exit message.
func New(outW io.Writer, cfg *Config, loader config.Loader, modules ...extradata.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.ManifestPath)
	if err != nil {
		panic(fmt.Errorf("failed to load world manifest: %w", err))
	}
	logger.Debug("Manifest loaded and translated into unified model.")

	blocks := block.NewRegistry()
	for _, def := range model.Blocks {
		blocks.Register(block.New(def.ID, def.Tags...))
	}
	logger.Debug("Block registry populated.", "count", blocks.Len())

	reg := extradata.NewRegistry()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All extension modules registered.", "count", len(modules))

	for _, f := range model.Fields {
		reg.RegisterField(extradata.Declaration{
			Name:      f.Name,
			Bits:      f.Bits,
			Predicate: hcl.CompilePredicate(f.AppliesTo),
			Source:    f.DeclRange.String(),
		})
	}
	logger.Debug("Manifest field declarations registered.", "count", len(model.Fields))

	manager, err := extradata.New(ctx, reg, blocks.All(), tera.DefaultFactories())
	if err != nil {
		// A broken predicate means the session cannot safely proceed.
		panic(err)
	}

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		blocks:  blocks,
		manager: manager,
	}
}

// Run prints the slot assignment table and instantiates one chunk's worth of
// arrays as a smoke check that every slot factory works.
func (a *App) Run(ctx context.Context) error {
	slots := a.manager.Slots()
	names := make([]string, 0, len(slots))
	for name := range slots {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(a.outW, "%d field(s) packed into %d slot(s):\n", len(slots), a.manager.SlotCount())
	for _, name := range names {
		fmt.Fprintf(a.outW, "  %-40s slot %d\n", name, slots[name])
	}

	arrays := a.manager.InstantiateAll(a.config.ChunkSizeX, a.config.ChunkSizeY, a.config.ChunkSizeZ)
	fmt.Fprintf(a.outW, "instantiated %d array(s) for a %dx%dx%d chunk\n",
		len(arrays), a.config.ChunkSizeX, a.config.ChunkSizeY, a.config.ChunkSizeZ)
	return nil
}

// Manager returns the application's slot manager. This is primarily for testing.
func (a *App) Manager() *extradata.Manager {
	return a.manager
}

// Blocks returns the application's block registry. This is primarily for testing.
func (a *App) Blocks() *block.Registry {
	return a.blocks
}
