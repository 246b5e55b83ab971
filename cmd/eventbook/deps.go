package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ersonp/eventbook-core/internal/application/executor"
	"github.com/ersonp/eventbook-core/internal/domain/ports"
	"github.com/ersonp/eventbook-core/internal/domain/services"
	"github.com/ersonp/eventbook-core/internal/infrastructure/config"
	"github.com/ersonp/eventbook-core/internal/infrastructure/snapshot/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only the executor is exposed for normal command flow.
type Deps struct {
	Config   *config.Config
	Executor *executor.Executor
}

// internalDeps holds all dependencies including low-level components.
type internalDeps struct {
	Deps
	model   *services.Model
	storage *sqlite.Repository
}

// baseDir resolves the data directory: the --dir flag if set, otherwise the
// current working directory.
func baseDir() (string, error) {
	if globalDir != "" {
		return globalDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// withDeps loads config, opens the snapshot store, restores the model, then
// calls the provided function. It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	return withInternalDeps(ctx, func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including low-level
// components. Used by commands that need direct model or storage access.
func withInternalDeps(ctx context.Context, fn func(*internalDeps) error) error {
	base, err := baseDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(base)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	setupLogging(cfg.Log.Level)

	storage, err := sqlite.NewRepository(config.SnapshotConfig{Path: cfg.SnapshotPath(base)})
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer storage.Close()

	if err := storage.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	model := services.NewModel()
	snap, err := storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	if err := model.Restore(snap); err != nil {
		return fmt.Errorf("restoring snapshot: %w", err)
	}

	deps := &internalDeps{
		Deps: Deps{
			Config:   cfg,
			Executor: executor.New(model, storage),
		},
		model:   model,
		storage: storage,
	}

	return fn(deps)
}

// withModel provides direct model access for read-only commands.
func withModel(ctx context.Context, fn func(*services.Model) error) error {
	return withInternalDeps(ctx, func(d *internalDeps) error {
		return fn(d.model)
	})
}

// withStorage provides direct storage access.
func withStorage(ctx context.Context, fn func(ports.Storage) error) error {
	return withInternalDeps(ctx, func(d *internalDeps) error {
		return fn(d.storage)
	})
}
