package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/eventbook-core/internal/infrastructure/config"
	"github.com/ersonp/eventbook-core/internal/infrastructure/snapshot/sqlite"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new address book",
		Long:  "Creates a .eventbook directory with default configuration and an empty snapshot database.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	base, err := baseDir()
	if err != nil {
		return err
	}

	if config.Exists(base) {
		return fmt.Errorf("eventbook already initialized in %s", base)
	}

	if err := config.WriteDefault(base); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	fmt.Printf("Created %s\n", config.ConfigFilePath(base))

	cfg, err := config.Load(base)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	storage, err := sqlite.NewRepository(config.SnapshotConfig{Path: cfg.SnapshotPath(base)})
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer storage.Close()

	if err := storage.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	fmt.Printf("Created snapshot database: %s\n", storage.Path())
	fmt.Println("Eventbook initialized successfully!")

	return nil
}
