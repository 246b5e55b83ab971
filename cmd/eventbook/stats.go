package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/eventbook-core/internal/domain/services"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show address book statistics",
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withModel(ctx, func(model *services.Model) error {
		persons := model.Persons()
		events := model.Events()

		fmt.Printf("Persons: %d\n", len(persons))
		fmt.Printf("Events:  %d\n", len(events))
		fmt.Printf("Links:   %d\n", model.CountLinks())

		tagged := 0
		for _, p := range persons {
			if len(p.Tags) > 0 {
				tagged++
			}
		}
		if len(persons) > 0 {
			fmt.Printf("Tagged persons: %d\n", tagged)
		}

		return nil
	})
}
