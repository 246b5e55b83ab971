package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/eventbook-core/internal/application/executor"
	"github.com/ersonp/eventbook-core/internal/application/parser"
)

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command...>",
		Short: "Run a single command and exit",
		Long:  "Runs one address book command non-interactively, for example: eventbook exec add p n/Alice p/123456 e/a@b.com a/Street.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(cmd, strings.Join(args, " "))
		},
	}
}

func runExec(cmd *cobra.Command, line string) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		result, err := d.Executor.Execute(ctx, line)
		if err != nil {
			var saveErr *executor.SaveError
			if errors.As(err, &saveErr) {
				fmt.Println(saveErr.Result.Message)
				return err
			}
			return err
		}

		fmt.Println(result.Message)
		if result.ShowHelp {
			fmt.Println()
			fmt.Println(parser.HelpText)
		}
		return nil
	})
}
