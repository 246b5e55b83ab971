package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/eventbook-core/internal/application/commands"
	"github.com/ersonp/eventbook-core/internal/application/executor"
	"github.com/ersonp/eventbook-core/internal/application/parser"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive session",
		Long:  "Starts an interactive session reading commands line by line. Type 'help' for the command reference and 'exit' to leave.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd)
		},
	}
}

func runRepl(cmd *cobra.Command) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		fmt.Println("Eventbook interactive mode. Type 'help' for commands, 'exit' to leave.")
		fmt.Println()

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			result := executeLine(ctx, d.Executor, line)
			if result == nil {
				continue
			}

			fmt.Println(result.Message)
			if result.ShowHelp {
				fmt.Println()
				fmt.Println(parser.HelpText)
			}
			if result.Exit {
				return nil
			}
		}

		return scanner.Err()
	})
}

// executeLine runs one input line and reports errors to the user. A save
// failure is shown as a warning; the command's own output still prints
// because the in-memory change stands.
func executeLine(ctx context.Context, exec *executor.Executor, line string) *commands.Result {
	result, err := exec.Execute(ctx, line)
	if err != nil {
		var saveErr *executor.SaveError
		if errors.As(err, &saveErr) {
			fmt.Println(saveErr.Error())
			return saveErr.Result
		}
		fmt.Println(err.Error())
		return nil
	}
	return result
}
