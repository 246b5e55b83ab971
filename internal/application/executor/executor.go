// Package executor drives the parse-execute-persist cycle for input lines.
package executor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ersonp/eventbook-core/internal/application/commands"
	"github.com/ersonp/eventbook-core/internal/application/parser"
	"github.com/ersonp/eventbook-core/internal/domain/ports"
	"github.com/ersonp/eventbook-core/internal/domain/services"
)

// SaveError reports a snapshot save failure after a successful mutation. The
// in-memory mutation stands; the caller shows the warning and continues.
type SaveError struct {
	Result *commands.Result
	Err    error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("Warning: could not save address book: %v", e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Executor parses input lines into commands, executes them against the
// model, and persists a snapshot after every successful mutation. The model
// and storage are injected so tests can swap them per test.
type Executor struct {
	model   *services.Model
	storage ports.Storage
}

// New creates an Executor over the given model and storage.
func New(model *services.Model, storage ports.Storage) *Executor {
	return &Executor{model: model, storage: storage}
}

// Model returns the underlying model, for consumers that observe the views.
func (e *Executor) Model() *services.Model { return e.model }

// Execute runs one input line end to end. On a snapshot save failure the
// returned error is a *SaveError carrying the successful result.
func (e *Executor) Execute(ctx context.Context, line string) (*commands.Result, error) {
	cmd, err := parser.Parse(line)
	if err != nil {
		return nil, err
	}
	return e.ExecuteCommands(ctx, cmd)
}

// ExecuteCommands applies commands sequentially, stopping at the first
// failure. A snapshot is saved once if any command changed state. The last
// result is returned.
func (e *Executor) ExecuteCommands(ctx context.Context, cmds ...commands.Command) (*commands.Result, error) {
	var last *commands.Result
	changed := false
	for _, cmd := range cmds {
		result, err := cmd.Execute(e.model)
		if err != nil {
			return nil, err
		}
		last = result
		changed = changed || result.StateChanged
	}
	if changed {
		if err := e.storage.Save(ctx, e.model.Snapshot()); err != nil {
			slog.Error("snapshot save failed", "error", err)
			return nil, &SaveError{Result: last, Err: err}
		}
	}
	return last, nil
}
