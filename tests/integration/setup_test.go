package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ersonp/eventbook-core/internal/application/commands"
	"github.com/ersonp/eventbook-core/internal/application/executor"
	"github.com/ersonp/eventbook-core/internal/domain/services"
	"github.com/ersonp/eventbook-core/internal/infrastructure/config"
	"github.com/ersonp/eventbook-core/internal/infrastructure/snapshot/sqlite"
)

// testApp wires a model and executor over a real sqlite snapshot in a
// temporary directory, mirroring the wiring the CLI performs.
type testApp struct {
	model   *services.Model
	exec    *executor.Executor
	storage *sqlite.Repository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "eventbook.db")

	storage, err := sqlite.NewRepository(config.SnapshotConfig{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })
	require.NoError(t, storage.EnsureSchema(ctx))

	model := services.NewModel()
	return &testApp{
		model:   model,
		exec:    executor.New(model, storage),
		storage: storage,
	}
}

// mustExecute runs one input line and fails the test on any error.
func (a *testApp) mustExecute(t *testing.T, line string) *commands.Result {
	t.Helper()

	res, err := a.exec.Execute(context.Background(), line)
	require.NoError(t, err, "executing %q", line)
	return res
}

// reload loads the persisted snapshot into a fresh model, proving the state
// survives a process restart.
func (a *testApp) reload(t *testing.T) *services.Model {
	t.Helper()

	snap, err := a.storage.Load(context.Background())
	require.NoError(t, err)

	fresh := services.NewModel()
	require.NoError(t, fresh.Restore(snap))
	return fresh
}
