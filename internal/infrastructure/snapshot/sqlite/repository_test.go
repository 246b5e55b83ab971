package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/eventbook-core/internal/domain/entities"
	"github.com/ersonp/eventbook-core/internal/infrastructure/config"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	repo, err := NewRepository(config.SnapshotConfig{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func person(name, phone string, tags ...entities.Tag) entities.Person {
	return entities.Person{
		Name:    entities.Name(name),
		Phone:   entities.Phone(phone),
		Email:   entities.Email(name + "@example.com"),
		Address: entities.Address("1 Test Street"),
		Tags:    tags,
	}
}

func event(name, start string, tags ...entities.Tag) entities.Event {
	dt, err := entities.NewDateTime(start)
	if err != nil {
		panic(err)
	}
	return entities.Event{
		Name:      entities.Name(name),
		Address:   entities.Address("Town Hall"),
		StartTime: dt,
		Tags:      tags,
	}
}

func TestRepository_SaveLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("empty database loads empty snapshot", func(t *testing.T) {
		repo := newTestRepository(t)

		snap, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, snap.Persons)
		assert.Empty(t, snap.Events)
		assert.Empty(t, snap.Links)
	})

	t.Run("round-trip preserves entities and order", func(t *testing.T) {
		repo := newTestRepository(t)

		alice := person("Alice", "111", "friends", "colleagues")
		bob := person("Bob", "222")
		carol := person("Carol", "333")
		launch := event("Launch", "2024-11-01 09:00", "work")
		fair := event("Book Fair", "2024-12-01 10:00")

		snap := entities.Snapshot{
			Persons: []entities.Person{carol, alice, bob},
			Events:  []entities.Event{fair, launch},
			Links: []entities.LinkRecord{
				{Event: fair.Key(), Persons: []entities.PersonKey{bob.Key(), alice.Key()}},
				{Event: launch.Key(), Persons: []entities.PersonKey{carol.Key()}},
			},
		}
		require.NoError(t, repo.Save(ctx, &snap))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, snap.Persons, loaded.Persons)
		assert.Equal(t, snap.Events, loaded.Events)
		assert.Equal(t, snap.Links, loaded.Links)
	})

	t.Run("empty tags load as nil", func(t *testing.T) {
		repo := newTestRepository(t)

		snap := entities.Snapshot{
			Persons: []entities.Person{person("Alice", "111")},
			Events:  []entities.Event{event("Launch", "2024-11-01 09:00")},
		}
		require.NoError(t, repo.Save(ctx, &snap))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, loaded.Persons, 1)
		assert.Nil(t, loaded.Persons[0].Tags)
		require.Len(t, loaded.Events, 1)
		assert.Nil(t, loaded.Events[0].Tags)
	})

	t.Run("save replaces previous state", func(t *testing.T) {
		repo := newTestRepository(t)

		alice := person("Alice", "111")
		launch := event("Launch", "2024-11-01 09:00")
		first := entities.Snapshot{
			Persons: []entities.Person{alice},
			Events:  []entities.Event{launch},
			Links: []entities.LinkRecord{
				{Event: launch.Key(), Persons: []entities.PersonKey{alice.Key()}},
			},
		}
		require.NoError(t, repo.Save(ctx, &first))

		second := entities.Snapshot{
			Persons: []entities.Person{person("Bob", "222")},
		}
		require.NoError(t, repo.Save(ctx, &second))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, loaded.Persons, 1)
		assert.Equal(t, entities.Name("Bob"), loaded.Persons[0].Name)
		assert.Empty(t, loaded.Events)
		assert.Empty(t, loaded.Links)
	})

	t.Run("events without links produce no records", func(t *testing.T) {
		repo := newTestRepository(t)

		alice := person("Alice", "111")
		launch := event("Launch", "2024-11-01 09:00")
		fair := event("Book Fair", "2024-12-01 10:00")
		snap := entities.Snapshot{
			Persons: []entities.Person{alice},
			Events:  []entities.Event{launch, fair},
			Links: []entities.LinkRecord{
				{Event: fair.Key(), Persons: []entities.PersonKey{alice.Key()}},
			},
		}
		require.NoError(t, repo.Save(ctx, &snap))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, loaded.Links, 1)
		assert.Equal(t, fair.Key(), loaded.Links[0].Event)
	})

	t.Run("schema setup is idempotent", func(t *testing.T) {
		repo := newTestRepository(t)
		require.NoError(t, repo.EnsureSchema(ctx))
	})
}

func TestRepository_Path(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	repo, err := NewRepository(config.SnapshotConfig{Path: path})
	require.NoError(t, err)
	defer repo.Close()

	assert.Equal(t, path, repo.Path())
}
