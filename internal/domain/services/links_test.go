package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/eventbook-core/internal/domain/entities"
)

func TestLinkManager_AddLink(t *testing.T) {
	t.Run("link and query", func(t *testing.T) {
		m := NewLinkManager()
		expo := event("Expo", "2024-10-15 14:30")
		alice := person("Alice", "111")

		require.NoError(t, m.AddEvent(expo))
		require.NoError(t, m.AddLink(alice, expo))

		assert.True(t, m.HasLink(alice, expo))
		assert.Equal(t, 1, m.CountLinksFor(expo))
		assert.Equal(t, 1, m.CountLinks())
	})

	t.Run("duplicate link rejected", func(t *testing.T) {
		m := NewLinkManager()
		expo := event("Expo", "2024-10-15 14:30")
		alice := person("Alice", "111")

		require.NoError(t, m.AddEvent(expo))
		require.NoError(t, m.AddLink(alice, expo))
		assert.ErrorIs(t, m.AddLink(alice, expo), entities.ErrDuplicateLink)
	})

	t.Run("unregistered event rejected", func(t *testing.T) {
		m := NewLinkManager()
		err := m.AddLink(person("Alice", "111"), event("Expo", "2024-10-15 14:30"))
		assert.ErrorIs(t, err, entities.ErrEventNotFound)
	})
}

func TestLinkManager_RemoveLink(t *testing.T) {
	m := NewLinkManager()
	expo := event("Expo", "2024-10-15 14:30")
	alice := person("Alice", "111")

	require.NoError(t, m.AddEvent(expo))
	require.NoError(t, m.AddLink(alice, expo))
	require.NoError(t, m.RemoveLink(alice, expo))

	assert.False(t, m.HasLink(alice, expo))
	assert.ErrorIs(t, m.RemoveLink(alice, expo), entities.ErrLinkNotFound)
}

func TestLinkManager_RemoveEvent(t *testing.T) {
	m := NewLinkManager()
	expo := event("Expo", "2024-10-15 14:30")
	alice := person("Alice", "111")

	require.NoError(t, m.AddEvent(expo))
	require.NoError(t, m.AddLink(alice, expo))

	m.RemoveEvent(expo)
	assert.Zero(t, m.CountLinks())
	assert.Empty(t, m.LinksForPerson(alice))
	_, ok := m.ResolveEvent(expo)
	assert.False(t, ok)
}

func TestLinkManager_ReplaceEvent(t *testing.T) {
	t.Run("links survive an identity change", func(t *testing.T) {
		m := NewLinkManager()
		expo := event("Expo", "2024-10-15 14:30")
		alice := person("Alice", "111")

		require.NoError(t, m.AddEvent(expo))
		require.NoError(t, m.AddLink(alice, expo))

		edited := event("Winter Expo", "2024-10-15 14:30")
		require.NoError(t, m.ReplaceEvent(expo, edited))

		assert.True(t, m.HasLink(alice, edited))
		assert.False(t, m.HasLink(alice, expo))

		events := m.LinksForPerson(alice)
		require.Len(t, events, 1)
		assert.Equal(t, entities.Name("Winter Expo"), events[0].Name)
	})

	t.Run("clash with a registered event rejected", func(t *testing.T) {
		m := NewLinkManager()
		expo := event("Expo", "2024-10-15 14:30")
		fair := event("Fair", "2024-11-01 10:00")

		require.NoError(t, m.AddEvent(expo))
		require.NoError(t, m.AddEvent(fair))

		err := m.ReplaceEvent(fair, event("Expo", "2024-10-15 14:30"))
		assert.ErrorIs(t, err, entities.ErrDuplicateEvent)
	})

	t.Run("order position preserved", func(t *testing.T) {
		m := NewLinkManager()
		first := event("First", "2024-10-01 10:00")
		second := event("Second", "2024-10-02 10:00")
		alice := person("Alice", "111")

		require.NoError(t, m.AddEvent(first))
		require.NoError(t, m.AddEvent(second))
		require.NoError(t, m.AddLink(alice, first))
		require.NoError(t, m.AddLink(alice, second))

		edited := event("First Edited", "2024-10-01 10:00")
		require.NoError(t, m.ReplaceEvent(first, edited))

		events := m.LinksForPerson(alice)
		require.Len(t, events, 2)
		assert.Equal(t, entities.Name("First Edited"), events[0].Name)
		assert.Equal(t, entities.Name("Second"), events[1].Name)
	})
}

func TestLinkManager_PersonRewrites(t *testing.T) {
	m := NewLinkManager()
	expo := event("Expo", "2024-10-15 14:30")
	fair := event("Fair", "2024-11-01 10:00")
	alice := person("Alice", "111")

	require.NoError(t, m.AddEvent(expo))
	require.NoError(t, m.AddEvent(fair))
	require.NoError(t, m.AddLink(alice, expo))
	require.NoError(t, m.AddLink(alice, fair))

	t.Run("replace everywhere", func(t *testing.T) {
		alicia := person("Alicia", "111")
		m.ReplacePersonEverywhere(alice, alicia)

		persons := m.LinksFor(expo)
		require.Len(t, persons, 1)
		assert.Equal(t, entities.Name("Alicia"), persons[0].Name)
		assert.Len(t, m.LinksForPerson(alicia), 2)
	})

	t.Run("remove everywhere", func(t *testing.T) {
		alicia := person("Alicia", "111")
		m.RemovePersonEverywhere(alicia)
		assert.Zero(t, m.CountLinks())
	})
}

func TestLinkManager_Records(t *testing.T) {
	m := NewLinkManager()
	expo := event("Expo", "2024-10-15 14:30")
	fair := event("Fair", "2024-11-01 10:00")
	alice := person("Alice", "111")
	bob := person("Bob", "222")

	require.NoError(t, m.AddEvent(expo))
	require.NoError(t, m.AddEvent(fair))
	require.NoError(t, m.AddLink(alice, expo))
	require.NoError(t, m.AddLink(bob, expo))

	records := m.Records()
	require.Len(t, records, 1, "events with no links are omitted")
	assert.Equal(t, expo.Key(), records[0].Event)
	assert.Equal(t, []entities.PersonKey{alice.Key(), bob.Key()}, records[0].Persons)
}
