package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/eventbook-core/internal/application/commands"
	"github.com/ersonp/eventbook-core/internal/domain/entities"
)

const (
	addAlice = "add p n/Alice p/91234567 e/a@x.com a/Road 1"
	addExpo  = "add e n/Expo a/Hall 1 s/2024-10-15 14:30"
)

func TestScenario_DuplicateAdd(t *testing.T) {
	app := newTestApp(t)

	res := app.mustExecute(t, addAlice)
	assert.Contains(t, res.Message, "New person added: Alice")
	assert.True(t, res.StateChanged)

	_, err := app.exec.Execute(context.Background(), addAlice)
	require.ErrorIs(t, err, commands.ErrDuplicatePerson)
	assert.Len(t, app.model.Persons(), 1)
}

func TestScenario_LinkPersonToEvent(t *testing.T) {
	app := newTestApp(t)

	app.mustExecute(t, addAlice)
	app.mustExecute(t, addExpo)
	res := app.mustExecute(t, "link 1 n/Expo a/Hall 1 s/2024-10-15 14:30")
	assert.Contains(t, res.Message, "Person linked to event")

	alice := app.model.Persons()[0]
	expo := app.model.Events()[0]
	assert.True(t, app.model.IsPersonLinkedToEvent(alice, expo))

	fresh := app.reload(t)
	assert.True(t, fresh.IsPersonLinkedToEvent(alice, expo))
}

func TestScenario_DeleteEventCascadesLinks(t *testing.T) {
	app := newTestApp(t)

	app.mustExecute(t, addAlice)
	app.mustExecute(t, addExpo)
	app.mustExecute(t, "link 1 n/Expo a/Hall 1 s/2024-10-15 14:30")
	require.Equal(t, 1, app.model.CountLinks())

	res := app.mustExecute(t, "delete e 1")
	assert.Contains(t, res.Message, "Deleted Event: Expo")

	assert.Empty(t, app.model.Events())
	assert.Equal(t, 0, app.model.CountLinks())

	alice := app.model.Persons()[0]
	assert.Empty(t, app.model.LinkedEvents(alice))
}

func TestScenario_UpcomingListsOnlyFutureEvents(t *testing.T) {
	app := newTestApp(t)

	now := time.Now()
	future := now.Add(2 * time.Hour)
	yesterday := now.AddDate(0, 0, -1)

	app.mustExecute(t, fmt.Sprintf("add e n/Past Meetup a/Cafe s/%s", yesterday.Format(entities.DateTimeLayout)))
	app.mustExecute(t, fmt.Sprintf("add e n/Soon Meetup a/Cafe s/%s", future.Format(entities.DateTimeLayout)))

	// Stay day-accurate if the two-hour offset crosses midnight.
	days := 0
	if future.YearDay() != now.YearDay() {
		days = 1
	}
	res := app.mustExecute(t, fmt.Sprintf("upcoming %d", days))
	assert.Contains(t, res.Message, "1 events listed!")

	events := app.model.FilteredEvents()
	require.Len(t, events, 1)
	assert.Equal(t, entities.Name("Soon Meetup"), events[0].Name)
}

func TestScenario_EditThroughFilteredView(t *testing.T) {
	app := newTestApp(t)

	app.mustExecute(t, addAlice)
	app.mustExecute(t, "add p n/Bob p/87654321 e/b@x.com a/Road 2")

	res := app.mustExecute(t, "find p Alice")
	assert.Contains(t, res.Message, "1 persons listed!")

	res = app.mustExecute(t, "edit p 1 n/Alicia")
	assert.Contains(t, res.Message, "Edited Person: Alicia")

	res = app.mustExecute(t, "find p Alice")
	assert.Contains(t, res.Message, "0 persons listed!")

	res = app.mustExecute(t, "find p Alicia")
	assert.Contains(t, res.Message, "1 persons listed!")
}

func TestScenario_ClearEmptiesEverything(t *testing.T) {
	app := newTestApp(t)

	app.mustExecute(t, addAlice)
	app.mustExecute(t, addExpo)
	app.mustExecute(t, "link 1 n/Expo a/Hall 1 s/2024-10-15 14:30")

	res := app.mustExecute(t, "clear")
	assert.Contains(t, res.Message, "cleared")

	app.mustExecute(t, "list")
	assert.Empty(t, app.model.FilteredPersons())
	assert.Empty(t, app.model.FilteredEvents())
	assert.Equal(t, 0, app.model.CountLinks())

	fresh := app.reload(t)
	assert.Empty(t, fresh.Persons())
	assert.Empty(t, fresh.Events())
}
