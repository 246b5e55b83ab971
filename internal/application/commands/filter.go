package commands

import (
	"fmt"
	"strings"

	"github.com/ersonp/eventbook-core/internal/domain/entities"
	"github.com/ersonp/eventbook-core/internal/domain/services"
)

// FindPersonCommand installs a name-keyword predicate on the person view.
type FindPersonCommand struct {
	Keywords []string
}

// Execute installs the predicate and reports the visible count.
func (c FindPersonCommand) Execute(model *services.Model) (*Result, error) {
	pred := entities.NameContainsKeywords{Keywords: c.Keywords}
	model.UpdateFilteredPersons(pred.MatchesPerson)
	return &Result{Message: fmt.Sprintf(MessagePersonsListed, len(model.FilteredPersons()))}, nil
}

// CanonicalString renders the command in input grammar form.
func (c FindPersonCommand) CanonicalString() string {
	return "find p " + strings.Join(c.Keywords, " ")
}

// FindEventCommand installs a name-keyword predicate on the event view.
type FindEventCommand struct {
	Keywords []string
}

// Execute installs the predicate and reports the visible count.
func (c FindEventCommand) Execute(model *services.Model) (*Result, error) {
	pred := entities.NameContainsKeywords{Keywords: c.Keywords}
	model.UpdateFilteredEvents(pred.MatchesEvent)
	return &Result{Message: fmt.Sprintf(MessageEventsListed, len(model.FilteredEvents()))}, nil
}

// CanonicalString renders the command in input grammar form.
func (c FindEventCommand) CanonicalString() string {
	return "find e " + strings.Join(c.Keywords, " ")
}

// SearchPersonCommand installs a per-field conjunctive predicate on the
// person view.
type SearchPersonCommand struct {
	Search entities.PersonSearch
}

// Execute installs the predicate and reports the visible count.
func (c SearchPersonCommand) Execute(model *services.Model) (*Result, error) {
	model.UpdateFilteredPersons(c.Search.MatchesPerson)
	return &Result{Message: fmt.Sprintf(MessagePersonsListed, len(model.FilteredPersons()))}, nil
}

// CanonicalString renders the command in input grammar form.
func (c SearchPersonCommand) CanonicalString() string {
	var b strings.Builder
	b.WriteString("search p")
	writeKeywords(&b, "n", c.Search.Names)
	writeKeywords(&b, "p", c.Search.Phones)
	writeKeywords(&b, "e", c.Search.Emails)
	writeKeywords(&b, "a", c.Search.Addresses)
	writeKeywords(&b, "t", c.Search.Tags)
	return b.String()
}

// SearchEventCommand installs a per-field conjunctive predicate on the event
// view.
type SearchEventCommand struct {
	Search entities.EventSearch
}

// Execute installs the predicate and reports the visible count.
func (c SearchEventCommand) Execute(model *services.Model) (*Result, error) {
	model.UpdateFilteredEvents(c.Search.MatchesEvent)
	return &Result{Message: fmt.Sprintf(MessageEventsListed, len(model.FilteredEvents()))}, nil
}

// CanonicalString renders the command in input grammar form.
func (c SearchEventCommand) CanonicalString() string {
	var b strings.Builder
	b.WriteString("search e")
	writeKeywords(&b, "n", c.Search.Names)
	writeKeywords(&b, "a", c.Search.Addresses)
	writeKeywords(&b, "s", c.Search.Starts)
	writeKeywords(&b, "t", c.Search.Tags)
	return b.String()
}

func writeKeywords(b *strings.Builder, prefix string, values []string) {
	for _, v := range values {
		fmt.Fprintf(b, " %s/%s", prefix, v)
	}
}

// UpcomingCommand filters events by a window around now (integer day count)
// or by a specific calendar day.
type UpcomingCommand struct {
	// Days is the signed window size; positive selects the next N days,
	// negative the past |N| days. Ignored when Date is set.
	Days int
	// Date, when non-nil, selects events on that calendar day.
	Date *entities.DateTime
}

// Execute builds the window predicate at execution time, so "now" is the
// moment the command runs, and installs it on the event view.
func (c UpcomingCommand) Execute(model *services.Model) (*Result, error) {
	var window entities.EventWindow
	if c.Date != nil {
		window = entities.NewDayWindow(*c.Date)
	} else {
		window = entities.NewUpcomingWindow(c.Days)
	}
	model.UpdateFilteredEvents(window.MatchesEvent)
	return &Result{Message: fmt.Sprintf(MessageEventsListed, len(model.FilteredEvents()))}, nil
}

// CanonicalString renders the command in input grammar form.
func (c UpcomingCommand) CanonicalString() string {
	if c.Date != nil {
		return "upcoming " + c.Date.Time.Format(entities.DateLayout)
	}
	return fmt.Sprintf("upcoming %d", c.Days)
}

// ScheduleCommand shows the events within a window, chronologically ordered.
type ScheduleCommand struct {
	Start entities.DateTime
	End   entities.DateTime
}

// Execute installs an inclusive window predicate together with a
// chronological ordering on the event view.
func (c ScheduleCommand) Execute(model *services.Model) (*Result, error) {
	window := entities.NewRangeWindow(c.Start, c.End)
	model.UpdateScheduledEvents(window.MatchesEvent)
	return &Result{Message: fmt.Sprintf(MessageEventsListed, len(model.FilteredEvents()))}, nil
}

// CanonicalString renders the command in input grammar form.
func (c ScheduleCommand) CanonicalString() string {
	return fmt.Sprintf("schedule s/%s e/%s", c.Start, c.End)
}

// ListCommand resets both views to accept-all.
type ListCommand struct{}

// Execute resets the filters.
func (c ListCommand) Execute(model *services.Model) (*Result, error) {
	model.ResetFilters()
	return &Result{Message: MessageListedAll}, nil
}

// CanonicalString renders the command in input grammar form.
func (c ListCommand) CanonicalString() string { return "list" }
