package services

import (
	"fmt"

	"github.com/ersonp/eventbook-core/internal/domain/entities"
)

// Model is the single entry point commands use to mutate or query state. It
// exclusively owns the entity store and the link manager, keeps the filtered
// views coherent after every mutation, and notifies subscribers when the
// views change. It is not safe for concurrent use; the application drives it
// from a single input loop.
type Model struct {
	store      *EntityStore
	links      *LinkManager
	personView *FilterView[entities.Person]
	eventView  *FilterView[entities.Event]
	observers  []func()
}

// NewModel creates an empty model with accept-all views.
func NewModel() *Model {
	m := &Model{
		store:      NewEntityStore(),
		links:      NewLinkManager(),
		personView: NewFilterView[entities.Person](),
		eventView:  NewFilterView[entities.Event](),
	}
	m.refresh()
	return m
}

// Subscribe registers a callback invoked after every view change.
func (m *Model) Subscribe(fn func()) {
	m.observers = append(m.observers, fn)
}

func (m *Model) refresh() {
	m.personView.Refresh(m.store.persons)
	m.eventView.Refresh(m.store.events)
	for _, fn := range m.observers {
		fn()
	}
}

/* ----- queries ----- */

// FilteredPersons returns the persons visible under the current predicate.
func (m *Model) FilteredPersons() []entities.Person { return m.personView.Items() }

// FilteredEvents returns the events visible under the current predicate.
func (m *Model) FilteredEvents() []entities.Event { return m.eventView.Items() }

// PersonAt resolves a zero-based index against the visible person list.
func (m *Model) PersonAt(i int) (entities.Person, bool) { return m.personView.At(i) }

// EventAt resolves a zero-based index against the visible event list.
func (m *Model) EventAt(i int) (entities.Event, bool) { return m.eventView.At(i) }

// Persons returns the full stored person list.
func (m *Model) Persons() []entities.Person { return m.store.Persons() }

// Events returns the full stored event list.
func (m *Model) Events() []entities.Event { return m.store.Events() }

// HasPerson reports whether a same-identity person is stored.
func (m *Model) HasPerson(p entities.Person) bool { return m.store.HasPerson(p) }

// GetEvent finds the stored event with the same identity as e.
func (m *Model) GetEvent(e entities.Event) (entities.Event, bool) {
	return m.links.ResolveEvent(e)
}

// IsPersonLinkedToEvent reports whether p is linked to e.
func (m *Model) IsPersonLinkedToEvent(p entities.Person, e entities.Event) bool {
	return m.links.HasLink(p, e)
}

// LinkedPersons returns the persons linked to e, in link order.
func (m *Model) LinkedPersons(e entities.Event) []entities.Person { return m.links.LinksFor(e) }

// LinkedEvents returns the events p is linked to.
func (m *Model) LinkedEvents(p entities.Person) []entities.Event { return m.links.LinksForPerson(p) }

// CountLinks returns the total number of links.
func (m *Model) CountLinks() int { return m.links.CountLinks() }

/* ----- mutations ----- */

// AddPerson inserts a new person.
func (m *Model) AddPerson(p entities.Person) error {
	if err := m.store.AddPerson(p); err != nil {
		return err
	}
	m.refresh()
	return nil
}

// SetPerson replaces target with edited and rewrites every link that
// referenced the old identity.
func (m *Model) SetPerson(target, edited entities.Person) error {
	if err := m.store.SetPerson(target, edited); err != nil {
		return err
	}
	m.links.ReplacePersonEverywhere(target, edited)
	m.refresh()
	return nil
}

// DeletePerson removes target and cascades link removal.
func (m *Model) DeletePerson(target entities.Person) error {
	if err := m.store.RemovePerson(target); err != nil {
		return err
	}
	m.links.RemovePersonEverywhere(target)
	m.refresh()
	return nil
}

// AddEvent inserts a new event and registers it with the link manager.
func (m *Model) AddEvent(e entities.Event) error {
	if err := m.store.AddEvent(e); err != nil {
		return err
	}
	if err := m.links.AddEvent(e); err != nil {
		// Keep store and links in step even on the impossible path.
		_ = m.store.RemoveEvent(e)
		return err
	}
	m.refresh()
	return nil
}

// SetEvent replaces target with edited, preserving linked persons.
func (m *Model) SetEvent(target, edited entities.Event) error {
	if err := m.store.SetEvent(target, edited); err != nil {
		return err
	}
	if err := m.links.ReplaceEvent(target, edited); err != nil {
		_ = m.store.SetEvent(edited, target)
		return err
	}
	m.refresh()
	return nil
}

// DeleteEvent removes target and all links referencing it.
func (m *Model) DeleteEvent(target entities.Event) error {
	if err := m.store.RemoveEvent(target); err != nil {
		return err
	}
	m.links.RemoveEvent(target)
	m.refresh()
	return nil
}

// Link links person to the stored event matching identity.
func (m *Model) Link(p entities.Person, e entities.Event) error {
	if err := m.links.AddLink(p, e); err != nil {
		return err
	}
	m.refresh()
	return nil
}

// Unlink removes the link between person and event.
func (m *Model) Unlink(p entities.Person, e entities.Event) error {
	if err := m.links.RemoveLink(p, e); err != nil {
		return err
	}
	m.refresh()
	return nil
}

// Clear atomically empties the store and the link manager.
func (m *Model) Clear() {
	m.store.Clear()
	m.links.Clear()
	m.refresh()
}

/* ----- filters ----- */

// UpdateFilteredPersons installs a person predicate. Nil resets to
// accept-all.
func (m *Model) UpdateFilteredPersons(pred func(entities.Person) bool) {
	m.personView.SetPredicate(pred)
	m.refresh()
}

// UpdateFilteredEvents installs an event predicate. Nil resets to accept-all.
func (m *Model) UpdateFilteredEvents(pred func(entities.Event) bool) {
	m.eventView.SetPredicate(pred)
	m.refresh()
}

// UpdateScheduledEvents installs an event predicate together with a
// chronological ordering of the projection.
func (m *Model) UpdateScheduledEvents(pred func(entities.Event) bool) {
	m.eventView.SetOrderedPredicate(pred, func(a, b entities.Event) bool {
		return a.StartTime.Before(b.StartTime)
	})
	m.refresh()
}

// ResetFilters restores the accept-all predicate on both views.
func (m *Model) ResetFilters() {
	m.personView.SetPredicate(nil)
	m.eventView.SetPredicate(nil)
	m.refresh()
}

/* ----- snapshots ----- */

// Snapshot captures the current state for persistence.
func (m *Model) Snapshot() *entities.Snapshot {
	return &entities.Snapshot{
		Persons: m.store.Persons(),
		Events:  m.store.Events(),
		Links:   m.links.Records(),
	}
}

// Restore replaces the model state from a snapshot. The snapshot must be
// internally consistent: no duplicate identities and every link referencing a
// stored person and event. On error the model is left unchanged.
func (m *Model) Restore(snap *entities.Snapshot) error {
	store := NewEntityStore()
	links := NewLinkManager()

	for _, p := range snap.Persons {
		if err := store.AddPerson(p); err != nil {
			return fmt.Errorf("restoring person %s: %w", p.Name, err)
		}
	}
	for _, e := range snap.Events {
		if err := store.AddEvent(e); err != nil {
			return fmt.Errorf("restoring event %s: %w", e.Name, err)
		}
		if err := links.AddEvent(e); err != nil {
			return fmt.Errorf("restoring event %s: %w", e.Name, err)
		}
	}

	personsByKey := make(map[entities.PersonKey]entities.Person, len(snap.Persons))
	for _, p := range snap.Persons {
		personsByKey[p.Key()] = p
	}
	for _, rec := range snap.Links {
		start, err := entities.NewDateTime(rec.Event.Start)
		if err != nil {
			return fmt.Errorf("restoring link for event %s: %w", rec.Event.Name, err)
		}
		stored, ok := links.ResolveEvent(entities.Event{Name: rec.Event.Name, StartTime: start})
		if !ok {
			return fmt.Errorf("restoring link: %w: %s", entities.ErrEventNotFound, rec.Event.Name)
		}
		for _, key := range rec.Persons {
			person, ok := personsByKey[key]
			if !ok {
				return fmt.Errorf("restoring link: %w: %s", entities.ErrPersonNotFound, key.Name)
			}
			if err := links.AddLink(person, stored); err != nil {
				return fmt.Errorf("restoring link for event %s: %w", rec.Event.Name, err)
			}
		}
	}

	m.store = store
	m.links = links
	m.refresh()
	return nil
}
