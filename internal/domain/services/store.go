// Package services contains the in-memory model: the entity store, the link
// manager, the filtered views, and the Model facade that owns them.
package services

import (
	"github.com/ersonp/eventbook-core/internal/domain/entities"
)

// EntityStore holds the ordered person and event lists with uniqueness
// enforced by the same-person and same-event identity predicates. Operations
// are linear scans, which is fine for the target scale.
type EntityStore struct {
	persons []entities.Person
	events  []entities.Event
}

// NewEntityStore creates an empty store.
func NewEntityStore() *EntityStore {
	return &EntityStore{}
}

// Persons returns a copy of the ordered person list.
func (s *EntityStore) Persons() []entities.Person {
	out := make([]entities.Person, len(s.persons))
	copy(out, s.persons)
	return out
}

// Events returns a copy of the ordered event list.
func (s *EntityStore) Events() []entities.Event {
	out := make([]entities.Event, len(s.events))
	copy(out, s.events)
	return out
}

// HasPerson reports whether a person with the same identity is stored.
func (s *EntityStore) HasPerson(p entities.Person) bool {
	return s.indexOfPerson(p) >= 0
}

// HasEvent reports whether an event with the same identity is stored.
func (s *EntityStore) HasEvent(e entities.Event) bool {
	return s.indexOfEvent(e) >= 0
}

// AddPerson appends a person, rejecting identity duplicates.
func (s *EntityStore) AddPerson(p entities.Person) error {
	if s.HasPerson(p) {
		return entities.ErrDuplicatePerson
	}
	s.persons = append(s.persons, p)
	return nil
}

// AddEvent appends an event, rejecting identity duplicates.
func (s *EntityStore) AddEvent(e entities.Event) error {
	if s.HasEvent(e) {
		return entities.ErrDuplicateEvent
	}
	s.events = append(s.events, e)
	return nil
}

// SetPerson replaces target with edited in place. The edited person may share
// the target's identity; any other identity clash is a duplicate.
func (s *EntityStore) SetPerson(target, edited entities.Person) error {
	i := s.indexOfPerson(target)
	if i < 0 {
		return entities.ErrPersonNotFound
	}
	if !target.IsSamePerson(edited) && s.HasPerson(edited) {
		return entities.ErrDuplicatePerson
	}
	s.persons[i] = edited
	return nil
}

// SetEvent replaces target with edited in place.
func (s *EntityStore) SetEvent(target, edited entities.Event) error {
	i := s.indexOfEvent(target)
	if i < 0 {
		return entities.ErrEventNotFound
	}
	if !target.IsSameEvent(edited) && s.HasEvent(edited) {
		return entities.ErrDuplicateEvent
	}
	s.events[i] = edited
	return nil
}

// RemovePerson removes the person with target's identity.
func (s *EntityStore) RemovePerson(target entities.Person) error {
	i := s.indexOfPerson(target)
	if i < 0 {
		return entities.ErrPersonNotFound
	}
	s.persons = append(s.persons[:i], s.persons[i+1:]...)
	return nil
}

// RemoveEvent removes the event with target's identity.
func (s *EntityStore) RemoveEvent(target entities.Event) error {
	i := s.indexOfEvent(target)
	if i < 0 {
		return entities.ErrEventNotFound
	}
	s.events = append(s.events[:i], s.events[i+1:]...)
	return nil
}

// Clear empties both lists.
func (s *EntityStore) Clear() {
	s.persons = nil
	s.events = nil
}

// CountPersons returns the number of stored persons.
func (s *EntityStore) CountPersons() int { return len(s.persons) }

// CountEvents returns the number of stored events.
func (s *EntityStore) CountEvents() int { return len(s.events) }

func (s *EntityStore) indexOfPerson(p entities.Person) int {
	for i := range s.persons {
		if s.persons[i].IsSamePerson(p) {
			return i
		}
	}
	return -1
}

func (s *EntityStore) indexOfEvent(e entities.Event) int {
	for i := range s.events {
		if s.events[i].IsSameEvent(e) {
			return i
		}
	}
	return -1
}
