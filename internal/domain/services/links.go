package services

import (
	"github.com/ersonp/eventbook-core/internal/domain/entities"
)

// LinkManager maintains the mapping from event identity to the ordered set of
// linked persons. It is an instance owned by the Model; every stored event has
// an entry here, created on AddEvent and removed on RemoveEvent, so link
// integrity reduces to keeping the two structures in step.
type LinkManager struct {
	entries map[entities.EventKey]*linkEntry
	order   []entities.EventKey
}

type linkEntry struct {
	event   entities.Event
	persons []entities.Person
}

// NewLinkManager creates an empty link manager.
func NewLinkManager() *LinkManager {
	return &LinkManager{entries: make(map[entities.EventKey]*linkEntry)}
}

// AddEvent registers an event with an empty person set.
func (m *LinkManager) AddEvent(e entities.Event) error {
	key := e.Key()
	if _, ok := m.entries[key]; ok {
		return entities.ErrDuplicateEvent
	}
	m.entries[key] = &linkEntry{event: e}
	m.order = append(m.order, key)
	return nil
}

// RemoveEvent drops an event and all its links.
func (m *LinkManager) RemoveEvent(e entities.Event) {
	key := e.Key()
	if _, ok := m.entries[key]; !ok {
		return
	}
	delete(m.entries, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// ReplaceEvent swaps target for edited, preserving the linked persons and the
// event's position in link order.
func (m *LinkManager) ReplaceEvent(target, edited entities.Event) error {
	oldKey := target.Key()
	entry, ok := m.entries[oldKey]
	if !ok {
		return entities.ErrEventNotFound
	}
	newKey := edited.Key()
	if newKey != oldKey {
		if _, exists := m.entries[newKey]; exists {
			return entities.ErrDuplicateEvent
		}
	}
	delete(m.entries, oldKey)
	entry.event = edited
	m.entries[newKey] = entry
	for i, k := range m.order {
		if k == oldKey {
			m.order[i] = newKey
			break
		}
	}
	return nil
}

// ResolveEvent finds the stored event with the same identity as e.
func (m *LinkManager) ResolveEvent(e entities.Event) (entities.Event, bool) {
	entry, ok := m.entries[e.Key()]
	if !ok {
		return entities.Event{}, false
	}
	return entry.event, true
}

// HasLink reports whether person p is linked to event e.
func (m *LinkManager) HasLink(p entities.Person, e entities.Event) bool {
	entry, ok := m.entries[e.Key()]
	if !ok {
		return false
	}
	return indexOfLinked(entry.persons, p) >= 0
}

// AddLink links p to e. The event must be registered and the link must not
// already exist.
func (m *LinkManager) AddLink(p entities.Person, e entities.Event) error {
	entry, ok := m.entries[e.Key()]
	if !ok {
		return entities.ErrEventNotFound
	}
	if indexOfLinked(entry.persons, p) >= 0 {
		return entities.ErrDuplicateLink
	}
	entry.persons = append(entry.persons, p)
	return nil
}

// RemoveLink unlinks p from e.
func (m *LinkManager) RemoveLink(p entities.Person, e entities.Event) error {
	entry, ok := m.entries[e.Key()]
	if !ok {
		return entities.ErrEventNotFound
	}
	i := indexOfLinked(entry.persons, p)
	if i < 0 {
		return entities.ErrLinkNotFound
	}
	entry.persons = append(entry.persons[:i], entry.persons[i+1:]...)
	return nil
}

// RemovePersonEverywhere drops p from every event's person set.
func (m *LinkManager) RemovePersonEverywhere(p entities.Person) {
	for _, entry := range m.entries {
		if i := indexOfLinked(entry.persons, p); i >= 0 {
			entry.persons = append(entry.persons[:i], entry.persons[i+1:]...)
		}
	}
}

// ReplacePersonEverywhere rewrites every link that referenced target to
// reference edited, keeping link order.
func (m *LinkManager) ReplacePersonEverywhere(target, edited entities.Person) {
	for _, entry := range m.entries {
		if i := indexOfLinked(entry.persons, target); i >= 0 {
			entry.persons[i] = edited
		}
	}
}

// LinksFor returns the persons linked to e, in link order.
func (m *LinkManager) LinksFor(e entities.Event) []entities.Person {
	entry, ok := m.entries[e.Key()]
	if !ok {
		return nil
	}
	out := make([]entities.Person, len(entry.persons))
	copy(out, entry.persons)
	return out
}

// CountLinksFor returns the number of persons linked to e.
func (m *LinkManager) CountLinksFor(e entities.Event) int {
	entry, ok := m.entries[e.Key()]
	if !ok {
		return 0
	}
	return len(entry.persons)
}

// CountLinks returns the total number of links across all events.
func (m *LinkManager) CountLinks() int {
	total := 0
	for _, entry := range m.entries {
		total += len(entry.persons)
	}
	return total
}

// LinksForPerson returns the events p is linked to, in event registration
// order.
func (m *LinkManager) LinksForPerson(p entities.Person) []entities.Event {
	var out []entities.Event
	for _, key := range m.order {
		entry := m.entries[key]
		if indexOfLinked(entry.persons, p) >= 0 {
			out = append(out, entry.event)
		}
	}
	return out
}

// Records returns the link mapping in a snapshot-friendly form, events in
// registration order. Events with no links are omitted.
func (m *LinkManager) Records() []entities.LinkRecord {
	var out []entities.LinkRecord
	for _, key := range m.order {
		entry := m.entries[key]
		if len(entry.persons) == 0 {
			continue
		}
		rec := entities.LinkRecord{Event: key}
		for _, p := range entry.persons {
			rec.Persons = append(rec.Persons, p.Key())
		}
		out = append(out, rec)
	}
	return out
}

// Clear empties the manager.
func (m *LinkManager) Clear() {
	m.entries = make(map[entities.EventKey]*linkEntry)
	m.order = nil
}

func indexOfLinked(persons []entities.Person, p entities.Person) int {
	for i := range persons {
		if persons[i].IsSamePerson(p) {
			return i
		}
	}
	return -1
}
