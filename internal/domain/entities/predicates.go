package entities

import (
	"strings"
	"time"
)

// NameContainsKeywords matches entities whose name contains any of the
// keywords as a whole word, case-insensitively.
type NameContainsKeywords struct {
	Keywords []string
}

// Matches reports whether any keyword appears as a whole word in name.
func (p NameContainsKeywords) Matches(name Name) bool {
	words := strings.Fields(strings.ToLower(string(name)))
	for _, kw := range p.Keywords {
		kw = strings.ToLower(kw)
		for _, w := range words {
			if w == kw {
				return true
			}
		}
	}
	return false
}

// MatchesPerson adapts the predicate to person values.
func (p NameContainsKeywords) MatchesPerson(person Person) bool {
	return p.Matches(person.Name)
}

// MatchesEvent adapts the predicate to event values.
func (p NameContainsKeywords) MatchesEvent(event Event) bool {
	return p.Matches(event.Name)
}

// EventWindow matches events whose start time falls within a time window.
// Integer-day windows use exclusive bounds, so an event starting exactly at
// either bound is excluded; calendar-day and schedule windows use inclusive
// bounds.
type EventWindow struct {
	Start     time.Time
	End       time.Time
	Inclusive bool
}

// NewUpcomingWindow builds a window of the next N days (N >= 0) or the past
// |N| days (N < 0), anchored at the current time with exclusive bounds. The
// far bound is widened to the day boundary, so "upcoming 0" covers the rest
// of today and "upcoming -1" reaches back to the start of yesterday. An event
// starting exactly at the current instant is excluded.
func NewUpcomingWindow(days int) EventWindow {
	now := timeNow()
	if days >= 0 {
		return EventWindow{Start: now, End: endOfDay(now.AddDate(0, 0, days))}
	}
	return EventWindow{Start: startOfDay(now.AddDate(0, 0, days)), End: now}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// NewDayWindow builds an inclusive window covering the calendar day of date,
// from 00:00:00.000 through 23:59:59.999999999.
func NewDayWindow(date DateTime) EventWindow {
	return EventWindow{Start: startOfDay(date.Time), End: endOfDay(date.Time), Inclusive: true}
}

// NewRangeWindow builds an inclusive window between two instants.
func NewRangeWindow(start, end DateTime) EventWindow {
	return EventWindow{Start: start.Time, End: end.Time, Inclusive: true}
}

// MatchesEvent reports whether the event's start time falls in the window.
func (w EventWindow) MatchesEvent(event Event) bool {
	t := event.StartTime.Time
	if w.Inclusive {
		return !t.Before(w.Start) && !t.After(w.End)
	}
	return t.After(w.Start) && t.Before(w.End)
}

// Equal reports whether both windows have the same bounds.
func (w EventWindow) Equal(other EventWindow) bool {
	return w.Start.Equal(other.Start) && w.End.Equal(other.End) && w.Inclusive == other.Inclusive
}

// PersonSearch matches persons against per-field keyword lists. Values within
// a field are disjunctive; fields with at least one value are conjunctive
// across fields. Matching is case-insensitive substring containment.
type PersonSearch struct {
	Names     []string
	Phones    []string
	Emails    []string
	Addresses []string
	Tags      []string
}

// MatchesPerson reports whether the person satisfies every supplied field.
func (s PersonSearch) MatchesPerson(p Person) bool {
	return fieldMatches(s.Names, string(p.Name)) &&
		fieldMatches(s.Phones, string(p.Phone)) &&
		fieldMatches(s.Emails, string(p.Email)) &&
		fieldMatches(s.Addresses, string(p.Address)) &&
		tagsMatch(s.Tags, p.Tags)
}

// EventSearch is the event counterpart of PersonSearch. Start time values
// match against the canonical "YYYY-MM-DD HH:MM" form.
type EventSearch struct {
	Names     []string
	Addresses []string
	Starts    []string
	Tags      []string
}

// MatchesEvent reports whether the event satisfies every supplied field.
func (s EventSearch) MatchesEvent(e Event) bool {
	return fieldMatches(s.Names, string(e.Name)) &&
		fieldMatches(s.Addresses, string(e.Address)) &&
		fieldMatches(s.Starts, e.StartTime.String()) &&
		tagsMatch(s.Tags, e.Tags)
}

// fieldMatches reports whether value contains any keyword, or the keyword
// list is empty (field not constrained).
func fieldMatches(keywords []string, value string) bool {
	if len(keywords) == 0 {
		return true
	}
	value = strings.ToLower(value)
	for _, kw := range keywords {
		if strings.Contains(value, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func tagsMatch(keywords []string, tags []Tag) bool {
	if len(keywords) == 0 {
		return true
	}
	for _, kw := range keywords {
		for _, t := range tags {
			if strings.Contains(strings.ToLower(string(t)), strings.ToLower(kw)) {
				return true
			}
		}
	}
	return false
}
