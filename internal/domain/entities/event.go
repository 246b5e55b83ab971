package entities

import (
	"fmt"
	"slices"
)

// Event is a scheduled happening that persons can be linked to.
type Event struct {
	Name      Name     `json:"name"`
	Address   Address  `json:"address"`
	StartTime DateTime `json:"start_time"`
	Tags      []Tag    `json:"tags,omitempty"`
}

// EventKey is the identity of an event. The start time is carried in its
// canonical string form so the key is safely comparable and usable as a map
// key.
type EventKey struct {
	Name  Name   `json:"name"`
	Start string `json:"start"`
}

// Key returns the event's identity.
func (e Event) Key() EventKey {
	return EventKey{Name: e.Name, Start: e.StartTime.String()}
}

// IsSameEvent reports whether both events share the same identity.
func (e Event) IsSameEvent(other Event) bool {
	return e.Name == other.Name && e.StartTime.Equal(other.StartTime)
}

// Equal reports whether all fields match.
func (e Event) Equal(other Event) bool {
	return e.Name == other.Name &&
		e.Address == other.Address &&
		e.StartTime.Equal(other.StartTime) &&
		slices.Equal(e.Tags, other.Tags)
}

// String formats the event for user-visible messages.
func (e Event) String() string {
	return fmt.Sprintf("%s; Address: %s; Start Time: %s; Tags: %s",
		e.Name, e.Address, e.StartTime, FormatTags(e.Tags))
}
