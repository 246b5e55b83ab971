package entities

import (
	"fmt"
	"slices"
)

// Person is a contact entry in the address book. All fields are validated at
// construction; a Person value in the store always holds canonical field
// values.
type Person struct {
	Name    Name    `json:"name"`
	Phone   Phone   `json:"phone"`
	Email   Email   `json:"email"`
	Address Address `json:"address"`
	Tags    []Tag   `json:"tags,omitempty"`
}

// PersonKey is the identity of a person, used for uniqueness checks and for
// referencing persons in snapshots and links.
type PersonKey struct {
	Name  Name  `json:"name"`
	Phone Phone `json:"phone"`
}

// Key returns the person's identity.
func (p Person) Key() PersonKey {
	return PersonKey{Name: p.Name, Phone: p.Phone}
}

// IsSamePerson reports whether both persons share the same identity.
// This is a weaker notion of equality than Equal.
func (p Person) IsSamePerson(other Person) bool {
	return p.Name == other.Name && p.Phone == other.Phone
}

// Equal reports whether all fields match.
func (p Person) Equal(other Person) bool {
	return p.Name == other.Name &&
		p.Phone == other.Phone &&
		p.Email == other.Email &&
		p.Address == other.Address &&
		slices.Equal(p.Tags, other.Tags)
}

// String formats the person for user-visible messages.
func (p Person) String() string {
	return fmt.Sprintf("%s; Phone: %s; Email: %s; Address: %s; Tags: %s",
		p.Name, p.Phone, p.Email, p.Address, FormatTags(p.Tags))
}
