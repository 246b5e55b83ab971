// Package entities contains core domain data structures.
package entities

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

// Validation patterns for field values. A value that fails its pattern is
// rejected at construction; invalid field values never enter the store.
var (
	nameRegex  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	phoneRegex = regexp.MustCompile(`^\d{3,15}$`)
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9][A-Za-z0-9.-]*$`)
	tagRegex   = regexp.MustCompile(`^[A-Za-z0-9]{1,30}$`)
)

// Constraint messages shown to the user when a field value is rejected.
const (
	NameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints   = "Phone numbers should only contain digits, and it should be at least 3 digits long"
	EmailConstraints   = "Emails should be of the format local-part@domain"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	TagConstraints     = "Tag names should be alphanumeric"
)

// Name is a validated person or event name.
type Name string

// NewName validates and returns a Name.
func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if !nameRegex.MatchString(s) {
		return "", errors.New(NameConstraints)
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// Phone is a validated phone number.
type Phone string

// NewPhone validates and returns a Phone.
func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return "", errors.New(PhoneConstraints)
	}
	return Phone(s), nil
}

func (p Phone) String() string { return string(p) }

// Email is a validated email address.
type Email string

// NewEmail validates and returns an Email.
func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return "", errors.New(EmailConstraints)
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }

// Address is a non-empty free-text address.
type Address string

// NewAddress validates and returns an Address.
func NewAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New(AddressConstraints)
	}
	return Address(s), nil
}

func (a Address) String() string { return string(a) }

// Tag is a short alphanumeric label.
type Tag string

// NewTag validates and returns a Tag.
func NewTag(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	if !tagRegex.MatchString(s) {
		return "", errors.New(TagConstraints)
	}
	return Tag(s), nil
}

func (t Tag) String() string { return string(t) }

// NewTagSet validates each value and returns a sorted, deduplicated tag set.
func NewTagSet(values []string) ([]Tag, error) {
	seen := make(map[Tag]bool, len(values))
	tags := make([]Tag, 0, len(values))
	for _, v := range values {
		tag, err := NewTag(v)
		if err != nil {
			return nil, err
		}
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags, nil
}

// FormatTags renders a tag set as "[a][b]" for user-visible messages.
func FormatTags(tags []Tag) string {
	var b strings.Builder
	for _, t := range tags {
		b.WriteString("[")
		b.WriteString(string(t))
		b.WriteString("]")
	}
	return b.String()
}
