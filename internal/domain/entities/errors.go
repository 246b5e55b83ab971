package entities

import "errors"

// Domain errors raised by store and link mutations. Command execution maps
// these to user-visible messages.
var (
	ErrDuplicatePerson = errors.New("person already exists in the address book")
	ErrPersonNotFound  = errors.New("person does not exist in the address book")
	ErrDuplicateEvent  = errors.New("event already exists in the address book")
	ErrEventNotFound   = errors.New("event does not exist in the address book")
	ErrDuplicateLink   = errors.New("person is already linked to the event")
	ErrLinkNotFound    = errors.New("person is not linked to the event")
)
