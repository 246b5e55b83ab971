package commands

import "errors"

// User-visible result and error messages.
const (
	MessageAddPersonSuccess  = "New person added: %s"
	MessageAddEventSuccess   = "New event added: %s"
	MessageEditPersonSuccess = "Edited Person: %s"
	MessageEditEventSuccess  = "Edited Event: %s"
	MessageDeletePersonSuccess = "Deleted Person: %s"
	MessageDeleteEventSuccess  = "Deleted Event: %s"
	MessageLinkSuccess       = "Person linked to event: %s"
	MessageUnlinkSuccess     = "Person unlinked from event: %s"
	MessagePersonsListed     = "%d persons listed!"
	MessageEventsListed      = "%d events listed!"
	MessageListedAll         = "Listed all persons and events"
	MessageCleared           = "Address book has been cleared!"
	MessageExit              = "Exiting Address Book as requested ..."
	MessageHelp              = "Opened help window."
)

// Command errors. Their text is shown to the user verbatim.
var (
	ErrInvalidPersonIndex = errors.New("The person index provided is invalid")
	ErrInvalidEventIndex  = errors.New("The event index provided is invalid")
	ErrDuplicatePerson    = errors.New("This person already exists in the address book")
	ErrDuplicateEvent     = errors.New("This event already exists in the address book")
	ErrEventNotFound      = errors.New("This event does not exist in the address book")
	ErrDuplicateLink      = errors.New("This person is already linked to the event")
	ErrLinkNotFound       = errors.New("This person is not linked to the event")
	ErrNoFieldEdited      = errors.New("At least one field to edit must be provided.")
)
