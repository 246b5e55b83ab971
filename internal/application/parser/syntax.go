// Package parser turns input lines into typed commands. The line parser
// splits verb, optional entity discriminator, and argument body; the
// tokenizer splits the body into a preamble and prefixed values; per-verb
// parsers validate and build command values.
package parser

import (
	"errors"
	"fmt"
)

// Prefix marks the start of a tagged argument value, e.g. "n/" in "n/Alice".
type Prefix string

// Recognized argument prefixes. PrefixEnd shares the "e/" marker with
// PrefixEmail; which meaning applies is decided by the verb's parser.
const (
	PrefixName      Prefix = "n/"
	PrefixPhone     Prefix = "p/"
	PrefixEmail     Prefix = "e/"
	PrefixAddress   Prefix = "a/"
	PrefixStartTime Prefix = "s/"
	PrefixEnd       Prefix = "e/"
	PrefixTag       Prefix = "t/"
)

// MessageInvalidFormat frames a usage string for format errors.
const MessageInvalidFormat = "Invalid command format! \n%s"

// ErrUnknownCommand is returned for an unrecognized verb.
var ErrUnknownCommand = errors.New("Unknown command")

// FormatError reports malformed input for a known verb, carrying its usage
// string.
type FormatError struct {
	Usage string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf(MessageInvalidFormat, e.Usage)
}

func invalidFormat(usage string) error {
	return &FormatError{Usage: usage}
}

// Usage strings per verb.
const (
	AddUsage = "add: Adds a person or event to the address book.\n" +
		"Person parameters: add p n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...\n" +
		"Event parameters: add e n/NAME a/ADDRESS s/YYYY-MM-DD HH:MM [t/TAG]...\n" +
		"Example: add p n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 t/friends"

	EditUsage = "Use \"edit p\" or \"edit e\" to specify person or event to be edited."

	EditPersonUsage = "edit p: Edits the details of the person identified by the index number used in the displayed person list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...\n" +
		"Example: edit p 1 p/91234567 e/johndoe@example.com"

	EditEventUsage = "edit e: Edits the details of the event identified by the index number used in the displayed event list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [a/ADDRESS] [s/YYYY-MM-DD HH:MM] [t/TAG]...\n" +
		"Example: edit e 1 n/Winter Expo s/2024-10-15 14:30"

	DeleteUsage = "delete: Deletes the person or event identified by the index number used in the displayed list.\n" +
		"Parameters: p|e INDEX (must be a positive integer)\n" +
		"Example: delete p 1"

	FindUsage = "find: Finds all persons or events whose names contain any of the specified keywords (case-insensitive) " +
		"and displays them as a list with index numbers.\n" +
		"Parameters: p|e KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: find p alice bob charlie"

	SearchUsage = "search: Finds all persons or events matching every supplied field. Repeated prefixes of the same field " +
		"match if any value matches.\n" +
		"Person parameters: search p [n/NAME]... [p/PHONE]... [e/EMAIL]... [a/ADDRESS]... [t/TAG]...\n" +
		"Event parameters: search e [n/NAME]... [a/ADDRESS]... [s/START]... [t/TAG]...\n" +
		"Example: search p n/alice t/friends"

	UpcomingUsage = "upcoming: Input an integer to find all events that happen in the next/past N days " +
		"or input a date to find events on that date.\n" +
		"Parameters: NUM_OF_DAYS or YYYY-MM-DD\n" +
		"Example: upcoming 5 or upcoming 2024-01-01"

	ScheduleUsage = "schedule: Shows the events within a time window, in chronological order.\n" +
		"Parameters: s/START e/END (each YYYY-MM-DD HH:MM or YYYY-MM-DD)\n" +
		"Example: schedule s/2024-10-01 e/2024-10-07"

	LinkUsage = "link: Links the identified person to an event in the address book.\n" +
		"Parameters: INDEX (must be a positive integer) n/NAME a/ADDRESS s/YYYY-MM-DD HH:MM [t/TAG]...\n" +
		"Example: link 1 n/Winter Time Convention a/311, Clementi Ave 2, #02-25 s/2024-10-15 14:30 t/fashion"

	UnlinkUsage = "unlink: Unlinks the identified person from an event in the address book.\n" +
		"Parameters: INDEX (must be a positive integer) n/NAME a/ADDRESS s/YYYY-MM-DD HH:MM\n" +
		"Example: unlink 1 n/Winter Time Convention a/311, Clementi Ave 2, #02-25 s/2024-10-15 14:30"

	HelpUsage = "help: Shows program usage instructions.\n" +
		"Example: help"
)

// HelpText is the full usage text shown by the help command.
const HelpText = AddUsage + "\n\n" +
	EditPersonUsage + "\n\n" +
	EditEventUsage + "\n\n" +
	DeleteUsage + "\n\n" +
	FindUsage + "\n\n" +
	SearchUsage + "\n\n" +
	UpcomingUsage + "\n\n" +
	ScheduleUsage + "\n\n" +
	LinkUsage + "\n\n" +
	UnlinkUsage + "\n\n" +
	"list: Shows all persons and events.\n\n" +
	"clear: Clears all entries from the address book.\n\n" +
	"exit: Exits the program."
