package parser

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/ersonp/eventbook-core/internal/application/commands"
)

// EntityType is the entity discriminator parsed from the second token.
type EntityType int

// Entity discriminators.
const (
	EntityNone EntityType = iota
	EntityPerson
	EntityEvent
)

// basicCommandFormat splits the verb, the candidate discriminator token, and
// the rest of the line.
var basicCommandFormat = regexp.MustCompile(`(?s)^(?P<commandWord>\S+)(?:\s+(?P<modelType>\S+)?(?:\s+(?P<arguments>.*))?)?$`)

func entityFromShorthand(s string) EntityType {
	switch s {
	case "p":
		return EntityPerson
	case "e":
		return EntityEvent
	default:
		return EntityNone
	}
}

// Parse turns one input line into a command.
func Parse(input string) (commands.Command, error) {
	m := basicCommandFormat.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return nil, invalidFormat(HelpUsage)
	}

	word := m[1]
	shorthand := m[2]
	entity := entityFromShorthand(shorthand)

	// When the second token is not a discriminator it belongs to the
	// argument body. The leading space keeps the first prefix recognizable by
	// the tokenizer, which only accepts prefixes that follow whitespace.
	var args string
	if entity == EntityNone {
		args = " " + shorthand + " " + m[3]
	} else {
		args = " " + m[3]
	}

	slog.Debug("parsing command", "word", word, "entity", shorthand)

	switch word {
	case "add":
		return parseAdd(entity, args)
	case "edit":
		return parseEdit(entity, args)
	case "delete":
		return parseDelete(entity, args)
	case "find":
		return parseFind(entity, args)
	case "search":
		return parseSearch(entity, args)
	case "upcoming":
		return parseUpcoming(args)
	case "schedule":
		return parseSchedule(args)
	case "link":
		return parseLink(args)
	case "unlink":
		return parseUnlink(args)
	case "list":
		return commands.ListCommand{}, nil
	case "clear":
		return commands.ClearCommand{}, nil
	case "help":
		return commands.HelpCommand{}, nil
	case "exit":
		return commands.ExitCommand{}, nil
	default:
		slog.Debug("unknown command word", "word", word)
		return nil, ErrUnknownCommand
	}
}
