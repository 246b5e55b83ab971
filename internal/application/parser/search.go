package parser

import (
	"github.com/ersonp/eventbook-core/internal/application/commands"
	"github.com/ersonp/eventbook-core/internal/domain/entities"
)

func parseSearch(entity EntityType, args string) (commands.Command, error) {
	switch entity {
	case EntityPerson:
		return parseSearchPerson(args)
	case EntityEvent:
		return parseSearchEvent(args)
	default:
		return nil, invalidFormat(SearchUsage)
	}
}

func parseSearchPerson(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	if m.Preamble() != "" {
		return nil, invalidFormat(SearchUsage)
	}

	var s entities.PersonSearch
	var ok bool
	if s.Names, ok = nonEmptyKeywords(m.AllValues(PrefixName)); !ok {
		return nil, invalidFormat(SearchUsage)
	}
	if s.Phones, ok = nonEmptyKeywords(m.AllValues(PrefixPhone)); !ok {
		return nil, invalidFormat(SearchUsage)
	}
	if s.Emails, ok = nonEmptyKeywords(m.AllValues(PrefixEmail)); !ok {
		return nil, invalidFormat(SearchUsage)
	}
	if s.Addresses, ok = nonEmptyKeywords(m.AllValues(PrefixAddress)); !ok {
		return nil, invalidFormat(SearchUsage)
	}
	if s.Tags, ok = nonEmptyKeywords(m.AllValues(PrefixTag)); !ok {
		return nil, invalidFormat(SearchUsage)
	}

	if len(s.Names)+len(s.Phones)+len(s.Emails)+len(s.Addresses)+len(s.Tags) == 0 {
		return nil, invalidFormat(SearchUsage)
	}
	return commands.SearchPersonCommand{Search: s}, nil
}

func parseSearchEvent(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixAddress, PrefixStartTime, PrefixTag)
	if m.Preamble() != "" {
		return nil, invalidFormat(SearchUsage)
	}

	var s entities.EventSearch
	var ok bool
	if s.Names, ok = nonEmptyKeywords(m.AllValues(PrefixName)); !ok {
		return nil, invalidFormat(SearchUsage)
	}
	if s.Addresses, ok = nonEmptyKeywords(m.AllValues(PrefixAddress)); !ok {
		return nil, invalidFormat(SearchUsage)
	}
	if s.Starts, ok = nonEmptyKeywords(m.AllValues(PrefixStartTime)); !ok {
		return nil, invalidFormat(SearchUsage)
	}
	if s.Tags, ok = nonEmptyKeywords(m.AllValues(PrefixTag)); !ok {
		return nil, invalidFormat(SearchUsage)
	}

	if len(s.Names)+len(s.Addresses)+len(s.Starts)+len(s.Tags) == 0 {
		return nil, invalidFormat(SearchUsage)
	}
	return commands.SearchEventCommand{Search: s}, nil
}
