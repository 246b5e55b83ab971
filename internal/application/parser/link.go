package parser

import (
	"github.com/ersonp/eventbook-core/internal/application/commands"
)

func parseLink(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixAddress, PrefixStartTime, PrefixTag)
	index, ok := parseIndex(m.Preamble())
	if !ok {
		return nil, invalidFormat(LinkUsage)
	}
	if !allPresent(m, PrefixName, PrefixAddress, PrefixStartTime) {
		return nil, invalidFormat(LinkUsage)
	}
	if msg := m.VerifyNoDuplicates(PrefixName, PrefixAddress, PrefixStartTime); msg != "" {
		return nil, invalidFormat(msg)
	}
	event, err := parseEventIdentity(m, true)
	if err != nil {
		return nil, err
	}
	return commands.LinkCommand{Index: index, Event: event}, nil
}

func parseUnlink(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixAddress, PrefixStartTime)
	index, ok := parseIndex(m.Preamble())
	if !ok {
		return nil, invalidFormat(UnlinkUsage)
	}
	if !allPresent(m, PrefixName, PrefixAddress, PrefixStartTime) {
		return nil, invalidFormat(UnlinkUsage)
	}
	if msg := m.VerifyNoDuplicates(PrefixName, PrefixAddress, PrefixStartTime); msg != "" {
		return nil, invalidFormat(msg)
	}
	event, err := parseEventIdentity(m, false)
	if err != nil {
		return nil, err
	}
	return commands.UnlinkCommand{Index: index, Event: event}, nil
}
