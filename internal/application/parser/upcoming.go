package parser

import (
	"strconv"
	"strings"

	"github.com/ersonp/eventbook-core/internal/application/commands"
	"github.com/ersonp/eventbook-core/internal/domain/entities"
)

func parseUpcoming(args string) (commands.Command, error) {
	arg := strings.TrimSpace(args)
	if arg == "" {
		return nil, invalidFormat(UpcomingUsage)
	}
	if days, err := strconv.Atoi(arg); err == nil {
		return commands.UpcomingCommand{Days: days}, nil
	}
	date, err := entities.NewDate(arg)
	if err != nil {
		return nil, invalidFormat(UpcomingUsage)
	}
	return commands.UpcomingCommand{Date: &date}, nil
}

func parseSchedule(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixStartTime, PrefixEnd)
	if m.Preamble() != "" || !allPresent(m, PrefixStartTime, PrefixEnd) {
		return nil, invalidFormat(ScheduleUsage)
	}
	if msg := m.VerifyNoDuplicates(PrefixStartTime, PrefixEnd); msg != "" {
		return nil, invalidFormat(msg)
	}

	startValue, _ := m.Value(PrefixStartTime)
	start, err := parseWindowBound(startValue, false)
	if err != nil {
		return nil, err
	}
	endValue, _ := m.Value(PrefixEnd)
	end, err := parseWindowBound(endValue, true)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, invalidFormat(ScheduleUsage)
	}
	return commands.ScheduleCommand{Start: start, End: end}, nil
}
