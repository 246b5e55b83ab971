package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ersonp/eventbook-core/internal/application/commands"
	"github.com/ersonp/eventbook-core/internal/domain/entities"
)

// parseIndex parses a one-based index from the preamble.
func parseIndex(preamble string) (commands.Index, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(preamble))
	if err != nil || n <= 0 {
		return 0, false
	}
	return commands.Index(n), true
}

// allPresent reports whether every prefix has at least one value.
func allPresent(m *ArgumentMultimap, prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if _, ok := m.Value(p); !ok {
			return false
		}
	}
	return true
}

// parseTagOverlay interprets tag values for edit commands: absent means keep,
// a single empty value clears the set, anything else replaces it.
func parseTagOverlay(values []string) (*[]entities.Tag, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) == 1 && values[0] == "" {
		empty := []entities.Tag{}
		return &empty, nil
	}
	tags, err := entities.NewTagSet(values)
	if err != nil {
		return nil, err
	}
	return &tags, nil
}

// nonEmptyKeywords validates search values: the prefix may repeat but each
// value must be non-empty.
func nonEmptyKeywords(values []string) ([]string, bool) {
	for _, v := range values {
		if v == "" {
			return nil, false
		}
	}
	return values, true
}

// parseWindowBound parses a schedule bound as a datetime, or as a bare date
// widened to the start or end of that day.
func parseWindowBound(value string, endOfDay bool) (entities.DateTime, error) {
	if dt, err := entities.NewDateTime(value); err == nil {
		return dt, nil
	}
	dt, err := entities.NewDate(value)
	if err != nil {
		return entities.DateTime{}, err
	}
	if endOfDay {
		dt.Time = dt.Time.Add(23*time.Hour + 59*time.Minute)
	}
	return dt, nil
}
