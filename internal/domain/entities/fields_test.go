package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Name
		wantErr bool
	}{
		{name: "simple name", input: "Alice", want: "Alice"},
		{name: "name with spaces", input: "John Doe", want: "John Doe"},
		{name: "alphanumeric", input: "John the 2nd", want: "John the 2nd"},
		{name: "surrounding whitespace trimmed", input: "  Alice  ", want: "Alice"},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "blank rejected", input: "   ", wantErr: true},
		{name: "special characters rejected", input: "Alice*", wantErr: true},
		{name: "leading space trimmed before validation", input: " Alice", want: "Alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, NameConstraints, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "three digits", input: "911"},
		{name: "typical number", input: "91234567"},
		{name: "fifteen digits", input: "123456789012345"},
		{name: "too short", input: "91", wantErr: true},
		{name: "too long", input: "1234567890123456", wantErr: true},
		{name: "letters rejected", input: "9123456a", wantErr: true},
		{name: "separators rejected", input: "9123-4567", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPhone(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Phone(tt.input), got)
		})
	}
}

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "typical email", input: "alice@example.com"},
		{name: "local part with plus", input: "alice+tag@example.com"},
		{name: "no domain dot required", input: "alice@example"},
		{name: "missing at sign", input: "alice.example.com", wantErr: true},
		{name: "empty local part", input: "@example.com", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEmail(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewAddress(t *testing.T) {
	t.Run("any non-blank text accepted", func(t *testing.T) {
		a, err := NewAddress("311, Clementi Ave 2, #02-25")
		require.NoError(t, err)
		assert.Equal(t, Address("311, Clementi Ave 2, #02-25"), a)
	})

	t.Run("blank rejected", func(t *testing.T) {
		_, err := NewAddress("   ")
		require.Error(t, err)
		assert.Equal(t, AddressConstraints, err.Error())
	})
}

func TestNewTag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "alphanumeric", input: "friends"},
		{name: "mixed case", input: "VIP2"},
		{name: "space rejected", input: "best friend", wantErr: true},
		{name: "too long", input: "0123456789012345678901234567890", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTag(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewTagSet(t *testing.T) {
	t.Run("sorted and deduplicated", func(t *testing.T) {
		tags, err := NewTagSet([]string{"friends", "colleagues", "friends"})
		require.NoError(t, err)
		assert.Equal(t, []Tag{"colleagues", "friends"}, tags)
	})

	t.Run("empty input yields empty set", func(t *testing.T) {
		tags, err := NewTagSet(nil)
		require.NoError(t, err)
		assert.Empty(t, tags)
	})

	t.Run("one invalid value fails the set", func(t *testing.T) {
		_, err := NewTagSet([]string{"friends", "not ok"})
		require.Error(t, err)
	})
}

func TestFormatTags(t *testing.T) {
	assert.Equal(t, "", FormatTags(nil))
	assert.Equal(t, "[a][b]", FormatTags([]Tag{"a", "b"}))
}
