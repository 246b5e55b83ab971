package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Run("preamble and prefixed values", func(t *testing.T) {
		m := Tokenize(" 1 n/Alice p/123", PrefixName, PrefixPhone)

		assert.Equal(t, "1", m.Preamble())
		name, ok := m.Value(PrefixName)
		require.True(t, ok)
		assert.Equal(t, "Alice", name)
		phone, ok := m.Value(PrefixPhone)
		require.True(t, ok)
		assert.Equal(t, "123", phone)
	})

	t.Run("no prefixes yields all preamble", func(t *testing.T) {
		m := Tokenize(" some free text", PrefixName)
		assert.Equal(t, "some free text", m.Preamble())
		_, ok := m.Value(PrefixName)
		assert.False(t, ok)
	})

	t.Run("values run to the next prefix and are trimmed", func(t *testing.T) {
		m := Tokenize(" n/John Doe a/311, Clementi Ave 2, #02-25", PrefixName, PrefixAddress)

		name, _ := m.Value(PrefixName)
		assert.Equal(t, "John Doe", name)
		address, _ := m.Value(PrefixAddress)
		assert.Equal(t, "311, Clementi Ave 2, #02-25", address)
	})

	t.Run("marker inside a token is not a prefix", func(t *testing.T) {
		m := Tokenize(" n/input/output", PrefixName, PrefixPhone)
		name, _ := m.Value(PrefixName)
		assert.Equal(t, "input/output", name)
	})

	t.Run("marker must follow whitespace", func(t *testing.T) {
		m := Tokenize(" e/alice@p/example.com", PrefixEmail, PrefixPhone)
		email, _ := m.Value(PrefixEmail)
		assert.Equal(t, "alice@p/example.com", email)
		_, ok := m.Value(PrefixPhone)
		assert.False(t, ok)
	})

	t.Run("value returns last occurrence", func(t *testing.T) {
		m := Tokenize(" n/Alice n/Bob", PrefixName)
		name, _ := m.Value(PrefixName)
		assert.Equal(t, "Bob", name)
		assert.Equal(t, []string{"Alice", "Bob"}, m.AllValues(PrefixName))
	})

	t.Run("empty value distinguished from absent", func(t *testing.T) {
		m := Tokenize(" t/", PrefixTag)
		v, ok := m.Value(PrefixTag)
		assert.True(t, ok)
		assert.Equal(t, "", v)
	})

	t.Run("duplicate prefix argument tokenized once", func(t *testing.T) {
		// PrefixEmail and PrefixEnd share the "e/" marker.
		m := Tokenize(" e/a@x.com", PrefixEmail, PrefixEnd)
		assert.Equal(t, []string{"a@x.com"}, m.AllValues(PrefixEmail))
	})
}

func TestVerifyNoDuplicates(t *testing.T) {
	t.Run("no duplicates", func(t *testing.T) {
		m := Tokenize(" n/Alice p/123", PrefixName, PrefixPhone)
		assert.Empty(t, m.VerifyNoDuplicates(PrefixName, PrefixPhone))
	})

	t.Run("duplicates reported", func(t *testing.T) {
		m := Tokenize(" n/Alice n/Bob p/1 p/2", PrefixName, PrefixPhone)
		msg := m.VerifyNoDuplicates(PrefixName, PrefixPhone)
		assert.Contains(t, msg, "n/")
		assert.Contains(t, msg, "p/")
	})

	t.Run("repeatable prefix not checked", func(t *testing.T) {
		m := Tokenize(" t/a t/b", PrefixTag)
		assert.Empty(t, m.VerifyNoDuplicates(PrefixName))
	})
}
