package id

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New()
	assert.Len(t, s, 26)

	_, err := ulid.ParseStrict(s)
	require.NoError(t, err, "New must produce a canonical ULID")
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		s := New()
		require.False(t, seen[s], "duplicate id %s", s)
		seen[s] = true
	}
}

func TestNewOrdered(t *testing.T) {
	prev := New()
	for i := 0; i < 100; i++ {
		next := New()
		assert.Less(t, prev, next, "ids must be lexicographically increasing")
		prev = next
	}
}
