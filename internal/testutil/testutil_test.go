package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/itemcheck/internal/store"
)

func TestFixedRunIDGenerator_ReturnsSameID(t *testing.T) {
	gen := NewFixedRunIDGenerator("test-run-123")

	assert.Equal(t, "test-run-123", gen.Generate())
	assert.Equal(t, "test-run-123", gen.Generate())
}

func TestFixedRunIDGenerator_EmptyIDDefault(t *testing.T) {
	gen := NewFixedRunIDGenerator("")

	assert.Equal(t, "test-run-default", gen.Generate())
}

func TestSeededDatabase(t *testing.T) {
	path := SeededDatabase(t)

	s, err := store.Open(context.Background(), path)
	require.NoError(t, err)
	defer s.Close()

	n, err := s.CountRows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(100), n)
}

func TestCorruptDatabase(t *testing.T) {
	path := CorruptDatabase(t, 37)

	s, err := store.Open(context.Background(), path)
	require.NoError(t, err)
	defer s.Close()

	n, err := s.CountRows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(37), n)
}
