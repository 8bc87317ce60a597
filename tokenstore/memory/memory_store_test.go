package memorystore_test

import (
	"testing"

	memorystore "github.com/jrsteele09/torneo-pingpong/tokenstore/memory"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := memorystore.New()

	_, ok := s.Read()
	require.False(t, ok)

	s.Write("abc")
	token, ok := s.Read()
	require.True(t, ok)
	require.Equal(t, "abc", token)

	s.Write("def")
	token, _ = s.Read()
	require.Equal(t, "def", token)

	s.Clear()
	_, ok = s.Read()
	require.False(t, ok)

	s.Clear()
	_, ok = s.Read()
	require.False(t, ok)
}

func TestMemoryStore_NewWithToken(t *testing.T) {
	token, ok := memorystore.NewWithToken("persisted").Read()
	require.True(t, ok)
	require.Equal(t, "persisted", token)
}
