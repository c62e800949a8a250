package sets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetBasics(t *testing.T) {
	s := New("a", "b")
	require.True(t, s.Has("a"))
	require.False(t, s.Has("c"))

	s.Add("c")
	require.True(t, s.Has("c"))
	require.Equal(t, 3, s.Len())

	s.Delete("a")
	require.False(t, s.Has("a"))
}

func TestCloneIsIndependent(t *testing.T) {
	s := New(1, 2)
	c := s.Clone()
	c.Add(3)
	require.False(t, s.Has(3))
	require.True(t, c.Has(3))
}

func TestSortedStrings(t *testing.T) {
	s := New("guide/setup.md", "index.md", "api.md")
	require.Equal(t, []string{"api.md", "guide/setup.md", "index.md"}, SortedStrings(s))
}
