package directive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttributes_Lookups(t *testing.T) {
	a := NewAttributes(
		map[string]string{"depth": "2", "type": "scala"},
		[]string{"first", "second"},
		[]string{"wide"},
		[]string{"setup", "teardown"},
	)

	require.Equal(t, "2", a.Get("depth").Unwrap())
	require.True(t, a.Get("missing").IsNone())
	require.Equal(t, "fallback", a.GetOrElse("missing", "fallback"))
	require.Equal(t, []string{"first", "second"}, a.Values())
	require.Equal(t, []string{"wide"}, a.Classes())
	require.Equal(t, []string{"setup", "teardown"}, a.Identifiers())
	require.False(t, a.IsEmpty())
}

func TestAttributes_ZeroValueIsEmpty(t *testing.T) {
	var a Attributes
	require.True(t, a.IsEmpty())
	require.True(t, a.Get("x").IsNone())
	require.Empty(t, a.Values())
}
