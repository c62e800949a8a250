package properties

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetDistinguishesEmptyFromAbsent(t *testing.T) {
	m := NewMap(map[string]string{"empty": ""})
	require.True(t, m.Get("empty").IsSome())
	require.True(t, m.Get("absent").IsNone())
}

func TestNewMapCopies(t *testing.T) {
	src := map[string]string{"version": "1.0"}
	m := NewMap(src)
	src["version"] = "mutated"
	require.Equal(t, "1.0", m.Get("version").Unwrap())
}

func TestKeysSorted(t *testing.T) {
	m := NewMap(map[string]string{"b": "2", "a": "1", "c": "3"})
	require.Equal(t, []string{"a", "b", "c"}, m.Keys())
	require.Equal(t, 3, m.Len())
}

func TestMergedLayersOverrides(t *testing.T) {
	base := NewMap(map[string]string{"version": "1.0", "keep": "yes"})
	merged := base.Merged(map[string]string{"version": "2.0", "extra": "new"})

	require.Equal(t, "2.0", merged.Get("version").Unwrap())
	require.Equal(t, "yes", merged.Get("keep").Unwrap())
	require.Equal(t, "new", merged.Get("extra").Unwrap())

	// Receiver untouched.
	require.Equal(t, "1.0", base.Get("version").Unwrap())
	require.False(t, base.Has("extra"))
}

func TestMergedEmptyReturnsReceiver(t *testing.T) {
	base := NewMap(map[string]string{"a": "1"})
	require.Equal(t, base, base.Merged(nil))
}
