package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docdirect/internal/directive"
)

func TestScanHeader_NameOnly(t *testing.T) {
	h, pos, ok := scanHeader([]byte("toc"), 0, false)
	require.True(t, ok)
	require.Equal(t, "toc", h.name)
	require.Equal(t, 3, pos)
	require.Equal(t, directive.SourceEmpty, h.source.Kind)
}

func TestScanHeader_FullForm(t *testing.T) {
	line := []byte(`ref[See setup](guide/setup.md) { .wide #anchor depth=2 type="a b" }`)
	h, _, ok := scanHeader(line, 0, false)
	require.True(t, ok)
	require.Equal(t, "ref", h.name)
	require.Equal(t, "See setup", h.label)
	require.Equal(t, directive.SourceDirect, h.source.Kind)
	require.Equal(t, "guide/setup.md", h.source.Value)
	require.Equal(t, []string{"wide"}, h.attrs.Classes())
	require.Equal(t, []string{"anchor"}, h.attrs.Identifiers())
	require.Equal(t, "2", h.attrs.GetOrElse("depth", ""))
	require.Equal(t, "a b", h.attrs.GetOrElse("type", ""))
}

func TestScanHeader_RefSource(t *testing.T) {
	h, _, ok := scanHeader([]byte("ref[Setup][setup-page]"), 0, false)
	require.True(t, ok)
	require.Equal(t, directive.SourceRef, h.source.Kind)
	require.Equal(t, "setup-page", h.source.Value)
}

func TestScanHeader_TrailingColonAlias(t *testing.T) {
	h, _, ok := scanHeader([]byte("ref:[Setup](setup.md)"), 0, true)
	require.True(t, ok)
	require.Equal(t, "ref:", h.name)
	require.Equal(t, "ref", directive.NormalizeName(h.name))
}

func TestScanHeader_StrictRequiresBracketOrParen(t *testing.T) {
	_, _, ok := scanHeader([]byte("mention something"), 0, true)
	require.False(t, ok)

	_, _, ok = scanHeader([]byte("ref(setup.md)"), 0, true)
	require.True(t, ok)
}

func TestScanHeader_EscapedClosingBracket(t *testing.T) {
	h, _, ok := scanHeader([]byte(`ref[a \] b](x.md)`), 0, false)
	require.True(t, ok)
	require.Equal(t, "a ] b", h.label)
}

func TestScanHeader_UnterminatedGroupFails(t *testing.T) {
	_, _, ok := scanHeader([]byte("ref[oops](never"), 0, false)
	require.False(t, ok)
}

func TestScanAttributes_PositionalValues(t *testing.T) {
	a := scanAttributes(`one "two words" key=val`)
	require.Equal(t, []string{"one", "two words"}, a.Values())
	require.Equal(t, "val", a.GetOrElse("key", ""))
}
