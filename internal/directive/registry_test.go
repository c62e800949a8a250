package directive

import (
	"testing"

	"github.com/stretchr/testify/require"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
)

type fakeHandler struct {
	names   []string
	formats FormatSet
	calls   int
}

func (f *fakeHandler) Names() []string    { return f.names }
func (f *fakeHandler) Formats() FormatSet { return f.formats }

func (f *fakeHandler) Render(w util.BufWriter, source []byte, n gmast.Node, d *Node, entering bool) (gmast.WalkStatus, error) {
	f.calls++
	return gmast.WalkSkipChildren, nil
}

func TestNewRegistry_DuplicateNameFails(t *testing.T) {
	_, err := NewRegistry(
		&fakeHandler{names: []string{"ref"}, formats: InlineFormats},
		&fakeHandler{names: []string{"REF"}, formats: LeafFormats},
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), `duplicate directive name "ref"`)
}

func TestRegistry_LookupNormalizesNames(t *testing.T) {
	h := &fakeHandler{names: []string{"ref"}, formats: InlineFormats}
	reg, err := NewRegistry(h)
	require.NoError(t, err)

	for _, name := range []string{"ref", "Ref", "REF", "ref:"} {
		got, ok := reg.Lookup(name)
		require.True(t, ok, name)
		require.Same(t, h, got)
	}
	_, ok := reg.Lookup("other")
	require.False(t, ok)
}

func TestRegistry_FormatMismatchIsSilentlyDropped(t *testing.T) {
	h := &fakeHandler{names: []string{"snip"}, formats: LeafFormats}
	reg, err := NewRegistry(h)
	require.NoError(t, err)

	d := &Node{Name: "snip", Format: FormatInline}
	status, err := reg.Render(nil, nil, nil, d, true)
	require.NoError(t, err)
	require.Equal(t, gmast.WalkSkipChildren, status)
	require.Zero(t, h.calls)
}

func TestRegistry_UnknownNameIsSilentlyDropped(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	d := &Node{Name: "mystery", Format: FormatLeafBlock}
	status, err := reg.Render(nil, nil, nil, d, true)
	require.NoError(t, err)
	require.Equal(t, gmast.WalkSkipChildren, status)
}

func TestDefault_RegistersBuiltins(t *testing.T) {
	reg, err := Default(&Context{})
	require.NoError(t, err)
	for _, name := range []string{"ref", "extref", "scaladoc", "javadoc", "apidoc", "github", "snip", "toc", "var", "vars", "note"} {
		_, ok := reg.Lookup(name)
		require.True(t, ok, name)
	}
}

func TestFormatSet(t *testing.T) {
	require.True(t, InlineFormats.Has(FormatInline))
	require.False(t, InlineFormats.Has(FormatLeafBlock))
	require.True(t, AllFormats.Has(FormatContainerBlock))
}

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "ref", NormalizeName("Ref:"))
	require.Equal(t, "github", NormalizeName("GITHUB"))
}
