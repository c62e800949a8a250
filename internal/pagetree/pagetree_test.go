package pagetree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestIndex() *Index {
	guide := &Page{Path: "guide/index.md", Title: "Guide", Children: []*Page{
		{Path: "guide/setup.md", Title: "Setup"},
		{Path: "guide/usage.md", Title: "Usage"},
	}}
	root := &Page{Path: "index.md", Title: "Home", Children: []*Page{guide}}
	return NewIndex([]*Page{root})
}

func TestIndex_ExistsAndLookup(t *testing.T) {
	idx := newTestIndex()
	require.True(t, idx.Exists("guide/setup.md"))
	require.True(t, idx.Exists("guide/../guide/setup.md"))
	require.False(t, idx.Exists("guide/missing.md"))

	pg, ok := idx.Page("guide/index.md")
	require.True(t, ok)
	require.Equal(t, "Guide", pg.Title)
	require.Equal(t, "index.md", pg.Parent().Path)
}

func TestResolve_RelativeAndAbsolute(t *testing.T) {
	from := &Page{Path: "guide/setup.md"}

	target, frag := Resolve(from, "usage.md")
	require.Equal(t, "guide/usage.md", target)
	require.Empty(t, frag)

	target, frag = Resolve(from, "../index.md#intro")
	require.Equal(t, "index.md", target)
	require.Equal(t, "intro", frag)

	target, _ = Resolve(from, "/guide/usage.md")
	require.Equal(t, "guide/usage.md", target)

	target, frag = Resolve(from, "#local")
	require.Equal(t, "guide/setup.md", target)
	require.Equal(t, "local", frag)
}

func TestRewriteExtension(t *testing.T) {
	require.Equal(t, "guide/setup.html", RewriteExtension("guide/setup.md", ".html"))
	require.Equal(t, "img/logo.png", RewriteExtension("img/logo.png", ".html"))
}

func TestRelativePath(t *testing.T) {
	require.Equal(t, "usage.html", RelativePath("guide/setup.md", "guide/usage.html"))
	require.Equal(t, "../index.html", RelativePath("guide/setup.md", "index.html"))
	require.Equal(t, "guide/setup.html", RelativePath("index.md", "guide/setup.html"))
	require.Equal(t, "../ref/api.html", RelativePath("guide/setup.md", "ref/api.html"))
}

func TestNestHeaders(t *testing.T) {
	flat := []*Header{
		{Level: 1, Text: "Top"},
		{Level: 2, Text: "A"},
		{Level: 3, Text: "A1"},
		{Level: 2, Text: "B"},
	}
	roots := NestHeaders(flat)
	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 2)
	require.Equal(t, "A", roots[0].Children[0].Text)
	require.Len(t, roots[0].Children[0].Children, 1)
	require.Equal(t, "B", roots[0].Children[1].Text)
}

func TestSlug(t *testing.T) {
	require.Equal(t, "getting-started", Slug("Getting Started"))
	require.Equal(t, "configuration-reference", Slug("Configuration / Reference!"))
	require.Equal(t, "uber-alles", Slug("Über alles"))
	require.Equal(t, "v0-2-1", Slug("v0.2.1"))
}
