package toc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docdirect/internal/pagetree"
)

func testPage() *pagetree.Page {
	setup := &pagetree.Page{Path: "guide/setup.md", Title: "Setup", Headers: []*pagetree.Header{
		{Level: 2, ID: "install", Text: "Install"},
	}}
	usage := &pagetree.Page{Path: "guide/usage.md", Title: "Usage"}
	guide := &pagetree.Page{
		Path:  "guide/index.md",
		Title: "Guide",
		Headers: []*pagetree.Header{
			{Level: 2, ID: "overview", Text: "Overview", Children: []*pagetree.Header{
				{Level: 3, ID: "details", Text: "Details"},
			}},
		},
		Children: []*pagetree.Page{setup, usage},
	}
	pagetree.NewIndex([]*pagetree.Page{guide})
	return guide
}

func render(t *testing.T, page *pagetree.Page, opts Options) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Render(&b, page, opts))
	return b.String()
}

func defaultOpts(depth int) Options {
	return Options{MaxDepth: depth, IncludePages: true, IncludeHeaders: true, RenderedExt: ".html"}
}

func TestRender_DepthZeroIsEmptyList(t *testing.T) {
	out := render(t, testPage(), defaultOpts(0))
	require.Equal(t, `<ul class="toc"></ul>`, out)
}

func TestRender_DepthOneListsHeadersThenPages(t *testing.T) {
	out := render(t, testPage(), defaultOpts(1))
	require.Contains(t, out, `<a href="index.html#overview">Overview</a>`)
	require.Contains(t, out, `<a href="setup.html">Setup</a>`)
	require.Contains(t, out, `<a href="usage.html">Usage</a>`)
	// Document order: the header entry precedes the child pages.
	require.Less(t, strings.Index(out, "Overview"), strings.Index(out, "Setup"))
	// Depth 1 hides nested levels.
	require.NotContains(t, out, "Details")
	require.NotContains(t, out, "Install")
}

func TestRender_DepthTwoNests(t *testing.T) {
	out := render(t, testPage(), defaultOpts(2))
	require.Contains(t, out, `<a href="index.html#details">Details</a>`)
	require.Contains(t, out, `<a href="setup.html#install">Install</a>`)
}

func TestRender_DepthIsMonotonic(t *testing.T) {
	counts := make([]int, 0, 4)
	for depth := 0; depth < 4; depth++ {
		out := render(t, testPage(), defaultOpts(depth))
		counts = append(counts, strings.Count(out, "<li>"))
	}
	for i := 1; i < len(counts); i++ {
		require.GreaterOrEqual(t, counts[i], counts[i-1])
	}
}

func TestRender_PagesOnly(t *testing.T) {
	opts := Options{MaxDepth: 3, IncludePages: true, RenderedExt: ".html"}
	out := render(t, testPage(), opts)
	require.Contains(t, out, "Setup")
	require.NotContains(t, out, "Overview")
}

func TestRender_HeadersOnly(t *testing.T) {
	opts := Options{MaxDepth: 3, IncludeHeaders: true, RenderedExt: ".html"}
	out := render(t, testPage(), opts)
	require.Contains(t, out, "Overview")
	require.Contains(t, out, "Details")
	require.NotContains(t, out, "Setup")
}

func TestRender_Reverse(t *testing.T) {
	opts := defaultOpts(1)
	opts.Reverse = true
	out := render(t, testPage(), opts)
	require.Less(t, strings.Index(out, "Usage"), strings.Index(out, "Setup"))
	require.Less(t, strings.Index(out, "Setup"), strings.Index(out, "Overview"))
}

func TestRender_EmptyTree(t *testing.T) {
	page := &pagetree.Page{Path: "index.md", Title: "Home"}
	out := render(t, page, defaultOpts(6))
	require.Equal(t, `<ul class="toc"></ul>`, out)
}
