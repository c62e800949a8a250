package check

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFragment(t *testing.T, dir, rel, content string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func TestSiteAllLinksResolve(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "index.html",
		`<p><a href="guide/setup.html">Setup</a> and <a href="guide/setup.html#install">install</a></p>`)
	writeFragment(t, dir, "guide/setup.html",
		`<h1 id="setup">Setup</h1><h2 id="install">Install</h2><a href="../index.html">home</a>`)

	report, err := Site(dir, nil)
	require.NoError(t, err)
	require.False(t, report.Failed())
	require.Equal(t, 2, report.Pages)
	require.Equal(t, 3, report.Links)
}

func TestSiteMissingTarget(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "index.html", `<a href="gone.html">gone</a>`)

	report, err := Site(dir, nil)
	require.NoError(t, err)
	require.True(t, report.Failed())
	require.Len(t, report.Problems, 1)
	require.Equal(t, "index.html", report.Problems[0].Page)
	require.Equal(t, "gone.html", report.Problems[0].URL)
}

func TestSiteMissingAnchor(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "index.html", `<a href="page.html#nope">ref</a>`)
	writeFragment(t, dir, "page.html", `<h1 id="title">Title</h1>`)

	report, err := Site(dir, nil)
	require.NoError(t, err)
	require.Len(t, report.Problems, 1)
	require.Contains(t, report.Problems[0].Reason, "anchor #nope")
}

func TestSiteSamePageAnchor(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "index.html", `<h2 id="here">Here</h2><a href="#here">jump</a><a href="#gone">broken</a>`)

	report, err := Site(dir, nil)
	require.NoError(t, err)
	require.Len(t, report.Problems, 1)
	require.Equal(t, "#gone", report.Problems[0].URL)
}

func TestSiteSkipsExternal(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "index.html",
		`<a href="https://example.com/missing">x</a><a href="mailto:a@b.c">m</a>`)

	report, err := Site(dir, nil)
	require.NoError(t, err)
	require.False(t, report.Failed())
}

func TestSiteImageSources(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "index.html", `<img src="img/logo.html" alt="logo">`)

	report, err := Site(dir, nil)
	require.NoError(t, err)
	require.True(t, report.Failed())
}

func TestExtractFromReader(t *testing.T) {
	links, ids, err := extractFromReader(strings.NewReader(
		`<h1 id="top">Top</h1><a href="a.html">first link</a>`))
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.Equal(t, "first link", links[0].Text)
	require.True(t, ids["top"])
}
