package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docdirect/internal/config"
	helpers "git.home.luguber.info/inful/docdirect/internal/testutil/testutils"
)

func cliConfig(t *testing.T, docs string) *config.Config {
	t.Helper()
	return &config.Config{
		Docs:     config.DocsConfig{Dir: docs},
		Output:   config.OutputConfig{Directory: t.TempDir()},
		Snippets: config.SnippetConfig{Dir: docs},
		Toc:      config.TocConfig{Depth: 6},
	}
}

func TestRunBuildThenCheck(t *testing.T) {
	docs := helpers.WriteDocsTree(t, map[string]string{
		"index.md":       "# Home\n\nSee the @ref[guide](guide/index.md).\n",
		"guide/index.md": "# Guide\n\n@@toc\n",
		"guide/setup.md": "# Setup\n\n## Install\n",
	})
	cfg := cliConfig(t, docs)

	require.NoError(t, runBuild(cfg))

	helpers.NewSiteAssertions(t, cfg.Output.Directory).
		AssertRendered("index.html").
		AssertRendered("guide/index.html").
		AssertRendered("guide/setup.html").
		AssertFragmentContains("index.html", `<a href="guide/index.html">guide</a>`)

	require.NoError(t, runCheck(cfg.Output.Directory))
}

func TestRunBuildReportsBrokenReferences(t *testing.T) {
	docs := helpers.WriteDocsTree(t, map[string]string{
		"index.md": "# Home\n\n@ref[gone](missing.md)\n",
	})
	cfg := cliConfig(t, docs)

	err := runBuild(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 1 pages failed to render")

	helpers.NewSiteAssertions(t, cfg.Output.Directory).
		AssertNotRendered("index.html")
}

func TestRunCheckFindsBrokenLink(t *testing.T) {
	site := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(site, "index.html"), []byte(`<a href="gone.html">x</a>`), 0o644))

	err := runCheck(site)
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken links")
}
