package helpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SiteAssertions provides utilities for asserting on a rendered site tree.
type SiteAssertions struct {
	t       *testing.T
	siteDir string
}

// NewSiteAssertions creates an assertions helper rooted at siteDir.
func NewSiteAssertions(t *testing.T, siteDir string) *SiteAssertions {
	return &SiteAssertions{
		t:       t,
		siteDir: siteDir,
	}
}

// AssertRendered validates that a page was rendered to the given relative path.
func (sa *SiteAssertions) AssertRendered(relativePath string) *SiteAssertions {
	sa.t.Helper()
	fullPath := filepath.Join(sa.siteDir, filepath.FromSlash(relativePath))
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		sa.t.Errorf("Expected rendered page to exist: %s", fullPath)
	}
	return sa
}

// AssertNotRendered validates that no output exists at the given relative path.
func (sa *SiteAssertions) AssertNotRendered(relativePath string) *SiteAssertions {
	sa.t.Helper()
	fullPath := filepath.Join(sa.siteDir, filepath.FromSlash(relativePath))
	if _, err := os.Stat(fullPath); err == nil {
		sa.t.Errorf("Expected no output at: %s", fullPath)
	}
	return sa
}

// AssertFragmentContains validates that a rendered fragment contains the
// expected HTML.
func (sa *SiteAssertions) AssertFragmentContains(relativePath, expected string) *SiteAssertions {
	sa.t.Helper()
	fullPath := filepath.Join(sa.siteDir, filepath.FromSlash(relativePath))

	content, err := os.ReadFile(fullPath) // #nosec G304 - test helper, paths are controlled by test code
	if err != nil {
		sa.t.Errorf("Failed to read fragment %s: %v", fullPath, err)
		return sa
	}
	if !strings.Contains(string(content), expected) {
		sa.t.Errorf("Expected fragment %s to contain %q\nActual content:\n%s",
			relativePath, expected, string(content))
	}
	return sa
}

// WriteDocsTree materializes a docs tree from relative path to markdown
// body, returning the docs directory.
func WriteDocsTree(t *testing.T, pages map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, body := range pages {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("failed to create docs dir: %v", err)
		}
		if err := os.WriteFile(full, []byte(body), 0o644); err != nil {
			t.Fatalf("failed to write page %s: %v", rel, err)
		}
	}
	return dir
}
