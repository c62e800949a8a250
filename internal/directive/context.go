package directive

import (
	"log/slog"

	"git.home.luguber.info/inful/docdirect/internal/observability"
	"git.home.luguber.info/inful/docdirect/internal/pagetree"
	"git.home.luguber.info/inful/docdirect/internal/properties"
)

// Context carries everything a handler needs for one page render. All fields
// except Metrics are read-only snapshots; contexts are cheap values built
// once per page.
type Context struct {
	// Properties is the flat configuration property map.
	Properties properties.Map
	// Page is the page being rendered.
	Page *pagetree.Page
	// Index is the site-wide page forest, for existence checks and TOC.
	Index *pagetree.Index
	// SnippetBase is the directory absolute snippet paths resolve against.
	SnippetBase string
	// PageDir is the on-disk directory of the current page, for relative
	// snippet paths.
	PageDir string
	// RenderedExt rewrites ".md" in emitted internal hrefs, e.g. ".html".
	RenderedExt string
	// TocDepth is the default TOC depth when the directive gives none.
	TocDepth int
	// Logger receives warnings (e.g. unmatched snippet labels). Nil disables.
	Logger *slog.Logger
	// Metrics counts rendered directives and failures. Nil disables.
	Metrics *observability.Metrics
}

// Rewrite maps a source page path to its rendered form.
func (c *Context) Rewrite(path string) string {
	return pagetree.RewriteExtension(path, c.RenderedExt)
}

func (c *Context) warn(msg string, args ...any) {
	if c.Logger != nil {
		c.Logger.Warn(msg, args...)
	}
}
