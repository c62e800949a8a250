// Package toc renders a nested-list table of contents from a position in the
// page tree. Rendering never fails: an empty tree or a zero depth budget
// yields an empty, well-formed list container.
package toc

import (
	"io"

	"git.home.luguber.info/inful/docdirect/internal/pagetree"

	"github.com/yuin/goldmark/util"
)

// Options bound and filter the rendered tree.
type Options struct {
	// MaxDepth is the depth budget; 0 suppresses all entries.
	MaxDepth int
	// IncludePages and IncludeHeaders filter entries by node kind. A
	// filtered-out node hides its whole subtree.
	IncludePages   bool
	IncludeHeaders bool
	// Reverse flips sibling order at every level.
	Reverse bool
	// RenderedExt rewrites ".md" page paths in emitted hrefs, e.g. ".html".
	RenderedExt string
}

// entry is one candidate list item: a header of the current page or a child
// page, in document order.
type entry struct {
	title    string
	href     string
	headers  []*pagetree.Header
	children []*pagetree.Page
	isPage   bool
	page     *pagetree.Page
}

// Render writes the table of contents for the page at the given location.
func Render(w io.Writer, current *pagetree.Page, opts Options) error {
	entries := pageEntries(current, current, opts)
	return renderList(w, current, entries, opts, opts.MaxDepth)
}

// pageEntries lists the in-scope entries directly under a page: its headers
// first, then its child pages, matching document order.
func pageEntries(from, page *pagetree.Page, opts Options) []entry {
	var entries []entry
	if opts.IncludeHeaders {
		for _, h := range page.Headers {
			entries = append(entries, headerEntry(from, page, h, opts))
		}
	}
	if opts.IncludePages {
		for _, c := range page.Children {
			entries = append(entries, entry{
				title:    c.Title,
				href:     pagetree.RelativePath(from.Path, pagetree.RewriteExtension(c.Path, opts.RenderedExt)),
				headers:  c.Headers,
				children: c.Children,
				isPage:   true,
				page:     c,
			})
		}
	}
	return entries
}

func headerEntry(from, page *pagetree.Page, h *pagetree.Header, opts Options) entry {
	href := pagetree.RelativePath(from.Path, pagetree.RewriteExtension(page.Path, opts.RenderedExt)) + "#" + h.ID
	return entry{
		title:   h.Text,
		href:    href,
		headers: h.Children,
		page:    page,
	}
}

func renderList(w io.Writer, from *pagetree.Page, entries []entry, opts Options, depth int) error {
	if _, err := io.WriteString(w, `<ul class="toc">`); err != nil {
		return err
	}
	if depth > 0 {
		ordered := entries
		if opts.Reverse {
			ordered = make([]entry, len(entries))
			for i, e := range entries {
				ordered[len(entries)-1-i] = e
			}
		}
		for _, e := range ordered {
			if err := renderItem(w, from, e, opts, depth); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, "</ul>")
	return err
}

func renderItem(w io.Writer, from *pagetree.Page, e entry, opts Options, depth int) error {
	if _, err := io.WriteString(w, `<li><a href="`); err != nil {
		return err
	}
	if _, err := w.Write(util.EscapeHTML([]byte(e.href))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `">`); err != nil {
		return err
	}
	if _, err := w.Write(util.EscapeHTML([]byte(e.title))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "</a>"); err != nil {
		return err
	}
	children := childEntries(from, e, opts)
	if depth > 1 && len(children) > 0 {
		if err := renderList(w, from, children, opts, depth-1); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</li>")
	return err
}

// childEntries lists the in-scope entries nested under an entry: for a page
// entry its headers then child pages, for a header entry its sub-headers.
func childEntries(from *pagetree.Page, e entry, opts Options) []entry {
	if e.isPage {
		return pageEntries(from, e.page, opts)
	}
	var entries []entry
	if opts.IncludeHeaders {
		for _, h := range e.headers {
			entries = append(entries, headerEntry(from, e.page, h, opts))
		}
	}
	return entries
}
