// Package pagetree models the already-built forest of documentation pages and
// their headers. The tree is constructed once per build and is read-only
// during rendering, so it may be shared across concurrent page renders.
package pagetree

import (
	"path"
	"sort"
	"strings"

	"git.home.luguber.info/inful/docdirect/internal/util/sets"
)

// Header is one heading inside a page, nested by heading level.
type Header struct {
	Level    int
	ID       string
	Text     string
	Children []*Header
}

// Page is a discovered source page.
type Page struct {
	// Path is the source-relative path, e.g. "guide/setup.md".
	Path  string
	Title string
	// Headers holds the page's top-level headers in document order.
	Headers []*Header
	// Children holds child pages in navigation order. Only index pages
	// (a directory's index.md) carry children.
	Children []*Page

	parent *Page
}

// Parent returns the enclosing page, or nil for a root page.
func (p *Page) Parent() *Page { return p.parent }

// Dir returns the directory of the page's source path ("." for root pages).
func (p *Page) Dir() string { return path.Dir(p.Path) }

// NestHeaders folds a flat, document-ordered header list into a tree by
// heading level. A header adopts every following header with a deeper level
// until one of equal or shallower level appears.
func NestHeaders(flat []*Header) []*Header {
	var roots []*Header
	var stack []*Header
	for _, h := range flat {
		for len(stack) > 0 && stack[len(stack)-1].Level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, h)
		} else {
			top := stack[len(stack)-1]
			top.Children = append(top.Children, h)
		}
		stack = append(stack, h)
	}
	return roots
}

// Index is the immutable page forest plus fast path lookup.
type Index struct {
	roots  []*Page
	byPath map[string]*Page
	paths  sets.Set[string]
}

// NewIndex links and indexes a page forest. Parent pointers are set on every
// page reachable from the roots.
func NewIndex(roots []*Page) *Index {
	idx := &Index{
		roots:  roots,
		byPath: make(map[string]*Page),
		paths:  sets.New[string](),
	}
	var link func(p *Page, parent *Page)
	link = func(p *Page, parent *Page) {
		p.parent = parent
		idx.byPath[p.Path] = p
		idx.paths.Add(p.Path)
		for _, c := range p.Children {
			link(c, p)
		}
	}
	for _, r := range roots {
		link(r, nil)
	}
	return idx
}

// Roots returns the top-level pages in navigation order.
func (x *Index) Roots() []*Page { return x.roots }

// Exists reports whether a source page path is part of the build.
func (x *Index) Exists(p string) bool { return x.paths.Has(path.Clean(p)) }

// Page looks up a page by its source path.
func (x *Index) Page(p string) (*Page, bool) {
	pg, ok := x.byPath[path.Clean(p)]
	return pg, ok
}

// Paths returns every indexed source path in lexical order.
func (x *Index) Paths() []string {
	out := sets.SortedStrings(x.paths)
	sort.Strings(out)
	return out
}

// Len returns the number of indexed pages.
func (x *Index) Len() int { return len(x.byPath) }

// Resolve normalizes a reference relative to the referencing page's
// directory. Absolute references ("/guide/setup.md") resolve against the docs
// root. The fragment, if any, is split off and returned separately.
func Resolve(from *Page, ref string) (target, fragment string) {
	if i := strings.IndexByte(ref, '#'); i >= 0 {
		target, fragment = ref[:i], ref[i+1:]
	} else {
		target = ref
	}
	if target == "" {
		return from.Path, fragment
	}
	if strings.HasPrefix(target, "/") {
		return path.Clean(strings.TrimPrefix(target, "/")), fragment
	}
	return path.Clean(path.Join(from.Dir(), target)), fragment
}

// RewriteExtension replaces a ".md" suffix on p with ext (e.g. ".html").
// Paths without the markdown extension are returned unchanged.
func RewriteExtension(p, ext string) string {
	if strings.HasSuffix(p, ".md") {
		return strings.TrimSuffix(p, ".md") + ext
	}
	return p
}

// RelativePath returns the path of target relative to the directory of from,
// both given as source-relative paths. Used to emit relative hrefs.
func RelativePath(from, target string) string {
	fromDir := path.Dir(from)
	if fromDir == "." {
		return target
	}
	fromParts := strings.Split(fromDir, "/")
	targetParts := strings.Split(target, "/")
	common := 0
	for common < len(fromParts) && common < len(targetParts)-1 && fromParts[common] == targetParts[common] {
		common++
	}
	var b strings.Builder
	for i := common; i < len(fromParts); i++ {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(targetParts[common:], "/"))
	return b.String()
}
