package directive

import (
	"fmt"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
)

// Registry maps directive names to handlers and dispatches directive nodes
// to them. Construction fails fast on duplicate names: silently shadowing an
// earlier handler is a latent defect, not a feature. Lookups are
// case-insensitive and ignore a trailing colon on the keyword.
type Registry struct {
	byName map[string]Handler
}

// NewRegistry builds a registry from the given handlers.
func NewRegistry(handlers ...Handler) (*Registry, error) {
	byName := make(map[string]Handler)
	for _, h := range handlers {
		for _, name := range h.Names() {
			key := NormalizeName(name)
			if _, exists := byName[key]; exists {
				return nil, fmt.Errorf("duplicate directive name %q", key)
			}
			byName[key] = h
		}
	}
	return &Registry{byName: byName}, nil
}

// Lookup returns the handler registered for name, if any.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.byName[NormalizeName(name)]
	return h, ok
}

// Render dispatches one directive node. Unknown names and format mismatches
// produce no output and no error; a malformed or disabled directive must not
// abort rendering of the rest of the document.
func (r *Registry) Render(w util.BufWriter, source []byte, n gmast.Node, d *Node, entering bool) (gmast.WalkStatus, error) {
	h, ok := r.byName[NormalizeName(d.Name)]
	if !ok || !h.Formats().Has(d.Format) {
		return gmast.WalkSkipChildren, nil
	}
	return h.Render(w, source, n, d, entering)
}

// Default builds the registry of built-in directives for one render context.
func Default(ctx *Context) (*Registry, error) {
	return NewRegistry(
		NewRefDirective(ctx),
		NewExtRefDirective(ctx),
		NewAPIDocDirective(ctx, "apidoc", "scaladoc", "javadoc"),
		NewGitHubDirective(ctx),
		NewSnipDirective(ctx),
		NewTocDirective(ctx),
		NewVarDirective(ctx),
		NewVarsDirective(ctx),
		NewWrapDirective("div", "note", "warning"),
	)
}
