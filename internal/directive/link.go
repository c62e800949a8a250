package directive

import (
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/docdirect/internal/resolver"
)

// resolveExternal is the shared template for every external-link directive:
// build a URL resolver from the directive's source, materialize it, and
// convert the first structured error into a LinkError carrying the original
// source text and the referencing page.
func resolveExternal(ctx *Context, d *Node, u resolver.URL) (string, error) {
	href, err := u.Resolve()
	if err != nil {
		return "", &LinkError{
			Source: d.RawSource(),
			Page:   ctx.Page.Path,
			Reason: err.Reason(),
		}
	}
	return href, nil
}

// writeLink emits an anchor element with escaped href and text.
func writeLink(w util.BufWriter, href, text string) {
	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML([]byte(href)))
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(util.EscapeHTML([]byte(text)))
	_, _ = w.WriteString(`</a>`)
}

// renderLink is the render half shared by the inline link directives: emit
// the whole anchor on entering, nothing on exit, never descend.
func renderLink(w util.BufWriter, entering bool, emit func() error) (gmast.WalkStatus, error) {
	if !entering {
		return gmast.WalkContinue, nil
	}
	if err := emit(); err != nil {
		return gmast.WalkStop, err
	}
	return gmast.WalkSkipChildren, nil
}
