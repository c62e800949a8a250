package directive

import (
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/docdirect/internal/pagetree"
)

// RefDirective resolves internal cross-document references. The target is
// validated against the known page set before a link is emitted; the rendered
// extension is rewritten for the output format. No URL resolver is involved,
// this is purely local path logic.
type RefDirective struct {
	ctx *Context
}

// NewRefDirective creates the internal reference handler.
func NewRefDirective(ctx *Context) *RefDirective {
	return &RefDirective{ctx: ctx}
}

func (*RefDirective) Names() []string    { return []string{"ref"} }
func (*RefDirective) Formats() FormatSet { return InlineFormats }

func (r *RefDirective) Render(w util.BufWriter, source []byte, n gmast.Node, d *Node, entering bool) (gmast.WalkStatus, error) {
	return renderLink(w, entering, func() error {
		href, err := r.resolve(d)
		if err != nil {
			return err
		}
		writeLink(w, href, d.LinkText())
		return nil
	})
}

// resolve normalizes the reference against the current page, checks
// existence, and returns the relative rendered href.
func (r *RefDirective) resolve(d *Node) (string, error) {
	target, fragment := pagetree.Resolve(r.ctx.Page, d.SourceText())
	if !r.ctx.Index.Exists(target) {
		return "", &UnknownPageError{Path: target, Page: r.ctx.Page.Path}
	}
	href := pagetree.RelativePath(r.ctx.Page.Path, r.ctx.Rewrite(target))
	if fragment != "" {
		href += "#" + fragment
	}
	return href, nil
}
