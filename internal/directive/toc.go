package directive

import (
	"strconv"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/docdirect/internal/toc"
)

// TocDirective renders a table of contents for the current position in the
// page tree. Attributes: `depth` bounds recursion, `pages` and `headers`
// ("on"/"off") filter node kinds, `ordering=reverse` flips sibling order.
type TocDirective struct {
	ctx *Context
}

// NewTocDirective creates the table-of-contents handler.
func NewTocDirective(ctx *Context) *TocDirective {
	return &TocDirective{ctx: ctx}
}

func (*TocDirective) Names() []string    { return []string{"toc"} }
func (*TocDirective) Formats() FormatSet { return LeafFormats }

func (t *TocDirective) Render(w util.BufWriter, source []byte, n gmast.Node, d *Node, entering bool) (gmast.WalkStatus, error) {
	if !entering {
		return gmast.WalkContinue, nil
	}
	opts := t.options(d)
	if err := toc.Render(w, t.ctx.Page, opts); err != nil {
		return gmast.WalkStop, err
	}
	_, _ = w.WriteString("\n")
	return gmast.WalkSkipChildren, nil
}

func (t *TocDirective) options(d *Node) toc.Options {
	depth := t.ctx.TocDepth
	if v, ok := d.Attributes.Get("depth").Get(); ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			depth = parsed
		}
	}
	return toc.Options{
		MaxDepth:       depth,
		IncludePages:   d.Attributes.GetOrElse("pages", "on") != "off",
		IncludeHeaders: d.Attributes.GetOrElse("headers", "on") != "off",
		Reverse:        d.Attributes.GetOrElse("ordering", "forward") == "reverse",
		RenderedExt:    t.ctx.RenderedExt,
	}
}
