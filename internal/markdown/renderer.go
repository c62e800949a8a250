package markdown

import (
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/docdirect/internal/directive"
)

// directiveRenderer dispatches directive nodes to the registry. An unknown
// or format-mismatched directive renders to nothing; a handler error aborts
// the page render.
type directiveRenderer struct {
	registry *directive.Registry
	ctx      *directive.Context
}

func newDirectiveRenderer(registry *directive.Registry, ctx *directive.Context) renderer.NodeRenderer {
	return &directiveRenderer{registry: registry, ctx: ctx}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *directiveRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindInlineDirective, r.render)
	reg.Register(KindBlockDirective, r.render)
}

func (r *directiveRenderer) render(w util.BufWriter, source []byte, n gmast.Node, entering bool) (gmast.WalkStatus, error) {
	var d *directive.Node
	switch node := n.(type) {
	case *InlineDirective:
		d = &node.Directive
	case *BlockDirective:
		d = &node.Directive
	default:
		return gmast.WalkContinue, nil
	}

	status, err := r.registry.Render(w, source, n, d, entering)
	if entering {
		r.ctx.Metrics.IncDirective(directive.NormalizeName(d.Name))
		if err != nil {
			r.ctx.Metrics.IncDirectiveError(directive.NormalizeName(d.Name))
		}
	}
	return status, err
}
