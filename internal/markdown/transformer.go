package markdown

import (
	"strings"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/docdirect/internal/directive"
)

// refResolver fills in the destination of `[refid]` directive sources from
// the document's link reference definitions, which goldmark keeps in the
// parse context rather than the AST.
type refResolver struct{}

func newRefResolver() parser.ASTTransformer {
	return &refResolver{}
}

func (*refResolver) Transform(doc *gmast.Document, reader text.Reader, pc parser.Context) {
	refs := pc.References()
	if len(refs) == 0 {
		return
	}
	lookup := func(label string) string {
		for _, ref := range refs {
			if strings.EqualFold(strings.TrimSpace(string(ref.Label())), strings.TrimSpace(label)) {
				return string(ref.Destination())
			}
		}
		return ""
	}

	_ = gmast.Walk(doc, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		var d *directive.Node
		switch node := n.(type) {
		case *InlineDirective:
			d = &node.Directive
		case *BlockDirective:
			d = &node.Directive
		default:
			return gmast.WalkContinue, nil
		}
		if d.Source.Kind == directive.SourceRef && d.Source.RefDestination == "" {
			d.Source.RefDestination = lookup(d.Source.Value)
		}
		return gmast.WalkContinue, nil
	})
}
