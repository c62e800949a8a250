// Package markdown wires the directive engine into goldmark: AST node types
// for the three directive shapes, the inline and block parsers for the
// `@name[label](source){attrs}` syntax, and the renderer that dispatches
// parsed directives to the registry.
package markdown

import (
	"fmt"

	gmast "github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/docdirect/internal/directive"
)

// KindInlineDirective identifies inline directive nodes.
var KindInlineDirective = gmast.NewNodeKind("InlineDirective")

// KindBlockDirective identifies leaf and container directive nodes.
var KindBlockDirective = gmast.NewNodeKind("BlockDirective")

// InlineDirective is an inline directive occurrence.
type InlineDirective struct {
	gmast.BaseInline
	Directive directive.Node
}

// Kind implements gmast.Node.
func (*InlineDirective) Kind() gmast.NodeKind { return KindInlineDirective }

// Dump implements gmast.Node.
func (n *InlineDirective) Dump(source []byte, level int) {
	gmast.DumpHelper(n, source, level, map[string]string{
		"Name":   n.Directive.Name,
		"Label":  n.Directive.Label,
		"Source": fmt.Sprintf("%v", n.Directive.Source),
	}, nil)
}

// BlockDirective is a leaf or container directive occurrence. Container
// directives carry their parsed body as child nodes.
type BlockDirective struct {
	gmast.BaseBlock
	Directive directive.Node
}

// Kind implements gmast.Node.
func (*BlockDirective) Kind() gmast.NodeKind { return KindBlockDirective }

// Dump implements gmast.Node.
func (n *BlockDirective) Dump(source []byte, level int) {
	gmast.DumpHelper(n, source, level, map[string]string{
		"Name":   n.Directive.Name,
		"Format": n.Directive.Format.String(),
	}, nil)
}

// IsRaw implements gmast.Node; leaf directives own their line verbatim.
func (n *BlockDirective) IsRaw() bool {
	return n.Directive.Format == directive.FormatLeafBlock
}
