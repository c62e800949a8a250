package markdown

import (
	"bytes"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/docdirect/internal/directive"
)

// blockParser parses leaf (`@@name ...`) and container (`@@@name ... @@@`)
// directives. The container interior is handed back to goldmark as regular
// block content.
type blockParser struct{}

func newBlockParser() parser.BlockParser {
	return &blockParser{}
}

func (*blockParser) Trigger() []byte { return []byte{'@'} }

func (*blockParser) Open(parent gmast.Node, reader text.Reader, pc parser.Context) (gmast.Node, parser.State) {
	line, segment := reader.PeekLine()

	trimmed := bytes.TrimLeft(line, " ")
	indent := len(line) - len(trimmed)
	if indent > 3 {
		return nil, parser.NoChildren
	}
	ats := 0
	for ats < len(trimmed) && trimmed[ats] == '@' {
		ats++
	}
	if ats != 2 && ats != 3 {
		return nil, parser.NoChildren
	}

	h, _, ok := scanHeader(trimmed, ats, false)
	if !ok {
		return nil, parser.NoChildren
	}

	node := &BlockDirective{}
	node.Directive = directive.Node{
		Name:       h.name,
		Label:      h.label,
		Source:     h.source,
		Attributes: h.attrs,
	}

	if ats == 2 {
		node.Directive.Format = directive.FormatLeafBlock
		node.Lines().Append(segment)
		reader.Advance(segment.Len() - 1)
		return node, parser.NoChildren
	}

	node.Directive.Format = directive.FormatContainerBlock
	reader.Advance(segment.Len() - 1)
	return node, parser.HasChildren
}

func (*blockParser) Continue(node gmast.Node, reader text.Reader, pc parser.Context) parser.State {
	bd := node.(*BlockDirective)
	if bd.Directive.Format != directive.FormatContainerBlock {
		return parser.Close
	}
	line, segment := reader.PeekLine()
	trimmed := bytes.TrimSpace(line)
	if isContainerFence(trimmed) {
		reader.Advance(segment.Len() - 1)
		return parser.Close
	}
	return parser.Continue | parser.HasChildren
}

func (*blockParser) Close(node gmast.Node, reader text.Reader, pc parser.Context) {}

func (*blockParser) CanInterruptParagraph() bool { return true }

func (*blockParser) CanAcceptIndentedLine() bool { return false }

// isContainerFence reports whether a line is a bare closing `@@@` fence.
func isContainerFence(trimmed []byte) bool {
	if len(trimmed) != 3 {
		return false
	}
	return trimmed[0] == '@' && trimmed[1] == '@' && trimmed[2] == '@'
}
