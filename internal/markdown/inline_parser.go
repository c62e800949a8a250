package markdown

import (
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/docdirect/internal/directive"
)

// inlineParser parses `@name[label](source){attrs}` inside paragraph text.
// A directive keyword must start at a word boundary and be followed
// immediately by a `[label]` or `(source)` group, so plain `@word` text and
// e-mail addresses pass through untouched.
type inlineParser struct{}

func newInlineParser() parser.InlineParser {
	return &inlineParser{}
}

func (*inlineParser) Trigger() []byte { return []byte{'@'} }

func (*inlineParser) Parse(parent gmast.Node, block text.Reader, pc parser.Context) gmast.Node {
	line, _ := block.PeekLine()
	if len(line) < 2 || line[1] == '@' {
		return nil
	}
	if prev := block.PrecendingCharacter(); isWordRune(prev) {
		return nil
	}

	h, consumed, ok := scanHeader(line, 1, true)
	if !ok {
		return nil
	}
	block.Advance(consumed)

	node := &InlineDirective{}
	node.Directive = directive.Node{
		Format:     directive.FormatInline,
		Name:       h.name,
		Label:      h.label,
		Source:     h.source,
		Attributes: h.attrs,
	}
	return node
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_'
}
