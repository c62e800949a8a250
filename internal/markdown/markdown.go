package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/docdirect/internal/directive"
	"git.home.luguber.info/inful/docdirect/internal/pagetree"
)

// Extension wires directive parsing and rendering into a goldmark instance.
type Extension struct {
	registry *directive.Registry
	ctx      *directive.Context
}

// NewExtension creates the directive extension for one render context.
func NewExtension(registry *directive.Registry, ctx *directive.Context) *Extension {
	return &Extension{registry: registry, ctx: ctx}
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(util.Prioritized(newBlockParser(), 799)),
		parser.WithInlineParsers(util.Prioritized(newInlineParser(), 199)),
		parser.WithASTTransformers(util.Prioritized(newRefResolver(), 999)),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(newDirectiveRenderer(e.registry, e.ctx), 100)),
	)
}

// New assembles a goldmark instance with the directive extension for the
// given render context.
func New(ctx *directive.Context) (goldmark.Markdown, error) {
	registry, err := directive.Default(ctx)
	if err != nil {
		return nil, err
	}
	md := goldmark.New(
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithExtensions(NewExtension(registry, ctx)),
	)
	return md, nil
}

// Render converts one page body to an HTML fragment. A directive error
// aborts the whole page render and is returned as-is.
func Render(ctx *directive.Context, source []byte) (string, error) {
	md, err := New(ctx)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	pc := parser.NewContext(parser.WithIDs(newSlugIDs()))
	if err := md.Convert(source, &buf, parser.WithContext(pc)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExtractOutline parses a page body and returns its title (the first level-1
// heading, or "") and nested header tree, with the same anchor IDs the
// renderer will emit.
func ExtractOutline(source []byte) (string, []*pagetree.Header) {
	md := goldmark.New(goldmark.WithParserOptions(parser.WithAutoHeadingID()))
	pc := parser.NewContext(parser.WithIDs(newSlugIDs()))
	root := md.Parser().Parse(text.NewReader(source), parser.WithContext(pc))

	title := ""
	var flat []*pagetree.Header
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		heading, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		id := ""
		if v, found := heading.AttributeString("id"); found {
			if b, isBytes := v.([]byte); isBytes {
				id = string(b)
			}
		}
		headerText := nodeText(heading, source)
		if heading.Level == 1 && title == "" {
			title = headerText
		}
		flat = append(flat, &pagetree.Header{
			Level: heading.Level,
			ID:    id,
			Text:  headerText,
		})
		return gmast.WalkSkipChildren, nil
	})
	return title, pagetree.NestHeaders(flat)
}

// nodeText collects the plain text content of a node's subtree.
func nodeText(n gmast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if t, ok := c.(*gmast.Text); ok {
			buf.Write(t.Segment.Value(source))
		}
		return gmast.WalkContinue, nil
	})
	return buf.String()
}
