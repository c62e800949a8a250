// Package directive implements the named-directive resolution engine: the
// node model produced by the markdown parser, the registry that dispatches
// nodes to handlers by name and syntactic shape, and the built-in handler
// family (links, snippets, table of contents, variable substitution).
package directive

import (
	"strings"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
)

// Format is the syntactic shape of a directive, fixed at parse time.
type Format int

const (
	// FormatInline is `@name[label](source){attrs}` inside paragraph text.
	FormatInline Format = iota
	// FormatLeafBlock is a `@@name ...` block with no body.
	FormatLeafBlock
	// FormatContainerBlock is a `@@@name ... @@@` fenced block whose body is
	// parsed as markdown.
	FormatContainerBlock
)

func (f Format) String() string {
	switch f {
	case FormatInline:
		return "inline"
	case FormatLeafBlock:
		return "leaf block"
	case FormatContainerBlock:
		return "container block"
	}
	return "unknown"
}

// FormatSet is the set of shapes a handler answers to.
type FormatSet uint8

const (
	InlineFormats    FormatSet = 1 << FormatInline
	LeafFormats      FormatSet = 1 << FormatLeafBlock
	ContainerFormats FormatSet = 1 << FormatContainerBlock
	AllFormats                 = InlineFormats | LeafFormats | ContainerFormats
)

// Has reports whether the set contains f.
func (s FormatSet) Has(f Format) bool { return s&(1<<f) != 0 }

// SourceKind tags the directive's source value.
type SourceKind int

const (
	// SourceEmpty means no source was supplied.
	SourceEmpty SourceKind = iota
	// SourceDirect is a literal `(text)` reference.
	SourceDirect
	// SourceRef is an indirect `[refid]` reference resolved against the
	// document's link reference definitions.
	SourceRef
)

// Source is the directive's tagged source value. Exactly one variant is
// populated: Direct carries the literal text in Value, Ref carries the
// reference id in Value and the looked-up destination in RefDestination.
type Source struct {
	Kind           SourceKind
	Value          string
	RefDestination string
}

// Node is a directive occurrence in a document. Nodes are built once per
// parse pass and never mutated afterwards.
type Node struct {
	Format     Format
	Name       string
	Label      string
	Source     Source
	Attributes Attributes
}

// SourceText returns the effective reference text: the direct value, the
// destination a ref resolved to, or the label when no source was supplied.
func (n *Node) SourceText() string {
	switch n.Source.Kind {
	case SourceDirect:
		return n.Source.Value
	case SourceRef:
		if n.Source.RefDestination != "" {
			return n.Source.RefDestination
		}
		return n.Source.Value
	default:
		return n.Label
	}
}

// RawSource returns the source exactly as written, for error messages.
func (n *Node) RawSource() string {
	if n.Source.Kind == SourceEmpty {
		return n.Label
	}
	return n.Source.Value
}

// LinkText returns the display text for a generated link.
func (n *Node) LinkText() string {
	if n.Label != "" {
		return n.Label
	}
	return n.SourceText()
}

// Handler renders one directive family. A handler declares the names it
// answers to and the formats it accepts; the render contract mirrors the
// goldmark node renderer so container directives can control whether their
// parsed children are rendered.
type Handler interface {
	Names() []string
	Formats() FormatSet
	Render(w util.BufWriter, source []byte, n gmast.Node, d *Node, entering bool) (gmast.WalkStatus, error)
}

// NormalizeName canonicalizes a directive keyword for registry lookup:
// case-insensitive, one trailing colon ignored.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSuffix(name, ":"))
}
