package directive

import (
	"strings"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
)

// WrapDirective wraps container block content in a classed div. The directive
// keyword becomes the first CSS class, followed by any `.class` attributes,
// so `@@@note` and `@@@warning` style consistently without per-name handlers.
type WrapDirective struct {
	names []string
}

// NewWrapDirective creates the wrapper handler for the given keywords.
func NewWrapDirective(names ...string) *WrapDirective {
	return &WrapDirective{names: names}
}

func (d *WrapDirective) Names() []string  { return d.names }
func (*WrapDirective) Formats() FormatSet { return ContainerFormats }

func (*WrapDirective) Render(w util.BufWriter, source []byte, n gmast.Node, d *Node, entering bool) (gmast.WalkStatus, error) {
	if entering {
		classes := append([]string{NormalizeName(d.Name)}, d.Attributes.Classes()...)
		_, _ = w.WriteString(`<div class="`)
		_, _ = w.Write(util.EscapeHTML([]byte(strings.Join(classes, " "))))
		_, _ = w.WriteString("\">\n")
		return gmast.WalkContinue, nil
	}
	_, _ = w.WriteString("</div>\n")
	return gmast.WalkContinue, nil
}
