package directive

import (
	"sort"
	"strings"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
)

// VarDirective substitutes a configuration property inline. The value is
// emitted as escaped plain text; an undefined property renders as the
// angle-bracketed identifier itself, a visible failure marker rather than a
// hard error.
type VarDirective struct {
	ctx *Context
}

// NewVarDirective creates the inline variable handler.
func NewVarDirective(ctx *Context) *VarDirective {
	return &VarDirective{ctx: ctx}
}

func (*VarDirective) Names() []string    { return []string{"var"} }
func (*VarDirective) Formats() FormatSet { return InlineFormats }

func (v *VarDirective) Render(w util.BufWriter, source []byte, n gmast.Node, d *Node, entering bool) (gmast.WalkStatus, error) {
	if !entering {
		return gmast.WalkContinue, nil
	}
	key := d.SourceText()
	text, ok := v.ctx.Properties.Get(key).Get()
	if !ok {
		text = "<" + key + ">"
		v.ctx.warn("undefined variable in page", "variable", key, "page", v.ctx.Page.Path)
	}
	_, _ = w.Write(util.EscapeHTML([]byte(text)))
	return gmast.WalkSkipChildren, nil
}

// VarsDirective replaces delimiter-wrapped property keys inside a nested
// verbatim block. Every `$key$` occurrence (delimiter configurable via the
// `delimiter` attribute) is replaced by the property value. Replacements are
// applied longest key first so one substitution cannot corrupt another.
type VarsDirective struct {
	ctx *Context
}

// NewVarsDirective creates the verbatim-block substitution handler.
func NewVarsDirective(ctx *Context) *VarsDirective {
	return &VarsDirective{ctx: ctx}
}

func (*VarsDirective) Names() []string    { return []string{"vars"} }
func (*VarsDirective) Formats() FormatSet { return ContainerFormats }

func (v *VarsDirective) Render(w util.BufWriter, source []byte, n gmast.Node, d *Node, entering bool) (gmast.WalkStatus, error) {
	if !entering {
		return gmast.WalkContinue, nil
	}
	fence := findFence(n)
	if fence == nil {
		// Nothing to substitute into; drop the directive body silently.
		return gmast.WalkSkipChildren, nil
	}
	text := v.substitute(fenceText(fence, source), d.Attributes.GetOrElse("delimiter", "$"))

	_, _ = w.WriteString(`<pre><code`)
	if lang := fence.Language(source); lang != nil {
		_, _ = w.WriteString(` class="language-`)
		_, _ = w.Write(util.EscapeHTML(lang))
		_, _ = w.WriteString(`"`)
	}
	_, _ = w.WriteString(`>`)
	_, _ = w.Write(util.EscapeHTML([]byte(text)))
	_, _ = w.WriteString("</code></pre>\n")
	return gmast.WalkSkipChildren, nil
}

func (v *VarsDirective) substitute(text, delimiter string) string {
	keys := v.ctx.Properties.Keys()
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	for _, key := range keys {
		needle := delimiter + key + delimiter
		if !strings.Contains(text, needle) {
			continue
		}
		text = strings.ReplaceAll(text, needle, v.ctx.Properties.Get(key).Unwrap())
	}
	return text
}

// findFence returns the first fenced or indented code block under the
// directive node.
func findFence(n gmast.Node) *gmast.FencedCodeBlock {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if fence, ok := c.(*gmast.FencedCodeBlock); ok {
			return fence
		}
	}
	return nil
}

func fenceText(fence *gmast.FencedCodeBlock, source []byte) string {
	var b strings.Builder
	lines := fence.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}
