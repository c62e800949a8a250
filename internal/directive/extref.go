package directive

import (
	"strings"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/docdirect/internal/resolver"
)

// ExtRefDirective resolves generic templated external references. The source
// has the shape `scheme:expression`; the scheme selects the configuration
// property `extref.<scheme>.base_url`, whose value is a URL template the
// expression is substituted into (at the `%s` placeholder, or appended as a
// path segment when the template has none).
type ExtRefDirective struct {
	ctx *Context
}

// NewExtRefDirective creates the templated external reference handler.
func NewExtRefDirective(ctx *Context) *ExtRefDirective {
	return &ExtRefDirective{ctx: ctx}
}

func (*ExtRefDirective) Names() []string    { return []string{"extref"} }
func (*ExtRefDirective) Formats() FormatSet { return InlineFormats }

func (e *ExtRefDirective) Render(w util.BufWriter, source []byte, n gmast.Node, d *Node, entering bool) (gmast.WalkStatus, error) {
	return renderLink(w, entering, func() error {
		href, err := resolveExternal(e.ctx, d, e.build(d))
		if err != nil {
			return err
		}
		writeLink(w, href, d.LinkText())
		return nil
	})
}

func (e *ExtRefDirective) build(d *Node) resolver.URL {
	text := d.SourceText()
	scheme, expr, ok := strings.Cut(text, ":")
	if !ok || scheme == "" {
		return resolver.Failed(resolver.NoScheme(text))
	}
	base := resolver.FromProperty(e.ctx.Properties, "extref."+scheme+".base_url")
	return base.Collect(func(template string) (string, bool) {
		if strings.Contains(template, "%s") {
			return strings.ReplaceAll(template, "%s", expr), true
		}
		return strings.TrimSuffix(template, "/") + "/" + strings.TrimPrefix(expr, "/"), true
	}, nil)
}
