package directive

import (
	"strings"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/docdirect/internal/resolver"
)

// APIDocDirective resolves symbol-namespace references against per-package
// base URLs. For a dot-separated symbol path, candidate properties
// `<name>.<prefix>.base_url` are tried for every non-empty prefix of the
// symbol, longest first, falling back to the unscoped `<name>.base_url`. The
// winning base URL receives the full symbol as its fragment. The directive
// keyword doubles as the property namespace, so one handler serves
// `@scaladoc`, `@javadoc` and `@apidoc` with separate configuration.
type APIDocDirective struct {
	ctx   *Context
	names []string
}

// NewAPIDocDirective creates the symbol reference handler for the given
// directive keywords.
func NewAPIDocDirective(ctx *Context, names ...string) *APIDocDirective {
	return &APIDocDirective{ctx: ctx, names: names}
}

func (a *APIDocDirective) Names() []string  { return a.names }
func (*APIDocDirective) Formats() FormatSet { return InlineFormats }

func (a *APIDocDirective) Render(w util.BufWriter, source []byte, n gmast.Node, d *Node, entering bool) (gmast.WalkStatus, error) {
	return renderLink(w, entering, func() error {
		href, err := resolveExternal(a.ctx, d, a.build(d))
		if err != nil {
			return err
		}
		writeLink(w, href, d.LinkText())
		return nil
	})
}

func (a *APIDocDirective) build(d *Node) resolver.URL {
	namespace := NormalizeName(d.Name)
	symbol := d.SourceText()
	base := a.lookupBase(namespace, symbol)
	return base.WithFragment(symbol)
}

// lookupBase selects the most specific configured base URL for the symbol.
// Prefixes of different lengths are distinct strings, so longest-wins needs
// no further tie-break.
func (a *APIDocDirective) lookupBase(namespace, symbol string) resolver.URL {
	parts := strings.Split(symbol, ".")
	for i := len(parts); i > 0; i-- {
		prefix := strings.Join(parts[:i], ".")
		name := namespace + "." + prefix + ".base_url"
		if a.ctx.Properties.Has(name) {
			return resolver.FromProperty(a.ctx.Properties, name)
		}
	}
	return resolver.FromProperty(a.ctx.Properties, namespace+".base_url")
}
