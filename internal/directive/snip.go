package directive

import (
	"fmt"
	"path/filepath"
	"strings"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/docdirect/internal/snippet"
)

// SnipDirective includes labeled regions of source files as highlighted code
// blocks. Region labels come from the `#id` attributes; the display language
// is inferred from the file extension unless the `type` attribute overrides
// it. Absolute source paths resolve against the configured snippet base
// directory, relative ones against the current page's directory.
type SnipDirective struct {
	ctx *Context
}

// NewSnipDirective creates the snippet inclusion handler.
func NewSnipDirective(ctx *Context) *SnipDirective {
	return &SnipDirective{ctx: ctx}
}

func (*SnipDirective) Names() []string    { return []string{"snip"} }
func (*SnipDirective) Formats() FormatSet { return LeafFormats }

func (s *SnipDirective) Render(w util.BufWriter, source []byte, n gmast.Node, d *Node, entering bool) (gmast.WalkStatus, error) {
	if !entering {
		return gmast.WalkContinue, nil
	}
	path := s.resolvePath(d.SourceText())
	labels := d.Attributes.Identifiers()

	res, err := snippet.Extract(path, labels)
	if err != nil {
		return gmast.WalkStop, fmt.Errorf("%w (referenced from [%s])", err, s.ctx.Page.Path)
	}
	for _, label := range res.MissingLabels {
		s.ctx.warn("snippet label not found, emitting empty region",
			"label", label, "file", path, "page", s.ctx.Page.Path)
	}

	lang := snippet.Language(path, d.Attributes.GetOrElse("type", ""))
	_, _ = w.WriteString(`<pre class="snippet"><code class="language-`)
	_, _ = w.Write(util.EscapeHTML([]byte(lang)))
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(util.EscapeHTML([]byte(res.Text)))
	_, _ = w.WriteString("</code></pre>\n")
	return gmast.WalkSkipChildren, nil
}

func (s *SnipDirective) resolvePath(source string) string {
	if strings.HasPrefix(source, "/") {
		return filepath.Join(s.ctx.SnippetBase, strings.TrimPrefix(source, "/"))
	}
	return filepath.Join(s.ctx.PageDir, source)
}
