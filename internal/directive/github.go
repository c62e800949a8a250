package directive

import (
	"regexp"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/docdirect/internal/resolver"
)

const githubProperty = "github.base_url"

// Shape patterns run against the full base URL string, not a parsed URL:
// project hosts can sit under arbitrary subpaths, so structured URL parsing
// would reject perfectly valid configurations.
var (
	issueShape  = regexp.MustCompile(`^(?:([^/]+/[^/]+))?#([0-9]+)$`)
	commitShape = regexp.MustCompile(`^(?:([^/]+/[^/]+))?@([0-9a-fA-F]{5,40})$`)
	treeURL     = regexp.MustCompile(`^(.*/tree/[^/]+)/?$`)
	projectURL  = regexp.MustCompile(`^(.+://[^/]+.*?/[^/]+/[^/]+?)/?$`)
	hostPart    = regexp.MustCompile(`^(.+://[^/]+)`)
)

// GitHubDirective resolves project-host references. The source is classified
// by shape: `[owner/repo]#<number>` becomes an issue link, `[owner/repo]@<hex>`
// a commit link, and anything else a repository path under the project's tree
// URL (reusing an existing `/tree/<ref>` suffix on the configured base URL,
// or appending `/tree/master` to a bare project URL).
type GitHubDirective struct {
	ctx *Context
}

// NewGitHubDirective creates the project-host reference handler.
func NewGitHubDirective(ctx *Context) *GitHubDirective {
	return &GitHubDirective{ctx: ctx}
}

func (*GitHubDirective) Names() []string    { return []string{"github"} }
func (*GitHubDirective) Formats() FormatSet { return InlineFormats }

func (g *GitHubDirective) Render(w util.BufWriter, source []byte, n gmast.Node, d *Node, entering bool) (gmast.WalkStatus, error) {
	return renderLink(w, entering, func() error {
		href, err := resolveExternal(g.ctx, d, g.build(d))
		if err != nil {
			return err
		}
		writeLink(w, href, d.LinkText())
		return nil
	})
}

func (g *GitHubDirective) build(d *Node) resolver.URL {
	text := d.SourceText()
	if m := issueShape.FindStringSubmatch(text); m != nil {
		return g.project(m[1]).Append("issues").Append(m[2])
	}
	if m := commitShape.FindStringSubmatch(text); m != nil {
		return g.project(m[1]).Append("commit").Append(m[2])
	}
	return g.tree().Append(text)
}

// project returns the project URL for an explicit "owner/repo", resolved
// against the configured base URL's host, or the base URL itself when the
// project is omitted.
func (g *GitHubDirective) project(ownerRepo string) resolver.URL {
	base := resolver.FromProperty(g.ctx.Properties, githubProperty)
	if ownerRepo != "" {
		return base.Collect(func(s string) (string, bool) {
			m := hostPart.FindStringSubmatch(s)
			if m == nil {
				return "", false
			}
			return m[1], true
		}, resolver.Mismatch("["+githubProperty+"] is not a project URL")).Append(ownerRepo)
	}
	return base.Collect(func(s string) (string, bool) {
		if treeURL.MatchString(s) {
			return "", false
		}
		m := projectURL.FindStringSubmatch(s)
		if m == nil {
			return "", false
		}
		return m[1], true
	}, resolver.Mismatch("["+githubProperty+"] is not a project URL"))
}

// tree derives the versioned tree URL from the configured base URL.
func (g *GitHubDirective) tree() resolver.URL {
	base := resolver.FromProperty(g.ctx.Properties, githubProperty)
	return base.Collect(func(s string) (string, bool) {
		if m := treeURL.FindStringSubmatch(s); m != nil {
			return m[1], true
		}
		if m := projectURL.FindStringSubmatch(s); m != nil {
			return m[1] + "/tree/master", true
		}
		return "", false
	}, resolver.Mismatch("["+githubProperty+"] is not a project or versioned tree URL"))
}
