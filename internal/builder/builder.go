// Package builder runs the two-pass site build: discover and index all
// markdown pages, then render every page through the directive-aware
// markdown pipeline into HTML fragments.
package builder

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docdirect/internal/config"
	"git.home.luguber.info/inful/docdirect/internal/directive"
	"git.home.luguber.info/inful/docdirect/internal/frontmatter"
	"git.home.luguber.info/inful/docdirect/internal/gitinfo"
	"git.home.luguber.info/inful/docdirect/internal/logfields"
	"git.home.luguber.info/inful/docdirect/internal/markdown"
	"git.home.luguber.info/inful/docdirect/internal/observability"
	"git.home.luguber.info/inful/docdirect/internal/pagetree"
	"git.home.luguber.info/inful/docdirect/internal/properties"
)

// defaultConcurrency bounds the render worker pool.
const defaultConcurrency = 4

// PageError records a failed page render. The underlying error keeps the
// directive's exact user-facing message.
type PageError struct {
	Path string
	Err  error
}

func (e PageError) Error() string { return e.Err.Error() }

// Result summarizes one build.
type Result struct {
	BuildID string
	Pages   int
	Errors  []PageError
	Elapsed time.Duration
}

// Failed reports whether any page failed to render.
func (r *Result) Failed() bool { return len(r.Errors) > 0 }

// Builder renders a docs tree into HTML fragments.
type Builder struct {
	cfg         *config.Config
	props       properties.Map
	metrics     *observability.Metrics
	concurrency int
}

// Option configures a Builder.
type Option func(*Builder)

// WithMetrics attaches a metrics recorder.
func WithMetrics(m *observability.Metrics) Option {
	return func(b *Builder) { b.metrics = m }
}

// WithConcurrency overrides the render worker bound.
func WithConcurrency(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// New creates a Builder for the given configuration. Configured properties
// are merged over derived defaults (github.base_url from the enclosing git
// checkout when available).
func New(cfg *config.Config, opts ...Option) *Builder {
	b := &Builder{
		cfg:         cfg,
		props:       properties.NewMap(defaultProperties(cfg)),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// defaultProperties merges configured properties over values derived from
// the environment.
func defaultProperties(cfg *config.Config) map[string]string {
	merged := map[string]string{}
	if url, err := gitinfo.ProjectURL(cfg.Docs.Dir); err == nil {
		merged["github.base_url"] = url
	}
	for k, v := range cfg.Properties {
		merged[k] = v
	}
	return merged
}

// Run executes a full build. Page render failures do not abort the run;
// every failing page is collected so a single build reports all broken
// references at once. The returned error is non-nil only for failures that
// prevent the build from running at all (unreadable docs tree, unwritable
// output directory).
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{BuildID: uuid.NewString()}

	ctx = observability.WithBuildID(ctx, result.BuildID)
	observability.InfoContext(ctx, "Starting build",
		slog.String("docs_dir", b.cfg.Docs.Dir),
		slog.String("output_dir", b.cfg.Output.Directory))

	paths, err := discover(b.cfg.Docs.Dir)
	if err != nil {
		b.metrics.IncBuildOutcome("error")
		return nil, fmt.Errorf("discover pages: %w", err)
	}
	if len(paths) == 0 {
		b.metrics.IncBuildOutcome("empty")
		return nil, fmt.Errorf("no markdown pages under %s", b.cfg.Docs.Dir)
	}

	index, contents, err := b.indexPages(paths)
	if err != nil {
		b.metrics.IncBuildOutcome("error")
		return nil, err
	}
	result.Pages = index.Len()

	if b.cfg.Output.Clean {
		if err := os.RemoveAll(b.cfg.Output.Directory); err != nil {
			b.metrics.IncBuildOutcome("error")
			return nil, fmt.Errorf("clean output directory: %w", err)
		}
	}
	if err := os.MkdirAll(b.cfg.Output.Directory, 0o755); err != nil {
		b.metrics.IncBuildOutcome("error")
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	result.Errors = b.renderAll(ctx, index, contents)
	result.Elapsed = time.Since(start)

	if result.Failed() {
		b.metrics.IncBuildOutcome("failure")
		observability.ErrorContext(ctx, "Build failed",
			logfields.Pages(result.Pages),
			logfields.Failed(len(result.Errors)),
			logfields.DurationMS(float64(result.Elapsed.Milliseconds())))
	} else {
		b.metrics.IncBuildOutcome("success")
		observability.InfoContext(ctx, "Build completed",
			logfields.Pages(result.Pages),
			logfields.DurationMS(float64(result.Elapsed.Milliseconds())))
	}
	return result, nil
}

// discover returns all markdown page paths under docsDir, slash-separated
// and relative to docsDir, in sorted order.
func discover(docsDir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(docsDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && p != docsDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		rel, err := filepath.Rel(docsDir, p)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// pageContent is one discovered page after frontmatter splitting.
type pageContent struct {
	body []byte
	meta frontmatter.Meta
}

// indexPages runs the first pass: split frontmatter, parse every page's
// outline and assemble the site forest. A directory's index.md is the
// parent of the other pages in that directory and of the index pages of
// its subdirectories; pages in a directory without an index.md attach to
// the nearest ancestor that has one.
func (b *Builder) indexPages(paths []string) (*pagetree.Index, map[string]pageContent, error) {
	contents := make(map[string]pageContent, len(paths))
	pages := make(map[string]*pagetree.Page, len(paths))
	indexByDir := make(map[string]*pagetree.Page)

	for _, rel := range paths {
		source, err := os.ReadFile(filepath.Join(b.cfg.Docs.Dir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, nil, fmt.Errorf("read page: %w", err)
		}
		meta, body, err := frontmatter.Split(source)
		if err != nil {
			return nil, nil, fmt.Errorf("frontmatter of %s: %w", rel, err)
		}
		title, headers := markdown.ExtractOutline(body)
		if meta.Title != "" {
			title = meta.Title
		}
		if title == "" {
			title = strings.TrimSuffix(path.Base(rel), ".md")
		}
		page := &pagetree.Page{Path: rel, Title: title, Headers: headers}
		contents[rel] = pageContent{body: body, meta: meta}
		pages[rel] = page
		if path.Base(rel) == "index.md" {
			indexByDir[path.Dir(rel)] = page
		}
	}

	var roots []*pagetree.Page
	for _, rel := range paths {
		page := pages[rel]
		dir := path.Dir(rel)
		if path.Base(rel) == "index.md" {
			dir = parentDir(dir)
		}
		parent := nearestIndex(indexByDir, dir)
		if parent == nil {
			roots = append(roots, page)
		} else {
			parent.Children = append(parent.Children, page)
		}
	}
	return pagetree.NewIndex(roots), contents, nil
}

// nearestIndex walks dir and its ancestors looking for an index page.
func nearestIndex(indexByDir map[string]*pagetree.Page, dir string) *pagetree.Page {
	for {
		if page, ok := indexByDir[dir]; ok {
			return page
		}
		if dir == "." || dir == "" {
			return nil
		}
		dir = parentDir(dir)
	}
}

func parentDir(dir string) string {
	if dir == "." || dir == "" {
		return ""
	}
	return path.Dir(dir)
}

// renderAll runs the second pass: render every indexed page concurrently,
// bounded by the worker semaphore.
func (b *Builder) renderAll(ctx context.Context, index *pagetree.Index, contents map[string]pageContent) []PageError {
	sem := make(chan struct{}, b.concurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []PageError

	for _, rel := range index.Paths() {
		select {
		case <-ctx.Done():
			wg.Wait()
			return append(errs, PageError{Path: rel, Err: ctx.Err()})
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(rel string) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := b.renderPage(ctx, index, rel, contents[rel]); err != nil {
				mu.Lock()
				errs = append(errs, PageError{Path: rel, Err: err})
				mu.Unlock()
			}
		}(rel)
	}
	wg.Wait()

	sort.Slice(errs, func(i, j int) bool { return errs[i].Path < errs[j].Path })
	return errs
}

// renderPage renders one page and writes the HTML fragment, mirroring the
// source tree under the output directory.
func (b *Builder) renderPage(ctx context.Context, index *pagetree.Index, rel string, content pageContent) error {
	start := time.Now()
	ctx = observability.WithPage(ctx, rel)

	page, ok := index.Page(rel)
	if !ok {
		return fmt.Errorf("page %s missing from index", rel)
	}
	dctx := &directive.Context{
		Properties:  b.props.Merged(content.meta.Properties),
		Page:        page,
		Index:       index,
		SnippetBase: b.cfg.Snippets.Dir,
		PageDir:     filepath.Join(b.cfg.Docs.Dir, filepath.FromSlash(path.Dir(rel))),
		RenderedExt: ".html",
		TocDepth:    b.cfg.Toc.Depth,
		Logger:      observability.Logger(ctx),
		Metrics:     b.metrics,
	}

	html, err := markdown.Render(dctx, content.body)
	if err != nil {
		observability.ErrorContext(ctx, "Page render failed", logfields.Error(err))
		return err
	}

	out := filepath.Join(b.cfg.Output.Directory, filepath.FromSlash(pagetree.RewriteExtension(rel, ".html")))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write rendered page: %w", err)
	}

	b.metrics.IncPageRendered(time.Since(start))
	observability.DebugContext(ctx, "Page rendered", logfields.Output(out))
	return nil
}
