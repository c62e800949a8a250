// Package check verifies a rendered site offline: every internal link in
// every HTML fragment must point at a file that exists in the output tree,
// and every fragment anchor must exist in its target document.
package check

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/docdirect/internal/logfields"
)

// Problem is one broken reference found during a site check.
type Problem struct {
	Page   string // fragment the link appears in, relative to the site root
	URL    string // the offending href or src
	Reason string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: [%s] %s", p.Page, p.URL, p.Reason)
}

// Report holds the outcome of a site check.
type Report struct {
	Pages    int
	Links    int
	Problems []Problem
}

// Failed reports whether the check found broken references.
func (r *Report) Failed() bool { return len(r.Problems) > 0 }

type document struct {
	links []Link
	ids   map[string]bool
}

// Site verifies all internal links under siteDir. Logging is best-effort;
// pass a nil logger to disable it.
func Site(siteDir string, log *slog.Logger) (*Report, error) {
	docs := map[string]document{}
	err := filepath.WalkDir(siteDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}
		rel, err := filepath.Rel(siteDir, p)
		if err != nil {
			return err
		}
		links, ids, err := extractDocument(p)
		if err != nil {
			return fmt.Errorf("parse %s: %w", rel, err)
		}
		docs[filepath.ToSlash(rel)] = document{links: links, ids: ids}
		return nil
	})
	if err != nil {
		return nil, err
	}

	report := &Report{Pages: len(docs)}
	for _, page := range sortedKeys(docs) {
		doc := docs[page]
		for _, link := range doc.links {
			report.Links++
			if problem := verify(siteDir, docs, page, link); problem != nil {
				report.Problems = append(report.Problems, *problem)
			}
		}
	}
	sort.Slice(report.Problems, func(i, j int) bool {
		if report.Problems[i].Page != report.Problems[j].Page {
			return report.Problems[i].Page < report.Problems[j].Page
		}
		return report.Problems[i].URL < report.Problems[j].URL
	})

	if log != nil {
		for _, p := range report.Problems {
			log.Warn("Broken link", logfields.Page(p.Page), slog.String("url", p.URL), slog.String("reason", p.Reason))
		}
		log.Info("Site check finished",
			logfields.Pages(report.Pages),
			logfields.Links(report.Links),
			logfields.Failed(len(report.Problems)))
	}
	return report, nil
}

// verify checks one link from page against the document set. External
// links are skipped. Targets that are not rendered fragments (images,
// downloads) only need to exist on disk.
func verify(siteDir string, docs map[string]document, page string, link Link) *Problem {
	if isExternal(link.URL) {
		return nil
	}

	target, fragment, _ := strings.Cut(link.URL, "#")
	targetPage := page
	if target != "" {
		if path.IsAbs(target) {
			targetPage = strings.TrimPrefix(path.Clean(target), "/")
		} else {
			targetPage = path.Join(path.Dir(page), target)
		}
		if _, ok := docs[targetPage]; !ok {
			if _, err := os.Stat(filepath.Join(siteDir, filepath.FromSlash(targetPage))); err != nil {
				return &Problem{Page: page, URL: link.URL, Reason: "target file does not exist"}
			}
		}
	}
	if fragment != "" {
		if doc, ok := docs[targetPage]; ok && !doc.ids[fragment] {
			return &Problem{Page: page, URL: link.URL, Reason: fmt.Sprintf("anchor #%s not found in %s", fragment, targetPage)}
		}
	}
	return nil
}

func sortedKeys(docs map[string]document) []string {
	keys := make([]string, 0, len(docs))
	for k := range docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
