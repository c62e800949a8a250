package markdown

import (
	"fmt"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"

	"git.home.luguber.info/inful/docdirect/internal/pagetree"
	"git.home.luguber.info/inful/docdirect/internal/util/sets"
)

// slugIDs generates heading anchor IDs with the same slug rules the page
// index uses, so TOC fragments always match the rendered output.
type slugIDs struct {
	used sets.Set[string]
}

func newSlugIDs() parser.IDs {
	return &slugIDs{used: sets.New[string]()}
}

// Generate implements parser.IDs.
func (s *slugIDs) Generate(value []byte, kind gmast.NodeKind) []byte {
	slug := pagetree.Slug(string(value))
	if slug == "" {
		slug = "section"
	}
	candidate := slug
	for i := 1; s.used.Has(candidate); i++ {
		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
	s.used.Add(candidate)
	return []byte(candidate)
}

// Put implements parser.IDs.
func (s *slugIDs) Put(value []byte) {
	s.used.Add(string(value))
}
