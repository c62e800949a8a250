// Package frontmatter handles the optional YAML header (`---` delimited)
// at the top of a markdown page. The header can override the page title
// and overlay properties for that page only.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// Meta holds the recognized frontmatter fields of a page.
type Meta struct {
	// Title overrides the title derived from the first level-1 heading.
	Title string `yaml:"title,omitempty"`
	// Description is carried through for downstream site generators.
	Description string `yaml:"description,omitempty"`
	// Properties overlay the site-wide property map for this page.
	Properties map[string]string `yaml:"properties,omitempty"`
}

// ErrMissingClosingDelimiter indicates the page started with a frontmatter
// delimiter but never closed it.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Split separates YAML frontmatter from the markdown body. If the page does
// not start with a `---` delimiter, meta is zero and body is the full input.
func Split(content []byte) (meta Meta, body []byte, err error) {
	raw, body, had, err := splitRaw(content)
	if err != nil {
		return Meta{}, nil, err
	}
	if !had || len(raw) == 0 {
		return Meta{}, body, nil
	}
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		return Meta{}, nil, err
	}
	return meta, body, nil
}

func splitRaw(content []byte) (raw, body []byte, had bool, err error) {
	nl := detectNewline(content)
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		// Empty header.
		return nil, content[start+len(open):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		// A closing delimiter at EOF without a trailing newline still counts.
		tail := []byte(nl + "---")
		if bytes.HasSuffix(content[start:], tail) {
			return content[start : len(content)-len("---")], nil, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return content[start : start+idx+len(nl)], content[start+idx+len(closeSeq):], true, nil
}

func detectNewline(content []byte) string {
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			return "\r\n"
		}
		if content[i] == '\n' {
			return "\n"
		}
	}
	return "\n"
}
