// Package snippet extracts labeled regions from source files for inclusion
// in rendered pages. Regions are delimited by marker comments containing
// "#<label>"; the markers themselves are never part of the output.
package snippet

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// MissingFileError identifies an absent snippet source file.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("snippet file [%s] not found", e.Path)
}

// Result is an extracted snippet. MissingLabels lists requested labels that
// never appeared in the file; extraction still succeeds with those regions
// empty, and callers are expected to surface a warning so blank blocks do not
// go unnoticed.
type Result struct {
	Text          string
	MissingLabels []string
}

// Extract reads the labeled regions from the file at path. With no labels the
// whole file is returned, minus marker-only lines. With labels, the line
// ranges between matching start/end markers are concatenated in label order,
// re-indented relative to the first range.
func Extract(path string, labels []string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, fmt.Errorf("reading snippet file [%s]: %w", path, err)
	}
	lines := splitLines(string(data))

	if len(labels) == 0 {
		return &Result{Text: strings.Join(dropMarkerLines(lines), "\n")}, nil
	}

	var out []string
	var missing []string
	indent := ""
	first := true
	for _, label := range labels {
		region := extractRegion(lines, label)
		if region == nil {
			missing = append(missing, label)
			continue
		}
		region = dropMarkerLines(region)
		if first {
			indent = commonIndent(region)
			first = false
		}
		for _, line := range region {
			out = append(out, strings.TrimPrefix(line, indent))
		}
	}
	return &Result{Text: strings.Join(out, "\n"), MissingLabels: missing}, nil
}

// extractRegion returns the lines strictly between the first pair of marker
// lines carrying the label, or nil when no start marker exists. An unclosed
// region extends to the end of the file.
func extractRegion(lines []string, label string) []string {
	marker := "#" + label
	start := -1
	for i, line := range lines {
		if !hasMarker(line, marker) {
			continue
		}
		if start < 0 {
			start = i + 1
			continue
		}
		return lines[start:i]
	}
	if start < 0 {
		return nil
	}
	return lines[start:]
}

// hasMarker reports whether line contains marker as a whole token.
func hasMarker(line, marker string) bool {
	i := strings.Index(line, marker)
	if i < 0 {
		return false
	}
	rest := line[i+len(marker):]
	if rest == "" {
		return true
	}
	c := rest[0]
	return !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-')
}

// markerOnly matches a line that exists solely to delimit a snippet region:
// optional comment syntax around a single "#label" token.
var markerOnly = regexp.MustCompile(`^\s*(?://|#|--|;|\*|/\*|<!--)?\s*#[A-Za-z0-9_-]+\s*(?:\*/|-->)?\s*$`)

// isMarkerLine reports whether a line consists solely of comment syntax and a
// "#label" token.
func isMarkerLine(line string) bool {
	return markerOnly.MatchString(line)
}

func dropMarkerLines(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if isMarkerLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

// commonIndent returns the longest whitespace prefix shared by all non-empty
// lines.
func commonIndent(lines []string) string {
	indent := ""
	found := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			indent = lead
			found = true
			continue
		}
		max := len(indent)
		if len(lead) < max {
			max = len(lead)
		}
		i := 0
		for i < max && indent[i] == lead[i] {
			i++
		}
		indent = indent[:i]
	}
	return indent
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
