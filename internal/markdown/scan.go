package markdown

import (
	"strings"

	"git.home.luguber.info/inful/docdirect/internal/directive"
)

// header is a scanned directive header: everything between the `@` markers
// and the end of the construct.
type header struct {
	name   string
	label  string
	source directive.Source
	attrs  directive.Attributes
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '.' || c == '-' || c == '_'
}

// scanHeader reads a directive header from line starting at pos (just past
// the `@` markers). It returns the scanned header and the position after the
// last consumed byte. strict requires a `[label]` or `(source)` group right
// after the keyword, which the inline parser uses to avoid swallowing plain
// `@word` text.
func scanHeader(line []byte, pos int, strict bool) (header, int, bool) {
	var h header

	start := pos
	for pos < len(line) && isNameByte(line[pos]) {
		pos++
	}
	if pos == start || !(line[start] >= 'a' && line[start] <= 'z' || line[start] >= 'A' && line[start] <= 'Z') {
		return h, pos, false
	}
	h.name = string(line[start:pos])
	if pos < len(line) && line[pos] == ':' {
		h.name += ":"
		pos++
	}

	if strict && (pos >= len(line) || (line[pos] != '[' && line[pos] != '(')) {
		return h, pos, false
	}

	pos = skipSpaces(line, pos)
	if label, next, ok := scanDelimited(line, pos, '[', ']'); ok {
		h.label = label
		pos = next
	}

	pos = skipSpaces(line, pos)
	switch {
	case pos < len(line) && line[pos] == '(':
		value, next, ok := scanDelimited(line, pos, '(', ')')
		if !ok {
			return h, pos, false
		}
		h.source = directive.Source{Kind: directive.SourceDirect, Value: value}
		pos = next
	case pos < len(line) && line[pos] == '[':
		value, next, ok := scanDelimited(line, pos, '[', ']')
		if !ok {
			return h, pos, false
		}
		h.source = directive.Source{Kind: directive.SourceRef, Value: value}
		pos = next
	default:
		h.source = directive.Source{Kind: directive.SourceEmpty}
	}

	pos = skipSpaces(line, pos)
	if pos < len(line) && line[pos] == '{' {
		body, next, ok := scanDelimited(line, pos, '{', '}')
		if !ok {
			return h, pos, false
		}
		h.attrs = scanAttributes(body)
		pos = next
	}

	return h, pos, true
}

func skipSpaces(line []byte, pos int) int {
	for pos < len(line) && (line[pos] == ' ' || line[pos] == '\t') {
		pos++
	}
	return pos
}

// scanDelimited reads a `<open>...<close>` group at pos. Backslash escapes
// the closing delimiter; nesting is not supported.
func scanDelimited(line []byte, pos int, open, close byte) (string, int, bool) {
	if pos >= len(line) || line[pos] != open {
		return "", pos, false
	}
	var b strings.Builder
	i := pos + 1
	for i < len(line) {
		c := line[i]
		if c == '\\' && i+1 < len(line) && line[i+1] == close {
			b.WriteByte(close)
			i += 2
			continue
		}
		if c == close {
			return b.String(), i + 1, true
		}
		b.WriteByte(c)
		i++
	}
	return "", pos, false
}

// scanAttributes tokenizes an attribute body: `key=val`, `key="v 2"`,
// `.class`, `#id` and bare positional values, separated by whitespace.
func scanAttributes(body string) directive.Attributes {
	pairs := make(map[string]string)
	var values, classes, ids []string

	for _, tok := range splitAttrTokens(body) {
		switch {
		case strings.HasPrefix(tok, "."):
			classes = append(classes, tok[1:])
		case strings.HasPrefix(tok, "#"):
			ids = append(ids, tok[1:])
		case strings.Contains(tok, "="):
			key, val, _ := strings.Cut(tok, "=")
			pairs[key] = unquote(val)
		default:
			values = append(values, unquote(tok))
		}
	}
	return directive.NewAttributes(pairs, values, classes, ids)
}

// splitAttrTokens splits on whitespace, keeping quoted spans intact.
func splitAttrTokens(body string) []string {
	var tokens []string
	var b strings.Builder
	quoted := false
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '"':
			quoted = !quoted
			b.WriteByte(c)
		case !quoted && (c == ' ' || c == '\t'):
			flush()
		default:
			b.WriteByte(c)
		}
	}
	flush()
	return tokens
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
