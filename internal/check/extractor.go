package check

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Link is one outgoing reference extracted from a rendered fragment.
type Link struct {
	URL       string // href or src value
	Text      string // link text, or alt text for images
	Tag       string // a, img
	Attribute string // href, src
}

// extractDocument parses one rendered HTML fragment, returning its
// outgoing links and the set of anchor ids it defines.
func extractDocument(htmlPath string) ([]Link, map[string]bool, error) {
	file, err := os.Open(filepath.Clean(htmlPath))
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return extractFromReader(file)
}

func extractFromReader(r io.Reader) ([]Link, map[string]bool, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, nil, err
	}

	var links []Link
	ids := map[string]bool{}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id := getAttr(n, "id"); id != "" {
				ids[id] = true
			}
			switch n.Data {
			case "a":
				if href := getAttr(n, "href"); href != "" {
					links = append(links, Link{URL: href, Text: nodeText(n), Tag: "a", Attribute: "href"})
				}
			case "img":
				if src := getAttr(n, "src"); src != "" {
					links = append(links, Link{URL: src, Text: getAttr(n, "alt"), Tag: "img", Attribute: "src"})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, ids, nil
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data)
	}
	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text.WriteString(nodeText(c))
	}
	return strings.TrimSpace(text.String())
}

// isExternal reports whether a URL points outside the rendered site.
// External links are out of scope for the offline check.
func isExternal(linkURL string) bool {
	if strings.HasPrefix(linkURL, "mailto:") ||
		strings.HasPrefix(linkURL, "tel:") ||
		strings.HasPrefix(linkURL, "data:") {
		return true
	}
	return strings.Contains(linkURL, "://")
}
