package links

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/linkstash/linkstash/internal/domain"
)

// parseBookmarkHTML turns every hyperlink element of a browser
// bookmark export into one candidate: href becomes the URL, the anchor
// text becomes the title. Bookmark exports carry no description.
func parseBookmarkHTML(r io.Reader) ([]Candidate, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bookmark html: %w", err)
	}

	var candidates []Candidate
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			href := anchorHref(n)
			if href != "" {
				candidates = append(candidates, Candidate{
					URL:      href,
					Title:    strings.TrimSpace(anchorText(n)),
					Priority: domain.PriorityLow,
					Number:   len(candidates) + 1,
				})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)

	return candidates, nil
}

func anchorHref(n *html.Node) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, "href") {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

func anchorText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}
