package metadata

import (
	"bytes"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// descriptionLimit bounds the article-text fallback description.
const descriptionLimit = 200

// maxTagHints bounds how many keyword hints a page can contribute.
const maxTagHints = 5

// Extract runs the strategy chain over a downloaded page.
//
// The rich pass reads Open Graph tags, the meta description, meta
// keywords and (as a last resort for the description) the leading
// article text. If it produces nothing, the basic pass falls back to
// the raw <title> and <meta name="description"> markup. Unparsable
// input yields an empty Metadata.
func Extract(body []byte) Metadata {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return Metadata{}
	}

	m := extractRich(doc)
	if m.Empty() {
		m = extractBasic(doc)
	}
	return m
}

// extractRich is the content-extraction strategy.
func extractRich(doc *html.Node) Metadata {
	var m Metadata

	m.Title = metaProperty(doc, "og:title")
	m.Description = metaProperty(doc, "og:description")
	if m.Description == "" {
		m.Description = metaName(doc, "description")
	}
	if m.Description == "" {
		if text := articleText(doc); text != "" {
			m.Description = truncate(text, descriptionLimit)
		}
	}
	if m.Title == "" {
		m.Title = titleText(doc)
	}
	m.TagsHint = keywordHints(metaName(doc, "keywords"))

	return m
}

// extractBasic is the generic fallback strategy: plain <title> and
// <meta name="description"> only.
func extractBasic(doc *html.Node) Metadata {
	return Metadata{
		Title:       titleText(doc),
		Description: metaName(doc, "description"),
	}
}

// keywordHints filters a meta keywords value into tag candidates:
// alphabetic words longer than 3 runes, deduplicated, capped.
func keywordHints(keywords string) []string {
	if keywords == "" {
		return nil
	}

	hints := make([]string, 0, maxTagHints)
	seen := make(map[string]bool)
	for _, kw := range strings.Split(keywords, ",") {
		kw = strings.TrimSpace(kw)
		if len([]rune(kw)) <= 3 || !isAlpha(kw) || seen[kw] {
			continue
		}
		seen[kw] = true
		hints = append(hints, kw)
		if len(hints) == maxTagHints {
			break
		}
	}
	if len(hints) == 0 {
		return nil
	}
	return hints
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// ─────────────────────────────────────────────────────────────────
// DOM helpers
// ─────────────────────────────────────────────────────────────────

func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

// metaName returns the content of <meta name="..." content="...">.
func metaName(doc *html.Node, name string) string {
	return metaContent(doc, "name", name)
}

// metaProperty returns the content of <meta property="..." content="...">.
func metaProperty(doc *html.Node, property string) string {
	return metaContent(doc, "property", property)
}

func metaContent(doc *html.Node, key, value string) string {
	var content string
	walk(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "meta" &&
			strings.EqualFold(attr(n, key), value) {
			content = strings.TrimSpace(attr(n, "content"))
			return content == "" // keep looking if this one was empty
		}
		return true
	})
	return content
}

// titleText returns the text of the first <title> element.
func titleText(doc *html.Node) string {
	var title string
	walk(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			title = strings.TrimSpace(nodeText(n))
			return false
		}
		return true
	})
	return title
}

// articleText gathers paragraph text, preferring an <article> element
// over the whole body.
func articleText(doc *html.Node) string {
	root := doc
	walk(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "article" {
			root = n
			return false
		}
		return true
	})

	var parts []string
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "p" {
			if text := strings.TrimSpace(nodeText(n)); text != "" {
				parts = append(parts, text)
			}
		}
		return true
	})
	return strings.Join(parts, " ")
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return true
	})
	return collapseWhitespace(sb.String())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
