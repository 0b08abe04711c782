package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// RewriteMarkdownLinks points links at Markdown sources to the pages built
// from them: a[href] values such as "guide.md#setup" become
// "guide.html#setup". Query strings and fragments are kept.
//
// Left untouched:
//   - URLs with a scheme (https:, mailto:, data:) or protocol-relative "//"
//   - fragment-only links ("#top")
//   - img[src] and any other attribute
//
// The fragment is returned as-is when nothing was rewritten.
func RewriteMarkdownLinks(fragment string) (string, error) {
	if !strings.Contains(fragment, "<a ") {
		return fragment, nil
	}

	doc, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	if !rewriteLinks(doc) {
		return fragment, nil
	}
	return renderFragment(doc)
}

// parseFragment parses content in a body context, so no <html><body>
// wrapper is added, and hangs the nodes off one container.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders the container's children.
func renderFragment(doc *html.Node) (string, error) {
	var buf strings.Builder
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteLinks walks the tree and reports whether any href changed.
func rewriteLinks(n *html.Node) bool {
	changed := false
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Namespace != "" || attr.Key != "href" {
				continue
			}
			if rewritten, ok := markdownTarget(attr.Val); ok {
				n.Attr[i].Val = rewritten
				changed = true
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if rewriteLinks(c) {
			changed = true
		}
	}
	return changed
}

// markdownTarget returns href with its .md or .markdown path swapped for
// .html, and false when href is not a local Markdown link.
func markdownTarget(href string) (string, bool) {
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "//") || hasScheme(href) {
		return "", false
	}

	path, suffix := href, ""
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		path, suffix = href[:i], href[i:]
	}
	if !fileutil.IsMarkdown(path) {
		return "", false
	}
	return fileutil.ReplaceExt(path, ".html") + suffix, true
}

// hasScheme reports whether s starts with a URL scheme such as "https:".
// A colon after the first "/" belongs to the path.
func hasScheme(s string) bool {
	for i, r := range s {
		switch {
		case r == ':':
			return i > 0
		case r == '/' || r == '?' || r == '#':
			return false
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case i > 0 && ('0' <= r && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return false
}
