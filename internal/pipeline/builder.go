package pipeline

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2site/internal/block"
	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/inline"
)

// RootTag wraps every rendered document.
const RootTag = "div"

// Build converts a Markdown document to an HTML tree: a "div" parent with
// one child per block, in block order. The tree is validated only when it
// is rendered.
func Build(document string) (*htmlnode.Parent, error) {
	blocks := block.Segment(document)

	children := make([]htmlnode.Node, 0, len(blocks))
	for i, b := range blocks {
		kind := block.Classify(b)
		node, err := BlockToNode(b, kind)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, kind, err)
		}
		children = append(children, node)
	}

	return htmlnode.NewParent(RootTag, children, htmlnode.Attributes{}), nil
}

// BlockToNode builds the subtree for a single classified block.
func BlockToNode(b block.Block, kind block.Kind) (htmlnode.Node, error) {
	tags := block.TagsFor(kind)

	switch kind.Type {
	case block.Code:
		return codeToNode(b, tags), nil
	case block.Heading:
		text := stripHeadingMarker(strings.Join(b, " "), kind.Level)
		return inlineParent(tags.Container, text)
	case block.Quote:
		return inlineParent(tags.Container, flattenQuote(b))
	case block.UnorderedList, block.OrderedList:
		return listToNode(b, kind, tags)
	default:
		return inlineParent(tags.Container, strings.Join(b, " "))
	}
}

// codeToNode keeps the lines between the fences literally, with a
// trailing newline. No inline tokenizing is applied.
func codeToNode(b block.Block, tags block.Tags) htmlnode.Node {
	var body string
	if len(b) > 2 {
		body = strings.Join(b[1:len(b)-1], "\n")
	}
	code := htmlnode.NewLeaf(tags.Item, body+"\n", htmlnode.Attributes{})
	return htmlnode.NewParent(tags.Container, []htmlnode.Node{code}, htmlnode.Attributes{})
}

// stripHeadingMarker removes level '#' characters and the whitespace
// character that follows them.
func stripHeadingMarker(line string, level int) string {
	if len(line) <= level {
		return ""
	}
	return line[level+1:]
}

// flattenQuote removes every '>' from every line and concatenates the
// remainders without a separator. The space after each marker is what
// keeps words apart.
func flattenQuote(b block.Block) string {
	var sb strings.Builder
	for _, line := range b {
		sb.WriteString(strings.ReplaceAll(line, ">", ""))
	}
	return strings.TrimSpace(sb.String())
}

func listToNode(b block.Block, kind block.Kind, tags block.Tags) (htmlnode.Node, error) {
	items := make([]htmlnode.Node, 0, len(b))
	for i, line := range b {
		marker := block.UnorderedMarker
		if kind.Type == block.OrderedList {
			marker = block.OrderedMarker(i + 1)
		}

		item, err := inlineParent(tags.Item, strings.TrimPrefix(line, marker))
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return htmlnode.NewParent(tags.Container, items, htmlnode.Attributes{}), nil
}

// inlineParent tokenizes text and wraps the resulting leaves in tag.
func inlineParent(tag, text string) (*htmlnode.Parent, error) {
	children, err := TextToNodes(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children, htmlnode.Attributes{}), nil
}

// TextToNodes tokenizes text and converts each span to a leaf.
func TextToNodes(text string) ([]htmlnode.Node, error) {
	spans, err := inline.Tokenize(text)
	if err != nil {
		return nil, err
	}

	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, span := range spans {
		leaf, err := SpanToNode(span)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, leaf)
	}
	return nodes, nil
}

// SpanToNode maps a span to its leaf: Plain to raw text, Bold to b,
// Italic to i, Code to code, Link to a[href], Image to img[src, alt].
func SpanToNode(span inline.Span) (*htmlnode.Leaf, error) {
	switch span.Kind {
	case inline.Plain:
		return htmlnode.NewText(span.Text), nil
	case inline.Bold:
		return htmlnode.NewLeaf("b", span.Text, htmlnode.Attributes{}), nil
	case inline.Italic:
		return htmlnode.NewLeaf("i", span.Text, htmlnode.Attributes{}), nil
	case inline.Code:
		return htmlnode.NewLeaf("code", span.Text, htmlnode.Attributes{}), nil
	case inline.Link:
		return htmlnode.NewLeaf("a", span.Text, htmlnode.NewAttributes("href", span.URL)), nil
	case inline.Image:
		return htmlnode.NewLeaf("img", "", htmlnode.NewAttributes("src", span.URL, "alt", span.Text)), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownSpanKind, span.Kind)
	}
}

// Render builds document and serializes it to an HTML fragment.
func Render(document string) (string, error) {
	root, err := Build(document)
	if err != nil {
		return "", err
	}
	return root.Render()
}
