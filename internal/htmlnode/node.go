package htmlnode

import (
	"fmt"
	"strings"
)

// Node is a renderable HTML tree node. Implemented by *Leaf and *Parent.
type Node interface {
	// Render serializes the node and its subtree to HTML.
	Render() (string, error)

	render(b *strings.Builder) error
}

// voidElements lists elements that have no content and no end tag.
// Leaves with these tags may carry an empty value.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement reports whether tag is an HTML void element.
func IsVoidElement(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}

// Leaf is a node carrying text. An empty Tag means raw text.
type Leaf struct {
	Tag   string
	Value string
	Attrs Attributes
}

// NewText returns an untagged leaf that renders value verbatim.
func NewText(value string) *Leaf {
	return &Leaf{Value: value}
}

// NewLeaf returns a tagged leaf.
func NewLeaf(tag, value string, attrs Attributes) *Leaf {
	return &Leaf{Tag: tag, Value: value, Attrs: attrs}
}

// Render implements Node.
func (l *Leaf) Render() (string, error) {
	var b strings.Builder
	if err := l.render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (l *Leaf) render(b *strings.Builder) error {
	if l.Tag == "" {
		b.WriteString(l.Value)
		return nil
	}

	void := IsVoidElement(l.Tag)
	if l.Value == "" && !void {
		return fmt.Errorf("%w: <%s>", ErrMissingValue, l.Tag)
	}

	writeOpenTag(b, l.Tag, l.Attrs)
	if void && l.Value == "" {
		return nil
	}
	b.WriteString(l.Value)
	writeCloseTag(b, l.Tag)
	return nil
}

// String returns a debug representation.
func (l *Leaf) String() string {
	return fmt.Sprintf("Leaf(%q, %q, %s)", l.Tag, l.Value, RenderAttributes(l.Attrs))
}

// Parent is a tagged node owning an ordered, non-empty list of children.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    Attributes
}

// NewParent returns a parent node. Validation happens at render time.
func NewParent(tag string, children []Node, attrs Attributes) *Parent {
	return &Parent{Tag: tag, Children: children, Attrs: attrs}
}

// Render implements Node.
func (p *Parent) Render() (string, error) {
	var b strings.Builder
	if err := p.render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (p *Parent) render(b *strings.Builder) error {
	if p.Tag == "" {
		return ErrMissingTag
	}
	if len(p.Children) == 0 {
		return fmt.Errorf("%w: <%s>", ErrEmptyChildren, p.Tag)
	}

	writeOpenTag(b, p.Tag, p.Attrs)
	for _, child := range p.Children {
		if err := child.render(b); err != nil {
			return err
		}
	}
	writeCloseTag(b, p.Tag)
	return nil
}

// String returns a debug representation.
func (p *Parent) String() string {
	return fmt.Sprintf("Parent(%q, %d children, %s)", p.Tag, len(p.Children), RenderAttributes(p.Attrs))
}

// Render serializes n. A nil node renders the empty string.
func Render(n Node) (string, error) {
	if n == nil {
		return "", nil
	}
	return n.Render()
}

// writeOpenTag writes <tag attrs>, omitting the space when there are no attributes.
func writeOpenTag(b *strings.Builder, tag string, attrs Attributes) {
	b.WriteByte('<')
	b.WriteString(tag)
	if rendered := RenderAttributes(attrs); rendered != "" {
		b.WriteByte(' ')
		b.WriteString(rendered)
	}
	b.WriteByte('>')
}

func writeCloseTag(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

// Compile-time interface checks.
var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Parent)(nil)
)
