// Package inline tokenizes a run of Markdown text into typed spans.
//
// Tokenizing is a fixed sequence of passes over a span list. Each pass only
// splits Plain spans and leaves typed spans untouched:
//
//  1. delimiter pairs: **bold**, then _italic_, then `code`
//  2. links: [text](url), not preceded by '!'
//  3. images: ![alt](url)
//
// Emphasis does not nest: text inside a typed span is never re-scanned.
package inline

import "fmt"

// Kind identifies the type of a Span.
type Kind int

const (
	Plain Kind = iota
	Bold
	Italic
	Code
	Link
	Image
)

var kindNames = []string{
	Plain:  "Plain",
	Bold:   "Bold",
	Italic: "Italic",
	Code:   "Code",
	Link:   "Link",
	Image:  "Image",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Span is an immutable run of inline content. For Link the Text is the
// anchor text; for Image it is the alt text. URL is empty for other kinds.
// Spans compare structurally with ==.
type Span struct {
	Kind Kind
	Text string
	URL  string
}

// NewPlain returns a Plain span.
func NewPlain(text string) Span { return Span{Kind: Plain, Text: text} }

// NewBold returns a Bold span.
func NewBold(text string) Span { return Span{Kind: Bold, Text: text} }

// NewItalic returns an Italic span.
func NewItalic(text string) Span { return Span{Kind: Italic, Text: text} }

// NewCode returns a Code span.
func NewCode(text string) Span { return Span{Kind: Code, Text: text} }

// NewLink returns a Link span.
func NewLink(text, url string) Span { return Span{Kind: Link, Text: text, URL: url} }

// NewImage returns an Image span.
func NewImage(alt, url string) Span { return Span{Kind: Image, Text: alt, URL: url} }

func (s Span) String() string {
	if s.URL != "" {
		return fmt.Sprintf("%s(%q, %q)", s.Kind, s.Text, s.URL)
	}
	return fmt.Sprintf("%s(%q)", s.Kind, s.Text)
}
