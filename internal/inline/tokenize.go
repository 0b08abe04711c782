package inline

import (
	"fmt"
	"regexp"
	"strings"
)

// Delimiters in the order their passes run.
const (
	BoldDelimiter   = "**"
	ItalicDelimiter = "_"
	CodeDelimiter   = "`"
)

var delimiterPasses = []struct {
	marker string
	kind   Kind
}{
	{BoldDelimiter, Bold},
	{ItalicDelimiter, Italic},
	{CodeDelimiter, Code},
}

// Precompiled link and image patterns. Go's regexp has no lookbehind, so
// the "not preceded by !" rule for links is applied in findLinks.
var (
	linkPattern  = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
)

// Tokenize converts text into spans in document order.
// Empty text yields no spans. Tokenize is stateless and safe for
// concurrent use.
func Tokenize(text string) ([]Span, error) {
	spans := []Span{NewPlain(text)}

	var err error
	for _, pass := range delimiterPasses {
		spans, err = SplitDelimiter(spans, pass.marker, pass.kind)
		if err != nil {
			return nil, err
		}
	}

	spans = SplitLinks(spans)
	spans = SplitImages(spans)
	return spans, nil
}

// SplitDelimiter splits every Plain span on marker, turning each enclosed
// run into a span of kind. Occurrences pair up in order: 1st with 2nd,
// 3rd with 4th. Empty Plain runs are dropped; empty enclosed runs are kept.
func SplitDelimiter(spans []Span, marker string, kind Kind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			out = append(out, span)
			continue
		}

		if n := strings.Count(span.Text, marker); n%2 != 0 {
			return nil, fmt.Errorf("%w: %d occurrence(s) of %q in %q", ErrUnpairedDelimiter, n, marker, span.Text)
		}

		for i, part := range strings.Split(span.Text, marker) {
			if i%2 == 0 {
				if part != "" {
					out = append(out, NewPlain(part))
				}
				continue
			}
			out = append(out, Span{Kind: kind, Text: part})
		}
	}
	return out, nil
}

// match is one pattern hit inside a Plain span.
type match struct {
	start, end int
	text, url  string
}

// SplitLinks replaces [text](url) in Plain spans with Link spans.
// Image syntax is left intact for SplitImages.
func SplitLinks(spans []Span) []Span {
	return splitMatches(spans, Link, findLinks)
}

// SplitImages replaces ![alt](url) in Plain spans with Image spans.
func SplitImages(spans []Span) []Span {
	return splitMatches(spans, Image, findImages)
}

// FindLinks returns the links in text, ignoring image syntax.
func FindLinks(text string) []Span {
	return matchesToSpans(findLinks(text), Link)
}

// FindImages returns the images in text.
func FindImages(text string) []Span {
	return matchesToSpans(findImages(text), Image)
}

func splitMatches(spans []Span, kind Kind, find func(string) []match) []Span {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			out = append(out, span)
			continue
		}

		matches := find(span.Text)
		if len(matches) == 0 {
			out = append(out, span)
			continue
		}

		pos := 0
		for _, m := range matches {
			if m.start > pos {
				out = append(out, NewPlain(span.Text[pos:m.start]))
			}
			out = append(out, Span{Kind: kind, Text: m.text, URL: m.url})
			pos = m.end
		}
		if pos < len(span.Text) {
			out = append(out, NewPlain(span.Text[pos:]))
		}
	}
	return out
}

// findLinks scans left to right. A candidate preceded by '!' is rejected
// and scanning resumes one byte past its start, so a link nested after
// a rejected image prefix is still found.
func findLinks(text string) []match {
	var matches []match
	offset := 0
	for offset < len(text) {
		loc := linkPattern.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			break
		}
		start := offset + loc[0]
		if start > 0 && text[start-1] == '!' {
			offset = start + 1
			continue
		}
		matches = append(matches, match{
			start: start,
			end:   offset + loc[1],
			text:  text[offset+loc[2] : offset+loc[3]],
			url:   text[offset+loc[4] : offset+loc[5]],
		})
		offset += loc[1]
	}
	return matches
}

func findImages(text string) []match {
	var matches []match
	for _, loc := range imagePattern.FindAllStringSubmatchIndex(text, -1) {
		matches = append(matches, match{
			start: loc[0],
			end:   loc[1],
			text:  text[loc[2]:loc[3]],
			url:   text[loc[4]:loc[5]],
		})
	}
	return matches
}

func matchesToSpans(matches []match, kind Kind) []Span {
	spans := make([]Span, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, Span{Kind: kind, Text: m.text, URL: m.url})
	}
	return spans
}
