package block

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Type is the structural class of a block.
type Type int

const (
	Paragraph Type = iota
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

var typeNames = []string{
	Paragraph:     "Paragraph",
	Heading:       "Heading",
	Code:          "Code",
	Quote:         "Quote",
	UnorderedList: "UnorderedList",
	OrderedList:   "OrderedList",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Kind is a classification result. Level is set for headings only and is
// the number of leading '#' characters, not capped at 6.
type Kind struct {
	Type  Type
	Level int
}

func (k Kind) String() string {
	if k.Type == Heading {
		return fmt.Sprintf("Heading(%d)", k.Level)
	}
	return k.Type.String()
}

// CodeFence opens and closes a code block.
const CodeFence = "```"

var (
	headingPattern       = regexp.MustCompile(`^(#+)\s`)
	quoteLinePattern     = regexp.MustCompile(`^>($|\s)`)
	unorderedLinePattern = regexp.MustCompile(`^- `)
)

// Classify returns the kind of b. The first matching rule wins:
// heading, fenced code, quote, unordered list, ordered list, paragraph.
// Classify is total: any block, including an empty one, gets a kind.
func Classify(b Block) Kind {
	if len(b) == 0 {
		return Kind{Type: Paragraph}
	}

	if m := headingPattern.FindStringSubmatch(b[0]); m != nil {
		return Kind{Type: Heading, Level: len(m[1])}
	}
	if b[0] == CodeFence && b[len(b)-1] == CodeFence {
		return Kind{Type: Code}
	}
	if allLines(b, quoteLinePattern.MatchString) {
		return Kind{Type: Quote}
	}
	if allLines(b, unorderedLinePattern.MatchString) {
		return Kind{Type: UnorderedList}
	}
	if isOrderedList(b) {
		return Kind{Type: OrderedList}
	}
	return Kind{Type: Paragraph}
}

func allLines(b Block, match func(string) bool) bool {
	for _, line := range b {
		if !match(line) {
			return false
		}
	}
	return true
}

// isOrderedList reports whether line i starts with "{i+1}. " for every line.
func isOrderedList(b Block) bool {
	for i, line := range b {
		if !strings.HasPrefix(line, OrderedMarker(i+1)) {
			return false
		}
	}
	return len(b) > 0
}

// UnorderedMarker prefixes every unordered list line.
const UnorderedMarker = "- "

// OrderedMarker returns the prefix of the n-th ordered list line.
func OrderedMarker(n int) string {
	return strconv.Itoa(n) + ". "
}

// Tags describes the HTML produced for a block kind: a container tag and,
// for lists, the tag wrapping each line.
type Tags struct {
	Container string
	Item      string
}

// TagsFor maps a kind to its tags. Code blocks render as pre > code.
func TagsFor(k Kind) Tags {
	switch k.Type {
	case Heading:
		return Tags{Container: "h" + strconv.Itoa(k.Level)}
	case Code:
		return Tags{Container: "pre", Item: "code"}
	case Quote:
		return Tags{Container: "blockquote"}
	case UnorderedList:
		return Tags{Container: "ul", Item: "li"}
	case OrderedList:
		return Tags{Container: "ol", Item: "li"}
	default:
		return Tags{Container: "p"}
	}
}
