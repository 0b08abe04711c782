// Package block splits a Markdown document into blocks and classifies them.
//
// A block is a maximal run of non-blank lines. Lines are trimmed, so
// indentation carries no meaning: nested lists and indented code are not
// recognized.
package block

import (
	"regexp"
	"strings"
)

// Block is a non-empty run of trimmed, non-blank lines.
type Block []string

// Text joins the block's lines with newlines.
func (b Block) Text() string {
	return strings.Join(b, "\n")
}

// blankLineSeparator matches one or more empty lines between groups.
// Whitespace-only lines do not separate; they are dropped from their group.
var blankLineSeparator = regexp.MustCompile(`\n{2,}`)

// Segment splits document into blocks in document order. Leading and
// trailing newlines are ignored and each line is trimmed. Lines left empty
// are dropped, as are groups with no remaining lines, so no returned block
// is empty.
func Segment(document string) []Block {
	document = strings.Trim(document, "\n")
	if document == "" {
		return nil
	}

	var blocks []Block
	for _, group := range blankLineSeparator.Split(document, -1) {
		var lines Block
		for _, line := range strings.Split(group, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			blocks = append(blocks, lines)
		}
	}
	return blocks
}
