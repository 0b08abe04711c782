package pipeline

import (
	"strings"
)

// titlePrefix must open the first non-blank line of a page.
const titlePrefix = "# "

// ExtractTitle returns the text of the level-one heading on the first
// non-blank line of document, trimmed. Returns ErrNoHeading if that line
// is not a "# " heading.
func ExtractTitle(document string) (string, error) {
	for _, line := range strings.Split(document, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, titlePrefix) {
			return "", ErrNoHeading
		}
		return strings.TrimSpace(strings.TrimPrefix(line, titlePrefix)), nil
	}
	return "", ErrNoHeading
}
