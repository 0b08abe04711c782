package md2site

import (
	"fmt"
	"strings"
)

// Page template placeholders.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// RenderPage substitutes every occurrence of {{ Title }} and {{ Content }}
// in template. The substitution is literal: no escaping, and text inserted
// for one placeholder is never rescanned for the other.
func RenderPage(template, title, body string) string {
	r := strings.NewReplacer(TitlePlaceholder, title, ContentPlaceholder, body)
	return r.Replace(template)
}

// ValidateTemplate reports ErrTemplatePlaceholder when template lacks either
// placeholder.
func ValidateTemplate(template string) error {
	var missing []string
	for _, p := range []string{TitlePlaceholder, ContentPlaceholder} {
		if !strings.Contains(template, p) {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrTemplatePlaceholder, strings.Join(missing, ", "))
	}
	return nil
}
