package md2site

import (
	"errors"

	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/inline"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown       = errors.New("markdown content cannot be empty")
	ErrTemplatePlaceholder = errors.New("page template missing placeholder")

	// Re-exported from the conversion pipeline so callers need a single import.
	ErrHTMLConversion    = pipeline.ErrHTMLConversion
	ErrUnknownEngine     = pipeline.ErrUnknownEngine
	ErrNoHeading         = pipeline.ErrNoHeading
	ErrUnpairedDelimiter = inline.ErrUnpairedDelimiter
	ErrMissingTag        = htmlnode.ErrMissingTag
	ErrEmptyChildren     = htmlnode.ErrEmptyChildren
	ErrMissingValue      = htmlnode.ErrMissingValue
)
