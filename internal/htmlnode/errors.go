package htmlnode

import "errors"

// Sentinel errors for render operations.
var (
	// ErrMissingTag indicates a parent node without a tag name.
	ErrMissingTag = errors.New("parent node missing tag")

	// ErrEmptyChildren indicates a parent node without children.
	ErrEmptyChildren = errors.New("parent node must have at least one child")

	// ErrMissingValue indicates a tagged leaf without a value
	// whose element is not self-contained.
	ErrMissingValue = errors.New("leaf node missing value")
)
