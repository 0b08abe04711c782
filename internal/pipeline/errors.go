package pipeline

import "errors"

// Sentinel errors for pipeline operations.
var (
	// ErrHTMLConversion indicates HTML conversion failed.
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// ErrNoHeading indicates the document does not open with a "# " heading.
	ErrNoHeading = errors.New("markdown does not start with a level-one heading")

	// ErrUnknownEngine indicates an unsupported HTML engine name.
	ErrUnknownEngine = errors.New("unknown HTML engine")

	// ErrUnknownSpanKind indicates a span kind with no HTML mapping.
	ErrUnknownSpanKind = errors.New("unknown span kind")
)
