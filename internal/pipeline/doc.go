// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// This package handles preprocessing, tree building and HTML conversion:
//   - Markdown preprocessing (line ending normalization, BOM removal)
//   - Block segmentation and classification (internal/block)
//   - Inline tokenizing of block content (internal/inline)
//   - HTML tree construction and serialization (internal/htmlnode)
//   - Title extraction from the leading "# " heading
//
// Two engines implement HTMLConverter: the native engine built from the
// packages above, and a goldmark engine for CommonMark output. Page
// templating and file handling live outside this package.
package pipeline
