package pipeline

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Engine names accepted by NewHTMLConverter.
const (
	EngineNative   = "native"
	EngineGoldmark = "goldmark"
)

// Engines lists the supported engine names.
var Engines = []string{EngineNative, EngineGoldmark}

// HTMLConverter abstracts Markdown to HTML conversion.
// Implementations return a fragment wrapped in a single <div>.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// NewHTMLConverter returns the converter for engine. An empty name
// selects the native engine.
func NewHTMLConverter(engine string) (HTMLConverter, error) {
	switch engine {
	case "", EngineNative:
		return &NativeConverter{}, nil
	case EngineGoldmark:
		return NewGoldmarkConverter(), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s, %s)", ErrUnknownEngine, engine, EngineNative, EngineGoldmark)
	}
}

// NativeConverter converts the supported Markdown subset with Build.
// Conversion is synchronous and allocation-bound, so the context is only
// checked before work starts.
type NativeConverter struct{}

// ToHTML converts Markdown content to a <div> fragment.
func (c *NativeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return Render(content)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes, styled by the site stylesheet
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
			// WithUnsafe() is not used: raw HTML in content is omitted.
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to a <div> fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		buf.WriteString("<" + RootTag + ">")
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		buf.WriteString("</" + RootTag + ">")
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Compile-time interface checks.
var (
	_ HTMLConverter = (*NativeConverter)(nil)
	_ HTMLConverter = (*GoldmarkConverter)(nil)
)
