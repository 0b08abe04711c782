package md2site

import (
	"io"
	"log/slog"
)

// Input contains the data for a single conversion.
type Input struct {
	Markdown   string // Required: Markdown source
	SourcePath string // Optional: origin of the document, used in log records
}

// Result contains the output of a successful conversion.
type Result struct {
	Title string // Text of the leading "# " heading
	Body  string // <div> fragment produced by the engine
	Page  string // Template with {{ Title }} and {{ Content }} substituted
}

// Option configures a Converter.
type Option func(*Converter)

// WithEngine selects the HTML engine by name ("native" or "goldmark").
// Unknown names make New fail with ErrUnknownEngine.
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engine = name
	}
}

// WithTemplate sets the page template text. It must contain both
// {{ Title }} and {{ Content }}.
func WithTemplate(text string) Option {
	return func(c *Converter) {
		c.cfg.template = text
		c.cfg.templateSet = true
	}
}

// WithMarkdownLinks rewrites links to local .md and .markdown files so
// they point at the generated .html pages.
func WithMarkdownLinks() Option {
	return func(c *Converter) {
		c.cfg.rewriteLinks = true
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// converterConfig holds construction-time settings.
type converterConfig struct {
	engine      string
	template    string
	templateSet bool

	rewriteLinks bool
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
