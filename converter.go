package md2site

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.LineEndingPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.NativeConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// Converter turns Markdown documents into HTML pages.
// Create with New and call Convert for each document. A Converter holds no
// per-call state and is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	logger        *slog.Logger
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
}

// New creates a Converter. Without options it uses the native engine and
// the embedded page template.
// Returns ErrUnknownEngine for an unsupported engine name and
// ErrTemplatePlaceholder when the template lacks a placeholder.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          converterConfig{engine: pipeline.EngineNative},
		logger:       discardLogger(),
		preprocessor: &pipeline.LineEndingPreprocessor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.htmlConverter == nil {
		conv, err := pipeline.NewHTMLConverter(c.cfg.engine)
		if err != nil {
			return nil, err
		}
		c.htmlConverter = conv
	}

	if !c.cfg.templateSet {
		tmpl, err := assets.LoadTemplate(assets.DefaultTemplateName)
		if err != nil {
			return nil, fmt.Errorf("loading default template: %w", err)
		}
		c.cfg.template = tmpl
	}
	if err := ValidateTemplate(c.cfg.template); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert runs the full pipeline on one document.
// The context is checked between stages.
func (c *Converter) Convert(ctx context.Context, input Input) (*Result, error) {
	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}
	start := time.Now()

	content := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title, err := pipeline.ExtractTitle(content)
	if err != nil {
		return nil, err
	}

	body, err := c.htmlConverter.ToHTML(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}
	if c.cfg.rewriteLinks {
		if body, err = pipeline.RewriteMarkdownLinks(body); err != nil {
			return nil, fmt.Errorf("rewriting links: %w", err)
		}
	}

	page := RenderPage(c.cfg.template, title, body)

	c.logger.Debug("converted document",
		slog.String("path", input.SourcePath),
		slog.String("title", title),
		slog.Int("bytes", len(page)),
		slog.Duration("duration", time.Since(start)),
	)

	return &Result{Title: title, Body: body, Page: page}, nil
}

// Engine returns the configured engine name.
func (c *Converter) Engine() string {
	return c.cfg.engine
}
