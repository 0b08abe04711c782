package md2site

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/alnah/go-md2site/internal/pipeline"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{name: "defaults"},
		{name: "native engine", opts: []Option{WithEngine(pipeline.EngineNative)}},
		{name: "goldmark engine", opts: []Option{WithEngine(pipeline.EngineGoldmark)}},
		{name: "unknown engine", opts: []Option{WithEngine("pandoc")}, wantErr: ErrUnknownEngine},
		{name: "custom template", opts: []Option{WithTemplate("{{ Title }}|{{ Content }}")}},
		{name: "template without content", opts: []Option{WithTemplate("{{ Title }}")}, wantErr: ErrTemplatePlaceholder},
		{name: "empty template", opts: []Option{WithTemplate("")}, wantErr: ErrTemplatePlaceholder},
		{name: "nil logger ignored", opts: []Option{WithLogger(nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := New(tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if c.logger == nil {
				t.Error("New() left logger nil")
			}
		})
	}
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		markdown  string
		wantTitle string
		wantBody  string
		wantErr   error
	}{
		{
			name:      "title and paragraph",
			markdown:  "# Tolkien Fan Club\n\nHello **world**",
			wantTitle: "Tolkien Fan Club",
			wantBody:  "<div><h1>Tolkien Fan Club</h1><p>Hello <b>world</b></p></div>",
		},
		{
			name:      "CRLF input",
			markdown:  "# Title\r\n\r\n- a\r\n- b\r\n",
			wantTitle: "Title",
			wantBody:  "<div><h1>Title</h1><ul><li>a</li><li>b</li></ul></div>",
		},
		{
			name:      "leading BOM",
			markdown:  "\uFEFF# Title\n\ntext",
			wantTitle: "Title",
			wantBody:  "<div><h1>Title</h1><p>text</p></div>",
		},
		{
			name:     "empty markdown",
			markdown: "",
			wantErr:  ErrEmptyMarkdown,
		},
		{
			name:     "whitespace only",
			markdown: " \n\t\n",
			wantErr:  ErrEmptyMarkdown,
		},
		{
			name:     "no title heading",
			markdown: "## Subtitle\n\ntext",
			wantErr:  ErrNoHeading,
		},
		{
			name:     "unpaired delimiter",
			markdown: "# Title\n\nsome **bold",
			wantErr:  ErrUnpairedDelimiter,
		},
	}

	c, err := New(WithTemplate("<title>{{ Title }}</title>{{ Content }}"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.Convert(context.Background(), Input{Markdown: tt.markdown})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Convert() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Convert() unexpected error: %v", err)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", got.Body, tt.wantBody)
			}
			wantPage := "<title>" + tt.wantTitle + "</title>" + tt.wantBody
			if got.Page != wantPage {
				t.Errorf("Page = %q, want %q", got.Page, wantPage)
			}
		})
	}
}

func TestConverter_Convert_DefaultTemplate(t *testing.T) {
	t.Parallel()

	c, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := c.Convert(context.Background(), Input{Markdown: "# Hello\n\nWorld"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !strings.Contains(got.Page, "<title>Hello</title>") {
		t.Errorf("Page missing title element: %q", got.Page)
	}
	if !strings.Contains(got.Page, got.Body) {
		t.Error("Page does not contain Body")
	}
	if strings.Contains(got.Page, "{{") {
		t.Error("Page still contains a placeholder")
	}
}

func TestConverter_Convert_Goldmark(t *testing.T) {
	t.Parallel()

	c, err := New(WithEngine(pipeline.EngineGoldmark), WithTemplate("{{ Title }}{{ Content }}"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := c.Convert(context.Background(), Input{Markdown: "# Hello\n\n| a | b |\n|---|---|\n| 1 | 2 |"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got.Title != "Hello" {
		t.Errorf("Title = %q, want %q", got.Title, "Hello")
	}
	if !strings.HasPrefix(got.Body, "<div>") || !strings.Contains(got.Body, "<table>") {
		t.Errorf("Body = %q, want <div> wrapped table", got.Body)
	}
}

func TestConverter_Convert_MarkdownLinks(t *testing.T) {
	t.Parallel()

	const md = "# Index\n\nSee [the guide](docs/guide.md#top)."
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"kept by default", nil, `href="docs/guide.md#top"`},
		{"rewritten", []Option{WithMarkdownLinks()}, `href="docs/guide.html#top"`},
		{"rewritten with goldmark", []Option{WithMarkdownLinks(), WithEngine(pipeline.EngineGoldmark)}, `href="docs/guide.html#top"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := New(tt.opts...)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			got, err := c.Convert(context.Background(), Input{Markdown: md})
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if !strings.Contains(got.Body, tt.want) || !strings.Contains(got.Page, tt.want) {
				t.Errorf("Body = %q, want it to contain %s", got.Body, tt.want)
			}
		})
	}
}

func TestConverter_Convert_CanceledContext(t *testing.T) {
	t.Parallel()

	c, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Convert(ctx, Input{Markdown: "# Title"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

func TestConverter_Convert_LogsDebugRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c, err := New(WithLogger(logger))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := c.Convert(context.Background(), Input{Markdown: "# Logged", SourcePath: "docs/logged.md"}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"converted document", "path=docs/logged.md", "title=Logged"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestConverter_ConcurrentUse(t *testing.T) {
	t.Parallel()

	c, err := New(WithTemplate("{{ Title }}{{ Content }}"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Convert(context.Background(), Input{Markdown: "# T\n\n_x_ and `y`"})
			if err != nil {
				errs <- err
				return
			}
			if got.Body != "<div><h1>T</h1><p><i>x</i> and <code>y</code></p></div>" {
				errs <- errors.New("unexpected body: " + got.Body)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
