package pipeline

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/alnah/go-md2site/internal/block"
	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/inline"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		want     string
	}{
		{
			name:     "heading and paragraph",
			document: "# Title\n\nSome **bold** text.",
			want:     "<div><h1>Title</h1><p>Some <b>bold</b> text.</p></div>",
		},
		{
			name: "paragraph lines joined with a space",
			document: "\n    This is **bolded** paragraph\n    text in a p\n    tag here\n\n" +
				"    This is another paragraph with _italic_ text and `code` here\n\n    ",
			want: "<div><p>This is <b>bolded</b> paragraph text in a p tag here</p>" +
				"<p>This is another paragraph with <i>italic</i> text and <code>code</code> here</p></div>",
		},
		{
			name:     "code block is literal",
			document: "```\nraw _text_\n```",
			want:     "<div><pre><code>raw _text_\n</code></pre></div>",
		},
		{
			name: "code block keeps inner lines",
			document: "\n    ```\n    This is text that _should_ remain\n" +
				"    the **same** even with inline stuff\n    ```\n    ",
			want: "<div><pre><code>This is text that _should_ remain\n" +
				"the **same** even with inline stuff\n</code></pre></div>",
		},
		{
			name:     "empty code block",
			document: "```\n```",
			want:     "<div><pre><code>\n</code></pre></div>",
		},
		{
			name:     "ordered list",
			document: "1. a\n2. b\n3. c",
			want:     "<div><ol><li>a</li><li>b</li><li>c</li></ol></div>",
		},
		{
			name:     "unordered list",
			document: "- x\n- y",
			want:     "<div><ul><li>x</li><li>y</li></ul></div>",
		},
		{
			name: "ordered then unordered list",
			document: "1. This is \n2. a proper list\n3. With inline\n\n" +
				"- Here is another list, but this one is\n- unordered.",
			want: "<div><ol><li>This is</li><li>a proper list</li><li>With inline</li></ol>" +
				"<ul><li>Here is another list, but this one is</li><li>unordered.</li></ul></div>",
		},
		{
			name:     "list items tokenized",
			document: "- a [link](https://boot.dev)\n- **bold** item",
			want:     `<div><ul><li>a <a href="https://boot.dev">link</a></li><li><b>bold</b> item</li></ul></div>`,
		},
		{
			name:     "headings by level",
			document: "# This is first heading\n\n## This is second heading\n\n##### This is even more heading",
			want:     "<div><h1>This is first heading</h1><h2>This is second heading</h2><h5>This is even more heading</h5></div>",
		},
		{
			name:     "heading level beyond six preserved",
			document: "####### deep",
			want:     "<div><h7>deep</h7></div>",
		},
		{
			name:     "heading spanning lines",
			document: "# Title\ncontinued",
			want:     "<div><h1>Title continued</h1></div>",
		},
		{
			name:     "quote lines flattened",
			document: "> line one\n> line two",
			want:     "<div><blockquote>line one line two</blockquote></div>",
		},
		{
			name:     "quote removes every marker",
			document: "> a > b\n>\n> c",
			want:     "<div><blockquote>a  b c</blockquote></div>",
		},
		{
			name:     "quote tokenized",
			document: "> **bold** quote",
			want:     "<div><blockquote><b>bold</b> quote</blockquote></div>",
		},
		{
			name:     "image is self-contained",
			document: "![obi wan](https://i.imgur.com/fJRm4Vk.jpeg)",
			want:     `<div><p><img src="https://i.imgur.com/fJRm4Vk.jpeg" alt="obi wan"></p></div>`,
		},
		{
			name:     "html in content is not escaped",
			document: "a <br> b",
			want:     "<div><p>a <br> b</p></div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Render(tt.document)
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		wantErr  error
	}{
		{
			name:     "unpaired backtick",
			document: "# Title\n\na `b",
			wantErr:  inline.ErrUnpairedDelimiter,
		},
		{
			name:     "unpaired italic in list item",
			document: "- ok\n- snake_case",
			wantErr:  inline.ErrUnpairedDelimiter,
		},
		{
			name:     "empty bold run",
			document: "a **** b",
			wantErr:  htmlnode.ErrMissingValue,
		},
		{
			name:     "quote with no content",
			document: ">",
			wantErr:  htmlnode.ErrEmptyChildren,
		},
		{
			name:     "empty document",
			document: "",
			wantErr:  htmlnode.ErrEmptyChildren,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Render(tt.document)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Render() error = %v, want %v", err, tt.wantErr)
			}
			if got != "" {
				t.Errorf("Render() = %q on error, want no partial output", got)
			}
		})
	}
}

func TestBuild_ErrorNamesBlock(t *testing.T) {
	t.Parallel()

	_, err := Build("fine\n\n**broken")
	if err == nil {
		t.Fatal("Build() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "block 2") {
		t.Errorf("error %q should name the failing block", err)
	}
}

func TestBuild_RootHasOneChildPerBlock(t *testing.T) {
	t.Parallel()

	root, err := Build("# a\n\nb\n\n- c\n\n```\nd\n```\n\n> e")
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if root.Tag != RootTag {
		t.Errorf("root tag = %q, want %q", root.Tag, RootTag)
	}
	if len(root.Children) != 5 {
		t.Errorf("root has %d children, want 5", len(root.Children))
	}
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	document := "# T\n\nSome _it_ and **b** with [l](u) and ![i](s)\n\n1. x\n2. y"
	first, err := Render(document)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Render(document)
		if err != nil {
			t.Fatalf("Render() unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("Render() not deterministic:\n%q\n%q", first, again)
		}
	}
}

func TestRender_WellFormed(t *testing.T) {
	t.Parallel()

	document := "# Title\n\nSome **bold**, _italic_ and `code` with a [link](https://boot.dev).\n\n" +
		"![img](https://i.imgur.com/fJRm4Vk.jpeg)\n\n> quote\n\n- a\n- b\n\n1. c\n2. d\n\n```\nx < y\n```"

	got, err := Render(document)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	assertBalanced(t, got)
}

// assertBalanced walks fragment with the x/net/html tokenizer and checks
// that every non-void start tag is closed in order.
func assertBalanced(t *testing.T, fragment string) {
	t.Helper()

	var stack []string
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if len(stack) != 0 {
				t.Errorf("unclosed tags %v in %q", stack, fragment)
			}
			return
		case html.StartTagToken:
			name, _ := z.TagName()
			if !htmlnode.IsVoidElement(string(name)) {
				stack = append(stack, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if len(stack) == 0 || stack[len(stack)-1] != string(name) {
				t.Errorf("unexpected </%s> with open tags %v in %q", name, stack, fragment)
				return
			}
			stack = stack[:len(stack)-1]
		}
	}
}

func TestSpanToNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		span inline.Span
		want string
	}{
		{"plain", inline.NewPlain("This is a text node"), "This is a text node"},
		{"bold", inline.NewBold("This is a bold node"), "<b>This is a bold node</b>"},
		{"italic", inline.NewItalic("This is an italic node"), "<i>This is an italic node</i>"},
		{"code", inline.NewCode("This is a code node"), "<code>This is a code node</code>"},
		{"link", inline.NewLink("This is a link node", "https://localhost:8080"), `<a href="https://localhost:8080">This is a link node</a>`},
		{"image", inline.NewImage("This is an image node", "/path/to/image"), `<img src="/path/to/image" alt="This is an image node">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			leaf, err := SpanToNode(tt.span)
			if err != nil {
				t.Fatalf("SpanToNode() unexpected error: %v", err)
			}
			got, err := leaf.Render()
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpanToNode_ImageLeaf(t *testing.T) {
	t.Parallel()

	leaf, err := SpanToNode(inline.NewImage("alt", "/img.png"))
	if err != nil {
		t.Fatalf("SpanToNode() unexpected error: %v", err)
	}
	if leaf.Tag != "img" || leaf.Value != "" {
		t.Errorf("leaf = %v, want img with empty value", leaf)
	}
	if src, _ := leaf.Attrs.Get("src"); src != "/img.png" {
		t.Errorf("src = %q, want %q", src, "/img.png")
	}
}

func TestSpanToNode_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := SpanToNode(inline.Span{Kind: inline.Kind(99), Text: "x"})
	if !errors.Is(err, ErrUnknownSpanKind) {
		t.Errorf("SpanToNode() error = %v, want ErrUnknownSpanKind", err)
	}
}

func TestBlockToNode_ClassifiedBlocks(t *testing.T) {
	t.Parallel()

	b := block.Block{"1. one", "2. two"}
	node, err := BlockToNode(b, block.Classify(b))
	if err != nil {
		t.Fatalf("BlockToNode() unexpected error: %v", err)
	}
	got, err := node.Render()
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if got != "<ol><li>one</li><li>two</li></ol>" {
		t.Errorf("Render() = %q", got)
	}
}
