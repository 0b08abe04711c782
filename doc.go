// Package md2site converts Markdown documents into HTML pages for a static site.
//
// # Quick Start
//
// Create a converter and convert a document:
//
//	conv, err := md2site.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2site.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", []byte(result.Page), 0o644)
//
// The result carries the document title, the rendered <div> fragment
// (result.Body) and the full page (result.Page).
//
// # Conversion Pipeline
//
//  1. Preprocessing (leading BOM removal, line ending normalization)
//  2. Title extraction from the first "# " heading
//  3. Markdown to HTML, either with the native engine (paragraphs, headings,
//     fenced code, quotes, lists, bold, italic, code, links, images) or with
//     goldmark (CommonMark, GFM, syntax highlighting)
//  4. Optional rewriting of links to .md files into links to .html pages
//  5. Substitution of {{ Title }} and {{ Content }} in the page template
//
// # Configuration
//
//	conv, err := md2site.New(
//	    md2site.WithEngine("goldmark"),
//	    md2site.WithTemplate(tmpl),
//	    md2site.WithLogger(slog.Default()),
//	    md2site.WithMarkdownLinks(),
//	)
//
// # Error Handling
//
// Errors wrap sentinels and are checked with errors.Is:
//
//	_, err := conv.Convert(ctx, input)
//	if errors.Is(err, md2site.ErrUnpairedDelimiter) {
//	    // an opening ** _ or ` has no partner
//	}
//
// # Concurrency
//
// A Converter holds no per-call state and may be shared by goroutines.
// ResolvePoolSize picks a worker count for batch builds.
package md2site
