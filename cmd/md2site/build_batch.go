package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// File permission constants.
const (
	filePermissions = 0o644 // rw-r--r--: pages are meant to be served
)

// DocumentConverter is the subset of *md2site.Converter used by the CLI.
type DocumentConverter interface {
	Convert(ctx context.Context, input md2site.Input) (*md2site.Result, error)
}

// Compile-time interface implementation check.
var _ DocumentConverter = (*md2site.Converter)(nil)

// BuildResult holds the outcome of a single document.
type BuildResult struct {
	InputPath  string
	OutputPath string
	Title      string
	Bytes      int
	Err        error
	Duration   time.Duration
}

// buildBatch converts documents concurrently with at most workers
// goroutines. Every document gets a result in input order; one failure
// never stops the others.
func buildBatch(ctx context.Context, conv DocumentConverter, docs []Document, workers int, logger *slog.Logger) []BuildResult {
	if len(docs) == 0 {
		return nil
	}

	concurrency := min(workers, len(docs))
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]BuildResult, len(docs))
	var wg sync.WaitGroup
	jobs := make(chan int, len(docs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = BuildResult{InputPath: docs[idx].InputPath, OutputPath: docs[idx].OutputPath, Err: err}
					continue
				}
				results[idx] = buildDocument(ctx, conv, docs[idx])
				if results[idx].Err != nil {
					logger.Debug("document failed", "path", docs[idx].InputPath, "error", results[idx].Err)
				}
			}
		}()
	}

	for i := range docs {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildDocument reads, converts and writes one document.
func buildDocument(ctx context.Context, conv DocumentConverter, doc Document) (result BuildResult) {
	start := time.Now()
	result = BuildResult{InputPath: doc.InputPath, OutputPath: doc.OutputPath}
	defer func() { result.Duration = time.Since(start) }()

	content, err := os.ReadFile(doc.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		return result
	}

	res, err := conv.Convert(ctx, md2site.Input{Markdown: string(content), SourcePath: doc.InputPath})
	if err != nil {
		result.Err = err
		return result
	}

	if err := fileutil.WriteFileAtomic(doc.OutputPath, []byte(res.Page), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return result
	}

	result.Title = res.Title
	result.Bytes = len(res.Page)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Bytes     int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []BuildResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.Bytes += r.Bytes
	}
	return summary
}

// printResults reports every document and returns the failure count.
// Failures always go to stderr with a hint when one applies.
func printResults(results []BuildResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}
		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %v)\n",
				r.InputPath, r.OutputPath, humanize.Bytes(uint64(r.Bytes)), r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed", summary.Succeeded, summary.Failed)
		if verbose {
			fmt.Fprintf(env.Stdout, " (%s written)", humanize.Bytes(uint64(summary.Bytes)))
		}
		fmt.Fprintln(env.Stdout)
	}

	return summary.Failed
}
