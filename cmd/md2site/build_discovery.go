package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// Document is a single markdown file and the page it becomes.
type Document struct {
	InputPath  string
	OutputPath string
}

// discoverDocuments walks contentDir for markdown files. Each output path
// mirrors the file's path relative to contentDir, with a .html extension.
// Symlinked files are not followed, and an output directory nested in
// contentDir is skipped. The result is sorted by input path.
func discoverDocuments(contentDir, outputDir string) ([]Document, error) {
	var docs []Document
	skip := filepath.Clean(outputDir)
	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() && path != contentDir && filepath.Clean(path) == skip {
			return filepath.SkipDir
		}
		if !d.Type().IsRegular() || !fileutil.IsMarkdown(path) {
			return nil
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		docs = append(docs, Document{
			InputPath:  path,
			OutputPath: filepath.Join(outputDir, fileutil.ReplaceExt(rel, ".html")),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].InputPath < docs[j].InputPath })
	return docs, nil
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}
