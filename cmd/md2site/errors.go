package main

import (
	"errors"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/hints"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteOutput      = errors.New("failed to write output")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrConfigExists     = errors.New("config file already exists")
	ErrBuildFailed      = errors.New("some documents failed to convert")
)

// assetLookupError records which custom asset could not be loaded.
type assetLookupError struct {
	dir, kind, name, ext string
	err                  error
}

func (e *assetLookupError) Error() string {
	return e.kind + "/" + e.name + e.ext + ": " + e.err.Error()
}

func (e *assetLookupError) Unwrap() error { return e.err }

// hintFor returns the hint suffix for err, or "".
func hintFor(err error) string {
	var lookup *assetLookupError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &lookup) && (errors.Is(err, assets.ErrTemplateNotFound) || errors.Is(err, assets.ErrStyleNotFound)):
		return hints.ForAssetNotFound(lookup.dir, lookup.kind, lookup.name, lookup.ext)
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(config.DefaultName))
	case errors.Is(err, fileutil.ErrUnsafeClean):
		return hints.ForUnsafeClean()
	case errors.Is(err, fileutil.ErrOverlap):
		return hints.ForOverlappingDirs()
	case errors.Is(err, md2site.ErrTemplatePlaceholder):
		return hints.ForTemplate()
	case errors.Is(err, md2site.ErrUnknownEngine):
		return hints.ForUnknownEngine(pipeline.Engines)
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	default:
		return hints.ForConversion(err)
	}
}
