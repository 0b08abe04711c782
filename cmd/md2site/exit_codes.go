package main

import (
	"errors"
	"io/fs"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Exit codes for the md2site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site or document built
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, template or validation
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitContent = 4 // One or more documents could not be converted
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, ErrBuildFailed) ||
		errors.Is(err, md2site.ErrUnpairedDelimiter) ||
		errors.Is(err, md2site.ErrNoHeading) ||
		errors.Is(err, md2site.ErrMissingValue) ||
		errors.Is(err, md2site.ErrMissingTag) ||
		errors.Is(err, md2site.ErrEmptyChildren) ||
		errors.Is(err, md2site.ErrEmptyMarkdown) ||
		errors.Is(err, md2site.ErrHTMLConversion) {
		return ExitContent
	}

	// I/O errors (exit 3)
	if errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrConfigExists) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2site.ErrUnknownEngine) ||
		errors.Is(err, md2site.ErrTemplatePlaceholder) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, fileutil.ErrUnsafeClean) ||
		errors.Is(err, fileutil.ErrOverlap) ||
		errors.Is(err, fileutil.ErrNotDir) {
		return ExitUsage
	}

	return ExitGeneral
}
