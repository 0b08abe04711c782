// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"errors"
	"strings"

	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/inline"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// ForConversion returns the hint matching a document conversion error,
// or "" when none applies.
func ForConversion(err error) string {
	switch {
	case errors.Is(err, inline.ErrUnpairedDelimiter):
		return ForUnpairedDelimiter()
	case errors.Is(err, pipeline.ErrNoHeading):
		return ForNoHeading()
	case errors.Is(err, htmlnode.ErrMissingValue):
		return ForEmptyInline()
	default:
		return ""
	}
}

// ForUnpairedDelimiter returns a hint for an opening marker without partner.
func ForUnpairedDelimiter() string {
	return format("close every **, _ and ` inside the same block, or use the goldmark engine")
}

// ForNoHeading returns a hint for documents without a title heading.
func ForNoHeading() string {
	return format(`the first non-blank line must be a title such as "# My Page"`)
}

// ForEmptyInline returns a hint for empty emphasis, code or link text.
func ForEmptyInline() string {
	return format("remove empty markup such as ****, `` or [](url)")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a file in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/site.yaml or run md2site init"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2site") {
			hint += "; or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnsafeClean returns a hint for a refused output reset.
func ForUnsafeClean() string {
	return format("point output.dir at a dedicated directory, or pass --no-clean")
}

// ForOverlappingDirs returns a hint for a static directory that shares
// files with the output directory.
func ForOverlappingDirs() string {
	return format("static.dir and output.dir must be separate directories, neither inside the other")
}

// ForTemplate returns a hint for templates missing a placeholder.
func ForTemplate() string {
	return format("page templates must contain {{ Title }} and {{ Content }}")
}

// ForAssetNotFound returns a hint naming where a custom asset is looked up.
func ForAssetNotFound(assetsDir, kind, name, ext string) string {
	if assetsDir == "" {
		return format("set assets.dir (or --assets) to a directory with " + kind + "/" + name + ext)
	}
	return format("expected " + strings.TrimRight(assetsDir, `/\`) + "/" + kind + "/" + name + ext)
}

// ForUnknownEngine lists the supported engines.
func ForUnknownEngine(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
