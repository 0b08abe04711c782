package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags override the site configuration.
// Empty strings and negative workers mean "not set".
type siteFlags struct {
	staticDir string
	outputDir string
	noClean   bool
}

// renderFlags select how documents are rendered.
type renderFlags struct {
	engine    string
	assetsDir string
	template  string
	style     string
	workers   int
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common commonFlags
	site   siteFlags
	render renderFlags
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common commonFlags
	render renderFlags
	output string
	page   bool
}

// initFlags holds all flags for the init command.
type initFlags struct {
	force bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs, sizes and timing")
}

// addSiteFlags adds output layout flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVarP(&f.staticDir, "static", "s", "", "static directory copied into the output")
	fs.StringVarP(&f.outputDir, "output", "o", "", "output directory")
	fs.BoolVar(&f.noClean, "no-clean", false, "keep existing files in the output directory")
}

// addRenderFlags adds engine and asset flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.engine, "engine", "e", "", "HTML engine: native, goldmark")
	fs.StringVar(&f.assetsDir, "assets", "", "directory with templates/ and styles/")
	fs.StringVarP(&f.template, "template", "t", "", "page template name")
	fs.StringVar(&f.style, "style", "", "stylesheet name")
	fs.IntVarP(&f.workers, "workers", "w", -1, "parallel workers (0 = auto)")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, usage func(io.Writer), stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet("build", printBuildUsage, stderr)

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	addRenderFlags(fs, &f.render)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newFlagSet("convert", printConvertUsage, stderr)

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVarP(&f.page, "page", "p", false, "emit the full page instead of the fragment")

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string, stderr io.Writer) (*initFlags, []string, error) {
	f := &initFlags{}
	fs := newFlagSet("init", printInitUsage, stderr)

	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing config file")

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parse runs fs.Parse and tags failures as usage errors.
// -h/--help prints usage and surfaces flag.ErrHelp.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		fs.Usage()
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}
