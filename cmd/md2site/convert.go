package main

import (
	"context"
	"fmt"
	"os"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// runConvert converts one document to stdout or a file.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		printConvertUsage(env.Stderr)
		return fmt.Errorf("%w: convert takes exactly one markdown file", ErrUsage)
	}
	input := positional[0]
	if err := validateMarkdownExtension(input); err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)

	cfg, err := resolveConfig(flags.common, env, logger)
	if err != nil {
		return err
	}
	applyRenderFlags(flags.render, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	site, err := loadSiteAssets(cfg)
	if err != nil {
		return err
	}
	conv, err := newConverter(cfg, site.template, logger)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	res, err := conv.Convert(ctx, md2site.Input{Markdown: string(content), SourcePath: input})
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	out := res.Body
	if flags.page {
		out = res.Page
	}

	if flags.output == "" {
		_, err := fmt.Fprintln(env.Stdout, out)
		return err
	}
	if err := fileutil.WriteFileAtomic(flags.output, []byte(out), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	}
	return nil
}
