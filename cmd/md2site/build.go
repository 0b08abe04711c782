package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// stylesheetName is the file the page template links to.
const stylesheetName = "style.css"

// runBuild builds the whole site.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: build takes at most one content directory, got %d", ErrUsage, len(positional))
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)

	cfg, err := resolveConfig(flags.common, env, logger)
	if err != nil {
		return err
	}
	applySiteFlags(flags.site, cfg)
	applyRenderFlags(flags.render, cfg)
	if len(positional) == 1 {
		cfg.Content.Dir = positional[0]
	}
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

	if err := checkContentDir(cfg.Content.Dir); err != nil {
		return err
	}

	if err := fileutil.CheckDisjoint(cfg.Static.Dir, cfg.Output.Dir); err != nil {
		return fmt.Errorf("static and output: %w", err)
	}

	start := env.Now()
	if err := prepareOutput(cfg); err != nil {
		return err
	}

	stats, err := fileutil.CopyTree(cfg.Static.Dir, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("%w: copying static files: %v", ErrWriteOutput, err)
	}
	logger.Debug("copied static files",
		"dir", cfg.Static.Dir, "files", stats.Files, "size", humanize.Bytes(uint64(stats.Bytes)), "skipped", stats.Skipped)

	if err := writeStylesheet(cfg.Static.Dir, cfg.Output.Dir, site.style); err != nil {
		return err
	}

	docs, err := discoverDocuments(cfg.Content.Dir, cfg.Output.Dir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		logger.Warn("no markdown files found", "dir", cfg.Content.Dir)
	}

	workers := md2site.ResolvePoolSize(cfg.Workers)
	logger.Debug("building site", "documents", len(docs), "workers", workers, "engine", cfg.Engine)

	results := buildBatch(ctx, conv, docs, workers, logger)
	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)

	if err := ctx.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBuildFailed, failed, len(docs))
	}

	logger.Debug("site built", "output", cfg.Output.Dir, "elapsed", env.Now().Sub(start).Round(time.Millisecond))
	return nil
}

// checkContentDir fails unless dir is an existing directory.
func checkContentDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("content directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("content directory: %w: %s", fileutil.ErrNotDir, dir)
	}
	return nil
}

// prepareOutput empties the output directory when cleaning is enabled,
// and creates it otherwise. Cleaning never touches the content, static or
// assets directories.
func prepareOutput(cfg *config.Config) error {
	if cfg.Output.CleanOutput() {
		return fileutil.ResetDir(cfg.Output.Dir, cfg.Content.Dir, cfg.Static.Dir, cfg.Assets.Dir)
	}
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// writeStylesheet writes the site stylesheet unless the static tree
// provides its own.
func writeStylesheet(staticDir, outputDir, css string) error {
	if fileutil.FileExists(filepath.Join(staticDir, stylesheetName)) {
		return nil
	}
	path := filepath.Join(outputDir, stylesheetName)
	if err := fileutil.WriteFileAtomic(path, []byte(css), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
