package main

import (
	"errors"
	"fmt"
	"log/slog"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
)

// resolveConfig loads the site configuration and applies environment
// overrides. Without --config or MD2SITE_CONFIG, a missing md2site.yaml
// falls back to defaults; a named config that cannot be found is an error.
func resolveConfig(common commonFlags, env *Environment, logger *slog.Logger) (*config.Config, error) {
	warnUnknownEnvVars(env.Environ(), logger)
	envCfg := loadEnvConfig(env.Getenv, logger)

	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	explicit := name != ""
	if !explicit {
		name = config.DefaultName
	}

	cfg, err := config.LoadConfig(name)
	switch {
	case err == nil:
		logger.Debug("loaded config", "name", name)
	case !explicit && errors.Is(err, config.ErrConfigNotFound):
		logger.Debug("no config file, using defaults")
		cfg = config.DefaultConfig()
	default:
		return nil, err
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// applyRenderFlags overrides config values with explicitly set flags.
func applyRenderFlags(f renderFlags, cfg *config.Config) {
	setIfNotEmpty(&cfg.Engine, f.engine)
	setIfNotEmpty(&cfg.Assets.Dir, f.assetsDir)
	setIfNotEmpty(&cfg.Template, f.template)
	setIfNotEmpty(&cfg.Style, f.style)
	if f.workers >= 0 {
		cfg.Workers = f.workers
	}
}

// applySiteFlags overrides output layout values with explicitly set flags.
func applySiteFlags(f siteFlags, cfg *config.Config) {
	setIfNotEmpty(&cfg.Static.Dir, f.staticDir)
	setIfNotEmpty(&cfg.Output.Dir, f.outputDir)
	if f.noClean {
		clean := false
		cfg.Output.Clean = &clean
	}
}

// siteAssets holds the template and stylesheet resolved for a build.
type siteAssets struct {
	template string
	style    string
}

// loadSiteAssets resolves the configured template and stylesheet, custom
// asset directory first, embedded defaults second.
func loadSiteAssets(cfg *config.Config) (*siteAssets, error) {
	resolver, err := assets.NewAssetResolver(cfg.Assets.Dir)
	if err != nil {
		return nil, err
	}

	tmpl, err := resolver.LoadTemplate(cfg.Template)
	if err != nil {
		return nil, &assetLookupError{dir: cfg.Assets.Dir, kind: "templates", name: cfg.Template, ext: ".html", err: err}
	}
	if err := md2site.ValidateTemplate(tmpl); err != nil {
		return nil, fmt.Errorf("template %q: %w", cfg.Template, err)
	}

	style, err := resolver.LoadStyle(cfg.Style)
	if err != nil {
		return nil, &assetLookupError{dir: cfg.Assets.Dir, kind: "styles", name: cfg.Style, ext: ".css", err: err}
	}

	return &siteAssets{template: tmpl, style: style}, nil
}

// newConverter creates the library converter for cfg.
func newConverter(cfg *config.Config, tmpl string, logger *slog.Logger) (*md2site.Converter, error) {
	opts := []md2site.Option{
		md2site.WithEngine(cfg.Engine),
		md2site.WithTemplate(tmpl),
		md2site.WithLogger(logger),
	}
	if cfg.MarkdownLinks() {
		opts = append(opts, md2site.WithMarkdownLinks())
	}
	return md2site.New(opts...)
}
