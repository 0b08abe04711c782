package main

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/alnah/go-md2site/internal/config"
)

// envPrefix marks environment variables read by md2site.
const envPrefix = "MD2SITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2SITE_CONFIG: config file name or path
	ContentDir string // MD2SITE_CONTENT_DIR
	StaticDir  string // MD2SITE_STATIC_DIR
	OutputDir  string // MD2SITE_OUTPUT_DIR
	AssetsDir  string // MD2SITE_ASSETS_DIR
	Template   string // MD2SITE_TEMPLATE: template name
	Style      string // MD2SITE_STYLE: stylesheet name
	Engine     string // MD2SITE_ENGINE: native or goldmark
	Workers    int    // MD2SITE_WORKERS: parallel workers, -1 when unset
}

// knownEnvVars lists valid MD2SITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2SITE_CONFIG":      true,
	"MD2SITE_CONTENT_DIR": true,
	"MD2SITE_STATIC_DIR":  true,
	"MD2SITE_OUTPUT_DIR":  true,
	"MD2SITE_ASSETS_DIR":  true,
	"MD2SITE_TEMPLATE":    true,
	"MD2SITE_STYLE":       true,
	"MD2SITE_ENGINE":      true,
	"MD2SITE_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable MD2SITE_WORKERS is logged and ignored.
func loadEnvConfig(getenv func(string) string, logger *slog.Logger) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2SITE_CONFIG"),
		ContentDir: getenv("MD2SITE_CONTENT_DIR"),
		StaticDir:  getenv("MD2SITE_STATIC_DIR"),
		OutputDir:  getenv("MD2SITE_OUTPUT_DIR"),
		AssetsDir:  getenv("MD2SITE_ASSETS_DIR"),
		Template:   getenv("MD2SITE_TEMPLATE"),
		Style:      getenv("MD2SITE_STYLE"),
		Engine:     getenv("MD2SITE_ENGINE"),
		Workers:    -1,
	}

	if workers := getenv("MD2SITE_WORKERS"); workers != "" {
		w, err := strconv.Atoi(workers)
		if err != nil || w < 0 {
			logger.Warn("ignoring invalid environment variable", "name", "MD2SITE_WORKERS", "value", workers)
		} else {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2SITE_* variables.
// Helps catch typos like MD2SITE_OUTPUT instead of MD2SITE_OUTPUT_DIR.
func warnUnknownEnvVars(environ []string, logger *slog.Logger) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig overrides config values with those set in the environment.
// CLI flags are applied afterwards, giving flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setIfNotEmpty(&cfg.Content.Dir, env.ContentDir)
	setIfNotEmpty(&cfg.Static.Dir, env.StaticDir)
	setIfNotEmpty(&cfg.Output.Dir, env.OutputDir)
	setIfNotEmpty(&cfg.Assets.Dir, env.AssetsDir)
	setIfNotEmpty(&cfg.Template, env.Template)
	setIfNotEmpty(&cfg.Style, env.Style)
	setIfNotEmpty(&cfg.Engine, env.Engine)
	if env.Workers >= 0 {
		cfg.Workers = env.Workers
	}
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
