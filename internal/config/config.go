// Package config loads and validates the YAML site configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/pipeline"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DefaultName is the config name looked up when none is given.
const DefaultName = "md2site"

// Default directories, relative to the working directory.
const (
	DefaultContentDir = "content"
	DefaultStaticDir  = "static"
	DefaultOutputDir  = "public"
)

// Field limits.
const (
	MaxPathLength = 4096 // PATH_MAX on Linux
	MaxWorkers    = 64
)

// Config holds the site build settings.
type Config struct {
	Content  ContentConfig `yaml:"content"`
	Static   StaticConfig  `yaml:"static"`
	Output   OutputConfig  `yaml:"output"`
	Assets   AssetsConfig  `yaml:"assets"`
	Template string        `yaml:"template"` // templates/{name}.html
	Style    string        `yaml:"style"`    // styles/{name}.css
	Engine   string        `yaml:"engine"`   // "native" or "goldmark"
	Workers  int           `yaml:"workers"`  // 0 = auto

	RewriteLinks *bool `yaml:"rewrite_links,omitempty"` // nil = true
}

// ContentConfig locates the Markdown tree.
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// StaticConfig locates files copied verbatim into the output.
type StaticConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig defines where pages are written.
type OutputConfig struct {
	Dir   string `yaml:"dir"`
	Clean *bool  `yaml:"clean,omitempty"` // nil = true
}

// AssetsConfig points at a directory of custom templates and styles.
type AssetsConfig struct {
	Dir string `yaml:"dir"` // empty = embedded assets only
}

// CleanOutput reports whether the output directory is emptied before a build.
func (o OutputConfig) CleanOutput() bool {
	return o.Clean == nil || *o.Clean
}

// MarkdownLinks reports whether links to .md files are pointed at the
// generated .html pages.
func (c *Config) MarkdownLinks() bool {
	return c.RewriteLinks == nil || *c.RewriteLinks
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	clean, rewrite := true, true
	return &Config{
		Content:  ContentConfig{Dir: DefaultContentDir},
		Static:   StaticConfig{Dir: DefaultStaticDir},
		Output:   OutputConfig{Dir: DefaultOutputDir, Clean: &clean},
		Template: assets.DefaultTemplateName,
		Style:    assets.DefaultStyleName,
		Engine:   pipeline.EngineNative,

		RewriteLinks: &rewrite,
	}
}

// applyDefaults fills fields a config file left empty.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Content.Dir == "" {
		c.Content.Dir = d.Content.Dir
	}
	if c.Static.Dir == "" {
		c.Static.Dir = d.Static.Dir
	}
	if c.Output.Dir == "" {
		c.Output.Dir = d.Output.Dir
	}
	if c.Template == "" {
		c.Template = d.Template
	}
	if c.Style == "" {
		c.Style = d.Style
	}
	if c.Engine == "" {
		c.Engine = d.Engine
	}
}

// Validate checks lengths, names and ranges.
// Called by LoadConfig, and by the CLI after flag and environment overrides.
func (c *Config) Validate() error {
	paths := []struct{ field, value string }{
		{"content.dir", c.Content.Dir},
		{"static.dir", c.Static.Dir},
		{"output.dir", c.Output.Dir},
		{"assets.dir", c.Assets.Dir},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.field, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if c.Template != "" {
		if err := assets.ValidateAssetName(c.Template); err != nil {
			return fmt.Errorf("%w: template: %v", ErrInvalidValue, err)
		}
	}
	if c.Style != "" {
		if err := assets.ValidateAssetName(c.Style); err != nil {
			return fmt.Errorf("%w: style: %v", ErrInvalidValue, err)
		}
	}

	if c.Engine != "" && !slices.Contains(pipeline.Engines, c.Engine) {
		return fmt.Errorf("%w: %w %q (must be %s)", ErrInvalidValue, pipeline.ErrUnknownEngine, c.Engine, strings.Join(pipeline.Engines, " or "))
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched in standard locations.
// Returns ErrConfigNotFound if no file exists; the caller decides whether
// that falls back to DefaultConfig.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Marshal renders cfg as YAML, for the starter file written by init.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}

// SearchPaths lists the files a config name resolves to, in lookup order:
// ./NAME.yaml, ./NAME.yml, then the same names under the user config dir
// (~/.config/go-md2site/ on Linux).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2site", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
