package main

// Notes:
// - runInit: writes a loadable config and a buildable starter page,
//   refuses to overwrite without --force, keeps an existing index.md,
//   always creates static/.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2site/internal/config"
)

func TestRunInit(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	env := newTestEnv(nil)
	if err := runInit([]string{root}, env.Environment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := config.LoadConfig(filepath.Join(root, "md2site.yaml"))
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.Content.Dir != config.DefaultContentDir {
		t.Errorf("Content.Dir = %q, want %q", cfg.Content.Dir, config.DefaultContentDir)
	}

	page := readFile(t, filepath.Join(root, "content", "index.md"))
	if !strings.HasPrefix(page, "# Welcome\n") {
		t.Errorf("starter page = %q", page)
	}
	if !strings.Contains(env.stdout.String(), "Created") {
		t.Errorf("stdout = %q", env.stdout.String())
	}
}

func TestRunInit_Overwrite(t *testing.T) {
	t.Parallel()

	root := setupTestDir(t, map[string]string{
		"md2site.yaml":     "engine: goldmark\n",
		"content/index.md": "# Mine",
	})

	err := runInit([]string{root}, newTestEnv(nil).Environment)
	if !errors.Is(err, ErrConfigExists) {
		t.Fatalf("error = %v, want ErrConfigExists", err)
	}
	if got := readFile(t, filepath.Join(root, "md2site.yaml")); got != "engine: goldmark\n" {
		t.Errorf("config overwritten without --force: %q", got)
	}

	if err := runInit([]string{"--force", root}, newTestEnv(nil).Environment); err != nil {
		t.Fatalf("unexpected error with --force: %v", err)
	}
	if got := readFile(t, filepath.Join(root, "md2site.yaml")); got == "engine: goldmark\n" {
		t.Error("--force did not overwrite the config")
	}
	if got := readFile(t, filepath.Join(root, "content", "index.md")); got != "# Mine" {
		t.Errorf("existing index.md replaced: %q", got)
	}
	if info, err := os.Stat(filepath.Join(root, "static")); err != nil || !info.IsDir() {
		t.Errorf("static/ not created alongside an existing index.md: %v", err)
	}
}

func TestRunInit_ThenBuild(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)

	env := newTestEnv(nil)
	if code := run(context.Background(), []string{"md2site", "init"}, env.Environment); code != ExitSuccess {
		t.Fatalf("init exit = %d\nstderr: %s", code, env.stderr.String())
	}
	if code := run(context.Background(), []string{"md2site", "build"}, env.Environment); code != ExitSuccess {
		t.Fatalf("build exit = %d\nstderr: %s", code, env.stderr.String())
	}

	doc := parsePage(t, filepath.Join(root, "public", "index.html"))
	if got := doc.Find("title").Text(); got != "Welcome" {
		t.Errorf("title = %q, want Welcome", got)
	}
}
