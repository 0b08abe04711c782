package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// starterPage is written to content/index.md by init when absent.
const starterPage = `# Welcome

This site is built with **md2site**. Edit _content/index.md_ and run ` + "`md2site build`" + `.

- Put pages under content/
- Put images and other files under static/
`

// runInit writes a starter configuration and home page into a directory.
func runInit(args []string, env *Environment) error {
	flags, positional, err := parseInitFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: init takes at most one directory", ErrUsage)
	}
	root := "."
	if len(positional) == 1 {
		root = positional[0]
	}

	cfgPath := filepath.Join(root, config.DefaultName+".yaml")
	if fileutil.FileExists(cfgPath) && !flags.force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, cfgPath)
	}

	data, err := config.Marshal(config.DefaultConfig())
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(cfgPath, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", cfgPath)

	if err := os.MkdirAll(filepath.Join(root, config.DefaultStaticDir), 0o755); err != nil { // #nosec G301 -- site tree
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	indexPath := filepath.Join(root, config.DefaultContentDir, "index.md")
	if fileutil.FileExists(indexPath) {
		return nil
	}
	if err := fileutil.WriteFileAtomic(indexPath, []byte(starterPage), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", indexPath)
	return nil
}
