package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// maxprocs.Set only fails on an invalid GOMAXPROCS env value, in which
	// case runtime defaults apply.
	logf := func(string, ...any) {}
	if hasVerboseFlag(os.Args[1:]) {
		logf = func(format string, args ...any) { fmt.Fprintf(env.Stderr, format+"\n", args...) }
	}
	undo, _ := maxprocs.Set(maxprocs.Logger(logf))

	ctx, stop := notifyContext(context.Background())
	code := run(ctx, os.Args, env)
	stop()
	undo()
	os.Exit(code)
}

// run dispatches to a command and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	var err error
	switch cmd {
	case "build":
		err = runBuild(ctx, rest, env)
	case "convert":
		err = runConvert(ctx, rest, env)
	case "init":
		err = runInit(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2site %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	case "help", "-h", "--help":
		err = runHelp(rest, env)
	default:
		printUsage(env.Stderr)
		err = fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		// Per-document failures were already reported line by line
		if !errors.Is(err, ErrBuildFailed) {
			fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		} else {
			fmt.Fprintf(env.Stderr, "error: %v\n", err)
		}
	}
	return exitCodeFor(err)
}

// hasVerboseFlag reports whether -v or --verbose appears before "--".
func hasVerboseFlag(args []string) bool {
	if i := slices.Index(args, "--"); i >= 0 {
		args = args[:i]
	}
	return slices.Contains(args, "-v") || slices.Contains(args, "--verbose")
}
