package main

// Notes:
// - runHelp: each command's help text goes to stdout; an unknown command
//   prints the main usage to stderr and is a usage error.

import (
	"errors"
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args", nil, "Usage: md2site <command>"},
		{"build", []string{"build"}, "--no-clean"},
		{"convert", []string{"convert"}, "--page"},
		{"init", []string{"init"}, "--force"},
		{"version", []string{"version"}, "Usage: md2site version"},
		{"help", []string{"help"}, "Usage: md2site help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(nil)
			if err := runHelp(tt.args, env.Environment); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(env.stdout.String(), tt.want) {
				t.Errorf("help output missing %q:\n%s", tt.want, env.stdout.String())
			}
		})
	}
}

func TestRunHelp_UnknownCommand(t *testing.T) {
	t.Parallel()

	env := newTestEnv(nil)
	err := runHelp([]string{"deploy"}, env.Environment)
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("error = %v, want ErrUsage", err)
	}
	if !strings.Contains(env.stderr.String(), "Commands:") {
		t.Errorf("expected main usage on stderr, got %q", env.stderr.String())
	}
}

func TestPrintCommonFlags_ListsEnvVars(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	printCommonFlags(&sb)
	for name := range knownEnvVars {
		if !strings.Contains(sb.String(), name) {
			t.Errorf("help does not mention %s", name)
		}
	}
}
