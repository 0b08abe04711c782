package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build the site from a content directory")
	fmt.Fprintln(w, "  convert    Convert one markdown file to HTML")
	fmt.Fprintln(w, "  init       Write a starter md2site.yaml and content/index.md")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2site help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site build [content-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every .md and .markdown file under content-dir into an HTML page")
	fmt.Fprintln(w, "at the same relative path in the output directory, after copying the")
	fmt.Fprintln(w, "static directory there.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  content-dir    Markdown tree (default: content.dir from config, or ./content)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: public)")
	fmt.Fprintln(w, "  -s, --static <dir>        Static directory (default: static)")
	fmt.Fprintln(w, "      --no-clean            Keep existing files in the output directory")
	fmt.Fprintln(w)
	printRenderFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site convert <file.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert one markdown file. Prints the <div> fragment unless --page is set.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <file>       Write to file instead of stdout")
	fmt.Fprintln(w, "  -p, --page                Emit the full page from the template")
	fmt.Fprintln(w)
	printRenderFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site init [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write md2site.yaml with default settings and, if missing, content/index.md.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing md2site.yaml")
}

func printRenderFlags(w io.Writer) {
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -e, --engine <name>       HTML engine: native, goldmark (default: native)")
	fmt.Fprintln(w, "      --assets <dir>        Directory with templates/ and styles/")
	fmt.Fprintln(w, "  -t, --template <name>     Page template name (default: page)")
	fmt.Fprintln(w, "      --style <name>        Stylesheet name (default: default)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: md2site)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs, sizes and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2SITE_CONFIG, MD2SITE_CONTENT_DIR, MD2SITE_STATIC_DIR, MD2SITE_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MD2SITE_ASSETS_DIR, MD2SITE_TEMPLATE, MD2SITE_STYLE, MD2SITE_ENGINE,")
	fmt.Fprintln(w, "  MD2SITE_WORKERS. Flags override environment, which overrides the config file.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "convert":
		printConvertUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2site version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2site help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
