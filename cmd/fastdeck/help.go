package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fastdeck <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Render a deck file to reveal.js HTML (and PDF)")
	fmt.Fprintln(w, "  serve      Preview a deck file in the browser")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'fastdeck help <command>' for details on a specific command.")
}

// printRenderFlags prints the layout flags shared by build and serve.
func printRenderFlags(w io.Writer) {
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "  -t, --theme <name>        reveal.js theme (default moon) or \"custom\"")
	fmt.Fprintln(w, "      --custom-theme <url>  Stylesheet URL for the custom theme")
	fmt.Fprintln(w, "      --width <px>          Slide width (default 960)")
	fmt.Fprintln(w, "      --height <px>         Slide height (default 600)")
	fmt.Fprintln(w, "      --min-scale <f>       Smallest scale (default 0.2)")
	fmt.Fprintln(w, "      --max-scale <f>       Largest scale (default 1.5)")
	fmt.Fprintln(w, "      --margin <f>          Margin as a fraction of the slide (default 0.1)")
	fmt.Fprintln(w, "      --pretty              Indent slide markup")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --style <name>        CSS style name")
	fmt.Fprintln(w, "      --template <name>     Template set name")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/ and templates/")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
}

// printEnvVars prints the environment variables read by the CLI.
func printEnvVars(w io.Writer) {
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  FASTDECK_CONFIG, FASTDECK_THEME, FASTDECK_STYLE, FASTDECK_OUTPUT_DIR,")
	fmt.Fprintln(w, "  FASTDECK_ASSET_PATH, FASTDECK_ADDR, FASTDECK_TIMEOUT")
	fmt.Fprintln(w, "  Precedence: flags > deck file > environment > config file > defaults")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fastdeck build <deck.yaml> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a deck file to a reveal.js HTML document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       HTML file (default: <deck>.html next to the deck)")
	fmt.Fprintln(w, "      --pdf                 Also export <deck>.pdf with headless Chrome")
	fmt.Fprintln(w, "      --timeout <dur>       PDF export timeout (default 1m)")
	fmt.Fprintln(w)
	printRenderFlags(w)
	fmt.Fprintln(w)
	printEnvVars(w)
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fastdeck serve <deck.yaml> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve the deck over HTTP, re-rendering it on every request.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "  -a, --addr <host:port>    Listen address (default 127.0.0.1:8000)")
	fmt.Fprintln(w, "      --pdf                 Serve a PDF export at /deck.pdf")
	fmt.Fprintln(w, "      --timeout <dur>       PDF export timeout (default 1m)")
	fmt.Fprintln(w)
	printRenderFlags(w)
	fmt.Fprintln(w)
	printEnvVars(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: fastdeck version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: fastdeck help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
