package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	fastdeck "github.com/alnah/go-fastdeck"
	"github.com/alnah/go-fastdeck/internal/config"
	"github.com/alnah/go-fastdeck/internal/deckfile"
	"github.com/alnah/go-fastdeck/internal/hints"
)

// ErrUnknownCommand is returned for an unrecognized command name.
var ErrUnknownCommand = errors.New("unknown command")

// runMain dispatches args[1] to a command and returns the process exit
// code. Errors are printed to env.Stderr with a hint when one applies.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	warnUnknownEnvVars(env.Stderr)

	var err error
	switch cmd := args[1]; cmd {
	case "build":
		err = runBuildCommand(ctx, args[2:], env)
	case "serve":
		err = runServeCommand(ctx, args[2:], env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "fastdeck %s\n", Version)
	case "help", "-h", "--help":
		runHelp(args[2:], env)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		printUsage(env.Stderr)
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, fastdeck.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, fastdeck.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(userConfigPaths())
	case errors.Is(err, fastdeck.ErrWriteHTML), errors.Is(err, ErrWritePDF):
		return hints.ForOutputDirectory()
	case errors.Is(err, fastdeck.ErrStyleNotFound):
		return hints.ForAvailable([]string{fastdeck.DefaultStyle})
	case errors.Is(err, deckfile.ErrUnknownBlock):
		return hints.ForAvailable(deckfile.BlockKinds())
	case errors.Is(err, fastdeck.ErrMissingCustomTheme):
		return hints.ForCustomTheme()
	case errors.Is(err, fastdeck.ErrImageFetch):
		return hints.ForImageFetch()
	default:
		return ""
	}
}

// userConfigPaths lists where a config named "fastdeck" would be found in
// the user config directory.
func userConfigPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "go-fastdeck", "fastdeck.yaml")}
}

// hasVerboseFlag reports whether args request verbose output.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
