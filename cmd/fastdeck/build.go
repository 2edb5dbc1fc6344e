package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	fastdeck "github.com/alnah/go-fastdeck"
	"github.com/alnah/go-fastdeck/internal/fileutil"
)

// Sentinel errors for CLI commands.
var (
	ErrNoInput        = errors.New("no deck file specified")
	ErrTooManyInputs  = errors.New("only one deck file can be given")
	ErrInvalidFlag    = errors.New("invalid flag")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrWritePDF       = errors.New("failed to write PDF file")
)

func invalidTimeout(value string) error {
	return fmt.Errorf("%w: %q (use a positive duration like 30s or 2m)", ErrInvalidTimeout, value)
}

// deckArg returns the single positional deck path.
func deckArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", ErrNoInput
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: got %d", ErrTooManyInputs, len(args))
	}
}

// runBuildCommand renders a deck file to HTML and optionally PDF.
func runBuildCommand(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseBuildFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printBuildUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	deckPath, err := deckArg(positional)
	if err != nil {
		return err
	}

	p, err := newProject(deckPath, f.common, f.render, f.assetPath)
	if err != nil {
		return err
	}

	pdf := f.pdf || p.cfg.Output.PDF
	timeout, err := p.timeout(f.timeout)
	if err != nil {
		return err
	}

	if f.common.verbose {
		fmt.Fprintf(env.Stderr, "building %s\n", deckPath)
	}

	doc, opts, err := p.render(ctx)
	if err != nil {
		return err
	}

	htmlPath := resolveOutputPath(deckPath, f.output, p.cfg.Output.DefaultDir)
	if err := writeOutput(htmlPath, doc); err != nil {
		return err
	}
	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "%s -> %s\n", deckPath, htmlPath)
	}

	if !pdf {
		return nil
	}

	exporter := env.NewPDFExporter(timeout)
	defer func() { _ = exporter.Close() }()

	data, err := exporter.ExportHTML(ctx, doc, opts)
	if err != nil {
		return err
	}

	pdfPath := strings.TrimSuffix(htmlPath, filepath.Ext(htmlPath)) + ".pdf"
	if err := os.WriteFile(pdfPath, data, fileutil.FilePermissions); err != nil { // #nosec G306 -- exported decks are meant to be shared
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "%s -> %s\n", deckPath, pdfPath)
	}
	return nil
}

// resolveOutputPath picks the HTML destination: the -o flag, then the
// configured directory, then next to the deck file.
func resolveOutputPath(deckPath, output, defaultDir string) string {
	if output != "" {
		return output
	}
	name := strings.TrimSuffix(filepath.Base(deckPath), filepath.Ext(deckPath)) + ".html"
	if defaultDir != "" {
		return filepath.Join(defaultDir, name)
	}
	return filepath.Join(filepath.Dir(deckPath), name)
}

// writeOutput writes the HTML document to path, creating parent directories.
func writeOutput(path, doc string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("%w: %v", fastdeck.ErrWriteHTML, err)
		}
	}
	if err := fileutil.WriteText(path, doc); err != nil {
		return fmt.Errorf("%w: %v", fastdeck.ErrWriteHTML, err)
	}
	return nil
}
