package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	flag "github.com/spf13/pflag"

	fastdeck "github.com/alnah/go-fastdeck"
	"github.com/alnah/go-fastdeck/internal/config"
	"github.com/alnah/go-fastdeck/internal/server"
)

// runServeCommand serves a live preview of a deck file until ctx is done.
func runServeCommand(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseServeFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printServeUsage(env.Stdout)
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

	timeout, err := p.timeout(f.timeout)
	if err != nil {
		return err
	}

	addr := resolveAddr(f.addr, p.cfg)

	// Fail fast on a broken deck instead of on the first request.
	if _, _, err := p.render(ctx); err != nil {
		return err
	}

	render := func(ctx context.Context) (string, error) {
		doc, _, err := p.render(ctx)
		return doc, err
	}

	var opts []server.Option
	if f.common.verbose {
		opts = append(opts, server.WithLogWriter(env.Stderr))
	}

	if f.pdf || p.cfg.Output.PDF {
		pdf := newLazyExporter(env, timeout)
		defer func() { _ = pdf.Close() }()
		opts = append(opts, server.WithPDF(deckPDF(p, pdf)))
	}

	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "serving %s at http://%s (Ctrl+C to stop)\n", deckPath, addr)
	}
	return server.New(render, opts...).ListenAndServe(ctx, addr)
}

// deckPDF renders the deck once per request and prints that document with
// the layout options of the same render.
func deckPDF(p *project, exporter pdfExporter) server.PDFFunc {
	return func(ctx context.Context) ([]byte, error) {
		doc, opts, err := p.render(ctx)
		if err != nil {
			return nil, err
		}
		return exporter.ExportHTML(ctx, doc, opts)
	}
}

// resolveAddr picks the listen address: flag, then config (which already
// carries FASTDECK_ADDR), then the default.
func resolveAddr(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.Server.Addr != "" {
		return cfg.Server.Addr
	}
	return config.DefaultAddr
}

// lazyExporter starts the browser on the first PDF request so a preview
// without PDF traffic never launches Chrome. Requests are serialized.
type lazyExporter struct {
	mu       sync.Mutex
	newFn    func() pdfExporter
	exporter pdfExporter
}

func newLazyExporter(env *Environment, timeout time.Duration) *lazyExporter {
	return &lazyExporter{newFn: func() pdfExporter { return env.NewPDFExporter(timeout) }}
}

func (l *lazyExporter) ExportHTML(ctx context.Context, doc string, opts *fastdeck.RenderOptions) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.exporter == nil {
		l.exporter = l.newFn()
	}
	return l.exporter.ExportHTML(ctx, doc, opts)
}

func (l *lazyExporter) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.exporter == nil {
		return nil
	}
	return l.exporter.Close()
}

var _ pdfExporter = (*lazyExporter)(nil)
