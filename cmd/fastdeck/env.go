package main

import (
	"context"
	"io"
	"os"
	"time"

	fastdeck "github.com/alnah/go-fastdeck"
)

// pdfExporter renders a finished HTML document to PDF.
type pdfExporter interface {
	ExportHTML(ctx context.Context, doc string, opts *fastdeck.RenderOptions) ([]byte, error)
	Close() error
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	// NewPDFExporter is called once per command that exports a PDF.
	NewPDFExporter func(timeout time.Duration) pdfExporter
}

// DefaultEnv returns the production environment backed by headless Chrome.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewPDFExporter: func(timeout time.Duration) pdfExporter {
			return fastdeck.NewPDFExporter(fastdeck.WithPDFTimeout(timeout))
		},
	}
}

var _ pdfExporter = (*fastdeck.PDFExporter)(nil)
