package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	fastdeck "github.com/alnah/go-fastdeck"
)

const sampleDeck = `
title: Quarterly Review
render:
  width: 1100
slides:
  - blocks:
      - kind: title
        text: Results
      - kind: text
        text: Revenue grew
  - center: true
    blocks:
      - kind: markdown
        text: "# Next steps"
`

// writeFile writes content under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// testEnv returns an Environment with buffered output and a fake exporter.
func testEnv(exp *fakeExporter) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdout: &stdout,
		Stderr: &stderr,
		NewPDFExporter: func(timeout time.Duration) pdfExporter {
			exp.mu.Lock()
			defer exp.mu.Unlock()
			exp.created++
			exp.timeout = timeout
			return exp
		},
	}
	return env, &stdout, &stderr
}

// fakeExporter records export calls instead of launching Chrome.
type fakeExporter struct {
	mu      sync.Mutex
	err     error
	created int
	closed  int
	timeout time.Duration
	doc     string
	opts    *fastdeck.RenderOptions
}

func (f *fakeExporter) ExportHTML(_ context.Context, doc string, opts *fastdeck.RenderOptions) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.doc = doc
	f.opts = opts
	return []byte("%PDF-fake"), nil
}

func (f *fakeExporter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
	return nil
}

// snapshot returns the recorded calls under the lock.
func (f *fakeExporter) snapshot() (created, closed int, doc string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created, f.closed, f.doc
}
