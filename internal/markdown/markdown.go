// Package markdown converts Markdown snippets into HTML fragments for slides.
//
// Conversion uses goldmark with GitHub Flavored Markdown and chroma syntax
// highlighting. Highlighting emits inline styles because slides are often
// shipped as a single self-contained HTML file with no extra stylesheet.
package markdown

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrConversion indicates goldmark failed to render the input.
var ErrConversion = errors.New("markdown conversion failed")

// DefaultCodeStyle is the chroma style used for fenced code blocks.
const DefaultCodeStyle = "monokai"

// Converter renders Markdown to HTML fragments.
type Converter struct {
	md      goldmark.Markdown
	baseDir string
}

// Option configures a Converter.
type Option func(*converterOptions)

type converterOptions struct {
	codeStyle string
	baseDir   string
	unsafe    bool
}

// WithCodeStyle selects the chroma style for code blocks.
func WithCodeStyle(name string) Option {
	return func(o *converterOptions) {
		if name != "" {
			o.codeStyle = name
		}
	}
}

// WithBaseDir inlines relative <img> sources found under dir as data URIs.
func WithBaseDir(dir string) Option {
	return func(o *converterOptions) {
		o.baseDir = dir
	}
}

// WithUnsafeHTML lets raw HTML in the Markdown through to the output.
// Slide authors commonly mix small HTML snippets into Markdown.
func WithUnsafeHTML() Option {
	return func(o *converterOptions) {
		o.unsafe = true
	}
}

// New creates a Converter with GFM extensions and syntax highlighting.
func New(opts ...Option) *Converter {
	o := converterOptions{codeStyle: DefaultCodeStyle}
	for _, opt := range opts {
		opt(&o)
	}

	rendererOpts := []goldmark.Option{}
	if o.unsafe {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}

	md := goldmark.New(append([]goldmark.Option{
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithStyle(o.codeStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false),
				),
			),
		),
	}, rendererOpts...)...)

	return &Converter{md: md, baseDir: o.baseDir}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (c *Converter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrConversion, err)}
			return
		}
		out := strings.TrimSpace(buf.String())
		if c.baseDir != "" {
			inlined, err := InlineRelativeImages(out, c.baseDir)
			if err != nil {
				done <- result{err: fmt.Errorf("%w: %v", ErrConversion, err)}
				return
			}
			out = inlined
		}
		done <- result{html: out}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Fence wraps code in a Markdown fenced block tagged with lang.
// The fence is lengthened when code itself contains backtick runs.
func Fence(code, lang string) string {
	fence := "```"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	return fence + lang + "\n" + strings.TrimRight(code, "\n") + "\n" + fence + "\n"
}
