package fastdeck

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-fastdeck/internal/fileutil"
	"github.com/alnah/go-fastdeck/internal/process"
)

// DefaultPDFTimeout bounds page loading when the context has no deadline.
const DefaultPDFTimeout = 60 * time.Second

// cssPixelsPerInch converts slide sizes to paper inches.
const cssPixelsPerInch = 96.0

// revealReadyWait caps how long to wait for reveal.js to finish laying out
// the print view after the page has loaded.
const revealReadyWait = 5 * time.Second

// paperSize is the PDF page size in inches.
type paperSize struct {
	width, height float64
}

func paperFor(o RenderOptions) paperSize {
	return paperSize{
		width:  float64(o.Width) / cssPixelsPerInch,
		height: float64(o.Height) / cssPixelsPerInch,
	}
}

// pdfRenderer abstracts PDF rendering from a page URL to enable testing
// without a browser.
type pdfRenderer interface {
	RenderURL(ctx context.Context, pageURL string, paper paperSize) ([]byte, error)
	Close() error
}

// PDFExporter prints rendered decks to PDF through headless Chrome using
// the reveal.js print view. It starts the browser lazily on the first
// export and reuses it until Close. An exporter is not safe for concurrent
// use.
type PDFExporter struct {
	renderer pdfRenderer
}

// PDFOption configures a PDFExporter.
type PDFOption func(*pdfConfig)

type pdfConfig struct {
	timeout time.Duration
}

// WithPDFTimeout sets the page load timeout used when the context has no
// deadline.
func WithPDFTimeout(d time.Duration) PDFOption {
	return func(c *pdfConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewPDFExporter creates a PDFExporter backed by go-rod.
// Rod downloads Chromium on first use when no browser is found.
func NewPDFExporter(opts ...PDFOption) *PDFExporter {
	cfg := pdfConfig{timeout: DefaultPDFTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &PDFExporter{renderer: newRodRenderer(cfg.timeout)}
}

// Export renders p with opts and prints it to PDF. One PDF page is
// produced per slide, sized from the slide width and height.
func (e *PDFExporter) Export(ctx context.Context, p *Presentation, opts *RenderOptions) ([]byte, error) {
	doc, err := p.HTML(opts)
	if err != nil {
		return nil, err
	}
	return e.ExportHTML(ctx, doc, opts)
}

// ExportHTML prints an already rendered reveal.js document. opts must be
// the options the document was rendered with; only the size is used.
func (e *PDFExporter) ExportHTML(ctx context.Context, doc string, opts *RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempHTML(doc)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return e.renderer.RenderURL(ctx, printURL(tmpPath), paperFor(opts.withDefaults()))
}

// Close releases browser resources.
func (e *PDFExporter) Close() error {
	if e.renderer == nil {
		return nil
	}
	return e.renderer.Close()
}

// printURL returns the file:// URL of path with the reveal.js print-pdf
// query that switches the deck to its print layout.
func printURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path), RawQuery: "print-pdf"}
	return u.String()
}

// rodRenderer implements pdfRenderer using go-rod.
type rodRenderer struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		killLauncher(l)
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.launcher = l
	r.browser = browser
	return nil
}

// RenderURL opens pageURL in headless Chrome and prints it to PDF.
func (r *rodRenderer) RenderURL(ctx context.Context, pageURL string, paper paperSize) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: pageURL})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Context(ctx).Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Custom templates may not use reveal.js; printing goes ahead without
	// the ready marker.
	_, _ = page.Context(ctx).Timeout(min(timeout, revealReadyWait)).Element(".reveal.ready")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildPDFOptions(paper))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdfBuf, nil
}

// buildPDFOptions prints edge to edge on slide-sized paper.
func buildPDFOptions(paper paperSize) *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:        floatPtr(paper.width),
		PaperHeight:       floatPtr(paper.height),
		MarginTop:         floatPtr(0),
		MarginBottom:      floatPtr(0),
		MarginLeft:        floatPtr(0),
		MarginRight:       floatPtr(0),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

// Close releases browser resources and kills the browser process tree.
func (r *rodRenderer) Close() error {
	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	killLauncher(r.launcher)
	r.browser = nil
	r.launcher = nil
	return err
}

// killLauncher kills the browser process group, then lets the launcher
// clean up whatever is left.
func killLauncher(l *launcher.Launcher) {
	if l == nil {
		return
	}
	if pid := l.PID(); pid > 0 {
		process.KillBrowserTree(pid)
	}
	l.Kill()
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// Compile-time interface check.
var _ pdfRenderer = (*rodRenderer)(nil)
