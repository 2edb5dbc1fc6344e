// Package server serves a rendered deck over HTTP for previewing.
//
// The deck is rendered again on every request to /, so edits to the deck
// file show up on browser refresh.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeouts for the preview HTTP server.
const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// RenderFunc returns the complete deck document.
type RenderFunc func(ctx context.Context) (string, error)

// PDFFunc renders the deck and prints it to PDF. The document and its page
// layout come from the same render.
type PDFFunc func(ctx context.Context) ([]byte, error)

// Server is the preview HTTP server.
type Server struct {
	engine *gin.Engine
	render RenderFunc
	pdf    PDFFunc
	logW   io.Writer
}

// Option configures a Server.
type Option func(*Server)

// WithPDF enables GET /deck.pdf.
func WithPDF(fn PDFFunc) Option {
	return func(s *Server) {
		s.pdf = fn
	}
}

// WithLogWriter logs one line per request to w.
func WithLogWriter(w io.Writer) Option {
	return func(s *Server) {
		s.logW = w
	}
}

// New creates a Server for render.
func New(render RenderFunc, opts ...Option) *Server {
	s := &Server{render: render}
	for _, opt := range opts {
		opt(s)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	if s.logW != nil {
		engine.Use(gin.LoggerWithWriter(s.logW))
	}

	engine.GET("/", s.handleDeck)
	engine.GET("/healthz", handleHealth)
	if s.pdf != nil {
		engine.GET("/deck.pdf", s.handlePDF)
	}

	s.engine = engine
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving on %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleDeck(c *gin.Context) {
	doc, err := s.render(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "rendering deck: %v\n", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

func (s *Server) handlePDF(c *gin.Context) {
	pdf, err := s.pdf(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "exporting PDF: %v\n", err)
		return
	}
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
