package main

// Notes:
// - runMain is tested through its return code and what it prints; command
//   internals are covered in the per-command tests.
// - hintFor is checked for the sentinels that carry a hint.

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	fastdeck "github.com/alnah/go-fastdeck"
	"github.com/alnah/go-fastdeck/internal/config"
	"github.com/alnah/go-fastdeck/internal/deckfile"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	deck := writeFile(t, dir, "deck.yaml", sampleDeck)

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no command", []string{"fastdeck"}, ExitUsage, "", "Usage: fastdeck"},
		{"version", []string{"fastdeck", "version"}, ExitSuccess, "fastdeck " + Version, ""},
		{"help", []string{"fastdeck", "help", "build"}, ExitSuccess, "Usage: fastdeck build", ""},
		{"unknown command", []string{"fastdeck", "deploy"}, ExitUsage, "", "unknown command: deploy"},
		{"build", []string{"fastdeck", "build", "-q", deck}, ExitSuccess, "", ""},
		{"missing deck", []string{"fastdeck", "build", filepath.Join(dir, "nope.yaml")}, ExitIO, "", "deck file not found"},
		{"build without input", []string{"fastdeck", "build"}, ExitUsage, "", "no deck file specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(&fakeExporter{})
			if code := runMain(tt.args, env); code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr %q)", code, tt.wantCode, stderr.String())
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHintFor - Actionable hints
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"timeout", fmt.Errorf("export: %w", context.DeadlineExceeded), "--timeout"},
		{"config not found", config.ErrConfigNotFound, "--config"},
		{"custom theme", fastdeck.ErrMissingCustomTheme, "hint:"},
		{"write html", fastdeck.ErrWriteHTML, "hint:"},
		{"image fetch", fastdeck.ErrImageFetch, "hint:"},
		{"unknown block", fmt.Errorf("slide 1: %w", deckfile.ErrUnknownBlock), "titlePage"},
		{"no hint", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"fastdeck", "build", "-v", "deck.yaml"}, true},
		{[]string{"fastdeck", "serve", "--verbose"}, true},
		{[]string{"fastdeck", "build", "deck.yaml"}, false},
	}

	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
