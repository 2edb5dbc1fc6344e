package main

import (
	"errors"
	"os"

	fastdeck "github.com/alnah/go-fastdeck"
	"github.com/alnah/go-fastdeck/internal/config"
	"github.com/alnah/go-fastdeck/internal/deckfile"
	"github.com/alnah/go-fastdeck/plot"
)

// Exit codes for the fastdeck CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or deck
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, fastdeck.ErrBrowserConnect) ||
		errors.Is(err, fastdeck.ErrPageCreate) ||
		errors.Is(err, fastdeck.ErrPageLoad) ||
		errors.Is(err, fastdeck.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, deckfile.ErrDeckNotFound) ||
		errors.Is(err, fastdeck.ErrWriteHTML) ||
		errors.Is(err, fastdeck.ErrImageFetch) ||
		errors.Is(err, ErrWritePDF) {
		return ExitIO
	}

	// Usage errors (exit 2)
	if errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyInputs) ||
		errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldRange) ||
		errors.Is(err, deckfile.ErrDeckParse) ||
		errors.Is(err, deckfile.ErrUnknownBlock) ||
		errors.Is(err, deckfile.ErrInvalidBlock) ||
		errors.Is(err, deckfile.ErrInvalidSlide) ||
		errors.Is(err, fastdeck.ErrInvalidClassValue) ||
		errors.Is(err, fastdeck.ErrInvalidStyleValue) ||
		errors.Is(err, fastdeck.ErrInvalidTag) ||
		errors.Is(err, fastdeck.ErrLengthMismatch) ||
		errors.Is(err, fastdeck.ErrMissingCustomTheme) ||
		errors.Is(err, fastdeck.ErrInvalidTheme) ||
		errors.Is(err, fastdeck.ErrInvalidLayout) ||
		errors.Is(err, fastdeck.ErrStyleNotFound) ||
		errors.Is(err, fastdeck.ErrTemplateSetNotFound) ||
		errors.Is(err, fastdeck.ErrIncompleteTemplateSet) ||
		errors.Is(err, fastdeck.ErrInvalidAssetPath) ||
		errors.Is(err, plot.ErrEmptyChart) ||
		errors.Is(err, plot.ErrInvalidSize) ||
		errors.Is(err, plot.ErrInvalidColor) ||
		errors.Is(err, plot.ErrInvalidValue) {
		return ExitUsage
	}

	return ExitGeneral
}
