package fastdeck

import "errors"

// Sentinel errors for library operations.
var (
	// Style validation errors.
	ErrInvalidClassValue = errors.New("invalid class value: must be a string or a list of strings")
	ErrInvalidStyleValue = errors.New("invalid style value: must be a string, integer or float")

	// Builder errors.
	ErrInvalidTag         = errors.New("invalid tag")
	ErrLengthMismatch     = errors.New("length mismatch")
	ErrImageFetch         = errors.New("failed to fetch image")
	ErrFigureExport       = errors.New("failed to export figure")
	ErrMarkdownConversion = errors.New("markdown conversion failed")

	// Render errors.
	ErrMissingCustomTheme = errors.New("theme is 'custom' but no custom theme URL was provided")
	ErrInvalidTheme       = errors.New("invalid theme name")
	ErrInvalidLayout      = errors.New("invalid layout parameters")
	ErrTemplateRender     = errors.New("template rendering failed")
	ErrWriteHTML          = errors.New("failed to write HTML file")

	// PDF export errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Asset loading errors.
	ErrStyleNotFound         = errors.New("style not found")
	ErrTemplateSetNotFound   = errors.New("template set not found")
	ErrIncompleteTemplateSet = errors.New("template set missing required template")
	ErrInvalidAssetPath      = errors.New("invalid asset path")
)
