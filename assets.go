package fastdeck

import (
	"errors"
	"sync"

	"github.com/alnah/go-fastdeck/internal/assets"
)

// Asset name constants for built-in styles and templates.
const (
	// DefaultStyle is the name of the built-in CSS style.
	DefaultStyle = assets.DefaultStyleName

	// DefaultTemplateSet is the name of the built-in template set.
	DefaultTemplateSet = assets.DefaultTemplateSetName
)

// AssetLoader loads CSS styles and HTML document templates.
//
// NewAssetLoader provides filesystem-based loading with fallback to the
// embedded defaults. Implement this interface for other backends.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplateSet loads the presentation and slide templates by name.
	// Returns ErrTemplateSetNotFound if the template set doesn't exist.
	// Returns ErrIncompleteTemplateSet if a template is missing.
	LoadTemplateSet(name string) (*TemplateSet, error)
}

// TemplateSet holds the html/template sources for full decks and
// standalone slides.
//
// Templates receive Title, CSSLinks, JSLinks, Style, Slides and the numeric
// layout fields Width, Height, Margin, MinScale and MaxScale.
type TemplateSet struct {
	Name         string // Identifier (name or path)
	Presentation string // Full deck document template
	Slide        string // Standalone single-slide document template
}

// NewTemplateSet creates a TemplateSet from template sources.
func NewTemplateSet(name, presentation, slide string) *TemplateSet {
	return &TemplateSet{
		Name:         name,
		Presentation: presentation,
		Slide:        slide,
	}
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, returns a loader using only embedded assets.
// If basePath is set, custom assets take precedence with fallback to embedded.
//
// The basePath directory should contain:
//   - styles/{name}.css for CSS styles
//   - templates/{name}/presentation.html and slide.html for template sets
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	loader, err := assets.NewResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err, nil)
	}
	return &assetLoaderAdapter{loader: loader}, nil
}

var (
	embeddedOnce   sync.Once
	embeddedLoader AssetLoader
)

// defaultAssetLoader returns the shared embedded-only loader.
func defaultAssetLoader() AssetLoader {
	embeddedOnce.Do(func() {
		embeddedLoader = &assetLoaderAdapter{loader: assets.NewEmbeddedLoader()}
	})
	return embeddedLoader
}

// assetLoaderAdapter wraps an internal loader to return public types.
type assetLoaderAdapter struct {
	loader assets.Loader
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.loader.LoadStyle(name)
	if err != nil {
		return "", convertAssetError(err, ErrStyleNotFound)
	}
	return content, nil
}

func (a *assetLoaderAdapter) LoadTemplateSet(name string) (*TemplateSet, error) {
	ts, err := a.loader.LoadTemplateSet(name)
	if err != nil {
		return nil, convertAssetError(err, ErrTemplateSetNotFound)
	}
	return NewTemplateSet(ts.Name, ts.Presentation, ts.Slide), nil
}

// convertAssetError maps internal asset errors to public errors. An invalid
// name can never match an asset, so it reports as notFound when set.
func convertAssetError(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrStyleNotFound):
		return wrapError(ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrTemplateSetNotFound):
		return wrapError(ErrTemplateSetNotFound, err)
	case errors.Is(err, assets.ErrIncompleteTemplateSet):
		return wrapError(ErrIncompleteTemplateSet, err)
	case errors.Is(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrInvalidAssetName) && notFound != nil:
		return wrapError(notFound, err)
	default:
		return err
	}
}

// wrapError creates an error that keeps the original message and matches
// the public sentinel with errors.Is.
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}

// Compile-time interface check.
var _ AssetLoader = (*assetLoaderAdapter)(nil)
