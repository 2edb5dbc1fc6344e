package assets

import (
	"errors"
	"fmt"
	"strings"
)

// Built-in asset names.
const (
	DefaultStyleName       = "default"
	DefaultTemplateSetName = "default"
)

// Files inside a template set directory.
const (
	presentationFile = "presentation.html"
	slideFile        = "slide.html"
)

// Sentinel errors for asset operations.
var (
	ErrStyleNotFound         = errors.New("style not found")
	ErrTemplateSetNotFound   = errors.New("template set not found")
	ErrIncompleteTemplateSet = errors.New("template set missing required template")
	ErrInvalidAssetName      = errors.New("invalid asset name")
	ErrInvalidBasePath       = errors.New("invalid base path")
	ErrAssetRead             = errors.New("failed to read asset")
)

// Loader loads CSS styles and template sets by name.
type Loader interface {
	// LoadStyle returns the CSS of styles/{name}.css.
	LoadStyle(name string) (string, error)
	// LoadTemplateSet returns both templates of templates/{name}/.
	LoadTemplateSet(name string) (*TemplateSet, error)
}

// TemplateSet holds the document templates of one set.
type TemplateSet struct {
	Name         string
	Presentation string // full deck document
	Slide        string // standalone single-slide document
}

// checkName rejects names that could address anything but a single entry
// of the styles or templates directory.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// IsNotFound reports whether err means the asset does not exist, as opposed
// to a bad name or a read failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateSetNotFound)
}
