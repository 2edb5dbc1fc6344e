package fastdeck

import (
	"fmt"

	"github.com/alnah/go-fastdeck/internal/fileutil"
)

// Presentation is an ordered list of sections rendered as one reveal.js
// document. The zero value is ready to use. A Presentation is not safe for
// concurrent mutation.
type Presentation struct {
	slides []Section
	assets AssetLoader
}

// PresentationOption configures a Presentation.
type PresentationOption func(*Presentation)

// WithAssetLoader sets the loader for document templates and CSS.
func WithAssetLoader(l AssetLoader) PresentationOption {
	return func(p *Presentation) {
		if l != nil {
			p.assets = l
		}
	}
}

// NewPresentation creates an empty presentation.
func NewPresentation(opts ...PresentationOption) *Presentation {
	p := &Presentation{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Presentation) loader() AssetLoader {
	if p.assets == nil {
		return defaultAssetLoader()
	}
	return p.assets
}

// AddSlide appends sections in order. Pass a Group to add vertical slides.
// The same section may be added more than once.
func (p *Presentation) AddSlide(sections ...Section) {
	p.slides = append(p.slides, sections...)
}

// Slides returns the sections in presentation order.
func (p *Presentation) Slides() []Section {
	return append([]Section(nil), p.slides...)
}

// Len returns the number of top-level sections.
func (p *Presentation) Len() int {
	return len(p.slides)
}

// HTML renders the presentation as a complete reveal.js document.
// opts may be nil for the defaults. Returns ErrMissingCustomTheme when the
// theme is "custom" and no custom theme URL is set.
func (p *Presentation) HTML(opts *RenderOptions) (string, error) {
	return renderPresentation(p.loader(), p.slides, opts)
}

// SaveHTML renders the presentation and writes it to path, creating or
// truncating the file. Parent directories are not created.
func (p *Presentation) SaveHTML(path string, opts *RenderOptions) error {
	doc, err := p.HTML(opts)
	if err != nil {
		return err
	}
	if err := fileutil.WriteText(path, doc); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteHTML, err)
	}
	return nil
}
