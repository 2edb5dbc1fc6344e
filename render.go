package fastdeck

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strconv"
	"strings"

	"github.com/alnah/go-fastdeck/internal/htmlfmt"
)

// CDN locations of the front-end libraries referenced by generated decks.
const (
	revealCSS      = "https://cdnjs.cloudflare.com/ajax/libs/reveal.js/4.4.0/reveal.min.css"
	themeURLFormat = "https://cdnjs.cloudflare.com/ajax/libs/reveal.js/4.4.0/theme/%s.min.css"
	bootstrapCSS   = "https://stackpath.bootstrapcdn.com/bootstrap/4.5.2/css/bootstrap.min.css"
	fontAwesomeCSS = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.2.1/css/all.min.css"

	revealJS      = "https://cdnjs.cloudflare.com/ajax/libs/reveal.js/4.4.0/reveal.js"
	revealNotesJS = "https://cdnjs.cloudflare.com/ajax/libs/reveal.js/4.4.0/plugin/notes/notes.js"
	vegaJS        = "https://cdn.jsdelivr.net/npm/vega@5"
	vegaLiteJS    = "https://cdn.jsdelivr.net/npm/vega-lite@4.8"
	vegaEmbedJS   = "https://cdn.jsdelivr.net/npm/vega-embed@6"
	plotlyJS      = "https://cdn.plot.ly/plotly-2.17.1.min.js"
	jqueryJS      = "https://cdnjs.cloudflare.com/ajax/libs/jquery/2.0.3/jquery.min.js"
	requireJS     = "https://cdnjs.cloudflare.com/ajax/libs/require.js/2.1.10/require.min.js"
	mathJaxJS     = "https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-mml-chtml.js"
)

// CustomTheme is the theme name that requires RenderOptions.CustomTheme.
const CustomTheme = "custom"

// Default render parameters.
const (
	DefaultTheme    = "moon"
	DefaultWidth    = 960
	DefaultHeight   = 600
	DefaultMinScale = 0.2
	DefaultMaxScale = 1.5
	DefaultMargin   = 0.1
	DefaultTitle    = "Presentation"
)

var themeNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// RenderOptions controls the reveal.js document. A nil *RenderOptions means
// DefaultRenderOptions; zero fields of a non-nil value take their default.
type RenderOptions struct {
	Theme       string  // reveal.js theme name, or "custom"
	CustomTheme string  // stylesheet URL used instead of the theme CDN path
	Width       int     // slide width in px
	Height      int     // slide height in px
	MinScale    float64 // smallest scale reveal.js may apply
	MaxScale    float64 // largest scale reveal.js may apply
	Margin      float64 // empty space around the slide, as a fraction of its size
	Title       string  // document <title>

	// Style names a CSS asset inlined into the document ("" = default).
	Style string
	// TemplateSet names the document templates ("" = default).
	TemplateSet string
	// Pretty indents each slide's markup.
	Pretty bool
}

// DefaultRenderOptions returns the default layout: moon theme, 960x600,
// scale 0.2 to 1.5 and a 0.1 margin.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Theme:       DefaultTheme,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MinScale:    DefaultMinScale,
		MaxScale:    DefaultMaxScale,
		Margin:      DefaultMargin,
		Title:       DefaultTitle,
		Style:       DefaultStyle,
		TemplateSet: DefaultTemplateSet,
	}
}

// withDefaults returns a copy of o with zero fields filled in.
func (o *RenderOptions) withDefaults() RenderOptions {
	d := DefaultRenderOptions()
	if o == nil {
		return d
	}
	r := *o
	if r.Theme == "" {
		r.Theme = d.Theme
	}
	if r.Width == 0 {
		r.Width = d.Width
	}
	if r.Height == 0 {
		r.Height = d.Height
	}
	if r.MinScale == 0 {
		r.MinScale = d.MinScale
	}
	if r.MaxScale == 0 {
		r.MaxScale = d.MaxScale
	}
	if r.Margin == 0 {
		r.Margin = d.Margin
	}
	if r.Title == "" {
		r.Title = d.Title
	}
	if r.Style == "" {
		r.Style = d.Style
	}
	if r.TemplateSet == "" {
		r.TemplateSet = d.TemplateSet
	}
	return r
}

// Validate checks the options after defaults are applied.
func (o *RenderOptions) Validate() error {
	r := o.withDefaults()

	if r.Theme == CustomTheme && r.CustomTheme == "" {
		return ErrMissingCustomTheme
	}
	if r.CustomTheme == "" && !themeNamePattern.MatchString(r.Theme) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, r.Theme)
	}
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidLayout, r.Width, r.Height)
	}
	if r.MinScale < 0 || r.MaxScale < 0 || r.MinScale > r.MaxScale {
		return fmt.Errorf("%w: scale range %.2f to %.2f", ErrInvalidLayout, r.MinScale, r.MaxScale)
	}
	if r.Margin < 0 {
		return fmt.Errorf("%w: margin %.2f must not be negative", ErrInvalidLayout, r.Margin)
	}
	return nil
}

// themeLink returns the theme stylesheet URL.
func (o RenderOptions) themeLink() string {
	if o.CustomTheme != "" {
		return o.CustomTheme
	}
	return fmt.Sprintf(themeURLFormat, o.Theme)
}

func cssLinks(themeLink string) []string {
	return []string{revealCSS, themeLink, bootstrapCSS, fontAwesomeCSS}
}

// presentationJSLinks are loaded by a full deck; reveal.js itself is
// loaded through require.js by the template.
func presentationJSLinks() []string {
	return []string{vegaJS, vegaLiteJS, vegaEmbedJS, plotlyJS, jqueryJS, requireJS, mathJaxJS}
}

func standaloneJSLinks() []string {
	return []string{revealJS, revealNotesJS, vegaJS, vegaLiteJS, vegaEmbedJS, plotlyJS, jqueryJS, mathJaxJS}
}

// documentData is the value passed to document templates.
type documentData struct {
	Title    string
	CSSLinks []string
	JSLinks  []string
	Style    template.CSS
	Slides   template.HTML

	// Layout numbers are pre-formatted so they land in the script verbatim.
	Width    template.JS
	Height   template.JS
	Margin   template.JS
	MinScale template.JS
	MaxScale template.JS
}

func newDocumentData(o RenderOptions, css string, jsLinks []string, slides string) documentData {
	return documentData{
		Title:    o.Title,
		CSSLinks: cssLinks(o.themeLink()),
		JSLinks:  jsLinks,
		Style:    template.CSS(css),     // #nosec G203 -- CSS comes from trusted assets
		Slides:   template.HTML(slides), // #nosec G203 -- slide markup is trusted by design
		Width:    template.JS(strconv.Itoa(o.Width)),
		Height:   template.JS(strconv.Itoa(o.Height)),
		Margin:   template.JS(formatNumber(o.Margin)),
		MinScale: template.JS(formatNumber(o.MinScale)),
		MaxScale: template.JS(formatNumber(o.MaxScale)),
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// executeTemplate parses and runs one document template.
func executeTemplate(name, text string, data documentData) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w: parsing %s: %v", ErrTemplateRender, name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: executing %s: %v", ErrTemplateRender, name, err)
	}
	return buf.String(), nil
}

// renderSections joins section markup in order, indenting each section
// when pretty is set.
func renderSections(sections []Section, pretty bool) (string, error) {
	parts := make([]string, len(sections))
	for i, s := range sections {
		markup := s.SectionMarkup()
		if pretty {
			formatted, err := htmlfmt.Format(markup)
			if err != nil {
				return "", fmt.Errorf("%w: formatting slide %d: %v", ErrTemplateRender, i+1, err)
			}
			markup = strings.TrimRight(formatted, "\n")
		}
		parts[i] = markup
	}
	return strings.Join(parts, "\n"), nil
}

// loadDocumentAssets loads the template set and CSS named by o.
func loadDocumentAssets(loader AssetLoader, o RenderOptions) (*TemplateSet, string, error) {
	ts, err := loader.LoadTemplateSet(o.TemplateSet)
	if err != nil {
		return nil, "", err
	}
	css, err := loader.LoadStyle(o.Style)
	if err != nil {
		return nil, "", err
	}
	return ts, css, nil
}

func renderPresentation(loader AssetLoader, sections []Section, opts *RenderOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	o := opts.withDefaults()

	ts, css, err := loadDocumentAssets(loader, o)
	if err != nil {
		return "", err
	}
	slides, err := renderSections(sections, o.Pretty)
	if err != nil {
		return "", err
	}
	return executeTemplate("presentation", ts.Presentation, newDocumentData(o, css, presentationJSLinks(), slides))
}

func renderStandalone(loader AssetLoader, slide Section, opts *RenderOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	o := opts.withDefaults()

	ts, css, err := loadDocumentAssets(loader, o)
	if err != nil {
		return "", err
	}
	data := newDocumentData(o, css, standaloneJSLinks(), slide.SectionMarkup())
	return executeTemplate("slide", ts.Slide, data)
}
