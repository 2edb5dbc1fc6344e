package fastdeck

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/alnah/go-fastdeck/internal/fileutil"
)

// Markup is trusted HTML passed through AddContent without classification
// or column wrapping.
type Markup string

// Card is one Bootstrap card. Empty fields are not rendered.
type Card struct {
	Image string // image URL or data URI
	Title string
	Text  string // may contain HTML; <ul>/<li> get list-group classes
}

// TitlePage is the content of a title slide. Empty fields are not rendered.
type TitlePage struct {
	Title    string
	Subtitle string
	Authors  string
	Logo     string // image URL or data URI
}

// TitlePageStyle holds one Style per title page field.
type TitlePageStyle struct {
	Title    Style
	Subtitle Style
	Authors  Style
	Logo     Style
}

// TitlePageStyleFromList maps a positional [title, subtitle, authors, logo]
// list onto a TitlePageStyle. A nil list gives the zero value; any other
// length than 4 returns ErrLengthMismatch.
func TitlePageStyleFromList(styles []Style) (TitlePageStyle, error) {
	if styles == nil {
		return TitlePageStyle{}, nil
	}
	if len(styles) != 4 {
		return TitlePageStyle{}, fmt.Errorf("%w: title page styles must have 4 entries "+
			"(title, subtitle, authors, logo), got %d", ErrLengthMismatch, len(styles))
	}
	return TitlePageStyle{Title: styles[0], Subtitle: styles[1], Authors: styles[2], Logo: styles[3]}, nil
}

// attr is one literal attribute of the slide's <section> element.
type attr struct {
	key, value string
}

// Slide accumulates rows of content for one reveal.js section.
// A Slide is not safe for concurrent mutation.
type Slide struct {
	fragments   []string
	center      bool
	attrs       []attr
	contentOpts []ContentOption
}

// SlideOption configures a Slide.
type SlideOption func(*Slide)

// WithCenter adds the reveal.js center class to the slide's section.
func WithCenter() SlideOption {
	return func(s *Slide) {
		s.center = true
	}
}

// WithAttr adds a literal attribute to the slide's section, such as
// data-background-color. Attributes render in the order they were added.
func WithAttr(key, value string) SlideOption {
	return func(s *Slide) {
		s.attrs = append(s.attrs, attr{key: key, value: value})
	}
}

// WithContentOptions configures every Content the slide builds internally.
func WithContentOptions(opts ...ContentOption) SlideOption {
	return func(s *Slide) {
		s.contentOpts = append(s.contentOpts, opts...)
	}
}

// NewSlide creates an empty slide.
func NewSlide(opts ...SlideOption) *Slide {
	s := &Slide{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Slide) newContent() *Content {
	return NewContent(s.contentOpts...)
}

// AddTitle appends a full-width heading row. tag is h1..h5 ("" means h3).
func (s *Slide) AddTitle(text, tag, icon string, style Style) error {
	c := s.newContent()
	if err := c.AddHeading(text, tag, icon, style); err != nil {
		return err
	}
	rendered, err := c.Render()
	if err != nil {
		return err
	}
	s.fragments = append(s.fragments, "<div class='row'><div class='col-12 mx-auto'>"+rendered+"</div></div>")
	return nil
}

// AddContent appends one row holding items left to right. Each item other
// than Markup is classified (see Classify) and wrapped in a col-md-N column
// where N is the matching entry of columns. A nil columns means [12].
//
// columns must have one entry per item, and styles, when non-nil, one
// entry per item; otherwise ErrLengthMismatch is returned.
func (s *Slide) AddContent(ctx context.Context, items []any, columns []int, styles []Style) error {
	if columns == nil {
		columns = []int{12}
	}
	if len(columns) != len(items) {
		return fmt.Errorf("%w: %d items and %d columns", ErrLengthMismatch, len(items), len(columns))
	}
	if styles != nil && len(styles) != len(items) {
		return fmt.Errorf("%w: %d items and %d styles", ErrLengthMismatch, len(items), len(styles))
	}

	var row strings.Builder
	row.WriteString("<div class='row'>")
	for i, item := range items {
		if m, ok := item.(Markup); ok {
			row.WriteString(string(m))
			continue
		}
		if columns[i] < 1 || columns[i] > 12 {
			return fmt.Errorf("%w: column width %d (must be 1 to 12)", ErrInvalidLayout, columns[i])
		}

		rendered, err := Classify(ctx, item, s.contentOpts...)
		if err != nil {
			return err
		}

		colStyle := Class("col-md-" + strconv.Itoa(columns[i]))
		if styles != nil {
			colStyle = colStyle.WithClass(styles[i].Classes...)
			colStyle.Declarations = append(colStyle.Declarations, styles[i].Declarations...)
		}
		open, err := openTag("div", colStyle)
		if err != nil {
			return err
		}
		row.WriteString(open + rendered + "</div>")
	}
	row.WriteString("</div>")

	s.fragments = append(s.fragments, row.String())
	return nil
}

// AddCard appends a row of cards. styles, when non-nil, needs one entry
// per card (ErrLengthMismatch otherwise); by default each card gets the
// bg-info class. Every card also gets the card and h-100 classes.
func (s *Slide) AddCard(cards []Card, styles []Style) error {
	if styles != nil && len(styles) != len(cards) {
		return fmt.Errorf("%w: %d cards and %d styles", ErrLengthMismatch, len(cards), len(styles))
	}

	var row strings.Builder
	row.WriteString("<div class='row'>")
	for i, card := range cards {
		style := Class("bg-info")
		if styles != nil {
			style = styles[i]
		}
		open, err := openTag("div", style.WithClass("card", "h-100"))
		if err != nil {
			return err
		}

		var body strings.Builder
		if card.Image != "" {
			body.WriteString(`<img src="` + card.Image + `" class="card-img-top mx-auto" alt="">`)
		}
		if card.Title != "" {
			body.WriteString(`<h4 class="card-title">` + card.Title + `</h4>`)
		}
		if card.Text != "" {
			body.WriteString(`<p class="card-text" style="font-size:60%">` + beautifyLists(card.Text) + `</p>`)
		}

		row.WriteString("\n<div class=\"col\">\n" + open + "\n" + body.String() + "\n</div>\n</div>")
	}
	row.WriteString("</div>")

	s.fragments = append(s.fragments, row.String())
	return nil
}

// AddTitlePage appends a title page block. Title and subtitle get their
// own full-width rows; authors (9/12) and logo (3/12) share one row.
func (s *Slide) AddTitlePage(tp TitlePage, styles TitlePageStyle) error {
	var b strings.Builder
	b.WriteString(`<div class="title-page">`)

	if tp.Title != "" {
		open, err := openTag("h2", styles.Title)
		if err != nil {
			return err
		}
		b.WriteString(`<div class="row"><div class="col-12">` + open + tp.Title + `</h2></div></div>`)
	}
	if tp.Subtitle != "" {
		open, err := openTag("h3", styles.Subtitle)
		if err != nil {
			return err
		}
		b.WriteString(`<div class="row"><div class="col-12">` + open + tp.Subtitle + `</h3></div></div>`)
	}

	if tp.Authors != "" || tp.Logo != "" {
		b.WriteString(`<div class="row align-items-center">`)
		if tp.Authors != "" {
			open, err := openTag("h4", styles.Authors)
			if err != nil {
				return err
			}
			b.WriteString(`<div class="col-9">` + open + tp.Authors + `</h4></div>`)
		}
		if tp.Logo != "" {
			attrs, err := styles.Logo.Attrs()
			if err != nil {
				return err
			}
			img := `<img src="` + tp.Logo + `"`
			if attrs != "" {
				img += " " + attrs
			}
			b.WriteString(`<div class="col-3">` + img + `></div>`)
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`</div>`)
	s.fragments = append(s.fragments, b.String())
	return nil
}

// Len returns the number of rows added to the slide.
func (s *Slide) Len() int {
	return len(s.fragments)
}

// SectionMarkup renders the slide as a reveal.js <section>.
func (s *Slide) SectionMarkup() string {
	var b strings.Builder
	b.WriteString("<section")
	for _, a := range s.attrs {
		b.WriteString(" " + a.key + `="` + html.EscapeString(a.value) + `"`)
	}
	if s.center {
		b.WriteString(" class='center'")
	}
	b.WriteString(">\n<div class='container' style='text-align: left;' >\n")
	b.WriteString(strings.Join(s.fragments, ""))
	b.WriteString("\n</div>\n</section>")
	return b.String()
}

// StandaloneHTML renders the slide as a complete reveal.js document with
// the default theme, for previewing one slide on its own.
func (s *Slide) StandaloneHTML() (string, error) {
	opts := DefaultRenderOptions()
	opts.Title = "Slide"
	return renderStandalone(defaultAssetLoader(), s, &opts)
}

// SaveStandalone writes StandaloneHTML to path, replacing any existing file.
func (s *Slide) SaveStandalone(path string) error {
	doc, err := s.StandaloneHTML()
	if err != nil {
		return err
	}
	if err := fileutil.WriteText(path, doc); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteHTML, err)
	}
	return nil
}
