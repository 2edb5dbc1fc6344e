// Package deckfile loads YAML deck descriptions and builds them into
// presentations through the public fastdeck API.
//
// A deck file looks like:
//
//	title: Quarterly review
//	render:
//	  theme: white
//	slides:
//	  - center: true
//	    blocks:
//	      - kind: titlePage
//	        page: {title: Q3, subtitle: Results}
//	  - blocks:
//	      - kind: title
//	        text: Highlights
//	      - kind: content
//	        items: ["Revenue grew", "chart.png"]
//	        columns: [6, 6]
//	  - vertical:
//	      - blocks: [{kind: markdown, text: "# Detail 1"}]
//	      - blocks: [{kind: markdown, text: "# Detail 2"}]
//
// Relative image paths are resolved against the deck file's directory.
package deckfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-fastdeck/internal/config"
	"github.com/alnah/go-fastdeck/internal/yamlutil"
)

// Sentinel errors for deck loading and building.
var (
	ErrDeckNotFound = errors.New("deck file not found")
	ErrDeckParse    = errors.New("failed to parse deck file")
	ErrUnknownBlock = errors.New("unknown block kind")
	ErrInvalidBlock = errors.New("invalid block")
	ErrInvalidSlide = errors.New("invalid slide")
)

// Block kinds.
const (
	KindTitle     = "title"
	KindText      = "text"
	KindContent   = "content"
	KindCards     = "cards"
	KindTitlePage = "titlePage"
	KindMarkdown  = "markdown"
	KindCode      = "code"
	KindList      = "list"
	KindImage     = "image"
	KindChart     = "chart"
)

// BlockKinds returns every block kind a deck file accepts.
func BlockKinds() []string {
	return []string{
		KindTitle, KindText, KindContent, KindCards, KindTitlePage,
		KindMarkdown, KindCode, KindList, KindImage, KindChart,
	}
}

// Deck is the root of a deck file.
type Deck struct {
	Title  string              `yaml:"title"`
	Render config.RenderConfig `yaml:"render"` // zero fields fall back to config and defaults
	Slides []Slide             `yaml:"slides"`
}

// Slide is one horizontal slide. A slide with Vertical entries becomes a
// vertical stack and must not have blocks of its own.
type Slide struct {
	Center   bool              `yaml:"center"`
	Attrs    map[string]string `yaml:"attrs"` // rendered in sorted key order
	Blocks   []Block           `yaml:"blocks"`
	Vertical []Slide           `yaml:"vertical"`
}

// Block is one row of a slide. Which fields apply depends on Kind.
type Block struct {
	Kind string `yaml:"kind"`

	Text  string         `yaml:"text"`  // title, text, markdown, code
	Tag   string         `yaml:"tag"`   // title (h1..h5), text (p, span)
	Icon  string         `yaml:"icon"`  // title
	Lang  string         `yaml:"lang"`  // code
	Style map[string]any `yaml:"style"` // every kind except content and cards

	Items   []any            `yaml:"items"`   // content, list
	Columns []int            `yaml:"columns"` // content
	Styles  []map[string]any `yaml:"styles"`  // content, cards, titlePage
	Ordered bool             `yaml:"ordered"` // list

	Cards []Card     `yaml:"cards"` // cards
	Page  *TitlePage `yaml:"page"`  // titlePage

	Src string `yaml:"src"` // image
	Alt string `yaml:"alt"` // image, chart

	Chart *Chart `yaml:"chart"` // chart
}

// Card mirrors fastdeck.Card.
type Card struct {
	Image string `yaml:"image"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// TitlePage mirrors fastdeck.TitlePage.
type TitlePage struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Authors  string `yaml:"authors"`
	Logo     string `yaml:"logo"`
}

// Chart describes a plot.Chart.
type Chart struct {
	Type   string   `yaml:"type"` // line (default) or bar
	Title  string   `yaml:"title"`
	Labels []string `yaml:"labels"`
	Series []Series `yaml:"series"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	PNG    bool     `yaml:"png"` // embed a PNG image instead of live SVG
}

// Series describes one plot.Series.
type Series struct {
	Name   string    `yaml:"name"`
	Values []float64 `yaml:"values"`
	Color  string    `yaml:"color"`
}

// Load reads and strictly decodes a deck file.
func Load(path string) (*Deck, error) {
	var d Deck
	if err := yamlutil.DecodeFile(path, &d); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDeckNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrDeckParse, path, yamlutil.Describe(err))
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks the deck structure: block kinds, the fields each kind
// needs and the vertical/blocks exclusivity. Content-level checks (tags,
// styles, column widths) are left to the fastdeck builders.
func (d *Deck) Validate() error {
	if err := d.Render.Validate(); err != nil {
		return err
	}
	for i, s := range d.Slides {
		if err := s.validate(); err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *Slide) validate() error {
	if len(s.Vertical) > 0 {
		if len(s.Blocks) > 0 {
			return fmt.Errorf("%w: vertical slides cannot also have blocks", ErrInvalidSlide)
		}
		for i, v := range s.Vertical {
			if err := v.validate(); err != nil {
				return fmt.Errorf("vertical %d: %w", i+1, err)
			}
		}
		return nil
	}
	for i, b := range s.Blocks {
		if err := b.validate(); err != nil {
			return fmt.Errorf("block %d: %w", i+1, err)
		}
	}
	return nil
}

func (b *Block) validate() error {
	switch b.Kind {
	case KindTitle, KindText, KindMarkdown, KindCode:
		if b.Text == "" {
			return fmt.Errorf("%w: %s needs text", ErrInvalidBlock, b.Kind)
		}
	case KindContent, KindList:
		if len(b.Items) == 0 {
			return fmt.Errorf("%w: %s needs items", ErrInvalidBlock, b.Kind)
		}
	case KindCards:
		if len(b.Cards) == 0 {
			return fmt.Errorf("%w: cards needs at least one card", ErrInvalidBlock)
		}
	case KindTitlePage:
		if b.Page == nil {
			return fmt.Errorf("%w: titlePage needs page", ErrInvalidBlock)
		}
	case KindImage:
		if b.Src == "" {
			return fmt.Errorf("%w: image needs src", ErrInvalidBlock)
		}
	case KindChart:
		if b.Chart == nil {
			return fmt.Errorf("%w: chart needs chart", ErrInvalidBlock)
		}
	case "":
		return fmt.Errorf("%w: missing kind", ErrInvalidBlock)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBlock, b.Kind)
	}
	return nil
}
