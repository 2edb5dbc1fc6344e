package plot

import (
	"errors"
	"fmt"
	"io"
	"math"

	fastdeck "github.com/alnah/go-fastdeck"
)

// Sentinel errors for chart export.
var (
	ErrEmptyChart        = errors.New("chart has no data")
	ErrUnsupportedFormat = errors.New("unsupported figure format")
	ErrInvalidSize       = errors.New("invalid chart size")
	ErrInvalidColor      = errors.New("invalid color")
	ErrInvalidValue      = errors.New("invalid chart value")
)

// Kind selects how series are drawn.
type Kind int

const (
	Line Kind = iota // one polyline per series
	Bar              // grouped bars, one group per label
)

func (k Kind) String() string {
	if k == Bar {
		return "bar"
	}
	return "line"
}

// ParseKind maps "line" and "bar" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "line":
		return Line, nil
	case "bar":
		return Bar, nil
	default:
		return Line, fmt.Errorf("unknown chart kind %q (must be line or bar)", s)
	}
}

// Default chart size in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 400
)

// palette colors series that have no explicit Color.
var palette = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b"}

// Series is one named run of values.
type Series struct {
	Name   string
	Values []float64
	Color  string // #rgb or #rrggbb; empty picks from the palette
}

// Chart is a line or bar chart. The zero Kind is Line.
type Chart struct {
	Title  string
	Kind   Kind
	Labels []string // x-axis labels, one per value index
	Series []Series
	Width  int // 0 means DefaultWidth
	Height int // 0 means DefaultHeight
}

// Validate checks the chart has data, a usable size and valid colors.
func (c *Chart) Validate() error {
	if c == nil {
		return ErrEmptyChart
	}
	points := 0
	for _, s := range c.Series {
		points += len(s.Values)
		for _, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: series %q has a non-finite value", ErrInvalidValue, s.Name)
			}
		}
		if s.Color != "" && !isHexColor(s.Color) {
			return fmt.Errorf("%w: %q", ErrInvalidColor, s.Color)
		}
	}
	if points == 0 {
		return ErrEmptyChart
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	return nil
}

// Export writes the chart as SVG markup or PNG bytes.
func (c *Chart) Export(w io.Writer, format fastdeck.FigureFormat) error {
	if err := c.Validate(); err != nil {
		return err
	}
	l := newLayout(c)
	switch format {
	case fastdeck.FormatSVG:
		return writeSVG(w, c, l)
	case fastdeck.FormatPNG:
		return writePNG(w, c, l)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func (c *Chart) color(i int) string {
	if c.Series[i].Color != "" {
		return c.Series[i].Color
	}
	return palette[i%len(palette)]
}

func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F') {
			return false
		}
	}
	return true
}

// Compile-time interface check.
var _ fastdeck.Figure = (*Chart)(nil)
