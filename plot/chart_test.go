package plot

// Notes:
// - Export is checked through its output signatures (SVG root element, PNG
//   magic bytes) rather than pixel or byte comparisons
// - layout math is tested directly since both renderers share it

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	fastdeck "github.com/alnah/go-fastdeck"
)

func sampleChart(kind Kind) *Chart {
	return &Chart{
		Title:  "Revenue & costs",
		Kind:   kind,
		Labels: []string{"Q1", "Q2", "Q3"},
		Series: []Series{
			{Name: "revenue", Values: []float64{3, 5, 4}},
			{Name: "costs", Values: []float64{2, 2.5, 3}, Color: "#333"},
		},
	}
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

func TestChart_ExportSVG(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind Kind
		want []string
	}{
		{
			name: "line chart",
			kind: Line,
			want: []string{"<svg", "<polyline", "Revenue &amp; costs", "Q2", "</svg>"},
		},
		{
			name: "bar chart",
			kind: Bar,
			want: []string{"<svg", "<rect", "fill:#333", "Q3", "</svg>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := sampleChart(tt.kind).Export(&buf, fastdeck.FormatSVG); err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			got := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Export() output missing %q", want)
				}
			}
		})
	}
}

func TestChart_ExportPNG(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{Line, Bar} {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := sampleChart(kind).Export(&buf, fastdeck.FormatPNG); err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
				t.Errorf("Export() output is not a PNG, prefix %q", buf.Bytes()[:min(8, buf.Len())])
			}
		})
	}
}

func TestChart_ExportErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		chart   *Chart
		format  fastdeck.FigureFormat
		wantErr error
	}{
		{
			name:    "no series",
			chart:   &Chart{},
			format:  fastdeck.FormatSVG,
			wantErr: ErrEmptyChart,
		},
		{
			name:    "series without values",
			chart:   &Chart{Series: []Series{{Name: "a"}}},
			format:  fastdeck.FormatSVG,
			wantErr: ErrEmptyChart,
		},
		{
			name:    "unknown format",
			chart:   sampleChart(Line),
			format:  fastdeck.FigureFormat("gif"),
			wantErr: ErrUnsupportedFormat,
		},
		{
			name:    "bad color",
			chart:   &Chart{Series: []Series{{Values: []float64{1}, Color: "red"}}},
			format:  fastdeck.FormatSVG,
			wantErr: ErrInvalidColor,
		},
		{
			name:    "negative size",
			chart:   &Chart{Width: -1, Series: []Series{{Values: []float64{1}}}},
			format:  fastdeck.FormatPNG,
			wantErr: ErrInvalidSize,
		},
		{
			name:    "NaN value",
			chart:   &Chart{Series: []Series{{Values: []float64{math.NaN()}}}},
			format:  fastdeck.FormatSVG,
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.chart.Export(&bytes.Buffer{}, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Export() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestChart_ExportSVGWriteError(t *testing.T) {
	t.Parallel()

	if err := sampleChart(Line).Export(failingWriter{}, fastdeck.FormatSVG); err == nil {
		t.Error("Export() error = nil, want write error")
	}
}

func TestChart_ExportNilChart(t *testing.T) {
	t.Parallel()

	var c *Chart
	if err := c.Export(&bytes.Buffer{}, fastdeck.FormatPNG); !errors.Is(err, ErrEmptyChart) {
		t.Errorf("Export() error = %v, want %v", err, ErrEmptyChart)
	}
}

// ---------------------------------------------------------------------------
// Kind
// ---------------------------------------------------------------------------

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"", Line, false},
		{"line", Line, false},
		{"bar", Bar, false},
		{"pie", Line, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// layout
// ---------------------------------------------------------------------------

func TestLayout(t *testing.T) {
	t.Parallel()

	l := newLayout(&Chart{Kind: Bar, Series: []Series{{Values: []float64{2, 4}}}})

	if l.width != DefaultWidth || l.height != DefaultHeight {
		t.Errorf("size = %dx%d, want defaults", l.width, l.height)
	}
	if l.yMin != 0 || l.yMax != 4 {
		t.Errorf("range = [%v, %v], want [0, 4]", l.yMin, l.yMax)
	}
	if got := l.y(l.yMax); got != l.top {
		t.Errorf("y(max) = %v, want %v", got, l.top)
	}
	if got := l.baseline(); got != l.top+l.plotH {
		t.Errorf("baseline() = %v, want %v", got, l.top+l.plotH)
	}

	_, y, w, h := l.bar(1, 0, 1, 4)
	if y != l.top || h != l.plotH || w <= 0 {
		t.Errorf("bar() = y %v w %v h %v, want full height bar", y, w, h)
	}

	ticks := l.ticks()
	if len(ticks) != yTicks || ticks[0] != 0 || ticks[len(ticks)-1] != 4 {
		t.Errorf("ticks() = %v", ticks)
	}
}

func TestLayout_FlatSeries(t *testing.T) {
	t.Parallel()

	l := newLayout(&Chart{Series: []Series{{Values: []float64{-3, -3}}}})
	if l.yMax <= l.yMin {
		t.Errorf("range = [%v, %v], want non-empty", l.yMin, l.yMax)
	}
}
