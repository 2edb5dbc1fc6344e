package fastdeck

import (
	"io"
	"reflect"
)

// FigureFormat selects the encoding a Figure exports to.
type FigureFormat string

// Supported figure formats.
const (
	FormatSVG FigureFormat = "svg"
	FormatPNG FigureFormat = "png"
)

// Figure is a plot that can render itself as SVG markup or PNG bytes.
// Package plot provides a ready-made implementation.
type Figure interface {
	Export(w io.Writer, format FigureFormat) error
}

// isNilFigure reports whether fig is nil or a typed nil such as
// (*plot.Chart)(nil).
func isNilFigure(fig Figure) bool {
	if fig == nil {
		return true
	}
	v := reflect.ValueOf(fig)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
