package plot

import (
	"math"
	"strconv"
)

// Plot area margins in pixels.
const (
	marginLeft   = 56
	marginRight  = 24
	marginTop    = 40
	marginBottom = 40
	yTicks       = 5
	barGap       = 0.2 // share of a group slot left empty
)

// layout maps data coordinates to pixels. Both renderers draw from it.
type layout struct {
	width, height int
	left, top     float64
	plotW, plotH  float64
	yMin, yMax    float64
	slots         int // number of value indexes along x
}

func newLayout(c *Chart) layout {
	l := layout{width: c.Width, height: c.Height}
	if l.width == 0 {
		l.width = DefaultWidth
	}
	if l.height == 0 {
		l.height = DefaultHeight
	}
	l.left, l.top = marginLeft, marginTop
	l.plotW = math.Max(1, float64(l.width-marginLeft-marginRight))
	l.plotH = math.Max(1, float64(l.height-marginTop-marginBottom))

	l.yMin, l.yMax = math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		if len(s.Values) > l.slots {
			l.slots = len(s.Values)
		}
		for _, v := range s.Values {
			l.yMin = math.Min(l.yMin, v)
			l.yMax = math.Max(l.yMax, v)
		}
	}
	if len(c.Labels) > l.slots {
		l.slots = len(c.Labels)
	}
	// Bars grow from zero, so zero is always on the axis.
	if c.Kind == Bar || l.yMin > 0 {
		l.yMin = math.Min(l.yMin, 0)
	}
	if l.yMax <= l.yMin {
		l.yMax = l.yMin + 1
	}
	return l
}

// y maps a value to a pixel row.
func (l layout) y(v float64) float64 {
	return l.top + l.plotH*(1-(v-l.yMin)/(l.yMax-l.yMin))
}

// baseline is the pixel row of zero, or of yMin when zero is off-scale.
func (l layout) baseline() float64 {
	return l.y(math.Max(l.yMin, math.Min(0, l.yMax)))
}

// pointX is the x pixel of value index i on a line chart.
func (l layout) pointX(i int) float64 {
	if l.slots <= 1 {
		return l.left + l.plotW/2
	}
	return l.left + l.plotW*float64(i)/float64(l.slots-1)
}

// slotCenter is the x pixel at the middle of slot i on a bar chart.
func (l layout) slotCenter(i int) float64 {
	return l.left + l.plotW*(float64(i)+0.5)/float64(l.slots)
}

// bar returns the rectangle of series s (out of n) at slot i.
func (l layout) bar(i, s, n int, v float64) (x, y, w, h float64) {
	slot := l.plotW / float64(l.slots)
	w = slot * (1 - barGap) / float64(n)
	x = l.left + slot*float64(i) + slot*barGap/2 + w*float64(s)
	top, bottom := l.y(v), l.baseline()
	if top > bottom {
		top, bottom = bottom, top
	}
	return x, top, w, bottom - top
}

// ticks returns evenly spaced y-axis values from yMin to yMax.
func (l layout) ticks() []float64 {
	out := make([]float64, yTicks)
	for i := range out {
		out[i] = l.yMin + (l.yMax-l.yMin)*float64(i)/float64(yTicks-1)
	}
	return out
}

// labelX returns the x pixel of the label at index i for kind k.
func (l layout) labelX(k Kind, i int) float64 {
	if k == Bar {
		return l.slotCenter(i)
	}
	return l.pointX(i)
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
