package plot

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// errWriter remembers the first write error, since svgo does not report
// them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func px(f float64) int {
	return int(math.Round(f))
}

func writeSVG(w io.Writer, c *Chart, l layout) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(l.width, l.height)
	if c.Title != "" {
		canvas.Title(c.Title)
	}
	canvas.Rect(0, 0, l.width, l.height, "fill:#ffffff")

	const (
		axisStyle  = "stroke:#444444;stroke-width:1"
		gridStyle  = "stroke:#dddddd;stroke-width:1"
		labelStyle = "font-family:sans-serif;font-size:11px;fill:#444444"
	)

	right := px(l.left + l.plotW)
	for _, t := range l.ticks() {
		y := px(l.y(t))
		canvas.Line(px(l.left), y, right, y, gridStyle)
		canvas.Text(px(l.left)-6, y+4, formatTick(t), labelStyle+";text-anchor:end")
	}
	canvas.Line(px(l.left), px(l.top), px(l.left), px(l.top+l.plotH), axisStyle)
	canvas.Line(px(l.left), px(l.baseline()), right, px(l.baseline()), axisStyle)

	for i, label := range c.Labels {
		canvas.Text(px(l.labelX(c.Kind, i)), px(l.top+l.plotH)+16, label, labelStyle+";text-anchor:middle")
	}

	for si, s := range c.Series {
		color := c.color(si)
		switch c.Kind {
		case Bar:
			for i, v := range s.Values {
				x, y, bw, bh := l.bar(i, si, len(c.Series), v)
				canvas.Rect(px(x), px(y), max(1, px(bw)), px(bh), "fill:"+color)
			}
		default:
			xs := make([]int, len(s.Values))
			ys := make([]int, len(s.Values))
			for i, v := range s.Values {
				xs[i], ys[i] = px(l.pointX(i)), px(l.y(v))
			}
			canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", color))
			for i := range xs {
				canvas.Circle(xs[i], ys[i], 3, "fill:"+color)
			}
		}
	}

	if c.Title != "" {
		canvas.Text(l.width/2, marginTop/2+5, c.Title,
			"font-family:sans-serif;font-size:16px;font-weight:bold;fill:#222222;text-anchor:middle")
	}
	drawSVGLegend(canvas, c, l)

	canvas.End()
	return ew.err
}

func drawSVGLegend(canvas *svg.SVG, c *Chart, l layout) {
	x := px(l.left + l.plotW)
	y := marginTop / 2
	for i := len(c.Series) - 1; i >= 0; i-- {
		name := c.Series[i].Name
		if name == "" {
			continue
		}
		x -= 12 + 7*len(name)
		canvas.Rect(x, y-8, 8, 8, "fill:"+c.color(i))
		canvas.Text(x+11, y, name, "font-family:sans-serif;font-size:11px;fill:#444444")
		x -= 8
	}
}
