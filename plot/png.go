package plot

import (
	"io"

	"github.com/fogleman/gg"
)

func writePNG(w io.Writer, c *Chart, l layout) error {
	dc := gg.NewContext(l.width, l.height)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	right := l.left + l.plotW
	dc.SetLineWidth(1)
	for _, t := range l.ticks() {
		y := l.y(t)
		dc.SetHexColor("#dddddd")
		dc.DrawLine(l.left, y, right, y)
		dc.Stroke()
		dc.SetHexColor("#444444")
		dc.DrawStringAnchored(formatTick(t), l.left-6, y, 1, 0.5)
	}
	dc.SetHexColor("#444444")
	dc.DrawLine(l.left, l.top, l.left, l.top+l.plotH)
	dc.DrawLine(l.left, l.baseline(), right, l.baseline())
	dc.Stroke()

	for i, label := range c.Labels {
		dc.DrawStringAnchored(label, l.labelX(c.Kind, i), l.top+l.plotH+12, 0.5, 0.5)
	}

	for si, s := range c.Series {
		dc.SetHexColor(c.color(si))
		switch c.Kind {
		case Bar:
			for i, v := range s.Values {
				x, y, bw, bh := l.bar(i, si, len(c.Series), v)
				dc.DrawRectangle(x, y, bw, bh)
				dc.Fill()
			}
		default:
			dc.SetLineWidth(2)
			for i, v := range s.Values {
				if i == 0 {
					dc.MoveTo(l.pointX(i), l.y(v))
				} else {
					dc.LineTo(l.pointX(i), l.y(v))
				}
			}
			dc.Stroke()
			for i, v := range s.Values {
				dc.DrawCircle(l.pointX(i), l.y(v), 3)
				dc.Fill()
			}
		}
	}

	if c.Title != "" {
		dc.SetHexColor("#222222")
		dc.DrawStringAnchored(c.Title, float64(l.width)/2, marginTop/2, 0.5, 0.5)
	}

	return dc.EncodePNG(w)
}
