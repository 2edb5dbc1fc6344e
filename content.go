package fastdeck

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/alnah/go-fastdeck/internal/htmlfmt"
	"github.com/alnah/go-fastdeck/internal/markdown"
)

// MarkdownConverter renders Markdown to an HTML fragment.
type MarkdownConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// Content accumulates HTML fragments (headings, text, lists, images,
// charts, figures) into one block. Add methods validate their input before
// appending, so a failed call leaves the fragment list untouched.
type Content struct {
	fragments []string
	scripts   map[string]string

	images   ImageLoader
	newID    func() string
	markdown MarkdownConverter
}

// ContentOption configures a Content.
type ContentOption func(*Content)

// WithImageLoader sets the loader used by AddImage.
func WithImageLoader(l ImageLoader) ContentOption {
	return func(c *Content) {
		if l != nil {
			c.images = l
		}
	}
}

// WithIDGenerator sets the function producing chart DOM ids.
func WithIDGenerator(fn func() string) ContentOption {
	return func(c *Content) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// WithMarkdownConverter sets the converter used by AddMarkdown and AddCode.
func WithMarkdownConverter(m MarkdownConverter) ContentOption {
	return func(c *Content) {
		if m != nil {
			c.markdown = m
		}
	}
}

// NewContent creates an empty Content.
func NewContent(opts ...ContentOption) *Content {
	c := &Content{
		scripts: make(map[string]string),
		images:  defaultImageLoader,
		newID:   newChartID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	defaultImageLoader = NewImageLoader(nil)

	defaultMarkdownOnce sync.Once
	defaultMarkdown     MarkdownConverter
)

func newChartID() string {
	return "chart-" + uuid.NewString()
}

func (c *Content) markdownConverter() MarkdownConverter {
	if c.markdown != nil {
		return c.markdown
	}
	defaultMarkdownOnce.Do(func() {
		defaultMarkdown = markdown.New(markdown.WithUnsafeHTML())
	})
	return defaultMarkdown
}

// Clear removes all fragments. Registered scripts are kept.
func (c *Content) Clear() {
	c.fragments = nil
}

// AddScript registers a named script body, replacing any previous body
// with the same name.
func (c *Content) AddScript(name, body string) {
	c.scripts[name] = body
}

// Scripts returns a copy of the script registry.
func (c *Content) Scripts() map[string]string {
	out := make(map[string]string, len(c.scripts))
	for k, v := range c.scripts {
		out[k] = v
	}
	return out
}

// Len returns the number of fragments added since the last Clear.
func (c *Content) Len() int {
	return len(c.fragments)
}

var (
	headingTags = map[string]bool{"h1": true, "h2": true, "h3": true, "h4": true, "h5": true}
	textTags    = map[string]bool{"p": true, "span": true}
)

// AddHeading appends a heading. tag is one of h1..h5 ("" means h3).
// A non-empty icon is rendered as an <i> element before the text.
func (c *Content) AddHeading(text, tag, icon string, style Style) error {
	if tag == "" {
		tag = "h3"
	}
	if !headingTags[tag] {
		return fmt.Errorf("%w: %q (must be one of h1, h2, h3, h4 or h5)", ErrInvalidTag, tag)
	}
	open, err := openTag(tag, style)
	if err != nil {
		return err
	}
	if icon != "" {
		text = "<i class='" + icon + "'></i> " + text
	}
	c.append(open + text + "</" + tag + ">")
	return nil
}

// AddText appends a paragraph or span. tag is p or span ("" means p).
func (c *Content) AddText(text, tag string, style Style) error {
	if tag == "" {
		tag = "p"
	}
	if !textTags[tag] {
		return fmt.Errorf("%w: %q (must be one of p or span)", ErrInvalidTag, tag)
	}
	open, err := openTag(tag, style)
	if err != nil {
		return err
	}
	c.append(open + text + "</" + tag + ">")
	return nil
}

// AddList appends an ordered or unordered list. Items are trusted markup
// and are not escaped.
func (c *Content) AddList(items []string, ordered bool, style Style) error {
	tag := "ul"
	if ordered {
		tag = "ol"
	}
	open, err := openTag(tag, style)
	if err != nil {
		return err
	}
	lis := make([]string, len(items))
	for i, item := range items {
		lis[i] = "<li>" + item + "</li>"
	}
	c.append(open + "\n" + strings.Join(lis, "\n") + "\n</" + tag + ">")
	return nil
}

// AddImage appends an <img> holding src inlined as a base64 data URI.
// src is fetched when it is an http(s) URL and read from disk otherwise.
// The data URI is always labelled image/png whatever the real encoding.
func (c *Content) AddImage(ctx context.Context, src, alt string, style Style) error {
	style = style.WithClass("img-fluid")
	attrs, err := style.Attrs()
	if err != nil {
		return err
	}
	data, err := c.images.Load(ctx, src)
	if err != nil {
		return err
	}
	c.append(imgTag(pngDataURI(data), alt, attrs))
	return nil
}

// AddSVG appends raw SVG markup inside a div.
func (c *Content) AddSVG(svg string, style Style) error {
	open, err := openTag("div", style.WithClass("img-fluid"))
	if err != nil {
		return err
	}
	c.append(open + svg + "</div>")
	return nil
}

// AddPlotly appends a container div and the script drawing a Plotly chart
// from payload. Apostrophes in payload become U+2019 so the payload can sit
// inside a single-quoted script literal.
func (c *Content) AddPlotly(payload string, style Style) error {
	attrs, err := style.WithClass("img-fluid").Attrs()
	if err != nil {
		return err
	}
	id := c.newID()
	j := strings.ReplaceAll(payload, "'", "’")
	c.append(fmt.Sprintf("<div %s id='%s'></div>\n"+
		"<script>var Plotjson = '%s';\n"+
		"var figure = JSON.parse(Plotjson);\n"+
		"Plotly.newPlot('%s', figure.data, figure.layout);</script>",
		attrs, id, j, id))
	return nil
}

// AddAltair appends a container div and the vega-embed script rendering a
// Vega-Lite spec as SVG.
func (c *Content) AddAltair(payload string, style Style) error {
	attrs, err := style.WithClass("img-fluid").Attrs()
	if err != nil {
		return err
	}
	id := c.newID()
	c.append(fmt.Sprintf("<div %s id='%s'></div>\n"+
		"<script>var opt = {renderer: \"svg\"};\n"+
		"vegaEmbed(\"#%s\", %s , opt);</script>",
		attrs, id, id, payload))
	return nil
}

// AddDiv appends markup inside a styled div.
func (c *Content) AddDiv(markup string, style Style) error {
	open, err := openTag("div", style)
	if err != nil {
		return err
	}
	c.append(open + markup + "</div>")
	return nil
}

// AddFig appends a figure. As SVG the markup is inlined live with newlines
// removed; otherwise the PNG export is inlined as a data URI <img>.
func (c *Content) AddFig(fig Figure, alt string, asSVG bool, style Style) error {
	if isNilFigure(fig) {
		return fmt.Errorf("%w: nil figure", ErrFigureExport)
	}
	style = style.WithClass("img-fluid")
	attrs, err := style.Attrs()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if asSVG {
		if err := fig.Export(&buf, FormatSVG); err != nil {
			return fmt.Errorf("%w: svg: %v", ErrFigureExport, err)
		}
		svg := strings.ReplaceAll(buf.String(), "\n", "")
		if i := strings.Index(svg, "<svg"); i > 0 {
			svg = svg[i:] // drop XML prolog and leading comments
		}
		c.append("<div " + attrs + ">" + svg + "</div>")
		return nil
	}

	if err := fig.Export(&buf, FormatPNG); err != nil {
		return fmt.Errorf("%w: png: %v", ErrFigureExport, err)
	}
	c.append(imgTag(pngDataURI(buf.Bytes()), alt, attrs))
	return nil
}

// AddMarkdown appends Markdown rendered to HTML inside a styled div.
func (c *Content) AddMarkdown(ctx context.Context, md string, style Style) error {
	open, err := openTag("div", style)
	if err != nil {
		return err
	}
	out, err := c.markdownConverter().ToHTML(ctx, md)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarkdownConversion, err)
	}
	c.append(open + out + "</div>")
	return nil
}

// AddCode appends a syntax-highlighted code block. lang selects the lexer;
// "" leaves the code unhighlighted.
func (c *Content) AddCode(ctx context.Context, code, lang string, style Style) error {
	return c.AddMarkdown(ctx, markdown.Fence(code, lang), style)
}

// Render wraps the fragments in a <div> and returns them indented.
// Render does not modify c.
func (c *Content) Render() (string, error) {
	return htmlfmt.Format("<div>" + strings.Join(c.fragments, "") + "</div>")
}

func (c *Content) append(fragment string) {
	c.fragments = append(c.fragments, fragment)
}

func pngDataURI(data []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}

func imgTag(src, alt, attrs string) string {
	return `<img src="` + src + `" alt="` + alt + `" ` + attrs + `>`
}
