package deckfile

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	fastdeck "github.com/alnah/go-fastdeck"
	"github.com/alnah/go-fastdeck/internal/fileutil"
	"github.com/alnah/go-fastdeck/internal/markdown"
	"github.com/alnah/go-fastdeck/plot"
)

// Builder turns a Deck into a fastdeck.Presentation.
type Builder struct {
	baseDir      string
	contentOpts  []fastdeck.ContentOption
	presentation []fastdeck.PresentationOption
}

// Option configures a Builder.
type Option func(*Builder)

// WithBaseDir sets the directory relative paths are resolved against.
func WithBaseDir(dir string) Option {
	return func(b *Builder) {
		b.baseDir = dir
	}
}

// WithContentOptions configures every Content built for the deck. They are
// applied after the builder's own Markdown converter, so they win.
func WithContentOptions(opts ...fastdeck.ContentOption) Option {
	return func(b *Builder) {
		b.contentOpts = append(b.contentOpts, opts...)
	}
}

// WithPresentationOptions configures the built Presentation.
func WithPresentationOptions(opts ...fastdeck.PresentationOption) Option {
	return func(b *Builder) {
		b.presentation = append(b.presentation, opts...)
	}
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// options returns the content options with a Markdown converter that
// inlines images relative to the deck directory.
func (b *Builder) options() []fastdeck.ContentOption {
	md := markdown.New(markdown.WithUnsafeHTML(), markdown.WithBaseDir(b.baseDir))
	return append([]fastdeck.ContentOption{fastdeck.WithMarkdownConverter(md)}, b.contentOpts...)
}

// Build creates the presentation described by d. The first failing block
// aborts the build; its error names the slide and block.
func (b *Builder) Build(ctx context.Context, d *Deck) (*fastdeck.Presentation, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	opts := b.options()
	p := fastdeck.NewPresentation(b.presentation...)
	for i, spec := range d.Slides {
		section, err := b.buildSection(ctx, spec, opts)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		p.AddSlide(section)
	}
	return p, nil
}

func (b *Builder) buildSection(ctx context.Context, spec Slide, opts []fastdeck.ContentOption) (fastdeck.Section, error) {
	if len(spec.Vertical) > 0 {
		group := make(fastdeck.Group, 0, len(spec.Vertical))
		for i, v := range spec.Vertical {
			section, err := b.buildSection(ctx, v, opts)
			if err != nil {
				return nil, fmt.Errorf("vertical %d: %w", i+1, err)
			}
			group = append(group, section)
		}
		return group, nil
	}

	slideOpts := []fastdeck.SlideOption{fastdeck.WithContentOptions(opts...)}
	if spec.Center {
		slideOpts = append(slideOpts, fastdeck.WithCenter())
	}
	keys := make([]string, 0, len(spec.Attrs))
	for k := range spec.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		slideOpts = append(slideOpts, fastdeck.WithAttr(k, spec.Attrs[k]))
	}

	slide := fastdeck.NewSlide(slideOpts...)
	for i, block := range spec.Blocks {
		if err := b.addBlock(ctx, slide, block, opts); err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, block.Kind, err)
		}
	}
	return slide, nil
}

func (b *Builder) addBlock(ctx context.Context, slide *fastdeck.Slide, block Block, opts []fastdeck.ContentOption) error {
	style, err := fastdeck.NewStyle(block.Style)
	if err != nil {
		return err
	}

	switch block.Kind {
	case KindTitle:
		return slide.AddTitle(block.Text, block.Tag, block.Icon, style)

	case KindContent:
		styles, err := styleList(block.Styles)
		if err != nil {
			return err
		}
		items := make([]any, len(block.Items))
		for i, item := range block.Items {
			items[i] = b.resolveItem(item)
		}
		return slide.AddContent(ctx, items, block.Columns, styles)

	case KindCards:
		styles, err := styleList(block.Styles)
		if err != nil {
			return err
		}
		cards := make([]fastdeck.Card, len(block.Cards))
		for i, c := range block.Cards {
			cards[i] = fastdeck.Card{Image: c.Image, Title: c.Title, Text: c.Text}
		}
		return slide.AddCard(cards, styles)

	case KindTitlePage:
		styles, err := styleList(block.Styles)
		if err != nil {
			return err
		}
		tpStyle, err := fastdeck.TitlePageStyleFromList(styles)
		if err != nil {
			return err
		}
		page := fastdeck.TitlePage{
			Title:    block.Page.Title,
			Subtitle: block.Page.Subtitle,
			Authors:  block.Page.Authors,
			Logo:     block.Page.Logo,
		}
		return slide.AddTitlePage(page, tpStyle)
	}

	// The remaining kinds render through a Content and land in one
	// full-width column.
	c := fastdeck.NewContent(opts...)
	switch block.Kind {
	case KindText:
		err = c.AddText(block.Text, block.Tag, style)
	case KindMarkdown:
		err = c.AddMarkdown(ctx, block.Text, style)
	case KindCode:
		err = c.AddCode(ctx, block.Text, block.Lang, style)
	case KindList:
		err = c.AddList(listItems(block.Items), block.Ordered, style)
	case KindImage:
		err = c.AddImage(ctx, b.resolvePath(block.Src), block.Alt, style)
	case KindChart:
		var chart *plot.Chart
		chart, err = block.Chart.toPlot()
		if err == nil {
			err = c.AddFig(chart, block.Alt, !block.Chart.PNG, style)
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownBlock, block.Kind)
	}
	if err != nil {
		return err
	}

	rendered, err := c.Render()
	if err != nil {
		return err
	}
	row := fastdeck.Markup("<div class='col-12'>" + rendered + "</div>")
	return slide.AddContent(ctx, []any{row}, nil, nil)
}

// resolveItem rewrites string items naming an image file relative to the
// deck directory so the sniffer finds it. Everything else is untouched.
func (b *Builder) resolveItem(item any) any {
	s, ok := item.(string)
	if !ok || b.baseDir == "" || filepath.IsAbs(s) || fileutil.IsURL(s) {
		return item
	}
	candidate := filepath.Join(b.baseDir, s)
	if fileutil.FileExists(candidate) {
		return candidate
	}
	return item
}

// resolvePath joins relative local paths onto the deck directory.
func (b *Builder) resolvePath(src string) string {
	if b.baseDir == "" || filepath.IsAbs(src) || fileutil.IsURL(src) {
		return src
	}
	return filepath.Join(b.baseDir, src)
}

func styleList(maps []map[string]any) ([]fastdeck.Style, error) {
	if maps == nil {
		return nil, nil
	}
	styles := make([]fastdeck.Style, len(maps))
	for i, m := range maps {
		s, err := fastdeck.NewStyle(m)
		if err != nil {
			return nil, fmt.Errorf("style %d: %w", i+1, err)
		}
		styles[i] = s
	}
	return styles, nil
}

func listItems(items []any) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = fmt.Sprint(item)
	}
	return out
}

func (c *Chart) toPlot() (*plot.Chart, error) {
	kind, err := plot.ParseKind(c.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlock, err)
	}
	series := make([]plot.Series, len(c.Series))
	for i, s := range c.Series {
		series[i] = plot.Series{Name: s.Name, Values: s.Values, Color: s.Color}
	}
	return &plot.Chart{
		Title:  c.Title,
		Kind:   kind,
		Labels: c.Labels,
		Series: series,
		Width:  c.Width,
		Height: c.Height,
	}, nil
}
