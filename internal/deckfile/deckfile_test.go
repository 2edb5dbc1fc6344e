package deckfile

// Notes:
// - Decks are written to t.TempDir and loaded through Load so the strict
//   YAML path is exercised end to end
// - Built presentations are rendered to HTML and inspected with goquery

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	fastdeck "github.com/alnah/go-fastdeck"
)

func writeDeck(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "deck.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing deck: %v", err)
	}
	return path
}

func renderDeck(t *testing.T, d *Deck, opts ...Option) *goquery.Document {
	t.Helper()
	p, err := NewBuilder(opts...).Build(context.Background(), d)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	html, err := p.HTML(nil)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing HTML: %v", err)
	}
	return doc
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeDeck(t, t.TempDir(), `
title: Review
render:
  theme: white
  width: 1280
slides:
  - center: true
    attrs:
      data-background-color: "#000"
    blocks:
      - kind: title
        text: Hello
        style: {class: [a, b], font_size: 12}
  - vertical:
      - blocks: [{kind: text, text: one}]
      - blocks: [{kind: text, text: two}]
`)

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Title != "Review" || d.Render.Theme != "white" || d.Render.Width != 1280 {
		t.Errorf("Load() header = %+v", d)
	}
	if len(d.Slides) != 2 || len(d.Slides[1].Vertical) != 2 {
		t.Fatalf("Load() slides = %+v", d.Slides)
	}
	if !d.Slides[0].Center || d.Slides[0].Attrs["data-background-color"] != "#000" {
		t.Errorf("slide 1 = %+v", d.Slides[0])
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unknown field",
			content: "slides:\n  - blocks: [{kind: title, text: x, colour: red}]\n",
			wantErr: ErrDeckParse,
		},
		{
			name:    "malformed yaml",
			content: "slides: [\n",
			wantErr: ErrDeckParse,
		},
		{
			name:    "unknown kind",
			content: "slides:\n  - blocks: [{kind: video}]\n",
			wantErr: ErrUnknownBlock,
		},
		{
			name:    "missing kind",
			content: "slides:\n  - blocks: [{text: x}]\n",
			wantErr: ErrInvalidBlock,
		},
		{
			name:    "title without text",
			content: "slides:\n  - blocks: [{kind: title}]\n",
			wantErr: ErrInvalidBlock,
		},
		{
			name:    "vertical with blocks",
			content: "slides:\n  - blocks: [{kind: text, text: x}]\n    vertical: [{}]\n",
			wantErr: ErrInvalidSlide,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeDeck(t, t.TempDir(), tt.content))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrDeckNotFound) {
		t.Errorf("Load() error = %v, want ErrDeckNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// Build
// ---------------------------------------------------------------------------

func TestBuild_Blocks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "logo.png"), []byte("PNGDATA"), 0o644); err != nil {
		t.Fatalf("writing image: %v", err)
	}

	d := &Deck{Slides: []Slide{
		{
			Center: true,
			Attrs:  map[string]string{"data-transition": "fade", "data-background-color": "#111"},
			Blocks: []Block{
				{Kind: KindTitlePage, Page: &TitlePage{Title: "Deck", Logo: "data:image/png;base64,AA=="}},
			},
		},
		{Blocks: []Block{
			{Kind: KindTitle, Text: "Agenda", Tag: "h2"},
			{Kind: KindContent, Items: []any{"Left", "logo.png"}, Columns: []int{6, 6}},
			{Kind: KindCards, Cards: []Card{{Title: "A"}, {Title: "B"}}},
			{Kind: KindList, Items: []any{"x", 2}, Ordered: true},
			{Kind: KindMarkdown, Text: "**bold** ![l](logo.png)"},
			{Kind: KindCode, Text: "x := 1", Lang: "go"},
			{Kind: KindImage, Src: "logo.png", Alt: "Logo"},
			{Kind: KindText, Text: "footer", Style: map[string]any{"class": "small"}},
		}},
		{Vertical: []Slide{
			{Blocks: []Block{{Kind: KindText, Text: "down 1"}}},
			{Blocks: []Block{{Kind: KindText, Text: "down 2"}}},
		}},
	}}

	doc := renderDeck(t, d, WithBaseDir(dir))

	top := doc.Find("div.slides > section")
	if top.Length() != 3 {
		t.Fatalf("top-level sections = %d, want 3", top.Length())
	}

	first := top.Eq(0)
	if !first.HasClass("center") || first.AttrOr("data-transition", "") != "fade" {
		t.Errorf("first section attributes missing")
	}
	if first.Find("div.title-page h2").Text() != "Deck" {
		t.Errorf("title page missing")
	}

	second := top.Eq(1)
	if strings.TrimSpace(second.Find("h2").First().Text()) != "Agenda" {
		t.Error("title block missing")
	}
	if second.Find("div.col-md-6 img.img-fluid").Length() != 1 {
		t.Error("relative image item not resolved against the deck directory")
	}
	if second.Find("div.card").Length() != 2 {
		t.Error("cards missing")
	}
	if second.Find("ol li").Length() != 2 {
		t.Error("ordered list missing")
	}
	if strings.TrimSpace(second.Find("strong").Text()) != "bold" {
		t.Error("markdown block missing")
	}
	if !strings.Contains(second.Find("img[alt=l]").AttrOr("src", ""), "base64,UE5HREFUQQ==") {
		t.Error("markdown image not inlined")
	}
	if second.Find("pre").Length() != 1 {
		t.Error("code block missing")
	}
	if second.Find(`img[alt=Logo]`).Length() != 1 {
		t.Error("image block missing")
	}
	if second.Find("p.small").Length() != 1 {
		t.Error("styled text block missing")
	}

	if top.Eq(2).Children().Filter("section").Length() != 2 {
		t.Error("vertical group should hold two sections")
	}
}

func TestBuild_Chart(t *testing.T) {
	t.Parallel()

	chart := &Chart{
		Type:   "bar",
		Title:  "Sales",
		Labels: []string{"Q1", "Q2"},
		Series: []Series{{Name: "2024", Values: []float64{1, 2}}},
	}
	d := &Deck{Slides: []Slide{{Blocks: []Block{
		{Kind: KindChart, Chart: chart},
		{Kind: KindChart, Chart: &Chart{PNG: true, Series: chart.Series}, Alt: "png chart"},
	}}}}

	doc := renderDeck(t, d)
	if doc.Find("section svg").Length() != 1 {
		t.Error("svg chart missing")
	}
	if !strings.HasPrefix(doc.Find(`img[alt="png chart"]`).AttrOr("src", ""), "data:image/png;base64,") {
		t.Error("png chart missing")
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		block   Block
		wantErr error
	}{
		{
			name:    "bool style value",
			block:   Block{Kind: KindText, Text: "x", Style: map[string]any{"hidden": true}},
			wantErr: fastdeck.ErrInvalidStyleValue,
		},
		{
			name:    "bad heading tag",
			block:   Block{Kind: KindTitle, Text: "x", Tag: "h7"},
			wantErr: fastdeck.ErrInvalidTag,
		},
		{
			name:    "columns mismatch",
			block:   Block{Kind: KindContent, Items: []any{"a", "b"}, Columns: []int{12}},
			wantErr: fastdeck.ErrLengthMismatch,
		},
		{
			name:    "title page styles of wrong length",
			block:   Block{Kind: KindTitlePage, Page: &TitlePage{Title: "x"}, Styles: []map[string]any{{}}},
			wantErr: fastdeck.ErrLengthMismatch,
		},
		{
			name:    "unknown chart type",
			block:   Block{Kind: KindChart, Chart: &Chart{Type: "pie", Series: []Series{{Values: []float64{1}}}}},
			wantErr: ErrInvalidBlock,
		},
		{
			name:    "empty chart",
			block:   Block{Kind: KindChart, Chart: &Chart{}},
			wantErr: fastdeck.ErrFigureExport,
		},
		{
			name:    "missing image file",
			block:   Block{Kind: KindImage, Src: "nope.png"},
			wantErr: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := &Deck{Slides: []Slide{{Blocks: []Block{tt.block}}}}
			_, err := NewBuilder(WithBaseDir(t.TempDir())).Build(context.Background(), d)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), "slide 1: block 1") {
				t.Errorf("error %q does not locate the block", err)
			}
		})
	}
}

func TestBuild_PresentationOptions(t *testing.T) {
	t.Parallel()

	loader, err := fastdeck.NewAssetLoader(t.TempDir())
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}
	p, err := NewBuilder(WithPresentationOptions(fastdeck.WithAssetLoader(loader))).
		Build(context.Background(), &Deck{Slides: []Slide{{}}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}
