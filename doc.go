// Package fastdeck builds reveal.js slide decks from Go code.
//
// # Quick Start
//
// Build slides, add them to a presentation and write the document:
//
//	slide := fastdeck.NewSlide(fastdeck.WithCenter())
//	if err := slide.AddTitle("Quarterly review", "h2", "", fastdeck.Style{}); err != nil {
//	    log.Fatal(err)
//	}
//	if err := slide.AddContent(ctx, []any{"Revenue grew", "chart.png"}, []int{6, 6}, nil); err != nil {
//	    log.Fatal(err)
//	}
//
//	deck := fastdeck.NewPresentation()
//	deck.AddSlide(slide)
//	if err := deck.SaveHTML("deck.html", nil); err != nil {
//	    log.Fatal(err)
//	}
//
// The output is one self-contained HTML file. reveal.js, Bootstrap, Font
// Awesome, Vega, Plotly and MathJax are referenced from public CDNs; images
// are inlined as base64 data URIs.
//
// # Building Blocks
//
//   - Style: class tokens and inline CSS for one element (NewStyle, Class)
//   - Content: a fragment builder (headings, text, lists, images, charts,
//     figures, Markdown, code)
//   - Classify: picks the Content method for an arbitrary value
//   - Slide: rows of content, cards and title pages in one <section>
//   - Group: a vertical stack of slides
//   - Presentation: the ordered deck
//
// # Rendering
//
// RenderOptions selects the reveal.js theme, slide size, scale range and
// margin. A nil *RenderOptions uses DefaultRenderOptions:
//
//	doc, err := deck.HTML(&fastdeck.RenderOptions{Theme: "white", Width: 1280, Height: 720})
//
// Use Theme "custom" with CustomTheme set to a stylesheet URL to replace
// the theme entirely.
//
// # PDF Export
//
// PDFExporter prints a deck through headless Chrome, one page per slide:
//
//	exp := fastdeck.NewPDFExporter()
//	defer exp.Close()
//	pdf, err := exp.Export(ctx, deck, nil)
//
// # Custom Assets
//
// Override the built-in CSS and document templates with NewAssetLoader:
//
//	loader, err := fastdeck.NewAssetLoader("/path/to/assets")
//	deck := fastdeck.NewPresentation(fastdeck.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── custom/
//	        ├── presentation.html
//	        └── slide.html
//
// # Concurrency
//
// Content, Slide and Presentation are plain builders. Concurrent mutation
// of one value is undefined; rendering a value nobody is mutating is safe.
package fastdeck
