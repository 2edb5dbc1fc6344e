package main

import (
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-fastdeck/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds the presentation layout flags.
// Zero values mean "not set on the command line".
type renderFlags struct {
	theme       string
	customTheme string
	width       int
	height      int
	minScale    float64
	maxScale    float64
	margin      float64
	style       string
	template    string
	pretty      bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common    commonFlags
	render    renderFlags
	output    string
	pdf       bool
	timeout   string
	assetPath string
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common    commonFlags
	render    renderFlags
	addr      string
	pdf       bool
	timeout   string
	assetPath string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addRenderFlags adds layout flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.theme, "theme", "t", "", "reveal.js theme name or \"custom\"")
	fs.StringVar(&f.customTheme, "custom-theme", "", "stylesheet URL for the custom theme")
	fs.IntVar(&f.width, "width", 0, "slide width in px (default 960)")
	fs.IntVar(&f.height, "height", 0, "slide height in px (default 600)")
	fs.Float64Var(&f.minScale, "min-scale", 0, "smallest slide scale (default 0.2)")
	fs.Float64Var(&f.maxScale, "max-scale", 0, "largest slide scale (default 1.5)")
	fs.Float64Var(&f.margin, "margin", 0, "margin as a fraction of the slide size (default 0.1)")
	fs.StringVar(&f.style, "style", "", "CSS style name from the asset directory")
	fs.StringVar(&f.template, "template", "", "template set name from the asset directory")
	fs.BoolVar(&f.pretty, "pretty", false, "indent slide markup")
}

// renderConfig returns the flags as a config layer for RenderConfig.Merge.
func (f *renderFlags) renderConfig() config.RenderConfig {
	return config.RenderConfig{
		Theme:       f.theme,
		CustomTheme: f.customTheme,
		Width:       f.width,
		Height:      f.height,
		MinScale:    f.minScale,
		MaxScale:    f.maxScale,
		Margin:      f.margin,
		Style:       f.style,
		Pretty:      f.pretty,
	}
}

// parseBuildFlags parses build command flags and returns remaining args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.Usage = func() {}

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	fs.StringVarP(&f.output, "output", "o", "", "output HTML file")
	fs.BoolVar(&f.pdf, "pdf", false, "also export a PDF next to the HTML")
	fs.StringVar(&f.timeout, "timeout", "", "PDF export timeout (default 1m)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom styles and templates")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags and returns remaining args.
func parseServeFlags(args []string) (*serveFlags, []string, error) {
	f := &serveFlags{}
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.Usage = func() {}

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (default "+config.DefaultAddr+")")
	fs.BoolVar(&f.pdf, "pdf", false, "serve a PDF export at /deck.pdf")
	fs.StringVar(&f.timeout, "timeout", "", "PDF export timeout (default 1m)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom styles and templates")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
