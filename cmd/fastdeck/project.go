package main

import (
	"context"
	"path/filepath"
	"time"

	fastdeck "github.com/alnah/go-fastdeck"
	"github.com/alnah/go-fastdeck/internal/config"
	"github.com/alnah/go-fastdeck/internal/deckfile"
)

// project ties a deck file to the configuration layers that shape its
// rendering. It is shared by the build and serve commands.
type project struct {
	deckPath string
	cfg      *config.Config
	env      *envConfig
	flags    renderFlags
	loader   fastdeck.AssetLoader
}

// newProject loads the config file, applies environment overrides and
// resolves the asset loader. The flag value of assetPath wins over config.
func newProject(deckPath string, common commonFlags, render renderFlags, assetPath string) (*project, error) {
	env := loadEnvConfig()

	cfg, err := loadConfig(common.config, env)
	if err != nil {
		return nil, err
	}
	applyEnvConfig(env, cfg)

	if assetPath == "" {
		assetPath = cfg.Assets.BasePath
	}
	loader, err := fastdeck.NewAssetLoader(assetPath)
	if err != nil {
		return nil, err
	}

	return &project{
		deckPath: deckPath,
		cfg:      cfg,
		env:      env,
		flags:    render,
		loader:   loader,
	}, nil
}

// loadConfig loads the named config, falling back to FASTDECK_CONFIG and
// then to the defaults when neither is set.
func loadConfig(name string, env *envConfig) (*config.Config, error) {
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// render loads the deck file and returns the finished HTML document with
// the options it was rendered with. The deck is read on every call so a
// running preview picks up edits.
func (p *project) render(ctx context.Context) (string, *fastdeck.RenderOptions, error) {
	deck, err := deckfile.Load(p.deckPath)
	if err != nil {
		return "", nil, err
	}

	opts := p.renderOptions(deck)
	if err := opts.Validate(); err != nil {
		return "", nil, err
	}

	b := deckfile.NewBuilder(
		deckfile.WithBaseDir(filepath.Dir(p.deckPath)),
		deckfile.WithPresentationOptions(fastdeck.WithAssetLoader(p.loader)),
	)
	pres, err := b.Build(ctx, deck)
	if err != nil {
		return "", nil, err
	}

	doc, err := pres.HTML(opts)
	if err != nil {
		return "", nil, err
	}
	return doc, opts, nil
}

// renderOptions layers config, deck and flags, later layers winning.
func (p *project) renderOptions(deck *deckfile.Deck) *fastdeck.RenderOptions {
	rc := p.cfg.Render.Merge(deck.Render).Merge(p.flags.renderConfig())
	return &fastdeck.RenderOptions{
		Theme:       rc.Theme,
		CustomTheme: rc.CustomTheme,
		Width:       rc.Width,
		Height:      rc.Height,
		MinScale:    rc.MinScale,
		MaxScale:    rc.MaxScale,
		Margin:      rc.Margin,
		Title:       deck.Title,
		Style:       rc.Style,
		TemplateSet: p.flags.template,
		Pretty:      rc.Pretty,
	}
}

// timeout resolves the PDF timeout: flag, then env, then the default.
func (p *project) timeout(flagValue string) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil || d <= 0 {
			return 0, invalidTimeout(flagValue)
		}
		return d, nil
	}
	if p.env.Timeout > 0 {
		return p.env.Timeout, nil
	}
	return fastdeck.DefaultPDFTimeout, nil
}
