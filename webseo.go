// Package webseo injects SEO metadata into the HTML entry point of a static
// web build and minifies the result.
//
// The HTML produced by the web build carries {{TOKEN}} markers. A Processor
// reads the site and SEO configuration documents, substitutes every known
// marker, minifies the markup and writes it back in place.
package webseo

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eringen/webseo/internal/log"
)

// Result describes a completed run.
type Result struct {
	HTML  string
	Stats Stats
	Run   Run
}

// Processor runs the load → substitute → minify → write pipeline.
type Processor struct {
	Config Config

	logger   zerolog.Logger
	minifier Minifier
	store    *Store
	statsOut io.Writer
	now      func() time.Time
}

// New creates a Processor with the given configuration.
func New(cfg Config, opts ...Option) *Processor {
	cfg.setDefaults()

	p := &Processor{
		Config:   cfg,
		logger:   log.WithComponent("templater"),
		statsOut: os.Stdout,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	switch {
	case cfg.SkipMinify:
		p.minifier = nil
	case p.minifier == nil:
		p.minifier = NewHTMLMinifier()
	}
	return p
}

// Run processes the template once. Load failures return an error wrapping
// ErrTemplateLoad or ErrConfigLoad and leave the output untouched. A minifier
// failure is logged and the unminified HTML is written instead.
func (p *Processor) Run(ctx context.Context) (Result, error) {
	run := Run{
		ID:        uuid.NewString(),
		StartedAt: p.now(),
		Input:     p.Config.InputPath,
		Output:    p.Config.OutputPath,
	}
	logger := p.logger.With().Str("run_id", run.ID).Logger()
	logger.Info().Msg("processing HTML template for SEO")

	template, err := LoadTemplate(p.Config.InputPath)
	if err != nil {
		return Result{}, err
	}
	site, err := LoadWebsiteConfig(p.Config.WebsiteConfigPath)
	if err != nil {
		return Result{}, err
	}
	seo, err := LoadSeoConfig(p.Config.SeoConfigPath)
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	processed := Apply(template, site, seo)
	final := processed
	stats := Stats{OriginalBytes: len(processed)}

	if p.minifier != nil {
		logger.Info().Msg("minifying HTML")
		out, ok, err := minifyOrPassthrough(p.minifier, processed)
		if err != nil {
			logger.Warn().Err(err).Msg("HTML minification failed, using original HTML")
			run.Warning = err.Error()
		}
		final, stats.Minified = out, ok
	}
	stats.FinalBytes = len(final)
	run.Stats = stats

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := writeOutput(p.Config.OutputPath, []byte(final)); err != nil {
		return Result{}, err
	}
	logger.Info().Str("path", p.Config.OutputPath).Msg("HTML processed")
	// Statistics are printed regardless of the log level.
	if p.statsOut != nil {
		fmt.Fprintf(p.statsOut, "Compression: %s\n", stats)
	}
	logger.Debug().
		Int("original_bytes", stats.OriginalBytes).
		Int("final_bytes", stats.FinalBytes).
		Bool("minified", stats.Minified).
		Msg("compression stats")

	if p.Config.Sitemap {
		p.writeSitemap(logger, seo.SiteInfo.BaseURL.String())
	}

	run.FinishedAt = p.now()
	if p.store != nil {
		if err := p.store.RecordRun(run); err != nil {
			logger.Warn().Err(err).Msg("record run history")
		}
	}

	logger.Info().Msg("HTML processing completed")
	return Result{HTML: final, Stats: stats, Run: run}, nil
}

func (p *Processor) writeSitemap(logger zerolog.Logger, base string) {
	if base == "" {
		logger.Warn().Msg("site_info.base_url is empty, skipping sitemap")
		return
	}
	dir := filepath.Dir(p.Config.OutputPath)
	if err := writeSitemap(dir, base, p.now()); err != nil {
		logger.Warn().Err(err).Msg("write sitemap")
		return
	}
	logger.Info().Str("dir", dir).Msg("sitemap.xml and robots.txt written")
}
