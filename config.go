package webseo

import (
	"io"

	"github.com/rs/zerolog"
)

// Default paths, relative to the project root.
const (
	DefaultWebsiteConfigPath = "assets/config/website_config_default.json"
	DefaultSeoConfigPath     = "assets/config/seo_config.json"
	DefaultInputPath         = "build/web/index.html"
	DefaultOutputPath        = "build/web/index.html"
)

// Config holds the paths and switches for a processing run.
type Config struct {
	WebsiteConfigPath string // default DefaultWebsiteConfigPath
	SeoConfigPath     string // default DefaultSeoConfigPath
	InputPath         string // default DefaultInputPath
	OutputPath        string // default DefaultOutputPath

	SkipMinify bool // write the substituted HTML without minifying
	Sitemap    bool // also write sitemap.xml and robots.txt next to the output
}

func (c *Config) setDefaults() {
	if c.WebsiteConfigPath == "" {
		c.WebsiteConfigPath = DefaultWebsiteConfigPath
	}
	if c.SeoConfigPath == "" {
		c.SeoConfigPath = DefaultSeoConfigPath
	}
	if c.InputPath == "" {
		c.InputPath = DefaultInputPath
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
}

// Option configures additional Processor behavior.
type Option func(*Processor)

// WithLogger sets the logger used for progress output.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Processor) {
		p.logger = l
	}
}

// WithMinifier replaces the default HTML minifier.
func WithMinifier(m Minifier) Option {
	return func(p *Processor) {
		p.minifier = m
	}
}

// WithStore records every successful run in s.
func WithStore(s *Store) Option {
	return func(p *Processor) {
		p.store = s
	}
}

// WithStatsOutput sets where the compression statistics line is printed.
// It defaults to os.Stdout; nil disables it.
func WithStatsOutput(w io.Writer) Option {
	return func(p *Processor) {
		p.statsOut = w
	}
}
