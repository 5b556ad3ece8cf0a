package webseo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrConfigLoad marks failures reading or decoding a configuration document.
	ErrConfigLoad = errors.New("config load failed")
	// ErrTemplateLoad marks failures reading the HTML template.
	ErrTemplateLoad = errors.New("template load failed")
)

// LoadWebsiteConfig reads the site/personal information document at path.
func LoadWebsiteConfig(path string) (WebsiteConfig, error) {
	var cfg WebsiteConfig
	if err := loadDocument(path, &cfg); err != nil {
		return WebsiteConfig{}, err
	}
	return cfg, nil
}

// LoadSeoConfig reads the SEO metadata document at path.
func LoadSeoConfig(path string) (SeoConfig, error) {
	var cfg SeoConfig
	if err := loadDocument(path, &cfg); err != nil {
		return SeoConfig{}, err
	}
	return cfg, nil
}

// LoadTemplate reads the HTML entry point produced by the web build.
func LoadTemplate(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: load template %s: %w", ErrTemplateLoad, path, err)
	}
	return string(b), nil
}

// loadDocument decodes path into v. Documents ending in .yaml or .yml are
// YAML, everything else is JSON.
func loadDocument(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: load config %s: %w", ErrConfigLoad, path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, v)
	default:
		err = json.Unmarshal(b, v)
	}
	if err != nil {
		return fmt.Errorf("%w: parse config %s: %w", ErrConfigLoad, path, err)
	}
	return nil
}
