package webseo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadWebsiteConfigJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "website.json")
	writeFile(t, path, `{
		"personal_info": {"name": "Ana", "avatar_url": "https://example.com/a.png", "email": "ignored@example.com"},
		"social_links": [
			{"platform": "github", "url": "https://github.com/ana"},
			{"platform": "x", "url": "https://x.com/ana"}
		],
		"theme": {"primary": "#fff"}
	}`)

	cfg, err := LoadWebsiteConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.png", cfg.PersonalInfo.AvatarURL.String())
	require.Len(t, cfg.SocialLinks, 2)
	assert.Equal(t, "x", cfg.SocialLinks[1].Platform)
}

func TestLoadSeoConfigJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seo.json")
	writeFile(t, path, `{
		"site_info": {"base_url": "https://example.com", "site_name": "Ana"},
		"meta_tags": {"language": "es", "keywords": ["a", "b"]},
		"structured_data": {"skills": [], "address": {"locality": "Madrid"}},
		"analytics": {"google_analytics_id": "G-1"}
	}`)

	cfg, err := LoadSeoConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", cfg.SiteInfo.BaseURL.String())
	assert.Equal(t, []string{"a", "b"}, cfg.MetaTags.Keywords)
	assert.NotNil(t, cfg.StructuredData.Skills)
	assert.Empty(t, cfg.StructuredData.Skills)
	assert.Nil(t, cfg.StructuredData.SameAs)
	assert.Equal(t, "Madrid", cfg.StructuredData.Address.Locality.String())
	assert.Equal(t, "G-1", cfg.Analytics.GoogleAnalyticsID.String())
}

func TestLoadSeoConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seo.yaml")
	writeFile(t, path, `
site_info:
  base_url: https://example.com
  site_name: Ana
meta_tags:
  language: en
  keywords: [go, seo]
twitter:
  creator: "@ana"
structured_data:
  same_as:
    - https://github.com/ana
`)

	cfg, err := LoadSeoConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Ana", cfg.SiteInfo.SiteName.String())
	assert.Equal(t, []string{"go", "seo"}, cfg.MetaTags.Keywords)
	assert.Equal(t, "@ana", cfg.Twitter.Creator.String())
	assert.Equal(t, []string{"https://github.com/ana"}, cfg.StructuredData.SameAs)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSeoConfig(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, ErrConfigLoad)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.json")

	bad := filepath.Join(dir, "bad.json")
	writeFile(t, bad, `{"site_info": `)
	_, err = LoadWebsiteConfig(bad)
	require.ErrorIs(t, err, ErrConfigLoad)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	writeFile(t, path, "<html>{{SITE_NAME}}</html>")

	tmpl, err := LoadTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>{{SITE_NAME}}</html>", tmpl)

	_, err = LoadTemplate(filepath.Join(t.TempDir(), "nope.html"))
	require.ErrorIs(t, err, ErrTemplateLoad)
	assert.NotErrorIs(t, err, ErrConfigLoad)
}

func TestLoadSeoConfigNonStringScalars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seo.json")
	writeFile(t, path, `{
		"site_info": {"site_name": null},
		"meta_tags": {"title": true, "author": false},
		"structured_data": {"education": 0, "address": {"country": 34}},
		"analytics": {"google_analytics_id": 12345}
	}`)

	cfg, err := LoadSeoConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "12345", cfg.Analytics.GoogleAnalyticsID.String())
	assert.Equal(t, "34", cfg.StructuredData.Address.Country.String())
	assert.Equal(t, "true", cfg.MetaTags.Title.String())
	assert.Empty(t, cfg.MetaTags.Author)
	assert.Empty(t, cfg.StructuredData.Education)
	assert.Empty(t, cfg.SiteInfo.SiteName)

	out := Apply("{{ANALYTICS_ID}}|{{COUNTRY}}|{{SITE_NAME}}", WebsiteConfig{}, cfg)
	assert.Equal(t, "12345|34|", out)
}

func TestLoadSeoConfigYAMLNonStringScalars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seo.yml")
	writeFile(t, path, `
meta_tags:
  title: yes-not-a-bool
  author: false
analytics:
  google_analytics_id: 12345
structured_data:
  education: ~
  address:
    country: 1.5
`)

	cfg, err := LoadSeoConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "12345", cfg.Analytics.GoogleAnalyticsID.String())
	assert.Equal(t, "1.5", cfg.StructuredData.Address.Country.String())
	assert.Equal(t, "yes-not-a-bool", cfg.MetaTags.Title.String())
	assert.Empty(t, cfg.MetaTags.Author)
	assert.Empty(t, cfg.StructuredData.Education)
}

func TestLoadSeoConfigRejectsObjectScalar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seo.json")
	writeFile(t, path, `{"meta_tags": {"title": {"nested": 1}}}`)

	_, err := LoadSeoConfig(path)
	require.ErrorIs(t, err, ErrConfigLoad)
}
