package webseo

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"path/filepath"
	"time"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Sitemap renders a sitemap.xml document for the single-page site at base.
func Sitemap(base string, lastMod time.Time) ([]byte, error) {
	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: BuildURL(base), LastMod: lastMod.UTC().Format("2006-01-02")},
		},
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Robots renders a robots.txt that allows all crawlers and points at the
// sitemap under base.
func Robots(base string) []byte {
	return []byte(fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n", BuildURL(base, "sitemap.xml")))
}

// writeSitemap writes sitemap.xml and robots.txt into dir.
func writeSitemap(dir, base string, now time.Time) error {
	sm, err := Sitemap(base, now)
	if err != nil {
		return fmt.Errorf("render sitemap: %w", err)
	}
	if err := writeOutput(filepath.Join(dir, "sitemap.xml"), sm); err != nil {
		return err
	}
	return writeOutput(filepath.Join(dir, "robots.txt"), Robots(base))
}
