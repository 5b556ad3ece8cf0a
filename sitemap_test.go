package webseo

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemap(t *testing.T) {
	b, err := Sitemap("https://example.com/", time.Date(2026, 2, 3, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	out := string(b)
	assert.True(t, strings.HasPrefix(out, xml.Header))
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)

	var set sitemapURLSet
	require.NoError(t, xml.Unmarshal(b, &set))
	require.Len(t, set.URLs, 1)
	assert.Equal(t, "https://example.com/", set.URLs[0].Loc)
	assert.Equal(t, "2026-02-03", set.URLs[0].LastMod)
}

func TestRobots(t *testing.T) {
	assert.Equal(t,
		"User-agent: *\nAllow: /\n\nSitemap: https://example.com/sitemap.xml\n",
		string(Robots("https://example.com")))
}
