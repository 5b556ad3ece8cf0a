package webseo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `<!DOCTYPE html>
<html lang="es">
  <head>
    <!-- SEO block -->
    <meta charset="UTF-8">
    <title>  Ana   Ruiz  </title>
    <style>
      body {
        color : red;
      }
    </style>
    <script type="application/ld+json">
    {
      "@type": "Person",
      "name": "Ana Ruiz"
    }
    </script>
  </head>
  <body>
    <p>
      Hello
      world
    </p>
  </body>
</html>
`

func TestHTMLMinifierShrinksMarkup(t *testing.T) {
	out, err := NewHTMLMinifier().Minify(sampleHTML)
	require.NoError(t, err)

	assert.Less(t, len(out), len(sampleHTML))
	assert.NotContains(t, out, "SEO block")
	assert.NotContains(t, out, "\n    ")
	assert.Contains(t, out, `body{color:red}`)
	assert.Contains(t, out, `{"@type":"Person","name":"Ana Ruiz"}`)
	assert.Contains(t, out, "<p>Hello\nworld</p>")
}

func TestHTMLMinifierKeepsOptionalTags(t *testing.T) {
	out, err := NewHTMLMinifier().Minify(sampleHTML)
	require.NoError(t, err)

	for _, tag := range []string{"<html", "<head>", "</head>", "<body>", "</body>", "</html>", "</p>"} {
		assert.Contains(t, out, tag)
	}
	assert.Contains(t, out, `lang="es"`)
}

func TestHTMLMinifierIdempotent(t *testing.T) {
	m := NewHTMLMinifier()
	once, err := m.Minify(sampleHTML)
	require.NoError(t, err)
	twice, err := m.Minify(once)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(twice), len(once))
}

func TestMinifyOrPassthrough(t *testing.T) {
	failing := MinifierFunc(func(string) (string, error) {
		return "", errors.New("boom")
	})
	out, ok, err := minifyOrPassthrough(failing, "<p> keep </p>")
	assert.Equal(t, "<p> keep </p>", out)
	assert.False(t, ok)
	assert.EqualError(t, err, "boom")

	shrink := MinifierFunc(func(s string) (string, error) { return "x", nil })
	out, ok, err = minifyOrPassthrough(shrink, "<p> keep </p>")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", out)
}

func TestStats(t *testing.T) {
	s := Stats{OriginalBytes: 200, FinalBytes: 150, Minified: true}
	assert.InDelta(t, 25.0, s.Reduction(), 0.0001)
	assert.Equal(t, "200 bytes → 150 bytes (25.0% reduction)", s.String())

	assert.Zero(t, Stats{}.Reduction())
	assert.Equal(t, "0 bytes → 0 bytes (0.0% reduction)", Stats{}.String())
	assert.Equal(t, "3 bytes → 2 bytes (33.3% reduction)", Stats{OriginalBytes: 3, FinalBytes: 2}.String())
}
