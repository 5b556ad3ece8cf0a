package webseo

import (
	"regexp"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/json"
	"github.com/tdewolff/minify/v2/svg"
)

const mimeHTML = "text/html"

// Minifier shrinks an HTML document.
type Minifier interface {
	Minify(src string) (string, error)
}

// MinifierFunc adapts a plain function to Minifier.
type MinifierFunc func(string) (string, error)

func (f MinifierFunc) Minify(src string) (string, error) { return f(src) }

// HTMLMinifier minifies markup together with its inline styles, scripts,
// JSON-LD blocks and SVG.
type HTMLMinifier struct {
	m *minify.M
}

// NewHTMLMinifier returns an HTMLMinifier that collapses whitespace, drops
// comments and default attribute values, and keeps document and end tags.
func NewHTMLMinifier() *HTMLMinifier {
	m := minify.New()
	m.Add(mimeHTML, &html.Minifier{
		KeepDocumentTags:    true,
		KeepEndTags:         true,
		KeepQuotes:          true,
		KeepDefaultAttrVals: false,
		KeepWhitespace:      false,
	})
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)
	m.AddFuncRegexp(regexp.MustCompile("[/+]json$"), json.Minify)
	return &HTMLMinifier{m: m}
}

// Minify returns the minified form of src.
func (h *HTMLMinifier) Minify(src string) (string, error) {
	return h.m.String(mimeHTML, src)
}

// minifyOrPassthrough runs m over src. On failure it returns src unchanged
// together with the error so the caller can warn.
func minifyOrPassthrough(m Minifier, src string) (string, bool, error) {
	out, err := m.Minify(src)
	if err != nil {
		return src, false, err
	}
	return out, true, nil
}
