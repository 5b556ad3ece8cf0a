package webseo

import (
	"bytes"
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// TwitterHandle returns the account name of the first social link on the
// "x" or "twitter" platform, taken from the last segment of its URL path.
// It returns "" when no such link exists.
func TwitterHandle(links []SocialLink) string {
	for _, l := range links {
		switch strings.ToLower(strings.TrimSpace(l.Platform)) {
		case "x", "twitter":
			return lastPathSegment(l.URL)
		}
	}
	return ""
}

func lastPathSegment(raw string) string {
	p := strings.TrimSpace(raw)
	if u, err := url.Parse(p); err == nil {
		p = u.EscapedPath()
	} else if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimRight(p, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		p = p[i+1:]
	}
	return strings.TrimPrefix(p, "@")
}

// JoinKeywords joins keywords with ", ".
func JoinKeywords(keywords []string) string {
	return strings.Join(keywords, ", ")
}

// JSONArray encodes vals as a JSON array without HTML escaping, so URLs keep
// their literal '&'. A nil slice encodes as "".
func JSONArray(vals []string) string {
	if vals == nil {
		return ""
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(vals); err != nil {
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// BuildURL joins a base URL with path segments.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	if len(pathSegments) == 0 {
		return u.String()
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	return u.String()
}
