package headerbag

import "github.com/indigo-web/utils/uf"

// Canonicalize converts a header name into its canonical title-case form:
// words separated by spaces, hyphens or underscores are title-cased and
// joined back with hyphens, so "content_type", "Content Type" and
// "CONTENT-TYPE" all result in "Content-Type". Two names deviate from the
// pattern and are mapped literally: "ETag" and "WWW-Authenticate".
func Canonicalize(key string) string {
	if _, ok := wellknown[key]; ok {
		return key
	}

	buff := make([]byte, len(key))
	upper := true

	for i := 0; i < len(key); i++ {
		c := key[i]

		switch c {
		case ' ', '-', '_':
			buff[i] = '-'
			upper = true
			continue
		}

		if upper {
			c = toUpper(c)
		} else {
			c = toLower(c)
		}

		buff[i] = c
		upper = false
	}

	switch canonical := uf.B2S(buff); canonical {
	case "Etag":
		return "ETag"
	case "Www-Authenticate":
		return "WWW-Authenticate"
	default:
		return canonical
	}
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c &^ 0x20
	}

	return c
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c | 0x20
	}

	return c
}

// wellknown lets Canonicalize skip the rewrite entirely when the caller
// already passes the canonical spelling, which is by far the most common
// case. Every entry must be its own canonical form.
var wellknown = map[string]struct{}{
	"Accept":              {},
	"Accept-Charset":      {},
	"Accept-Encoding":     {},
	"Accept-Language":     {},
	"Accept-Ranges":       {},
	"Age":                 {},
	"Allow":               {},
	"Authorization":       {},
	"Cache-Control":       {},
	"Connection":          {},
	"Content-Disposition": {},
	"Content-Encoding":    {},
	"Content-Language":    {},
	"Content-Length":      {},
	"Content-Range":       {},
	"Content-Type":        {},
	"Cookie":              {},
	"Date":                {},
	"ETag":                {},
	"Expect":              {},
	"Expires":             {},
	"From":                {},
	"Host":                {},
	"If-Match":            {},
	"If-Modified-Since":   {},
	"If-None-Match":       {},
	"If-Range":            {},
	"If-Unmodified-Since": {},
	"Last-Modified":       {},
	"Location":            {},
	"Origin":              {},
	"Pragma":              {},
	"Proxy-Authenticate":  {},
	"Proxy-Authorization": {},
	"Range":               {},
	"Referer":             {},
	"Retry-After":         {},
	"Server":              {},
	"Set-Cookie":          {},
	"Trailer":             {},
	"Transfer-Encoding":   {},
	"Upgrade":             {},
	"User-Agent":          {},
	"Vary":                {},
	"Via":                 {},
	"WWW-Authenticate":    {},
	"X-Forwarded-For":     {},
	"X-Forwarded-Host":    {},
	"X-Forwarded-Proto":   {},
}
