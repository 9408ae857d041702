// Package cachekey builds deterministic cache keys for list requests.
//
// Two logically identical requests must produce byte-identical keys no
// matter how the caller assembled its parameters, so the fields are
// serialized in a fixed canonical order rather than map order.
package cachekey

import (
	"net/url"
	"strconv"
	"strings"
)

// Params is the recognized request shape. The cursor is deliberately not
// part of the key: cursor-paginated pages are not cached per-cursor, and
// callers that paginate by cursor bypass the result cache entirely.
type Params struct {
	Page     string
	Limit    string
	Query    string
	Category string
	Type     string
	Sort     string
	Locale   string
	Status   string
}

// Canonical field order. Changing this invalidates every existing key.
var fieldOrder = []string{"page", "limit", "q", "category", "type", "sort", "locale", "status"}

// Build returns "<prefix>:page=..&limit=..&q=..&category=..&type=..&sort=..&locale=..&status=..".
// page and limit are coerced to integers (0 when unparsable); all other
// fields default to the empty string and are URL-escaped.
func Build(prefix string, p Params) string {
	values := map[string]string{
		"page":     strconv.Itoa(toInt(p.Page)),
		"limit":    strconv.Itoa(toInt(p.Limit)),
		"q":        p.Query,
		"category": p.Category,
		"type":     p.Type,
		"sort":     p.Sort,
		"locale":   p.Locale,
		"status":   p.Status,
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte(':')
	for i, name := range fieldOrder {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(values[name]))
	}
	return b.String()
}

func toInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
