// Package pagination derives prev/next/canonical links and the total page
// count for offset-paginated list responses.
package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

type Input struct {
	// BasePath is the site-relative path of the list, e.g. "/api/coupons".
	BasePath string
	Page     int
	Limit    int
	Total    int
	// ExtraParams are carried onto every generated link (filters, sort).
	ExtraParams url.Values

	DefaultLimit int
	// ExternalAPIBase rewrites link targets to the public API host while
	// preserving path and query. Empty means site-relative links.
	ExternalAPIBase string
	// CanonicalOrigin prefixes site-relative links when no external base
	// is configured.
	CanonicalOrigin string
}

type Nav struct {
	TotalPages int
	PrevPage   *int
	NextPage   *int
	Prev       *string
	Next       *string
	Canonical  string
}

// Navigate computes totalPages = max(ceil(total/limit), 1); total 0 still
// yields one page with no prev/next.
func Navigate(in Input) Nav {
	limit := in.Limit
	if limit < 1 {
		limit = 1
	}
	totalPages := (in.Total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	nav := Nav{TotalPages: totalPages}
	nav.Canonical = buildLink(in, in.Page)

	if in.Page > 1 {
		p := in.Page - 1
		nav.PrevPage = &p
		link := buildLink(in, p)
		nav.Prev = &link
	}
	if in.Page < totalPages {
		n := in.Page + 1
		nav.NextPage = &n
		link := buildLink(in, n)
		nav.Next = &link
	}
	return nav
}

func buildLink(in Input, page int) string {
	params := url.Values{}
	for k, vs := range in.ExtraParams {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	// page only when it moves off the first page, limit only when it
	// differs from the system default; keeps canonical URLs minimal.
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}
	if in.DefaultLimit > 0 && in.Limit != in.DefaultLimit {
		params.Set("limit", strconv.Itoa(in.Limit))
	}

	path := in.BasePath
	if q := params.Encode(); q != "" {
		path += "?" + q
	}

	if in.ExternalAPIBase != "" {
		return strings.TrimSuffix(in.ExternalAPIBase, "/") + path
	}
	if in.CanonicalOrigin != "" {
		return strings.TrimSuffix(in.CanonicalOrigin, "/") + path
	}
	return path
}
