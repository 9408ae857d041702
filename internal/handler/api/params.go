package api

import (
	"net/url"
	"strconv"

	"dealstack/internal/handler/dto/response"
	"dealstack/internal/pkg/config"
	"dealstack/internal/pkg/pagination"
	"dealstack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const maxQueryLength = 200

// filterParams are the recognized filter keys carried onto pagination
// links; page and limit are re-derived per link.
var filterParams = []string{"q", "category", "store", "type", "status", "sort", "locale"}

// parseListRequest maps the recognized query parameters onto a list
// request. A non-numeric category is the one malformed parameter that
// fails the request instead of being ignored.
func parseListRequest(c *gin.Context, site config.SiteConfig) (queries.ListRequest, error) {
	req := queries.ListRequest{
		Page:   1,
		Limit:  site.DefaultLimit,
		Cursor: c.Query("cursor"),
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			req.Page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.Limit = clamp(n, 1, site.MaxLimit)
		}
	}

	// Truncate on runes, not bytes; a byte cut can split a multi-byte
	// character and hand Postgres invalid UTF-8.
	q := c.Query("q")
	if len(q) > maxQueryLength {
		if r := []rune(q); len(r) > maxQueryLength {
			q = string(r[:maxQueryLength])
		}
	}
	req.Filters = queries.ListFilters{
		Query:     q,
		StoreSlug: c.Query("store"),
		Type:      c.Query("type"),
		Status:    c.Query("status"),
		Sort:      c.Query("sort"),
		Locale:    c.Query("locale"),
	}

	if v := c.Query("category"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, err
		}
		req.Filters.CategoryID = &id
	}
	return req, nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// listMeta derives the response meta for offset mode. A nil total means
// the count was skipped; navigation then collapses to a single page.
func listMeta(c *gin.Context, site config.SiteConfig, basePath string, req queries.ListRequest, total *int) response.Meta {
	extra := url.Values{}
	for _, key := range filterParams {
		if v := c.Query(key); v != "" {
			extra.Set(key, v)
		}
	}

	navTotal := 0
	if total != nil {
		navTotal = *total
	}
	nav := pagination.Navigate(pagination.Input{
		BasePath:        basePath,
		Page:            req.Page,
		Limit:           req.Limit,
		Total:           navTotal,
		ExtraParams:     extra,
		DefaultLimit:    site.DefaultLimit,
		ExternalAPIBase: site.ExternalAPIBase,
		CanonicalOrigin: site.CanonicalOrigin,
	})

	return response.Meta{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		Canonical:  nav.Canonical,
		Prev:       nav.Prev,
		Next:       nav.Next,
		TotalPages: nav.TotalPages,
	}
}

// cursorMeta is the keyset-mode envelope: no total, no page links.
func cursorMeta(req queries.ListRequest, page *queries.CouponPage) response.Meta {
	hasMore := page.HasMore
	return response.Meta{
		Page:       req.Page,
		Limit:      req.Limit,
		NextCursor: page.NextCursor,
		HasMore:    &hasMore,
		TotalPages: 1,
	}
}
