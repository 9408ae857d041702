package queries

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound   = errors.New("coupon not found")
	ErrMerchantNotFound = errors.New("store not found")
	ErrBlogNotFound     = errors.New("blog post not found")
)

// Recognized sort keys. Each appends its own secondary ordering to the
// stable id DESC tiebreaker.
const (
	SortNewest     = "newest"
	SortEndingSoon = "ending_soon"
	SortPopular    = "popular"
	SortPinned     = "pinned"
)

// ListFilters is the shared predicate set applied identically by the page
// query and the count query of one request.
type ListFilters struct {
	Query      string // case-insensitive substring match
	CategoryID *int64
	StoreSlug  string
	Type       string
	Status     string // "active" | "expired" | ""
	Sort       string
	Locale     string
}

// ListRequest selects one of the three list modes: Lightweight (single
// query, no count), offset (Page/Limit, count unless SkipCount), or
// cursor/keyset (Cursor non-empty, coupons only).
type ListRequest struct {
	Filters     ListFilters
	Page        int
	Limit       int
	Cursor      string
	Lightweight bool
	SkipCount   bool
}

// CouponView is the read-optimized coupon row served by list and detail
// endpoints.
type CouponView struct {
	ID           int64      `json:"id"`
	PublicID     uuid.UUID  `json:"public_id"`
	CouponType   string     `json:"coupon_type"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	HasCode      bool       `json:"has_code"`
	EndsAt       *time.Time `json:"ends_at,omitempty"`
	ClickCount   int64      `json:"click_count"`
	Pinned       bool       `json:"pinned"`
	MerchantID   int64      `json:"merchant_id"`
	MerchantSlug string     `json:"merchant_slug"`
	MerchantName string     `json:"merchant_name"`
	CreatedAt    time.Time  `json:"created_at"`
}

// MerchantView represents read-optimized store data
type MerchantView struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Locale      string    `json:"locale"`
	OfferCount  int64     `json:"offer_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// BlogView represents read-optimized blog post data
type BlogView struct {
	ID          int64      `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Locale      string     `json:"locale"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CouponPage is the list result envelope produced by the query engine.
//
// Total semantics depend on the mode: offset mode carries the count-query
// result (nil when skipped); lightweight mode carries len(Rows), a lower
// bound rather than an authoritative count; cursor mode never counts and
// leaves it nil.
//
// HasMore is the cursor-mode heuristic len(Rows) == limit. When the true
// result size is an exact multiple of the limit the client is told there
// may be more and the following page is legitimately empty.
//
// NextCursor is set by cursor mode while more rows may follow, and by a
// full offset page at the recency order, where it is the bootstrap token
// for switching to a keyset walk.
type CouponPage struct {
	Rows       []*CouponView
	Total      *int
	NextCursor string
	HasMore    bool
}

type MerchantPage struct {
	Rows  []*MerchantView
	Total *int
}

type BlogPage struct {
	Rows  []*BlogView
	Total *int
}
