// Package offer models canonical and synthetic offers and the grammar of
// offer identifiers accepted by the click endpoint.
package offer

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Canonical is a coupon/deal persisted as its own row. Its click counter
// is mutated only through the click command's atomic increment.
type Canonical struct {
	ID           int64
	PublicID     uuid.UUID
	CouponType   string
	Title        string
	Description  string
	Code         *string
	EndsAt       *time.Time
	ClickCount   int64
	MerchantID   int64
	MerchantSlug string
}

// Block is one embedded content section of a merchant record.
type Block struct {
	Heading     string
	Description string
	RedirectURL *string
}

type BlockKind string

const (
	BlockH2 BlockKind = "h2"
	BlockH3 BlockKind = "h3"
)

// Merchant is the store-side row that synthetic offers are reconstructed
// from.
type Merchant struct {
	ID           int64
	Slug         string
	Name         string
	AffiliateURL *string
	WebsiteURL   *string
	H2Blocks     []Block
	H3Blocks     []Block
}

// Synthetic is an offer-like view over one merchant block. It is never
// persisted and never click-counted; two resolutions of the same
// identifier against an unchanged merchant row yield the same block.
type Synthetic struct {
	Ref         string
	MerchantID  int64
	Title       string
	Description string
	RedirectURL *string
	Kind        BlockKind
	BlockIndex  int
}

// ChooseRedirect picks the redirect target by priority: offer-specific
// redirect, then merchant affiliate URL, then merchant website URL. A
// candidate is accepted only if it is an absolute http(s) URL.
func ChooseRedirect(candidates ...*string) *string {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if isAbsoluteHTTP(*c) {
			return c
		}
	}
	return nil
}

func isAbsoluteHTTP(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
