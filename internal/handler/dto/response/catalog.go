package response

import (
	"dealstack/internal/usecase/queries"
)

type CouponResponse struct {
	ID           int64  `json:"id"`
	PublicID     string `json:"public_id"`
	CouponType   string `json:"coupon_type"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	HasCode      bool   `json:"has_code"`
	EndsAt       *int64 `json:"ends_at,omitempty"`
	ClickCount   int64  `json:"click_count"`
	Pinned       bool   `json:"pinned"`
	MerchantSlug string `json:"merchant_slug"`
	MerchantName string `json:"merchant_name"`
	CreatedAt    int64  `json:"created_at"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	r := &CouponResponse{
		ID:           v.ID,
		PublicID:     v.PublicID.String(),
		CouponType:   v.CouponType,
		Title:        v.Title,
		Description:  v.Description,
		HasCode:      v.HasCode,
		ClickCount:   v.ClickCount,
		Pinned:       v.Pinned,
		MerchantSlug: v.MerchantSlug,
		MerchantName: v.MerchantName,
		CreatedAt:    v.CreatedAt.Unix(),
	}
	if v.EndsAt != nil {
		ts := v.EndsAt.Unix()
		r.EndsAt = &ts
	}
	return r
}

func FromCouponList(items []*queries.CouponView) []*CouponResponse {
	res := make([]*CouponResponse, len(items))
	for i, it := range items {
		res[i] = FromCouponView(it)
	}
	return res
}

type MerchantResponse struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Locale      string `json:"locale"`
	OfferCount  int64  `json:"offer_count"`
	CreatedAt   int64  `json:"created_at"`
}

func FromMerchantView(v *queries.MerchantView) *MerchantResponse {
	return &MerchantResponse{
		ID:          v.ID,
		Slug:        v.Slug,
		Name:        v.Name,
		Description: v.Description,
		Locale:      v.Locale,
		OfferCount:  v.OfferCount,
		CreatedAt:   v.CreatedAt.Unix(),
	}
}

func FromMerchantList(items []*queries.MerchantView) []*MerchantResponse {
	res := make([]*MerchantResponse, len(items))
	for i, it := range items {
		res[i] = FromMerchantView(it)
	}
	return res
}

type BlogResponse struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Locale      string `json:"locale"`
	PublishedAt *int64 `json:"published_at,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

func FromBlogView(v *queries.BlogView) *BlogResponse {
	r := &BlogResponse{
		ID:        v.ID,
		Slug:      v.Slug,
		Title:     v.Title,
		Excerpt:   v.Excerpt,
		Locale:    v.Locale,
		CreatedAt: v.CreatedAt.Unix(),
	}
	if v.PublishedAt != nil {
		ts := v.PublishedAt.Unix()
		r.PublishedAt = &ts
	}
	return r
}

func FromBlogList(items []*queries.BlogView) []*BlogResponse {
	res := make([]*BlogResponse, len(items))
	for i, it := range items {
		res[i] = FromBlogView(it)
	}
	return res
}

type ClickResponse struct {
	OK          bool    `json:"ok"`
	Code        *string `json:"code"`
	RedirectURL *string `json:"redirect_url"`
	Message     string  `json:"message"`
}
