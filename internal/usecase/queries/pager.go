package queries

import (
	"context"
)

// couponPageProducer is the seam between the two pagination strategies.
// Offset and keyset pagination are separate implementations selected by
// the presence of a cursor, not branches inside one function.
type couponPageProducer interface {
	produce(ctx context.Context, req ListRequest) (*CouponPage, error)
}

func selectCouponPager(store CouponReadStore, req ListRequest) couponPageProducer {
	if req.Cursor != "" {
		return &cursorCouponPager{store: store}
	}
	return &offsetCouponPager{store: store}
}

// offsetCouponPager serves lightweight and offset mode. Lightweight skips
// the count query and reports len(rows) as a lower-bound total.
type offsetCouponPager struct {
	store CouponReadStore
}

func (p *offsetCouponPager) produce(ctx context.Context, req ListRequest) (*CouponPage, error) {
	limit := ValidateLimit(req.Limit)
	page := ValidatePage(req.Page)
	offset := (page - 1) * limit

	rows, err := p.store.SearchPage(ctx, req.Filters, offset, limit)
	if err != nil {
		return nil, err
	}

	result := &CouponPage{Rows: rows}
	switch {
	case req.Lightweight:
		n := len(rows)
		result.Total = &n
	case req.SkipCount:
		// deliberate: navigation links are not needed for this caller
	default:
		total, err := p.store.Count(ctx, req.Filters)
		if err != nil {
			return nil, err
		}
		result.Total = &total
	}

	// A full page at the recency order also carries a keyset continuation
	// token, so a client can bootstrap a cursor walk from a plain list
	// request. Other sort orders cannot be resumed by an id comparison.
	if len(rows) == limit && (req.Filters.Sort == "" || req.Filters.Sort == SortNewest) {
		last := rows[len(rows)-1]
		key := last.CreatedAt.UnixMicro()
		result.NextCursor = EncodeCursor(last.ID, &key)
	}
	return result, nil
}

// cursorCouponPager serves keyset mode: same predicates, id < last-seen id
// instead of an offset, order fixed to id DESC. It fetches exactly limit
// rows and keeps the historical hasMore heuristic (see CouponPage).
type cursorCouponPager struct {
	store CouponReadStore
}

func (p *cursorCouponPager) produce(ctx context.Context, req ListRequest) (*CouponPage, error) {
	limit := ValidateLimit(req.Limit)

	var lastID int64
	if c := DecodeCursor(req.Cursor); c != nil {
		lastID = c.ID
	}

	rows, err := p.store.SearchKeyset(ctx, req.Filters, lastID, limit)
	if err != nil {
		return nil, err
	}

	result := &CouponPage{
		Rows:    rows,
		HasMore: len(rows) == limit,
	}
	if len(rows) > 0 && result.HasMore {
		last := rows[len(rows)-1]
		key := last.CreatedAt.UnixMicro()
		result.NextCursor = EncodeCursor(last.ID, &key)
	}
	return result, nil
}
