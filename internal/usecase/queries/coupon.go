package queries

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"dealstack/internal/infra"
	"dealstack/internal/pkg/cachekey"
	"dealstack/internal/pkg/memcache"

	"github.com/google/uuid"
)

type CouponReadStore interface {
	SearchPage(ctx context.Context, f ListFilters, offset, limit int) ([]*CouponView, error)
	Count(ctx context.Context, f ListFilters) (int, error)
	SearchKeyset(ctx context.Context, f ListFilters, lastID int64, limit int) ([]*CouponView, error)
	FindByID(ctx context.Context, id int64) (*CouponView, error)
	FindByPublicID(ctx context.Context, id uuid.UUID) (*CouponView, error)
}

type CouponQueries interface {
	List(ctx context.Context, req ListRequest) (*CouponPage, error)
	GetByID(ctx context.Context, id int64) (*CouponView, error)
	GetByPublicID(ctx context.Context, id uuid.UUID) (*CouponView, error)
}

type couponQueriesImpl struct {
	store  CouponReadStore
	cache  *memcache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewCouponQueries(store CouponReadStore, cache *memcache.Cache, ttl time.Duration, logger *slog.Logger) CouponQueries {
	return &couponQueriesImpl{store: store, cache: cache, ttl: ttl, logger: logger}
}

// List runs the coupon list engine. Lightweight and offset results are
// memoized in the TTL cache; cursor requests bypass the cache because the
// cursor is not part of the cache key. A store failure on the cached
// (offset) path degrades to an empty page rather than surfacing;
// cursor-mode errors propagate so the caller can decide.
func (q *couponQueriesImpl) List(ctx context.Context, req ListRequest) (*CouponPage, error) {
	pager := selectCouponPager(q.store, req)

	if req.Cursor != "" {
		return pager.produce(ctx, req)
	}

	value, err := q.cache.GetOrCompute(ctx, q.listKey(req), q.ttl, func(ctx context.Context) (any, error) {
		return pager.produce(ctx, req)
	})
	if err != nil {
		q.logger.Error("coupon list degraded to empty result", "error", err)
		zero := 0
		return &CouponPage{Rows: []*CouponView{}, Total: &zero}, nil
	}
	return value.(*CouponPage), nil
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id int64) (*CouponView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *couponQueriesImpl) GetByPublicID(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	view, err := q.store.FindByPublicID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *couponQueriesImpl) listKey(req ListRequest) string {
	prefix := "coupons"
	if req.Lightweight {
		prefix = "coupons:lite"
	}
	// The canonical key fields do not cover the store filter, so it is
	// folded into the prefix to keep per-store lists from colliding.
	if req.Filters.StoreSlug != "" {
		prefix += ":store:" + req.Filters.StoreSlug
	}
	var category string
	if req.Filters.CategoryID != nil {
		category = strconv.FormatInt(*req.Filters.CategoryID, 10)
	}
	return cachekey.Build(prefix, cachekey.Params{
		Page:     strconv.Itoa(req.Page),
		Limit:    strconv.Itoa(req.Limit),
		Query:    req.Filters.Query,
		Category: category,
		Type:     req.Filters.Type,
		Sort:     req.Filters.Sort,
		Locale:   req.Filters.Locale,
		Status:   req.Filters.Status,
	})
}
