package queries

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"dealstack/internal/infra"
	"dealstack/internal/pkg/cachekey"
	"dealstack/internal/pkg/memcache"
)

type MerchantReadStore interface {
	SearchPage(ctx context.Context, f ListFilters, offset, limit int) ([]*MerchantView, error)
	Count(ctx context.Context, f ListFilters) (int, error)
	FindBySlug(ctx context.Context, slug string) (*MerchantView, error)
}

type MerchantQueries interface {
	List(ctx context.Context, req ListRequest) (*MerchantPage, error)
	GetBySlug(ctx context.Context, slug string) (*MerchantView, error)
}

type merchantQueriesImpl struct {
	store  MerchantReadStore
	cache  *memcache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewMerchantQueries(store MerchantReadStore, cache *memcache.Cache, ttl time.Duration, logger *slog.Logger) MerchantQueries {
	return &merchantQueriesImpl{store: store, cache: cache, ttl: ttl, logger: logger}
}

// List serves the store directory; offset and lightweight mode only, no
// keyset pagination. Store failures degrade to an empty page.
func (q *merchantQueriesImpl) List(ctx context.Context, req ListRequest) (*MerchantPage, error) {
	value, err := q.cache.GetOrCompute(ctx, q.listKey(req), q.ttl, func(ctx context.Context) (any, error) {
		return q.fetch(ctx, req)
	})
	if err != nil {
		q.logger.Error("store list degraded to empty result", "error", err)
		zero := 0
		return &MerchantPage{Rows: []*MerchantView{}, Total: &zero}, nil
	}
	return value.(*MerchantPage), nil
}

func (q *merchantQueriesImpl) fetch(ctx context.Context, req ListRequest) (*MerchantPage, error) {
	limit := ValidateLimit(req.Limit)
	page := ValidatePage(req.Page)

	rows, err := q.store.SearchPage(ctx, req.Filters, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	result := &MerchantPage{Rows: rows}
	switch {
	case req.Lightweight:
		n := len(rows)
		result.Total = &n
	case req.SkipCount:
	default:
		total, err := q.store.Count(ctx, req.Filters)
		if err != nil {
			return nil, err
		}
		result.Total = &total
	}
	return result, nil
}

func (q *merchantQueriesImpl) GetBySlug(ctx context.Context, slug string) (*MerchantView, error) {
	view, err := q.store.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *merchantQueriesImpl) listKey(req ListRequest) string {
	prefix := "stores"
	if req.Lightweight {
		prefix = "stores:lite"
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
