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

type BlogReadStore interface {
	SearchPage(ctx context.Context, f ListFilters, offset, limit int) ([]*BlogView, error)
	Count(ctx context.Context, f ListFilters) (int, error)
	FindBySlug(ctx context.Context, slug string) (*BlogView, error)
}

type BlogQueries interface {
	List(ctx context.Context, req ListRequest) (*BlogPage, error)
	GetBySlug(ctx context.Context, slug string) (*BlogView, error)
}

type blogQueriesImpl struct {
	store  BlogReadStore
	cache  *memcache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewBlogQueries(store BlogReadStore, cache *memcache.Cache, ttl time.Duration, logger *slog.Logger) BlogQueries {
	return &blogQueriesImpl{store: store, cache: cache, ttl: ttl, logger: logger}
}

func (q *blogQueriesImpl) List(ctx context.Context, req ListRequest) (*BlogPage, error) {
	value, err := q.cache.GetOrCompute(ctx, q.listKey(req), q.ttl, func(ctx context.Context) (any, error) {
		return q.fetch(ctx, req)
	})
	if err != nil {
		q.logger.Error("blog list degraded to empty result", "error", err)
		zero := 0
		return &BlogPage{Rows: []*BlogView{}, Total: &zero}, nil
	}
	return value.(*BlogPage), nil
}

func (q *blogQueriesImpl) fetch(ctx context.Context, req ListRequest) (*BlogPage, error) {
	limit := ValidateLimit(req.Limit)
	page := ValidatePage(req.Page)

	rows, err := q.store.SearchPage(ctx, req.Filters, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	result := &BlogPage{Rows: rows}
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

func (q *blogQueriesImpl) GetBySlug(ctx context.Context, slug string) (*BlogView, error) {
	view, err := q.store.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *blogQueriesImpl) listKey(req ListRequest) string {
	prefix := "blogs"
	if req.Lightweight {
		prefix = "blogs:lite"
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
