//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dealstack/internal/infra"
	"dealstack/internal/pkg/clock"
	"dealstack/internal/pkg/memcache"
	"dealstack/internal/usecase/queries"
	queriesmock "dealstack/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMerchantQueries(t *testing.T) (*queriesmock.MockMerchantReadStore, queries.MerchantQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockMerchantReadStore(ctrl)
	cache := memcache.New(clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)))
	return store, queries.NewMerchantQueries(store, cache, time.Minute, discardLogger())
}

func merchantViewFixture(id int64) *queries.MerchantView {
	return &queries.MerchantView{
		ID:         id,
		Slug:       "acme",
		Name:       "Acme",
		Locale:     "en",
		OfferCount: 5,
		CreatedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestMerchantQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("page and count share the request filters", func(t *testing.T) {
		store, q := newMerchantQueries(t)
		filters := queries.ListFilters{Sort: queries.SortPopular}

		store.EXPECT().SearchPage(gomock.Any(), filters, 0, 20).
			Return([]*queries.MerchantView{merchantViewFixture(1)}, nil)
		store.EXPECT().Count(gomock.Any(), filters).Return(12, nil)

		page, err := q.List(ctx, queries.ListRequest{Filters: filters, Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.Len(t, page.Rows, 1)
		require.NotNil(t, page.Total)
		assert.Equal(t, 12, *page.Total)
	})

	t.Run("lightweight mode reports row count without a count query", func(t *testing.T) {
		store, q := newMerchantQueries(t)

		store.EXPECT().SearchPage(gomock.Any(), gomock.Any(), 0, 20).
			Return([]*queries.MerchantView{merchantViewFixture(1), merchantViewFixture(2)}, nil)

		page, err := q.List(ctx, queries.ListRequest{Page: 1, Limit: 20, Lightweight: true})
		require.NoError(t, err)
		require.NotNil(t, page.Total)
		assert.Equal(t, 2, *page.Total)
	})

	t.Run("store failure degrades to an empty page", func(t *testing.T) {
		store, q := newMerchantQueries(t)

		store.EXPECT().SearchPage(gomock.Any(), gomock.Any(), 0, 20).Return(nil, errDBConnectionLost)

		page, err := q.List(ctx, queries.ListRequest{Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.Empty(t, page.Rows)
		require.NotNil(t, page.Total)
		assert.Equal(t, 0, *page.Total)
	})

	t.Run("repeat request within the ttl hits the cache", func(t *testing.T) {
		store, q := newMerchantQueries(t)
		req := queries.ListRequest{Page: 1, Limit: 20}

		store.EXPECT().SearchPage(gomock.Any(), gomock.Any(), 0, 20).
			Return([]*queries.MerchantView{merchantViewFixture(1)}, nil).Times(1)
		store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil).Times(1)

		first, err := q.List(ctx, req)
		require.NoError(t, err)
		second, err := q.List(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestMerchantQueries_GetBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		store, q := newMerchantQueries(t)
		store.EXPECT().FindBySlug(gomock.Any(), "acme").Return(merchantViewFixture(1), nil)

		view, err := q.GetBySlug(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, "acme", view.Slug)
	})

	t.Run("missing row maps to the not-found sentinel", func(t *testing.T) {
		store, q := newMerchantQueries(t)
		store.EXPECT().FindBySlug(gomock.Any(), "nope").
			Return(nil, infra.WrapRepoErr("store not found", errors.New("no rows in result set"), infra.KindNotFound))

		_, err := q.GetBySlug(ctx, "nope")
		assert.ErrorIs(t, err, queries.ErrMerchantNotFound)
	})
}
