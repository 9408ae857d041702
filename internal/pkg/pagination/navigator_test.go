//go:build unit

package pagination_test

import (
	"net/url"
	"testing"

	"dealstack/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigate(t *testing.T) {
	t.Run("total pages is ceil(total/limit)", func(t *testing.T) {
		cases := []struct {
			total, limit, want int
		}{
			{100, 20, 5},
			{101, 20, 6},
			{1, 20, 1},
			{20, 20, 1},
			{21, 20, 2},
		}
		for _, c := range cases {
			nav := pagination.Navigate(pagination.Input{BasePath: "/api/coupons", Page: 1, Limit: c.limit, Total: c.total, DefaultLimit: 20})
			assert.Equal(t, c.want, nav.TotalPages, "total=%d limit=%d", c.total, c.limit)
		}
	})

	t.Run("empty result still reports one page with no links", func(t *testing.T) {
		nav := pagination.Navigate(pagination.Input{BasePath: "/api/coupons", Page: 1, Limit: 20, Total: 0, DefaultLimit: 20})
		assert.Equal(t, 1, nav.TotalPages)
		assert.Nil(t, nav.PrevPage)
		assert.Nil(t, nav.NextPage)
		assert.Nil(t, nav.Prev)
		assert.Nil(t, nav.Next)
	})

	t.Run("middle page links both ways", func(t *testing.T) {
		nav := pagination.Navigate(pagination.Input{BasePath: "/api/coupons", Page: 3, Limit: 20, Total: 100, DefaultLimit: 20})
		require.NotNil(t, nav.PrevPage)
		require.NotNil(t, nav.NextPage)
		assert.Equal(t, 2, *nav.PrevPage)
		assert.Equal(t, 4, *nav.NextPage)
		assert.Equal(t, "/api/coupons?page=2", *nav.Prev)
		assert.Equal(t, "/api/coupons?page=4", *nav.Next)
	})

	t.Run("last page has no next", func(t *testing.T) {
		nav := pagination.Navigate(pagination.Input{BasePath: "/api/coupons", Page: 5, Limit: 20, Total: 100, DefaultLimit: 20})
		assert.Nil(t, nav.Next)
		require.NotNil(t, nav.Prev)
	})

	t.Run("page param omitted on first page, limit omitted at default", func(t *testing.T) {
		nav := pagination.Navigate(pagination.Input{BasePath: "/api/coupons", Page: 2, Limit: 20, Total: 100, DefaultLimit: 20})
		require.NotNil(t, nav.Prev)
		assert.Equal(t, "/api/coupons", *nav.Prev)

		nav = pagination.Navigate(pagination.Input{BasePath: "/api/coupons", Page: 1, Limit: 50, Total: 100, DefaultLimit: 20})
		require.NotNil(t, nav.Next)
		assert.Equal(t, "/api/coupons?limit=50&page=2", *nav.Next)
	})

	t.Run("filter params carry onto every link", func(t *testing.T) {
		extra := url.Values{}
		extra.Set("q", "pizza")
		extra.Set("sort", "popular")
		nav := pagination.Navigate(pagination.Input{
			BasePath: "/api/coupons", Page: 2, Limit: 20, Total: 100,
			ExtraParams: extra, DefaultLimit: 20,
		})
		require.NotNil(t, nav.Next)
		assert.Equal(t, "/api/coupons?page=3&q=pizza&sort=popular", *nav.Next)
		assert.Equal(t, "/api/coupons?page=2&q=pizza&sort=popular", nav.Canonical)
	})

	t.Run("external API base rewrites link targets", func(t *testing.T) {
		nav := pagination.Navigate(pagination.Input{
			BasePath: "/api/coupons", Page: 1, Limit: 20, Total: 100,
			DefaultLimit: 20, ExternalAPIBase: "https://api.example.com/",
		})
		require.NotNil(t, nav.Next)
		assert.Equal(t, "https://api.example.com/api/coupons?page=2", *nav.Next)
		assert.Equal(t, "https://api.example.com/api/coupons", nav.Canonical)
	})

	t.Run("canonical origin prefixes when no external base", func(t *testing.T) {
		nav := pagination.Navigate(pagination.Input{
			BasePath: "/api/coupons", Page: 1, Limit: 20, Total: 10,
			DefaultLimit: 20, CanonicalOrigin: "https://example.com",
		})
		assert.Equal(t, "https://example.com/api/coupons", nav.Canonical)
	})
}
