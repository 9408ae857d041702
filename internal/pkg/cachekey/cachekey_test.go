//go:build unit

package cachekey_test

import (
	"testing"

	"dealstack/internal/pkg/cachekey"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	t.Run("fields serialize in canonical order", func(t *testing.T) {
		got := cachekey.Build("coupons", cachekey.Params{
			Page:     "2",
			Limit:    "20",
			Query:    "pizza",
			Category: "7",
			Type:     "code",
			Sort:     "newest",
			Locale:   "en",
			Status:   "active",
		})
		assert.Equal(t, "coupons:page=2&limit=20&q=pizza&category=7&type=code&sort=newest&locale=en&status=active", got)
	})

	t.Run("identical params produce identical keys", func(t *testing.T) {
		p := cachekey.Params{Page: "1", Limit: "20", Query: "a b"}
		assert.Equal(t, cachekey.Build("coupons", p), cachekey.Build("coupons", p))
	})

	t.Run("missing fields serialize as defaults, never omitted", func(t *testing.T) {
		got := cachekey.Build("stores", cachekey.Params{})
		assert.Equal(t, "stores:page=0&limit=0&q=&category=&type=&sort=&locale=&status=", got)
	})

	t.Run("unparsable page and limit coerce to zero", func(t *testing.T) {
		got := cachekey.Build("coupons", cachekey.Params{Page: "abc", Limit: "-"})
		assert.Equal(t, "coupons:page=0&limit=0&q=&category=&type=&sort=&locale=&status=", got)
	})

	t.Run("values are URL-escaped", func(t *testing.T) {
		got := cachekey.Build("coupons", cachekey.Params{Page: "1", Limit: "20", Query: "50% off & more"})
		assert.Contains(t, got, "q=50%25+off+%26+more")
	})

	t.Run("every field is key-sensitive", func(t *testing.T) {
		base := cachekey.Params{Page: "1", Limit: "20"}
		variants := []cachekey.Params{
			{Page: "2", Limit: "20"},
			{Page: "1", Limit: "50"},
			{Page: "1", Limit: "20", Query: "x"},
			{Page: "1", Limit: "20", Category: "3"},
			{Page: "1", Limit: "20", Type: "deal"},
			{Page: "1", Limit: "20", Sort: "popular"},
			{Page: "1", Limit: "20", Locale: "fr"},
			{Page: "1", Limit: "20", Status: "expired"},
		}
		baseKey := cachekey.Build("coupons", base)
		for _, v := range variants {
			assert.NotEqual(t, baseKey, cachekey.Build("coupons", v))
		}
	})

	t.Run("prefix separates key spaces", func(t *testing.T) {
		p := cachekey.Params{Page: "1", Limit: "20"}
		assert.NotEqual(t, cachekey.Build("coupons", p), cachekey.Build("stores", p))
	})
}
