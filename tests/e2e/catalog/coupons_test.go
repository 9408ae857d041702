//go:build e2e

package catalog_test

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"dealstack/internal/handler/dto/response"
	"dealstack/tests/common/dbtest"
	"dealstack/tests/common/httptest"
	"dealstack/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const couponsURL = "/api/coupons"

type listEnvelope struct {
	Data []*response.CouponResponse `json:"data"`
	Meta response.Meta              `json:"meta"`
}

type CatalogSuite struct {
	e2e.SharedSuite
}

func (s *CatalogSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) seedOffers(count int) int64 {
	t := s.T()
	merchantID := dbtest.CreateTestMerchant(t, s.DB, dbtest.MerchantFixture{
		Slug: "acme", Name: "Acme", Description: "Everything store",
	})
	code := "SAVE20"
	for i := 0; i < count; i++ {
		f := dbtest.OfferFixture{MerchantID: merchantID, Title: "Deal", CouponType: "deal"}
		if i%2 == 0 {
			f.CouponType = "code"
			f.Code = &code
		}
		dbtest.CreateTestOffer(t, s.DB, f)
	}
	return merchantID
}

func (s *CatalogSuite) TestListCoupons() {
	s.Run("offset mode pages through all rows", func() {
		t := s.T()
		s.seedOffers(25)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL, nil)
		var page1 listEnvelope
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page1)
		require.Len(t, page1.Data, 20)
		require.NotNil(t, page1.Meta.Total)
		require.Equal(t, 25, *page1.Meta.Total)
		require.Equal(t, 2, page1.Meta.TotalPages)
		require.NotNil(t, page1.Meta.Next)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL+"?page=2", nil)
		var page2 listEnvelope
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page2)
		require.Len(t, page2.Data, 5)
		require.Nil(t, page2.Meta.Next)
		require.NotNil(t, page2.Meta.Prev)
	})

	s.Run("cursor mode walks the same rows without overlap", func() {
		t := s.T()
		s.seedOffers(25)

		// The first, cursorless page is offset mode; its next_cursor is the
		// bootstrap token for the keyset walk.
		seen := map[int64]bool{}
		cursor := ""
		for {
			url := couponsURL + "?limit=10"
			if cursor != "" {
				url += "&cursor=" + cursor
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
			var page listEnvelope
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)

			for _, row := range page.Data {
				require.False(t, seen[row.ID], "row %d served twice", row.ID)
				seen[row.ID] = true
			}
			if page.Meta.NextCursor == "" {
				break
			}
			cursor = page.Meta.NextCursor
		}
		require.Len(t, seen, 25)
	})

	s.Run("type filter and count agree", func() {
		t := s.T()
		s.seedOffers(10)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL+"?type=code", nil)
		var page listEnvelope
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.NotNil(t, page.Meta.Total)
		require.Equal(t, 5, *page.Meta.Total)
		require.Len(t, page.Data, 5)
		for _, row := range page.Data {
			require.Equal(t, "code", row.CouponType)
			require.True(t, row.HasCode)
		}
	})

	s.Run("expired offers drop out of the active listing", func() {
		t := s.T()
		merchantID := dbtest.CreateTestMerchant(t, s.DB, dbtest.MerchantFixture{Slug: "acme", Name: "Acme"})
		past := time.Now().Add(-time.Hour)
		future := time.Now().Add(24 * time.Hour)
		dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{MerchantID: merchantID, Title: "Gone", EndsAt: &past})
		aliveID := dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{MerchantID: merchantID, Title: "Alive", EndsAt: &future})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL+"?status=active", nil)
		var page listEnvelope
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Data, 1)
		require.Equal(t, aliveID, page.Data[0].ID)
	})

	s.Run("empty result is a 200 with one page", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL+"?q=nothing-matches-this", nil)
		var page listEnvelope
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Empty(t, page.Data)
		require.Equal(t, 1, page.Meta.TotalPages)
	})
}

func (s *CatalogSuite) TestGetCoupon() {
	s.Run("round trip by id", func() {
		t := s.T()
		merchantID := dbtest.CreateTestMerchant(t, s.DB, dbtest.MerchantFixture{Slug: "acme", Name: "Acme"})
		id := dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{MerchantID: merchantID, Title: "One deal"})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL+"/"+strconv.FormatInt(id, 10), nil)
		var got response.CouponResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, id, got.ID)
		require.Equal(t, "One deal", got.Title)
		require.Equal(t, "acme", got.MerchantSlug)

		// The detail payload must match the row the listing serves.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL, nil)
		var page listEnvelope
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Data, 1)
		require.Empty(t, cmp.Diff(page.Data[0], &got))
	})

	s.Run("missing id is a 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL+"/999999", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
