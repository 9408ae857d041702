//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"dealstack/internal/domain/offer"
	"dealstack/internal/infra"
	"dealstack/internal/pkg/clock"
	"dealstack/internal/usecase/commands"
	commandsmock "dealstack/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type clickFixture struct {
	offers    *commandsmock.MockOfferRepository
	merchants *commandsmock.MockMerchantRepository
	limiter   *commandsmock.MockClickLimiter
	audit     *commandsmock.MockAuditQueue
	clock     *clock.MockClock
	cmds      commands.ClickCommands
}

func newClickFixture(t *testing.T) *clickFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &clickFixture{
		offers:    commandsmock.NewMockOfferRepository(ctrl),
		merchants: commandsmock.NewMockMerchantRepository(ctrl),
		limiter:   commandsmock.NewMockClickLimiter(ctrl),
		audit:     commandsmock.NewMockAuditQueue(ctrl),
		clock:     clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)),
	}
	f.cmds = commands.NewClickCommands(f.offers, f.merchants, f.limiter, f.audit, f.clock, discardLogger())
	return f
}

func canonicalFixture() *offer.Canonical {
	code := "SAVE20"
	return &offer.Canonical{
		ID:           101,
		PublicID:     uuid.New(),
		CouponType:   "code",
		Title:        "20% off",
		Code:         &code,
		ClickCount:   10,
		MerchantID:   42,
		MerchantSlug: "acme",
	}
}

func clickMerchantFixture() *offer.Merchant {
	affiliate := "https://aff.example.com/acme"
	website := "https://acme.example.com"
	blockURL := "https://acme.example.com/top"
	return &offer.Merchant{
		ID:           42,
		Slug:         "acme",
		Name:         "Acme",
		AffiliateURL: &affiliate,
		WebsiteURL:   &website,
		H2Blocks: []offer.Block{
			{Heading: "Top deal", Description: "First h2", RedirectURL: &blockURL},
		},
		H3Blocks: []offer.Block{
			{Heading: "Small deal", Description: "First h3"},
		},
	}
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows in result set"), infra.KindNotFound)
}

// =============================================================================
// Canonical clicks
// =============================================================================

func TestClick_Canonical(t *testing.T) {
	ctx := context.Background()
	in := commands.ClickInput{OfferRef: "101", ClientIP: "1.2.3.4", UserAgent: "agent", Referrer: "https://ref", Platform: "web"}

	t.Run("numeric id increments and reveals the code", func(t *testing.T) {
		f := newClickFixture(t)
		row := canonicalFixture()

		f.limiter.EXPECT().Allow("1.2.3.4|101").Return(true)
		f.offers.EXPECT().FindByID(gomock.Any(), int64(101)).Return(row, nil)
		f.merchants.EXPECT().FindByID(gomock.Any(), int64(42)).Return(clickMerchantFixture(), nil)
		f.offers.EXPECT().IncrementClickCount(gomock.Any(), int64(101)).Return(int64(11), nil)
		f.audit.EXPECT().Enqueue(gomock.Any()).DoAndReturn(func(rec commands.AuditRecord) bool {
			assert.Equal(t, "101", rec.OfferRef)
			assert.Equal(t, int64(42), rec.MerchantID)
			assert.Equal(t, "canonical", rec.Source)
			assert.Nil(t, rec.BlockIndex)
			assert.Equal(t, f.clock.Now(), rec.OccurredAt)
			return true
		})

		result, err := f.cmds.Click(ctx, in)
		require.NoError(t, err)
		require.NotNil(t, result.Code)
		assert.Equal(t, "SAVE20", *result.Code)
		require.NotNil(t, result.ClickCount)
		assert.Equal(t, int64(11), *result.ClickCount)
		require.NotNil(t, result.RedirectURL)
		assert.Equal(t, "https://aff.example.com/acme", *result.RedirectURL)
		assert.Equal(t, "canonical", result.Source)
	})

	t.Run("UUID reference resolves by public id", func(t *testing.T) {
		f := newClickFixture(t)
		row := canonicalFixture()
		uuidIn := commands.ClickInput{OfferRef: row.PublicID.String(), ClientIP: "1.2.3.4"}

		f.limiter.EXPECT().Allow("1.2.3.4|" + row.PublicID.String()).Return(true)
		f.offers.EXPECT().FindByPublicID(gomock.Any(), row.PublicID).Return(row, nil)
		f.merchants.EXPECT().FindByID(gomock.Any(), int64(42)).Return(clickMerchantFixture(), nil)
		f.offers.EXPECT().IncrementClickCount(gomock.Any(), int64(101)).Return(int64(11), nil)
		f.audit.EXPECT().Enqueue(gomock.Any()).Return(true)

		result, err := f.cmds.Click(ctx, uuidIn)
		require.NoError(t, err)
		assert.Equal(t, "canonical", result.Source)
	})

	t.Run("missing merchant still counts the click", func(t *testing.T) {
		f := newClickFixture(t)
		row := canonicalFixture()

		f.limiter.EXPECT().Allow(gomock.Any()).Return(true)
		f.offers.EXPECT().FindByID(gomock.Any(), int64(101)).Return(row, nil)
		f.merchants.EXPECT().FindByID(gomock.Any(), int64(42)).Return(nil, notFoundErr("store not found"))
		f.offers.EXPECT().IncrementClickCount(gomock.Any(), int64(101)).Return(int64(11), nil)
		f.audit.EXPECT().Enqueue(gomock.Any()).Return(true)

		result, err := f.cmds.Click(ctx, in)
		require.NoError(t, err)
		assert.Nil(t, result.RedirectURL)
		require.NotNil(t, result.ClickCount)
	})

	t.Run("increment failure fails the click", func(t *testing.T) {
		f := newClickFixture(t)
		row := canonicalFixture()

		f.limiter.EXPECT().Allow(gomock.Any()).Return(true)
		f.offers.EXPECT().FindByID(gomock.Any(), int64(101)).Return(row, nil)
		f.merchants.EXPECT().FindByID(gomock.Any(), int64(42)).Return(clickMerchantFixture(), nil)
		f.offers.EXPECT().IncrementClickCount(gomock.Any(), int64(101)).
			Return(int64(0), infra.WrapRepoErr("failed to increment click count", errDBConnectionLost))

		_, err := f.cmds.Click(ctx, in)
		require.Error(t, err)
	})

	t.Run("full audit queue never fails the click", func(t *testing.T) {
		f := newClickFixture(t)
		row := canonicalFixture()

		f.limiter.EXPECT().Allow(gomock.Any()).Return(true)
		f.offers.EXPECT().FindByID(gomock.Any(), int64(101)).Return(row, nil)
		f.merchants.EXPECT().FindByID(gomock.Any(), int64(42)).Return(clickMerchantFixture(), nil)
		f.offers.EXPECT().IncrementClickCount(gomock.Any(), int64(101)).Return(int64(11), nil)
		f.audit.EXPECT().Enqueue(gomock.Any()).Return(false)

		result, err := f.cmds.Click(ctx, in)
		require.NoError(t, err)
		require.NotNil(t, result.ClickCount)
	})
}

// =============================================================================
// Synthetic clicks
// =============================================================================

func TestClick_Synthetic(t *testing.T) {
	ctx := context.Background()

	t.Run("trending reference resolves a block, never increments", func(t *testing.T) {
		f := newClickFixture(t)
		in := commands.ClickInput{OfferRef: "trending-42-1", ClientIP: "1.2.3.4"}

		f.limiter.EXPECT().Allow("1.2.3.4|trending-42-1").Return(true)
		f.merchants.EXPECT().FindByID(gomock.Any(), int64(42)).Return(clickMerchantFixture(), nil)
		f.audit.EXPECT().Enqueue(gomock.Any()).DoAndReturn(func(rec commands.AuditRecord) bool {
			assert.Equal(t, "trending", rec.Source)
			assert.Equal(t, "h2", rec.BlockKind)
			require.NotNil(t, rec.BlockIndex)
			assert.Equal(t, 0, *rec.BlockIndex)
			return true
		})
		// no IncrementClickCount expectation: synthetic offers are not counted

		result, err := f.cmds.Click(ctx, in)
		require.NoError(t, err)
		assert.Nil(t, result.ClickCount)
		assert.Nil(t, result.Code)
		require.NotNil(t, result.RedirectURL)
		assert.Equal(t, "https://acme.example.com/top", *result.RedirectURL)
		assert.Equal(t, "trending", result.Source)
	})

	t.Run("block without own URL falls back to the affiliate link", func(t *testing.T) {
		f := newClickFixture(t)
		in := commands.ClickInput{OfferRef: "h3-42-0", ClientIP: "1.2.3.4"}

		f.limiter.EXPECT().Allow(gomock.Any()).Return(true)
		f.merchants.EXPECT().FindByID(gomock.Any(), int64(42)).Return(clickMerchantFixture(), nil)
		f.audit.EXPECT().Enqueue(gomock.Any()).Return(true)

		result, err := f.cmds.Click(ctx, in)
		require.NoError(t, err)
		require.NotNil(t, result.RedirectURL)
		assert.Equal(t, "https://aff.example.com/acme", *result.RedirectURL)
		assert.Equal(t, "h3", result.Source)
	})

	t.Run("numeric id missing canonically falls through to legacy", func(t *testing.T) {
		f := newClickFixture(t)
		in := commands.ClickInput{OfferRef: "42", ClientIP: "1.2.3.4"}

		f.limiter.EXPECT().Allow(gomock.Any()).Return(true)
		f.offers.EXPECT().FindByID(gomock.Any(), int64(42)).Return(nil, notFoundErr("coupon not found"))
		f.merchants.EXPECT().FindByID(gomock.Any(), int64(42)).Return(clickMerchantFixture(), nil)
		f.audit.EXPECT().Enqueue(gomock.Any()).Return(true)

		result, err := f.cmds.Click(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "legacy", result.Source)
		assert.Nil(t, result.ClickCount)
	})

	t.Run("block index out of range is not found", func(t *testing.T) {
		f := newClickFixture(t)
		in := commands.ClickInput{OfferRef: "h3-42-9", ClientIP: "1.2.3.4"}

		f.limiter.EXPECT().Allow(gomock.Any()).Return(true)
		f.merchants.EXPECT().FindByID(gomock.Any(), int64(42)).Return(clickMerchantFixture(), nil)

		_, err := f.cmds.Click(ctx, in)
		require.ErrorIs(t, err, commands.ErrOfferNotFound)
	})

	t.Run("missing merchant is not found", func(t *testing.T) {
		f := newClickFixture(t)
		in := commands.ClickInput{OfferRef: "trending-42-1", ClientIP: "1.2.3.4"}

		f.limiter.EXPECT().Allow(gomock.Any()).Return(true)
		f.merchants.EXPECT().FindByID(gomock.Any(), int64(42)).Return(nil, notFoundErr("store not found"))

		_, err := f.cmds.Click(ctx, in)
		require.ErrorIs(t, err, commands.ErrOfferNotFound)
	})

	t.Run("unrecognized reference is not found", func(t *testing.T) {
		f := newClickFixture(t)
		in := commands.ClickInput{OfferRef: "not-an-offer", ClientIP: "1.2.3.4"}

		f.limiter.EXPECT().Allow(gomock.Any()).Return(true)

		_, err := f.cmds.Click(ctx, in)
		require.ErrorIs(t, err, commands.ErrOfferNotFound)
	})
}

// =============================================================================
// Rate limiting
// =============================================================================

func TestClick_RateLimited(t *testing.T) {
	ctx := context.Background()

	t.Run("rejected before any lookup", func(t *testing.T) {
		f := newClickFixture(t)

		f.limiter.EXPECT().Allow("1.2.3.4|101").Return(false)

		_, err := f.cmds.Click(ctx, commands.ClickInput{OfferRef: "101", ClientIP: "1.2.3.4"})
		require.ErrorIs(t, err, commands.ErrRateLimited)
	})

	t.Run("limiter key pairs client IP with the offer reference", func(t *testing.T) {
		f := newClickFixture(t)

		f.limiter.EXPECT().Allow("9.9.9.9|trending-42-1").Return(false)

		_, err := f.cmds.Click(ctx, commands.ClickInput{OfferRef: "trending-42-1", ClientIP: "9.9.9.9"})
		require.ErrorIs(t, err, commands.ErrRateLimited)
	})
}
