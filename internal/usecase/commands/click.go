package commands

import (
	"context"
	"errors"
	"log/slog"

	"dealstack/internal/domain/offer"
	"dealstack/internal/infra"
	"dealstack/internal/pkg/clock"
)

var (
	ErrOfferNotFound = errors.New("offer not found")
	ErrRateLimited   = errors.New("too many clicks, slow down")
)

type ClickInput struct {
	OfferRef  string
	ClientIP  string
	UserAgent string
	Referrer  string
	Platform  string
}

type ClickResult struct {
	Code        *string
	RedirectURL *string
	// ClickCount is the post-increment counter for canonical offers; nil
	// for synthetic ones, which are never counted.
	ClickCount *int64
	Source     string
}

type ClickCommands interface {
	Click(ctx context.Context, in ClickInput) (*ClickResult, error)
}

type clickCommandsImpl struct {
	offers    OfferRepository
	merchants MerchantRepository
	limiter   ClickLimiter
	audit     AuditQueue
	clock     clock.Clock
	logger    *slog.Logger
}

func NewClickCommands(offers OfferRepository, merchants MerchantRepository, limiter ClickLimiter, audit AuditQueue, clk clock.Clock, logger *slog.Logger) ClickCommands {
	return &clickCommandsImpl{
		offers:    offers,
		merchants: merchants,
		limiter:   limiter,
		audit:     audit,
		clock:     clk,
		logger:    logger,
	}
}

// Click runs the full pipeline: rate limit, identifier resolution,
// redirect priority, conditional atomic increment, audit enqueue.
func (c *clickCommandsImpl) Click(ctx context.Context, in ClickInput) (*ClickResult, error) {
	if !c.limiter.Allow(in.ClientIP + "|" + in.OfferRef) {
		return nil, ErrRateLimited
	}

	if ref, ok := offer.ParseCanonical(in.OfferRef); ok {
		result, err := c.clickCanonical(ctx, in, ref)
		if err == nil {
			return result, nil
		}
		// A canonical miss (or lookup failure) is a soft signal to try the
		// composite grammars, not an error in itself.
		if !errors.Is(err, errSoftMiss) {
			return nil, err
		}
	}

	return c.clickSynthetic(ctx, in)
}

// errSoftMiss marks a canonical lookup that should fall through to
// composite parsing.
var errSoftMiss = errors.New("canonical lookup missed")

func (c *clickCommandsImpl) clickCanonical(ctx context.Context, in ClickInput, ref offer.CanonicalRef) (*ClickResult, error) {
	var (
		row *offer.Canonical
		err error
	)
	if ref.ByUUID {
		row, err = c.offers.FindByPublicID(ctx, ref.PublicID)
	} else {
		row, err = c.offers.FindByID(ctx, ref.NumericID)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errSoftMiss
		}
		c.logger.Warn("canonical offer lookup failed, trying composite grammars", "ref", in.OfferRef, "error", err)
		return nil, errSoftMiss
	}

	merchant, err := c.merchants.FindByID(ctx, row.MerchantID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	var aff, web *string
	if merchant != nil {
		aff, web = merchant.AffiliateURL, merchant.WebsiteURL
	}
	redirect := offer.ChooseRedirect(nil, aff, web)

	count, err := c.offers.IncrementClickCount(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	c.enqueueAudit(AuditRecord{
		OfferRef:   in.OfferRef,
		MerchantID: row.MerchantID,
		ClientIP:   in.ClientIP,
		UserAgent:  in.UserAgent,
		Referrer:   in.Referrer,
		Platform:   in.Platform,
		Source:     "canonical",
		OccurredAt: c.clock.Now(),
	})

	return &ClickResult{
		Code:        row.Code,
		RedirectURL: redirect,
		ClickCount:  &count,
		Source:      "canonical",
	}, nil
}

func (c *clickCommandsImpl) clickSynthetic(ctx context.Context, in ClickInput) (*ClickResult, error) {
	id := offer.ParseComposite(in.OfferRef)

	merchantID, source, ok := compositeTarget(id)
	if !ok {
		return nil, ErrOfferNotFound
	}

	merchant, err := c.merchants.FindByID(ctx, merchantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	syn, ok := offer.Synthesize(in.OfferRef, id, merchant)
	if !ok {
		return nil, ErrOfferNotFound
	}

	redirect := offer.ChooseRedirect(syn.RedirectURL, merchant.AffiliateURL, merchant.WebsiteURL)

	idx := syn.BlockIndex
	c.enqueueAudit(AuditRecord{
		OfferRef:   in.OfferRef,
		MerchantID: merchant.ID,
		ClientIP:   in.ClientIP,
		UserAgent:  in.UserAgent,
		Referrer:   in.Referrer,
		Platform:   in.Platform,
		Source:     source,
		BlockKind:  string(syn.Kind),
		BlockIndex: &idx,
		OccurredAt: c.clock.Now(),
	})

	// Synthetic offers never carry a code and are excluded from counter
	// maintenance.
	return &ClickResult{
		RedirectURL: redirect,
		Source:      source,
	}, nil
}

func compositeTarget(id offer.Identifier) (merchantID int64, source string, ok bool) {
	switch ref := id.(type) {
	case offer.TrendingRef:
		return ref.MerchantID, "trending", true
	case offer.BlockRef:
		return ref.MerchantID, string(ref.Kind), true
	case offer.LegacyRef:
		return ref.MerchantID, "legacy", true
	}
	return 0, "", false
}

func (c *clickCommandsImpl) enqueueAudit(rec AuditRecord) {
	if !c.audit.Enqueue(rec) {
		c.logger.Warn("audit queue full, click record dropped", "offer_ref", rec.OfferRef)
	}
}
