package commands

import (
	"context"
	"time"

	"dealstack/internal/domain/offer"

	"github.com/google/uuid"
)

// Write-side ports stay independent of the read-side query types (CQRS separation)

type OfferRepository interface {
	FindByID(ctx context.Context, id int64) (*offer.Canonical, error)
	FindByPublicID(ctx context.Context, id uuid.UUID) (*offer.Canonical, error)
	// IncrementClickCount is a single atomic store-side increment, never a
	// read-modify-write in the caller. It returns the new count.
	IncrementClickCount(ctx context.Context, id int64) (int64, error)
}

type MerchantRepository interface {
	FindByID(ctx context.Context, id int64) (*offer.Merchant, error)
}

type SubscriberRepository interface {
	Insert(ctx context.Context, email, clientIP string) error
}

// AuditRecord is one best-effort click audit entry.
type AuditRecord struct {
	OfferRef   string
	MerchantID int64
	ClientIP   string
	UserAgent  string
	Referrer   string
	Platform   string
	Source     string // "canonical" | "trending" | "h2" | "h3" | "legacy"
	BlockKind  string
	BlockIndex *int
	OccurredAt time.Time
}

// AuditQueue accepts records without blocking; a full queue drops the
// record. Delivery is at most once.
type AuditQueue interface {
	Enqueue(rec AuditRecord) bool
}

// ClickLimiter is the per-(client, offer) fixed window guard.
type ClickLimiter interface {
	Allow(key string) bool
}
