package writerepo

import (
	"context"

	"dealstack/internal/domain/offer"
	"dealstack/internal/infra"
	"dealstack/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const offerSelect = `
	SELECT o.id, o.public_id, o.coupon_type, o.title, o.description, o.code,
	       o.ends_at, o.click_count, o.merchant_id, m.slug
	FROM offers o
	JOIN merchants m ON m.id = o.merchant_id`

type OfferRepository struct {
	pool *pgxpool.Pool
}

func NewOfferRepository(pool *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{pool: pool}
}

func (r *OfferRepository) FindByID(ctx context.Context, id int64) (*offer.Canonical, error) {
	row := r.pool.QueryRow(ctx, offerSelect+" WHERE o.id = $1", id)
	return scanCanonical(row)
}

func (r *OfferRepository) FindByPublicID(ctx context.Context, id uuid.UUID) (*offer.Canonical, error) {
	row := r.pool.QueryRow(ctx, offerSelect+" WHERE o.public_id = $1", id)
	return scanCanonical(row)
}

// IncrementClickCount bumps the counter in a single statement so
// concurrent clicks serialize in the store, not in this process.
func (r *OfferRepository) IncrementClickCount(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		"UPDATE offers SET click_count = click_count + 1 WHERE id = $1 RETURNING click_count", id,
	).Scan(&count)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to increment click count", err)
	}
	return count, nil
}

func scanCanonical(row pgx.Row) (*offer.Canonical, error) {
	var (
		c      offer.Canonical
		code   pgtype.Text
		endsAt pgtype.Timestamptz
	)
	err := row.Scan(
		&c.ID, &c.PublicID, &c.CouponType, &c.Title, &c.Description, &code,
		&endsAt, &c.ClickCount, &c.MerchantID, &c.MerchantSlug,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer", err)
	}
	c.Code = pgconv.StringPtrFromPgtype(code)
	c.EndsAt = pgconv.TimePtrFromPgtype(endsAt)
	return &c, nil
}
