package writerepo

import (
	"context"

	"dealstack/internal/infra"
	"dealstack/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

// Write persists one click audit record. Callers treat failure as
// best-effort: the worker logs and drops, never retries.
func (r *AuditRepository) Write(ctx context.Context, rec commands.AuditRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO click_audits
			(offer_ref, merchant_id, client_ip, user_agent, referrer, platform,
			 source, block_kind, block_index, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.OfferRef, rec.MerchantID, rec.ClientIP, rec.UserAgent, rec.Referrer,
		rec.Platform, rec.Source, nilIfEmpty(rec.BlockKind), rec.BlockIndex, rec.OccurredAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to write click audit", err)
	}
	return nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
