package writerepo

import (
	"context"
	"errors"

	"dealstack/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres unique_violation
const pgUniqueViolation = "23505"

type SubscriberRepository struct {
	pool *pgxpool.Pool
}

func NewSubscriberRepository(pool *pgxpool.Pool) *SubscriberRepository {
	return &SubscriberRepository{pool: pool}
}

func (r *SubscriberRepository) Insert(ctx context.Context, email, clientIP string) error {
	_, err := r.pool.Exec(ctx,
		"INSERT INTO subscribers (email, client_ip) VALUES ($1, $2)", email, clientIP)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return infra.WrapRepoErr("subscriber already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert subscriber", err)
	}
	return nil
}
