package readstore

import (
	"context"
	"fmt"
	"strings"

	"dealstack/internal/infra"
	"dealstack/internal/pkg/pgconv"
	"dealstack/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const merchantSelect = `
	SELECT m.id, m.slug, m.name, m.description, m.locale,
	       (SELECT count(*) FROM offers o WHERE o.merchant_id = m.id) AS offer_count,
	       m.created_at
	FROM merchants m`

type MerchantReadStore struct {
	pool *pgxpool.Pool
}

func NewMerchantReadStore(pool *pgxpool.Pool) *MerchantReadStore {
	return &MerchantReadStore{pool: pool}
}

func merchantPredicates(f queries.ListFilters, args []any) ([]string, []any) {
	var where []string
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(m.name ILIKE $%d OR m.description ILIKE $%d)", n, n))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		where = append(where, fmt.Sprintf("m.category_id = $%d", len(args)))
	}
	if f.Locale != "" {
		args = append(args, f.Locale)
		where = append(where, fmt.Sprintf("m.locale = $%d", len(args)))
	}
	return where, args
}

func merchantOrder(sort string) string {
	switch sort {
	case queries.SortPopular:
		return "offer_count DESC, m.id DESC"
	case queries.SortNewest:
		return "m.created_at DESC, m.id DESC"
	default:
		return "m.name ASC, m.id DESC"
	}
}

func (r *MerchantReadStore) SearchPage(ctx context.Context, f queries.ListFilters, offset, limit int) ([]*queries.MerchantView, error) {
	where, args := merchantPredicates(f, nil)
	sql := merchantSelect
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit, offset)
	sql += fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", merchantOrder(f.Sort), len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search stores", err)
	}
	defer rows.Close()

	views := []*queries.MerchantView{}
	for rows.Next() {
		view, err := scanMerchant(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan store row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read store rows", err)
	}
	return views, nil
}

func (r *MerchantReadStore) Count(ctx context.Context, f queries.ListFilters) (int, error) {
	where, args := merchantPredicates(f, nil)
	sql := "SELECT count(*) FROM merchants m"
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count stores", err)
	}
	return total, nil
}

func (r *MerchantReadStore) FindBySlug(ctx context.Context, slug string) (*queries.MerchantView, error) {
	row := r.pool.QueryRow(ctx, merchantSelect+" WHERE m.slug = $1", slug)
	view, err := scanMerchant(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find store by slug", err)
	}
	return view, nil
}

func scanMerchant(row pgx.Row) (*queries.MerchantView, error) {
	var v queries.MerchantView
	err := row.Scan(&v.ID, &v.Slug, &v.Name, &v.Description, &v.Locale, &v.OfferCount, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
