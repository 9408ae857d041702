package readstore

import (
	"context"
	"fmt"
	"strings"

	"dealstack/internal/infra"
	"dealstack/internal/pkg/pgconv"
	"dealstack/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const couponSelect = `
	SELECT o.id, o.public_id, o.coupon_type, o.title, o.description, o.code,
	       o.ends_at, o.click_count, o.pinned, o.merchant_id, m.slug, m.name,
	       o.created_at
	FROM offers o
	JOIN merchants m ON m.id = o.merchant_id`

type CouponReadStore struct {
	pool *pgxpool.Pool
}

func NewCouponReadStore(pool *pgxpool.Pool) *CouponReadStore {
	return &CouponReadStore{pool: pool}
}

// couponPredicates renders the shared filter set. The page query and the
// count query of one request must use the identical predicates.
func couponPredicates(f queries.ListFilters, args []any) ([]string, []any) {
	var where []string
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(o.title ILIKE $%d OR o.description ILIKE $%d)", n, n))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		where = append(where, fmt.Sprintf("o.category_id = $%d", len(args)))
	}
	if f.StoreSlug != "" {
		args = append(args, f.StoreSlug)
		where = append(where, fmt.Sprintf("m.slug = $%d", len(args)))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		where = append(where, fmt.Sprintf("o.coupon_type = $%d", len(args)))
	}
	switch f.Status {
	case "active":
		where = append(where, "(o.ends_at IS NULL OR o.ends_at > now())")
	case "expired":
		where = append(where, "o.ends_at <= now()")
	}
	if f.Locale != "" {
		args = append(args, f.Locale)
		where = append(where, fmt.Sprintf("o.locale = $%d", len(args)))
	}
	return where, args
}

func couponOrder(sort string) string {
	switch sort {
	case queries.SortEndingSoon:
		return "o.ends_at ASC NULLS LAST, o.id DESC"
	case queries.SortPopular:
		return "o.click_count DESC, o.id DESC"
	case queries.SortPinned:
		return "o.pinned DESC, o.created_at DESC, o.id DESC"
	default:
		return "o.created_at DESC, o.id DESC"
	}
}

func (r *CouponReadStore) SearchPage(ctx context.Context, f queries.ListFilters, offset, limit int) ([]*queries.CouponView, error) {
	where, args := couponPredicates(f, nil)
	sql := couponSelect
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit, offset)
	sql += fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", couponOrder(f.Sort), len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search coupons", err)
	}
	defer rows.Close()

	return collectCoupons(rows)
}

func (r *CouponReadStore) Count(ctx context.Context, f queries.ListFilters) (int, error) {
	where, args := couponPredicates(f, nil)
	sql := "SELECT count(*) FROM offers o JOIN merchants m ON m.id = o.merchant_id"
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count coupons", err)
	}
	return total, nil
}

// SearchKeyset replaces the offset with an id bound and fixes the order
// to id DESC. lastID 0 means no bound (first page).
func (r *CouponReadStore) SearchKeyset(ctx context.Context, f queries.ListFilters, lastID int64, limit int) ([]*queries.CouponView, error) {
	where, args := couponPredicates(f, nil)
	if lastID > 0 {
		args = append(args, lastID)
		where = append(where, fmt.Sprintf("o.id < $%d", len(args)))
	}

	sql := couponSelect
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit)
	sql += fmt.Sprintf(" ORDER BY o.id DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search coupons by keyset", err)
	}
	defer rows.Close()

	return collectCoupons(rows)
}

func (r *CouponReadStore) FindByID(ctx context.Context, id int64) (*queries.CouponView, error) {
	row := r.pool.QueryRow(ctx, couponSelect+" WHERE o.id = $1", id)
	view, err := scanCoupon(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}
	return view, nil
}

func (r *CouponReadStore) FindByPublicID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	row := r.pool.QueryRow(ctx, couponSelect+" WHERE o.public_id = $1", id)
	view, err := scanCoupon(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by public ID", err)
	}
	return view, nil
}

func collectCoupons(rows pgx.Rows) ([]*queries.CouponView, error) {
	views := []*queries.CouponView{}
	for rows.Next() {
		view, err := scanCoupon(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon rows", err)
	}
	return views, nil
}

func scanCoupon(row pgx.Row) (*queries.CouponView, error) {
	var (
		v      queries.CouponView
		code   pgtype.Text
		endsAt pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.PublicID, &v.CouponType, &v.Title, &v.Description, &code,
		&endsAt, &v.ClickCount, &v.Pinned, &v.MerchantID, &v.MerchantSlug,
		&v.MerchantName, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.HasCode = code.Valid && code.String != ""
	v.EndsAt = pgconv.TimePtrFromPgtype(endsAt)
	return &v, nil
}
