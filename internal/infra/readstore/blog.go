package readstore

import (
	"context"
	"fmt"
	"strings"

	"dealstack/internal/infra"
	"dealstack/internal/pkg/pgconv"
	"dealstack/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const blogSelect = `
	SELECT b.id, b.slug, b.title, b.excerpt, b.locale, b.published_at, b.created_at
	FROM blog_posts b`

type BlogReadStore struct {
	pool *pgxpool.Pool
}

func NewBlogReadStore(pool *pgxpool.Pool) *BlogReadStore {
	return &BlogReadStore{pool: pool}
}

func blogPredicates(f queries.ListFilters, args []any) ([]string, []any) {
	// Only published posts are ever listed publicly.
	where := []string{"b.published_at IS NOT NULL"}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(b.title ILIKE $%d OR b.excerpt ILIKE $%d)", n, n))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		where = append(where, fmt.Sprintf("b.category_id = $%d", len(args)))
	}
	if f.Locale != "" {
		args = append(args, f.Locale)
		where = append(where, fmt.Sprintf("b.locale = $%d", len(args)))
	}
	return where, args
}

func (r *BlogReadStore) SearchPage(ctx context.Context, f queries.ListFilters, offset, limit int) ([]*queries.BlogView, error) {
	where, args := blogPredicates(f, nil)
	sql := blogSelect + " WHERE " + strings.Join(where, " AND ")
	args = append(args, limit, offset)
	sql += fmt.Sprintf(" ORDER BY b.published_at DESC, b.id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search blog posts", err)
	}
	defer rows.Close()

	views := []*queries.BlogView{}
	for rows.Next() {
		view, err := scanBlog(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan blog row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read blog rows", err)
	}
	return views, nil
}

func (r *BlogReadStore) Count(ctx context.Context, f queries.ListFilters) (int, error) {
	where, args := blogPredicates(f, nil)
	sql := "SELECT count(*) FROM blog_posts b WHERE " + strings.Join(where, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count blog posts", err)
	}
	return total, nil
}

func (r *BlogReadStore) FindBySlug(ctx context.Context, slug string) (*queries.BlogView, error) {
	row := r.pool.QueryRow(ctx, blogSelect+" WHERE b.slug = $1 AND b.published_at IS NOT NULL", slug)
	view, err := scanBlog(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("blog post not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find blog post by slug", err)
	}
	return view, nil
}

func scanBlog(row pgx.Row) (*queries.BlogView, error) {
	var (
		v           queries.BlogView
		publishedAt pgtype.Timestamptz
	)
	err := row.Scan(&v.ID, &v.Slug, &v.Title, &v.Excerpt, &v.Locale, &publishedAt, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	v.PublishedAt = pgconv.TimePtrFromPgtype(publishedAt)
	return &v, nil
}
