//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// MerchantFixture describes one merchant row to insert. Blocks are
// (heading, description, redirect_url) triples; a nil redirect is stored
// as JSON null.
type MerchantFixture struct {
	Slug         string
	Name         string
	Description  string
	AffiliateURL *string
	WebsiteURL   *string
	H2Blocks     []BlockFixture
	H3Blocks     []BlockFixture
	Locale       string
}

type BlockFixture struct {
	Heading     string `json:"heading"`
	Description string `json:"description"`
	RedirectURL *string `json:"redirect_url"`
}

func CreateTestMerchant(t *testing.T, db DBLike, f MerchantFixture) int64 {
	t.Helper()

	if f.Locale == "" {
		f.Locale = "en"
	}
	h2 := blocksJSON(t, f.H2Blocks)
	h3 := blocksJSON(t, f.H3Blocks)

	var id int64
	ctx := context.Background()
	err := db.QueryRow(ctx, `
		INSERT INTO merchants (slug, name, description, affiliate_url, website_url, h2_blocks, h3_blocks, locale)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		f.Slug, f.Name, f.Description, f.AffiliateURL, f.WebsiteURL, h2, h3, f.Locale).Scan(&id)
	require.NoError(t, err)
	return id
}

type OfferFixture struct {
	MerchantID int64
	Title      string
	CouponType string
	Code       *string
	EndsAt     *time.Time
	ClickCount int64
	Pinned     bool
	Locale     string
}

func CreateTestOffer(t *testing.T, db DBLike, f OfferFixture) int64 {
	t.Helper()

	if f.CouponType == "" {
		f.CouponType = "deal"
	}
	if f.Locale == "" {
		f.Locale = "en"
	}

	var id int64
	ctx := context.Background()
	err := db.QueryRow(ctx, `
		INSERT INTO offers (merchant_id, coupon_type, title, code, ends_at, click_count, pinned, locale)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		f.MerchantID, f.CouponType, f.Title, f.Code, f.EndsAt, f.ClickCount, f.Pinned, f.Locale).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestBlogPost(t *testing.T, db DBLike, slug, title string, publishedAt *time.Time) int64 {
	t.Helper()

	var id int64
	ctx := context.Background()
	err := db.QueryRow(ctx, `
		INSERT INTO blog_posts (slug, title, excerpt, published_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slug) DO UPDATE SET title = EXCLUDED.title
		RETURNING id`,
		slug, title, "excerpt for "+title, publishedAt).Scan(&id)
	require.NoError(t, err)
	return id
}

func blocksJSON(t *testing.T, blocks []BlockFixture) string {
	t.Helper()
	if len(blocks) == 0 {
		return "[]"
	}
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		redirect := "null"
		if b.RedirectURL != nil {
			redirect = fmt.Sprintf("%q", *b.RedirectURL)
		}
		parts[i] = fmt.Sprintf(`{"heading":%q,"description":%q,"redirect_url":%s}`, b.Heading, b.Description, redirect)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO categories (slug, name) VALUES
		    ('food', 'Food & Drink'),
		    ('fashion', 'Fashion')
		ON CONFLICT (slug) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
