package writerepo

import (
	"context"
	"encoding/json"

	"dealstack/internal/domain/offer"
	"dealstack/internal/infra"
	"dealstack/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MerchantRepository struct {
	pool *pgxpool.Pool
}

func NewMerchantRepository(pool *pgxpool.Pool) *MerchantRepository {
	return &MerchantRepository{pool: pool}
}

// blockRow is the stored jsonb shape of one embedded content block.
type blockRow struct {
	Heading     string  `json:"heading"`
	Description string  `json:"description"`
	RedirectURL *string `json:"redirect_url,omitempty"`
}

// FindByID loads the full merchant row including both block arrays; the
// click pipeline needs them to reconstruct synthetic offers.
func (r *MerchantRepository) FindByID(ctx context.Context, id int64) (*offer.Merchant, error) {
	var (
		m        offer.Merchant
		aff, web pgtype.Text
		h2, h3   []byte
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, slug, name, affiliate_url, website_url, h2_blocks, h3_blocks
		FROM merchants WHERE id = $1`, id,
	).Scan(&m.ID, &m.Slug, &m.Name, &aff, &web, &h2, &h3)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("merchant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find merchant by ID", err)
	}

	m.AffiliateURL = pgconv.StringPtrFromPgtype(aff)
	m.WebsiteURL = pgconv.StringPtrFromPgtype(web)

	if m.H2Blocks, err = decodeBlocks(h2); err != nil {
		return nil, infra.WrapRepoErr("failed to decode merchant h2 blocks", err)
	}
	if m.H3Blocks, err = decodeBlocks(h3); err != nil {
		return nil, infra.WrapRepoErr("failed to decode merchant h3 blocks", err)
	}
	return &m, nil
}

func decodeBlocks(raw []byte) ([]offer.Block, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rows []blockRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	blocks := make([]offer.Block, len(rows))
	for i, b := range rows {
		blocks[i] = offer.Block{
			Heading:     b.Heading,
			Description: b.Description,
			RedirectURL: b.RedirectURL,
		}
	}
	return blocks, nil
}
