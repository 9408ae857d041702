package offer

import (
	"regexp"
	"strconv"

	"github.com/google/uuid"
)

// Identifier is the classification of an inbound offer reference. Exactly
// one concrete type applies; Unresolved means no grammar matched.
type Identifier interface {
	isIdentifier()
}

// CanonicalRef is an all-digit row id or a UUID public id.
type CanonicalRef struct {
	NumericID int64
	PublicID  uuid.UUID
	ByUUID    bool
}

// TrendingRef indexes 1-based into the merchant's h2 blocks followed by
// its h3 blocks.
type TrendingRef struct {
	MerchantID int64
	Index      int
}

// BlockRef indexes 0-based into the named block array.
type BlockRef struct {
	Kind       BlockKind
	MerchantID int64
	Index      int
}

// LegacyRef is the old "merchant-<id>[-h{2|3}-<index>]" form. Without a
// block part it refers to the merchant's first content block.
type LegacyRef struct {
	MerchantID int64
	Kind       BlockKind
	Index      int
	HasBlock   bool
}

type Unresolved struct{}

func (CanonicalRef) isIdentifier() {}
func (TrendingRef) isIdentifier()  {}
func (BlockRef) isIdentifier()     {}
func (LegacyRef) isIdentifier()    {}
func (Unresolved) isIdentifier()   {}

var (
	reDigits   = regexp.MustCompile(`^\d+$`)
	reTrending = regexp.MustCompile(`^trending-(\d+)-(\d+)$`)
	reBlock    = regexp.MustCompile(`^h([23])-(\d+)-(\d+)$`)
	reLegacy   = regexp.MustCompile(`^(?:merchant[:\-])?(\d+)(?:[:\-]h([23])[:\-]?(\d+))?$`)
)

// grammar is the ordered dispatch table; the first matching pattern wins.
var grammar = []struct {
	re    *regexp.Regexp
	build func(m []string) Identifier
}{
	{reTrending, func(m []string) Identifier {
		return TrendingRef{MerchantID: mustInt64(m[1]), Index: mustInt(m[2])}
	}},
	{reBlock, func(m []string) Identifier {
		return BlockRef{Kind: BlockKind("h" + m[1]), MerchantID: mustInt64(m[2]), Index: mustInt(m[3])}
	}},
	{reLegacy, func(m []string) Identifier {
		ref := LegacyRef{MerchantID: mustInt64(m[1])}
		if m[2] != "" {
			ref.Kind = BlockKind("h" + m[2])
			ref.Index = mustInt(m[3])
			ref.HasBlock = true
		}
		return ref
	}},
}

// ParseCanonical reports whether raw has a canonical-ID shape. An
// all-digit reference is canonical first and only falls back to the
// composite grammar when its lookup misses.
func ParseCanonical(raw string) (CanonicalRef, bool) {
	if reDigits.MatchString(raw) {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			return CanonicalRef{NumericID: id}, true
		}
	}
	if id, err := uuid.Parse(raw); err == nil {
		return CanonicalRef{PublicID: id, ByUUID: true}, true
	}
	return CanonicalRef{}, false
}

// ParseComposite classifies raw against the composite grammars in order.
func ParseComposite(raw string) Identifier {
	for _, g := range grammar {
		if m := g.re.FindStringSubmatch(raw); m != nil {
			return g.build(m)
		}
	}
	return Unresolved{}
}

// Synthesize reconstructs the offer-like view the identifier points at
// inside m. It is a pure function of (identifier, merchant row): no state
// is read or written beyond its arguments. The bool is false when the
// index is out of range or the identifier carries no block reference.
func Synthesize(raw string, id Identifier, m *Merchant) (*Synthetic, bool) {
	switch ref := id.(type) {
	case TrendingRef:
		// 1-based across h2 then h3.
		combined := len(m.H2Blocks) + len(m.H3Blocks)
		if ref.Index < 1 || ref.Index > combined {
			return nil, false
		}
		i := ref.Index - 1
		if i < len(m.H2Blocks) {
			return fromBlock(raw, m, BlockH2, i, m.H2Blocks[i]), true
		}
		i -= len(m.H2Blocks)
		return fromBlock(raw, m, BlockH3, i, m.H3Blocks[i]), true

	case BlockRef:
		blocks := m.H2Blocks
		if ref.Kind == BlockH3 {
			blocks = m.H3Blocks
		}
		if ref.Index < 0 || ref.Index >= len(blocks) {
			return nil, false
		}
		return fromBlock(raw, m, ref.Kind, ref.Index, blocks[ref.Index]), true

	case LegacyRef:
		if ref.HasBlock {
			return Synthesize(raw, BlockRef{Kind: ref.Kind, MerchantID: ref.MerchantID, Index: ref.Index}, m)
		}
		if len(m.H2Blocks) > 0 {
			return fromBlock(raw, m, BlockH2, 0, m.H2Blocks[0]), true
		}
		if len(m.H3Blocks) > 0 {
			return fromBlock(raw, m, BlockH3, 0, m.H3Blocks[0]), true
		}
		return nil, false
	}
	return nil, false
}

func fromBlock(raw string, m *Merchant, kind BlockKind, index int, b Block) *Synthetic {
	return &Synthetic{
		Ref:         raw,
		MerchantID:  m.ID,
		Title:       b.Heading,
		Description: b.Description,
		RedirectURL: b.RedirectURL,
		Kind:        kind,
		BlockIndex:  index,
	}
}

func mustInt64(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func mustInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
