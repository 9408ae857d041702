package queries

import (
	"encoding/base64"
	"encoding/json"
)

const (
	DefaultLimit = 20
	MaxListLimit = 100
)

// cursorPayload is the internal shape of the opaque token. Clients pass
// the token back verbatim; its structure is not part of the public
// contract.
type cursorPayload struct {
	ID  int64  `json:"id"`
	Key *int64 `json:"key"`
}

type DecodedCursor struct {
	ID  int64
	Key *int64
}

// EncodeCursor builds a token from the last row of a page. It is only
// ever called with a real returned row, never fabricated.
func EncodeCursor(id int64, key *int64) string {
	raw, err := json.Marshal(cursorPayload{ID: id, Key: key})
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(raw)
}

// DecodeCursor returns nil on any parse failure. Callers treat a nil
// cursor identically to "no cursor supplied" and start from the
// beginning; a malformed token is never an error.
func DecodeCursor(token string) *DecodedCursor {
	if token == "" {
		return nil
	}
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil
	}
	var p cursorPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	if p.ID <= 0 {
		return nil
	}
	return &DecodedCursor{ID: p.ID, Key: p.Key}
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func ValidatePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
