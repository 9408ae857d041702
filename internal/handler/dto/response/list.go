package response

// Meta is the pagination envelope shared by every list endpoint. Total is
// null in cursor mode (counting a keyset range is not attempted) and a
// lower bound in lightweight mode.
type Meta struct {
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	Total      *int    `json:"total"`
	Canonical  string  `json:"canonical"`
	Prev       *string `json:"prev"`
	Next       *string `json:"next"`
	TotalPages int     `json:"total_pages"`
	NextCursor string  `json:"next_cursor,omitempty"`
	HasMore    *bool   `json:"has_more,omitempty"`
}

type ListResponse struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}
