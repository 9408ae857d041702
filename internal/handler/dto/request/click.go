package request

type ClickRequest struct {
	Referrer  string `json:"referrer" binding:"omitempty,max=500"`
	Platform  string `json:"platform" binding:"omitempty,max=50"`
	StoreSlug string `json:"store_slug" binding:"omitempty,max=100"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,max=254"`
}
