package api

// UploadReceiptResponse is the body returned by POST /uploads/receipts.
type UploadReceiptResponse struct {
	ReceiptID    string `json:"receipt_id"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// HealthResponse is the body of GET /health (served outside /api/v1).
type HealthResponse struct {
	Status string `json:"status"`
}
