package api

import (
	"context"
	"net/http"

	wire "github.com/abdulkader3/expence-go/pkg/api"
)

// Register creates a new account.
func (c *Client) Register(ctx context.Context, payload wire.RegisterPayload) (*wire.AuthData, error) {
	var resp wire.AuthResponse
	err := c.doRequest(ctx, http.MethodPost, "/auth/register", payload, &resp, requestOptions{})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, payload wire.LoginPayload) (*wire.AuthData, error) {
	var resp wire.AuthResponse
	err := c.doRequest(ctx, http.MethodPost, "/auth/login", payload, &resp, requestOptions{})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Refresh exchanges a refresh token for a rotated access/refresh pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*wire.RefreshData, error) {
	var resp wire.RefreshResponse
	req := wire.RefreshRequest{RefreshToken: refreshToken}
	err := c.doRequest(ctx, http.MethodPost, "/auth/refresh", req, &resp, requestOptions{})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Logout revokes the given refresh token server-side. With revokeAll the
// server revokes every device's tokens.
func (c *Client) Logout(ctx context.Context, refreshToken string, revokeAll bool) error {
	opts := requestOptions{}
	if revokeAll {
		opts.params = map[string]string{"all": "true"}
	}
	var resp wire.LogoutResponse
	req := wire.LogoutRequest{RefreshToken: refreshToken}
	return c.doRequest(ctx, http.MethodPost, "/auth/logout", req, &resp, opts)
}

// GetCurrentUser fetches the authenticated user's profile.
func (c *Client) GetCurrentUser(ctx context.Context) (*wire.User, error) {
	var user wire.User
	err := c.doRequest(ctx, http.MethodGet, "/users/me", nil, &user, requestOptions{authorized: true})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateCurrentUser patches profile fields. When an avatar file is attached
// the request is multipart so the runtime can set the boundary header.
func (c *Client) UpdateCurrentUser(ctx context.Context, payload wire.UpdateUserPayload) (*wire.User, error) {
	var resp wire.UpdateUserResponse
	opts := requestOptions{authorized: true}

	if payload.Avatar == nil {
		if err := c.doRequest(ctx, http.MethodPatch, "/users/me", payload, &resp, opts); err != nil {
			return nil, err
		}
		return &resp.User, nil
	}

	fields := map[string]string{
		"name":    payload.Name,
		"phone":   payload.Phone,
		"company": payload.Company,
	}
	body, contentType, err := buildMultipart(fields, "avatar", payload.Avatar)
	if err != nil {
		return nil, &Error{Message: err.Error(), Status: 0}
	}
	opts.headers = map[string]string{"Content-Type": contentType}
	if err := c.doRequest(ctx, http.MethodPatch, "/users/me", body, &resp, opts); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// GetSettings fetches notification and security preferences.
func (c *Client) GetSettings(ctx context.Context) (*wire.UserSettings, error) {
	var settings wire.UserSettings
	err := c.doRequest(ctx, http.MethodGet, "/users/me/settings", nil, &settings, requestOptions{authorized: true})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings replaces preference fields; nil fields are left untouched.
func (c *Client) UpdateSettings(ctx context.Context, payload wire.UpdateSettingsPayload) (*wire.UserSettings, error) {
	var resp wire.SettingsResponse
	err := c.doRequest(ctx, http.MethodPut, "/users/me/settings", payload, &resp, requestOptions{authorized: true})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UploadReceipt uploads a receipt image and resolves it to a receipt_id.
func (c *Client) UploadReceipt(ctx context.Context, file wire.FileUpload, transactionID string) (*wire.UploadReceiptResponse, error) {
	fields := map[string]string{}
	if transactionID != "" {
		fields["transaction_id"] = transactionID
	}
	body, contentType, err := buildMultipart(fields, "file", &file)
	if err != nil {
		return nil, &Error{Message: err.Error(), Status: 0}
	}
	var resp wire.UploadReceiptResponse
	opts := requestOptions{
		authorized: true,
		headers:    map[string]string{"Content-Type": contentType},
	}
	if err := c.doRequest(ctx, http.MethodPost, "/uploads/receipts", body, &resp, opts); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateContribution records a contribution. The idempotency key, when set,
// is sent in the Idempotency-Key header so replays create at most one effect.
func (c *Client) CreateContribution(ctx context.Context, payload wire.ContributionPayload, idempotencyKey string) (*wire.ContributionResponse, error) {
	opts := requestOptions{authorized: true}
	if idempotencyKey != "" {
		opts.headers = map[string]string{"Idempotency-Key": idempotencyKey}
	}
	var resp wire.ContributionResponse
	if err := c.doRequest(ctx, http.MethodPost, "/partners", payload, &resp, opts); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPartners lists partners with their contribution totals.
func (c *Client) GetPartners(ctx context.Context, query wire.PartnersQuery) (*wire.PartnersResponse, error) {
	var resp wire.PartnersResponse
	opts := requestOptions{authorized: true, params: query.Values()}
	if err := c.doRequest(ctx, http.MethodGet, "/partners", nil, &resp, opts); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetLeaderboard fetches the contribution ranking.
func (c *Client) GetLeaderboard(ctx context.Context, query wire.LeaderboardQuery) (*wire.LeaderboardResponse, error) {
	var resp wire.LeaderboardResponse
	opts := requestOptions{authorized: true, params: query.Values()}
	if err := c.doRequest(ctx, http.MethodGet, "/partners/leaderboard", nil, &resp, opts); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPartnerDetail fetches one partner and their transaction history.
func (c *Client) GetPartnerDetail(ctx context.Context, partnerID string, query wire.PartnerDetailQuery) (*wire.PartnerDetailResponse, error) {
	var resp wire.PartnerDetailResponse
	opts := requestOptions{authorized: true, params: query.Values()}
	if err := c.doRequest(ctx, http.MethodGet, "/partners/"+partnerID, nil, &resp, opts); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UndoTransaction reverses a recorded transaction with a compensating entry.
func (c *Client) UndoTransaction(ctx context.Context, transactionID, reason string) (*wire.UndoResponse, error) {
	var resp wire.UndoResponse
	body := map[string]string{}
	if reason != "" {
		body["reason"] = reason
	}
	err := c.doRequest(ctx, http.MethodPost, "/transactions/"+transactionID+"/undo", body, &resp, requestOptions{authorized: true})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTransactions lists transactions matching the query.
func (c *Client) GetTransactions(ctx context.Context, query wire.TransactionsQuery) (*wire.TransactionsResponse, error) {
	var resp wire.TransactionsResponse
	opts := requestOptions{authorized: true, params: query.Values()}
	if err := c.doRequest(ctx, http.MethodGet, "/transactions", nil, &resp, opts); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTransactionsCSV lists transactions as CSV via content negotiation.
// The body is passed through untouched; formatting stays server-side.
func (c *Client) GetTransactionsCSV(ctx context.Context, query wire.TransactionsQuery) (string, error) {
	var raw []byte
	opts := requestOptions{
		authorized: true,
		params:     query.Values(),
		headers:    map[string]string{"Accept": "text/csv"},
		rawResult:  &raw,
	}
	if err := c.doRequest(ctx, http.MethodGet, "/transactions", nil, nil, opts); err != nil {
		return "", err
	}
	return string(raw), nil
}

// ExportTransactionsCSV requests a CSV export from the export endpoint.
func (c *Client) ExportTransactionsCSV(ctx context.Context, query wire.TransactionsQuery) (string, error) {
	var raw []byte
	opts := requestOptions{
		authorized: true,
		params:     query.Values(),
		headers:    map[string]string{"Accept": "text/csv"},
		rawResult:  &raw,
	}
	if err := c.doRequest(ctx, http.MethodGet, "/exports/transactions", nil, nil, opts); err != nil {
		return "", err
	}
	return string(raw), nil
}

// SyncQueue replays the pending offline queue in one batch.
func (c *Client) SyncQueue(ctx context.Context, req wire.SyncQueueRequest) (*wire.SyncQueueResponse, error) {
	var resp wire.SyncQueueResponse
	err := c.doRequest(ctx, http.MethodPost, "/sync/queue", req, &resp, requestOptions{authorized: true})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health checks backend availability. Served at <base>/health, outside the
// versioned API prefix.
func (c *Client) Health(ctx context.Context) (*wire.HealthResponse, error) {
	var resp wire.HealthResponse
	err := c.doRequest(ctx, http.MethodGet, "/health", nil, &resp, requestOptions{absolutePath: true})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
