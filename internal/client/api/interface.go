package api

import (
	"context"

	wire "github.com/abdulkader3/expence-go/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI is the transport surface consumed by the auth and sync layers.
type ClientAPI interface {
	Register(ctx context.Context, payload wire.RegisterPayload) (*wire.AuthData, error)
	Login(ctx context.Context, payload wire.LoginPayload) (*wire.AuthData, error)
	Refresh(ctx context.Context, refreshToken string) (*wire.RefreshData, error)
	Logout(ctx context.Context, refreshToken string, revokeAll bool) error

	GetCurrentUser(ctx context.Context) (*wire.User, error)
	UpdateCurrentUser(ctx context.Context, payload wire.UpdateUserPayload) (*wire.User, error)
	GetSettings(ctx context.Context) (*wire.UserSettings, error)
	UpdateSettings(ctx context.Context, payload wire.UpdateSettingsPayload) (*wire.UserSettings, error)

	GetPartners(ctx context.Context, query wire.PartnersQuery) (*wire.PartnersResponse, error)
	GetLeaderboard(ctx context.Context, query wire.LeaderboardQuery) (*wire.LeaderboardResponse, error)
	GetPartnerDetail(ctx context.Context, partnerID string, query wire.PartnerDetailQuery) (*wire.PartnerDetailResponse, error)

	UploadReceipt(ctx context.Context, file wire.FileUpload, transactionID string) (*wire.UploadReceiptResponse, error)
	CreateContribution(ctx context.Context, payload wire.ContributionPayload, idempotencyKey string) (*wire.ContributionResponse, error)
	UndoTransaction(ctx context.Context, transactionID, reason string) (*wire.UndoResponse, error)
	GetTransactions(ctx context.Context, query wire.TransactionsQuery) (*wire.TransactionsResponse, error)
	GetTransactionsCSV(ctx context.Context, query wire.TransactionsQuery) (string, error)
	ExportTransactionsCSV(ctx context.Context, query wire.TransactionsQuery) (string, error)

	SyncQueue(ctx context.Context, req wire.SyncQueueRequest) (*wire.SyncQueueResponse, error)
	Health(ctx context.Context) (*wire.HealthResponse, error)
}

var _ ClientAPI = (*Client)(nil)
