package storage

import (
	"context"

	wire "github.com/abdulkader3/expence-go/pkg/api"
)

// AuthStorage is the durable, app-private credential store. The token pair is
// one atomic unit: it is saved and cleared together, and GetTokens reports
// ErrTokensNotFound when either half is missing.
//
// This is the lowest storage layer - it persists values as given. Token
// encryption at rest happens one layer up, in auth.CredentialStore.
type AuthStorage interface {
	// SaveTokens overwrites the stored credential pair.
	SaveTokens(ctx context.Context, tokens *wire.Tokens) error

	// GetTokens returns the stored pair, or ErrTokensNotFound.
	GetTokens(ctx context.Context) (*wire.Tokens, error)

	// ClearTokens removes the stored pair. Clearing an empty store is not an error.
	ClearTokens(ctx context.Context) error

	// SaveUser overwrites the cached user profile.
	SaveUser(ctx context.Context, user *wire.User) error

	// GetUser returns the cached profile. Missing or unparseable data is
	// reported as ErrUserNotFound: corruption is treated as absence.
	GetUser(ctx context.Context) (*wire.User, error)

	// ClearUser removes the cached profile.
	ClearUser(ctx context.Context) error

	// ClearAll wipes tokens and user together (logout).
	ClearAll(ctx context.Context) error
}
