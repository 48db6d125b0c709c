package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/abdulkader3/expence-go/internal/client/storage"
	"github.com/abdulkader3/expence-go/internal/crypto"
	wire "github.com/abdulkader3/expence-go/pkg/api"
)

// CredentialStore is the encryption layer between the session and raw
// storage: tokens are encrypted with the device storage key before they hit
// disk and decrypted on the way out. The cached user profile is not secret
// and is stored as-is.
//
// It also implements the transport's TokenSource, so every request reads the
// current access token at send time rather than a copy from session start.
type CredentialStore struct {
	auth     storage.AuthStorage
	metadata storage.MetadataStorage

	keyOnce sync.Once
	key     []byte
	keyErr  error
}

// NewCredentialStore wires the encryption layer over the given stores.
func NewCredentialStore(auth storage.AuthStorage, metadata storage.MetadataStorage) *CredentialStore {
	return &CredentialStore{
		auth:     auth,
		metadata: metadata,
	}
}

// storageKey derives (once) the at-rest key from the per-device secret.
func (c *CredentialStore) storageKey(ctx context.Context) ([]byte, error) {
	c.keyOnce.Do(func() {
		secret, err := c.metadata.DeviceSecret(ctx)
		if err != nil {
			c.keyErr = fmt.Errorf("failed to load device secret: %w", err)
			return
		}
		c.key, c.keyErr = crypto.DeriveStorageKey(secret)
	})
	return c.key, c.keyErr
}

// SaveTokens encrypts and persists the credential pair as one unit.
func (c *CredentialStore) SaveTokens(ctx context.Context, tokens *wire.Tokens) error {
	if tokens == nil || tokens.AccessToken == "" || tokens.RefreshToken == "" {
		return fmt.Errorf("token pair is incomplete")
	}

	key, err := c.storageKey(ctx)
	if err != nil {
		return err
	}

	encAccess, err := crypto.EncryptToBase64([]byte(tokens.AccessToken), key)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}
	encRefresh, err := crypto.EncryptToBase64([]byte(tokens.RefreshToken), key)
	if err != nil {
		return fmt.Errorf("failed to encrypt refresh token: %w", err)
	}

	return c.auth.SaveTokens(ctx, &wire.Tokens{
		AccessToken:  encAccess,
		RefreshToken: encRefresh,
	})
}

// GetTokens loads and decrypts the credential pair. Ciphertext that fails to
// decrypt is reported as absence: a corrupt store behaves like a logged-out
// one instead of wedging the client.
func (c *CredentialStore) GetTokens(ctx context.Context) (*wire.Tokens, error) {
	stored, err := c.auth.GetTokens(ctx)
	if err != nil {
		return nil, err
	}

	key, err := c.storageKey(ctx)
	if err != nil {
		return nil, err
	}

	access, err := crypto.DecryptFromBase64(stored.AccessToken, key)
	if err != nil {
		return nil, storage.ErrTokensNotFound
	}
	refresh, err := crypto.DecryptFromBase64(stored.RefreshToken, key)
	if err != nil {
		return nil, storage.ErrTokensNotFound
	}

	return &wire.Tokens{
		AccessToken:  string(access),
		RefreshToken: string(refresh),
	}, nil
}

// AccessToken implements api.TokenSource.
func (c *CredentialStore) AccessToken(ctx context.Context) (string, error) {
	tokens, err := c.GetTokens(ctx)
	if err != nil {
		return "", err
	}
	return tokens.AccessToken, nil
}

// SaveUser caches the user profile.
func (c *CredentialStore) SaveUser(ctx context.Context, user *wire.User) error {
	return c.auth.SaveUser(ctx, user)
}

// GetUser returns the cached user profile.
func (c *CredentialStore) GetUser(ctx context.Context) (*wire.User, error) {
	return c.auth.GetUser(ctx)
}

// ClearAll wipes tokens and cached user together.
func (c *CredentialStore) ClearAll(ctx context.Context) error {
	return c.auth.ClearAll(ctx)
}
