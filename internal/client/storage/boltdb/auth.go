package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/abdulkader3/expence-go/internal/client/storage"
	wire "github.com/abdulkader3/expence-go/pkg/api"
)

var (
	tokensKey = []byte("tokens")
	userKey   = []byte("user")
)

// SaveTokens overwrites the credential pair in one transaction, so the
// access/refresh halves can never be observed mismatched.
func (s *Storage) SaveTokens(ctx context.Context, tokens *wire.Tokens) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data, err := json.Marshal(tokens)
		if err != nil {
			return fmt.Errorf("failed to marshal tokens: %w", err)
		}

		if err := bucket.Put(tokensKey, data); err != nil {
			return fmt.Errorf("failed to save tokens: %w", err)
		}

		return nil
	})
}

// GetTokens retrieves the stored credential pair. A pair with either half
// missing is reported as absent.
func (s *Storage) GetTokens(ctx context.Context) (*wire.Tokens, error) {
	var tokens *wire.Tokens

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data := bucket.Get(tokensKey)
		if data == nil {
			return storage.ErrTokensNotFound
		}

		tokens = &wire.Tokens{}
		if err := json.Unmarshal(data, tokens); err != nil {
			return fmt.Errorf("failed to unmarshal tokens: %w", err)
		}

		if tokens.AccessToken == "" || tokens.RefreshToken == "" {
			return storage.ErrTokensNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tokens, nil
}

// ClearTokens removes the stored pair. Clearing an empty store is a no-op.
func (s *Storage) ClearTokens(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}
		return bucket.Delete(tokensKey)
	})
}

// SaveUser overwrites the cached user profile.
func (s *Storage) SaveUser(ctx context.Context, user *wire.User) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to marshal user: %w", err)
		}

		if err := bucket.Put(userKey, data); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}

		return nil
	})
}

// GetUser retrieves the cached user profile. Unparseable data is treated as
// absence, not a fatal error.
func (s *Storage) GetUser(ctx context.Context) (*wire.User, error) {
	var user *wire.User

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data := bucket.Get(userKey)
		if data == nil {
			return storage.ErrUserNotFound
		}

		user = &wire.User{}
		if err := json.Unmarshal(data, user); err != nil {
			user = nil
			return storage.ErrUserNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ClearUser removes the cached user profile.
func (s *Storage) ClearUser(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}
		return bucket.Delete(userKey)
	})
}

// ClearAll wipes tokens and user in a single transaction (logout).
func (s *Storage) ClearAll(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}
		if err := bucket.Delete(tokensKey); err != nil {
			return fmt.Errorf("failed to clear tokens: %w", err)
		}
		if err := bucket.Delete(userKey); err != nil {
			return fmt.Errorf("failed to clear user: %w", err)
		}
		return nil
	})
}
