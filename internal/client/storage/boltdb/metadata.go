package boltdb

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

const (
	keyDeviceID     = "device_id"
	keyDeviceSecret = "device_secret"
	keyLastSyncAt   = "last_sync_at"
)

// DeviceID returns the stable device identifier, generating one on first use.
// The id survives logout so the server can correlate a device's sync batches.
func (s *Storage) DeviceID(ctx context.Context) (string, error) {
	var deviceID string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if data := bucket.Get([]byte(keyDeviceID)); data != nil {
			deviceID = string(data)
			return nil
		}

		deviceID = uuid.New().String()
		if err := bucket.Put([]byte(keyDeviceID), []byte(deviceID)); err != nil {
			return fmt.Errorf("failed to save device id: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return deviceID, nil
}

// DeviceSecret returns the per-device random secret used to derive the
// at-rest token encryption key, generating 32 bytes on first use.
func (s *Storage) DeviceSecret(ctx context.Context) ([]byte, error) {
	var secret []byte

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if data := bucket.Get([]byte(keyDeviceSecret)); data != nil {
			secret = append([]byte(nil), data...)
			return nil
		}

		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return fmt.Errorf("failed to generate device secret: %w", err)
		}
		if err := bucket.Put([]byte(keyDeviceSecret), secret); err != nil {
			return fmt.Errorf("failed to save device secret: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return secret, nil
}

// SaveLastSyncAt records the unix time of the last successful sync.
func (s *Storage) SaveLastSyncAt(ctx context.Context, t int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(t))

		if err := bucket.Put([]byte(keyLastSyncAt), buf); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}
		return nil
	})
}

// LastSyncAt returns the unix time of the last successful sync, 0 when the
// device has never synced.
func (s *Storage) LastSyncAt(ctx context.Context) (int64, error) {
	var t int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get([]byte(keyLastSyncAt))
		if data == nil {
			t = 0
			return nil
		}

		t = int64(binary.BigEndian.Uint64(data))
		return nil
	})
	if err != nil {
		return 0, err
	}

	return t, nil
}
