package boltdb

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/abdulkader3/expence-go/internal/client/storage"
	"github.com/abdulkader3/expence-go/internal/models"
)

// Queue items are keyed by the bucket's monotonic sequence number encoded
// big-endian, so a forward cursor walk yields strict FIFO enqueue order.
// Update rewrites an item under its original key, which keeps a retried
// item's position stable across sync attempts.

// Append adds an item to the tail of the queue.
func (s *Storage) Append(ctx context.Context, item *models.QueueItem) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate queue sequence: %w", err)
		}

		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal queue item: %w", err)
		}

		if err := bucket.Put(seqKey(seq), data); err != nil {
			return fmt.Errorf("failed to save queue item: %w", err)
		}

		return nil
	})
}

// List returns every queued item in FIFO order.
func (s *Storage) List(ctx context.Context) ([]*models.QueueItem, error) {
	var items []*models.QueueItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			item := &models.QueueItem{}
			if err := json.Unmarshal(v, item); err != nil {
				return fmt.Errorf("failed to unmarshal queue item: %w", err)
			}
			items = append(items, item)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// Update rewrites a queued item in place, preserving its queue position.
func (s *Storage) Update(ctx context.Context, item *models.QueueItem) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		key, err := findKey(bucket, item.LocalID)
		if err != nil {
			return err
		}

		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal queue item: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to update queue item: %w", err)
		}

		return nil
	})
}

// Remove deletes a queued item by its local id.
func (s *Storage) Remove(ctx context.Context, localID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		key, err := findKey(bucket, localID)
		if err != nil {
			return err
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete queue item: %w", err)
		}

		return nil
	})
}

// Len reports the number of queued items.
func (s *Storage) Len(ctx context.Context) (int, error) {
	count := 0
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}
		count = bucket.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// findKey locates the sequence key holding the item with the given local id.
// Queues stay small (tens of items), a linear scan is fine.
func findKey(bucket *bbolt.Bucket, localID string) ([]byte, error) {
	needle := []byte(`"local_id":"` + localID + `"`)

	var found []byte
	cursor := bucket.Cursor()
	for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
		if bytes.Contains(v, needle) {
			item := &models.QueueItem{}
			if err := json.Unmarshal(v, item); err != nil {
				continue
			}
			if item.LocalID == localID {
				found = append([]byte(nil), k...)
				break
			}
		}
	}
	if found == nil {
		return nil, storage.ErrItemNotFound
	}
	return found, nil
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
