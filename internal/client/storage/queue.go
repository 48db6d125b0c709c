package storage

import (
	"context"

	"github.com/abdulkader3/expence-go/internal/models"
)

// QueueStorage persists the offline operation queue. Iteration order is
// enqueue order (FIFO) and stays stable across sync attempts: retried items
// keep their position, they are never reordered by retry count.
type QueueStorage interface {
	// Append adds an item to the tail of the queue.
	Append(ctx context.Context, item *models.QueueItem) error

	// List returns every queued item in FIFO order.
	List(ctx context.Context) ([]*models.QueueItem, error)

	// Update rewrites a queued item in place (attempt counters, resolved
	// receipt ids). Returns ErrItemNotFound for unknown local ids.
	Update(ctx context.Context, item *models.QueueItem) error

	// Remove deletes an item by its local id. Returns ErrItemNotFound if absent.
	Remove(ctx context.Context, localID string) error

	// Len reports the number of queued items.
	Len(ctx context.Context) (int, error)
}

// MetadataStorage holds small per-device facts that survive logout.
type MetadataStorage interface {
	// DeviceID returns the stable device identifier, creating it on first use.
	DeviceID(ctx context.Context) (string, error)

	// DeviceSecret returns the random per-device secret used to derive the
	// at-rest encryption key, creating it on first use.
	DeviceSecret(ctx context.Context) ([]byte, error)

	// SaveLastSyncAt records the wall time of the last successful sync.
	SaveLastSyncAt(ctx context.Context, t int64) error

	// LastSyncAt returns the last successful sync time, 0 when never synced.
	LastSyncAt(ctx context.Context) (int64, error)
}
