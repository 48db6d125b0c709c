package models

import (
	"encoding/json"
	"time"

	wire "github.com/abdulkader3/expence-go/pkg/api"
)

// QueueItem is the persisted form of one offline mutation. It is the wire
// item plus the local bookkeeping the sync engine needs across attempts:
// retry count, last per-item error, and an optional receipt file still
// waiting to be uploaded.
type QueueItem struct {
	LocalID        string           `json:"local_id"`
	Action         wire.QueueAction `json:"action"`
	Payload        json.RawMessage  `json:"payload"`
	Timestamp      time.Time        `json:"timestamp"`
	IdempotencyKey string           `json:"idempotency_key,omitempty"`
	ReceiptPath    string           `json:"receipt_path,omitempty"`
	Attempts       int              `json:"attempts"`
	LastError      string           `json:"last_error,omitempty"`
}

// Wire converts the stored item to its request representation.
func (q *QueueItem) Wire() wire.QueueItem {
	return wire.QueueItem{
		LocalID:        q.LocalID,
		Action:         q.Action,
		Payload:        q.Payload,
		Timestamp:      q.Timestamp.UTC().Format(time.RFC3339),
		IdempotencyKey: q.IdempotencyKey,
	}
}
