package api

import "encoding/json"

// QueueAction identifies the kind of buffered mutation a queue item carries.
type QueueAction string

const (
	ActionAddContribution QueueAction = "addContribution"
	ActionUndoTransaction QueueAction = "undoTransaction"
)

// QueueItem is one buffered, not-yet-confirmed mutation awaiting replay.
//
// LocalID is client-generated and stable for the item's lifetime.
// IdempotencyKey, when present, is generated once at enqueue time and never
// regenerated on retry, so replaying the same item twice produces at most one
// server-side effect.
type QueueItem struct {
	LocalID        string          `json:"local_id"`
	Action         QueueAction     `json:"action"`
	Payload        json.RawMessage `json:"payload"`
	Timestamp      string          `json:"timestamp,omitempty"`
	IdempotencyKey string          `json:"idempotency_key,omitempty"`
}

// SyncQueueRequest is the body of POST /sync/queue. The whole pending batch is
// carried in one request, in FIFO enqueue order.
type SyncQueueRequest struct {
	DeviceID string      `json:"device_id"`
	Queue    []QueueItem `json:"queue"`
}

// SyncQueueResult is the outcome for one submitted queue item, correlated by
// LocalID. Duplicate means the server recognized the idempotency key and
// returned the prior effect; callers must treat it exactly like a fresh
// success and must not re-apply the payload.
type SyncQueueResult struct {
	LocalID   string `json:"local_id"`
	Status    string `json:"status"` // "ok" or "error"
	ServerID  string `json:"server_id,omitempty"`
	Duplicate bool   `json:"duplicate"`
	Error     string `json:"error,omitempty"`
	Code      string `json:"code,omitempty"`
}

// SyncSummary is the per-batch tally returned alongside the results.
type SyncSummary struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// SyncQueueResponse is the body returned by POST /sync/queue. The batch is not
// atomic: partial success across items is expected.
type SyncQueueResponse struct {
	Results []SyncQueueResult `json:"results"`
	Summary SyncSummary       `json:"summary"`
}

const (
	SyncStatusOK    = "ok"
	SyncStatusError = "error"
)
