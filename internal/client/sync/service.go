package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	httpapi "github.com/abdulkader3/expence-go/internal/client/api"
	"github.com/abdulkader3/expence-go/internal/client/auth"
	"github.com/abdulkader3/expence-go/internal/client/config"
	"github.com/abdulkader3/expence-go/internal/client/ledger"
	"github.com/abdulkader3/expence-go/internal/client/storage"
	"github.com/abdulkader3/expence-go/internal/models"
	"github.com/abdulkader3/expence-go/internal/validation"
	wire "github.com/abdulkader3/expence-go/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service is the offline queue and sync engine: it buffers mutating actions
// performed without a confirmed round trip and replays them against the
// backend without losing or double-applying them.
type Service interface {
	// SubmitContribution tries to record a contribution synchronously and
	// falls back to the offline queue on network-level failure. Exactly one
	// of the two return values is set on success.
	SubmitContribution(ctx context.Context, payload wire.ContributionPayload, receiptPath string) (*wire.ContributionResponse, *models.QueueItem, error)

	// EnqueueContribution buffers a contribution without attempting a send.
	EnqueueContribution(ctx context.Context, payload wire.ContributionPayload, receiptPath string) (*models.QueueItem, error)

	// EnqueueUndo buffers an undo of a previously recorded transaction.
	EnqueueUndo(ctx context.Context, transactionID, reason string) (*models.QueueItem, error)

	// Sync replays the pending queue in FIFO order and reconciles results.
	Sync(ctx context.Context) (*SyncResult, error)

	// PendingCount reports how many items wait for replay.
	PendingCount(ctx context.Context) (int, error)
}

// Ledger is the slice of the local ledger the engine reconciles into.
type Ledger interface {
	Insert(ctx context.Context, r *ledger.Record) error
	Reconcile(ctx context.Context, localID, serverID string) error
	MarkFailed(ctx context.Context, localID, reason string) error
	SetReceiptID(ctx context.Context, localID, receiptID string) error
}

type service struct {
	apiClient httpapi.ClientAPI
	session   *auth.Session
	queue     storage.QueueStorage
	metadata  storage.MetadataStorage
	ledger    Ledger
	logger    *slog.Logger
	cfg       config.SyncConfig
}

// NewService creates the sync engine.
func NewService(
	apiClient httpapi.ClientAPI,
	session *auth.Session,
	queue storage.QueueStorage,
	metadata storage.MetadataStorage,
	led Ledger,
	cfg config.SyncConfig,
	logger *slog.Logger,
) Service {
	return &service{
		apiClient: apiClient,
		session:   session,
		queue:     queue,
		metadata:  metadata,
		ledger:    led,
		logger:    logger,
		cfg:       cfg,
	}
}

// SyncResult tallies one Sync call. Submitted counts queue items sent in the
// batch; Retained counts items left queued for a later attempt.
type SyncResult struct {
	Submitted  int
	Succeeded  int
	Duplicates int
	Failed     int
	Retained   int
}

// SubmitContribution attempts the direct POST /partners path first. Only
// network-level failures (no response, timeout) divert to the queue; an HTTP
// error is a definitive server answer and is returned to the caller.
func (s *service) SubmitContribution(ctx context.Context, payload wire.ContributionPayload, receiptPath string) (*wire.ContributionResponse, *models.QueueItem, error) {
	if err := validation.Struct(payload); err != nil {
		return nil, nil, err
	}

	localID := uuid.New().String()
	idempotencyKey := uuid.New().String()

	if receiptPath != "" {
		if receiptID, ok := s.uploadReceipt(ctx, receiptPath); ok {
			payload.ReceiptID = receiptID
			// Resolved: if the contribution itself diverts to the queue, the
			// item must not carry the path, or Sync would upload it again.
			receiptPath = ""
		}
	}

	var resp *wire.ContributionResponse
	err := s.session.Authorized(ctx, func(ctx context.Context) error {
		var err error
		resp, err = s.apiClient.CreateContribution(ctx, payload, idempotencyKey)
		return err
	})
	if err == nil {
		record := recordFromContribution(localID, payload)
		record.ServerID = resp.Transaction.ID
		record.Status = ledger.StatusSynced
		if insertErr := s.ledger.Insert(ctx, record); insertErr != nil {
			s.logger.Warn("failed to cache confirmed transaction", "error", insertErr)
		}
		return resp, nil, nil
	}

	var apiErr *httpapi.Error
	if !errors.As(err, &apiErr) || !apiErr.IsNetwork() {
		return nil, nil, err
	}

	s.logger.Info("backend unreachable, queueing contribution", "error", err)
	item, enqErr := s.enqueue(ctx, wire.ActionAddContribution, payload, localID, idempotencyKey, receiptPath)
	if enqErr != nil {
		return nil, nil, enqErr
	}
	return nil, item, nil
}

// EnqueueContribution buffers a contribution for later replay.
func (s *service) EnqueueContribution(ctx context.Context, payload wire.ContributionPayload, receiptPath string) (*models.QueueItem, error) {
	if err := validation.Struct(payload); err != nil {
		return nil, err
	}
	return s.enqueue(ctx, wire.ActionAddContribution, payload, uuid.New().String(), uuid.New().String(), receiptPath)
}

// EnqueueUndo buffers an undo. Undo has financial effect, so it gets an
// idempotency key like a contribution.
func (s *service) EnqueueUndo(ctx context.Context, transactionID, reason string) (*models.QueueItem, error) {
	payload := wire.UndoPayload{TransactionID: transactionID, Reason: reason}
	if err := validation.Struct(payload); err != nil {
		return nil, err
	}
	return s.enqueue(ctx, wire.ActionUndoTransaction, payload, uuid.New().String(), uuid.New().String(), "")
}

// enqueue persists the queue item and its provisional ledger record. The
// idempotency key is fixed here, at enqueue time: regenerating it on retry
// would defeat server-side deduplication.
func (s *service) enqueue(ctx context.Context, action wire.QueueAction, payload any, localID, idempotencyKey, receiptPath string) (*models.QueueItem, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	item := &models.QueueItem{
		LocalID:        localID,
		Action:         action,
		Payload:        raw,
		Timestamp:      time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
		ReceiptPath:    receiptPath,
	}

	if err := s.queue.Append(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to enqueue item: %w", err)
	}

	record := recordFromItem(item)
	if err := s.ledger.Insert(ctx, record); err != nil {
		s.logger.Warn("failed to insert provisional ledger record", "local_id", localID, "error", err)
	}

	s.logger.Info("queued offline operation", "local_id", localID, "action", action)
	return item, nil
}

// Sync replays the whole pending queue in one batch. The batch call is
// retried with exponential backoff on network-level failure; if every
// attempt fails the queue is left exactly as it was.
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	items, err := s.queue.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}

	result := &SyncResult{Submitted: len(items)}
	if len(items) == 0 {
		return result, nil
	}

	deviceID, err := s.metadata.DeviceID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load device id: %w", err)
	}

	s.resolveReceipts(ctx, items)

	// FIFO enqueue order, stable across attempts: later items may depend on
	// earlier ones (an undo referencing a contribution queued moments before).
	queue := make([]wire.QueueItem, 0, len(items))
	for _, item := range items {
		queue = append(queue, item.Wire())
	}

	req := wire.SyncQueueRequest{DeviceID: deviceID, Queue: queue}

	attempts := s.cfg.MaxBatchAttempts
	if attempts == 0 {
		attempts = 1
	}
	base := s.cfg.BackoffBase
	if base <= 0 {
		base = 500 * time.Millisecond
	}

	var resp *wire.SyncQueueResponse
	backoff := retry.WithMaxRetries(attempts-1, retry.NewExponential(base))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, callErr := s.syncBatch(ctx, req)
		if callErr != nil {
			var apiErr *httpapi.Error
			if errors.As(callErr, &apiErr) && apiErr.IsNetwork() {
				s.logger.Warn("sync batch failed, will retry", "error", callErr)
				return retry.RetryableError(callErr)
			}
			return callErr
		}
		resp = r
		return nil
	})
	if err != nil {
		// Total batch failure: every item stays queued.
		s.logger.Warn("sync failed, queue retained", "items", len(items), "error", err)
		return nil, fmt.Errorf("sync request failed: %w", err)
	}

	s.consumeResults(ctx, items, resp, result)

	if err := s.metadata.SaveLastSyncAt(ctx, time.Now().Unix()); err != nil {
		s.logger.Warn("failed to save last sync time", "error", err)
	}

	s.logger.Info("sync completed",
		"submitted", result.Submitted,
		"succeeded", result.Succeeded,
		"duplicates", result.Duplicates,
		"failed", result.Failed,
		"retained", result.Retained)

	return result, nil
}

func (s *service) syncBatch(ctx context.Context, req wire.SyncQueueRequest) (*wire.SyncQueueResponse, error) {
	var resp *wire.SyncQueueResponse
	err := s.session.Authorized(ctx, func(ctx context.Context) error {
		var err error
		resp, err = s.apiClient.SyncQueue(ctx, req)
		return err
	})
	return resp, err
}

// consumeResults matches each result back to its item by local_id and
// settles the queue: remove on success or terminal error, retain otherwise.
// The result set is expected to be a bijection over the submitted set; items
// without a result and results without an item are logged and the items kept.
func (s *service) consumeResults(ctx context.Context, items []*models.QueueItem, resp *wire.SyncQueueResponse, result *SyncResult) {
	byLocalID := make(map[string]wire.SyncQueueResult, len(resp.Results))
	for _, r := range resp.Results {
		byLocalID[r.LocalID] = r
	}
	known := make(map[string]bool, len(items))
	for _, item := range items {
		known[item.LocalID] = true
	}
	for _, r := range resp.Results {
		if !known[r.LocalID] {
			s.logger.Warn("sync result for unknown item", "local_id", r.LocalID)
		}
	}

	for _, item := range items {
		res, ok := byLocalID[item.LocalID]
		if !ok {
			s.logger.Warn("no sync result for item, keeping queued", "local_id", item.LocalID)
			result.Retained++
			continue
		}

		switch {
		case res.Status == wire.SyncStatusOK:
			// Duplicate means the server already holds this effect from a
			// prior attempt: same handling as a fresh success, the payload
			// is not applied again.
			s.settleSuccess(ctx, item, res)
			if res.Duplicate {
				result.Duplicates++
			} else {
				result.Succeeded++
			}

		case isTerminalCode(res.Code):
			s.settleTerminal(ctx, item, res)
			result.Failed++

		default:
			item.Attempts++
			item.LastError = res.Error
			if item.Attempts >= s.cfg.MaxItemAttempts {
				s.logger.Warn("item exhausted retries",
					"local_id", item.LocalID, "attempts", item.Attempts, "error", res.Error)
				s.settleTerminal(ctx, item, res)
				result.Failed++
				continue
			}
			if err := s.queue.Update(ctx, item); err != nil {
				s.logger.Warn("failed to update queue item", "local_id", item.LocalID, "error", err)
			}
			result.Retained++
		}
	}
}

func (s *service) settleSuccess(ctx context.Context, item *models.QueueItem, res wire.SyncQueueResult) {
	if err := s.queue.Remove(ctx, item.LocalID); err != nil {
		s.logger.Warn("failed to remove synced item", "local_id", item.LocalID, "error", err)
	}
	if err := s.ledger.Reconcile(ctx, item.LocalID, res.ServerID); err != nil {
		s.logger.Warn("failed to reconcile ledger record", "local_id", item.LocalID, "error", err)
	}
}

func (s *service) settleTerminal(ctx context.Context, item *models.QueueItem, res wire.SyncQueueResult) {
	if err := s.queue.Remove(ctx, item.LocalID); err != nil {
		s.logger.Warn("failed to remove failed item", "local_id", item.LocalID, "error", err)
	}
	reason := res.Error
	if reason == "" {
		reason = "rejected by server"
	}
	if err := s.ledger.MarkFailed(ctx, item.LocalID, reason); err != nil {
		s.logger.Warn("failed to mark ledger record failed", "local_id", item.LocalID, "error", err)
	}
}

// resolveReceipts uploads any receipt still referenced by file path and folds
// the returned receipt_id into the item payload. A failed upload never blocks
// the underlying contribution: the item proceeds without a receipt.
func (s *service) resolveReceipts(ctx context.Context, items []*models.QueueItem) {
	for _, item := range items {
		if item.ReceiptPath == "" {
			continue
		}

		receiptID, ok := s.uploadReceipt(ctx, item.ReceiptPath)
		if !ok {
			s.logger.Warn("receipt upload failed, sending without receipt",
				"local_id", item.LocalID, "path", item.ReceiptPath)
			item.ReceiptPath = ""
			if err := s.queue.Update(ctx, item); err != nil {
				s.logger.Warn("failed to update queue item", "local_id", item.LocalID, "error", err)
			}
			continue
		}

		var payload map[string]any
		if err := json.Unmarshal(item.Payload, &payload); err != nil {
			s.logger.Warn("failed to decode item payload", "local_id", item.LocalID, "error", err)
			continue
		}
		payload["receipt_id"] = receiptID
		raw, err := json.Marshal(payload)
		if err != nil {
			s.logger.Warn("failed to encode item payload", "local_id", item.LocalID, "error", err)
			continue
		}
		item.Payload = raw
		item.ReceiptPath = ""
		if err := s.queue.Update(ctx, item); err != nil {
			s.logger.Warn("failed to update queue item", "local_id", item.LocalID, "error", err)
		}
		if err := s.ledger.SetReceiptID(ctx, item.LocalID, receiptID); err != nil {
			s.logger.Warn("failed to store receipt id", "local_id", item.LocalID, "error", err)
		}
	}
}

func (s *service) uploadReceipt(ctx context.Context, path string) (string, bool) {
	var resp *wire.UploadReceiptResponse
	err := s.session.Authorized(ctx, func(ctx context.Context) error {
		var err error
		resp, err = s.apiClient.UploadReceipt(ctx, wire.FileUpload{Path: path}, "")
		return err
	})
	if err != nil {
		s.logger.Warn("receipt upload failed", "path", path, "error", err)
		return "", false
	}
	return resp.ReceiptID, true
}

// PendingCount reports the number of queued items awaiting replay.
func (s *service) PendingCount(ctx context.Context) (int, error) {
	n, err := s.queue.Len(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending items: %w", err)
	}
	return n, nil
}

// isTerminalCode classifies per-item errors the server will never accept on
// retry. Anything else is considered transient and retried, bounded by
// MaxItemAttempts.
func isTerminalCode(code string) bool {
	switch code {
	case "validation_error", "not_found", "unprocessable":
		return true
	default:
		return false
	}
}

func recordFromItem(item *models.QueueItem) *ledger.Record {
	record := &ledger.Record{
		LocalID: item.LocalID,
		Action:  string(item.Action),
		Status:  ledger.StatusPending,
	}
	if item.Action == wire.ActionAddContribution {
		var payload wire.ContributionPayload
		if err := json.Unmarshal(item.Payload, &payload); err == nil {
			record.RecordedFor = payload.RecordedFor
			record.Amount = payload.Amount
			record.Currency = payload.Currency
			record.Category = payload.Category
			record.Context = payload.Context
			record.Date = payload.Date
			record.ReceiptID = payload.ReceiptID
		}
	}
	return record
}

func recordFromContribution(localID string, payload wire.ContributionPayload) *ledger.Record {
	return &ledger.Record{
		LocalID:     localID,
		Action:      string(wire.ActionAddContribution),
		RecordedFor: payload.RecordedFor,
		Amount:      payload.Amount,
		Currency:    payload.Currency,
		Category:    payload.Category,
		Context:     payload.Context,
		Date:        payload.Date,
		ReceiptID:   payload.ReceiptID,
	}
}
