package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cargoline/cargoline/pkg/cargo_server/model"
)

// ErrUniqueViolation is returned by Add operations when a uniqueness
// constraint rejects the row. The invoice generator relies on it for its
// idempotency guarantee.
var ErrUniqueViolation = errors.New("unique constraint violation")

type StorageContextKey string

const (
	TRANSACTION StorageContextKey = "transaction"
)

type TxWrapperOption struct {
	write bool
	level sql.IsolationLevel
}

type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (Result, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type Row interface {
	Scan(dest ...any) error
}

type Result interface {
	// RowsAffected returns the number of rows affected by an
	// update, insert, or delete. Not every database or database
	// driver may support this.
	RowsAffected() (int64, error)
}

type CreateTxOption func(*sql.TxOptions)

type TransactionInterface interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
}

func TxOptionWithWrite(write bool) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.ReadOnly = !write
	}
}

func TxOptionWithIsolationLevel(level sql.IsolationLevel) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.Isolation = level
	}
}

// ListShipmentsRequest is the request to list shipments.
type ListShipmentsRequest struct {
	Offset int `json:"offset"` // Offset of the shipments to be listed.
	Limit  int `json:"limit"`  // Limit of the shipments to be listed.

	// Filters
	IDs          []string               `json:"ids"`           // The IDs of the shipments.
	ClientIDs    []string               `json:"client_ids"`    // The clients owning the shipments.
	BatchNumbers []string               `json:"batch_numbers"` // The batches the shipments belong to.
	Statuses     []model.ShipmentStatus `json:"statuses"`      // Statuses of the shipments.
	TrackNumbers []string               `json:"track_numbers"` // Track numbers of the shipments.

	// Sweepable limits the result to shipments the auto status sweeper may
	// touch: not in a terminal status and having a receipt date.
	Sweepable bool `json:"sweepable"`
}

// ListShipmentsResult is the result of listing shipments.
type ListShipmentsResult struct {
	Total   int              `json:"total"`   // Total number of shipments.
	Records []model.Shipment `json:"records"` // Records of shipments.
}

// ListStatusHistoryRequest is the request to list status history entries.
type ListStatusHistoryRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	ShipmentID string `json:"shipment_id"`
}

// ListStatusHistoryResult is the result of listing status history entries.
type ListStatusHistoryResult struct {
	Total   int                        `json:"total"`
	Records []model.StatusHistoryEntry `json:"records"`
}

type ShipmentStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	StoreShipment(ctx context.Context, tx Tx, shipment model.Shipment) error
	GetShipment(ctx context.Context, tx Tx, id string) (model.Shipment, error)
	ListShipments(ctx context.Context, tx Tx, req ListShipmentsRequest) (ListShipmentsResult, error)

	// NextOrderNumber allocates the next per client sequence number within a
	// batch, starting from 1.
	NextOrderNumber(ctx context.Context, tx Tx, batchNumber, clientCode string) (int, error)

	// AddStatusHistory appends one audit entry. Entries are never updated or
	// deleted.
	AddStatusHistory(ctx context.Context, tx Tx, entry model.StatusHistoryEntry) error
	ListStatusHistory(ctx context.Context, tx Tx, req ListStatusHistoryRequest) (ListStatusHistoryResult, error)
}

// ListBatchesRequest is the request to list batches.
type ListBatchesRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	Numbers  []string             `json:"numbers"`
	Statuses []model.BatchStatus  `json:"statuses"`
	Modes    []model.DeliveryMode `json:"modes"`
}

// ListBatchesResult is the result of listing batches.
type ListBatchesResult struct {
	Total   int           `json:"total"`
	Records []model.Batch `json:"records"`
}

type BatchStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	StoreBatch(ctx context.Context, tx Tx, batch model.Batch) error
	GetBatch(ctx context.Context, tx Tx, number string) (model.Batch, error)
	ListBatches(ctx context.Context, tx Tx, req ListBatchesRequest) (ListBatchesResult, error)

	// NextBatchNumber draws the next value of the batch sequence, rendered as
	// a zero padded 6-digit string.
	NextBatchNumber(ctx context.Context, tx Tx) (string, error)
}

// ListInvoicesRequest is the request to list invoices.
type ListInvoicesRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	IDs         []string              `json:"ids"`
	Numbers     []string              `json:"numbers"`
	ShipmentIDs []string              `json:"shipment_ids"`
	Statuses    []model.InvoiceStatus `json:"statuses"`
}

// ListInvoicesResult is the result of listing invoices.
type ListInvoicesResult struct {
	Total   int             `json:"total"`
	Records []model.Invoice `json:"records"`
}

type InvoiceStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	GetShipment(ctx context.Context, tx Tx, id string) (model.Shipment, error)

	// AddInvoice inserts a new invoice. It returns ErrUniqueViolation when the
	// invoice number or the shipment link collides with an existing row.
	AddInvoice(ctx context.Context, tx Tx, invoice model.Invoice) error
	GetInvoiceByShipment(ctx context.Context, tx Tx, shipmentID string) (model.Invoice, error)
	ListInvoices(ctx context.Context, tx Tx, req ListInvoicesRequest) (ListInvoicesResult, error)
}

// ListWebhookRequest is the request to list webhooks.
type ListWebhookRequest struct {
	Offset int `json:"offset"` // Offset of the webhooks to be listed.
	Limit  int `json:"limit"`  // Limit of the webhooks to be listed.

	// Filters
	ClientID string   `json:"client_id"` // The client the webhooks belong to.
	IDs      []string `json:"ids"`       // The IDs of the webhook.
	Events   []string `json:"events"`    // The Events the webhook is interested in.
}

// ListWebhookResult is the result of listing webhooks.
type ListWebhookResult struct {
	Total   int             `json:"total"`   // Total number of webhooks.
	Records []model.Webhook `json:"records"` // Records of webhook.
}

type OutboxMsg struct {
	RecID int64
	Key   string
	Msg   []byte
}

type WebhookStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	AddWebhook(ctx context.Context, tx Tx, webhook model.Webhook) error
	ListWebhook(ctx context.Context, tx Tx, req ListWebhookRequest) (ListWebhookResult, error)
	AddWebhookEvent(ctx context.Context, tx Tx, ts int64, key string, event *model.WebhookEvent) error
	GetWebhookEvent(ctx context.Context, tx Tx, batchSize int) ([]OutboxMsg, error)
	DeleteWebhookEvent(ctx context.Context, tx Tx, recIDs ...int64) error
}
