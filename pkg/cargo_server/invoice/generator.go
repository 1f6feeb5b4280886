package invoice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage"
	"github.com/cargoline/cargoline/pkg/cargo_server/trackno"
	"github.com/cargoline/cargoline/pkg/cargo_server/webhook"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// maxNumberAttempts bounds the invoice number collision retry. After this
// many suffixed candidates the generation fails with
// model.ErrInvoiceNumberExhausted instead of retrying indefinitely.
const maxNumberAttempts = 1000

// dueAfterDays is added to the creation time to get the due date.
const dueAfterDays = 30

type Generator interface {
	// EnsureInvoice creates the invoice of a shipment, or returns the
	// existing one. Calling it any number of times, concurrently or not,
	// yields exactly one persisted invoice per shipment: the shipment link
	// uniqueness constraint is the arbiter, and a violation is read back as
	// "already exists", not reported as an error.
	EnsureInvoice(ctx context.Context, ts int64, req EnsureInvoiceRequest) (EnsureInvoiceResult, error)

	ListInvoices(ctx context.Context, req storage.ListInvoicesRequest) (storage.ListInvoicesResult, error)
}

type EnsureInvoiceRequest struct {
	Requester  string `json:"requester"`
	ShipmentID string `json:"shipment_id"`
}

type EnsureInvoiceResult struct {
	Invoice        model.Invoice `json:"invoice"`
	AlreadyExisted bool          `json:"already_existed"`
}

type _Generator struct {
	storage     storage.InvoiceStorage
	webhookCtrl webhook.WebhookController
}

func NewGenerator(storage storage.InvoiceStorage, webhookCtrl webhook.WebhookController) Generator {
	return &_Generator{
		storage:     storage,
		webhookCtrl: webhookCtrl,
	}
}

func (g *_Generator) EnsureInvoice(ctx context.Context, ts int64, req EnsureInvoiceRequest) (EnsureInvoiceResult, error) {
	if err := ValidateEnsureInvoiceRequest(req); err != nil {
		return EnsureInvoiceResult{}, err
	}

	// Every attempt runs in its own transaction: a failed INSERT poisons a
	// PostgreSQL transaction, so the retry for the next candidate number has
	// to start fresh. The re-read at the top of each attempt also resolves
	// races on the shipment link in favor of the committed winner.
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		result, retryNumber, err := g.tryCreate(ctx, ts, req, attempt)
		if err != nil {
			return EnsureInvoiceResult{}, err
		}
		if retryNumber {
			continue
		}
		return result, nil
	}

	logrus.Warnf("invoice number exhausted for shipment %s", req.ShipmentID)
	return EnsureInvoiceResult{}, model.ErrInvoiceNumberExhausted
}

func (g *_Generator) ListInvoices(ctx context.Context, req storage.ListInvoicesRequest) (storage.ListInvoicesResult, error) {
	tx, ctx, err := g.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListInvoicesResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return g.storage.ListInvoices(ctx, tx, req)
}

func (g *_Generator) tryCreate(ctx context.Context, ts int64, req EnsureInvoiceRequest, attempt int) (EnsureInvoiceResult, bool, error) {
	tx, ctx, err := g.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return EnsureInvoiceResult{}, false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	existing, err := g.storage.GetInvoiceByShipment(ctx, tx, req.ShipmentID)
	if err == nil {
		return EnsureInvoiceResult{Invoice: existing, AlreadyExisted: true}, false, nil
	}
	if !errors.Is(err, model.ErrInvoiceNotFound) {
		return EnsureInvoiceResult{}, false, err
	}

	shipment, err := g.storage.GetShipment(ctx, tx, req.ShipmentID)
	if err != nil {
		return EnsureInvoiceResult{}, false, err
	}

	number := trackno.InvoiceNumberBase(shipment.TrackNumber)
	if attempt > 0 {
		number = fmt.Sprintf("%s-%d", number, attempt)
	}

	invoice := model.Invoice{
		ID:         uuid.NewString(),
		Version:    1,
		Number:     number,
		ShipmentID: shipment.ID,
		Amount:     invoiceAmount(shipment),
		Status:     model.InvoiceStatusUnpaid,
		DueAt:      time.Unix(ts, 0).UTC().AddDate(0, 0, dueAfterDays).Unix(),
		CreatedAt:  ts,
		CreatedBy:  req.Requester,
		UpdatedAt:  ts,
		UpdatedBy:  req.Requester,
	}

	err = g.storage.AddInvoice(ctx, tx, invoice)
	if errors.Is(err, storage.ErrUniqueViolation) {
		// Either the invoice number or the shipment link collided. The next
		// attempt re-reads by shipment first, so a link collision resolves to
		// "already exists" and a number collision moves on to the next
		// suffix.
		return EnsureInvoiceResult{}, true, nil
	}
	if err != nil {
		return EnsureInvoiceResult{}, false, err
	}

	if err := g.webhookCtrl.SendWebhookEvent(ctx, tx, ts, shipment.ClientID, invoice.ID, model.WebhookEventInvoiceCreated); err != nil {
		return EnsureInvoiceResult{}, false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return EnsureInvoiceResult{}, false, err
	}

	return EnsureInvoiceResult{Invoice: invoice}, false, nil
}

// invoiceAmount sums the billable costs of a shipment: per item delivery and
// insurance costs plus the shipment level packing and local delivery costs.
// Item insurance cost is precomputed and stored per item.
func invoiceAmount(shipment model.Shipment) model.Decimal {
	amount := shipment.PackingCost.Add(shipment.LocalDeliveryCost)
	for _, item := range shipment.Items {
		amount = amount.Add(item.DeliveryCost).Add(item.InsuranceCost)
	}
	return amount
}
