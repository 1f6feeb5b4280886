package batchops

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cargoline/cargoline/pkg/cargo_server/lifecycle"
	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage"
	"github.com/cargoline/cargoline/pkg/cargo_server/webhook"
	"github.com/sirupsen/logrus"
)

// cascadePageSize is how many shipments are loaded per page during a cascade.
const cascadePageSize = 500

type CascadeKind string

const (
	CascadeKindStatus         CascadeKind = "status"
	CascadeKindMarkReceived   CascadeKind = "mark_received"
	CascadeKindMarkDispatched CascadeKind = "mark_dispatched"
)

// BatchController manages batches and fans batch level operations out to the
// member shipments.
type BatchController interface {
	CreateBatch(ctx context.Context, ts int64, req CreateBatchRequest) (model.Batch, error)

	// FormBatch closes the batch for new shipments.
	FormBatch(ctx context.Context, ts int64, req FormBatchRequest) (model.Batch, error)

	GetBatch(ctx context.Context, number string) (model.Batch, error)
	ListBatches(ctx context.Context, req storage.ListBatchesRequest) (storage.ListBatchesResult, error)

	// ApplyToBatch applies one operation to every shipment of the batch. Each
	// shipment is processed in its own transaction: a failing shipment is
	// reported and skipped, the rest proceed. The batch status mirrors the
	// last applied shipment status afterwards.
	ApplyToBatch(ctx context.Context, ts int64, req ApplyToBatchRequest) (ApplyToBatchResult, error)
}

type CreateBatchRequest struct {
	Requester string             `json:"requester"`
	Name      string             `json:"name"`
	Mode      model.DeliveryMode `json:"mode"`
}

type FormBatchRequest struct {
	Requester string `json:"requester"`
	Number    string `json:"number"`
}

type ApplyToBatchRequest struct {
	Requester string      `json:"requester"`
	Number    string      `json:"number"`
	Kind      CascadeKind `json:"kind"`

	// Status operation fields.
	Status          model.ShipmentStatus `json:"status,omitempty"`
	Location        string               `json:"location,omitempty"`
	Description     string               `json:"description,omitempty"`
	GenerateInvoice bool                 `json:"generate_invoice,omitempty"`

	// Receipt or dispatch time for the mark operations; for the status
	// operation it backdates the milestone date the target status records.
	OccurredAt model.DateTime `json:"occurred_at,omitempty"`
}

// CascadeFailure describes one shipment the cascade could not update.
type CascadeFailure struct {
	ShipmentID  string `json:"shipment_id"`
	TrackNumber string `json:"track_number"`
	Message     string `json:"message"`
}

type ApplyToBatchResult struct {
	Batch    model.Batch      `json:"batch"`
	Applied  int              `json:"applied"`
	Failures []CascadeFailure `json:"failures,omitempty"`
}

type _BatchController struct {
	batchStorage storage.BatchStorage
	lifecycle    lifecycle.LifecycleController
	webhookCtrl  webhook.WebhookController
}

func NewBatchController(batchStorage storage.BatchStorage, lifecycleCtrl lifecycle.LifecycleController, webhookCtrl webhook.WebhookController) BatchController {
	return &_BatchController{
		batchStorage: batchStorage,
		lifecycle:    lifecycleCtrl,
		webhookCtrl:  webhookCtrl,
	}
}

func (c *_BatchController) CreateBatch(ctx context.Context, ts int64, req CreateBatchRequest) (model.Batch, error) {
	if err := ValidateCreateBatchRequest(req); err != nil {
		return model.Batch{}, err
	}

	tx, ctx, err := c.batchStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Batch{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	number, err := c.batchStorage.NextBatchNumber(ctx, tx)
	if err != nil {
		return model.Batch{}, err
	}

	batch := model.Batch{
		Number:    number,
		Version:   1,
		Name:      req.Name,
		Mode:      req.Mode,
		Status:    model.BatchStatusForming,
		CreatedAt: ts,
		CreatedBy: req.Requester,
		UpdatedAt: ts,
		UpdatedBy: req.Requester,
	}

	if err := c.batchStorage.StoreBatch(ctx, tx, batch); err != nil {
		return model.Batch{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Batch{}, err
	}

	return batch, nil
}

func (c *_BatchController) FormBatch(ctx context.Context, ts int64, req FormBatchRequest) (model.Batch, error) {
	if err := ValidateFormBatchRequest(req); err != nil {
		return model.Batch{}, err
	}

	return c.updateBatch(ctx, ts, req.Number, req.Requester, "", func(batch *model.Batch) {
		batch.Status = model.BatchStatusFormed
	})
}

func (c *_BatchController) GetBatch(ctx context.Context, number string) (model.Batch, error) {
	tx, ctx, err := c.batchStorage.CreateTx(ctx)
	if err != nil {
		return model.Batch{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.batchStorage.GetBatch(ctx, tx, number)
}

func (c *_BatchController) ListBatches(ctx context.Context, req storage.ListBatchesRequest) (storage.ListBatchesResult, error) {
	tx, ctx, err := c.batchStorage.CreateTx(ctx)
	if err != nil {
		return storage.ListBatchesResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.batchStorage.ListBatches(ctx, tx, req)
}

func (c *_BatchController) ApplyToBatch(ctx context.Context, ts int64, req ApplyToBatchRequest) (ApplyToBatchResult, error) {
	if err := ValidateApplyToBatchRequest(req); err != nil {
		return ApplyToBatchResult{}, err
	}

	batch, err := c.GetBatch(ctx, req.Number)
	if err != nil {
		return ApplyToBatchResult{}, err
	}

	result := ApplyToBatchResult{Batch: batch}
	appliedStatus := model.ShipmentStatus("")
	offset := 0
	for {
		page, err := c.lifecycle.ListShipments(ctx, storage.ListShipmentsRequest{
			Offset:       offset,
			Limit:        cascadePageSize,
			BatchNumbers: []string{req.Number},
		})
		if err != nil {
			return ApplyToBatchResult{}, err
		}
		if len(page.Records) == 0 {
			break
		}

		for _, shipment := range page.Records {
			status, err := c.applyToShipment(ctx, ts, req, shipment)
			if err != nil {
				logrus.Warnf("cascade on batch %s skipped shipment %s: %v", req.Number, shipment.ID, err)
				result.Failures = append(result.Failures, CascadeFailure{
					ShipmentID:  shipment.ID,
					TrackNumber: shipment.TrackNumber,
					Message:     err.Error(),
				})
				continue
			}
			result.Applied += 1
			appliedStatus = status
		}

		offset += len(page.Records)
		if offset >= page.Total {
			break
		}
	}

	if result.Applied == 0 {
		return result, nil
	}

	batch, err = c.updateBatch(ctx, ts, req.Number, req.Requester, model.WebhookEventBatchCascadeApplied, func(batch *model.Batch) {
		batch.Status = model.BatchStatus(appliedStatus)
	})
	if err != nil {
		return ApplyToBatchResult{}, err
	}
	result.Batch = batch

	return result, nil
}

// applyToShipment runs one cascade operation on one shipment. The lifecycle
// controller opens its own transaction, so a failure here never taints the
// other shipments of the batch.
func (c *_BatchController) applyToShipment(ctx context.Context, ts int64, req ApplyToBatchRequest, shipment model.Shipment) (model.ShipmentStatus, error) {
	switch req.Kind {
	case CascadeKindStatus:
		_, err := c.lifecycle.ApplyStatusCommand(ctx, ts, lifecycle.ApplyStatusCommandRequest{
			Requester:       req.Requester,
			ShipmentID:      shipment.ID,
			Status:          req.Status,
			Location:        req.Location,
			Description:     req.Description,
			OccurredAt:      req.OccurredAt,
			GenerateInvoice: req.GenerateInvoice,
		})
		return req.Status, err
	case CascadeKindMarkReceived:
		_, err := c.lifecycle.MarkReceived(ctx, ts, lifecycle.MarkReceivedRequest{
			Requester:  req.Requester,
			ShipmentID: shipment.ID,
			ReceivedAt: req.OccurredAt,
		})
		return model.ShipmentStatusReceivedAtOrigin, err
	case CascadeKindMarkDispatched:
		_, err := c.lifecycle.MarkDispatched(ctx, ts, lifecycle.MarkDispatchedRequest{
			Requester:    req.Requester,
			ShipmentID:   shipment.ID,
			DispatchedAt: req.OccurredAt,
		})
		return model.ShipmentStatusInTransit, err
	default:
		return "", fmt.Errorf("unknown cascade kind %q%w", req.Kind, model.ErrInvalidParameter)
	}
}

func (c *_BatchController) updateBatch(ctx context.Context, ts int64, number, requester string, eventType model.WebhookEventType, mutate func(batch *model.Batch)) (model.Batch, error) {
	tx, ctx, err := c.batchStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Batch{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch, err := c.batchStorage.GetBatch(ctx, tx, number)
	if err != nil {
		return model.Batch{}, err
	}

	mutate(&batch)
	batch.Version += 1
	batch.UpdatedAt = ts
	batch.UpdatedBy = requester

	if err := c.batchStorage.StoreBatch(ctx, tx, batch); err != nil {
		return model.Batch{}, err
	}
	if eventType != "" {
		if err := c.webhookCtrl.SendWebhookEvent(ctx, tx, ts, "", batch.Number, eventType); err != nil {
			return model.Batch{}, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Batch{}, err
	}

	return batch, nil
}
