package lifecycle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cargoline/cargoline/pkg/cargo_server/invoice"
	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage"
	"github.com/cargoline/cargoline/pkg/cargo_server/trackno"
	"github.com/cargoline/cargoline/pkg/cargo_server/webhook"
	"github.com/cargoline/cargoline/pkg/util"
	"github.com/google/uuid"
)

// unbatchedSegment is the batch segment used in track numbers of shipments
// that do not belong to a batch yet.
const unbatchedSegment = "000000"

// LifecycleController drives the shipment state machine. Every status
// affecting operation derives the location from the LocationRules unless the
// operator overrides it, appends exactly one status history entry, and
// publishes a webhook event in the same transaction.
type LifecycleController interface {
	CreateShipment(ctx context.Context, ts int64, req CreateShipmentRequest) (model.Shipment, error)
	GetShipment(ctx context.Context, id string) (model.Shipment, error)
	ListShipments(ctx context.Context, req storage.ListShipmentsRequest) (storage.ListShipmentsResult, error)
	ListStatusHistory(ctx context.Context, req storage.ListStatusHistoryRequest) (storage.ListStatusHistoryResult, error)

	// ApplyStatusCommand sets an operator chosen status. Any target status is
	// accepted so an operator can correct mistakes; the sweeper applies its
	// own forward-only policy before calling this.
	ApplyStatusCommand(ctx context.Context, ts int64, req ApplyStatusCommandRequest) (model.Shipment, error)

	// MarkReceived records the arrival of the shipment at the origin
	// warehouse.
	MarkReceived(ctx context.Context, ts int64, req MarkReceivedRequest) (model.Shipment, error)

	// MarkDispatched records the departure from the origin warehouse and
	// derives the ETA from the transit time of the delivery mode.
	MarkDispatched(ctx context.Context, ts int64, req MarkDispatchedRequest) (model.Shipment, error)

	// ChangeDeliveryMode re-encodes the shipment track number for the new
	// mode and regenerates every item track number.
	ChangeDeliveryMode(ctx context.Context, ts int64, req ChangeDeliveryModeRequest) (model.Shipment, error)

	// ReplaceItems rewrites the item list. Place numbers are reassigned
	// sequentially from 1.
	ReplaceItems(ctx context.Context, ts int64, req ReplaceItemsRequest) (model.Shipment, error)
}

type ItemInput struct {
	WeightKg         model.Decimal `json:"weight_kg"`
	VolumeM3         model.Decimal `json:"volume_m3"`
	TariffAmount     model.Decimal `json:"tariff_amount"`
	InsuredValue     model.Decimal `json:"insured_value"`
	InsurancePercent model.Decimal `json:"insurance_percent"`
	DeliveryCost     model.Decimal `json:"delivery_cost"`
}

type CreateShipmentRequest struct {
	Requester  string `json:"requester"`
	ClientID   string `json:"client_id"`
	ClientCode string `json:"client_code"`

	BatchNumber string             `json:"batch_number,omitempty"`
	Mode        model.DeliveryMode `json:"mode,omitempty"` // Optional when the batch supplies the mode.
	RouteFrom   string             `json:"route_from"`
	RouteTo     string             `json:"route_to"`

	PackingCost       model.Decimal `json:"packing_cost"`
	LocalDeliveryCost model.Decimal `json:"local_delivery_cost"`

	Items []ItemInput `json:"items"`
}

type ApplyStatusCommandRequest struct {
	Requester  string `json:"requester"`
	ShipmentID string `json:"shipment_id"`

	Status      model.ShipmentStatus `json:"status"`
	Location    string               `json:"location,omitempty"`    // Overrides the derived location when set.
	Description string               `json:"description,omitempty"` // History note; defaulted when empty.

	// OccurredAt backdates the milestone date the target status records. Only
	// DELIVERED records one (the delivery date); when empty the command time
	// is used.
	OccurredAt model.DateTime `json:"occurred_at,omitempty"`

	// GenerateInvoice opts into automatic invoicing when the target status is
	// ON_DESTINATION_WAREHOUSE. It is a per call confirmation so a
	// retroactive status correction does not bill anyone by surprise.
	GenerateInvoice bool `json:"generate_invoice,omitempty"`
}

type MarkReceivedRequest struct {
	Requester  string         `json:"requester"`
	ShipmentID string         `json:"shipment_id"`
	ReceivedAt model.DateTime `json:"received_at"`
}

type MarkDispatchedRequest struct {
	Requester    string         `json:"requester"`
	ShipmentID   string         `json:"shipment_id"`
	DispatchedAt model.DateTime `json:"dispatched_at"`
}

type ChangeDeliveryModeRequest struct {
	Requester  string             `json:"requester"`
	ShipmentID string             `json:"shipment_id"`
	Mode       model.DeliveryMode `json:"mode"`
}

type ReplaceItemsRequest struct {
	Requester  string      `json:"requester"`
	ShipmentID string      `json:"shipment_id"`
	Items      []ItemInput `json:"items"`
}

type _LifecycleController struct {
	shipmentStorage storage.ShipmentStorage
	batchStorage    storage.BatchStorage
	invoiceGen      invoice.Generator
	webhookCtrl     webhook.WebhookController
	rules           LocationRules
	transit         TransitTimes
}

func NewLifecycleController(
	shipmentStorage storage.ShipmentStorage,
	batchStorage storage.BatchStorage,
	invoiceGen invoice.Generator,
	webhookCtrl webhook.WebhookController,
	rules LocationRules,
	transit TransitTimes,
) LifecycleController {
	return &_LifecycleController{
		shipmentStorage: shipmentStorage,
		batchStorage:    batchStorage,
		invoiceGen:      invoiceGen,
		webhookCtrl:     webhookCtrl,
		rules:           rules,
		transit:         transit,
	}
}

func (c *_LifecycleController) CreateShipment(ctx context.Context, ts int64, req CreateShipmentRequest) (model.Shipment, error) {
	if err := ValidateCreateShipmentRequest(req); err != nil {
		return model.Shipment{}, err
	}

	tx, ctx, err := c.shipmentStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Shipment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	trackSegment := unbatchedSegment
	trackMode := req.Mode
	if req.BatchNumber != "" {
		batch, err := c.batchStorage.GetBatch(ctx, tx, req.BatchNumber)
		if err != nil {
			return model.Shipment{}, err
		}
		trackSegment = batch.Number
		if trackMode == "" {
			trackMode = batch.Mode
		}
	}
	if trackMode == "" {
		return model.Shipment{}, fmt.Errorf("shipment without a batch needs a delivery mode%w", model.ErrInvalidParameter)
	}

	orderNumber, err := c.shipmentStorage.NextOrderNumber(ctx, tx, trackSegment, req.ClientCode)
	if err != nil {
		return model.Shipment{}, err
	}

	trackNumber := trackno.Encode(trackSegment, req.ClientCode, trackMode, orderNumber)
	shipment := model.Shipment{
		ID:                uuid.NewString(),
		Version:           1,
		ClientID:          req.ClientID,
		ClientCode:        req.ClientCode,
		TrackNumber:       trackNumber,
		Status:            model.ShipmentStatusCreated,
		Location:          c.rules.Resolve(model.ShipmentStatusCreated, req.RouteFrom),
		RouteFrom:         req.RouteFrom,
		RouteTo:           req.RouteTo,
		Mode:              req.Mode,
		BatchNumber:       req.BatchNumber,
		OrderNumber:       orderNumber,
		PackingCost:       req.PackingCost,
		LocalDeliveryCost: req.LocalDeliveryCost,
		Items:             buildItems(trackNumber, req.Items),
		CreatedAt:         ts,
		CreatedBy:         req.Requester,
		UpdatedAt:         ts,
		UpdatedBy:         req.Requester,
	}

	if err := c.shipmentStorage.StoreShipment(ctx, tx, shipment); err != nil {
		return model.Shipment{}, err
	}
	if err := c.shipmentStorage.AddStatusHistory(ctx, tx, newHistoryEntry(ts, shipment, "shipment created", req.Requester)); err != nil {
		return model.Shipment{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Shipment{}, err
	}

	return shipment, nil
}

func (c *_LifecycleController) GetShipment(ctx context.Context, id string) (model.Shipment, error) {
	tx, ctx, err := c.shipmentStorage.CreateTx(ctx)
	if err != nil {
		return model.Shipment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.shipmentStorage.GetShipment(ctx, tx, id)
}

func (c *_LifecycleController) ListShipments(ctx context.Context, req storage.ListShipmentsRequest) (storage.ListShipmentsResult, error) {
	tx, ctx, err := c.shipmentStorage.CreateTx(ctx)
	if err != nil {
		return storage.ListShipmentsResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.shipmentStorage.ListShipments(ctx, tx, req)
}

func (c *_LifecycleController) ListStatusHistory(ctx context.Context, req storage.ListStatusHistoryRequest) (storage.ListStatusHistoryResult, error) {
	tx, ctx, err := c.shipmentStorage.CreateTx(ctx)
	if err != nil {
		return storage.ListStatusHistoryResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.shipmentStorage.ListStatusHistory(ctx, tx, req)
}

func (c *_LifecycleController) ApplyStatusCommand(ctx context.Context, ts int64, req ApplyStatusCommandRequest) (model.Shipment, error) {
	if err := ValidateApplyStatusCommandRequest(req); err != nil {
		return model.Shipment{}, err
	}

	shipment, err := c.applyTransition(ctx, ts, req.ShipmentID, req.Requester, model.WebhookEventShipmentStatusChanged,
		func(shipment *model.Shipment) (string, error) {
			shipment.Status = req.Status
			if req.Location != "" {
				shipment.Location = req.Location
			} else {
				shipment.Location = c.rules.Resolve(req.Status, shipment.RouteFrom)
			}
			if req.Status == model.ShipmentStatusDelivered && shipment.DeliveredAt == nil {
				deliveredAt := req.OccurredAt
				if deliveredAt.IsZero() {
					deliveredAt = model.NewDateTimeFromUnix(ts)
				}
				shipment.DeliveredAt = &deliveredAt
			}
			if req.Description != "" {
				return req.Description, nil
			}
			return fmt.Sprintf("status changed to %s", req.Status), nil
		})
	if err != nil {
		return model.Shipment{}, err
	}

	if req.Status == model.ShipmentStatusOnDestWarehouse && req.GenerateInvoice {
		_, err := c.invoiceGen.EnsureInvoice(ctx, ts, invoice.EnsureInvoiceRequest{
			Requester:  req.Requester,
			ShipmentID: req.ShipmentID,
		})
		if err != nil {
			return shipment, err
		}
	}

	return shipment, nil
}

func (c *_LifecycleController) MarkReceived(ctx context.Context, ts int64, req MarkReceivedRequest) (model.Shipment, error) {
	if err := ValidateMarkReceivedRequest(req); err != nil {
		return model.Shipment{}, err
	}

	receivedAt := req.ReceivedAt
	return c.applyTransition(ctx, ts, req.ShipmentID, req.Requester, model.WebhookEventShipmentReceived,
		func(shipment *model.Shipment) (string, error) {
			shipment.Status = model.ShipmentStatusReceivedAtOrigin
			shipment.Location = c.rules.Resolve(model.ShipmentStatusReceivedAtOrigin, shipment.RouteFrom)
			shipment.ReceivedAt = &receivedAt
			return "arrived at origin warehouse", nil
		})
}

func (c *_LifecycleController) MarkDispatched(ctx context.Context, ts int64, req MarkDispatchedRequest) (model.Shipment, error) {
	if err := ValidateMarkDispatchedRequest(req); err != nil {
		return model.Shipment{}, err
	}

	dispatchedAt := req.DispatchedAt
	return c.applyTransitionTx(ctx, ts, req.ShipmentID, req.Requester, model.WebhookEventShipmentDispatched,
		func(tx storage.Tx, ctx context.Context, shipment *model.Shipment) (string, error) {
			mode, err := c.resolveMode(ctx, tx, *shipment)
			if err != nil {
				return "", err
			}
			shipment.Status = model.ShipmentStatusInTransit
			shipment.Location = c.rules.Resolve(model.ShipmentStatusInTransit, shipment.RouteFrom)
			shipment.DispatchedAt = &dispatchedAt
			eta := model.NewDateTime(c.transit.Estimate(mode, dispatchedAt.GetTime()))
			shipment.ETA = &eta
			return "dispatched", nil
		})
}

func (c *_LifecycleController) ChangeDeliveryMode(ctx context.Context, ts int64, req ChangeDeliveryModeRequest) (model.Shipment, error) {
	if err := ValidateChangeDeliveryModeRequest(req); err != nil {
		return model.Shipment{}, err
	}

	return c.applyTransition(ctx, ts, req.ShipmentID, req.Requester, "",
		func(shipment *model.Shipment) (string, error) {
			newTrack, err := trackno.ReEncodeForModeChange(shipment.TrackNumber, req.Mode)
			if err != nil {
				return "", err
			}

			shipment.Mode = req.Mode
			shipment.TrackNumber = newTrack
			// Regenerate every item track unconditionally. Legacy data drifts
			// by copy-paste, so even items whose track already looks right
			// are rewritten.
			for i := range shipment.Items {
				shipment.Items[i].TrackNumber = trackno.ItemTrackNumber(newTrack, shipment.Items[i].PlaceNumber)
			}
			if shipment.DispatchedAt != nil {
				eta := model.NewDateTime(c.transit.Estimate(req.Mode, shipment.DispatchedAt.GetTime()))
				shipment.ETA = &eta
			}
			return fmt.Sprintf("delivery mode changed to %s", req.Mode), nil
		})
}

func (c *_LifecycleController) ReplaceItems(ctx context.Context, ts int64, req ReplaceItemsRequest) (model.Shipment, error) {
	if err := ValidateReplaceItemsRequest(req); err != nil {
		return model.Shipment{}, err
	}

	tx, ctx, err := c.shipmentStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Shipment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	shipment, err := c.shipmentStorage.GetShipment(ctx, tx, req.ShipmentID)
	if err != nil {
		return model.Shipment{}, err
	}

	shipment.Items = buildItems(shipment.TrackNumber, req.Items)
	shipment.Version += 1
	shipment.UpdatedAt = ts
	shipment.UpdatedBy = req.Requester

	if err := c.shipmentStorage.StoreShipment(ctx, tx, shipment); err != nil {
		return model.Shipment{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Shipment{}, err
	}

	return shipment, nil
}

// applyTransition runs one status affecting mutation in a serializable
// transaction: load, mutate, store, append history, publish the webhook
// event. The mutate callback returns the history note.
func (c *_LifecycleController) applyTransition(
	ctx context.Context,
	ts int64,
	shipmentID, requester string,
	eventType model.WebhookEventType,
	mutate func(shipment *model.Shipment) (string, error),
) (model.Shipment, error) {
	return c.applyTransitionTx(ctx, ts, shipmentID, requester, eventType,
		func(_ storage.Tx, _ context.Context, shipment *model.Shipment) (string, error) {
			return mutate(shipment)
		})
}

func (c *_LifecycleController) applyTransitionTx(
	ctx context.Context,
	ts int64,
	shipmentID, requester string,
	eventType model.WebhookEventType,
	mutate func(tx storage.Tx, ctx context.Context, shipment *model.Shipment) (string, error),
) (model.Shipment, error) {
	tx, ctx, err := c.shipmentStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Shipment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	shipment, err := c.shipmentStorage.GetShipment(ctx, tx, shipmentID)
	if err != nil {
		return model.Shipment{}, err
	}

	description, err := mutate(tx, ctx, &shipment)
	if err != nil {
		return model.Shipment{}, err
	}

	shipment.Version += 1
	shipment.UpdatedAt = ts
	shipment.UpdatedBy = requester

	if err := c.shipmentStorage.StoreShipment(ctx, tx, shipment); err != nil {
		return model.Shipment{}, err
	}
	if err := c.shipmentStorage.AddStatusHistory(ctx, tx, newHistoryEntry(ts, shipment, description, requester)); err != nil {
		return model.Shipment{}, err
	}
	if eventType != "" {
		if err := c.webhookCtrl.SendWebhookEvent(ctx, tx, ts, shipment.ClientID, shipment.ID, eventType); err != nil {
			return model.Shipment{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Shipment{}, err
	}

	return shipment, nil
}

// resolveMode resolves the delivery mode once at the start of an operation:
// the shipment's own mode, falling back to the batch mode.
func (c *_LifecycleController) resolveMode(ctx context.Context, tx storage.Tx, shipment model.Shipment) (model.DeliveryMode, error) {
	if shipment.Mode != "" {
		return shipment.Mode, nil
	}
	if shipment.BatchNumber == "" {
		return "", fmt.Errorf("shipment %s has no delivery mode%w", shipment.ID, model.ErrInvalidParameter)
	}

	batch, err := c.batchStorage.GetBatch(ctx, tx, shipment.BatchNumber)
	if err != nil {
		return "", err
	}
	return batch.Mode, nil
}

func buildItems(trackNumber string, inputs []ItemInput) []model.ShipmentItem {
	hundred := model.NewDecimalFromInt(100)
	items := make([]model.ShipmentItem, 0, len(inputs))
	for i, input := range inputs {
		placeNumber := i + 1
		items = append(items, model.ShipmentItem{
			PlaceNumber:      placeNumber,
			TrackNumber:      trackno.ItemTrackNumber(trackNumber, placeNumber),
			WeightKg:         input.WeightKg,
			VolumeM3:         input.VolumeM3,
			TariffAmount:     input.TariffAmount,
			InsuredValue:     input.InsuredValue,
			InsurancePercent: input.InsurancePercent,
			InsuranceCost:    input.InsuredValue.Mul(input.InsurancePercent).Div(hundred),
			DeliveryCost:     input.DeliveryCost,
		})
	}
	return items
}

func newHistoryEntry(ts int64, shipment model.Shipment, description, requester string) model.StatusHistoryEntry {
	return model.StatusHistoryEntry{
		ID:          util.NewUUID(),
		ShipmentID:  shipment.ID,
		Status:      shipment.Status,
		Location:    shipment.Location,
		Description: description,
		CreatedAt:   ts,
		CreatedBy:   requester,
	}
}
