package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/cargoline/cargoline/pkg/cargo_server/invoice"
	"github.com/cargoline/cargoline/pkg/cargo_server/lifecycle"
	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage"
	mock_invoice "github.com/cargoline/cargoline/test/mock/cargo_server/invoice"
	mock_storage "github.com/cargoline/cargoline/test/mock/cargo_server/storage"
	mock_webhook "github.com/cargoline/cargoline/test/mock/cargo_server/webhook"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type LifecycleControllerTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	shipmentStorage *mock_storage.MockShipmentStorage
	batchStorage    *mock_storage.MockBatchStorage
	invoiceGen      *mock_invoice.MockGenerator
	webhookCtrl     *mock_webhook.MockWebhookController
	tx              *mock_storage.MockTx
	lifecycleCtrl   lifecycle.LifecycleController
}

func TestLifecycleController(t *testing.T) {
	suite.Run(t, new(LifecycleControllerTestSuite))
}

func (s *LifecycleControllerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.shipmentStorage = mock_storage.NewMockShipmentStorage(s.ctrl)
	s.batchStorage = mock_storage.NewMockBatchStorage(s.ctrl)
	s.invoiceGen = mock_invoice.NewMockGenerator(s.ctrl)
	s.webhookCtrl = mock_webhook.NewMockWebhookController(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.lifecycleCtrl = lifecycle.NewLifecycleController(
		s.shipmentStorage,
		s.batchStorage,
		s.invoiceGen,
		s.webhookCtrl,
		lifecycle.DefaultLocationRules(),
		lifecycle.DefaultTransitTimes(),
	)
}

func (s *LifecycleControllerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LifecycleControllerTestSuite) TestCreateShipment() {
	ts := time.Now().Unix()

	req := lifecycle.CreateShipmentRequest{
		Requester:   "operator",
		ClientID:    "client_id",
		ClientCode:  "7890",
		BatchNumber: "000123",
		RouteFrom:   "Guangzhou warehouse",
		RouteTo:     "Moscow",
		PackingCost: model.NewDecimalFromInt(10),
		Items: []lifecycle.ItemInput{
			{
				WeightKg:         model.NewDecimalFromInt(5),
				InsuredValue:     model.NewDecimalFromInt(200),
				InsurancePercent: model.NewDecimalFromInt(3),
				DeliveryCost:     model.NewDecimalFromInt(40),
			},
			{
				WeightKg:     model.NewDecimalFromInt(7),
				DeliveryCost: model.NewDecimalFromInt(55),
			},
		},
	}

	batch := model.Batch{
		Number: "000123",
		Mode:   model.DeliveryModeSea,
		Status: model.BatchStatusForming,
	}

	gomock.InOrder(
		s.shipmentStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.batchStorage.EXPECT().GetBatch(gomock.Any(), s.tx, "000123").Return(batch, nil),
		s.shipmentStorage.EXPECT().NextOrderNumber(gomock.Any(), s.tx, "000123", "7890").Return(2, nil),
		s.shipmentStorage.EXPECT().StoreShipment(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, shipment model.Shipment) error {
				s.Assert().Equal("000123-7890S0002", shipment.TrackNumber)
				s.Assert().Equal(model.ShipmentStatusCreated, shipment.Status)
				s.Assert().Equal(2, shipment.OrderNumber)
				s.Assert().Empty(shipment.Mode)
				s.Require().Len(shipment.Items, 2)
				s.Assert().Equal("000123-7890S0002-1", shipment.Items[0].TrackNumber)
				s.Assert().Equal("000123-7890S0002-2", shipment.Items[1].TrackNumber)
				s.Assert().Equal(1, shipment.Items[0].PlaceNumber)
				s.Assert().Equal(2, shipment.Items[1].PlaceNumber)
				s.Assert().True(shipment.Items[0].InsuranceCost.Equal(model.NewDecimalFromInt(6)))
				s.Assert().True(shipment.Items[1].InsuranceCost.IsZero())
				return nil
			},
		),
		s.shipmentStorage.EXPECT().AddStatusHistory(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, entry model.StatusHistoryEntry) error {
				s.Assert().Equal(model.ShipmentStatusCreated, entry.Status)
				s.Assert().Equal("shipment created", entry.Description)
				s.Assert().Equal("operator", entry.CreatedBy)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	res, err := s.lifecycleCtrl.CreateShipment(s.ctx, ts, req)
	s.NoError(err)
	s.Assert().Equal("000123-7890S0002", res.TrackNumber)
	s.Assert().Equal(int64(1), res.Version)
}

func (s *LifecycleControllerTestSuite) TestCreateShipmentWithoutBatchNeedsMode() {
	req := lifecycle.CreateShipmentRequest{
		Requester:  "operator",
		ClientID:   "client_id",
		ClientCode: "7890",
		RouteFrom:  "Yiwu market",
		RouteTo:    "Moscow",
	}

	_, err := s.lifecycleCtrl.CreateShipment(s.ctx, time.Now().Unix(), req)
	s.ErrorIs(err, model.ErrInvalidParameter)
}

func (s *LifecycleControllerTestSuite) TestCreateShipmentWithoutBatchUsesPlaceholderSegment() {
	ts := time.Now().Unix()

	req := lifecycle.CreateShipmentRequest{
		Requester:  "operator",
		ClientID:   "client_id",
		ClientCode: "7890",
		Mode:       model.DeliveryModeAir,
		RouteFrom:  "Yiwu market",
		RouteTo:    "Moscow",
	}

	gomock.InOrder(
		s.shipmentStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.shipmentStorage.EXPECT().NextOrderNumber(gomock.Any(), s.tx, "000000", "7890").Return(1, nil),
		s.shipmentStorage.EXPECT().StoreShipment(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, shipment model.Shipment) error {
				s.Assert().Equal("000000-7890A0001", shipment.TrackNumber)
				s.Assert().Empty(shipment.BatchNumber)
				return nil
			},
		),
		s.shipmentStorage.EXPECT().AddStatusHistory(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	res, err := s.lifecycleCtrl.CreateShipment(s.ctx, ts, req)
	s.NoError(err)
	s.Assert().Equal("000000-7890A0001", res.TrackNumber)
}

func (s *LifecycleControllerTestSuite) TestApplyStatusCommand() {
	ts := time.Now().Unix()

	shipment := model.Shipment{
		ID:          "ship_1",
		Version:     3,
		ClientID:    "client_id",
		TrackNumber: "000123-7890S0002",
		Status:      model.ShipmentStatusInTransit,
		RouteFrom:   "Shenzhen port",
	}

	gomock.InOrder(
		s.shipmentStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.shipmentStorage.EXPECT().GetShipment(gomock.Any(), s.tx, "ship_1").Return(shipment, nil),
		s.shipmentStorage.EXPECT().StoreShipment(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, updated model.Shipment) error {
				s.Assert().Equal(model.ShipmentStatusArrivedDestCountry, updated.Status)
				s.Assert().Equal("Destination warehouse", updated.Location)
				s.Assert().Equal(int64(4), updated.Version)
				return nil
			},
		),
		s.shipmentStorage.EXPECT().AddStatusHistory(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, entry model.StatusHistoryEntry) error {
				s.Assert().Equal("status changed to ARRIVED_DESTINATION_COUNTRY", entry.Description)
				return nil
			},
		),
		s.webhookCtrl.EXPECT().SendWebhookEvent(gomock.Any(), s.tx, ts, "client_id", "ship_1", model.WebhookEventShipmentStatusChanged).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	res, err := s.lifecycleCtrl.ApplyStatusCommand(s.ctx, ts, lifecycle.ApplyStatusCommandRequest{
		Requester:  "operator",
		ShipmentID: "ship_1",
		Status:     model.ShipmentStatusArrivedDestCountry,
	})
	s.NoError(err)
	s.Assert().Equal(model.ShipmentStatusArrivedDestCountry, res.Status)
}

func (s *LifecycleControllerTestSuite) TestApplyStatusCommandDeliveredRecordsDeliveryDate() {
	ts := time.Now().Unix()

	shipment := model.Shipment{
		ID:          "ship_1",
		Version:     7,
		ClientID:    "client_id",
		TrackNumber: "000123-7890S0002",
		Status:      model.ShipmentStatusOnDestWarehouse,
		RouteFrom:   "Guangzhou",
	}

	gomock.InOrder(
		s.shipmentStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.shipmentStorage.EXPECT().GetShipment(gomock.Any(), s.tx, "ship_1").Return(shipment, nil),
		s.shipmentStorage.EXPECT().StoreShipment(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, updated model.Shipment) error {
				s.Assert().Equal(model.ShipmentStatusDelivered, updated.Status)
				s.Require().NotNil(updated.DeliveredAt)
				s.Assert().Equal(ts, updated.DeliveredAt.Unix())
				return nil
			},
		),
		s.shipmentStorage.EXPECT().AddStatusHistory(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.webhookCtrl.EXPECT().SendWebhookEvent(gomock.Any(), s.tx, ts, "client_id", "ship_1", model.WebhookEventShipmentStatusChanged).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	res, err := s.lifecycleCtrl.ApplyStatusCommand(s.ctx, ts, lifecycle.ApplyStatusCommandRequest{
		Requester:  "operator",
		ShipmentID: "ship_1",
		Status:     model.ShipmentStatusDelivered,
	})
	s.NoError(err)
	s.Require().NotNil(res.DeliveredAt)
}

func (s *LifecycleControllerTestSuite) TestApplyStatusCommandDeliveredBackdated() {
	ts := time.Now().Unix()
	occurredAt := model.NewDateTimeFromUnix(ts - 86400)

	shipment := model.Shipment{
		ID:          "ship_1",
		Version:     7,
		ClientID:    "client_id",
		TrackNumber: "000123-7890S0002",
		Status:      model.ShipmentStatusOnDestWarehouse,
		RouteFrom:   "Guangzhou",
	}

	gomock.InOrder(
		s.shipmentStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.shipmentStorage.EXPECT().GetShipment(gomock.Any(), s.tx, "ship_1").Return(shipment, nil),
		s.shipmentStorage.EXPECT().StoreShipment(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, updated model.Shipment) error {
				s.Require().NotNil(updated.DeliveredAt)
				s.Assert().Equal(occurredAt.Unix(), updated.DeliveredAt.Unix())
				return nil
			},
		),
		s.shipmentStorage.EXPECT().AddStatusHistory(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.webhookCtrl.EXPECT().SendWebhookEvent(gomock.Any(), s.tx, ts, "client_id", "ship_1", model.WebhookEventShipmentStatusChanged).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.lifecycleCtrl.ApplyStatusCommand(s.ctx, ts, lifecycle.ApplyStatusCommandRequest{
		Requester:  "operator",
		ShipmentID: "ship_1",
		Status:     model.ShipmentStatusDelivered,
		OccurredAt: occurredAt,
	})
	s.NoError(err)
}

func (s *LifecycleControllerTestSuite) TestApplyStatusCommandTriggersInvoice() {
	ts := time.Now().Unix()

	shipment := model.Shipment{
		ID:          "ship_1",
		Version:     5,
		ClientID:    "client_id",
		TrackNumber: "000123-7890S0002",
		Status:      model.ShipmentStatusArrivedDestCountry,
		RouteFrom:   "Guangzhou",
	}

	gomock.InOrder(
		s.shipmentStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.shipmentStorage.EXPECT().GetShipment(gomock.Any(), s.tx, "ship_1").Return(shipment, nil),
		s.shipmentStorage.EXPECT().StoreShipment(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.shipmentStorage.EXPECT().AddStatusHistory(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.webhookCtrl.EXPECT().SendWebhookEvent(gomock.Any(), s.tx, ts, "client_id", "ship_1", model.WebhookEventShipmentStatusChanged).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
		// The invoice is generated only after the status change committed.
		s.invoiceGen.EXPECT().EnsureInvoice(gomock.Any(), ts, invoice.EnsureInvoiceRequest{
			Requester:  "operator",
			ShipmentID: "ship_1",
		}).Return(invoice.EnsureInvoiceResult{}, nil),
	)

	_, err := s.lifecycleCtrl.ApplyStatusCommand(s.ctx, ts, lifecycle.ApplyStatusCommandRequest{
		Requester:       "operator",
		ShipmentID:      "ship_1",
		Status:          model.ShipmentStatusOnDestWarehouse,
		GenerateInvoice: true,
	})
	s.NoError(err)
}

func (s *LifecycleControllerTestSuite) TestMarkReceived() {
	ts := time.Now().Unix()
	receivedAt := model.NewDateTimeFromUnix(ts - 3600)

	shipment := model.Shipment{
		ID:        "ship_1",
		Version:   1,
		ClientID:  "client_id",
		Status:    model.ShipmentStatusCreated,
		RouteFrom: "Yiwu market",
	}

	gomock.InOrder(
		s.shipmentStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.shipmentStorage.EXPECT().GetShipment(gomock.Any(), s.tx, "ship_1").Return(shipment, nil),
		s.shipmentStorage.EXPECT().StoreShipment(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, updated model.Shipment) error {
				s.Assert().Equal(model.ShipmentStatusReceivedAtOrigin, updated.Status)
				s.Assert().Equal("Origin warehouse, Yiwu", updated.Location)
				s.Require().NotNil(updated.ReceivedAt)
				s.Assert().Equal(receivedAt.Unix(), updated.ReceivedAt.Unix())
				return nil
			},
		),
		s.shipmentStorage.EXPECT().AddStatusHistory(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, entry model.StatusHistoryEntry) error {
				s.Assert().Equal("arrived at origin warehouse", entry.Description)
				return nil
			},
		),
		s.webhookCtrl.EXPECT().SendWebhookEvent(gomock.Any(), s.tx, ts, "client_id", "ship_1", model.WebhookEventShipmentReceived).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.lifecycleCtrl.MarkReceived(s.ctx, ts, lifecycle.MarkReceivedRequest{
		Requester:  "operator",
		ShipmentID: "ship_1",
		ReceivedAt: receivedAt,
	})
	s.NoError(err)
}

func (s *LifecycleControllerTestSuite) TestMarkDispatchedDerivesETAFromBatchMode() {
	ts := time.Now().Unix()
	dispatchedAt := model.NewDateTimeFromUnix(ts)

	shipment := model.Shipment{
		ID:          "ship_1",
		Version:     2,
		ClientID:    "client_id",
		Status:      model.ShipmentStatusConsolidation,
		RouteFrom:   "Guangzhou",
		BatchNumber: "000123",
	}
	batch := model.Batch{
		Number: "000123",
		Mode:   model.DeliveryModeSea,
	}

	gomock.InOrder(
		s.shipmentStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.shipmentStorage.EXPECT().GetShipment(gomock.Any(), s.tx, "ship_1").Return(shipment, nil),
		s.batchStorage.EXPECT().GetBatch(gomock.Any(), s.tx, "000123").Return(batch, nil),
		s.shipmentStorage.EXPECT().StoreShipment(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, updated model.Shipment) error {
				s.Assert().Equal(model.ShipmentStatusInTransit, updated.Status)
				s.Assert().Equal("In transit", updated.Location)
				s.Require().NotNil(updated.ETA)
				expectedETA := dispatchedAt.GetTime().AddDate(0, 0, 75)
				s.Assert().Equal(expectedETA.Unix(), updated.ETA.Unix())
				return nil
			},
		),
		s.shipmentStorage.EXPECT().AddStatusHistory(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.webhookCtrl.EXPECT().SendWebhookEvent(gomock.Any(), s.tx, ts, "client_id", "ship_1", model.WebhookEventShipmentDispatched).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.lifecycleCtrl.MarkDispatched(s.ctx, ts, lifecycle.MarkDispatchedRequest{
		Requester:    "operator",
		ShipmentID:   "ship_1",
		DispatchedAt: dispatchedAt,
	})
	s.NoError(err)
}

func (s *LifecycleControllerTestSuite) TestChangeDeliveryMode() {
	ts := time.Now().Unix()
	dispatchedAt := model.NewDateTimeFromUnix(ts - 86400)

	shipment := model.Shipment{
		ID:           "ship_1",
		Version:      4,
		ClientID:     "client_id",
		TrackNumber:  "000123-7890A0002",
		Status:       model.ShipmentStatusInTransit,
		Mode:         model.DeliveryModeAir,
		RouteFrom:    "Guangzhou",
		DispatchedAt: &dispatchedAt,
		Items: []model.ShipmentItem{
			{PlaceNumber: 1, TrackNumber: "000123-7890A0002-1"},
			{PlaceNumber: 2, TrackNumber: "legacy-junk"},
		},
	}

	gomock.InOrder(
		s.shipmentStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.shipmentStorage.EXPECT().GetShipment(gomock.Any(), s.tx, "ship_1").Return(shipment, nil),
		s.shipmentStorage.EXPECT().StoreShipment(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, updated model.Shipment) error {
				s.Assert().Equal("000123-7890S0002", updated.TrackNumber)
				s.Assert().Equal(model.DeliveryModeSea, updated.Mode)
				s.Assert().Equal("000123-7890S0002-1", updated.Items[0].TrackNumber)
				s.Assert().Equal("000123-7890S0002-2", updated.Items[1].TrackNumber)
				s.Require().NotNil(updated.ETA)
				expectedETA := dispatchedAt.GetTime().AddDate(0, 0, 75)
				s.Assert().Equal(expectedETA.Unix(), updated.ETA.Unix())
				return nil
			},
		),
		s.shipmentStorage.EXPECT().AddStatusHistory(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, entry model.StatusHistoryEntry) error {
				s.Assert().Equal("delivery mode changed to SEA", entry.Description)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.lifecycleCtrl.ChangeDeliveryMode(s.ctx, ts, lifecycle.ChangeDeliveryModeRequest{
		Requester:  "operator",
		ShipmentID: "ship_1",
		Mode:       model.DeliveryModeSea,
	})
	s.NoError(err)
}

func (s *LifecycleControllerTestSuite) TestChangeDeliveryModeUndecodableTrack() {
	shipment := model.Shipment{
		ID:          "ship_1",
		TrackNumber: "garbage",
		Status:      model.ShipmentStatusInTransit,
	}

	gomock.InOrder(
		s.shipmentStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.shipmentStorage.EXPECT().GetShipment(gomock.Any(), s.tx, "ship_1").Return(shipment, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.lifecycleCtrl.ChangeDeliveryMode(s.ctx, time.Now().Unix(), lifecycle.ChangeDeliveryModeRequest{
		Requester:  "operator",
		ShipmentID: "ship_1",
		Mode:       model.DeliveryModeSea,
	})
	s.ErrorIs(err, model.ErrTrackNumberDecode)
}

func (s *LifecycleControllerTestSuite) TestReplaceItems() {
	ts := time.Now().Unix()

	shipment := model.Shipment{
		ID:          "ship_1",
		Version:     2,
		TrackNumber: "000123-7890S0002",
		Status:      model.ShipmentStatusCreated,
		Items: []model.ShipmentItem{
			{PlaceNumber: 1, TrackNumber: "000123-7890S0002-1"},
		},
	}

	gomock.InOrder(
		s.shipmentStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.shipmentStorage.EXPECT().GetShipment(gomock.Any(), s.tx, "ship_1").Return(shipment, nil),
		s.shipmentStorage.EXPECT().StoreShipment(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, updated model.Shipment) error {
				s.Require().Len(updated.Items, 2)
				s.Assert().Equal("000123-7890S0002-1", updated.Items[0].TrackNumber)
				s.Assert().Equal("000123-7890S0002-2", updated.Items[1].TrackNumber)
				s.Assert().Equal(int64(3), updated.Version)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.lifecycleCtrl.ReplaceItems(s.ctx, ts, lifecycle.ReplaceItemsRequest{
		Requester:  "operator",
		ShipmentID: "ship_1",
		Items: []lifecycle.ItemInput{
			{WeightKg: model.NewDecimalFromInt(1)},
			{WeightKg: model.NewDecimalFromInt(2)},
		},
	})
	s.NoError(err)
}
