package sweeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cargoline/cargoline/pkg/cargo_server/lifecycle"
	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage"
	"github.com/cargoline/cargoline/pkg/cargo_server/sweeper"
	"github.com/cargoline/cargoline/pkg/util"
	mock_lifecycle "github.com/cargoline/cargoline/test/mock/cargo_server/lifecycle"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type SweeperTestSuite struct {
	suite.Suite

	ctx           context.Context
	ctrl          *gomock.Controller
	lifecycleCtrl *mock_lifecycle.MockLifecycleController
	sweeper       *sweeper.Sweeper
}

func TestSweeper(t *testing.T) {
	suite.Run(t, new(SweeperTestSuite))
}

func (s *SweeperTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.lifecycleCtrl = mock_lifecycle.NewMockLifecycleController(s.ctrl)
	s.sweeper = sweeper.NewSweeper(sweeper.Config{CheckInterval: 60, PageSize: 10}, s.lifecycleCtrl)
}

func (s *SweeperTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SweeperTestSuite) TestSweepOnce() {
	now := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	dispatched := model.NewDateTimeFromUnix(now.AddDate(0, 0, -80).Unix())
	etaPassed := model.NewDateTimeFromUnix(now.AddDate(0, 0, -5).Unix())
	etaFuture := model.NewDateTimeFromUnix(now.AddDate(0, 0, 10).Unix())
	received := model.NewDateTimeFromUnix(now.AddDate(0, 0, -90).Unix())
	delivered := model.NewDateTimeFromUnix(now.AddDate(0, 0, -1).Unix())

	shipments := []model.Shipment{
		// ETA in the past: moves on to ARRIVED_DESTINATION_COUNTRY.
		{
			ID:           "shipment-1",
			Status:       model.ShipmentStatusInTransit,
			ReceivedAt:   util.Ptr(received),
			DispatchedAt: util.Ptr(dispatched),
			ETA:          util.Ptr(etaPassed),
		},
		// ETA still ahead: stays in transit, nothing to do.
		{
			ID:           "shipment-2",
			Status:       model.ShipmentStatusInTransit,
			ReceivedAt:   util.Ptr(received),
			DispatchedAt: util.Ptr(dispatched),
			ETA:          util.Ptr(etaFuture),
		},
		// An operator already advanced this one past what the dates imply.
		// The sweeper never moves a status backwards.
		{
			ID:           "shipment-3",
			Status:       model.ShipmentStatusOnDestWarehouse,
			ReceivedAt:   util.Ptr(received),
			DispatchedAt: util.Ptr(dispatched),
			ETA:          util.Ptr(etaPassed),
		},
		// Dispatched but still CONSOLIDATION: moves to IN_TRANSIT.
		{
			ID:           "shipment-4",
			Status:       model.ShipmentStatusConsolidation,
			ReceivedAt:   util.Ptr(received),
			DispatchedAt: util.Ptr(dispatched),
		},
		// Delivery date takes precedence over everything else.
		{
			ID:           "shipment-5",
			Status:       model.ShipmentStatusOnDestWarehouse,
			ReceivedAt:   util.Ptr(received),
			DispatchedAt: util.Ptr(dispatched),
			ETA:          util.Ptr(etaPassed),
			DeliveredAt:  util.Ptr(delivered),
		},
	}

	gomock.InOrder(
		s.lifecycleCtrl.EXPECT().ListShipments(gomock.Any(), storage.ListShipmentsRequest{
			Offset:    0,
			Limit:     10,
			Sweepable: true,
		}).Return(storage.ListShipmentsResult{Total: 5, Records: shipments}, nil),
		s.lifecycleCtrl.EXPECT().ApplyStatusCommand(gomock.Any(), now.Unix(), lifecycle.ApplyStatusCommandRequest{
			Requester:   sweeper.Requester,
			ShipmentID:  "shipment-1",
			Status:      model.ShipmentStatusArrivedDestCountry,
			Description: "automatic status update",
		}).Return(model.Shipment{}, nil),
		s.lifecycleCtrl.EXPECT().ApplyStatusCommand(gomock.Any(), now.Unix(), lifecycle.ApplyStatusCommandRequest{
			Requester:   sweeper.Requester,
			ShipmentID:  "shipment-4",
			Status:      model.ShipmentStatusInTransit,
			Description: "automatic status update",
		}).Return(model.Shipment{}, nil),
		s.lifecycleCtrl.EXPECT().ApplyStatusCommand(gomock.Any(), now.Unix(), lifecycle.ApplyStatusCommandRequest{
			Requester:   sweeper.Requester,
			ShipmentID:  "shipment-5",
			Status:      model.ShipmentStatusDelivered,
			Description: "automatic status update",
		}).Return(model.Shipment{}, nil),
	)

	s.Require().NoError(s.sweeper.SweepOnce(s.ctx, now))
}

func (s *SweeperTestSuite) TestSweepOncePaging() {
	now := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	received := model.NewDateTimeFromUnix(now.AddDate(0, 0, -2).Unix())

	firstPage := make([]model.Shipment, 0, 10)
	for i := 0; i < 10; i++ {
		firstPage = append(firstPage, model.Shipment{
			ID:         "shipment-a",
			Status:     model.ShipmentStatusReceivedAtOrigin,
			ReceivedAt: util.Ptr(received),
		})
	}
	secondPage := []model.Shipment{
		{
			ID:         "shipment-b",
			Status:     model.ShipmentStatusCreated,
			ReceivedAt: util.Ptr(received),
		},
	}

	gomock.InOrder(
		s.lifecycleCtrl.EXPECT().ListShipments(gomock.Any(), storage.ListShipmentsRequest{
			Offset:    0,
			Limit:     10,
			Sweepable: true,
		}).Return(storage.ListShipmentsResult{Total: 11, Records: firstPage}, nil),
		s.lifecycleCtrl.EXPECT().ListShipments(gomock.Any(), storage.ListShipmentsRequest{
			Offset:    10,
			Limit:     10,
			Sweepable: true,
		}).Return(storage.ListShipmentsResult{Total: 11, Records: secondPage}, nil),
		s.lifecycleCtrl.EXPECT().ApplyStatusCommand(gomock.Any(), now.Unix(), lifecycle.ApplyStatusCommandRequest{
			Requester:   sweeper.Requester,
			ShipmentID:  "shipment-b",
			Status:      model.ShipmentStatusReceivedAtOrigin,
			Description: "automatic status update",
		}).Return(model.Shipment{}, nil),
	)

	s.Require().NoError(s.sweeper.SweepOnce(s.ctx, now))
}

func (s *SweeperTestSuite) TestSweepOnceSkipsFailingShipment() {
	now := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	received := model.NewDateTimeFromUnix(now.AddDate(0, 0, -2).Unix())

	shipments := []model.Shipment{
		{ID: "shipment-1", Status: model.ShipmentStatusCreated, ReceivedAt: util.Ptr(received)},
		{ID: "shipment-2", Status: model.ShipmentStatusCreated, ReceivedAt: util.Ptr(received)},
	}

	gomock.InOrder(
		s.lifecycleCtrl.EXPECT().ListShipments(gomock.Any(), gomock.Any()).Return(storage.ListShipmentsResult{Total: 2, Records: shipments}, nil),
		s.lifecycleCtrl.EXPECT().ApplyStatusCommand(gomock.Any(), now.Unix(), gomock.Any()).Return(model.Shipment{}, errors.New("serialization failure")),
		s.lifecycleCtrl.EXPECT().ApplyStatusCommand(gomock.Any(), now.Unix(), lifecycle.ApplyStatusCommandRequest{
			Requester:   sweeper.Requester,
			ShipmentID:  "shipment-2",
			Status:      model.ShipmentStatusReceivedAtOrigin,
			Description: "automatic status update",
		}).Return(model.Shipment{}, nil),
	)

	s.Require().NoError(s.sweeper.SweepOnce(s.ctx, now))
}
