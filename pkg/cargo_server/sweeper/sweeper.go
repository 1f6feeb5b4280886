package sweeper

import (
	"context"
	"time"

	"github.com/cargoline/cargoline/pkg/cargo_server/lifecycle"
	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage"
	"github.com/sirupsen/logrus"
)

// Requester recorded on every status history entry the sweeper writes.
const Requester = "auto-sweeper"

type Config struct {
	CheckInterval int
	PageSize      int
}

// Sweeper periodically advances shipment statuses from the recorded dates:
// a shipment whose ETA has passed is moved to ARRIVED_DESTINATION_COUNTRY,
// a dispatched one to IN_TRANSIT, and so on. It only ever moves statuses
// forward; operator corrections are never overridden backwards, and terminal
// shipments are left alone.
type Sweeper struct {
	checkInterval time.Duration
	pageSize      int
	lifecycle     lifecycle.LifecycleController
}

func NewSweeper(cfg Config, lifecycleCtrl lifecycle.LifecycleController) *Sweeper {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 500
	}
	return &Sweeper{
		checkInterval: time.Second * time.Duration(cfg.CheckInterval),
		pageSize:      pageSize,
		lifecycle:     lifecycleCtrl,
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	logrus.Info("Status sweeper is now running")

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.checkInterval):
			if err := s.SweepOnce(ctx, time.Now()); err != nil {
				logrus.Errorf("status sweep failed: %v", err)
			}
		}
	}
}

// SweepOnce runs a single sweep over every sweepable shipment. Failures on
// individual shipments are logged and skipped so one bad record cannot stall
// the sweep.
func (s *Sweeper) SweepOnce(ctx context.Context, now time.Time) error {
	ts := now.Unix()
	offset := 0
	for {
		page, err := s.lifecycle.ListShipments(ctx, storage.ListShipmentsRequest{
			Offset:    offset,
			Limit:     s.pageSize,
			Sweepable: true,
		})
		if err != nil {
			return err
		}
		if len(page.Records) == 0 {
			return nil
		}

		for _, shipment := range page.Records {
			implied := impliedStatus(shipment, now)
			if implied == "" || implied.Rank() <= shipment.Status.Rank() {
				continue
			}

			_, err := s.lifecycle.ApplyStatusCommand(ctx, ts, lifecycle.ApplyStatusCommandRequest{
				Requester:   Requester,
				ShipmentID:  shipment.ID,
				Status:      implied,
				Description: "automatic status update",
			})
			if err != nil {
				logrus.Warnf("sweeper skipped shipment %s: %v", shipment.ID, err)
				continue
			}
			logrus.Debugf("sweeper advanced shipment %s to %s", shipment.ID, implied)
		}

		offset += len(page.Records)
		if offset >= page.Total {
			return nil
		}
	}
}

// impliedStatus derives the furthest status the recorded dates support at the
// given time. Precedence runs from the latest milestone backwards so a
// delivered shipment is never re-marked as in transit.
func impliedStatus(shipment model.Shipment, now time.Time) model.ShipmentStatus {
	switch {
	case shipment.DeliveredAt != nil && !now.Before(shipment.DeliveredAt.GetTime()):
		return model.ShipmentStatusDelivered
	case shipment.DispatchedAt != nil && shipment.ETA != nil && !now.Before(shipment.ETA.GetTime()):
		return model.ShipmentStatusArrivedDestCountry
	case shipment.DispatchedAt != nil && !now.Before(shipment.DispatchedAt.GetTime()):
		return model.ShipmentStatusInTransit
	case shipment.ReceivedAt != nil && !now.Before(shipment.ReceivedAt.GetTime()):
		return model.ShipmentStatusReceivedAtOrigin
	default:
		return ""
	}
}
