package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage"
	"github.com/jackc/pgx/v5"
)

func unixOrNil(dt *model.DateTime) *int64 {
	if dt == nil {
		return nil
	}
	ts := dt.Unix()
	return &ts
}

func (s *_Storage) StoreShipment(ctx context.Context, tx storage.Tx, shipment model.Shipment) error {
	query := `
WITH new_data AS (
	INSERT INTO shipment (id, "version", client_id, client_code, batch_number, track_number, order_number, status, received_at, dispatched_at, delivered_at, eta, shipment, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
	ON CONFLICT (id) DO UPDATE SET
		"version" = excluded."version",
		client_id = excluded.client_id,
		client_code = excluded.client_code,
		batch_number = excluded.batch_number,
		track_number = excluded.track_number,
		order_number = excluded.order_number,
		status = excluded.status,
		received_at = excluded.received_at,
		dispatched_at = excluded.dispatched_at,
		delivered_at = excluded.delivered_at,
		eta = excluded.eta,
		shipment = excluded.shipment,
		updated_at = excluded.updated_at
	RETURNING id, "version", shipment, updated_at
)
INSERT INTO shipment_history (id, "version", shipment, created_at)
SELECT * FROM new_data
`
	var batchNumber *string
	if shipment.BatchNumber != "" {
		batchNumber = &shipment.BatchNumber
	}
	_, err := tx.Exec(
		ctx,
		query,
		shipment.ID,
		shipment.Version,
		shipment.ClientID,
		shipment.ClientCode,
		batchNumber,
		shipment.TrackNumber,
		shipment.OrderNumber,
		shipment.Status,
		unixOrNil(shipment.ReceivedAt),
		unixOrNil(shipment.DispatchedAt),
		unixOrNil(shipment.DeliveredAt),
		unixOrNil(shipment.ETA),
		shipment,
		shipment.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) GetShipment(ctx context.Context, tx storage.Tx, id string) (model.Shipment, error) {
	query := `SELECT shipment FROM shipment WHERE id = $1`

	var shipment model.Shipment
	err := tx.QueryRow(ctx, query, id).Scan(&shipment)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return model.Shipment{}, model.ErrShipmentNotFound
	}
	if err != nil {
		return model.Shipment{}, err
	}

	return shipment, nil
}

func (s *_Storage) ListShipments(ctx context.Context, tx storage.Tx, req storage.ListShipmentsRequest) (storage.ListShipmentsResult, error) {
	query := `
	WITH filtered_record AS (
		SELECT
			rec_id,
			shipment
		FROM shipment
		WHERE
			(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR id = ANY($3)) AND
			(COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR client_id = ANY($4)) AND
			(COALESCE(array_length($5::TEXT[], 1), 0) = 0 OR batch_number = ANY($5)) AND
			(COALESCE(array_length($6::TEXT[], 1), 0) = 0 OR status = ANY($6)) AND
			(COALESCE(array_length($7::TEXT[], 1), 0) = 0 OR track_number = ANY($7)) AND
			(NOT $8 OR (status <> ALL('{DELIVERED,ARCHIVED}') AND received_at IS NOT NULL))
	)
	SELECT
		total,
		shipment
	FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
	FULL OUTER JOIN (SELECT shipment FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE
	`
	rows, err := tx.Query(
		ctx,
		query,
		req.Offset,
		req.Limit,
		req.IDs,
		req.ClientIDs,
		req.BatchNumbers,
		req.Statuses,
		req.TrackNumbers,
		req.Sweepable,
	)
	if err != nil {
		return storage.ListShipmentsResult{}, err
	}
	defer rows.Close()

	var res storage.ListShipmentsResult
	for rows.Next() {
		var total *int
		var shipment *model.Shipment

		if err := rows.Scan(&total, &shipment); err != nil {
			return storage.ListShipmentsResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if shipment != nil {
			res.Records = append(res.Records, *shipment)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListShipmentsResult{}, err
	}

	return res, nil
}

func (s *_Storage) NextOrderNumber(ctx context.Context, tx storage.Tx, batchNumber, clientCode string) (int, error) {
	query := `SELECT COALESCE(MAX(order_number), 0) + 1 FROM shipment WHERE COALESCE(batch_number, '000000') = $1 AND client_code = $2`

	var orderNumber int
	if err := tx.QueryRow(ctx, query, batchNumber, clientCode).Scan(&orderNumber); err != nil {
		return 0, err
	}
	return orderNumber, nil
}

func (s *_Storage) AddStatusHistory(ctx context.Context, tx storage.Tx, entry model.StatusHistoryEntry) error {
	query := `
INSERT INTO status_history (id, shipment_id, status, "location", description, created_at, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := tx.Exec(
		ctx,
		query,
		entry.ID,
		entry.ShipmentID,
		entry.Status,
		entry.Location,
		entry.Description,
		entry.CreatedAt,
		entry.CreatedBy,
	)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) ListStatusHistory(ctx context.Context, tx storage.Tx, req storage.ListStatusHistoryRequest) (storage.ListStatusHistoryResult, error) {
	query := `
	WITH filtered_record AS (
		SELECT
			rec_id, id, shipment_id, status, "location", description, created_at, created_by
		FROM status_history
		WHERE ($3 = '' OR shipment_id = $3)
	)
	SELECT
		total,
		id, shipment_id, status, "location", description, created_at, created_by
	FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
	FULL OUTER JOIN (
		SELECT id, shipment_id, status, "location", description, created_at, created_by
		FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2
	) AS record ON FALSE
	`
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.ShipmentID)
	if err != nil {
		return storage.ListStatusHistoryResult{}, err
	}
	defer rows.Close()

	var res storage.ListStatusHistoryResult
	for rows.Next() {
		var total *int
		var id, shipmentID, status, location, description, createdBy *string
		var createdAt *int64

		if err := rows.Scan(&total, &id, &shipmentID, &status, &location, &description, &createdAt, &createdBy); err != nil {
			return storage.ListStatusHistoryResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if id != nil {
			res.Records = append(res.Records, model.StatusHistoryEntry{
				ID:          *id,
				ShipmentID:  *shipmentID,
				Status:      model.ShipmentStatus(*status),
				Location:    *location,
				Description: *description,
				CreatedAt:   *createdAt,
				CreatedBy:   *createdBy,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListStatusHistoryResult{}, err
	}

	return res, nil
}
