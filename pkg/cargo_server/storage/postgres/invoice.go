package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage"
	"github.com/jackc/pgx/v5"
)

// AddInvoice inserts a new invoice. It never upserts: the unique indexes on
// the invoice number and the shipment link are what the generator's
// idempotency contract relies on, so a collision surfaces as
// storage.ErrUniqueViolation.
func (s *_Storage) AddInvoice(ctx context.Context, tx storage.Tx, invoice model.Invoice) error {
	query := `
INSERT INTO invoice (id, "version", "number", shipment_id, status, amount, due_at, invoice, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
`
	var shipmentID *string
	if invoice.ShipmentID != "" {
		shipmentID = &invoice.ShipmentID
	}
	_, err := tx.Exec(
		ctx,
		query,
		invoice.ID,
		invoice.Version,
		invoice.Number,
		shipmentID,
		invoice.Status,
		invoice.Amount.String(),
		invoice.DueAt,
		invoice,
		invoice.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) GetInvoiceByShipment(ctx context.Context, tx storage.Tx, shipmentID string) (model.Invoice, error) {
	query := `SELECT invoice FROM invoice WHERE shipment_id = $1`

	var invoice model.Invoice
	err := tx.QueryRow(ctx, query, shipmentID).Scan(&invoice)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return model.Invoice{}, model.ErrInvoiceNotFound
	}
	if err != nil {
		return model.Invoice{}, err
	}

	return invoice, nil
}

func (s *_Storage) ListInvoices(ctx context.Context, tx storage.Tx, req storage.ListInvoicesRequest) (storage.ListInvoicesResult, error) {
	query := `
	WITH filtered_record AS (
		SELECT
			rec_id,
			invoice
		FROM invoice
		WHERE
			(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR id = ANY($3)) AND
			(COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR "number" = ANY($4)) AND
			(COALESCE(array_length($5::TEXT[], 1), 0) = 0 OR shipment_id = ANY($5)) AND
			(COALESCE(array_length($6::TEXT[], 1), 0) = 0 OR status = ANY($6))
	)
	SELECT
		total,
		invoice
	FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
	FULL OUTER JOIN (SELECT invoice FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE
	`
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.IDs, req.Numbers, req.ShipmentIDs, req.Statuses)
	if err != nil {
		return storage.ListInvoicesResult{}, err
	}
	defer rows.Close()

	var res storage.ListInvoicesResult
	for rows.Next() {
		var total *int
		var invoice *model.Invoice

		if err := rows.Scan(&total, &invoice); err != nil {
			return storage.ListInvoicesResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if invoice != nil {
			res.Records = append(res.Records, *invoice)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListInvoicesResult{}, err
	}

	return res, nil
}
