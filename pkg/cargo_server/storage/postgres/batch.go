package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage"
	"github.com/jackc/pgx/v5"
)

func (s *_Storage) StoreBatch(ctx context.Context, tx storage.Tx, batch model.Batch) error {
	query := `
WITH new_data AS (
	INSERT INTO batch ("number", "version", mode, status, batch, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $6)
	ON CONFLICT ("number") DO UPDATE SET
		"version" = excluded."version",
		mode = excluded.mode,
		status = excluded.status,
		batch = excluded.batch,
		updated_at = excluded.updated_at
	RETURNING "number", "version", batch, updated_at
)
INSERT INTO batch_history ("number", "version", batch, created_at)
SELECT * FROM new_data
`
	_, err := tx.Exec(
		ctx,
		query,
		batch.Number,
		batch.Version,
		batch.Mode,
		batch.Status,
		batch,
		batch.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) GetBatch(ctx context.Context, tx storage.Tx, number string) (model.Batch, error) {
	query := `SELECT batch FROM batch WHERE "number" = $1`

	var batch model.Batch
	err := tx.QueryRow(ctx, query, number).Scan(&batch)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return model.Batch{}, model.ErrBatchNotFound
	}
	if err != nil {
		return model.Batch{}, err
	}

	return batch, nil
}

func (s *_Storage) ListBatches(ctx context.Context, tx storage.Tx, req storage.ListBatchesRequest) (storage.ListBatchesResult, error) {
	query := `
	WITH filtered_record AS (
		SELECT
			rec_id,
			batch
		FROM batch
		WHERE
			(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR "number" = ANY($3)) AND
			(COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR status = ANY($4)) AND
			(COALESCE(array_length($5::TEXT[], 1), 0) = 0 OR mode = ANY($5))
	)
	SELECT
		total,
		batch
	FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
	FULL OUTER JOIN (SELECT batch FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE
	`
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.Numbers, req.Statuses, req.Modes)
	if err != nil {
		return storage.ListBatchesResult{}, err
	}
	defer rows.Close()

	var res storage.ListBatchesResult
	for rows.Next() {
		var total *int
		var batch *model.Batch

		if err := rows.Scan(&total, &batch); err != nil {
			return storage.ListBatchesResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if batch != nil {
			res.Records = append(res.Records, *batch)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListBatchesResult{}, err
	}

	return res, nil
}

func (s *_Storage) NextBatchNumber(ctx context.Context, tx storage.Tx) (string, error) {
	query := `SELECT nextval('batch_number_seq')`

	var seq int64
	if err := tx.QueryRow(ctx, query).Scan(&seq); err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", seq), nil
}
