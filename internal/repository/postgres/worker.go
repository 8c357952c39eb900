package postgres

import (
	"context"
	"errors"
	"fmt"

	"fleet-service/internal/domain/page"
	"fleet-service/internal/domain/worker"
	apperrors "fleet-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

const workerColumns = `id, first_name, last_name, document_number, phone, email, hired_at, created_at, updated_at`

type WorkerRepository struct {
	db *DB
}

func NewWorkerRepository(db *DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func (r *WorkerRepository) Create(ctx context.Context, input worker.CreateWorkerInput) (*worker.Worker, error) {
	query := `
		INSERT INTO workers (first_name, last_name, document_number, phone, email, hired_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + workerColumns

	w, err := scanWorker(r.db.Pool.QueryRow(ctx, query,
		input.FirstName, input.LastName, input.DocumentNumber, input.Phone, input.Email, input.HiredAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict(msgDocumentNumberExists)
		}
		return nil, errFailedCreateWorker(err)
	}

	return w, nil
}

func (r *WorkerRepository) GetByID(ctx context.Context, id int64) (*worker.Worker, error) {
	w, err := scanWorker(r.db.Pool.QueryRow(ctx, `SELECT `+workerColumns+` FROM workers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundResource(resourceWorker, fieldID, id)
		}
		return nil, errFailedGetWorker(err)
	}
	return w, nil
}

func (r *WorkerRepository) List(ctx context.Context, req page.Request) (*page.Page[worker.Worker], error) {
	orderBy, err := req.OrderBy(worker.SortFields)
	if err != nil {
		return nil, apperrors.Validation(msgUnsupportedSortFieldPrefix + req.SortBy)
	}

	var total int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM workers`).Scan(&total); err != nil {
		return nil, errFailedCountWorkers(err)
	}

	query := fmt.Sprintf(`SELECT %s FROM workers ORDER BY %s, id LIMIT $1 OFFSET $2`, workerColumns, orderBy)
	rows, err := r.db.Pool.Query(ctx, query, req.Size, req.Offset())
	if err != nil {
		return nil, errFailedListWorkers(err)
	}
	defer rows.Close()

	workers := make([]worker.Worker, 0, req.Size)
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, errFailedScanWorker(err)
		}
		workers = append(workers, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, errFailedListWorkers(err)
	}

	return page.New(workers, req, total), nil
}

func (r *WorkerRepository) Update(ctx context.Context, id int64, input worker.UpdateWorkerInput) (*worker.Worker, error) {
	query := `
		UPDATE workers
		SET first_name = $2, last_name = $3, document_number = $4, phone = $5, email = $6,
			hired_at = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + workerColumns

	w, err := scanWorker(r.db.Pool.QueryRow(ctx, query,
		id, input.FirstName, input.LastName, input.DocumentNumber, input.Phone, input.Email, input.HiredAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundResource(resourceWorker, fieldID, id)
		}
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict(msgDocumentNumberExists)
		}
		return nil, errFailedUpdateWorker(err)
	}

	return w, nil
}

func (r *WorkerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.Conflict(msgWorkerStillAssigned)
		}
		return errFailedDeleteWorker(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundResource(resourceWorker, fieldID, id)
	}
	return nil
}

func scanWorker(row pgx.Row) (*worker.Worker, error) {
	w := &worker.Worker{}
	err := row.Scan(
		&w.ID, &w.FirstName, &w.LastName, &w.DocumentNumber, &w.Phone, &w.Email, &w.HiredAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}
