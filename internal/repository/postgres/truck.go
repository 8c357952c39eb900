package postgres

import (
	"context"
	"errors"
	"fmt"

	"fleet-service/internal/domain/page"
	"fleet-service/internal/domain/truck"
	apperrors "fleet-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

const truckColumns = `id, plate, brand, model, year, capacity_kg, created_at, updated_at`

type TruckRepository struct {
	db *DB
}

func NewTruckRepository(db *DB) *TruckRepository {
	return &TruckRepository{db: db}
}

func (r *TruckRepository) Create(ctx context.Context, input truck.CreateTruckInput) (*truck.Truck, error) {
	query := `
		INSERT INTO trucks (plate, brand, model, year, capacity_kg)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + truckColumns

	t, err := scanTruck(r.db.Pool.QueryRow(ctx, query, input.Plate, input.Brand, input.Model, input.Year, input.CapacityKg))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict(msgPlateExists)
		}
		return nil, errFailedCreateTruck(err)
	}

	return t, nil
}

func (r *TruckRepository) GetByID(ctx context.Context, id int64) (*truck.Truck, error) {
	t, err := scanTruck(r.db.Pool.QueryRow(ctx, `SELECT `+truckColumns+` FROM trucks WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundResource(resourceTruck, fieldID, id)
		}
		return nil, errFailedGetTruck(err)
	}
	return t, nil
}

func (r *TruckRepository) List(ctx context.Context, req page.Request) (*page.Page[truck.Truck], error) {
	orderBy, err := req.OrderBy(truck.SortFields)
	if err != nil {
		return nil, apperrors.Validation(msgUnsupportedSortFieldPrefix + req.SortBy)
	}

	var total int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM trucks`).Scan(&total); err != nil {
		return nil, errFailedCountTrucks(err)
	}

	query := fmt.Sprintf(`SELECT %s FROM trucks ORDER BY %s, id LIMIT $1 OFFSET $2`, truckColumns, orderBy)
	rows, err := r.db.Pool.Query(ctx, query, req.Size, req.Offset())
	if err != nil {
		return nil, errFailedListTrucks(err)
	}
	defer rows.Close()

	trucks := make([]truck.Truck, 0, req.Size)
	for rows.Next() {
		t, err := scanTruck(rows)
		if err != nil {
			return nil, errFailedScanTruck(err)
		}
		trucks = append(trucks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, errFailedListTrucks(err)
	}

	return page.New(trucks, req, total), nil
}

func (r *TruckRepository) Update(ctx context.Context, id int64, input truck.UpdateTruckInput) (*truck.Truck, error) {
	query := `
		UPDATE trucks
		SET plate = $2, brand = $3, model = $4, year = $5, capacity_kg = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + truckColumns

	t, err := scanTruck(r.db.Pool.QueryRow(ctx, query, id, input.Plate, input.Brand, input.Model, input.Year, input.CapacityKg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundResource(resourceTruck, fieldID, id)
		}
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict(msgPlateExists)
		}
		return nil, errFailedUpdateTruck(err)
	}

	return t, nil
}

func (r *TruckRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM trucks WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.Conflict(msgTruckStillAssigned)
		}
		return errFailedDeleteTruck(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundResource(resourceTruck, fieldID, id)
	}
	return nil
}

func scanTruck(row pgx.Row) (*truck.Truck, error) {
	t := &truck.Truck{}
	if err := row.Scan(&t.ID, &t.Plate, &t.Brand, &t.Model, &t.Year, &t.CapacityKg, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return t, nil
}
