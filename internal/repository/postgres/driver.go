package postgres

import (
	"context"
	"errors"
	"fmt"

	"fleet-service/internal/domain/driver"
	"fleet-service/internal/domain/page"
	apperrors "fleet-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

const driverColumns = `
	d.id, d.worker_id, d.truck_id, d.license_number, d.license_category, d.license_expiry,
	d.active, d.created_at, d.updated_at,
	w.id, w.first_name, w.last_name, w.document_number,
	t.id, t.plate, t.brand, t.model
`

const driverJoins = `
	JOIN workers w ON w.id = d.worker_id
	JOIN trucks t ON t.id = d.truck_id
`

type DriverRepository struct {
	db *DB
}

func NewDriverRepository(db *DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) Create(ctx context.Context, input driver.CreateDriverInput) (*driver.Driver, error) {
	query := `
		WITH d AS (
			INSERT INTO drivers (worker_id, truck_id, license_number, license_category, license_expiry, active)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)
		SELECT ` + driverColumns + ` FROM d` + driverJoins

	d, err := scanDriver(r.db.Pool.QueryRow(ctx, query,
		input.WorkerID, input.TruckID, input.LicenseNumber, input.LicenseCategory, input.LicenseExpiry, input.Active,
	))
	if err != nil {
		if mapped := mapDriverWriteError(err, input.WorkerID, input.TruckID); mapped != nil {
			return nil, mapped
		}
		return nil, errFailedCreateDriver(err)
	}

	return d, nil
}

func (r *DriverRepository) GetByID(ctx context.Context, id int64) (*driver.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers d` + driverJoins + ` WHERE d.id = $1`

	d, err := scanDriver(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundResource(resourceDriver, fieldID, id)
		}
		return nil, errFailedGetDriver(err)
	}

	return d, nil
}

func (r *DriverRepository) List(ctx context.Context, req page.Request) (*page.Page[driver.Driver], error) {
	orderBy, err := req.OrderBy(driver.SortFields)
	if err != nil {
		return nil, apperrors.Validation(msgUnsupportedSortFieldPrefix + req.SortBy)
	}

	var total int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM drivers`).Scan(&total); err != nil {
		return nil, errFailedCountDrivers(err)
	}

	query := fmt.Sprintf(`SELECT %s FROM drivers d %s ORDER BY %s, d.id LIMIT $1 OFFSET $2`,
		driverColumns, driverJoins, orderBy)

	rows, err := r.db.Pool.Query(ctx, query, req.Size, req.Offset())
	if err != nil {
		return nil, errFailedListDrivers(err)
	}
	defer rows.Close()

	drivers := make([]driver.Driver, 0, req.Size)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, errFailedScanDriver(err)
		}
		drivers = append(drivers, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, errFailedListDrivers(err)
	}

	return page.New(drivers, req, total), nil
}

func (r *DriverRepository) Update(ctx context.Context, id int64, input driver.UpdateDriverInput) (*driver.Driver, error) {
	query := `
		WITH d AS (
			UPDATE drivers
			SET worker_id = $2, truck_id = $3, license_number = $4, license_category = $5,
				license_expiry = $6, active = $7, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + driverColumns + ` FROM d` + driverJoins

	d, err := scanDriver(r.db.Pool.QueryRow(ctx, query,
		id, input.WorkerID, input.TruckID, input.LicenseNumber, input.LicenseCategory, input.LicenseExpiry, input.Active,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundResource(resourceDriver, fieldID, id)
		}
		if mapped := mapDriverWriteError(err, input.WorkerID, input.TruckID); mapped != nil {
			return nil, mapped
		}
		return nil, errFailedUpdateDriver(err)
	}

	return d, nil
}

func (r *DriverRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		return errFailedDeleteDriver(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundResource(resourceDriver, fieldID, id)
	}
	return nil
}

// FindIDByWorkerID returns the id of the driver backed by the worker, or
// found=false when the worker is unassigned.
func (r *DriverRepository) FindIDByWorkerID(ctx context.Context, workerID int64) (id int64, found bool, err error) {
	return r.findID(ctx, `SELECT id FROM drivers WHERE worker_id = $1`, workerID)
}

// FindIDByTruckID returns the id of the driver using the truck, or found=false.
func (r *DriverRepository) FindIDByTruckID(ctx context.Context, truckID int64) (id int64, found bool, err error) {
	return r.findID(ctx, `SELECT id FROM drivers WHERE truck_id = $1`, truckID)
}

func (r *DriverRepository) findID(ctx context.Context, query string, arg int64) (int64, bool, error) {
	var id int64
	err := r.db.Pool.QueryRow(ctx, query, arg).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errFailedCheckDriver(err)
	}
	return id, true, nil
}

func scanDriver(row pgx.Row) (*driver.Driver, error) {
	d := &driver.Driver{Worker: &driver.WorkerSummary{}, Truck: &driver.TruckSummary{}}
	err := row.Scan(
		&d.ID, &d.WorkerID, &d.TruckID, &d.LicenseNumber, &d.LicenseCategory, &d.LicenseExpiry,
		&d.Active, &d.CreatedAt, &d.UpdatedAt,
		&d.Worker.ID, &d.Worker.FirstName, &d.Worker.LastName, &d.Worker.DocumentNumber,
		&d.Truck.ID, &d.Truck.Plate, &d.Truck.Brand, &d.Truck.Model,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// mapDriverWriteError turns constraint violations into domain errors. It
// returns nil for anything else.
func mapDriverWriteError(err error, workerID, truckID int64) error {
	switch {
	case isUniqueViolation(err):
		switch constraintName(err) {
		case constraintDriverWorker:
			return apperrors.Conflict(msgWorkerAlreadyAssigned)
		case constraintDriverTruck:
			return apperrors.Conflict(msgTruckAlreadyAssigned)
		case constraintDriverLicense:
			return apperrors.Conflict(msgLicenseNumberExists)
		}
		return apperrors.Conflict(msgDriverConflict)
	case isForeignKeyViolation(err):
		switch constraintName(err) {
		case constraintDriverWorkerFK:
			return apperrors.NotFoundResource(resourceWorker, fieldID, workerID)
		case constraintDriverTruckFK:
			return apperrors.NotFoundResource(resourceTruck, fieldID, truckID)
		}
	}
	return nil
}
