package repository

import (
	"context"

	"fleet-service/internal/domain/driver"
	"fleet-service/internal/domain/page"
	"fleet-service/internal/domain/truck"
	"fleet-service/internal/domain/worker"
)

// DriverRepository defines driver data access operations
type DriverRepository interface {
	Create(ctx context.Context, input driver.CreateDriverInput) (*driver.Driver, error)
	GetByID(ctx context.Context, id int64) (*driver.Driver, error)
	List(ctx context.Context, req page.Request) (*page.Page[driver.Driver], error)
	Update(ctx context.Context, id int64, input driver.UpdateDriverInput) (*driver.Driver, error)
	Delete(ctx context.Context, id int64) error
	FindIDByWorkerID(ctx context.Context, workerID int64) (int64, bool, error)
	FindIDByTruckID(ctx context.Context, truckID int64) (int64, bool, error)
}

// WorkerRepository defines worker data access operations
type WorkerRepository interface {
	Create(ctx context.Context, input worker.CreateWorkerInput) (*worker.Worker, error)
	GetByID(ctx context.Context, id int64) (*worker.Worker, error)
	List(ctx context.Context, req page.Request) (*page.Page[worker.Worker], error)
	Update(ctx context.Context, id int64, input worker.UpdateWorkerInput) (*worker.Worker, error)
	Delete(ctx context.Context, id int64) error
}

// TruckRepository defines truck data access operations
type TruckRepository interface {
	Create(ctx context.Context, input truck.CreateTruckInput) (*truck.Truck, error)
	GetByID(ctx context.Context, id int64) (*truck.Truck, error)
	List(ctx context.Context, req page.Request) (*page.Page[truck.Truck], error)
	Update(ctx context.Context, id int64, input truck.UpdateTruckInput) (*truck.Truck, error)
	Delete(ctx context.Context, id int64) error
}
