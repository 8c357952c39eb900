package handler

import (
	"context"

	"fleet-service/internal/domain/driver"
	"fleet-service/internal/domain/page"
	"fleet-service/internal/domain/truck"
	"fleet-service/internal/domain/worker"
)

// Consumer-side interfaces defined by handlers

type DriverService interface {
	Create(ctx context.Context, input driver.CreateDriverInput) (*driver.Driver, error)
	List(ctx context.Context, req page.Request) (*page.Page[driver.Driver], error)
	Get(ctx context.Context, id int64) (*driver.Driver, error)
	Update(ctx context.Context, id int64, input driver.UpdateDriverInput) (*driver.Driver, error)
	Delete(ctx context.Context, id int64) error
}

type WorkerService interface {
	Create(ctx context.Context, input worker.CreateWorkerInput) (*worker.Worker, error)
	List(ctx context.Context, req page.Request) (*page.Page[worker.Worker], error)
	Get(ctx context.Context, id int64) (*worker.Worker, error)
	Update(ctx context.Context, id int64, input worker.UpdateWorkerInput) (*worker.Worker, error)
	Delete(ctx context.Context, id int64) error
}

type TruckService interface {
	Create(ctx context.Context, input truck.CreateTruckInput) (*truck.Truck, error)
	List(ctx context.Context, req page.Request) (*page.Page[truck.Truck], error)
	Get(ctx context.Context, id int64) (*truck.Truck, error)
	Update(ctx context.Context, id int64, input truck.UpdateTruckInput) (*truck.Truck, error)
	Delete(ctx context.Context, id int64) error
}

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
