package service

import (
	"context"

	"fleet-service/internal/domain/driver"
	"fleet-service/internal/domain/page"
	"fleet-service/internal/domain/truck"
	"fleet-service/internal/domain/worker"

	"github.com/stretchr/testify/mock"
)

type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) Create(ctx context.Context, input driver.CreateDriverInput) (*driver.Driver, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetByID(ctx context.Context, id int64) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) List(ctx context.Context, req page.Request) (*page.Page[driver.Driver], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*page.Page[driver.Driver]), args.Error(1)
}

func (m *MockDriverRepository) Update(ctx context.Context, id int64, input driver.UpdateDriverInput) (*driver.Driver, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDriverRepository) FindIDByWorkerID(ctx context.Context, workerID int64) (int64, bool, error) {
	args := m.Called(ctx, workerID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockDriverRepository) FindIDByTruckID(ctx context.Context, truckID int64) (int64, bool, error) {
	args := m.Called(ctx, truckID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

type MockWorkerRepository struct {
	mock.Mock
}

func (m *MockWorkerRepository) Create(ctx context.Context, input worker.CreateWorkerInput) (*worker.Worker, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetByID(ctx context.Context, id int64) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) List(ctx context.Context, req page.Request) (*page.Page[worker.Worker], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*page.Page[worker.Worker]), args.Error(1)
}

func (m *MockWorkerRepository) Update(ctx context.Context, id int64, input worker.UpdateWorkerInput) (*worker.Worker, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockTruckRepository struct {
	mock.Mock
}

func (m *MockTruckRepository) Create(ctx context.Context, input truck.CreateTruckInput) (*truck.Truck, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetByID(ctx context.Context, id int64) (*truck.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) List(ctx context.Context, req page.Request) (*page.Page[truck.Truck], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*page.Page[truck.Truck]), args.Error(1)
}

func (m *MockTruckRepository) Update(ctx context.Context, id int64, input truck.UpdateTruckInput) (*truck.Truck, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
