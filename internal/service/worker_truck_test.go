package service

import (
	"context"
	"testing"
	"time"

	"fleet-service/internal/domain/driver"
	"fleet-service/internal/domain/truck"
	"fleet-service/internal/domain/worker"
	"fleet-service/internal/infra/cache"
	apperrors "fleet-service/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWorkerService_Create(t *testing.T) {
	ctx := context.Background()
	workers := new(MockWorkerRepository)
	svc := NewWorkerService(workers, new(MockDriverRepository), nil, 0, zap.NewNop())

	input := worker.CreateWorkerInput{FirstName: "Ana", LastName: "Rojas", DocumentNumber: "70112233", Email: "ana@fleet.io"}
	workers.On("Create", ctx, input).Return(&worker.Worker{ID: 1, FirstName: "Ana"}, nil)

	w, err := svc.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), w.ID)

	input.Email = "nope"
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestWorkerService_DeleteAssignedIsConflict(t *testing.T) {
	ctx := context.Background()
	workers := new(MockWorkerRepository)
	drivers := new(MockDriverRepository)
	svc := NewWorkerService(workers, drivers, nil, 0, zap.NewNop())

	drivers.On("FindIDByWorkerID", ctx, int64(1)).Return(int64(3), true, nil)

	err := svc.Delete(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	workers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestWorkerService_UpdateEvictsDriver(t *testing.T) {
	ctx := context.Background()
	workers := new(MockWorkerRepository)
	drivers := new(MockDriverRepository)
	store := cache.NewMemoryCache()
	svc := NewWorkerService(workers, drivers, store, time.Minute, zap.NewNop())

	key := cache.Key(cacheNamespaceDriver, 3)
	require.NoError(t, cache.SetJSON(ctx, store, key, &driver.Driver{ID: 3}, time.Minute))

	input := worker.UpdateWorkerInput{FirstName: "Ana", LastName: "Rojas", DocumentNumber: "70112233"}
	workers.On("Update", ctx, int64(1), input).Return(&worker.Worker{ID: 1}, nil)
	drivers.On("FindIDByWorkerID", ctx, int64(1)).Return(int64(3), true, nil)

	_, err := svc.Update(ctx, 1, input)
	require.NoError(t, err)

	cached, err := cache.GetJSON[driver.Driver](ctx, store, key)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestUpdate_DriverLookupFailureIsLogged(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	workers := new(MockWorkerRepository)
	trucks := new(MockTruckRepository)
	drivers := new(MockDriverRepository)
	store := cache.NewMemoryCache()

	workerInput := worker.UpdateWorkerInput{FirstName: "Ana", LastName: "Rojas", DocumentNumber: "70112233"}
	workers.On("Update", ctx, int64(1), workerInput).Return(&worker.Worker{ID: 1}, nil)
	drivers.On("FindIDByWorkerID", ctx, int64(1)).Return(int64(0), false, assert.AnError)

	truckInput := truck.UpdateTruckInput{Plate: "ABC-123", Brand: "Volvo", Model: "FH", Year: 2020, CapacityKg: 18000}
	trucks.On("Update", ctx, int64(2), truckInput).Return(&truck.Truck{ID: 2}, nil)
	drivers.On("FindIDByTruckID", ctx, int64(2)).Return(int64(0), false, assert.AnError)

	_, err := NewWorkerService(workers, drivers, store, time.Minute, logger).Update(ctx, 1, workerInput)
	require.NoError(t, err)
	_, err = NewTruckService(trucks, drivers, store, time.Minute, logger).Update(ctx, 2, truckInput)
	require.NoError(t, err)

	entries := logs.FilterMessage("driver_cache_lookup_failed").All()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].ContextMap()["worker_id"])
	assert.Equal(t, int64(2), entries[1].ContextMap()["truck_id"])
}

func TestWorkerService_UpdateIDMismatch(t *testing.T) {
	svc := NewWorkerService(new(MockWorkerRepository), new(MockDriverRepository), nil, 0, zap.NewNop())
	other := int64(2)

	_, err := svc.Update(context.Background(), 1, worker.UpdateWorkerInput{ID: &other})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func newTruckService(trucks *MockTruckRepository, drivers *MockDriverRepository) *TruckService {
	svc := NewTruckService(trucks, drivers, nil, 0, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestTruckService_CreateDuplicatePlate(t *testing.T) {
	ctx := context.Background()
	trucks := new(MockTruckRepository)
	svc := newTruckService(trucks, new(MockDriverRepository))

	input := truck.CreateTruckInput{Plate: "ABC-123", Brand: "Volvo", Model: "FH", Year: 2022, CapacityKg: 18000}
	trucks.On("Create", ctx, input).Return(nil, apperrors.Conflict("plate is already registered"))

	_, err := svc.Create(ctx, input)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestTruckService_CreateValidation(t *testing.T) {
	svc := newTruckService(new(MockTruckRepository), new(MockDriverRepository))

	_, err := svc.Create(context.Background(), truck.CreateTruckInput{Plate: "ABC-123", Brand: "Volvo", Model: "FH", Year: 2030, CapacityKg: 18000})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTruckService_Delete(t *testing.T) {
	ctx := context.Background()
	trucks := new(MockTruckRepository)
	drivers := new(MockDriverRepository)
	svc := newTruckService(trucks, drivers)

	drivers.On("FindIDByTruckID", ctx, int64(2)).Return(int64(0), false, nil)
	trucks.On("Delete", ctx, int64(2)).Return(nil)
	require.NoError(t, svc.Delete(ctx, 2))

	drivers.On("FindIDByTruckID", ctx, int64(5)).Return(int64(9), true, nil)
	assert.ErrorIs(t, svc.Delete(ctx, 5), apperrors.ErrConflict)
}
