package service

import (
	"context"
	"testing"
	"time"

	"fleet-service/internal/domain/driver"
	"fleet-service/internal/domain/page"
	"fleet-service/internal/domain/truck"
	"fleet-service/internal/domain/worker"
	"fleet-service/internal/infra/cache"
	apperrors "fleet-service/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type driverFixture struct {
	drivers *MockDriverRepository
	workers *MockWorkerRepository
	trucks  *MockTruckRepository
	store   *cache.MemoryCache
	svc     *DriverService
}

func newDriverFixture() *driverFixture {
	f := &driverFixture{
		drivers: new(MockDriverRepository),
		workers: new(MockWorkerRepository),
		trucks:  new(MockTruckRepository),
		store:   cache.NewMemoryCache(),
	}
	f.svc = NewDriverService(f.drivers, f.workers, f.trucks, f.store, time.Minute, zap.NewNop())
	return f
}

func validCreateInput() driver.CreateDriverInput {
	return driver.CreateDriverInput{
		WorkerID:        1,
		TruckID:         2,
		LicenseNumber:   "Q12345678",
		LicenseCategory: "A-IIB",
		Active:          true,
	}
}

func TestDriverService_Create(t *testing.T) {
	ctx := context.Background()
	f := newDriverFixture()
	input := validCreateInput()
	created := &driver.Driver{ID: 10, WorkerID: 1, TruckID: 2, LicenseNumber: "Q12345678"}

	f.drivers.On("FindIDByWorkerID", ctx, int64(1)).Return(int64(0), false, nil)
	f.drivers.On("FindIDByTruckID", ctx, int64(2)).Return(int64(0), false, nil)
	f.workers.On("GetByID", ctx, int64(1)).Return(&worker.Worker{ID: 1}, nil)
	f.trucks.On("GetByID", ctx, int64(2)).Return(&truck.Truck{ID: 2}, nil)
	f.drivers.On("Create", ctx, input).Return(created, nil)

	got, err := f.svc.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	cached, err := cache.GetJSON[driver.Driver](ctx, f.store, cache.Key(cacheNamespaceDriver, 10))
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "Q12345678", cached.LicenseNumber)

	f.drivers.AssertExpectations(t)
}

func TestDriverService_CreateConflicts(t *testing.T) {
	ctx := context.Background()

	t.Run("worker taken", func(t *testing.T) {
		f := newDriverFixture()
		f.drivers.On("FindIDByWorkerID", ctx, int64(1)).Return(int64(5), true, nil)

		_, err := f.svc.Create(ctx, validCreateInput())
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		f.drivers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("truck taken", func(t *testing.T) {
		f := newDriverFixture()
		f.drivers.On("FindIDByWorkerID", ctx, int64(1)).Return(int64(0), false, nil)
		f.drivers.On("FindIDByTruckID", ctx, int64(2)).Return(int64(5), true, nil)

		_, err := f.svc.Create(ctx, validCreateInput())
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		f.drivers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestDriverService_CreateUnknownWorker(t *testing.T) {
	ctx := context.Background()
	f := newDriverFixture()

	f.drivers.On("FindIDByWorkerID", ctx, int64(1)).Return(int64(0), false, nil)
	f.drivers.On("FindIDByTruckID", ctx, int64(2)).Return(int64(0), false, nil)
	f.workers.On("GetByID", ctx, int64(1)).Return(nil, apperrors.NotFoundResource("Worker", "id", 1))

	_, err := f.svc.Create(ctx, validCreateInput())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	f.drivers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDriverService_CreateValidation(t *testing.T) {
	f := newDriverFixture()

	input := validCreateInput()
	input.LicenseNumber = ""

	_, err := f.svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	f.drivers.AssertNotCalled(t, "FindIDByWorkerID", mock.Anything, mock.Anything)
}

func TestDriverService_GetUsesCache(t *testing.T) {
	ctx := context.Background()
	f := newDriverFixture()
	stored := &driver.Driver{ID: 3, LicenseNumber: "L3"}

	f.drivers.On("GetByID", ctx, int64(3)).Return(stored, nil).Once()

	first, err := f.svc.Get(ctx, 3)
	require.NoError(t, err)
	second, err := f.svc.Get(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, first.LicenseNumber, second.LicenseNumber)
	f.drivers.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestDriverService_GetNotFound(t *testing.T) {
	ctx := context.Background()
	f := newDriverFixture()
	f.drivers.On("GetByID", ctx, int64(99)).Return(nil, apperrors.NotFoundResource("Driver", "id", 99))

	_, err := f.svc.Get(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDriverService_GetWithoutCache(t *testing.T) {
	ctx := context.Background()
	drivers := new(MockDriverRepository)
	svc := NewDriverService(drivers, nil, nil, nil, 0, nil)

	drivers.On("GetByID", ctx, int64(3)).Return(&driver.Driver{ID: 3}, nil).Twice()

	_, err := svc.Get(ctx, 3)
	require.NoError(t, err)
	_, err = svc.Get(ctx, 3)
	require.NoError(t, err)
	drivers.AssertExpectations(t)
}

func TestDriverService_List(t *testing.T) {
	ctx := context.Background()
	f := newDriverFixture()
	req := page.Request{Number: 0, Size: 10, SortBy: "id", SortDir: page.Asc}
	want := page.New([]driver.Driver{{ID: 1}}, req, 1)

	f.drivers.On("List", ctx, req).Return(want, nil)

	got, err := f.svc.List(ctx, req)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func validUpdateInput() driver.UpdateDriverInput {
	return driver.UpdateDriverInput{
		WorkerID:        1,
		TruckID:         2,
		LicenseNumber:   "Q12345678",
		LicenseCategory: "A-IIB",
		Active:          false,
	}
}

func TestDriverService_UpdateKeepsOwnAssignments(t *testing.T) {
	ctx := context.Background()
	f := newDriverFixture()
	input := validUpdateInput()
	updated := &driver.Driver{ID: 7, WorkerID: 1, TruckID: 2}

	f.drivers.On("FindIDByWorkerID", ctx, int64(1)).Return(int64(7), true, nil)
	f.drivers.On("FindIDByTruckID", ctx, int64(2)).Return(int64(7), true, nil)
	f.drivers.On("GetByID", ctx, int64(7)).Return(&driver.Driver{ID: 7}, nil)
	f.workers.On("GetByID", ctx, int64(1)).Return(&worker.Worker{ID: 1}, nil)
	f.trucks.On("GetByID", ctx, int64(2)).Return(&truck.Truck{ID: 2}, nil)
	f.drivers.On("Update", ctx, int64(7), input).Return(updated, nil)

	got, err := f.svc.Update(ctx, 7, input)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestDriverService_UpdateConflictWithOtherDriver(t *testing.T) {
	ctx := context.Background()
	f := newDriverFixture()

	f.drivers.On("FindIDByWorkerID", ctx, int64(1)).Return(int64(8), true, nil)

	_, err := f.svc.Update(ctx, 7, validUpdateInput())
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	f.drivers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDriverService_UpdateIDMismatch(t *testing.T) {
	f := newDriverFixture()
	input := validUpdateInput()
	other := int64(8)
	input.ID = &other

	_, err := f.svc.Update(context.Background(), 7, input)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestDriverService_UpdateMatchingBodyID(t *testing.T) {
	ctx := context.Background()
	f := newDriverFixture()
	input := validUpdateInput()
	same := int64(7)
	input.ID = &same

	f.drivers.On("FindIDByWorkerID", ctx, int64(1)).Return(int64(0), false, nil)
	f.drivers.On("FindIDByTruckID", ctx, int64(2)).Return(int64(0), false, nil)
	f.drivers.On("GetByID", ctx, int64(7)).Return(nil, apperrors.NotFoundResource("Driver", "id", 7))

	_, err := f.svc.Update(ctx, 7, input)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDriverService_DeleteEvictsCache(t *testing.T) {
	ctx := context.Background()
	f := newDriverFixture()
	key := cache.Key(cacheNamespaceDriver, 4)

	require.NoError(t, cache.SetJSON(ctx, f.store, key, &driver.Driver{ID: 4}, time.Minute))
	f.drivers.On("Delete", ctx, int64(4)).Return(nil)

	require.NoError(t, f.svc.Delete(ctx, 4))

	cached, err := cache.GetJSON[driver.Driver](ctx, f.store, key)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestDriverService_DeleteNotFound(t *testing.T) {
	ctx := context.Background()
	f := newDriverFixture()
	f.drivers.On("Delete", ctx, int64(4)).Return(apperrors.NotFoundResource("Driver", "id", 4))

	assert.ErrorIs(t, f.svc.Delete(ctx, 4), apperrors.ErrNotFound)
}
