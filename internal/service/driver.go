package service

import (
	"context"
	"fmt"
	"time"

	"fleet-service/internal/domain/driver"
	"fleet-service/internal/domain/page"
	"fleet-service/internal/infra/cache"
	"fleet-service/internal/repository"
	apperrors "fleet-service/pkg/errors"
	"fleet-service/pkg/validator"

	"go.uber.org/zap"
)

type DriverService struct {
	drivers repository.DriverRepository
	workers repository.WorkerRepository
	trucks  repository.TruckRepository
	cache   driverCache
}

func NewDriverService(
	drivers repository.DriverRepository,
	workers repository.WorkerRepository,
	trucks repository.TruckRepository,
	store cache.Store,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DriverService {
	return &DriverService{
		drivers: drivers,
		workers: workers,
		trucks:  trucks,
		cache:   newDriverCache(store, cacheTTL, logger),
	}
}

// Create registers a driver. A worker or truck may back at most one driver.
func (s *DriverService) Create(ctx context.Context, input driver.CreateDriverInput) (*driver.Driver, error) {
	if err := validateDriverFields(input.WorkerID, input.TruckID, input.LicenseNumber, input.LicenseCategory); err != nil {
		return nil, err
	}

	if err := s.ensureUnassigned(ctx, 0, input.WorkerID, input.TruckID); err != nil {
		return nil, err
	}

	if err := s.ensureReferencesExist(ctx, input.WorkerID, input.TruckID); err != nil {
		return nil, err
	}

	d, err := s.drivers.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.cache.put(ctx, d)
	return d, nil
}

func (s *DriverService) List(ctx context.Context, req page.Request) (*page.Page[driver.Driver], error) {
	return s.drivers.List(ctx, req)
}

func (s *DriverService) Get(ctx context.Context, id int64) (*driver.Driver, error) {
	if d := s.cache.get(ctx, id); d != nil {
		return d, nil
	}

	d, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.put(ctx, d)
	return d, nil
}

// Update replaces a driver. The driver may keep its own worker and truck; a
// worker or truck held by another driver is a conflict.
func (s *DriverService) Update(ctx context.Context, id int64, input driver.UpdateDriverInput) (*driver.Driver, error) {
	if err := checkIDMatch(id, input.ID); err != nil {
		return nil, err
	}

	if err := validateDriverFields(input.WorkerID, input.TruckID, input.LicenseNumber, input.LicenseCategory); err != nil {
		return nil, err
	}

	if err := s.ensureUnassigned(ctx, id, input.WorkerID, input.TruckID); err != nil {
		return nil, err
	}

	if _, err := s.drivers.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.ensureReferencesExist(ctx, input.WorkerID, input.TruckID); err != nil {
		return nil, err
	}

	d, err := s.drivers.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.cache.put(ctx, d)
	return d, nil
}

func (s *DriverService) Delete(ctx context.Context, id int64) error {
	if err := s.drivers.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.evict(ctx, id)
	return nil
}

// ensureUnassigned fails with a conflict when the worker or truck already
// backs a driver other than selfID. selfID 0 means no driver is exempt.
func (s *DriverService) ensureUnassigned(ctx context.Context, selfID, workerID, truckID int64) error {
	owner, found, err := s.drivers.FindIDByWorkerID(ctx, workerID)
	if err != nil {
		return err
	}
	if found && owner != selfID {
		return apperrors.Conflict(fmt.Sprintf(msgWorkerAlreadyAssigned, workerID))
	}

	owner, found, err = s.drivers.FindIDByTruckID(ctx, truckID)
	if err != nil {
		return err
	}
	if found && owner != selfID {
		return apperrors.Conflict(fmt.Sprintf(msgTruckAlreadyAssigned, truckID))
	}

	return nil
}

func (s *DriverService) ensureReferencesExist(ctx context.Context, workerID, truckID int64) error {
	if _, err := s.workers.GetByID(ctx, workerID); err != nil {
		return err
	}
	if _, err := s.trucks.GetByID(ctx, truckID); err != nil {
		return err
	}
	return nil
}

func validateDriverFields(workerID, truckID int64, licenseNumber, licenseCategory string) error {
	if err := validator.PositiveID("workerId", workerID); err != nil {
		return validationError(err)
	}
	if err := validator.PositiveID("truckId", truckID); err != nil {
		return validationError(err)
	}
	if err := validator.LicenseNumber(licenseNumber); err != nil {
		return validationError(err)
	}
	if err := validator.LicenseCategory(licenseCategory); err != nil {
		return validationError(err)
	}
	return nil
}
