package service

import (
	"context"
	"fmt"
	"time"

	"fleet-service/internal/domain/page"
	"fleet-service/internal/domain/truck"
	"fleet-service/internal/infra/cache"
	"fleet-service/internal/repository"
	apperrors "fleet-service/pkg/errors"
	"fleet-service/pkg/validator"

	"go.uber.org/zap"
)

type TruckService struct {
	trucks  repository.TruckRepository
	drivers repository.DriverRepository
	cache   driverCache
	now     func() time.Time
}

func NewTruckService(
	trucks repository.TruckRepository,
	drivers repository.DriverRepository,
	store cache.Store,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *TruckService {
	return &TruckService{
		trucks:  trucks,
		drivers: drivers,
		cache:   newDriverCache(store, cacheTTL, logger),
		now:     time.Now,
	}
}

func (s *TruckService) Create(ctx context.Context, input truck.CreateTruckInput) (*truck.Truck, error) {
	if err := s.validate(input.Plate, input.Brand, input.Model, input.Year, input.CapacityKg); err != nil {
		return nil, err
	}
	return s.trucks.Create(ctx, input)
}

func (s *TruckService) List(ctx context.Context, req page.Request) (*page.Page[truck.Truck], error) {
	return s.trucks.List(ctx, req)
}

func (s *TruckService) Get(ctx context.Context, id int64) (*truck.Truck, error) {
	return s.trucks.GetByID(ctx, id)
}

func (s *TruckService) Update(ctx context.Context, id int64, input truck.UpdateTruckInput) (*truck.Truck, error) {
	if err := checkIDMatch(id, input.ID); err != nil {
		return nil, err
	}

	if err := s.validate(input.Plate, input.Brand, input.Model, input.Year, input.CapacityKg); err != nil {
		return nil, err
	}

	t, err := s.trucks.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.cache.evictBackedBy(ctx, s.drivers.FindIDByTruckID, "truck_id", id)

	return t, nil
}

// Delete removes a truck that no driver references.
func (s *TruckService) Delete(ctx context.Context, id int64) error {
	driverID, found, err := s.drivers.FindIDByTruckID(ctx, id)
	if err != nil {
		return err
	}
	if found {
		return apperrors.Conflict(fmt.Sprintf(msgTruckStillAssigned, id, driverID))
	}

	return s.trucks.Delete(ctx, id)
}

func (s *TruckService) validate(plate, brand, model string, year, capacityKg int) error {
	if err := validator.Plate(plate); err != nil {
		return validationError(err)
	}
	if err := validator.Brand("brand", brand); err != nil {
		return validationError(err)
	}
	if err := validator.Brand("model", model); err != nil {
		return validationError(err)
	}
	if err := validator.Year(year, s.now()); err != nil {
		return validationError(err)
	}
	if err := validator.CapacityKg(capacityKg); err != nil {
		return validationError(err)
	}
	return nil
}
