package service

import (
	"context"
	"fmt"
	"time"

	"fleet-service/internal/domain/page"
	"fleet-service/internal/domain/worker"
	"fleet-service/internal/infra/cache"
	"fleet-service/internal/repository"
	apperrors "fleet-service/pkg/errors"
	"fleet-service/pkg/validator"

	"go.uber.org/zap"
)

type WorkerService struct {
	workers repository.WorkerRepository
	drivers repository.DriverRepository
	cache   driverCache
}

func NewWorkerService(
	workers repository.WorkerRepository,
	drivers repository.DriverRepository,
	store cache.Store,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *WorkerService {
	return &WorkerService{
		workers: workers,
		drivers: drivers,
		cache:   newDriverCache(store, cacheTTL, logger),
	}
}

func (s *WorkerService) Create(ctx context.Context, input worker.CreateWorkerInput) (*worker.Worker, error) {
	if err := validateWorkerFields(input.FirstName, input.LastName, input.DocumentNumber, input.Phone, input.Email); err != nil {
		return nil, err
	}
	return s.workers.Create(ctx, input)
}

func (s *WorkerService) List(ctx context.Context, req page.Request) (*page.Page[worker.Worker], error) {
	return s.workers.List(ctx, req)
}

func (s *WorkerService) Get(ctx context.Context, id int64) (*worker.Worker, error) {
	return s.workers.GetByID(ctx, id)
}

func (s *WorkerService) Update(ctx context.Context, id int64, input worker.UpdateWorkerInput) (*worker.Worker, error) {
	if err := checkIDMatch(id, input.ID); err != nil {
		return nil, err
	}

	if err := validateWorkerFields(input.FirstName, input.LastName, input.DocumentNumber, input.Phone, input.Email); err != nil {
		return nil, err
	}

	w, err := s.workers.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	// The driver read model embeds the worker summary.
	s.cache.evictBackedBy(ctx, s.drivers.FindIDByWorkerID, "worker_id", id)

	return w, nil
}

// Delete removes a worker that no driver references.
func (s *WorkerService) Delete(ctx context.Context, id int64) error {
	driverID, found, err := s.drivers.FindIDByWorkerID(ctx, id)
	if err != nil {
		return err
	}
	if found {
		return apperrors.Conflict(fmt.Sprintf(msgWorkerStillAssigned, id, driverID))
	}

	return s.workers.Delete(ctx, id)
}

func validateWorkerFields(firstName, lastName, document, phone, email string) error {
	if err := validator.PersonName("first name", firstName); err != nil {
		return validationError(err)
	}
	if err := validator.PersonName("last name", lastName); err != nil {
		return validationError(err)
	}
	if err := validator.DocumentNumber(document); err != nil {
		return validationError(err)
	}
	if err := validator.Phone(phone); err != nil {
		return validationError(err)
	}
	if err := validator.OptionalEmail(email); err != nil {
		return validationError(err)
	}
	return nil
}
