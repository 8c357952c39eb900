package handler

import (
	"net/http"
	"strings"

	"fleet-service/internal/domain/worker"

	"github.com/labstack/echo/v4"
)

const msgWorkerDeleted = "worker deleted"

type WorkerHandler struct {
	workers    WorkerService
	pagination Pagination
}

func NewWorkerHandler(workers WorkerService, pagination Pagination) *WorkerHandler {
	return &WorkerHandler{workers: workers, pagination: pagination}
}

type WorkerRequest struct {
	ID             *int64 `json:"id,omitempty"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DocumentNumber string `json:"documentNumber"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	HiredAt        *Date  `json:"hiredAt,omitempty"`
}

func (r *WorkerRequest) normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.DocumentNumber = strings.TrimSpace(r.DocumentNumber)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type WorkerResponse struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DocumentNumber string `json:"documentNumber"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	HiredAt        *Date  `json:"hiredAt,omitempty"`
	timestamps
}

func toWorkerResponse(w worker.Worker) WorkerResponse {
	return WorkerResponse{
		ID:             w.ID,
		FirstName:      w.FirstName,
		LastName:       w.LastName,
		DocumentNumber: w.DocumentNumber,
		Phone:          w.Phone,
		Email:          w.Email,
		HiredAt:        timeToDate(w.HiredAt),
		timestamps:     timestamps{CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt},
	}
}

func (h *WorkerHandler) Create(c echo.Context) error {
	var req WorkerRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}
	req.normalize()

	w, err := h.workers.Create(c.Request().Context(), worker.CreateWorkerInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DocumentNumber: req.DocumentNumber,
		Phone:          req.Phone,
		Email:          req.Email,
		HiredAt:        dateToTime(req.HiredAt),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toWorkerResponse(*w))
}

func (h *WorkerHandler) List(c echo.Context) error {
	req, err := h.pagination.parsePageRequest(c)
	if err != nil {
		return err
	}

	p, err := h.workers.List(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPageResponse(p, toWorkerResponse))
}

func (h *WorkerHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	w, err := h.workers.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toWorkerResponse(*w))
}

func (h *WorkerHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req WorkerRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}
	req.normalize()

	w, err := h.workers.Update(c.Request().Context(), id, worker.UpdateWorkerInput{
		ID:             req.ID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DocumentNumber: req.DocumentNumber,
		Phone:          req.Phone,
		Email:          req.Email,
		HiredAt:        dateToTime(req.HiredAt),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toWorkerResponse(*w))
}

func (h *WorkerHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.workers.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return respondMessage(c, http.StatusOK, msgWorkerDeleted)
}
