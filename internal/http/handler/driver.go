package handler

import (
	"net/http"
	"strings"

	"fleet-service/internal/domain/driver"

	"github.com/labstack/echo/v4"
)

const msgDriverDeleted = "driver deleted"

type DriverHandler struct {
	drivers    DriverService
	pagination Pagination
}

func NewDriverHandler(drivers DriverService, pagination Pagination) *DriverHandler {
	return &DriverHandler{drivers: drivers, pagination: pagination}
}

type DriverRequest struct {
	ID              *int64 `json:"id,omitempty"`
	WorkerID        int64  `json:"workerId"`
	TruckID         int64  `json:"truckId"`
	LicenseNumber   string `json:"licenseNumber"`
	LicenseCategory string `json:"licenseCategory"`
	LicenseExpiry   *Date  `json:"licenseExpiry,omitempty"`
	Active          *bool  `json:"active,omitempty"`
}

func (r *DriverRequest) normalize() {
	r.LicenseNumber = strings.TrimSpace(r.LicenseNumber)
	r.LicenseCategory = strings.ToUpper(strings.TrimSpace(r.LicenseCategory))
}

func (r DriverRequest) active() bool {
	return r.Active == nil || *r.Active
}

type WorkerSummaryResponse struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DocumentNumber string `json:"documentNumber"`
}

type TruckSummaryResponse struct {
	ID    int64  `json:"id"`
	Plate string `json:"plate"`
	Brand string `json:"brand"`
	Model string `json:"model"`
}

type DriverResponse struct {
	ID              int64                  `json:"id"`
	WorkerID        int64                  `json:"workerId"`
	TruckID         int64                  `json:"truckId"`
	LicenseNumber   string                 `json:"licenseNumber"`
	LicenseCategory string                 `json:"licenseCategory"`
	LicenseExpiry   *Date                  `json:"licenseExpiry,omitempty"`
	Active          bool                   `json:"active"`
	Worker          *WorkerSummaryResponse `json:"worker,omitempty"`
	Truck           *TruckSummaryResponse  `json:"truck,omitempty"`
	timestamps
}

func toDriverResponse(d driver.Driver) DriverResponse {
	resp := DriverResponse{
		ID:              d.ID,
		WorkerID:        d.WorkerID,
		TruckID:         d.TruckID,
		LicenseNumber:   d.LicenseNumber,
		LicenseCategory: d.LicenseCategory,
		LicenseExpiry:   timeToDate(d.LicenseExpiry),
		Active:          d.Active,
		timestamps:      timestamps{CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
	}
	if d.Worker != nil {
		resp.Worker = &WorkerSummaryResponse{
			ID:             d.Worker.ID,
			FirstName:      d.Worker.FirstName,
			LastName:       d.Worker.LastName,
			DocumentNumber: d.Worker.DocumentNumber,
		}
	}
	if d.Truck != nil {
		resp.Truck = &TruckSummaryResponse{
			ID:    d.Truck.ID,
			Plate: d.Truck.Plate,
			Brand: d.Truck.Brand,
			Model: d.Truck.Model,
		}
	}
	return resp
}

func (h *DriverHandler) Create(c echo.Context) error {
	var req DriverRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}
	req.normalize()

	d, err := h.drivers.Create(c.Request().Context(), driver.CreateDriverInput{
		WorkerID:        req.WorkerID,
		TruckID:         req.TruckID,
		LicenseNumber:   req.LicenseNumber,
		LicenseCategory: req.LicenseCategory,
		LicenseExpiry:   dateToTime(req.LicenseExpiry),
		Active:          req.active(),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toDriverResponse(*d))
}

func (h *DriverHandler) List(c echo.Context) error {
	req, err := h.pagination.parsePageRequest(c)
	if err != nil {
		return err
	}

	p, err := h.drivers.List(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPageResponse(p, toDriverResponse))
}

func (h *DriverHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	d, err := h.drivers.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDriverResponse(*d))
}

func (h *DriverHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req DriverRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}
	req.normalize()

	d, err := h.drivers.Update(c.Request().Context(), id, driver.UpdateDriverInput{
		ID:              req.ID,
		WorkerID:        req.WorkerID,
		TruckID:         req.TruckID,
		LicenseNumber:   req.LicenseNumber,
		LicenseCategory: req.LicenseCategory,
		LicenseExpiry:   dateToTime(req.LicenseExpiry),
		Active:          req.active(),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDriverResponse(*d))
}

func (h *DriverHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.drivers.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return respondMessage(c, http.StatusOK, msgDriverDeleted)
}
