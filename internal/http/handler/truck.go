package handler

import (
	"net/http"
	"strings"

	"fleet-service/internal/domain/truck"

	"github.com/labstack/echo/v4"
)

const msgTruckDeleted = "truck deleted"

type TruckHandler struct {
	trucks     TruckService
	pagination Pagination
}

func NewTruckHandler(trucks TruckService, pagination Pagination) *TruckHandler {
	return &TruckHandler{trucks: trucks, pagination: pagination}
}

type TruckRequest struct {
	ID         *int64 `json:"id,omitempty"`
	Plate      string `json:"plate"`
	Brand      string `json:"brand"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
	CapacityKg int    `json:"capacityKg"`
}

func (r *TruckRequest) normalize() {
	r.Plate = strings.ToUpper(strings.TrimSpace(r.Plate))
	r.Brand = strings.TrimSpace(r.Brand)
	r.Model = strings.TrimSpace(r.Model)
}

type TruckResponse struct {
	ID         int64  `json:"id"`
	Plate      string `json:"plate"`
	Brand      string `json:"brand"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
	CapacityKg int    `json:"capacityKg"`
	timestamps
}

func toTruckResponse(t truck.Truck) TruckResponse {
	return TruckResponse{
		ID:         t.ID,
		Plate:      t.Plate,
		Brand:      t.Brand,
		Model:      t.Model,
		Year:       t.Year,
		CapacityKg: t.CapacityKg,
		timestamps: timestamps{CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt},
	}
}

func (h *TruckHandler) Create(c echo.Context) error {
	var req TruckRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}
	req.normalize()

	t, err := h.trucks.Create(c.Request().Context(), truck.CreateTruckInput{
		Plate:      req.Plate,
		Brand:      req.Brand,
		Model:      req.Model,
		Year:       req.Year,
		CapacityKg: req.CapacityKg,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toTruckResponse(*t))
}

func (h *TruckHandler) List(c echo.Context) error {
	req, err := h.pagination.parsePageRequest(c)
	if err != nil {
		return err
	}

	p, err := h.trucks.List(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPageResponse(p, toTruckResponse))
}

func (h *TruckHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	t, err := h.trucks.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTruckResponse(*t))
}

func (h *TruckHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req TruckRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}
	req.normalize()

	t, err := h.trucks.Update(c.Request().Context(), id, truck.UpdateTruckInput{
		ID:         req.ID,
		Plate:      req.Plate,
		Brand:      req.Brand,
		Model:      req.Model,
		Year:       req.Year,
		CapacityKg: req.CapacityKg,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTruckResponse(*t))
}

func (h *TruckHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.trucks.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return respondMessage(c, http.StatusOK, msgTruckDeleted)
}
