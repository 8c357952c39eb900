package handler

import (
	"time"

	"fleet-service/internal/domain/page"

	"github.com/labstack/echo/v4"
)

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyMessage: message})
}

type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

func toPageResponse[T, U any](p *page.Page[T], fn func(T) U) PageResponse[U] {
	mapped := page.Map(p, fn)
	return PageResponse[U]{
		Content:       mapped.Content,
		PageNumber:    mapped.PageNumber,
		PageSize:      mapped.PageSize,
		TotalElements: mapped.TotalElements,
		TotalPages:    mapped.TotalPages,
		Last:          mapped.Last,
	}
}

type timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
