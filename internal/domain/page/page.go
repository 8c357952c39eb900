// Package page holds the pagination request and response shapes shared by all
// list endpoints.
package page

import (
	"fmt"
	"math"
	"strings"
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"

	DefaultSortBy = "id"
)

// ParseDirection returns Asc for "asc" in any case and Desc for anything else.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, string(Asc)) {
		return Asc
	}
	return Desc
}

// Request is a zero-based page request.
type Request struct {
	Number  int
	Size    int
	SortBy  string
	SortDir Direction
}

// Offset saturates at math.MaxInt when Number*Size does not fit in an int.
func (r Request) Offset() int {
	if r.OutOfRange() {
		return math.MaxInt
	}
	return r.Number * r.Size
}

// OutOfRange reports whether Number*Size overflows int.
func (r Request) OutOfRange() bool {
	return r.Size > 0 && r.Number > math.MaxInt/r.Size
}

// Normalize fills defaults and clamps the size into [1, maxSize].
func (r Request) Normalize(defaultSize, maxSize int) Request {
	if r.Number < 0 {
		r.Number = 0
	}
	if r.Size <= 0 {
		r.Size = defaultSize
	}
	if r.Size > maxSize {
		r.Size = maxSize
	}
	if r.SortBy == "" {
		r.SortBy = DefaultSortBy
	}
	if r.SortDir == "" {
		r.SortDir = Asc
	}
	return r
}

// OrderBy resolves SortBy against a whitelist of sortable columns.
func (r Request) OrderBy(columns map[string]string) (string, error) {
	column, ok := columns[r.SortBy]
	if !ok {
		return "", fmt.Errorf("unsupported sort field %q", r.SortBy)
	}
	return fmt.Sprintf("%s %s", column, r.SortDir), nil
}

type Page[T any] struct {
	Content       []T
	PageNumber    int
	PageSize      int
	TotalElements int64
	TotalPages    int
	Last          bool
}

// New builds a page from one slice of results and the total row count.
func New[T any](content []T, req Request, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return &Page[T]{
		Content:       content,
		PageNumber:    req.Number,
		PageSize:      req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          req.Number+1 >= totalPages,
	}
}

// Map converts the content of a page while keeping its metadata.
func Map[T, U any](p *Page[T], fn func(T) U) *Page[U] {
	content := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, fn(item))
	}
	return &Page[U]{
		Content:       content,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Last:          p.Last,
	}
}
