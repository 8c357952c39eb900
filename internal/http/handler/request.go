package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fleet-service/internal/domain/page"
	apperrors "fleet-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

const (
	contentTypeJSON          = "application/json"
	maxStrictBodyBytes int64 = 1 << 20
)

// bindStrictJSON decodes exactly one JSON value and rejects unknown fields.
func bindStrictJSON(c echo.Context, dst interface{}) error {
	if !strings.HasPrefix(strings.ToLower(c.Request().Header.Get(echo.HeaderContentType)), contentTypeJSON) {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, msgContentTypeJSONRequired)
	}

	body := io.LimitReader(c.Request().Body, maxStrictBodyBytes)
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var parseErr *time.ParseError
		if errors.As(err, &parseErr) {
			return apperrors.BadRequest(msgInvalidDateFmt)
		}
		return apperrors.BadRequest(msgInvalidRequestBody)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return apperrors.BadRequest(msgInvalidRequestBody)
	}

	return nil
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param(paramID), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.BadRequest(msgInvalidID)
	}
	return id, nil
}

// Pagination holds the list defaults applied to page requests.
type Pagination struct {
	DefaultSize int
	MaxSize     int
}

// parsePageRequest reads page, size, sortBy and sortDir. Absent values take
// defaults; malformed numbers are rejected.
func (p Pagination) parsePageRequest(c echo.Context) (page.Request, error) {
	var req page.Request

	number, err := optionalInt(c, queryPage)
	if err != nil {
		return req, err
	}
	size, err := optionalInt(c, querySize)
	if err != nil {
		return req, err
	}

	req = page.Request{
		Number: number,
		Size:   size,
		SortBy: strings.TrimSpace(c.QueryParam(querySortBy)),
	}
	if dir := c.QueryParam(querySortDir); dir != "" {
		req.SortDir = page.ParseDirection(dir)
	}

	req = req.Normalize(p.DefaultSize, p.MaxSize)
	if req.OutOfRange() {
		return page.Request{}, apperrors.BadRequest(msgPageOutOfRange)
	}
	return req, nil
}

func optionalInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, apperrors.BadRequest(fmt.Sprintf(msgInvalidPageParamFmt, name))
	}
	return v, nil
}

// Date is a calendar date carried as "YYYY-MM-DD" in JSON.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func dateToTime(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func timeToDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{Time: *t}
}
