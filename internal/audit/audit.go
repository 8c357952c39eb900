// Package audit records who changed which fleet record.
package audit

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"fleet-service/internal/auth"
	applog "fleet-service/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ResourceType string

const (
	ResourceTypeDriver ResourceType = "driver"
	ResourceTypeWorker ResourceType = "worker"
	ResourceTypeTruck  ResourceType = "truck"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

const (
	writeTimeout   = 2 * time.Second
	anonymousActor = "anonymous"
	paramID        = "id"
)

type Event struct {
	ID           uuid.UUID
	EventType    string
	ActorSubject string
	ResourceType ResourceType
	ResourceID   *int64
	Action       Action
	Status       Status
	IPAddress    string
	UserAgent    string
	RequestID    string
	ErrorMessage string
	CreatedAt    time.Time
}

// Execer is the subset of pgxpool.Pool the logger writes through.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Logger writes audit events in the background. Close waits for pending writes.
type Logger struct {
	db     Execer
	logger *zap.Logger
	wg     sync.WaitGroup
}

func NewLogger(db Execer, logger *zap.Logger) *Logger {
	return &Logger{db: db, logger: logger}
}

func (l *Logger) Log(ctx context.Context, event *Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO audit_events (
			id, event_type, actor_subject, resource_type, resource_id,
			action, status, ip_address, user_agent, request_id, error_message, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := l.db.Exec(ctx, query,
		event.ID,
		event.EventType,
		event.ActorSubject,
		event.ResourceType,
		event.ResourceID,
		event.Action,
		event.Status,
		event.IPAddress,
		event.UserAgent,
		event.RequestID,
		event.ErrorMessage,
		event.CreatedAt,
	)
	return err
}

// logAsync stores the event without blocking the request.
func (l *Logger) logAsync(event *Event) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := l.Log(ctx, event); err != nil {
			l.logger.Warn("audit_log_failed", zap.String("event_type", event.EventType), zap.Error(err))
		}
	}()
}

func (l *Logger) Close() {
	l.wg.Wait()
}

// Middleware records one event per write request on resource. The action is
// derived from the HTTP method; requests rejected before reaching the handler
// by authorization are not recorded.
func (l *Logger) Middleware(resource ResourceType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			action, ok := actionFor(c.Request().Method)
			if !ok {
				return err
			}

			l.logAsync(newEvent(c, resource, action, err))
			return err
		}
	}
}

func newEvent(c echo.Context, resource ResourceType, action Action, err error) *Event {
	event := &Event{
		EventType:    string(action) + "_" + string(resource),
		ActorSubject: anonymousActor,
		ResourceType: resource,
		Action:       action,
		Status:       StatusSuccess,
		IPAddress:    c.RealIP(),
		UserAgent:    c.Request().UserAgent(),
		RequestID:    c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if principal, ok := auth.PrincipalFromContext(c.Request().Context()); ok {
		event.ActorSubject = principal.Subject
	}

	if id, perr := strconv.ParseInt(c.Param(paramID), 10, 64); perr == nil {
		event.ResourceID = &id
	}

	if err != nil {
		event.Status = StatusFailure
		event.ErrorMessage = applog.SanitizeLogMessage(err.Error())
	} else if c.Response().Status >= http.StatusBadRequest {
		event.Status = StatusFailure
	}

	return event
}

func actionFor(method string) (Action, bool) {
	switch method {
	case http.MethodPost:
		return ActionCreate, true
	case http.MethodPut, http.MethodPatch:
		return ActionUpdate, true
	case http.MethodDelete:
		return ActionDelete, true
	}
	return "", false
}
