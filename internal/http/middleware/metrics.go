package middleware

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
)

// Metrics keeps in-process request counters. Safe for concurrent use.
type Metrics struct {
	totalRequests  atomic.Int64
	activeRequests atomic.Int64
	totalErrors    atomic.Int64
	totalLatencyMs atomic.Int64
	maxLatencyMs   atomic.Int64

	mu           sync.Mutex
	startedAt    time.Time
	routeCounts  map[string]int64
	routeLatency map[string]int64
	statusCodes  map[int]int64

	now func() time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		startedAt:    time.Now(),
		routeCounts:  make(map[string]int64),
		routeLatency: make(map[string]int64),
		statusCodes:  make(map[int]int64),
		now:          time.Now,
	}
}

// MetricsSnapshot is a point-in-time view of the counters.
type MetricsSnapshot struct {
	TotalRequests  int64            `json:"total_requests"`
	ActiveRequests int64            `json:"active_requests"`
	TotalErrors    int64            `json:"total_errors"`
	ErrorRate      float64          `json:"error_rate_pct"`
	AvgLatencyMs   float64          `json:"avg_latency_ms"`
	MaxLatencyMs   int64            `json:"max_latency_ms"`
	UptimeSeconds  float64          `json:"uptime_seconds"`
	RouteCounts    map[string]int64 `json:"route_counts"`
	RouteAvgMs     map[string]int64 `json:"route_avg_latency_ms"`
	StatusCodes    map[int]int64    `json:"status_codes"`
}

// Middleware records one sample per request. Errors are handed to echo's
// error handler first so the recorded status is the one the client sees.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			m.activeRequests.Add(1)
			start := m.now()

			if err := next(c); err != nil && !c.Response().Committed {
				c.Error(err)
			}

			m.activeRequests.Add(-1)
			m.observe(c.Request().Method+" "+routeOf(c), c.Response().Status, m.now().Sub(start))
			return nil
		}
	}
}

func (m *Metrics) observe(route string, status int, latency time.Duration) {
	ms := latency.Milliseconds()
	m.totalRequests.Add(1)
	m.totalLatencyMs.Add(ms)
	if status >= http.StatusBadRequest {
		m.totalErrors.Add(1)
	}

	for {
		current := m.maxLatencyMs.Load()
		if ms <= current || m.maxLatencyMs.CompareAndSwap(current, ms) {
			break
		}
	}

	m.mu.Lock()
	m.routeCounts[route]++
	m.routeLatency[route] += ms
	m.statusCodes[status]++
	m.mu.Unlock()
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	total := m.totalRequests.Load()
	errs := m.totalErrors.Load()

	snap := MetricsSnapshot{
		TotalRequests:  total,
		ActiveRequests: m.activeRequests.Load(),
		TotalErrors:    errs,
		MaxLatencyMs:   m.maxLatencyMs.Load(),
	}
	if total > 0 {
		snap.AvgLatencyMs = float64(m.totalLatencyMs.Load()) / float64(total)
		snap.ErrorRate = float64(errs) / float64(total) * 100
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	snap.UptimeSeconds = m.now().Sub(m.startedAt).Seconds()
	snap.RouteCounts = make(map[string]int64, len(m.routeCounts))
	snap.RouteAvgMs = make(map[string]int64, len(m.routeCounts))
	for route, count := range m.routeCounts {
		snap.RouteCounts[route] = count
		if count > 0 {
			snap.RouteAvgMs[route] = m.routeLatency[route] / count
		}
	}
	snap.StatusCodes = make(map[int]int64, len(m.statusCodes))
	for code, count := range m.statusCodes {
		snap.StatusCodes[code] = count
	}
	return snap
}

// Handler serves the current snapshot as JSON.
func (m *Metrics) Handler(c echo.Context) error {
	return c.JSON(http.StatusOK, m.Snapshot())
}

// routeOf prefers the registered route pattern so ids do not explode the
// per-route maps.
func routeOf(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}
	return c.Request().URL.Path
}
