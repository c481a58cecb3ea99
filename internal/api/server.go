// Package api exposes employees, clock events and computed summaries over
// HTTP. Responses carry raw numbers; formatting is left to clients.
package api

import (
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/alexanderramin/timeledger/internal/repository"
	"github.com/alexanderramin/timeledger/internal/service"
	"github.com/alexanderramin/timeledger/internal/timetrack"
	"github.com/gin-gonic/gin"
)

// Services are the use cases the HTTP layer needs.
type Services struct {
	Employees service.EmployeeService
	Clock     service.ClockService
	Stats     service.StatsService
}

type Server struct {
	svc        Services
	logger     *slog.Logger
	eventLimit int
	now        func() time.Time
}

// NewServer builds the HTTP server. eventLimit is the default page size of
// the events listing when no ?limit is given.
func NewServer(svc Services, logger *slog.Logger, eventLimit int) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		svc:        svc,
		logger:     logger,
		eventLimit: eventLimit,
		now:        time.Now,
	}
}

func (s *Server) Routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(s.requestLogger(), gin.Recovery())
	engine.GET("/healthz", s.handleHealthz)

	api := engine.Group("/api")
	api.GET("/employees", s.handleEmployees)
	api.GET("/employees/:id/summary", s.handleEmployeeSummary)
	api.GET("/employees/:id/events", s.handleListEvents)
	api.POST("/employees/:id/events", s.handleRecordEvent)
	api.GET("/summaries", s.handleSummaries)
	api.GET("/hours", s.handleHours)
	return engine
}

// requestLogger logs one line per request through slog.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := s.now()
		c.Next()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			s.logger.ErrorContext(c.Request.Context(), "http_request", attrs...)
			return
		}
		s.logger.InfoContext(c.Request.Context(), "http_request", attrs...)
	}
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleEmployees(c *gin.Context) {
	employees, err := s.svc.Employees.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	out := make([]employeeJSON, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeJSON(e))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleEmployeeSummary(c *gin.Context) {
	report, err := s.svc.Stats.EmployeeReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReportJSON(report))
}

func (s *Server) handleListEvents(c *gin.Context) {
	limit := s.eventLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	ctx := c.Request.Context()
	if _, err := s.svc.Employees.GetByID(ctx, c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	events, err := s.svc.Clock.ListRecent(ctx, c.Param("id"), limit)
	if err != nil {
		s.writeError(c, err)
		return
	}
	out := make([]eventJSON, 0, len(events))
	for _, e := range events {
		out = append(out, toEventJSON(e))
	}
	c.JSON(http.StatusOK, out)
}

type recordEventRequest struct {
	Kind      string `json:"kind"`
	Timestamp string `json:"timestamp,omitempty"`
	Note      string `json:"note,omitempty"`
}

func (s *Server) handleRecordEvent(c *gin.Context) {
	var req recordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	kind, err := domain.ParseEventKind(req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var at time.Time
	if req.Timestamp != "" {
		if at, err = time.Parse(time.RFC3339Nano, req.Timestamp); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "timestamp must be RFC 3339"})
			return
		}
	}

	event, err := s.svc.Clock.Record(c.Request.Context(), c.Param("id"), kind, at, req.Note)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEventJSON(*event))
}

func (s *Server) handleSummaries(c *gin.Context) {
	results, err := s.svc.Stats.AllReports(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	out := make([]summaryEntryJSON, 0, len(results))
	for _, r := range results {
		entry := summaryEntryJSON{Employee: toEmployeeJSON(r.Employee)}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		} else {
			rep := toReportJSON(r.Report)
			entry.Summary = &rep.Summary
			entry.IgnoredEvents = rep.IgnoredEvents
			entry.State = rep.State
		}
		out = append(out, entry)
	}
	c.JSON(http.StatusOK, out)
}

// handleHours returns worked hours over each subject's full log, ordered by
// subject ID.
func (s *Server) handleHours(c *gin.Context) {
	results, err := s.svc.Stats.WorkedHours(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	out := make([]hoursJSON, 0, len(results))
	for _, id := range slices.Sorted(maps.Keys(results)) {
		out = append(out, toHoursJSON(results[id]))
	}
	c.JSON(http.StatusOK, out)
}

// writeError maps service errors to status codes. Stored logs with an
// unknown event kind cannot be summarized and answer 422.
func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, timetrack.ErrInvalidEventKind):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request.Context(), "request failed", "path", c.Request.URL.Path, "error", err.Error())
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
