package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fgp-services/calendar/internal/calendar"
	"github.com/fgp-services/calendar/internal/logging"
	"github.com/fgp-services/calendar/internal/schedule"
)

// ErrUnknownMethod is returned by Dispatch for method names outside the
// calendar.* surface.
var ErrUnknownMethod = errors.New("unknown method")

// ErrMissingParam is returned when a required parameter is absent or has the
// wrong type. Check with errors.Is.
var ErrMissingParam = errors.New("missing required parameter")

// CalendarAPI is the calendar-data collaborator the service depends on.
// *calendar.Client satisfies it; tests substitute fakes.
type CalendarAPI interface {
	ListEvents(calendarID string, timeMin, timeMax time.Time, query string, limit int64) ([]calendar.EventSummary, error)
	GetEvent(calendarID, eventID string) (*calendar.EventSummary, error)
	CreateEvent(calendarID string, input calendar.EventInput) (*calendar.EventSummary, error)
	UpdateEvent(calendarID, eventID string, input calendar.EventInput) (*calendar.EventSummary, error)
	DeleteEvent(calendarID, eventID string) error
	QuickAdd(calendarID, text string) (*calendar.EventSummary, error)
	GetPrimaryCalendar() (*calendar.CalendarInfo, error)
	BusyIntervals(calendarID string, timeMin, timeMax time.Time) ([]calendar.BusyPeriod, error)
}

// MethodMetrics records wire method outcomes. *instrumentation.Metrics
// satisfies it.
type MethodMetrics interface {
	RecordMethodCall(ctx context.Context, method, status string, duration time.Duration)
}

// Service implements the calendar.* wire methods on top of a CalendarAPI.
// It is transport-agnostic: the CLI and the MCP tools both go through
// Dispatch.
type Service struct {
	api     CalendarAPI
	logger  *slog.Logger
	metrics MethodMetrics
	now     func() time.Time
	hours   *schedule.WorkingHours
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithWorkingHours overrides the default 09:00-17:00 Mon-Fri policy used by
// calendar.free_slots.
func WithWorkingHours(hours schedule.WorkingHours) Option {
	return func(s *Service) { s.hours = &hours }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics enables per-method call metrics. Without it no metrics are
// recorded.
func WithMetrics(metrics MethodMetrics) Option {
	return func(s *Service) { s.metrics = metrics }
}

// NewService creates a Service backed by the given calendar API.
func NewService(api CalendarAPI, opts ...Option) *Service {
	s := &Service{
		api:    api,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch routes a wire method call to its handler. Params carry the
// decoded JSON request object; a nil map is treated as empty.
func (s *Service) Dispatch(ctx context.Context, method string, params map[string]any) (any, error) {
	handler, ok := s.handlers()[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}

	logger := logging.WithMethod(s.logger, method)
	start := time.Now()
	result, err := handler(ctx, params)
	duration := time.Since(start)
	if err != nil {
		s.recordCall(ctx, method, logging.StatusError, duration)
		logger.Error("method failed", logging.Status(logging.StatusError), logging.Err(err))
		return nil, err
	}
	s.recordCall(ctx, method, logging.StatusSuccess, duration)
	logger.Debug("method completed", logging.Status(logging.StatusSuccess))
	return result, nil
}

func (s *Service) recordCall(ctx context.Context, method, status string, duration time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordMethodCall(ctx, method, status, duration)
}

type handlerFunc func(ctx context.Context, params map[string]any) (any, error)

func (s *Service) handlers() map[string]handlerFunc {
	return map[string]handlerFunc{
		"calendar.today":      s.handleToday,
		"calendar.upcoming":   s.handleUpcoming,
		"calendar.search":     s.handleSearch,
		"calendar.create":     s.handleCreate,
		"calendar.get":        s.handleGet,
		"calendar.update":     s.handleUpdate,
		"calendar.delete":     s.handleDelete,
		"calendar.quick":      s.handleQuickAdd,
		"calendar.free_slots": s.handleFreeSlots,
	}
}

// Methods returns the wire method catalog for introspection and generated
// documentation.
func Methods() []MethodInfo {
	return []MethodInfo{
		{
			Name:        "calendar.today",
			Description: "Get today's events",
			Params:      []ParamInfo{},
		},
		{
			Name:        "calendar.upcoming",
			Description: "Get upcoming events",
			Params: []ParamInfo{
				{Name: "days", Type: "integer", Default: 7},
				{Name: "limit", Type: "integer", Default: 20},
			},
		},
		{
			Name:        "calendar.search",
			Description: "Search events by query",
			Params: []ParamInfo{
				{Name: "query", Type: "string", Required: true},
				{Name: "days", Type: "integer", Default: 30},
			},
		},
		{
			Name:        "calendar.create",
			Description: "Create a new event",
			Params: []ParamInfo{
				{Name: "summary", Type: "string", Required: true},
				{Name: "start", Type: "string", Required: true},
				{Name: "end", Type: "string", Required: true},
				{Name: "description", Type: "string"},
				{Name: "location", Type: "string"},
				{Name: "attendees", Type: "array"},
			},
		},
		{
			Name:        "calendar.get",
			Description: "Get a specific event by ID",
			Params: []ParamInfo{
				{Name: "event_id", Type: "string", Required: true},
			},
		},
		{
			Name:        "calendar.update",
			Description: "Update an existing event",
			Params: []ParamInfo{
				{Name: "event_id", Type: "string", Required: true},
				{Name: "summary", Type: "string"},
				{Name: "start", Type: "string"},
				{Name: "end", Type: "string"},
				{Name: "description", Type: "string"},
				{Name: "location", Type: "string"},
			},
		},
		{
			Name:        "calendar.delete",
			Description: "Delete an event",
			Params: []ParamInfo{
				{Name: "event_id", Type: "string", Required: true},
			},
		},
		{
			Name:        "calendar.quick",
			Description: "Quick add event from natural language",
			Params: []ParamInfo{
				{Name: "text", Type: "string", Required: true},
			},
		},
		{
			Name:        "calendar.free_slots",
			Description: "Find available time slots",
			Params: []ParamInfo{
				{Name: "duration_minutes", Type: "integer", Required: true},
				{Name: "days", Type: "integer", Default: 7},
			},
		},
	}
}

// referenceLocation resolves the calendar owner's timezone from the primary
// calendar. UTC is the documented fallback when the calendar carries no
// loadable zone.
func (s *Service) referenceLocation() *time.Location {
	info, err := s.api.GetPrimaryCalendar()
	if err != nil || info == nil || info.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(info.TimeZone)
	if err != nil {
		s.logger.Warn("unknown calendar timezone, falling back to UTC",
			logging.Calendar(info.ID), logging.Err(err))
		return time.UTC
	}
	return loc
}

// stringParam extracts a string parameter.
func stringParam(params map[string]any, key string) (string, bool) {
	v, ok := params[key].(string)
	return v, ok && v != ""
}

// intParam extracts an integer parameter, accepting the float64 values that
// JSON decoding produces.
func intParam(params map[string]any, key string, fallback int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return fallback
	}
}

// stringSliceParam extracts a list-of-strings parameter.
func stringSliceParam(params map[string]any, key string) []string {
	raw, ok := params[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
