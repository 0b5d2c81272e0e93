package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fgp-services/calendar/internal/calendar"
	"github.com/fgp-services/calendar/internal/schedule"
)

// primaryCalendarID is the calendar every wire method operates on.
const primaryCalendarID = "primary"

// Defaults for the optional day-range parameters, matching the documented
// wire contract.
const (
	defaultUpcomingDays = 7
	defaultSearchDays   = 30
	defaultSlotDays     = 7
	defaultEventLimit   = 20
)

func (s *Service) handleToday(ctx context.Context, params map[string]any) (any, error) {
	loc := s.referenceLocation()
	now := s.now().In(loc)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	endOfDay := startOfDay.AddDate(0, 0, 1)

	events, err := s.api.ListEvents(primaryCalendarID, startOfDay, endOfDay, "", 0)
	if err != nil {
		return nil, err
	}

	return &TodayResult{
		Date:   startOfDay.Format("2006-01-02"),
		Events: toEventPayloads(events),
		Count:  len(events),
	}, nil
}

func (s *Service) handleUpcoming(ctx context.Context, params map[string]any) (any, error) {
	days := intParam(params, "days", defaultUpcomingDays)
	limit := intParam(params, "limit", defaultEventLimit)
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive, got %d", schedule.ErrInvalidArgument, days)
	}

	now := s.now()
	events, err := s.api.ListEvents(primaryCalendarID, now, now.AddDate(0, 0, days), "", int64(limit))
	if err != nil {
		return nil, err
	}

	return &UpcomingResult{
		Days:   days,
		Events: toEventPayloads(events),
		Count:  len(events),
	}, nil
}

func (s *Service) handleSearch(ctx context.Context, params map[string]any) (any, error) {
	query, ok := stringParam(params, "query")
	if !ok {
		return nil, fmt.Errorf("%w: query", ErrMissingParam)
	}
	days := intParam(params, "days", defaultSearchDays)
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive, got %d", schedule.ErrInvalidArgument, days)
	}

	now := s.now()
	events, err := s.api.ListEvents(primaryCalendarID, now, now.AddDate(0, 0, days), query, 0)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Query:  query,
		Events: toEventPayloads(events),
		Count:  len(events),
	}, nil
}

func (s *Service) handleCreate(ctx context.Context, params map[string]any) (any, error) {
	summary, ok := stringParam(params, "summary")
	if !ok {
		return nil, fmt.Errorf("%w: summary", ErrMissingParam)
	}
	startStr, ok := stringParam(params, "start")
	if !ok {
		return nil, fmt.Errorf("%w: start", ErrMissingParam)
	}
	endStr, ok := stringParam(params, "end")
	if !ok {
		return nil, fmt.Errorf("%w: end", ErrMissingParam)
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil, fmt.Errorf("%w: start must be RFC3339: %v", schedule.ErrInvalidArgument, err)
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return nil, fmt.Errorf("%w: end must be RFC3339: %v", schedule.ErrInvalidArgument, err)
	}

	input := calendar.EventInput{
		Summary:   summary,
		Start:     start,
		End:       end,
		Attendees: stringSliceParam(params, "attendees"),
	}
	input.Description, _ = stringParam(params, "description")
	input.Location, _ = stringParam(params, "location")

	created, err := s.api.CreateEvent(primaryCalendarID, input)
	if err != nil {
		return nil, err
	}

	return &CreateResult{
		Created:  true,
		EventID:  created.ID,
		HTMLLink: created.HTMLLink,
		Summary:  created.Summary,
	}, nil
}

func (s *Service) handleGet(ctx context.Context, params map[string]any) (any, error) {
	eventID, ok := stringParam(params, "event_id")
	if !ok {
		return nil, fmt.Errorf("%w: event_id", ErrMissingParam)
	}

	event, err := s.api.GetEvent(primaryCalendarID, eventID)
	if err != nil {
		return nil, err
	}

	payload := toEventPayload(*event)
	return &payload, nil
}

func (s *Service) handleUpdate(ctx context.Context, params map[string]any) (any, error) {
	eventID, ok := stringParam(params, "event_id")
	if !ok {
		return nil, fmt.Errorf("%w: event_id", ErrMissingParam)
	}

	var input calendar.EventInput
	input.Summary, _ = stringParam(params, "summary")
	input.Description, _ = stringParam(params, "description")
	input.Location, _ = stringParam(params, "location")

	if startStr, ok := stringParam(params, "start"); ok {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return nil, fmt.Errorf("%w: start must be RFC3339: %v", schedule.ErrInvalidArgument, err)
		}
		input.Start = start
	}
	if endStr, ok := stringParam(params, "end"); ok {
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return nil, fmt.Errorf("%w: end must be RFC3339: %v", schedule.ErrInvalidArgument, err)
		}
		input.End = end
	}

	updated, err := s.api.UpdateEvent(primaryCalendarID, eventID, input)
	if err != nil {
		return nil, err
	}

	return &UpdateResult{
		Updated:  true,
		EventID:  updated.ID,
		HTMLLink: updated.HTMLLink,
		Summary:  updated.Summary,
	}, nil
}

func (s *Service) handleDelete(ctx context.Context, params map[string]any) (any, error) {
	eventID, ok := stringParam(params, "event_id")
	if !ok {
		return nil, fmt.Errorf("%w: event_id", ErrMissingParam)
	}

	if err := s.api.DeleteEvent(primaryCalendarID, eventID); err != nil {
		return nil, err
	}

	return &DeleteResult{
		Deleted: true,
		EventID: eventID,
	}, nil
}

func (s *Service) handleQuickAdd(ctx context.Context, params map[string]any) (any, error) {
	text, ok := stringParam(params, "text")
	if !ok {
		return nil, fmt.Errorf("%w: text", ErrMissingParam)
	}

	created, err := s.api.QuickAdd(primaryCalendarID, text)
	if err != nil {
		return nil, err
	}

	return &QuickAddResult{
		Created:  true,
		EventID:  created.ID,
		HTMLLink: created.HTMLLink,
		Summary:  created.Summary,
		Start:    formatInstant(created.Start, created.AllDay),
		End:      formatInstant(created.End, created.AllDay),
	}, nil
}

func (s *Service) handleFreeSlots(ctx context.Context, params map[string]any) (any, error) {
	durationMinutes := intParam(params, "duration_minutes", 0)
	days := intParam(params, "days", defaultSlotDays)

	// Arguments are validated before the upstream call so invalid
	// requests fail fast and deterministically.
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration_minutes must be positive, got %d", schedule.ErrInvalidArgument, durationMinutes)
	}
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive, got %d", schedule.ErrInvalidArgument, days)
	}

	loc := s.referenceLocation()
	now := s.now().In(loc)

	// An upstream failure is surfaced as-is: an empty slot list must mean
	// a genuinely free calendar, never a swallowed error.
	busy, err := s.api.BusyIntervals(primaryCalendarID, now, now.AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}

	intervals := make([]schedule.Interval, 0, len(busy))
	for _, b := range busy {
		intervals = append(intervals, schedule.Interval{Start: b.Start, End: b.End})
	}

	hours := schedule.DefaultWorkingHours(loc)
	if s.hours != nil {
		hours = *s.hours
	}

	slots, err := schedule.FindFreeSlots(intervals, hours, schedule.Request{
		Duration:    time.Duration(durationMinutes) * time.Minute,
		HorizonDays: days,
		Now:         now,
	})
	if err != nil {
		return nil, err
	}

	payloads := make([]SlotPayload, 0, len(slots))
	for _, slot := range slots {
		payloads = append(payloads, SlotPayload{
			Start: slot.Start.Format(time.RFC3339),
			End:   slot.End.Format(time.RFC3339),
		})
	}

	return &FreeSlotsResult{
		DurationMinutes: durationMinutes,
		Days:            days,
		FreeSlots:       payloads,
		Count:           len(payloads),
	}, nil
}
