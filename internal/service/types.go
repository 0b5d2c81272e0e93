package service

import (
	"time"

	"github.com/fgp-services/calendar/internal/calendar"
)

// EventPayload is the wire representation of a calendar event.
type EventPayload struct {
	ID          string   `json:"id"`
	Summary     string   `json:"summary"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	Attendees   []string `json:"attendees,omitempty"`
	HTMLLink    string   `json:"html_link,omitempty"`
	AllDay      bool     `json:"all_day"`
}

// SlotPayload is the wire representation of a free slot.
type SlotPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TodayResult is the response shape of calendar.today.
type TodayResult struct {
	Date   string         `json:"date"`
	Events []EventPayload `json:"events"`
	Count  int            `json:"count"`
}

// UpcomingResult is the response shape of calendar.upcoming.
type UpcomingResult struct {
	Days   int            `json:"days"`
	Events []EventPayload `json:"events"`
	Count  int            `json:"count"`
}

// SearchResult is the response shape of calendar.search.
type SearchResult struct {
	Query  string         `json:"query"`
	Events []EventPayload `json:"events"`
	Count  int            `json:"count"`
}

// CreateResult is the response shape of calendar.create.
type CreateResult struct {
	Created  bool   `json:"created"`
	EventID  string `json:"event_id"`
	HTMLLink string `json:"html_link,omitempty"`
	Summary  string `json:"summary"`
}

// UpdateResult is the response shape of calendar.update.
type UpdateResult struct {
	Updated  bool   `json:"updated"`
	EventID  string `json:"event_id"`
	HTMLLink string `json:"html_link,omitempty"`
	Summary  string `json:"summary"`
}

// DeleteResult is the response shape of calendar.delete.
type DeleteResult struct {
	Deleted bool   `json:"deleted"`
	EventID string `json:"event_id"`
}

// QuickAddResult is the response shape of calendar.quick.
type QuickAddResult struct {
	Created  bool   `json:"created"`
	EventID  string `json:"event_id"`
	HTMLLink string `json:"html_link,omitempty"`
	Summary  string `json:"summary"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

// FreeSlotsResult is the response shape of calendar.free_slots.
type FreeSlotsResult struct {
	DurationMinutes int           `json:"duration_minutes"`
	Days            int           `json:"days"`
	FreeSlots       []SlotPayload `json:"free_slots"`
	Count           int           `json:"count"`
}

// ParamInfo describes a single method parameter for introspection.
type ParamInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Default  any    `json:"default,omitempty"`
}

// MethodInfo describes a wire method for introspection.
type MethodInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Params      []ParamInfo `json:"params"`
}

// toEventPayload converts a client event summary to its wire shape.
func toEventPayload(e calendar.EventSummary) EventPayload {
	return EventPayload{
		ID:          e.ID,
		Summary:     e.Summary,
		Start:       formatInstant(e.Start, e.AllDay),
		End:         formatInstant(e.End, e.AllDay),
		Location:    e.Location,
		Description: e.Description,
		Attendees:   e.Attendees,
		HTMLLink:    e.HTMLLink,
		AllDay:      e.AllDay,
	}
}

func toEventPayloads(events []calendar.EventSummary) []EventPayload {
	payloads := make([]EventPayload, 0, len(events))
	for _, e := range events {
		payloads = append(payloads, toEventPayload(e))
	}
	return payloads
}

// formatInstant renders an event boundary on the wire. All-day boundaries
// are whole dates, everything else RFC3339 instants.
func formatInstant(t time.Time, allDay bool) string {
	if t.IsZero() {
		return ""
	}
	if allDay {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}
