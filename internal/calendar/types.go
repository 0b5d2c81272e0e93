package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// maxDescriptionLen caps event descriptions in listings so a single verbose
// event cannot blow up a response payload.
const maxDescriptionLen = 200

// EventInput represents the input for creating or updating a calendar event.
type EventInput struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	TimeZone    string
	Attendees   []string

	// AllDay events use whole dates instead of instants.
	AllDay bool
}

// EventSummary is a simplified calendar event for listings and responses.
type EventSummary struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Attendees   []string
	HTMLLink    string
	Status      string
	AllDay      bool
}

// CalendarInfo represents information about a calendar.
type CalendarInfo struct {
	ID          string
	Summary     string
	Description string
	TimeZone    string
	Primary     bool
	AccessRole  string
}

// BusyPeriod is a time range during which the calendar owner is unavailable.
type BusyPeriod struct {
	Start time.Time
	End   time.Time
}

// FreeBusyInfo represents availability information for a single calendar.
type FreeBusyInfo struct {
	Calendar string
	Busy     []BusyPeriod
	Errors   []string
}

// toEventSummary converts a Google Calendar event to an EventSummary.
func toEventSummary(event *calendar.Event) EventSummary {
	if event == nil {
		return EventSummary{}
	}

	summary := EventSummary{
		ID:       event.Id,
		Summary:  event.Summary,
		Location: event.Location,
		HTMLLink: event.HtmlLink,
		Status:   event.Status,
	}
	if summary.Summary == "" {
		summary.Summary = "(No title)"
	}

	if event.Description != "" {
		summary.Description = event.Description
		if len(summary.Description) > maxDescriptionLen {
			summary.Description = summary.Description[:maxDescriptionLen]
		}
	}

	summary.Start, summary.AllDay = parseEventTime(event.Start)
	summary.End, _ = parseEventTime(event.End)

	for _, att := range event.Attendees {
		summary.Attendees = append(summary.Attendees, att.Email)
	}

	return summary
}

// parseEventTime extracts an instant from an EventDateTime, which carries
// either a DateTime (timed event) or a bare Date (all-day event).
func parseEventTime(edt *calendar.EventDateTime) (t time.Time, allDay bool) {
	if edt == nil {
		return time.Time{}, false
	}
	if edt.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, edt.DateTime)
		if err == nil {
			return parsed, false
		}
		return time.Time{}, false
	}
	if edt.Date != "" {
		parsed, err := time.Parse("2006-01-02", edt.Date)
		if err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// toCalendarInfo converts a Google Calendar list entry to CalendarInfo.
func toCalendarInfo(entry *calendar.CalendarListEntry) CalendarInfo {
	if entry == nil {
		return CalendarInfo{}
	}
	return CalendarInfo{
		ID:          entry.Id,
		Summary:     entry.Summary,
		Description: entry.Description,
		TimeZone:    entry.TimeZone,
		Primary:     entry.Primary,
		AccessRole:  entry.AccessRole,
	}
}
