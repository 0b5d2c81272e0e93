package schedule

import (
	"time"
)

// DefaultSlotLimit is the maximum number of slots returned when the request
// does not specify its own limit. It matches the daemon-level default of 20
// results per call.
const DefaultSlotLimit = 20

// Interval is a half-open time range [Start, End). All intervals handled by
// this package carry explicit locations; naive wall-clock values are never
// constructed internally.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns the length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// IsZero reports whether the interval is degenerate (empty or inverted).
func (iv Interval) IsZero() bool {
	return !iv.End.After(iv.Start)
}

// Overlaps reports whether two half-open intervals share any instant.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// TimeOfDay is a wall-clock time within a day, used for working-hours
// boundaries.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// on anchors the time of day to a specific calendar date in the given
// location.
func (t TimeOfDay) on(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, t.Hour, t.Minute, 0, 0, loc)
}

// WorkingHours describes the recurring daily window and set of weekdays
// during which slots may be offered. The Location is the calendar owner's
// reference timezone; day boundaries and weekday checks are evaluated in it.
type WorkingHours struct {
	DayStart TimeOfDay
	DayEnd   TimeOfDay
	Weekdays map[time.Weekday]bool
	Location *time.Location
}

// DefaultWorkingHours returns the standard policy of 09:00-17:00,
// Monday through Friday, in the given location.
func DefaultWorkingHours(loc *time.Location) WorkingHours {
	if loc == nil {
		loc = time.UTC
	}
	return WorkingHours{
		DayStart: TimeOfDay{Hour: 9},
		DayEnd:   TimeOfDay{Hour: 17},
		Weekdays: map[time.Weekday]bool{
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
		},
		Location: loc,
	}
}

// allowsDay reports whether the policy permits slots on the given weekday.
func (wh WorkingHours) allowsDay(day time.Weekday) bool {
	return wh.Weekdays[day]
}

// Request describes a single free-slot search.
type Request struct {
	// Duration is the length of each returned slot. Must be positive.
	Duration time.Duration

	// HorizonDays is the number of calendar days from Now to search.
	// Must be positive.
	HorizonDays int

	// Now is the lower bound of the search window. Time-of-day earlier
	// than Now on the first day is never offered.
	Now time.Time

	// Limit caps the number of returned slots. Zero means DefaultSlotLimit.
	Limit int
}
