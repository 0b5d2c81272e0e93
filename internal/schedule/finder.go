package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrInvalidArgument is returned when a request carries a non-positive
// duration or horizon. Check with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// FindFreeSlots computes bookable slots of exactly req.Duration within the
// working-hours windows of the search horizon, avoiding all busy intervals.
//
// The busy input may be empty, unsorted, overlapping, or contain degenerate
// (zero or negative length) entries; it is normalized before use. The output
// is ordered by start time, slots never overlap each other or any busy
// interval, and no slot crosses a day boundary or falls outside working
// hours. An empty result is a valid outcome, not an error.
//
// The computation is pure: identical inputs always yield identical output,
// and the input slice is not modified.
func FindFreeSlots(busy []Interval, hours WorkingHours, req Request) ([]Interval, error) {
	if req.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %s", ErrInvalidArgument, req.Duration)
	}
	if req.HorizonDays <= 0 {
		return nil, fmt.Errorf("%w: horizon must be positive, got %d days", ErrInvalidArgument, req.HorizonDays)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultSlotLimit
	}

	loc := hours.Location
	if loc == nil {
		loc = time.UTC
	}

	blocking := mergeIntervals(busy)

	now := req.Now.In(loc)
	horizonEnd := now.AddDate(0, 0, req.HorizonDays)

	var slots []Interval
	for d := 0; d <= req.HorizonDays; d++ {
		day := now.AddDate(0, 0, d)
		if !hours.allowsDay(day.Weekday()) {
			continue
		}

		winStart := hours.DayStart.on(day.Year(), day.Month(), day.Day(), loc)
		winEnd := hours.DayEnd.on(day.Year(), day.Month(), day.Day(), loc)

		// The first day never offers time that has already passed, and
		// the last day stops at the horizon boundary.
		if winStart.Before(now) {
			winStart = now
		}
		if winEnd.After(horizonEnd) {
			winEnd = horizonEnd
		}
		if !winEnd.After(winStart) {
			continue
		}

		for _, gap := range freeGaps(Interval{Start: winStart, End: winEnd}, blocking) {
			for t := gap.Start; !t.Add(req.Duration).After(gap.End); t = t.Add(req.Duration) {
				slots = append(slots, Interval{Start: t, End: t.Add(req.Duration)})
				if len(slots) == limit {
					return slots, nil
				}
			}
		}
	}

	return slots, nil
}

// mergeIntervals sorts the input by start time and coalesces overlapping or
// adjacent intervals into a minimal blocking set. Degenerate intervals are
// dropped. The input slice is left untouched.
func mergeIntervals(in []Interval) []Interval {
	valid := make([]Interval, 0, len(in))
	for _, iv := range in {
		if !iv.IsZero() {
			valid = append(valid, iv)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	sort.Slice(valid, func(i, j int) bool {
		return valid[i].Start.Before(valid[j].Start)
	})

	merged := valid[:1]
	for _, iv := range valid[1:] {
		last := &merged[len(merged)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// freeGaps returns the complement of the blocking set within the window.
// The blocking set must already be merged and sorted.
func freeGaps(window Interval, blocking []Interval) []Interval {
	var gaps []Interval
	cursor := window.Start
	for _, b := range blocking {
		if !b.End.After(cursor) {
			continue
		}
		if !b.Start.Before(window.End) {
			break
		}
		if b.Start.After(cursor) {
			gaps = append(gaps, Interval{Start: cursor, End: b.Start})
		}
		cursor = b.End
	}
	if cursor.Before(window.End) {
		gaps = append(gaps, Interval{Start: cursor, End: window.End})
	}
	return gaps
}
