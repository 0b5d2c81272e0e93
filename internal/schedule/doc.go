// Package schedule computes free meeting slots from calendar busy data.
//
// Given a set of busy intervals, a working-hours policy, and a search
// request, FindFreeSlots enumerates the eligible calendar days in the
// policy's reference timezone, subtracts the merged busy intervals from each
// day's working-hours window, and splits every remaining gap into
// consecutive bookable slots of exactly the requested duration.
//
// The package is pure computation: it performs no I/O, holds no state, and
// is safe for concurrent use. Busy data is supplied by the caller, typically
// from the calendar client's BusyIntervals method.
//
// Example usage:
//
//	hours := schedule.DefaultWorkingHours(loc)
//	slots, err := schedule.FindFreeSlots(busy, hours, schedule.Request{
//	    Duration:    30 * time.Minute,
//	    HorizonDays: 7,
//	    Now:         time.Now(),
//	})
package schedule
