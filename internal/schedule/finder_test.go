package schedule

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

// monday is a fixed reference Monday used throughout the tests.
var monday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func TestFindFreeSlots_InvalidArguments(t *testing.T) {
	hours := DefaultWorkingHours(time.UTC)

	tests := []struct {
		name string
		req  Request
	}{
		{
			name: "zero duration",
			req:  Request{Duration: 0, HorizonDays: 7, Now: monday},
		},
		{
			name: "negative duration",
			req:  Request{Duration: -30 * time.Minute, HorizonDays: 7, Now: monday},
		},
		{
			name: "zero horizon",
			req:  Request{Duration: 30 * time.Minute, HorizonDays: 0, Now: monday},
		},
		{
			name: "negative horizon",
			req:  Request{Duration: 30 * time.Minute, HorizonDays: -1, Now: monday},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := FindFreeSlots(nil, hours, tt.req)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
			if slots != nil {
				t.Errorf("expected nil slots on error, got %d", len(slots))
			}
		})
	}
}

func TestFindFreeSlots_SingleBusyMorning(t *testing.T) {
	// Busy 09:00-10:00 on a Monday, working hours 09:00-17:00, 30m slots.
	// The day should yield 14 slots from 10:00 through 16:30.
	hours := DefaultWorkingHours(time.UTC)
	busy := []Interval{{Start: at(monday, 9, 0), End: at(monday, 10, 0)}}

	slots, err := FindFreeSlots(busy, hours, Request{
		Duration:    30 * time.Minute,
		HorizonDays: 1,
		Now:         at(monday, 9, 0),
		Limit:       100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 14 {
		t.Fatalf("expected 14 slots, got %d", len(slots))
	}
	if !slots[0].Start.Equal(at(monday, 10, 0)) || !slots[0].End.Equal(at(monday, 10, 30)) {
		t.Errorf("first slot = %v-%v, expected 10:00-10:30", slots[0].Start, slots[0].End)
	}
	if !slots[1].Start.Equal(at(monday, 10, 30)) || !slots[1].End.Equal(at(monday, 11, 0)) {
		t.Errorf("second slot = %v-%v, expected 10:30-11:00", slots[1].Start, slots[1].End)
	}
	last := slots[len(slots)-1]
	if !last.Start.Equal(at(monday, 16, 30)) || !last.End.Equal(at(monday, 17, 0)) {
		t.Errorf("last slot = %v-%v, expected 16:30-17:00", last.Start, last.End)
	}
}

func TestFindFreeSlots_EmptyBusyFillsWorkingDay(t *testing.T) {
	// With no busy intervals, a full working day splits into exact
	// duration-sized pieces covering the complete window.
	hours := DefaultWorkingHours(time.UTC)

	slots, err := FindFreeSlots(nil, hours, Request{
		Duration:    time.Hour,
		HorizonDays: 1,
		Now:         at(monday, 9, 0),
		Limit:       100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 8 {
		t.Fatalf("expected 8 one-hour slots for a 9-17 day, got %d", len(slots))
	}
	for i, s := range slots {
		want := at(monday, 9+i, 0)
		if !s.Start.Equal(want) {
			t.Errorf("slot %d starts at %v, expected %v", i, s.Start, want)
		}
		if s.Duration() != time.Hour {
			t.Errorf("slot %d has duration %v, expected 1h", i, s.Duration())
		}
	}
}

func TestFindFreeSlots_BusyOutsideWorkingHoursIgnored(t *testing.T) {
	// Busy intervals entirely outside working hours never reduce the
	// offered slots.
	hours := DefaultWorkingHours(time.UTC)
	busy := []Interval{
		{Start: at(monday, 6, 0), End: at(monday, 8, 30)},
		{Start: at(monday, 18, 0), End: at(monday, 22, 0)},
		{Start: at(monday.AddDate(0, 0, 1), 7, 0), End: at(monday.AddDate(0, 0, 1), 8, 0)},
	}

	withBusy, err := FindFreeSlots(busy, hours, Request{
		Duration:    time.Hour,
		HorizonDays: 2,
		Now:         at(monday, 9, 0),
		Limit:       100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withoutBusy, err := FindFreeSlots(nil, hours, Request{
		Duration:    time.Hour,
		HorizonDays: 2,
		Now:         at(monday, 9, 0),
		Limit:       100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(withBusy) != len(withoutBusy) {
		t.Fatalf("out-of-hours busy changed slot count: %d vs %d", len(withBusy), len(withoutBusy))
	}
	for i := range withBusy {
		if !withBusy[i].Start.Equal(withoutBusy[i].Start) {
			t.Errorf("slot %d differs: %v vs %v", i, withBusy[i].Start, withoutBusy[i].Start)
		}
	}
}

func TestFindFreeSlots_FullyBusyDayYieldsNothing(t *testing.T) {
	hours := DefaultWorkingHours(time.UTC)
	busy := []Interval{{Start: at(monday, 9, 0), End: at(monday, 17, 0)}}

	slots, err := FindFreeSlots(busy, hours, Request{
		Duration:    30 * time.Minute,
		HorizonDays: 1,
		Now:         at(monday, 9, 0),
		Limit:       100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range slots {
		if s.Start.Day() == monday.Day() {
			t.Errorf("fully busy Monday contributed slot %v-%v", s.Start, s.End)
		}
	}
}

func TestFindFreeSlots_PermutationInvariance(t *testing.T) {
	hours := DefaultWorkingHours(time.UTC)
	busy := []Interval{
		{Start: at(monday, 9, 30), End: at(monday, 10, 15)},
		{Start: at(monday, 10, 0), End: at(monday, 11, 0)},
		{Start: at(monday, 13, 0), End: at(monday, 14, 30)},
		{Start: at(monday, 14, 0), End: at(monday, 14, 45)},
		{Start: at(monday, 16, 0), End: at(monday, 16, 0)}, // degenerate
		{Start: at(monday.AddDate(0, 0, 1), 11, 0), End: at(monday.AddDate(0, 0, 1), 12, 0)},
	}
	req := Request{
		Duration:    30 * time.Minute,
		HorizonDays: 3,
		Now:         at(monday, 9, 0),
		Limit:       100,
	}

	reference, err := FindFreeSlots(busy, hours, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		shuffled := make([]Interval, len(busy))
		copy(shuffled, busy)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got, err := FindFreeSlots(shuffled, hours, req)
		if err != nil {
			t.Fatalf("trial %d: unexpected error: %v", trial, err)
		}
		if len(got) != len(reference) {
			t.Fatalf("trial %d: slot count %d, expected %d", trial, len(got), len(reference))
		}
		for i := range got {
			if !got[i].Start.Equal(reference[i].Start) || !got[i].End.Equal(reference[i].End) {
				t.Fatalf("trial %d: slot %d = %v-%v, expected %v-%v",
					trial, i, got[i].Start, got[i].End, reference[i].Start, reference[i].End)
			}
		}
	}
}

func TestFindFreeSlots_Idempotent(t *testing.T) {
	hours := DefaultWorkingHours(time.UTC)
	busy := []Interval{
		{Start: at(monday, 10, 0), End: at(monday, 11, 0)},
		{Start: at(monday, 15, 0), End: at(monday, 15, 45)},
	}
	req := Request{
		Duration:    45 * time.Minute,
		HorizonDays: 2,
		Now:         at(monday, 8, 0),
	}

	first, err := FindFreeSlots(busy, hours, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := FindFreeSlots(busy, hours, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("repeated call returned %d slots, first returned %d", len(second), len(first))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || !first[i].End.Equal(second[i].End) {
			t.Errorf("slot %d differs between calls", i)
		}
	}
}

func TestFindFreeSlots_NoOverlapInvariants(t *testing.T) {
	hours := DefaultWorkingHours(time.UTC)
	busy := []Interval{
		{Start: at(monday, 9, 10), End: at(monday, 9, 40)},
		{Start: at(monday, 11, 55), End: at(monday, 13, 5)},
		{Start: at(monday.AddDate(0, 0, 1), 16, 30), End: at(monday.AddDate(0, 0, 2), 10, 0)},
	}

	slots, err := FindFreeSlots(busy, hours, Request{
		Duration:    25 * time.Minute,
		HorizonDays: 4,
		Now:         at(monday, 8, 0),
		Limit:       200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected some slots")
	}

	merged := mergeIntervals(busy)
	for i, s := range slots {
		if s.Duration() != 25*time.Minute {
			t.Errorf("slot %d has duration %v", i, s.Duration())
		}
		for _, b := range merged {
			if s.Overlaps(b) {
				t.Errorf("slot %v-%v overlaps busy %v-%v", s.Start, s.End, b.Start, b.End)
			}
		}
		if i > 0 {
			if slots[i-1].End.After(s.Start) {
				t.Errorf("slot %d overlaps previous slot", i)
			}
			if !slots[i-1].Start.Before(s.Start) {
				t.Errorf("slots not in ascending start order at index %d", i)
			}
		}
	}
}

func TestFindFreeSlots_WeekendExclusion(t *testing.T) {
	hours := DefaultWorkingHours(time.UTC)

	// Start Friday so the horizon spans a weekend.
	friday := monday.AddDate(0, 0, 4)
	slots, err := FindFreeSlots(nil, hours, Request{
		Duration:    time.Hour,
		HorizonDays: 4,
		Now:         at(friday, 9, 0),
		Limit:       100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected slots on Friday and Monday")
	}

	for _, s := range slots {
		wd := s.Start.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			t.Errorf("slot %v falls on %v", s.Start, wd)
		}
	}
}

func TestFindFreeSlots_LateAfternoonStart(t *testing.T) {
	// now at 16:45 with a 30m duration: the remaining 15 minutes of the
	// day cannot fit a slot, so the first slot lands on the next eligible
	// day at its daily start.
	hours := DefaultWorkingHours(time.UTC)

	slots, err := FindFreeSlots(nil, hours, Request{
		Duration:    30 * time.Minute,
		HorizonDays: 2,
		Now:         at(monday, 16, 45),
		Limit:       5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected slots on the next working day")
	}

	tuesday := monday.AddDate(0, 0, 1)
	if !slots[0].Start.Equal(at(tuesday, 9, 0)) {
		t.Errorf("first slot starts at %v, expected Tuesday 09:00", slots[0].Start)
	}
	for _, s := range slots {
		if s.Start.Day() == monday.Day() {
			t.Errorf("Monday contributed slot %v despite insufficient remaining time", s.Start)
		}
	}
}

func TestFindFreeSlots_DefaultLimit(t *testing.T) {
	hours := DefaultWorkingHours(time.UTC)

	// A free week offers far more than 20 half-hour slots; the default
	// cap must short-circuit at 20.
	slots, err := FindFreeSlots(nil, hours, Request{
		Duration:    30 * time.Minute,
		HorizonDays: 7,
		Now:         at(monday, 9, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != DefaultSlotLimit {
		t.Errorf("expected %d slots with default limit, got %d", DefaultSlotLimit, len(slots))
	}
}

func TestFindFreeSlots_GapShorterThanDurationSkipped(t *testing.T) {
	// A 20-minute gap between meetings cannot host a 30-minute slot.
	hours := DefaultWorkingHours(time.UTC)
	busy := []Interval{
		{Start: at(monday, 9, 0), End: at(monday, 12, 0)},
		{Start: at(monday, 12, 20), End: at(monday, 17, 0)},
	}

	slots, err := FindFreeSlots(busy, hours, Request{
		Duration:    30 * time.Minute,
		HorizonDays: 1,
		Now:         at(monday, 9, 0),
		Limit:       100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range slots {
		if s.Start.Day() == monday.Day() {
			t.Errorf("unexpected Monday slot %v-%v", s.Start, s.End)
		}
	}
}

func TestFindFreeSlots_ReferenceTimezone(t *testing.T) {
	// Working hours evaluated in a non-UTC reference timezone: a busy
	// interval expressed in UTC must still block the local window.
	loc := time.FixedZone("UTC+2", 2*60*60)
	hours := DefaultWorkingHours(loc)

	localMonday := time.Date(2026, 1, 5, 0, 0, 0, 0, loc)
	// 09:00-13:00 local is 07:00-11:00 UTC.
	busy := []Interval{{
		Start: time.Date(2026, 1, 5, 7, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 5, 11, 0, 0, 0, time.UTC),
	}}

	slots, err := FindFreeSlots(busy, hours, Request{
		Duration:    time.Hour,
		HorizonDays: 1,
		Now:         at(localMonday, 9, 0),
		Limit:       100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected afternoon slots")
	}
	if !slots[0].Start.Equal(at(localMonday, 13, 0)) {
		t.Errorf("first slot starts at %v, expected 13:00 local", slots[0].Start)
	}
}

func TestMergeIntervals(t *testing.T) {
	tests := []struct {
		name string
		in   []Interval
		want []Interval
	}{
		{
			name: "empty input",
			in:   nil,
			want: nil,
		},
		{
			name: "degenerate entries dropped",
			in: []Interval{
				{Start: at(monday, 10, 0), End: at(monday, 10, 0)},
				{Start: at(monday, 11, 0), End: at(monday, 10, 0)},
			},
			want: nil,
		},
		{
			name: "overlapping pair coalesced",
			in: []Interval{
				{Start: at(monday, 10, 0), End: at(monday, 11, 0)},
				{Start: at(monday, 10, 30), End: at(monday, 12, 0)},
			},
			want: []Interval{{Start: at(monday, 10, 0), End: at(monday, 12, 0)}},
		},
		{
			name: "adjacent pair coalesced",
			in: []Interval{
				{Start: at(monday, 10, 0), End: at(monday, 11, 0)},
				{Start: at(monday, 11, 0), End: at(monday, 12, 0)},
			},
			want: []Interval{{Start: at(monday, 10, 0), End: at(monday, 12, 0)}},
		},
		{
			name: "contained interval absorbed",
			in: []Interval{
				{Start: at(monday, 10, 0), End: at(monday, 14, 0)},
				{Start: at(monday, 11, 0), End: at(monday, 12, 0)},
			},
			want: []Interval{{Start: at(monday, 10, 0), End: at(monday, 14, 0)}},
		},
		{
			name: "disjoint intervals sorted",
			in: []Interval{
				{Start: at(monday, 14, 0), End: at(monday, 15, 0)},
				{Start: at(monday, 10, 0), End: at(monday, 11, 0)},
			},
			want: []Interval{
				{Start: at(monday, 10, 0), End: at(monday, 11, 0)},
				{Start: at(monday, 14, 0), End: at(monday, 15, 0)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeIntervals(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d intervals, expected %d", len(got), len(tt.want))
			}
			for i := range got {
				if !got[i].Start.Equal(tt.want[i].Start) || !got[i].End.Equal(tt.want[i].End) {
					t.Errorf("interval %d = %v-%v, expected %v-%v",
						i, got[i].Start, got[i].End, tt.want[i].Start, tt.want[i].End)
				}
			}
		})
	}
}

func TestInterval_Overlaps(t *testing.T) {
	a := Interval{Start: at(monday, 10, 0), End: at(monday, 11, 0)}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"disjoint before", Interval{Start: at(monday, 8, 0), End: at(monday, 9, 0)}, false},
		{"adjacent before", Interval{Start: at(monday, 9, 0), End: at(monday, 10, 0)}, false},
		{"overlapping start", Interval{Start: at(monday, 9, 30), End: at(monday, 10, 30)}, true},
		{"contained", Interval{Start: at(monday, 10, 15), End: at(monday, 10, 45)}, true},
		{"adjacent after", Interval{Start: at(monday, 11, 0), End: at(monday, 12, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps() = %v, expected %v", got, tt.want)
			}
		})
	}
}
