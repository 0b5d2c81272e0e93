package calendar_tools

import (
	"testing"

	"github.com/fgp-services/calendar/internal/service"
)

func TestSplitAttendees(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected []any
	}{
		{
			name:     "nil input",
			raw:      nil,
			expected: nil,
		},
		{
			name:     "empty string",
			raw:      "",
			expected: nil,
		},
		{
			name:     "single attendee",
			raw:      "a@example.com",
			expected: []any{"a@example.com"},
		},
		{
			name:     "multiple with whitespace",
			raw:      "a@example.com, b@example.com ,c@example.com",
			expected: []any{"a@example.com", "b@example.com", "c@example.com"},
		},
		{
			name:     "trailing comma",
			raw:      "a@example.com,",
			expected: []any{"a@example.com"},
		},
		{
			name:     "non-string input",
			raw:      42,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitAttendees(tt.raw)
			if len(got) != len(tt.expected) {
				t.Fatalf("splitAttendees() = %v, expected %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("splitAttendees()[%d] = %v, expected %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSlotCount(t *testing.T) {
	tests := []struct {
		name     string
		payload  any
		expected int
	}{
		{
			name:     "typed result",
			payload:  &service.FreeSlotsResult{Count: 14},
			expected: 14,
		},
		{
			name:     "zero count",
			payload:  &service.FreeSlotsResult{},
			expected: 0,
		},
		{
			name:     "unexpected shape",
			payload:  map[string]any{"count": 14},
			expected: 0,
		},
		{
			name:     "nil payload",
			payload:  nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slotCount(tt.payload); got != tt.expected {
				t.Errorf("slotCount() = %d, expected %d", got, tt.expected)
			}
		})
	}
}
