package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("AEST", 10*60*60)
	got, err := ParseDate("2026-10-18", loc)
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	want := time.Date(2026, 10, 18, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("ParseDate() = %v, want %v", got, want)
	}

	if _, err := ParseDate("18/10/2026", loc); err == nil {
		t.Error("ParseDate() should reject non-ISO dates")
	}
}

func TestShortTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"08:30:00", "08:30"},
		{"21:15:59", "21:15"},
		{"9pm", "9pm"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ShortTime(tt.in); got != tt.want {
			t.Errorf("ShortTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWeekday(t *testing.T) {
	if got := Weekday("2026-10-18"); got != "Sun" {
		t.Errorf("Weekday() = %q, want Sun", got)
	}
	if got := Weekday("soon"); got != "" {
		t.Errorf("Weekday() = %q, want empty", got)
	}
}
