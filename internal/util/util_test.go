package util

import (
	"testing"
	"time"
)

func TestEpochMillisRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ms   int64
	}{
		{name: "zero", ms: 0},
		{name: "epoch second", ms: 1000},
		{name: "recent", ms: 1_718_000_000_123},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ToEpochMillis(FromEpochMillis(tt.ms)); got != tt.ms {
				t.Fatalf("round trip of %d = %d", tt.ms, got)
			}
		})
	}
}

func TestFromEpochMillisIsUTC(t *testing.T) {
	t.Parallel()

	got := FromEpochMillis(1_718_000_000_000)
	if got.Location() != time.UTC {
		t.Fatalf("location = %v, want UTC", got.Location())
	}
}

func TestDays(t *testing.T) {
	t.Parallel()

	if got := Days(7); got != 168*time.Hour {
		t.Fatalf("Days(7) = %s, want 168h", got)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
