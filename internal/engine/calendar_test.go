package engine

import (
	"testing"

	"github.com/theirongolddev/stash/internal/model"
)

func TestCountQualifyingDays(t *testing.T) {
	wednesday := []model.DateRange{{Start: "2024-01-03", End: "2024-01-03"}}

	tests := []struct {
		name       string
		start, end string
		exclusions []model.DateRange
		want       int
	}{
		{"full business week", "2024-01-01", "2024-01-05", nil, 5},
		{"week minus excluded wednesday", "2024-01-01", "2024-01-05", wednesday, 4},
		{"weekend only", "2024-01-06", "2024-01-07", nil, 0},
		{"single qualifying day", "2024-01-05", "2024-01-05", nil, 1},
		{"start after end", "2024-01-10", "2024-01-05", nil, 0},
		{"span over weekend", "2024-01-05", "2024-01-08", nil, 2},
		{"fully excluded range", "2024-01-03", "2024-01-03", wednesday, 0},
		{"malformed start", "not-a-date", "2024-01-05", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountQualifyingDays(tt.start, tt.end, tt.exclusions)
			if got != tt.want {
				t.Fatalf("CountQualifyingDays(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestQualifiesOn(t *testing.T) {
	excl := []model.DateRange{{Start: "2024-01-02", End: "2024-01-02"}}

	if QualifiesOn("2024-01-06", nil) {
		t.Fatal("Saturday reported as qualifying")
	}
	if QualifiesOn("2024-01-02", excl) {
		t.Fatal("excluded Tuesday reported as qualifying")
	}
	if !QualifiesOn("2024-01-04", excl) {
		t.Fatal("plain Thursday not qualifying")
	}
}

func TestNextDay(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-01-31", "2024-02-01"},
		{"2024-02-28", "2024-02-29"}, // leap year
		{"2024-12-31", "2025-01-01"},
	}
	for _, tt := range tests {
		if got := NextDay(tt.in); got != tt.want {
			t.Errorf("NextDay(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
