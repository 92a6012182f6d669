package service

import (
	"testing"
	"time"
)

func TestUpdatedStreak(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	lastWeek := now.AddDate(0, 0, -7)
	earlierToday := now.Add(-6 * time.Hour)

	tests := []struct {
		name    string
		current int
		last    *time.Time
		want    int
	}{
		{"first ever attempt", 0, nil, 1},
		{"second attempt same day", 3, &earlierToday, 3},
		{"consecutive day", 3, &yesterday, 4},
		{"missed days reset", 9, &lastWeek, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := updatedStreak(tt.current, tt.last, now); got != tt.want {
				t.Errorf("updatedStreak(%d, %v) = %d, want %d", tt.current, tt.last, got, tt.want)
			}
		})
	}
}

func TestUpdatedDailyCount(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	lastWeek := now.AddDate(0, 0, -7)
	earlierToday := now.Add(-6 * time.Hour)

	tests := []struct {
		name    string
		current int
		last    *time.Time
		want    int
	}{
		{"first ever attempt", 0, nil, 1},
		{"second attempt same day", 1, &earlierToday, 2},
		{"new day restarts at one", 5, &yesterday, 1},
		{"long gap restarts at one", 9, &lastWeek, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := updatedDailyCount(tt.current, tt.last, now); got != tt.want {
				t.Errorf("updatedDailyCount(%d, %v) = %d, want %d", tt.current, tt.last, got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 8, 30, 0, 0, 1, 0, time.UTC)
	b := time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	if !sameDay(a, b) {
		t.Error("same calendar day not recognized")
	}
	if sameDay(b, c) {
		t.Error("midnight boundary treated as the same day")
	}
}
