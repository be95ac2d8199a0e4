package pkg

import (
	"testing"
	"time"
)

func TestAgeAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"birthday today", time.Date(2008, 6, 15, 0, 0, 0, 0, time.UTC), 16},
		{"birthday tomorrow", time.Date(2008, 6, 16, 0, 0, 0, 0, time.UTC), 15},
		{"birthday yesterday", time.Date(2008, 6, 14, 0, 0, 0, 0, time.UTC), 16},
		{"earlier month", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), 24},
		{"later month", time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC), 23},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeAt(tt.birth, now); got != tt.want {
				t.Errorf("AgeAt(%v) = %d, want %d", tt.birth, got, tt.want)
			}
		})
	}
}
