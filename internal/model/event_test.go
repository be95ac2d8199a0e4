package model

import "testing"

func TestRSVPDelta(t *testing.T) {
	tests := []struct {
		name string
		prev string
		next string
		want int64
	}{
		{"first confirm", "", RSVPConfirmed, 1},
		{"first cancel", "", RSVPCancelled, 0},
		{"confirm again", RSVPConfirmed, RSVPConfirmed, 0},
		{"cancel again", RSVPCancelled, RSVPCancelled, 0},
		{"confirm then cancel", RSVPConfirmed, RSVPCancelled, -1},
		{"cancel then confirm", RSVPCancelled, RSVPConfirmed, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RSVPDelta(tt.prev, tt.next); got != tt.want {
				t.Errorf("RSVPDelta(%q, %q) = %d, want %d", tt.prev, tt.next, got, tt.want)
			}
		})
	}
}
