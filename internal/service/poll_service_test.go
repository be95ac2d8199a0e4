package service

import (
	"errors"
	"reflect"
	"testing"

	"Community_Hub/internal/model"
)

func TestCleanOptions(t *testing.T) {
	got := CleanOptions([]string{" Sí ", "", "   ", "No", "Tal vez"})
	want := []string{"Sí", "No", "Tal vez"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CleanOptions = %v, want %v", got, want)
	}
}

func TestValidateSelection(t *testing.T) {
	tests := []struct {
		name     string
		pollType string
		in       []uint64
		want     []uint64
		wantErr  error
	}{
		{"single one option", model.PollSingle, []uint64{3}, []uint64{3}, nil},
		{"single duplicates collapse", model.PollSingle, []uint64{3, 3}, []uint64{3}, nil},
		{"single two options", model.PollSingle, []uint64{1, 2}, nil, ErrSingleChoice},
		{"multiple several", model.PollMultiple, []uint64{1, 2, 2, 3}, []uint64{1, 2, 3}, nil},
		{"empty", model.PollMultiple, nil, nil, ErrEmptySelection},
		{"only zeros", model.PollSingle, []uint64{0, 0}, nil, ErrEmptySelection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateSelection(tt.pollType, tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("selection = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAttachPollDetails(t *testing.T) {
	polls := []model.Poll{{ID: 1}, {ID: 2}}
	options := []model.PollOption{
		{ID: 10, PollID: 1, OptionText: "a"},
		{ID: 11, PollID: 1, OptionText: "b"},
		{ID: 20, PollID: 2, OptionText: "c"},
	}
	votes := []model.PollVote{{PollID: 2, OptionID: 20, UserID: 5}}

	got := AttachPollDetails(polls, options, votes)

	if len(got[0].Options) != 2 || got[0].Options[0].ID != 10 {
		t.Errorf("poll 1 options = %v", got[0].Options)
	}
	if got[0].HasVoted {
		t.Error("poll 1 marked voted without a vote row")
	}
	if len(got[1].Options) != 1 || !got[1].HasVoted {
		t.Errorf("poll 2 options=%v hasVoted=%v", got[1].Options, got[1].HasVoted)
	}
}
