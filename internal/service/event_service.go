package service

import (
	"context"
	"strings"
	"time"

	"Community_Hub/internal/model"
	"Community_Hub/internal/repository/postgres"
)

type EventService struct {
	repo       *postgres.EventRepository
	memberRepo *postgres.MembershipRepository
}

func NewEventService() *EventService {
	return &EventService{
		repo:       &postgres.EventRepository{DB: postgres.DB},
		memberRepo: &postgres.MembershipRepository{DB: postgres.DB},
	}
}

type CreateEventInput struct {
	CommunityID  uint64
	Title        string
	Description  string
	Location     string
	EventType    string
	StartDate    time.Time
	EndDate      *time.Time
	MaxAttendees *int
}

func validEventType(t string) bool {
	switch t {
	case model.EventMeetup, model.EventWebinar, model.EventWorkshop, model.EventSocial:
		return true
	}
	return false
}

func (s *EventService) Create(userID uint64, in CreateEventInput) (*model.Event, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || in.StartDate.IsZero() {
		return nil, ErrMissingFields
	}
	if in.EventType == "" {
		in.EventType = model.EventMeetup
	}
	if !validEventType(in.EventType) {
		return nil, ErrInvalidStatus
	}

	ok, err := s.memberRepo.IsActiveMember(in.CommunityID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotMember
	}

	event := &model.Event{
		CommunityID:  in.CommunityID,
		CreatorID:    userID,
		Title:        title,
		Description:  in.Description,
		Location:     in.Location,
		EventType:    in.EventType,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		MaxAttendees: in.MaxAttendees,
	}
	if err = s.repo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) ListByCommunity(communityID uint64) ([]model.Event, error) {
	return s.repo.ListByCommunity(communityID)
}

// RSVP upserts the viewer's attendance; the repository keeps the counter
// consistent with the status transition.
func (s *EventService) RSVP(ctx context.Context, userID, eventID uint64, status string) (bool, error) {
	if status != model.RSVPConfirmed && status != model.RSVPCancelled {
		return false, ErrInvalidStatus
	}
	return s.repo.RSVP(ctx, eventID, userID, status)
}
