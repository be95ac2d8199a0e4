package model

import "time"

const (
	EventMeetup   = "meetup"
	EventWebinar  = "webinar"
	EventWorkshop = "workshop"
	EventSocial   = "social"

	RSVPConfirmed = "confirmed"
	RSVPCancelled = "cancelled"
)

type Event struct {
	ID             uint64     `gorm:"primaryKey" json:"id"`
	CommunityID    uint64     `gorm:"not null;index:idx_comm_start,priority:1" json:"community_id"`
	CreatorID      uint64     `gorm:"not null;index" json:"creator_id"`
	Title          string     `gorm:"size:200;not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	Location       string     `gorm:"size:255" json:"location,omitempty"`
	EventType      string     `gorm:"size:16;not null;default:meetup" json:"event_type"`
	StartDate      time.Time  `gorm:"not null;index:idx_comm_start,priority:2" json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	MaxAttendees   *int       `json:"max_attendees,omitempty"`
	AttendeesCount int64      `gorm:"not null;default:0" json:"attendees_count"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// EventAttendee is unique per (event, user); re-RSVP flips status in place.
type EventAttendee struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	EventID   uint64    `gorm:"not null;index;uniqueIndex:uk_event_user" json:"event_id"`
	UserID    uint64    `gorm:"not null;index;uniqueIndex:uk_event_user" json:"user_id"`
	Status    string    `gorm:"size:16;not null" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (EventAttendee) TableName() string { return "event_attendees" }

// RSVPDelta maps a previous->next attendance transition to the change in
// attendees_count. prev is "" for a first RSVP. Repeating the same status
// yields 0, which keeps confirm and cancel idempotent.
func RSVPDelta(prev, next string) int64 {
	if prev == next {
		return 0
	}
	switch {
	case next == RSVPConfirmed:
		return 1
	case prev == RSVPConfirmed:
		return -1
	}
	return 0
}
