package model

import "time"

const (
	OutboxPending = 0
	OutboxSent    = 1
	OutboxFailed  = 2
)

// ActivityOutbox records community activity (joins, leaves, votes, RSVPs)
// written in the same transaction as the action itself; a relayer drains
// pending rows into Kafka.
type ActivityOutbox struct {
	ID          uint64    `gorm:"primaryKey"`
	EventType   string    `gorm:"size:32;not null"` // joined / left / voted / rsvped / posted
	CommunityID uint64    `gorm:"not null;index"`
	UserID      uint64    `gorm:"not null"`
	Payload     string    `gorm:"type:json;not null"`
	Status      int8      `gorm:"not null;default:0;index"`
	Retry       int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ActivityOutbox) TableName() string { return "activity_outbox" }
