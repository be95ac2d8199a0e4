package model

import "time"

const (
	PollSingle   = "single"
	PollMultiple = "multiple"
)

type Poll struct {
	ID          uint64     `gorm:"primaryKey" json:"id"`
	CommunityID uint64     `gorm:"not null;index" json:"community_id"`
	CreatorID   uint64     `gorm:"not null;index" json:"creator_id"`
	Question    string     `gorm:"size:255;not null" json:"question"`
	PollType    string     `gorm:"size:16;not null;default:single" json:"poll_type"`
	IsAnonymous bool       `gorm:"not null;default:false" json:"is_anonymous"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	TotalVotes  int64      `gorm:"not null;default:0" json:"total_votes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Options  []PollOption `gorm:"foreignKey:PollID" json:"options,omitempty"`
	HasVoted bool         `gorm:"-" json:"has_voted"`
}

type PollOption struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	PollID     uint64 `gorm:"not null;index" json:"poll_id"`
	OptionText string `gorm:"size:255;not null" json:"option_text"`
	VotesCount int64  `gorm:"not null;default:0" json:"votes_count"`
	Order      int    `gorm:"column:ordinal;not null;default:0" json:"order"`
}

// PollVote is unique per (poll, option, user). A single-choice poll
// additionally allows at most one row per (poll, user), enforced in the
// repository before insert.
type PollVote struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PollID    uint64    `gorm:"not null;index;uniqueIndex:uk_poll_option_user,priority:1" json:"poll_id"`
	OptionID  uint64    `gorm:"not null;uniqueIndex:uk_poll_option_user,priority:2" json:"option_id"`
	UserID    uint64    `gorm:"not null;index;uniqueIndex:uk_poll_option_user,priority:3" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
