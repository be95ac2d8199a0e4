package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleMember    = "member"
	RoleGuest     = "guest"

	MemberActive    = "active"
	MemberPending   = "pending"
	MemberSuspended = "suspended"
)

// Settings jsonb column on the community row.
type Settings struct {
	RequireOnboarding bool `json:"requireOnboarding"`
	RequireApproval   bool `json:"requireApproval"`
	AllowGuests       bool `json:"allowGuests"`
	PostsNeedApproval bool `json:"postsNeedApproval"`
}

func (s Settings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Settings) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = Settings{}
		return nil
	}
	return errors.New("settings: unsupported scan source")
}

type Community struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:64;not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;size:96;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	LogoURL     string    `gorm:"size:255" json:"logo_url"`
	Settings    Settings  `gorm:"type:jsonb" json:"settings"`
	MaxMembers  *int      `json:"max_members,omitempty"`
	MemberCount int64     `gorm:"not null;default:0" json:"member_count"`
	CreatorID   uint64    `gorm:"not null;index" json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Membership is unique per (community, user); role and status are the
// string enums above.
type Membership struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	CommunityID uint64    `gorm:"not null;index;uniqueIndex:uk_community_user" json:"community_id"`
	UserID      uint64    `gorm:"not null;index;uniqueIndex:uk_community_user" json:"user_id"`
	Role        string    `gorm:"size:16;not null;default:member" json:"role"`
	Status      string    `gorm:"size:16;not null;default:active" json:"status"`
	JoinedAt    time.Time `gorm:"autoCreateTime" json:"joined_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Community *Community `gorm:"foreignKey:CommunityID" json:"community,omitempty"`
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// IsStaff reports whether the membership may moderate content.
func (m Membership) IsStaff() bool {
	return m.Role == RoleAdmin || m.Role == RoleModerator
}
