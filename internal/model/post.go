package model

import "time"

const (
	PostPublished = 0
	PostPending   = 1
	PostDeleted   = 2
)

type Category struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	CommunityID uint64    `gorm:"not null;index" json:"community_id"`
	Name        string    `gorm:"size:64;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Order       int       `gorm:"column:ordinal;not null;default:0" json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

type Post struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	CommunityID  uint64    `gorm:"not null;index:idx_comm_pin_time,priority:1" json:"community_id"`
	CategoryID   *uint64   `gorm:"index" json:"category_id,omitempty"`
	AuthorID     uint64    `gorm:"not null;index" json:"author_id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	IsPinned     bool      `gorm:"not null;default:false;index:idx_comm_pin_time,priority:2,sort:desc" json:"is_pinned"`
	IsLocked     bool      `gorm:"not null;default:false" json:"is_locked"`
	Status       int       `gorm:"not null;default:0" json:"status"`
	RepliesCount int64     `gorm:"not null;default:0" json:"replies_count"`
	CreatedAt    time.Time `gorm:"index:idx_comm_pin_time,priority:3,sort:desc" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
