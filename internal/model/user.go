package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Preferences stored as jsonb on the user row; merged, never replaced wholesale.
type Preferences struct {
	Lang           string   `json:"lang"`
	Theme          string   `json:"theme"`
	UnlockedThemes []string `json:"unlockedThemes"`
}

func DefaultPreferences() Preferences {
	return Preferences{Lang: "es", Theme: "light", UnlockedThemes: []string{}}
}

func (p Preferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *Preferences) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = DefaultPreferences()
		return nil
	}
	return errors.New("preferences: unsupported scan source")
}

type User struct {
	ID          uint64      `gorm:"primaryKey" json:"id"`
	Email       string      `gorm:"uniqueIndex;size:128;not null" json:"email"`
	Password    string      `gorm:"size:255;not null" json:"-"`
	FullName    string      `gorm:"size:128;not null" json:"full_name"`
	AvatarURL   string      `gorm:"size:255" json:"avatar_url"`
	BirthDate   time.Time   `json:"birth_date"`
	Preferences Preferences `gorm:"type:jsonb" json:"preferences"`
	LastLogin   *time.Time  `json:"last_login,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
