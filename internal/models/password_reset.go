package models

import "time"

type PasswordReset struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"size:36;index;not null" json:"-"`
	Token     string    `gorm:"size:36;uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `json:"-"`

	CreatedAt time.Time `json:"-"`
}
