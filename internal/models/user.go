// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a single record in the user directory.
//
// Password holds a bcrypt hash and is never serialized. UpdatedAt is a
// pointer so the column stays NULL until the first update; gorm's automatic
// timestamp tracking is disabled for it because the service layer sets it
// explicitly on full-record replacement.
type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:100;not null" json:"name"`
	Email     string     `gorm:"size:100;not null" json:"email"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
}

// UserInput is the client-submitted payload for create and update requests.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
