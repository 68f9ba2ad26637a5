package model

import "time"

// User represents a registered user account.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:80;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:80;not null"`
	PasswordHash string    `json:"-" gorm:"size:200;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
