package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthUser adalah akun login milik identity provider; hanya dibaca oleh package auth.
type AuthUser struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"          json:"id"`
	Email        string    `gorm:"uniqueIndex;size:180;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null"             json:"-"` // jangan dikirim ke client
	CreatedAt    time.Time `json:"created_at"`
}

func (AuthUser) TableName() string { return "auth_users" }

// Profile satu baris per user, id sama dengan AuthUser.ID.
type Profile struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"size:180"             json:"email"`
	FullName string    `gorm:"size:180"             json:"full_name"`
	Role     string    `gorm:"size:40"              json:"role"` // apoteker, admin, ...
}

func (Profile) TableName() string { return "profiles" }
