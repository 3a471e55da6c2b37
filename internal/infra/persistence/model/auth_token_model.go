package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthTokenModel is the GORM-specific struct for the 'google_auth_tokens' table.
// AccessToken and RefreshToken hold sealed values produced by the token cipher.
type AuthTokenModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccessToken  string    `gorm:"type:text;not null"`
	RefreshToken string    `gorm:"type:text;not null;default:''"`
	TokenType    string    `gorm:"type:varchar(32);not null;default:'Bearer'"`
	Scope        string    `gorm:"type:text;not null;default:''"`
	ExpiresAt    time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthTokenModel) TableName() string {
	return "google_auth_tokens"
}
