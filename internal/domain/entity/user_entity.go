package entity

import (
	"time"
)

// User is the aggregate root for the identity domain. A user owns at most
// one PasswordCredential and at most one ExternalCredential; whichever was
// created at signup fixes the account's authentication mode.
type User struct {
	ID        string
	Email     string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PasswordCredential stores the bcrypt hash for password-mode accounts.
// It is created once at signup and never updated.
type PasswordCredential struct {
	UserID       string
	PasswordHash string
}

// ExternalCredential stores the provider account id for google-mode accounts.
type ExternalCredential struct {
	UserID   string
	GoogleID string
}
