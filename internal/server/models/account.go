// Package models defines the persistent record types shared by
// repositories and services.
package models

import "time"

// Account is a registered (or pending) user of the notes service.
//
// OTP and OTPExpiresAt are either both set (a verification code is
// outstanding) or both nil. PasswordHash holds a bcrypt hash and must
// never be serialized to clients.
type Account struct {
	ID           string
	Name         string
	Email        string
	DOB          *time.Time
	PasswordHash string
	IsVerified   bool
	OTP          *int
	OTPExpiresAt *time.Time
	CreatedAt    time.Time
}

// PublicProfile is the client-facing view of an Account.
type PublicProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the fields of the account that are safe to expose.
func (a *Account) Public() PublicProfile {
	return PublicProfile{ID: a.ID, Name: a.Name, Email: a.Email}
}
