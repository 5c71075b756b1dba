package auth

import "time"

// Account is a domain entity representing a registered user.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
