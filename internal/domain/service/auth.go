package service

import "time"

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// TokenService issues and validates session tokens. Sessions are stateless;
// the token itself carries the user id and expiry.
type TokenService interface {
	Generate(userID int, isAdmin bool) (string, error)
	// Validate returns the user id the token was issued for.
	Validate(token string) (int, error)
	Expiry() time.Duration
}
