package entity

import (
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/google/uuid"
)

// UsernamePrefix is prepended to generated usernames
const UsernamePrefix = "user_"

// usernameDigits is how many trailing identifier digits a generated username keeps
const usernameDigits = 6

// User represents a chat contact that owns ledger entries
type User struct {
	ID          uuid.UUID // Internal identifier
	Username    string    // Display name, generated for implicitly created users
	PhoneNumber string    // External contact identifier, stored verbatim
	CreatedAt   time.Time // When the user was created
}

// NewUser creates a user for a contact identifier with a generated username
func NewUser(phoneNumber string, timeProvider coreport.TimeProvider) *User {
	return &User{
		ID:          uuid.New(),
		Username:    UsernameFor(phoneNumber),
		PhoneNumber: phoneNumber,
		CreatedAt:   timeProvider.Now(),
	}
}

// UsernameFor derives a username from the last six digits of an identifier,
// ignoring every non-digit character. Shorter identifiers keep all their digits.
func UsernameFor(identifier string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, identifier)

	if len(digits) > usernameDigits {
		digits = digits[len(digits)-usernameDigits:]
	}
	return UsernamePrefix + digits
}
