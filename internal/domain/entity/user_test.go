package entity

import (
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/whatsapp-ledger/mocks/port/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	user := NewUser("628123456789", mockTime)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "628123456789", user.PhoneNumber)
	assert.Equal(t, "user_456789", user.Username)
	assert.Equal(t, fixedTime, user.CreatedAt)

	other := NewUser("628123456789", mockTime)
	assert.NotEqual(t, user.ID, other.ID)
}

func TestUsernameFor(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		expected   string
	}{
		{"Plain digits", "628123456789", "user_456789"},
		{"Provider prefix stripped", "whatsapp:+628123456789", "user_456789"},
		{"Formatted number", "+62 812-3456-789", "user_456789"},
		{"Short identifier", "1234", "user_1234"},
		{"Exactly six digits", "654321", "user_654321"},
		{"No digits", "anonymous", "user_"},
		{"Empty", "", "user_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UsernameFor(tt.identifier))
		})
	}
}
