package time

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the process clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// Today returns the current date in the process time zone
func (p *RealTimeProvider) Today() civil.Date {
	return civil.DateOf(time.Now())
}

// FixedTimeProvider always reports the same instant
type FixedTimeProvider struct {
	At time.Time
}

// NewFixedTimeProvider creates a time provider frozen at t
func NewFixedTimeProvider(t time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{At: t}
}

// Now returns the fixed instant
func (p *FixedTimeProvider) Now() time.Time {
	return p.At
}

// Since returns the duration between t and the fixed instant
func (p *FixedTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.At.Sub(t))
}

// Today returns the date of the fixed instant
func (p *FixedTimeProvider) Today() civil.Date {
	return civil.DateOf(p.At)
}
