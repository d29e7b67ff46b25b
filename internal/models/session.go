package models

import (
	"time"

	"github.com/google/uuid"
)

// EnergyPerMinuteKWh is the simulated metering rate applied to every session.
const EnergyPerMinuteKWh = 0.5

// Session is one bounded interval during which a user occupies a charger.
// EnergyKWh, Cost and Billed are filled in when the session closes; a
// session is active while EndedAt is zero.
type Session struct {
	ID        uuid.UUID `json:"id"`
	User      *User     `json:"-"`
	Charger   *Charger  `json:"-"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at,omitempty"`
	EnergyKWh float64   `json:"energy_kwh"`
	Cost      float64   `json:"cost"`
	Billed    bool      `json:"billed"`
}

// NewSession starts the clock on a new charging session.
func NewSession(user *User, charger *Charger) *Session {
	return &Session{
		ID:        uuid.New(),
		User:      user,
		Charger:   charger,
		StartedAt: timeNow(),
	}
}

// Active reports whether the session is still open.
func (s *Session) Active() bool {
	return s.EndedAt.IsZero()
}

// Close stamps the end time. Closing an already closed session is a no-op;
// the first end time wins.
func (s *Session) Close() bool {
	if !s.EndedAt.IsZero() {
		return false
	}
	s.EndedAt = timeNow()
	return true
}

// DurationMinutes returns whole elapsed minutes, floor of elapsed seconds
// over 60. For an active session the duration grows with wall-clock time.
func (s *Session) DurationMinutes() int {
	end := s.EndedAt
	if end.IsZero() {
		end = timeNow()
	}
	elapsed := end.Sub(s.StartedAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed.Seconds()) / 60
}
