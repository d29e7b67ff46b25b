package models

import (
	"errors"

	"github.com/google/uuid"
)

// Role determines the per-kWh tariff and admin privileges.
type Role string

const (
	RoleIndividual Role = "individual"
	RoleEmpresa    Role = "empresa"
	RoleAdmin      Role = "admin"
)

// Per-kWh prices. Admins are billed at the individual rate.
const (
	TariffEmpresa = 0.25
	TariffDefault = 0.30
)

var (
	// ErrInvalidAmount is returned for non-positive recharge amounts.
	ErrInvalidAmount = errors.New("user: amount must be positive")
	// ErrInsufficientBalance is returned by Debit when the balance cannot
	// cover the amount. No mutation happens.
	ErrInsufficientBalance = errors.New("user: insufficient balance")
	// ErrNoActiveSession is returned by EndSession when nothing is open.
	ErrNoActiveSession = errors.New("user: no active session")
	// ErrSessionActive is returned when starting a session while one is
	// already open. The earlier session is never silently replaced.
	ErrSessionActive = errors.New("user: session already active")
)

// ValidRole reports whether the role is one of the known values.
func ValidRole(r Role) bool {
	switch r {
	case RoleIndividual, RoleEmpresa, RoleAdmin:
		return true
	}
	return false
}

// User holds identity, prepaid balance and session state. The balance never
// goes negative; at most one session is active at a time.
type User struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	Role          Role       `json:"role"`
	Balance       float64    `json:"balance"`
	ActiveSession *Session   `json:"-"`
	History       []*Session `json:"-"`
}

// NewUser returns a user with a fresh id and no session history.
func NewUser(name, email, passwordHash string, role Role, balance float64) *User {
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Balance:      balance,
	}
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Tariff returns the per-kWh price for this user's role.
func (u *User) Tariff() float64 {
	if u.Role == RoleEmpresa {
		return TariffEmpresa
	}
	return TariffDefault
}

// Recharge adds a positive amount to the balance.
func (u *User) Recharge(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	u.Balance += amount
	return nil
}

// HasSufficientBalance reports whether the balance covers amount.
func (u *User) HasSufficientBalance(amount float64) bool {
	return u.Balance >= amount
}

// Debit subtracts amount from the balance, failing without mutation when
// the balance is insufficient.
func (u *User) Debit(amount float64) error {
	if !u.HasSufficientBalance(amount) {
		return ErrInsufficientBalance
	}
	u.Balance -= amount
	return nil
}

// StartSession occupies the charger and opens a new session. The charger
// must be available and the user must not already hold an open session.
func (u *User) StartSession(charger *Charger) (*Session, error) {
	if u.ActiveSession != nil {
		return nil, ErrSessionActive
	}
	if err := charger.StartCharge(); err != nil {
		return nil, err
	}
	session := NewSession(u, charger)
	u.ActiveSession = session
	return session, nil
}

// EndSession closes the active session and settles it: whole minutes are
// metered into energy at EnergyPerMinuteKWh, priced at the user's tariff
// and debited. A billing shortfall never blocks closure; the session is
// recorded unbilled and the charger is released regardless.
func (u *User) EndSession() (*Session, error) {
	session := u.ActiveSession
	if session == nil {
		return nil, ErrNoActiveSession
	}
	session.Close()

	minutes := session.DurationMinutes()
	session.EnergyKWh = float64(minutes) * EnergyPerMinuteKWh
	session.Cost = session.EnergyKWh * u.Tariff()
	if err := u.Debit(session.Cost); err == nil {
		session.Billed = true
	}

	u.History = append(u.History, session)
	_ = session.Charger.StopCharge()
	u.ActiveSession = nil
	return session, nil
}
