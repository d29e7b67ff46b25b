package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"voltedge/internal/models"
	"voltedge/internal/password"
	"voltedge/internal/registry"
)

var (
	// ErrEmailInUse is returned when attempting to register a duplicate
	// email.
	ErrEmailInUse = errors.New("auth: email already registered")
	// ErrInvalidCredentials represents login failure. Unknown email and
	// wrong password are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrInvalidRegistration covers missing or malformed signup fields.
	ErrInvalidRegistration = errors.New("auth: name, email and password are required")
	// ErrInvalidRole is returned for unknown user roles.
	ErrInvalidRole = errors.New("auth: invalid role")
)

// RegisterInput carries signup data. A nil StartingBalance uses the
// configured default.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	Role            models.Role
	StartingBalance *float64
}

// AuthService contains registration and login logic.
type AuthService struct {
	reg            *registry.Registry
	hasher         password.Hasher
	tokenizer      *TokenService
	defaultBalance float64
	logger         *zap.Logger
}

// NewAuthService builds AuthService.
func NewAuthService(reg *registry.Registry, hasher password.Hasher, tokenizer *TokenService, defaultBalance float64, logger *zap.Logger) *AuthService {
	return &AuthService{
		reg:            reg,
		hasher:         hasher,
		tokenizer:      tokenizer,
		defaultBalance: defaultBalance,
		logger:         logger,
	}
}

// Register creates a new user with a hashed password and starting balance.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" {
		return nil, ErrInvalidRegistration
	}

	role := input.Role
	if role == "" {
		role = models.RoleIndividual
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	balance := s.defaultBalance
	if input.StartingBalance != nil {
		balance = *input.StartingBalance
	}
	if balance < 0 {
		return nil, ErrInvalidRegistration
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(name, email, hash, role, balance)
	if err := s.reg.AddUser(user); err != nil {
		if errors.Is(err, registry.ErrEmailTaken) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
		zap.Float64("starting_balance", balance),
	)
	return user, nil
}

// Authenticate verifies email and password. Every failure path collapses
// into ErrInvalidCredentials.
func (s *AuthService) Authenticate(email, plainPassword string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || plainPassword == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.reg.UserByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates a user and produces a bearer token.
func (s *AuthService) Login(email, plainPassword string) (string, *models.User, error) {
	user, err := s.Authenticate(email, plainPassword)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokenizer.GenerateToken(user.Email, string(user.Role))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// User resolves a user by id.
func (s *AuthService) User(id uuid.UUID) (*models.User, error) {
	return s.reg.User(id)
}

// UserByEmail resolves a user by email.
func (s *AuthService) UserByEmail(email string) (*models.User, error) {
	return s.reg.UserByEmail(email)
}

// Users lists all registered users.
func (s *AuthService) Users() []*models.User {
	return s.reg.Users()
}
