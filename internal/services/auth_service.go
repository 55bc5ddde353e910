package services

import (
	"errors"
	"fmt"
	"log"

	"tasklist/internal/models"
	"tasklist/internal/repositories"
	"tasklist/internal/security"
)

// Authentication failures surfaced to handlers.
var (
	// ErrEmailTaken is returned when registering with an email that is
	// already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound covers both an unknown email and a wrong password
	// at login, so callers cannot probe which accounts exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInactiveUser is returned when credentials check out but the
	// account is disabled.
	ErrInactiveUser = errors.New("inactive user")
	// ErrInvalidToken covers every token verification failure.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// EventPublisher publishes account lifecycle events.
type EventPublisher interface {
	PublishUserRegistered(payload map[string]interface{}) error
}

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *security.TokenService
	events   EventPublisher
}

// NewAuthService creates a new AuthService. events may be nil, in which
// case registration events are not published.
func NewAuthService(userRepo repositories.UserRepository, tokens *security.TokenService, events EventPublisher) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		events:   events,
	}
}

// Register creates a new account with a hashed password and publishes a
// registration event.
func (s *AuthService) Register(req models.RegisterRequest) (*models.User, error) {
	if existing, err := s.userRepo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:          req.Email,
		FullName:       req.FullName,
		IsActive:       true,
		HashedPassword: hashed,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if s.events != nil {
		// Best effort: registration already committed.
		if err := s.events.PublishUserRegistered(map[string]interface{}{
			"id":    user.ID,
			"email": user.Email,
		}); err != nil {
			log.Printf("Failed to publish user registered event: %v", err)
		}
	}

	return user, nil
}

// Login verifies an email/password pair and returns the matching user.
// An unknown email and a wrong password both yield ErrUserNotFound; the
// active flag is only checked after the password matches. Token issuance
// is up to the caller.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !security.CheckPassword(password, user.HashedPassword) {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}
	return user, nil
}

// ResolveToken verifies a bearer token and loads the user it identifies.
// The active flag is not rechecked here; only the login flow gates on it.
func (s *AuthService) ResolveToken(tokenString string) (*models.User, error) {
	subject, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}
	user, err := s.userRepo.GetByID(subject)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
