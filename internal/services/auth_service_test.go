package services_test

import (
	"fmt"
	"testing"
	"time"

	"tasklist/internal/models"
	"tasklist/internal/repositories"
	"tasklist/internal/security"
	"tasklist/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishUserRegistered(payload map[string]interface{}) error {
	args := m.Called(payload)
	return args.Error(0)
}

func notFoundErr(what string) error {
	return fmt.Errorf("%s: %w", what, repositories.ErrNotFound)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEvents := new(MockEventPublisher)
	tokens := security.NewTokenService("test_jwt_secret")
	authService := services.NewAuthService(mockRepo, tokens, mockEvents)

	req := models.RegisterRequest{
		Email:    "test@example.com",
		Password: "password123",
		FullName: "Test User",
	}

	mockRepo.On("GetByEmail", req.Email).Return(nil, notFoundErr("user")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	mockEvents.On("PublishUserRegistered", mock.Anything).Return(nil).Once()

	user, err := authService.Register(req)
	assert.NoError(t, err)
	assert.Equal(t, req.Email, user.Email)
	assert.Equal(t, req.FullName, user.FullName)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsSuperuser)
	// The stored password must be a hash, never the plaintext.
	assert.NotEqual(t, req.Password, user.HashedPassword)
	assert.True(t, security.CheckPassword(req.Password, user.HashedPassword))
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)

	// Registering the same email again fails.
	mockRepo.On("GetByEmail", req.Email).Return(&models.User{ID: "user-1", Email: req.Email}, nil).Once()
	_, err = authService.Register(req)
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterWithoutPublisher(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokens := security.NewTokenService("test_jwt_secret")
	authService := services.NewAuthService(mockRepo, tokens, nil)

	mockRepo.On("GetByEmail", "solo@example.com").Return(nil, notFoundErr("user")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	_, err := authService.Register(models.RegisterRequest{
		Email:    "solo@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokens := security.NewTokenService("test_jwt_secret")
	authService := services.NewAuthService(mockRepo, tokens, nil)

	hashed, _ := security.HashPassword("password123")
	user := &models.User{
		ID:             "user-123",
		Email:          "test@example.com",
		IsActive:       true,
		HashedPassword: hashed,
	}

	// Successful login
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	got, err := authService.Login(user.Email, "password123")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err = authService.Login(user.Email, "wrongpassword")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
	mockRepo.AssertExpectations(t)

	// Unknown email yields the same failure as a wrong password.
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, notFoundErr("user")).Once()
	_, err = authService.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginInactiveUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokens := security.NewTokenService("test_jwt_secret")
	authService := services.NewAuthService(mockRepo, tokens, nil)

	hashed, _ := security.HashPassword("password123")
	user := &models.User{
		ID:             "user-123",
		Email:          "inactive@example.com",
		IsActive:       false,
		HashedPassword: hashed,
	}

	// Correct credentials on a disabled account: a distinct failure from
	// wrong credentials.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err := authService.Login(user.Email, "password123")
	assert.ErrorIs(t, err, services.ErrInactiveUser)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ResolveToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokens := security.NewTokenService("test_jwt_secret")
	authService := services.NewAuthService(mockRepo, tokens, nil)

	user := &models.User{ID: "user-123", Email: "test@example.com", IsActive: true}
	token, err := tokens.Issue(user.ID, time.Hour)
	assert.NoError(t, err)

	// Valid token resolves to the full user record.
	mockRepo.On("GetByID", user.ID).Return(user, nil).Once()
	got, err := authService.ResolveToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
	mockRepo.AssertExpectations(t)

	// Subject deleted after issuance.
	mockRepo.On("GetByID", user.ID).Return(nil, notFoundErr("user")).Once()
	_, err = authService.ResolveToken(token)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
	mockRepo.AssertExpectations(t)

	// Garbage token never reaches the repository.
	_, err = authService.ResolveToken("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Token signed with a different secret.
	foreign, err := security.NewTokenService("another_secret").Issue(user.ID, time.Hour)
	assert.NoError(t, err)
	_, err = authService.ResolveToken(foreign)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
	mockRepo.AssertExpectations(t)
}
