package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/voyago/backoffice/internal/users"
	"github.com/voyago/backoffice/pkg/models"
	"github.com/voyago/backoffice/pkg/result"
)

// Error codes emitted by the auth module.
const (
	ErrEmailAlreadyExists = "EMAIL_ALREADY_EXISTS"
	ErrWeakPassword       = "WEAK_PASSWORD"
	ErrInvalidEmailFormat = "INVALID_EMAIL_FORMAT"
	ErrRegistrationFailed = "REGISTRATION_FAILED"
	ErrInvalidCredentials = "INVALID_CREDENTIALS"
	ErrUserNotFound       = "USER_NOT_FOUND"
	ErrAccountInactive    = "ACCOUNT_INACTIVE"
	ErrUnauthorized       = "UNAUTHORIZED"
	ErrForbidden          = "FORBIDDEN"
)

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PublicUser is the trimmed user view returned with a token.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
}

// AuthResponse carries an access token and the authenticated user.
type AuthResponse struct {
	AccessToken string     `json:"accessToken"`
	User        PublicUser `json:"user"`
}

// Service implements registration and login.
type Service struct {
	logger     *zap.Logger
	usersRepo  *users.Repository
	tokens     *TokenManager
	bcryptCost int
}

// NewService creates an auth service.
func NewService(logger *zap.Logger, usersRepo *users.Repository, tokens *TokenManager, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{logger: logger, usersRepo: usersRepo, tokens: tokens, bcryptCost: bcryptCost}
}

// Tokens exposes the token manager for middleware wiring.
func (s *Service) Tokens() *TokenManager {
	return s.tokens
}

// Register creates a CLIENT account and returns a signed token.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (result.Result, error) {
	if len(req.Password) < 8 {
		return result.Fail(ErrWeakPassword), nil
	}

	existing, err := s.usersRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return result.Result{}, err
	}
	if existing != nil {
		return result.Fail(ErrEmailAlreadyExists), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return result.Result{}, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.RoleClient,
		IsActive:     true,
		LanguageID:   "en",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.usersRepo.Create(ctx, user); err != nil {
		return result.Result{}, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(authResponse(token, user)), nil
}

// Login verifies credentials and returns a signed token. Inactive accounts
// are rejected even with a correct password.
func (s *Service) Login(ctx context.Context, req LoginRequest) (result.Result, error) {
	user, err := s.usersRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return result.Result{}, err
	}
	if user == nil {
		return result.Fail(ErrInvalidCredentials), nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return result.Fail(ErrInvalidCredentials), nil
	}

	if !user.IsActive {
		return result.Fail(ErrAccountInactive), nil
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(authResponse(token, user)), nil
}

func authResponse(token string, user *models.User) AuthResponse {
	return AuthResponse{
		AccessToken: token,
		User: PublicUser{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	}
}
