package users

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/voyago/backoffice/pkg/models"
	"github.com/voyago/backoffice/pkg/result"
)

// Error codes emitted by the users module. Each must exist in the "en"
// translation table and in the users handler's status switch.
const (
	ErrUserNotFound           = "USER_NOT_FOUND"
	ErrUserEmailAlreadyExists = "USER_EMAIL_ALREADY_EXISTS"
	ErrInvalidUserData        = "INVALID_USER_DATA"
)

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Email      string          `json:"email" binding:"required,email"`
	Password   string          `json:"password" binding:"required,min=8"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Role       models.UserRole `json:"role" binding:"omitempty,oneof=ADMIN AGENT CLIENT"`
	LanguageID string          `json:"languageId" binding:"omitempty,len=2"`
}

// UpdateUserRequest is the payload for a partial user update.
type UpdateUserRequest struct {
	Email      *string          `json:"email" binding:"omitempty,email"`
	Password   *string          `json:"password" binding:"omitempty,min=8"`
	FirstName  *string          `json:"firstName"`
	LastName   *string          `json:"lastName"`
	Role       *models.UserRole `json:"role" binding:"omitempty,oneof=ADMIN AGENT CLIENT"`
	IsActive   *bool            `json:"isActive"`
	LanguageID *string          `json:"languageId" binding:"omitempty,len=2"`
}

// DeleteUsersRequest is the payload for a bulk delete.
type DeleteUsersRequest struct {
	IDs []string `json:"ids"`
}

// Service implements user management.
type Service struct {
	logger     *zap.Logger
	repo       *Repository
	bcryptCost int
}

// NewService creates a users service.
func NewService(logger *zap.Logger, repo *Repository, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{logger: logger, repo: repo, bcryptCost: bcryptCost}
}

// Repo exposes the repository to collaborating services.
func (s *Service) Repo() *Repository {
	return s.repo
}

// Create adds a user after checking email uniqueness.
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (result.Result, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return result.Result{}, err
	}
	if existing != nil {
		return result.Fail(ErrUserEmailAlreadyExists), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return result.Result{}, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleClient
	}
	lang := req.LanguageID
	if lang == "" {
		lang = "en"
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		IsActive:     true,
		LanguageID:   lang,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return result.Result{}, err
	}
	return result.OKWithMessage(user, "USER_CREATED_SUCCESSFULLY", nil), nil
}

// FindAll lists every user.
func (s *Service) FindAll(ctx context.Context) (result.Result, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(users), nil
}

// FindByID fetches a single user.
func (s *Service) FindByID(ctx context.Context, id string) (result.Result, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if user == nil {
		return result.Fail(ErrUserNotFound), nil
	}
	return result.OK(user), nil
}

// Update applies a partial update, re-checking email uniqueness when the
// email changes and re-hashing the password when present.
func (s *Service) Update(ctx context.Context, id string, req UpdateUserRequest) (result.Result, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if existing == nil {
		return result.Fail(ErrUserNotFound), nil
	}

	updates := map[string]interface{}{}
	if req.Email != nil && *req.Email != existing.Email {
		other, err := s.repo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return result.Result{}, err
		}
		if other != nil {
			return result.Fail(ErrUserEmailAlreadyExists), nil
		}
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			return result.Result{}, err
		}
		updates["password_hash"] = string(hash)
	}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.LanguageID != nil {
		updates["language_id"] = *req.LanguageID
	}
	updates["updated_at"] = time.Now()

	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return result.Result{}, err
	}
	return result.OKWithMessage(updated, "USER_UPDATED_SUCCESSFULLY", nil), nil
}

// Delete removes a user. Deleting an absent id fails with USER_NOT_FOUND.
func (s *Service) Delete(ctx context.Context, id string) (result.Result, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if existing == nil {
		return result.Fail(ErrUserNotFound), nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return result.Result{}, err
	}
	return result.OKWithMessage(existing, "USER_DELETED_SUCCESSFULLY", nil), nil
}

// DeleteMany removes a batch of users. An empty id list short-circuits
// before any persistence call.
func (s *Service) DeleteMany(ctx context.Context, req DeleteUsersRequest) (result.Result, error) {
	if len(req.IDs) == 0 {
		return result.Fail(ErrInvalidUserData), nil
	}
	count, err := s.repo.DeleteMany(ctx, req.IDs)
	if err != nil {
		return result.Result{}, err
	}
	return result.OKWithMessage(map[string]int64{"deletedCount": count}, "USERS_DELETED_SUCCESSFULLY", nil), nil
}
