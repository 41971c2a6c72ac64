package notifications

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voyago/backoffice/internal/users"
	"github.com/voyago/backoffice/pkg/models"
	"github.com/voyago/backoffice/pkg/result"
	"github.com/voyago/backoffice/pkg/validation"
)

// Error codes emitted by the notifications module.
const (
	ErrNotificationNotFound    = "NOTIFICATION_NOT_FOUND"
	ErrUserNotFound            = "USER_NOT_FOUND"
	ErrInvalidNotificationData = "INVALID_NOTIFICATION_DATA"
)

// CreateNotificationRequest is the payload for creating a notification.
type CreateNotificationRequest struct {
	UserID  string `json:"userId" binding:"required,uuid"`
	Type    string `json:"type" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Service implements the in-app notification feed.
type Service struct {
	logger    *zap.Logger
	repo      *Repository
	usersRepo *users.Repository
	sanitizer *validation.Sanitizer
}

// NewService creates a notifications service.
func NewService(logger *zap.Logger, repo *Repository, usersRepo *users.Repository, sanitizer *validation.Sanitizer) *Service {
	return &Service{logger: logger, repo: repo, usersRepo: usersRepo, sanitizer: sanitizer}
}

// Create adds a notification after verifying the target user exists.
func (s *Service) Create(ctx context.Context, req CreateNotificationRequest) (result.Result, error) {
	user, err := s.usersRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return result.Result{}, err
	}
	if user == nil {
		return result.Fail(ErrUserNotFound), nil
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return result.Fail(ErrInvalidNotificationData), nil
	}

	n := &models.Notification{
		UserID:    userID,
		Type:      req.Type,
		Title:     s.sanitizer.Clean(req.Title),
		Message:   s.sanitizer.Clean(req.Message),
		IsRead:    false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return result.Result{}, err
	}
	return result.OK(n), nil
}

// FindAllByUserID lists a user's notifications, newest first.
func (s *Service) FindAllByUserID(ctx context.Context, userID string) (result.Result, error) {
	ns, err := s.repo.FindAllByUserID(ctx, userID)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(ns), nil
}

// MarkAsRead flags one notification as read.
func (s *Service) MarkAsRead(ctx context.Context, id string) (result.Result, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if existing == nil {
		return result.Fail(ErrNotificationNotFound), nil
	}
	n, err := s.repo.MarkAsRead(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(n), nil
}

// MarkAllAsRead flags every unread notification of a user as read.
func (s *Service) MarkAllAsRead(ctx context.Context, userID string) (result.Result, error) {
	count, err := s.repo.MarkAllAsRead(ctx, userID)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(map[string]int64{"count": count}), nil
}

// Delete removes a notification.
func (s *Service) Delete(ctx context.Context, id string) (result.Result, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if existing == nil {
		return result.Fail(ErrNotificationNotFound), nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return result.Result{}, err
	}
	return result.OK(existing), nil
}
