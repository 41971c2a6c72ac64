package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/voyago/backoffice/pkg/models"
)

// Repository is the persistence access layer for notifications.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a notification repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID returns the notification with the given id, or nil when absent.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}
	return &n, nil
}

// FindAllByUserID returns a user's notifications, newest first.
func (r *Repository) FindAllByUserID(ctx context.Context, userID string) ([]models.Notification, error) {
	var ns []models.Notification
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&ns).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return ns, nil
}

// Create inserts a new notification.
func (r *Repository) Create(ctx context.Context, n *models.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// MarkAsRead flags a single notification as read and returns it.
func (r *Repository) MarkAsRead(ctx context.Context, id string) (*models.Notification, error) {
	if err := r.db.WithContext(ctx).Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true).Error; err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return r.FindByID(ctx, id)
}

// MarkAllAsRead flags every unread notification of a user as read and
// reports how many rows changed.
func (r *Repository) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes the notification with the given id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Notification{}).Error; err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}
