package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/voyago/backoffice/pkg/models"
)

// Repository is the persistence access layer for bookings. Reads preload
// the customer (with its user) and the package (with its destination).
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a booking repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Customer.User").
		Preload("Package").
		Preload("Package.Destination")
}

// FindByID returns the booking with the given id, or nil when absent.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.withRelations(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return &booking, nil
}

// FindAll returns every booking with relations, newest first.
func (r *Repository) FindAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.withRelations(ctx).Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// Create inserts a new booking.
func (r *Repository) Create(ctx context.Context, booking *models.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// Update applies the given column changes and returns the updated row.
func (r *Repository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Booking, error) {
	if err := r.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return r.FindByID(ctx, id)
}

// Delete removes the booking with the given id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Booking{}).Error; err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

// DeleteMany removes every booking whose id is in ids.
func (r *Repository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Booking{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete bookings: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// CountByStatus returns the number of bookings in the given status.
func (r *Repository) CountByStatus(ctx context.Context, status models.BookingStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Booking{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}
