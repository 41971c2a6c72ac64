package destinations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/voyago/backoffice/pkg/models"
)

// Repository is the persistence access layer for destinations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a destination repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID returns the destination with the given id, or nil when absent.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Destination, error) {
	var dest models.Destination
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find destination: %w", err)
	}
	return &dest, nil
}

// FindByCountry returns the destination for the given country, or nil.
func (r *Repository) FindByCountry(ctx context.Context, country string) (*models.Destination, error) {
	var dest models.Destination
	if err := r.db.WithContext(ctx).Where("country = ?", country).First(&dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find destination by country: %w", err)
	}
	return &dest, nil
}

// FindAll returns every destination, newest first.
func (r *Repository) FindAll(ctx context.Context) ([]models.Destination, error) {
	var dests []models.Destination
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dests).Error; err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	return dests, nil
}

// Create inserts a new destination.
func (r *Repository) Create(ctx context.Context, dest *models.Destination) error {
	if dest.ID == uuid.Nil {
		dest.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(dest).Error; err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	return nil
}

// Update applies the given column changes and returns the updated row.
func (r *Repository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Destination, error) {
	if err := r.db.WithContext(ctx).Model(&models.Destination{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update destination: %w", err)
	}
	return r.FindByID(ctx, id)
}

// Delete removes the destination with the given id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Destination{}).Error; err != nil {
		return fmt.Errorf("failed to delete destination: %w", err)
	}
	return nil
}

// DeleteMany removes every destination whose id is in ids.
func (r *Repository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Destination{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete destinations: %w", res.Error)
	}
	return res.RowsAffected, nil
}
