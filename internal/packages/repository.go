package packages

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/voyago/backoffice/pkg/models"
)

// Repository is the persistence access layer for travel packages. Reads
// preload the destination.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a package repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID returns the package with the given id, or nil when absent.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Package, error) {
	var pkg models.Package
	if err := r.db.WithContext(ctx).Preload("Destination").Where("id = ?", id).First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find package: %w", err)
	}
	return &pkg, nil
}

// FindAll returns every package with its destination, newest first.
func (r *Repository) FindAll(ctx context.Context) ([]models.Package, error) {
	var pkgs []models.Package
	if err := r.db.WithContext(ctx).Preload("Destination").Order("created_at DESC").Find(&pkgs).Error; err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return pkgs, nil
}

// Create inserts a new package.
func (r *Repository) Create(ctx context.Context, pkg *models.Package) error {
	if pkg.ID == uuid.Nil {
		pkg.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(pkg).Error; err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

// Update applies the given column changes and returns the updated row.
func (r *Repository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Package, error) {
	if err := r.db.WithContext(ctx).Model(&models.Package{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update package: %w", err)
	}
	return r.FindByID(ctx, id)
}

// Delete removes the package with the given id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Package{}).Error; err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}
	return nil
}

// DeleteMany removes every package whose id is in ids.
func (r *Repository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Package{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete packages: %w", res.Error)
	}
	return res.RowsAffected, nil
}
