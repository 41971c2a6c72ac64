package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/voyago/backoffice/pkg/models"
)

// Repository is the persistence access layer for customers. Reads preload
// the owning user so responses carry contact identity.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a customer repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID returns the customer with the given id, or nil when absent.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return &customer, nil
}

// FindByUserID returns the customer owned by the given user, or nil.
func (r *Repository) FindByUserID(ctx context.Context, userID string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find customer by user: %w", err)
	}
	return &customer, nil
}

// FindAll returns every customer with their user, newest first.
func (r *Repository) FindAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Preload("User").Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// Create inserts a new customer.
func (r *Repository) Create(ctx context.Context, customer *models.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// Update applies the given column changes and returns the updated row.
func (r *Repository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Customer, error) {
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return r.FindByID(ctx, id)
}

// Delete removes the customer with the given id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Customer{}).Error; err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

// DeleteMany removes every customer whose id is in ids.
func (r *Repository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Customer{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete customers: %w", res.Error)
	}
	return res.RowsAffected, nil
}
