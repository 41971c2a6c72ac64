package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/voyago/backoffice/pkg/models"
)

// Repository is the persistence access layer for payments.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a payment repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID returns the payment with the given id, or nil when absent.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.WithContext(ctx).Preload("Booking").Where("id = ?", id).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}
	return &payment, nil
}

// FindAll returns every payment with its booking, newest first.
func (r *Repository) FindAll(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.WithContext(ctx).Preload("Booking").Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// Create inserts a new payment.
func (r *Repository) Create(ctx context.Context, payment *models.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// Update applies the given column changes and returns the updated row.
func (r *Repository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Payment, error) {
	if err := r.db.WithContext(ctx).Model(&models.Payment{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return r.FindByID(ctx, id)
}

// Delete removes the payment with the given id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Payment{}).Error; err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}

// DeleteMany removes every payment whose id is in ids.
func (r *Repository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Payment{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete payments: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// SumAmounts returns the total of all payment amounts, zero when the
// table is empty.
func (r *Repository) SumAmounts(ctx context.Context) (decimal.Decimal, error) {
	var raw *string
	if err := r.db.WithContext(ctx).Model(&models.Payment{}).Select("SUM(amount)").Scan(&raw).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments: %w", err)
	}
	if raw == nil {
		return decimal.Zero, nil
	}
	total, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse payment sum: %w", err)
	}
	return total, nil
}
