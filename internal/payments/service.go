package payments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/voyago/backoffice/internal/bookings"
	"github.com/voyago/backoffice/pkg/models"
	"github.com/voyago/backoffice/pkg/result"
	"github.com/voyago/backoffice/pkg/validation"
)

// Error codes emitted by the payments module.
const (
	ErrPaymentNotFound    = "PAYMENT_NOT_FOUND"
	ErrBookingNotFound    = "BOOKING_NOT_FOUND"
	ErrInvalidPaymentData = "INVALID_PAYMENT_DATA"
)

// CreatePaymentRequest is the payload for recording a payment.
type CreatePaymentRequest struct {
	BookingID            string               `json:"bookingId" binding:"required,uuid"`
	Amount               decimal.Decimal      `json:"amount" binding:"required,positivedecimal"`
	PaymentMethod        models.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CARD BANK_TRANSFER CASH PAYPAL"`
	PaymentType          models.PaymentType   `json:"paymentType" binding:"required,oneof=DEPOSIT BALANCE FULL"`
	TransactionReference string               `json:"transactionReference"`
	Notes                string               `json:"notes"`
}

// UpdatePaymentRequest is the payload for a partial update.
type UpdatePaymentRequest struct {
	Amount               *decimal.Decimal      `json:"amount"`
	PaymentMethod        *models.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=CARD BANK_TRANSFER CASH PAYPAL"`
	PaymentType          *models.PaymentType   `json:"paymentType" binding:"omitempty,oneof=DEPOSIT BALANCE FULL"`
	Status               *models.PaymentStatus `json:"status" binding:"omitempty,oneof=PENDING COMPLETED FAILED REFUNDED"`
	TransactionReference *string               `json:"transactionReference"`
	Notes                *string               `json:"notes"`
}

// DeletePaymentsRequest is the payload for a bulk delete.
type DeletePaymentsRequest struct {
	IDs []string `json:"ids"`
}

// Service implements payment management.
type Service struct {
	logger       *zap.Logger
	repo         *Repository
	bookingsRepo *bookings.Repository
	sanitizer    *validation.Sanitizer
}

// NewService creates a payments service.
func NewService(logger *zap.Logger, repo *Repository, bookingsRepo *bookings.Repository, sanitizer *validation.Sanitizer) *Service {
	return &Service{logger: logger, repo: repo, bookingsRepo: bookingsRepo, sanitizer: sanitizer}
}

// Repo exposes the repository to collaborating services.
func (s *Service) Repo() *Repository {
	return s.repo
}

// Create records a payment after verifying the booking exists. The check
// and the insert are not one transaction.
func (s *Service) Create(ctx context.Context, req CreatePaymentRequest) (result.Result, error) {
	booking, err := s.bookingsRepo.FindByID(ctx, req.BookingID)
	if err != nil {
		return result.Result{}, err
	}
	if booking == nil {
		return result.Fail(ErrBookingNotFound), nil
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return result.Fail(ErrInvalidPaymentData), nil
	}

	payment := &models.Payment{
		BookingID:            bookingID,
		Amount:               req.Amount,
		PaymentMethod:        req.PaymentMethod,
		PaymentType:          req.PaymentType,
		Status:               models.PaymentStatusCompleted,
		TransactionReference: req.TransactionReference,
		Notes:                s.sanitizer.Clean(req.Notes),
		PaymentDate:          time.Now(),
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return result.Result{}, err
	}

	created, err := s.repo.FindByID(ctx, payment.ID.String())
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(created), nil
}

// FindAll lists every payment.
func (s *Service) FindAll(ctx context.Context) (result.Result, error) {
	payments, err := s.repo.FindAll(ctx)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(payments), nil
}

// FindByID fetches a single payment.
func (s *Service) FindByID(ctx context.Context, id string) (result.Result, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if payment == nil {
		return result.Fail(ErrPaymentNotFound), nil
	}
	return result.OK(payment), nil
}

// Update applies a partial update to a payment.
func (s *Service) Update(ctx context.Context, id string, req UpdatePaymentRequest) (result.Result, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if existing == nil {
		return result.Fail(ErrPaymentNotFound), nil
	}

	updates := map[string]interface{}{}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.PaymentMethod != nil {
		updates["payment_method"] = *req.PaymentMethod
	}
	if req.PaymentType != nil {
		updates["payment_type"] = *req.PaymentType
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.TransactionReference != nil {
		updates["transaction_reference"] = *req.TransactionReference
	}
	if req.Notes != nil {
		updates["notes"] = s.sanitizer.Clean(*req.Notes)
	}
	updates["updated_at"] = time.Now()

	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(updated), nil
}

// Delete removes a payment.
func (s *Service) Delete(ctx context.Context, id string) (result.Result, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if existing == nil {
		return result.Fail(ErrPaymentNotFound), nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return result.Result{}, err
	}
	return result.OK(existing), nil
}

// DeleteMany removes a batch of payments. An empty id list short-circuits
// before any persistence call.
func (s *Service) DeleteMany(ctx context.Context, req DeletePaymentsRequest) (result.Result, error) {
	if len(req.IDs) == 0 {
		return result.Fail(ErrInvalidPaymentData), nil
	}
	count, err := s.repo.DeleteMany(ctx, req.IDs)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(map[string]int64{"deletedCount": count}), nil
}
