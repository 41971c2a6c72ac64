package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/voyago/backoffice/internal/customers"
	"github.com/voyago/backoffice/internal/packages"
	"github.com/voyago/backoffice/pkg/models"
	"github.com/voyago/backoffice/pkg/result"
)

// Error codes emitted by the bookings module.
const (
	ErrBookingNotFound     = "BOOKING_NOT_FOUND"
	ErrCustomerNotFound    = "CUSTOMER_NOT_FOUND"
	ErrPackageNotFound     = "PACKAGE_NOT_FOUND"
	ErrInvalidBookingData  = "INVALID_BOOKING_DATA"
	ErrPackageNotAvailable = "PACKAGE_NOT_AVAILABLE"
)

// CreateBookingRequest is the payload for creating a booking.
type CreateBookingRequest struct {
	CustomerID       string               `json:"customerId" binding:"required,uuid"`
	PackageID        string               `json:"packageId" binding:"required,uuid"`
	NumberOfAdults   int                  `json:"numberOfAdults" binding:"required,gt=0"`
	NumberOfChildren int                  `json:"numberOfChildren" binding:"omitempty,gte=0"`
	TotalPrice       decimal.Decimal      `json:"totalPrice" binding:"required,positivedecimal"`
	TravelDate       time.Time            `json:"travelDate" binding:"required"`
	Status           models.BookingStatus `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
}

// UpdateBookingRequest is the payload for a partial update.
type UpdateBookingRequest struct {
	NumberOfAdults   *int                  `json:"numberOfAdults" binding:"omitempty,gt=0"`
	NumberOfChildren *int                  `json:"numberOfChildren" binding:"omitempty,gte=0"`
	TotalPrice       *decimal.Decimal      `json:"totalPrice"`
	TravelDate       *time.Time            `json:"travelDate"`
	Status           *models.BookingStatus `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
}

// DeleteBookingsRequest is the payload for a bulk delete.
type DeleteBookingsRequest struct {
	IDs []string `json:"ids"`
}

// Service implements booking management.
type Service struct {
	logger        *zap.Logger
	repo          *Repository
	customersRepo *customers.Repository
	packagesRepo  *packages.Repository
}

// NewService creates a bookings service.
func NewService(logger *zap.Logger, repo *Repository, customersRepo *customers.Repository, packagesRepo *packages.Repository) *Service {
	return &Service{logger: logger, repo: repo, customersRepo: customersRepo, packagesRepo: packagesRepo}
}

// Repo exposes the repository to collaborating services.
func (s *Service) Repo() *Repository {
	return s.repo
}

// Create adds a booking after verifying that the customer and package
// exist. The existence checks and the insert are not one transaction, so a
// concurrent delete can still leave a dangling reference.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (result.Result, error) {
	customer, err := s.customersRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return result.Result{}, err
	}
	if customer == nil {
		return result.Fail(ErrCustomerNotFound), nil
	}

	pkg, err := s.packagesRepo.FindByID(ctx, req.PackageID)
	if err != nil {
		return result.Result{}, err
	}
	if pkg == nil {
		return result.Fail(ErrPackageNotFound), nil
	}

	if !pkg.IsActive || req.TravelDate.Before(pkg.AvailableFrom) || req.TravelDate.After(pkg.AvailableTo) {
		return result.Fail(ErrPackageNotAvailable), nil
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return result.Fail(ErrInvalidBookingData), nil
	}
	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return result.Fail(ErrInvalidBookingData), nil
	}

	status := req.Status
	if status == "" {
		status = models.BookingPending
	}

	booking := &models.Booking{
		CustomerID:       customerID,
		PackageID:        packageID,
		NumberOfAdults:   req.NumberOfAdults,
		NumberOfChildren: req.NumberOfChildren,
		TotalPrice:       req.TotalPrice,
		BookingDate:      time.Now(),
		TravelDate:       req.TravelDate,
		Status:           status,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return result.Result{}, err
	}

	created, err := s.repo.FindByID(ctx, booking.ID.String())
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(created), nil
}

// FindAll lists every booking.
func (s *Service) FindAll(ctx context.Context) (result.Result, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(bookings), nil
}

// FindByID fetches a single booking.
func (s *Service) FindByID(ctx context.Context, id string) (result.Result, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if booking == nil {
		return result.Fail(ErrBookingNotFound), nil
	}
	return result.OK(booking), nil
}

// Update applies a partial update to a booking.
func (s *Service) Update(ctx context.Context, id string, req UpdateBookingRequest) (result.Result, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if existing == nil {
		return result.Fail(ErrBookingNotFound), nil
	}

	updates := map[string]interface{}{}
	if req.NumberOfAdults != nil {
		updates["number_of_adults"] = *req.NumberOfAdults
	}
	if req.NumberOfChildren != nil {
		updates["number_of_children"] = *req.NumberOfChildren
	}
	if req.TotalPrice != nil {
		updates["total_price"] = *req.TotalPrice
	}
	if req.TravelDate != nil {
		updates["travel_date"] = *req.TravelDate
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	updates["updated_at"] = time.Now()

	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(updated), nil
}

// Delete removes a booking.
func (s *Service) Delete(ctx context.Context, id string) (result.Result, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if existing == nil {
		return result.Fail(ErrBookingNotFound), nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return result.Result{}, err
	}
	return result.OK(existing), nil
}

// DeleteMany removes a batch of bookings. An empty id list short-circuits
// before any persistence call.
func (s *Service) DeleteMany(ctx context.Context, req DeleteBookingsRequest) (result.Result, error) {
	if len(req.IDs) == 0 {
		return result.Fail(ErrInvalidBookingData), nil
	}
	count, err := s.repo.DeleteMany(ctx, req.IDs)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(map[string]int64{"deletedCount": count}), nil
}
