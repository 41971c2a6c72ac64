package customers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voyago/backoffice/internal/users"
	"github.com/voyago/backoffice/pkg/models"
	"github.com/voyago/backoffice/pkg/result"
)

// Error codes emitted by the customers module.
const (
	ErrCustomerNotFound      = "CUSTOMER_NOT_FOUND"
	ErrCustomerAlreadyExists = "CUSTOMER_ALREADY_EXISTS"
	ErrUserNotFound          = "USER_NOT_FOUND"
	ErrInvalidCustomerData   = "INVALID_CUSTOMER_DATA"
)

// CreateCustomerRequest is the payload for creating a customer.
type CreateCustomerRequest struct {
	UserID      string     `json:"userId" binding:"required,uuid"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	Country     string     `json:"country"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
}

// UpdateCustomerRequest is the payload for a partial update.
type UpdateCustomerRequest struct {
	Phone       *string    `json:"phone"`
	Address     *string    `json:"address"`
	City        *string    `json:"city"`
	Country     *string    `json:"country"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
}

// DeleteCustomersRequest is the payload for a bulk delete.
type DeleteCustomersRequest struct {
	IDs []string `json:"ids"`
}

// Service implements customer management.
type Service struct {
	logger    *zap.Logger
	repo      *Repository
	usersRepo *users.Repository
}

// NewService creates a customers service.
func NewService(logger *zap.Logger, repo *Repository, usersRepo *users.Repository) *Service {
	return &Service{logger: logger, repo: repo, usersRepo: usersRepo}
}

// Repo exposes the repository to collaborating services.
func (s *Service) Repo() *Repository {
	return s.repo
}

// Create adds a customer record for a user. A user can own at most one
// customer record.
func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (result.Result, error) {
	existing, err := s.repo.FindByUserID(ctx, req.UserID)
	if err != nil {
		return result.Result{}, err
	}
	if existing != nil {
		return result.Fail(ErrCustomerAlreadyExists), nil
	}

	user, err := s.usersRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return result.Result{}, err
	}
	if user == nil {
		return result.Fail(ErrUserNotFound), nil
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return result.Fail(ErrInvalidCustomerData), nil
	}

	customer := &models.Customer{
		UserID:      userID,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		DateOfBirth: req.DateOfBirth,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return result.Result{}, err
	}

	created, err := s.repo.FindByID(ctx, customer.ID.String())
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(created), nil
}

// FindAll lists every customer.
func (s *Service) FindAll(ctx context.Context) (result.Result, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(customers), nil
}

// FindByID fetches a single customer.
func (s *Service) FindByID(ctx context.Context, id string) (result.Result, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if customer == nil {
		return result.Fail(ErrCustomerNotFound), nil
	}
	return result.OK(customer), nil
}

// Update applies a partial update to a customer's contact details.
func (s *Service) Update(ctx context.Context, id string, req UpdateCustomerRequest) (result.Result, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if existing == nil {
		return result.Fail(ErrCustomerNotFound), nil
	}

	updates := map[string]interface{}{}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.DateOfBirth != nil {
		updates["date_of_birth"] = *req.DateOfBirth
	}
	updates["updated_at"] = time.Now()

	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(updated), nil
}

// Delete removes a customer.
func (s *Service) Delete(ctx context.Context, id string) (result.Result, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if existing == nil {
		return result.Fail(ErrCustomerNotFound), nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return result.Result{}, err
	}
	return result.OK(existing), nil
}

// DeleteMany removes a batch of customers. An empty id list short-circuits
// before any persistence call.
func (s *Service) DeleteMany(ctx context.Context, req DeleteCustomersRequest) (result.Result, error) {
	if len(req.IDs) == 0 {
		return result.Fail(ErrInvalidCustomerData), nil
	}
	count, err := s.repo.DeleteMany(ctx, req.IDs)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(map[string]int64{"deletedCount": count}), nil
}
