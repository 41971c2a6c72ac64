package packages

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/voyago/backoffice/internal/destinations"
	"github.com/voyago/backoffice/pkg/models"
	"github.com/voyago/backoffice/pkg/result"
	"github.com/voyago/backoffice/pkg/validation"
)

// Error codes emitted by the packages module.
const (
	ErrPackageNotFound     = "PACKAGE_NOT_FOUND"
	ErrInvalidPackageData  = "INVALID_PACKAGE_DATA"
	ErrPackageNotAvailable = "PACKAGE_NOT_AVAILABLE"
)

// CreatePackageRequest is the payload for creating a package.
type CreatePackageRequest struct {
	DestinationID    string          `json:"destinationId" binding:"required,uuid"`
	Title            string          `json:"title" binding:"required"`
	Description      string          `json:"description"`
	Duration         int             `json:"duration" binding:"required,gt=0"`
	Price            decimal.Decimal `json:"price" binding:"required,positivedecimal"`
	IncludedServices []string        `json:"includedServices"`
	AvailableFrom    time.Time       `json:"availableFrom" binding:"required"`
	AvailableTo      time.Time       `json:"availableTo" binding:"required"`
	MaxCapacity      int             `json:"maxCapacity" binding:"required,gt=0"`
	IsActive         *bool           `json:"isActive"`
}

// UpdatePackageRequest is the payload for a partial update.
type UpdatePackageRequest struct {
	Title            *string          `json:"title"`
	Description      *string          `json:"description"`
	Duration         *int             `json:"duration" binding:"omitempty,gt=0"`
	Price            *decimal.Decimal `json:"price"`
	IncludedServices []string         `json:"includedServices"`
	AvailableFrom    *time.Time       `json:"availableFrom"`
	AvailableTo      *time.Time       `json:"availableTo"`
	MaxCapacity      *int             `json:"maxCapacity" binding:"omitempty,gt=0"`
	IsActive         *bool            `json:"isActive"`
}

// DeletePackagesRequest is the payload for a bulk delete.
type DeletePackagesRequest struct {
	IDs []string `json:"ids"`
}

// Service implements travel-package management.
type Service struct {
	logger           *zap.Logger
	repo             *Repository
	destinationsRepo *destinations.Repository
	sanitizer        *validation.Sanitizer
}

// NewService creates a packages service.
func NewService(logger *zap.Logger, repo *Repository, destinationsRepo *destinations.Repository, sanitizer *validation.Sanitizer) *Service {
	return &Service{logger: logger, repo: repo, destinationsRepo: destinationsRepo, sanitizer: sanitizer}
}

// Repo exposes the repository to collaborating services.
func (s *Service) Repo() *Repository {
	return s.repo
}

// Create adds a package. A missing destination is reported as invalid
// package data rather than a not-found.
func (s *Service) Create(ctx context.Context, req CreatePackageRequest) (result.Result, error) {
	dest, err := s.destinationsRepo.FindByID(ctx, req.DestinationID)
	if err != nil {
		return result.Result{}, err
	}
	if dest == nil {
		return result.Fail(ErrInvalidPackageData), nil
	}

	destID, err := uuid.Parse(req.DestinationID)
	if err != nil {
		return result.Fail(ErrInvalidPackageData), nil
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	pkg := &models.Package{
		DestinationID:    destID,
		Title:            s.sanitizer.Clean(req.Title),
		Description:      s.sanitizer.Clean(req.Description),
		Duration:         req.Duration,
		Price:            req.Price,
		IncludedServices: s.sanitizer.CleanAll(req.IncludedServices),
		AvailableFrom:    req.AvailableFrom,
		AvailableTo:      req.AvailableTo,
		MaxCapacity:      req.MaxCapacity,
		IsActive:         active,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if err := s.repo.Create(ctx, pkg); err != nil {
		return result.Result{}, err
	}

	created, err := s.repo.FindByID(ctx, pkg.ID.String())
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(created), nil
}

// FindAll lists every package.
func (s *Service) FindAll(ctx context.Context) (result.Result, error) {
	pkgs, err := s.repo.FindAll(ctx)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(pkgs), nil
}

// FindByID fetches a single package.
func (s *Service) FindByID(ctx context.Context, id string) (result.Result, error) {
	pkg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if pkg == nil {
		return result.Fail(ErrPackageNotFound), nil
	}
	return result.OK(pkg), nil
}

// Update applies a partial update to a package.
func (s *Service) Update(ctx context.Context, id string, req UpdatePackageRequest) (result.Result, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if existing == nil {
		return result.Fail(ErrPackageNotFound), nil
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = s.sanitizer.Clean(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = s.sanitizer.Clean(*req.Description)
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.IncludedServices != nil {
		existing.IncludedServices = s.sanitizer.CleanAll(req.IncludedServices)
		updates["included_services"] = existing.IncludedServices
	}
	if req.AvailableFrom != nil {
		updates["available_from"] = *req.AvailableFrom
	}
	if req.AvailableTo != nil {
		updates["available_to"] = *req.AvailableTo
	}
	if req.MaxCapacity != nil {
		updates["max_capacity"] = *req.MaxCapacity
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	updates["updated_at"] = time.Now()

	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(updated), nil
}

// Delete removes a package.
func (s *Service) Delete(ctx context.Context, id string) (result.Result, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if existing == nil {
		return result.Fail(ErrPackageNotFound), nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return result.Result{}, err
	}
	return result.OK(existing), nil
}

// DeleteMany removes a batch of packages. An empty id list short-circuits
// before any persistence call.
func (s *Service) DeleteMany(ctx context.Context, req DeletePackagesRequest) (result.Result, error) {
	if len(req.IDs) == 0 {
		return result.Fail(ErrInvalidPackageData), nil
	}
	count, err := s.repo.DeleteMany(ctx, req.IDs)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(map[string]int64{"deletedCount": count}), nil
}
