package destinations

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/voyago/backoffice/pkg/models"
	"github.com/voyago/backoffice/pkg/result"
	"github.com/voyago/backoffice/pkg/validation"
)

// Error codes emitted by the destinations module.
const (
	ErrDestinationNotFound             = "DESTINATION_NOT_FOUND"
	ErrDestinationCountryAlreadyExists = "DESTINATION_COUNTRY_ALREADY_EXISTS"
	ErrInvalidDestinationData          = "INVALID_DESTINATION_DATA"
)

// CreateDestinationRequest is the payload for creating a destination.
type CreateDestinationRequest struct {
	Country     string `json:"country" binding:"required,min=2"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// UpdateDestinationRequest is the payload for a partial update.
type UpdateDestinationRequest struct {
	Country     *string `json:"country" binding:"omitempty,min=2"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

// DeleteDestinationsRequest is the payload for a bulk delete.
type DeleteDestinationsRequest struct {
	IDs []string `json:"ids"`
}

// Service implements destination management.
type Service struct {
	logger    *zap.Logger
	repo      *Repository
	sanitizer *validation.Sanitizer
}

// NewService creates a destinations service.
func NewService(logger *zap.Logger, repo *Repository, sanitizer *validation.Sanitizer) *Service {
	return &Service{logger: logger, repo: repo, sanitizer: sanitizer}
}

// Repo exposes the repository to collaborating services.
func (s *Service) Repo() *Repository {
	return s.repo
}

// Create adds a destination. Country is unique across the table.
func (s *Service) Create(ctx context.Context, req CreateDestinationRequest) (result.Result, error) {
	existing, err := s.repo.FindByCountry(ctx, req.Country)
	if err != nil {
		return result.Result{}, err
	}
	if existing != nil {
		return result.Fail(ErrDestinationCountryAlreadyExists), nil
	}

	dest := &models.Destination{
		Country:     req.Country,
		Description: s.sanitizer.Clean(req.Description),
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, dest); err != nil {
		return result.Result{}, err
	}
	return result.OK(dest), nil
}

// FindAll lists every destination.
func (s *Service) FindAll(ctx context.Context) (result.Result, error) {
	dests, err := s.repo.FindAll(ctx)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(dests), nil
}

// FindByID fetches a single destination.
func (s *Service) FindByID(ctx context.Context, id string) (result.Result, error) {
	dest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if dest == nil {
		return result.Fail(ErrDestinationNotFound), nil
	}
	return result.OK(dest), nil
}

// Update applies a partial update, re-checking country uniqueness when the
// country changes.
func (s *Service) Update(ctx context.Context, id string, req UpdateDestinationRequest) (result.Result, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if existing == nil {
		return result.Fail(ErrDestinationNotFound), nil
	}

	updates := map[string]interface{}{}
	if req.Country != nil && *req.Country != existing.Country {
		other, err := s.repo.FindByCountry(ctx, *req.Country)
		if err != nil {
			return result.Result{}, err
		}
		if other != nil {
			return result.Fail(ErrDestinationCountryAlreadyExists), nil
		}
		updates["country"] = *req.Country
	}
	if req.Description != nil {
		updates["description"] = s.sanitizer.Clean(*req.Description)
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	updates["updated_at"] = time.Now()

	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(updated), nil
}

// Delete removes a destination.
func (s *Service) Delete(ctx context.Context, id string) (result.Result, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	if existing == nil {
		return result.Fail(ErrDestinationNotFound), nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return result.Result{}, err
	}
	return result.OK(existing), nil
}

// DeleteMany removes a batch of destinations. An empty id list
// short-circuits before any persistence call.
func (s *Service) DeleteMany(ctx context.Context, req DeleteDestinationsRequest) (result.Result, error) {
	if len(req.IDs) == 0 {
		return result.Fail(ErrInvalidDestinationData), nil
	}
	count, err := s.repo.DeleteMany(ctx, req.IDs)
	if err != nil {
		return result.Result{}, err
	}
	return result.OK(map[string]int64{"deletedCount": count}), nil
}
