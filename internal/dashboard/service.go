package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/voyago/backoffice/internal/bookings"
	"github.com/voyago/backoffice/internal/payments"
	"github.com/voyago/backoffice/pkg/models"
	"github.com/voyago/backoffice/pkg/result"
)

// Totals wraps a single count for the stats payload.
type Totals struct {
	Total int64 `json:"total"`
}

// BookingTotals breaks bookings down by status.
type BookingTotals struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
}

// RevenueTotals carries the summed payment amounts.
type RevenueTotals struct {
	Total decimal.Decimal `json:"total"`
}

// Stats is the aggregate view served to the dashboard.
type Stats struct {
	Users        Totals        `json:"users"`
	Customers    Totals        `json:"customers"`
	Destinations Totals        `json:"destinations"`
	Packages     Totals        `json:"packages"`
	Bookings     BookingTotals `json:"bookings"`
	Revenue      RevenueTotals `json:"revenue"`
}

// Service aggregates counts across every entity for the dashboard.
type Service struct {
	logger       *zap.Logger
	db           *gorm.DB
	bookingsRepo *bookings.Repository
	paymentsRepo *payments.Repository
}

// NewService creates a dashboard service.
func NewService(logger *zap.Logger, db *gorm.DB, bookingsRepo *bookings.Repository, paymentsRepo *payments.Repository) *Service {
	return &Service{logger: logger, db: db, bookingsRepo: bookingsRepo, paymentsRepo: paymentsRepo}
}

// GetStats collects entity counts, booking status breakdowns and the
// revenue sum. Counts are independent queries, not a snapshot.
func (s *Service) GetStats(ctx context.Context) (result.Result, error) {
	stats := Stats{}

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &stats.Users.Total},
		{&models.Customer{}, &stats.Customers.Total},
		{&models.Destination{}, &stats.Destinations.Total},
		{&models.Package{}, &stats.Packages.Total},
		{&models.Booking{}, &stats.Bookings.Total},
	}
	for _, c := range counts {
		if err := s.db.WithContext(ctx).Model(c.model).Count(c.dest).Error; err != nil {
			return result.Result{}, fmt.Errorf("failed to count entities: %w", err)
		}
	}

	pending, err := s.bookingsRepo.CountByStatus(ctx, models.BookingPending)
	if err != nil {
		return result.Result{}, err
	}
	stats.Bookings.Pending = pending

	confirmed, err := s.bookingsRepo.CountByStatus(ctx, models.BookingConfirmed)
	if err != nil {
		return result.Result{}, err
	}
	stats.Bookings.Confirmed = confirmed

	revenue, err := s.paymentsRepo.SumAmounts(ctx)
	if err != nil {
		return result.Result{}, err
	}
	stats.Revenue.Total = revenue

	return result.OK(stats), nil
}
