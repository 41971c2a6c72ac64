package dashboard

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/voyago/backoffice/internal/bookings"
	"github.com/voyago/backoffice/internal/customers"
	"github.com/voyago/backoffice/internal/database"
	"github.com/voyago/backoffice/internal/destinations"
	"github.com/voyago/backoffice/internal/packages"
	"github.com/voyago/backoffice/internal/payments"
	"github.com/voyago/backoffice/internal/users"
	"github.com/voyago/backoffice/pkg/models"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	svc := NewService(zap.NewNop(), db, bookings.NewRepository(db), payments.NewRepository(db))
	return svc, db
}

func TestGetStatsEmptyDatabase(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	require.True(t, res.IsSuccess)

	stats := res.Data.(Stats)
	assert.Zero(t, stats.Users.Total)
	assert.Zero(t, stats.Bookings.Total)
	assert.True(t, stats.Revenue.Total.IsZero())
}

func TestGetStats(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	user := &models.User{Email: "a@example.com", Role: models.RoleClient, IsActive: true, LanguageID: "en"}
	require.NoError(t, users.NewRepository(db).Create(ctx, user))

	customer := &models.Customer{UserID: user.ID}
	require.NoError(t, customers.NewRepository(db).Create(ctx, customer))

	dest := &models.Destination{Country: "Morocco"}
	require.NoError(t, destinations.NewRepository(db).Create(ctx, dest))

	pkg := &models.Package{DestinationID: dest.ID, Title: "Desert Escape", Price: decimal.NewFromInt(1200), IsActive: true}
	require.NoError(t, packages.NewRepository(db).Create(ctx, pkg))

	bookingsRepo := bookings.NewRepository(db)
	for _, status := range []models.BookingStatus{models.BookingPending, models.BookingPending, models.BookingConfirmed} {
		booking := &models.Booking{
			CustomerID:  customer.ID,
			PackageID:   pkg.ID,
			TotalPrice:  decimal.NewFromInt(100),
			BookingDate: time.Now(),
			TravelDate:  time.Now(),
			Status:      status,
		}
		require.NoError(t, bookingsRepo.Create(ctx, booking))
	}

	paymentsRepo := payments.NewRepository(db)
	booking, err := bookingsRepo.FindAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, booking)
	for _, amount := range []int64{100, 250} {
		payment := &models.Payment{
			BookingID:     booking[0].ID,
			Amount:        decimal.NewFromInt(amount),
			PaymentMethod: models.PaymentCard,
			PaymentType:   models.PaymentDeposit,
			Status:        models.PaymentStatusCompleted,
			PaymentDate:   time.Now(),
		}
		require.NoError(t, paymentsRepo.Create(ctx, payment))
	}

	res, err := svc.GetStats(ctx)
	require.NoError(t, err)
	stats := res.Data.(Stats)

	assert.Equal(t, int64(1), stats.Users.Total)
	assert.Equal(t, int64(1), stats.Customers.Total)
	assert.Equal(t, int64(1), stats.Destinations.Total)
	assert.Equal(t, int64(1), stats.Packages.Total)
	assert.Equal(t, int64(3), stats.Bookings.Total)
	assert.Equal(t, int64(2), stats.Bookings.Pending)
	assert.Equal(t, int64(1), stats.Bookings.Confirmed)
	assert.True(t, stats.Revenue.Total.Equal(decimal.NewFromInt(350)))
}
