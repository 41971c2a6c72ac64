package bookings

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

	"github.com/voyago/backoffice/internal/customers"
	"github.com/voyago/backoffice/internal/database"
	"github.com/voyago/backoffice/internal/destinations"
	"github.com/voyago/backoffice/internal/packages"
	"github.com/voyago/backoffice/internal/users"
	"github.com/voyago/backoffice/pkg/models"
)

type fixture struct {
	svc      *Service
	db       *gorm.DB
	customer *models.Customer
	pkg      *models.Package
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	ctx := context.Background()

	user := &models.User{Email: "traveler@example.com", Role: models.RoleClient, IsActive: true, LanguageID: "en"}
	require.NoError(t, users.NewRepository(db).Create(ctx, user))

	customersRepo := customers.NewRepository(db)
	customer := &models.Customer{UserID: user.ID}
	require.NoError(t, customersRepo.Create(ctx, customer))

	dest := &models.Destination{Country: "Morocco"}
	require.NoError(t, destinations.NewRepository(db).Create(ctx, dest))

	packagesRepo := packages.NewRepository(db)
	pkg := &models.Package{
		DestinationID: dest.ID,
		Title:         "Desert Escape",
		Duration:      7,
		Price:         decimal.NewFromInt(1200),
		AvailableFrom: time.Now().AddDate(0, -1, 0),
		AvailableTo:   time.Now().AddDate(1, 0, 0),
		MaxCapacity:   20,
		IsActive:      true,
	}
	require.NoError(t, packagesRepo.Create(ctx, pkg))

	svc := NewService(zap.NewNop(), NewRepository(db), customersRepo, packagesRepo)
	return &fixture{svc: svc, db: db, customer: customer, pkg: pkg}
}

func (f *fixture) createRequest() CreateBookingRequest {
	return CreateBookingRequest{
		CustomerID:     f.customer.ID.String(),
		PackageID:      f.pkg.ID.String(),
		NumberOfAdults: 2,
		TotalPrice:     decimal.NewFromInt(2400),
		TravelDate:     time.Now().AddDate(0, 1, 0),
	}
}

func TestCreateBooking(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)
	require.True(t, res.IsSuccess)

	booking := res.Data.(*models.Booking)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.False(t, booking.BookingDate.IsZero())
	// Relations are eagerly loaded down to the user and destination.
	require.NotNil(t, booking.Customer)
	require.NotNil(t, booking.Customer.User)
	require.NotNil(t, booking.Package)
	require.NotNil(t, booking.Package.Destination)
}

func TestCreateBookingUnknownCustomer(t *testing.T) {
	f := newFixture(t)

	req := f.createRequest()
	req.CustomerID = "00000000-0000-0000-0000-000000000005"
	res, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, ErrCustomerNotFound, res.Error)
}

func TestCreateBookingUnknownPackage(t *testing.T) {
	f := newFixture(t)

	req := f.createRequest()
	req.PackageID = "00000000-0000-0000-0000-000000000006"
	res, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, ErrPackageNotFound, res.Error)
}

func TestCreateBookingOutsideAvailabilityWindow(t *testing.T) {
	f := newFixture(t)

	req := f.createRequest()
	req.TravelDate = time.Now().AddDate(2, 0, 0)
	res, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, ErrPackageNotAvailable, res.Error)
}

func TestCreateBookingInactivePackage(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.db.Model(f.pkg).Update("is_active", false).Error)

	res, err := f.svc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)
	assert.Equal(t, ErrPackageNotAvailable, res.Error)
}

func TestUpdateBookingStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)
	booking := res.Data.(*models.Booking)

	status := models.BookingConfirmed
	res, err = f.svc.Update(ctx, booking.ID.String(), UpdateBookingRequest{Status: &status})
	require.NoError(t, err)
	require.True(t, res.IsSuccess)
	assert.Equal(t, models.BookingConfirmed, res.Data.(*models.Booking).Status)
}

func TestGetMissingBooking(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.FindByID(context.Background(), "00000000-0000-0000-0000-000000000007")
	require.NoError(t, err)
	assert.Equal(t, ErrBookingNotFound, res.Error)
}

func TestCountByStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	count, err := f.svc.Repo().CountByStatus(ctx, models.BookingPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = f.svc.Repo().CountByStatus(ctx, models.BookingConfirmed)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteManyEmptyIDs(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.DeleteMany(context.Background(), DeleteBookingsRequest{})
	require.NoError(t, err)
	assert.Equal(t, ErrInvalidBookingData, res.Error)
}
