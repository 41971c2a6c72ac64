package packages

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/voyago/backoffice/internal/database"
	"github.com/voyago/backoffice/internal/destinations"
	"github.com/voyago/backoffice/pkg/models"
	"github.com/voyago/backoffice/pkg/validation"
)

func newTestService(t *testing.T) (*Service, *destinations.Repository) {
	t.Helper()
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	destRepo := destinations.NewRepository(db)
	return NewService(zap.NewNop(), NewRepository(db), destRepo, validation.NewSanitizer()), destRepo
}

func seedDestination(t *testing.T, repo *destinations.Repository, country string) *models.Destination {
	t.Helper()
	dest := &models.Destination{Country: country, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, repo.Create(context.Background(), dest))
	return dest
}

func validCreateRequest(destID string) CreatePackageRequest {
	return CreatePackageRequest{
		DestinationID:    destID,
		Title:            "Desert Escape",
		Description:      "A week in the dunes",
		Duration:         7,
		Price:            decimal.NewFromInt(1200),
		IncludedServices: []string{"flights", "hotel"},
		AvailableFrom:    time.Now().AddDate(0, -1, 0),
		AvailableTo:      time.Now().AddDate(1, 0, 0),
		MaxCapacity:      20,
	}
}

func TestCreatePackage(t *testing.T) {
	svc, destRepo := newTestService(t)
	dest := seedDestination(t, destRepo, "Morocco")

	res, err := svc.Create(context.Background(), validCreateRequest(dest.ID.String()))
	require.NoError(t, err)
	require.True(t, res.IsSuccess)

	pkg := res.Data.(*models.Package)
	assert.Equal(t, dest.ID, pkg.DestinationID)
	assert.True(t, pkg.IsActive)
	assert.True(t, pkg.Price.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, []string{"flights", "hotel"}, pkg.IncludedServices)
	require.NotNil(t, pkg.Destination)
	assert.Equal(t, "Morocco", pkg.Destination.Country)
}

func TestCreatePackageUnknownDestination(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Create(context.Background(), validCreateRequest("00000000-0000-0000-0000-000000000003"))
	require.NoError(t, err)
	assert.Equal(t, ErrInvalidPackageData, res.Error)
}

func TestCreatePackageSanitizesText(t *testing.T) {
	svc, destRepo := newTestService(t)
	dest := seedDestination(t, destRepo, "Japan")

	req := validCreateRequest(dest.ID.String())
	req.Title = `Tokyo <img src=x onerror=alert(1)> Lights`
	res, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	pkg := res.Data.(*models.Package)
	assert.NotContains(t, pkg.Title, "<img")
	assert.Contains(t, pkg.Title, "Tokyo")
}

func TestUpdatePackage(t *testing.T) {
	svc, destRepo := newTestService(t)
	dest := seedDestination(t, destRepo, "Morocco")
	ctx := context.Background()

	res, err := svc.Create(ctx, validCreateRequest(dest.ID.String()))
	require.NoError(t, err)
	pkg := res.Data.(*models.Package)

	price := decimal.NewFromInt(999)
	active := false
	res, err = svc.Update(ctx, pkg.ID.String(), UpdatePackageRequest{Price: &price, IsActive: &active})
	require.NoError(t, err)
	require.True(t, res.IsSuccess)

	updated := res.Data.(*models.Package)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(999)))
	assert.False(t, updated.IsActive)
	assert.Equal(t, pkg.Title, updated.Title)
}

func TestGetMissingPackage(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.FindByID(context.Background(), "00000000-0000-0000-0000-000000000004")
	require.NoError(t, err)
	assert.Equal(t, ErrPackageNotFound, res.Error)
}

func TestDeletePackage(t *testing.T) {
	svc, destRepo := newTestService(t)
	dest := seedDestination(t, destRepo, "Morocco")
	ctx := context.Background()

	res, err := svc.Create(ctx, validCreateRequest(dest.ID.String()))
	require.NoError(t, err)
	pkg := res.Data.(*models.Package)

	res, err = svc.Delete(ctx, pkg.ID.String())
	require.NoError(t, err)
	assert.True(t, res.IsSuccess)

	res, err = svc.Delete(ctx, pkg.ID.String())
	require.NoError(t, err)
	assert.Equal(t, ErrPackageNotFound, res.Error)
}

func TestDeleteManyEmptyIDs(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.DeleteMany(context.Background(), DeletePackagesRequest{})
	require.NoError(t, err)
	assert.Equal(t, ErrInvalidPackageData, res.Error)
}
