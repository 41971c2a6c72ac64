package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/voyago/backoffice/internal/database"
	"github.com/voyago/backoffice/internal/users"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	repo := users.NewRepository(db)
	tokens := NewTokenManager("test-secret", 1)
	return NewService(zap.NewNop(), repo, tokens, 4), db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterRequest{
		Email:     "alice@example.com",
		Password:  "correct-horse",
		FirstName: "Alice",
	})
	require.NoError(t, err)
	require.True(t, res.IsSuccess)

	auth, ok := res.Data.(AuthResponse)
	require.True(t, ok)
	assert.NotEmpty(t, auth.AccessToken)
	assert.Equal(t, "alice@example.com", auth.User.Email)

	res, err = svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.True(t, res.IsSuccess)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "bob@example.com",
		Password: "short",
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, ErrWeakPassword, res.Error)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "dup@example.com", Password: "long-enough"})
	require.NoError(t, err)

	res, err := svc.Register(ctx, RegisterRequest{Email: "dup@example.com", Password: "long-enough"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, ErrEmailAlreadyExists, res.Error)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "carol@example.com", Password: "long-enough"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, LoginRequest{Email: "carol@example.com", Password: "wrong-password"})
	require.NoError(t, err)
	assert.Equal(t, ErrInvalidCredentials, res.Error)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	require.NoError(t, err)
	// Unknown email reports the same code as a wrong password.
	assert.Equal(t, ErrInvalidCredentials, res.Error)
}

func TestLoginInactiveAccount(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "dave@example.com", Password: "long-enough"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("UPDATE users SET is_active = ? WHERE email = ?", false, "dave@example.com").Error)

	res, err := svc.Login(ctx, LoginRequest{Email: "dave@example.com", Password: "long-enough"})
	require.NoError(t, err)
	assert.Equal(t, ErrAccountInactive, res.Error)
}

func TestTokenRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterRequest{Email: "erin@example.com", Password: "long-enough"})
	require.NoError(t, err)
	auth := res.Data.(AuthResponse)

	claims, err := svc.Tokens().Verify(auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "erin@example.com", claims.Email)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, auth.User.ID, id)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	tokens := NewTokenManager("secret-a", 1)
	other := NewTokenManager("secret-b", 1)

	svc, _ := newTestService(t)
	res, err := svc.Register(context.Background(), RegisterRequest{Email: "frank@example.com", Password: "long-enough"})
	require.NoError(t, err)
	token := res.Data.(AuthResponse).AccessToken

	_, err = tokens.Verify(token)
	assert.Error(t, err)
	_, err = other.Verify(token)
	assert.Error(t, err)
}
