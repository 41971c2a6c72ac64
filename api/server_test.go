package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/voyago/backoffice/internal/auth"
	"github.com/voyago/backoffice/internal/bookings"
	"github.com/voyago/backoffice/internal/customers"
	"github.com/voyago/backoffice/internal/dashboard"
	"github.com/voyago/backoffice/internal/database"
	"github.com/voyago/backoffice/internal/destinations"
	"github.com/voyago/backoffice/internal/i18n"
	"github.com/voyago/backoffice/internal/notifications"
	"github.com/voyago/backoffice/internal/packages"
	"github.com/voyago/backoffice/internal/payments"
	"github.com/voyago/backoffice/internal/uploads"
	"github.com/voyago/backoffice/internal/users"
	"github.com/voyago/backoffice/pkg/models"
	"github.com/voyago/backoffice/pkg/validation"
)

type envelope struct {
	IsSuccess    bool            `json:"isSuccess"`
	IsError      bool            `json:"isError"`
	Data         json.RawMessage `json:"data"`
	Message      string          `json:"message"`
	Error        string          `json:"error"`
	ErrorDetails interface{}     `json:"errorDetails"`
}

type testServer struct {
	server    *Server
	usersRepo *users.Repository
	tokens    *auth.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	log := zap.NewNop()
	sanitizer := validation.NewSanitizer()
	tokens := auth.NewTokenManager("test-secret", 1)

	usersRepo := users.NewRepository(db)
	customersRepo := customers.NewRepository(db)
	destinationsRepo := destinations.NewRepository(db)
	packagesRepo := packages.NewRepository(db)
	bookingsRepo := bookings.NewRepository(db)
	paymentsRepo := payments.NewRepository(db)
	notificationsRepo := notifications.NewRepository(db)

	uploadsSvc, err := uploads.NewService(log, t.TempDir(), "/uploads", 1)
	require.NoError(t, err)

	svc := Services{
		Auth:          auth.NewService(log, usersRepo, tokens, 4),
		Users:         users.NewService(log, usersRepo, 4),
		Customers:     customers.NewService(log, customersRepo, usersRepo),
		Destinations:  destinations.NewService(log, destinationsRepo, sanitizer),
		Packages:      packages.NewService(log, packagesRepo, destinationsRepo, sanitizer),
		Bookings:      bookings.NewService(log, bookingsRepo, customersRepo, packagesRepo),
		Payments:      payments.NewService(log, paymentsRepo, bookingsRepo, sanitizer),
		Notifications: notifications.NewService(log, notificationsRepo, usersRepo, sanitizer),
		Dashboard:     dashboard.NewService(log, db, bookingsRepo, paymentsRepo),
		Uploads:       uploadsSvc,
	}

	return &testServer{
		server:    NewServer(log, i18n.NewTranslator(), tokens, svc),
		usersRepo: usersRepo,
		tokens:    tokens,
	}
}

// seedUser creates an account directly and returns a bearer token for it.
func (ts *testServer) seedUser(t *testing.T, email string, role models.UserRole, lang string) (*models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("long-enough"), 4)
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		LanguageID:   lang,
	}
	require.NoError(t, ts.usersRepo.Create(context.Background(), user))

	token, err := ts.tokens.Issue(user)
	require.NoError(t, err)
	return user, token
}

func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.server.Router().ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.do(t, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPublicDestinationsList(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/destinations", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.IsSuccess)
}

func TestPublicMissingDestinationIsTranslated(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/destinations/00000000-0000-0000-0000-000000000001", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DESTINATION_NOT_FOUND", env.Error)
	assert.Equal(t, "Destination not found", env.Message)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", env.Error)
	assert.Equal(t, "You are not authorized to perform this action", env.Message)
}

func TestRoleGuardRejectsClient(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.seedUser(t, "client@example.com", models.RoleClient, "en")

	rec, env := ts.do(t, http.MethodGet, "/api/v1/users", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error)
}

func TestRegisterLoginFlow(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"email": "new@example.com", "password": "long-enough"}
	rec, env := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.IsSuccess)

	rec, env = ts.do(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", env.Error)

	rec, env = ts.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "new@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error)
}

func TestCreateUserValidation(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.seedUser(t, "admin@example.com", models.RoleAdmin, "en")

	rec, env := ts.do(t, http.MethodPost, "/api/v1/users", token, map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_USER_DATA", env.Error)
	assert.NotNil(t, env.ErrorDetails)
}

func TestUserLifecycleAsAdmin(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.seedUser(t, "admin@example.com", models.RoleAdmin, "en")

	rec, env := ts.do(t, http.MethodPost, "/api/v1/users", token, map[string]interface{}{
		"email": "agent@example.com", "password": "long-enough", "role": "AGENT",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, env.IsSuccess)
	assert.Equal(t, "User created successfully", env.Message)

	var created models.User
	require.NoError(t, json.Unmarshal(env.Data, &created))
	// The password hash never leaves the API.
	assert.NotContains(t, string(env.Data), "password")

	rec, env = ts.do(t, http.MethodDelete, "/api/v1/users/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User deleted successfully", env.Message)

	rec, env = ts.do(t, http.MethodDelete, "/api/v1/users/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", env.Error)
}

func TestDestinationConflictAsAdmin(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.seedUser(t, "admin@example.com", models.RoleAdmin, "en")

	body := map[string]string{"country": "Morocco"}
	rec, _ := ts.do(t, http.MethodPost, "/api/v1/destinations", token, body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, env := ts.do(t, http.MethodPost, "/api/v1/destinations", token, body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DESTINATION_COUNTRY_ALREADY_EXISTS", env.Error)
}

func TestFrenchLocaleFollowsUserLanguage(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.seedUser(t, "admin@example.com", models.RoleAdmin, "fr")

	rec, env := ts.do(t, http.MethodGet, "/api/v1/users/00000000-0000-0000-0000-000000000002", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", env.Error)
	assert.Equal(t, "Utilisateur introuvable", env.Message)
}

func TestUnknownUserLanguageWidensToEnglish(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.seedUser(t, "admin@example.com", models.RoleAdmin, "de")

	_, env := ts.do(t, http.MethodGet, "/api/v1/users/00000000-0000-0000-0000-000000000002", token, nil)
	assert.Equal(t, "User not found", env.Message)
}

func TestUploadLifecycle(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.seedUser(t, "admin@example.com", models.RoleAdmin, "en")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	ts.server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var file uploads.UploadedFile
	require.NoError(t, json.Unmarshal(env.Data, &file))
	assert.Contains(t, file.FileName, "photo.png")

	delRec, delEnv := ts.do(t, http.MethodDelete, "/api/v1/uploads/"+file.FileName, token, nil)
	assert.Equal(t, http.StatusOK, delRec.Code)
	assert.True(t, delEnv.IsSuccess)

	delRec, delEnv = ts.do(t, http.MethodDelete, "/api/v1/uploads/"+file.FileName, token, nil)
	assert.Equal(t, http.StatusNotFound, delRec.Code)
	assert.Equal(t, "FILE_NOT_FOUND", delEnv.Error)
}

func TestUploadRejectsNonImage(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.seedUser(t, "admin@example.com", models.RoleAdmin, "en")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="report.pdf"`)
	header.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	ts.server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", env.Error)
}

func TestDashboardStats(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.seedUser(t, "agent@example.com", models.RoleAgent, "en")

	rec, env := ts.do(t, http.MethodGet, "/api/v1/dashboard/stats", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.IsSuccess)

	var stats dashboard.Stats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(1), stats.Users.Total)
}
