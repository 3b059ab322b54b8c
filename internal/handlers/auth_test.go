package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/metrics"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/repository"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/service"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// =============================================================================
// Mocks
// =============================================================================

type mockAuthService struct {
	registerFunc      func(ctx context.Context, username, email, password string) (*models.User, error)
	loginFunc         func(ctx context.Context, email, password string) (*service.LoginResponse, error)
	registerAdminFunc func(ctx context.Context, username, email, password string) (*models.Admin, error)
	loginAdminFunc    func(ctx context.Context, email, password string) (*service.LoginResponse, error)
	authenticateFunc  func(ctx context.Context, token string) (*service.Claims, error)
	logoutFunc        func(ctx context.Context, token string) error
}

func (m *mockAuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	return m.registerFunc(ctx, username, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.LoginResponse, error) {
	return m.loginFunc(ctx, email, password)
}

func (m *mockAuthService) RegisterAdmin(ctx context.Context, username, email, password string) (*models.Admin, error) {
	return m.registerAdminFunc(ctx, username, email, password)
}

func (m *mockAuthService) LoginAdmin(ctx context.Context, email, password string) (*service.LoginResponse, error) {
	return m.loginAdminFunc(ctx, email, password)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*service.Claims, error) {
	return m.authenticateFunc(ctx, token)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.logoutFunc(ctx, token)
}

type mockActionLogRepository struct {
	entries []string
}

func (m *mockActionLogRepository) Log(ctx context.Context, action string, userID *int64, details map[string]interface{}) error {
	m.entries = append(m.entries, action)
	return nil
}

var _ service.AuthService = (*mockAuthService)(nil)
var _ repository.ActionLogRepository = (*mockActionLogRepository)(nil)

// =============================================================================
// Helpers
// =============================================================================

func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	c.Request = httptest.NewRequest(method, path, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var got map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return got
}

func newTestAuthHandler(svc *mockAuthService) (*AuthHandler, *mockActionLogRepository) {
	audit := &mockActionLogRepository{}
	return NewAuthHandler(svc, audit, metrics.New()), audit
}

// =============================================================================
// Register
// =============================================================================

func TestRegisterSuccess(t *testing.T) {
	svc := &mockAuthService{
		registerFunc: func(ctx context.Context, username, email, password string) (*models.User, error) {
			return &models.User{ID: 1, Username: username, Email: email}, nil
		},
	}
	handler, audit := newTestAuthHandler(svc)

	c, w := createTestContext(http.MethodPost, "/users/register", gin.H{
		"username": "john_doe",
		"email":    "john@example.com",
		"password": "secret123",
	})
	handler.Register(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	got := decodeBody(t, w)
	if got["username"] != "john_doe" {
		t.Errorf("expected username john_doe, got %v", got["username"])
	}
	if _, leaked := got["password_hash"]; leaked {
		t.Error("password hash must never appear in responses")
	}
	if len(audit.entries) != 1 || audit.entries[0] != repository.ActionRegister {
		t.Errorf("expected a register audit entry, got %v", audit.entries)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	handler, _ := newTestAuthHandler(&mockAuthService{})

	c, w := createTestContext(http.MethodPost, "/users/register", gin.H{
		"username": "john_doe",
	})
	handler.Register(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestRegisterInvalidEmail(t *testing.T) {
	handler, _ := newTestAuthHandler(&mockAuthService{})

	c, w := createTestContext(http.MethodPost, "/users/register", gin.H{
		"username": "john_doe",
		"email":    "not-an-email",
		"password": "secret123",
	})
	handler.Register(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc := &mockAuthService{
		registerFunc: func(ctx context.Context, username, email, password string) (*models.User, error) {
			return nil, repository.ErrDuplicate
		},
	}
	handler, _ := newTestAuthHandler(svc)

	c, w := createTestContext(http.MethodPost, "/users/register", gin.H{
		"username": "john_doe",
		"email":    "john@example.com",
		"password": "secret123",
	})
	handler.Register(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for duplicate registration, got %d", w.Code)
	}
}

// =============================================================================
// Login
// =============================================================================

func TestLoginSuccess(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (*service.LoginResponse, error) {
			return &service.LoginResponse{
				AccessToken: "token-abc",
				ExpiresIn:   86400,
				UserID:      7,
				Username:    "jane_smith",
			}, nil
		},
	}
	handler, audit := newTestAuthHandler(svc)

	c, w := createTestContext(http.MethodPost, "/users/login", gin.H{
		"email":    "jane@example.com",
		"password": "secret123",
	})
	handler.Login(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	got := decodeBody(t, w)
	if got["access_token"] != "token-abc" {
		t.Errorf("expected access token in response, got %v", got)
	}
	if len(audit.entries) != 1 || audit.entries[0] != repository.ActionLoginSuccess {
		t.Errorf("expected a login_success audit entry, got %v", audit.entries)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (*service.LoginResponse, error) {
			return nil, service.ErrInvalidCredentials
		},
	}
	handler, audit := newTestAuthHandler(svc)

	c, w := createTestContext(http.MethodPost, "/users/login", gin.H{
		"email":    "jane@example.com",
		"password": "wrong",
	})
	handler.Login(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
	if len(audit.entries) != 1 || audit.entries[0] != repository.ActionLoginFailure {
		t.Errorf("expected a login_failure audit entry, got %v", audit.entries)
	}
}

func TestLoginMalformedBody(t *testing.T) {
	handler, _ := newTestAuthHandler(&mockAuthService{})

	c, w := createTestContext(http.MethodPost, "/users/login", nil)
	handler.Login(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

// =============================================================================
// Logout
// =============================================================================

func TestLogoutSuccess(t *testing.T) {
	revoked := ""
	svc := &mockAuthService{
		logoutFunc: func(ctx context.Context, token string) error {
			revoked = token
			return nil
		},
	}
	handler, audit := newTestAuthHandler(svc)

	c, w := createTestContext(http.MethodPost, "/logout", nil)
	c.Request.Header.Set("Authorization", "Bearer token-abc")
	handler.Logout(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if revoked != "token-abc" {
		t.Errorf("expected presented token to be revoked, got %q", revoked)
	}
	got := decodeBody(t, w)
	if got["msg"] != "Logout successful" {
		t.Errorf("unexpected logout message: %v", got)
	}
	if len(audit.entries) != 1 || audit.entries[0] != repository.ActionLogout {
		t.Errorf("expected a logout audit entry, got %v", audit.entries)
	}
}

func TestLogoutMissingToken(t *testing.T) {
	handler, _ := newTestAuthHandler(&mockAuthService{})

	c, w := createTestContext(http.MethodPost, "/logout", nil)
	handler.Logout(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}
