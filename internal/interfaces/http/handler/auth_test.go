package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	identityapp "github.com/tabledash/backend/internal/application/identity"
	"github.com/tabledash/backend/internal/domain/identity"
	"github.com/tabledash/backend/internal/domain/shared"
	"github.com/tabledash/backend/internal/infrastructure/auth"
	"github.com/tabledash/backend/internal/infrastructure/config"
	"github.com/tabledash/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAccountRepo is an in-memory identity.AccountRepository
type fakeAccountRepo struct {
	accounts map[int64]*identity.Account
	nextID   int64
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[int64]*identity.Account)}
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id int64) (*identity.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (r *fakeAccountRepo) FindByUsername(_ context.Context, username string) (*identity.Account, error) {
	for _, account := range r.accounts {
		if account.Username == username {
			copied := *account
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeAccountRepo) FindPage(_ context.Context, filter shared.Filter) ([]identity.Account, int64, error) {
	var all []identity.Account
	for _, account := range r.accounts {
		all = append(all, *account)
	}
	return all, int64(len(all)), nil
}

func (r *fakeAccountRepo) Create(_ context.Context, account *identity.Account) error {
	for _, existing := range r.accounts {
		if existing.Username == account.Username {
			return shared.NewDomainError("ALREADY_EXISTS", "Username already exists")
		}
	}
	r.nextID++
	account.ID = r.nextID
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *identity.Account) error {
	if _, ok := r.accounts[account.ID]; !ok {
		return shared.ErrNotFound
	}
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.accounts[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.accounts, id)
	return nil
}

type authFixture struct {
	engine *gin.Engine
	repo   *fakeAccountRepo
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	repo := newFakeAccountRepo()
	tokens, err := auth.NewTokenService(config.JWTConfig{
		Secret:     "handler-test-secret",
		Expiration: time.Hour,
	})
	require.NoError(t, err)

	blacklist := auth.NewMemoryTokenBlacklist()
	authService := identityapp.NewAuthService(repo, tokens, blacklist, nil, zap.NewNop())
	authHandler := NewAuthHandler(authService, config.CookieConfig{
		Name:     "token",
		Path:     "/",
		SameSite: "lax",
	})

	session := middleware.SessionConfig{
		Tokens:     tokens,
		Blacklist:  blacklist,
		CookieName: "token",
	}

	engine := gin.New()
	api := engine.Group("/api")
	authRoutes := api.Group("/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/logout", middleware.OptionalSession(session), authHandler.Logout)
	authRoutes.GET("/verify", middleware.RequireSession(session), authHandler.Verify)
	authRoutes.GET("/me", middleware.RequireSession(session), authHandler.Me)
	api.POST("/register", authHandler.Register)

	return &authFixture{engine: engine, repo: repo}
}

func (f *authFixture) seedAccount(t *testing.T, username, password string, role identity.Role) *identity.Account {
	t.Helper()
	account, err := identity.NewAccount("Jane", "Doe", "Female", username, password, role)
	require.NoError(t, err)
	require.NoError(t, f.repo.Create(context.Background(), account))
	return account
}

func (f *authFixture) request(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	f.engine.ServeHTTP(recorder, req)
	return recorder
}

func sessionCookie(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == "token" {
			return cookie
		}
	}
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	fixture := newAuthFixture(t)
	fixture.seedAccount(t, "janedoe", "secret123", identity.RoleAdmin)

	recorder := fixture.request(http.MethodPost, "/api/auth/login",
		`{"username":"janedoe","password":"secret123"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)

	cookie := sessionCookie(t, recorder)
	require.NotNil(t, cookie, "login must set the session cookie")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Greater(t, cookie.MaxAge, 0)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Admin   struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"admin"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Login successful", body.Message)
	assert.Equal(t, "janedoe", body.Admin.Username)
	assert.Equal(t, "admin", body.Admin.Role)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	fixture := newAuthFixture(t)
	fixture.seedAccount(t, "janedoe", "secret123", identity.RoleAdmin)

	wrongPassword := fixture.request(http.MethodPost, "/api/auth/login",
		`{"username":"janedoe","password":"wrong"}`)
	unknownUser := fixture.request(http.MethodPost, "/api/auth/login",
		`{"username":"nobody","password":"secret123"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())
	assert.Contains(t, wrongPassword.Body.String(), "Invalid username or password")
	assert.Nil(t, sessionCookie(t, wrongPassword), "failed login must not set a cookie")
}

func TestLoginRequiresCredentials(t *testing.T) {
	fixture := newAuthFixture(t)

	recorder := fixture.request(http.MethodPost, "/api/auth/login", `{"username":"janedoe"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Username and password are required")
}

func TestVerifyWithValidSession(t *testing.T) {
	fixture := newAuthFixture(t)
	fixture.seedAccount(t, "janedoe", "secret123", identity.RoleAdmin)

	login := fixture.request(http.MethodPost, "/api/auth/login",
		`{"username":"janedoe","password":"secret123"}`)
	cookie := sessionCookie(t, login)
	require.NotNil(t, cookie)

	recorder := fixture.request(http.MethodGet, "/api/auth/verify", "", cookie)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Token is valid")
}

func TestVerifyWithoutCookie(t *testing.T) {
	fixture := newAuthFixture(t)

	recorder := fixture.request(http.MethodGet, "/api/auth/verify", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"success":false,"message":"Access token is missing"}`, recorder.Body.String())
}

func TestVerifyAfterAccountDeletion(t *testing.T) {
	fixture := newAuthFixture(t)
	account := fixture.seedAccount(t, "janedoe", "secret123", identity.RoleAdmin)

	login := fixture.request(http.MethodPost, "/api/auth/login",
		`{"username":"janedoe","password":"secret123"}`)
	cookie := sessionCookie(t, login)
	require.NotNil(t, cookie)

	require.NoError(t, fixture.repo.Delete(context.Background(), account.ID))

	recorder := fixture.request(http.MethodGet, "/api/auth/verify", "", cookie)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid or expired token"}`, recorder.Body.String())
}

func TestLogoutRevokesSession(t *testing.T) {
	fixture := newAuthFixture(t)
	fixture.seedAccount(t, "janedoe", "secret123", identity.RoleAdmin)

	login := fixture.request(http.MethodPost, "/api/auth/login",
		`{"username":"janedoe","password":"secret123"}`)
	cookie := sessionCookie(t, login)
	require.NotNil(t, cookie)

	logout := fixture.request(http.MethodPost, "/api/auth/logout", "", cookie)
	assert.Equal(t, http.StatusOK, logout.Code)
	assert.Contains(t, logout.Body.String(), "Logged out successfully")

	cleared := sessionCookie(t, logout)
	require.NotNil(t, cleared, "logout must clear the cookie")
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)

	// The revoked token no longer passes session middleware.
	recorder := fixture.request(http.MethodGet, "/api/auth/verify", "", cookie)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestLogoutWithoutSessionStillClearsCookie(t *testing.T) {
	fixture := newAuthFixture(t)

	recorder := fixture.request(http.MethodPost, "/api/auth/logout", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	cleared := sessionCookie(t, recorder)
	require.NotNil(t, cleared)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestRegister(t *testing.T) {
	fixture := newAuthFixture(t)

	recorder := fixture.request(http.MethodPost, "/api/register",
		`{"firstName":"John","lastName":"Smith","gender":"Male","username":"johnsmith"}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Nil(t, sessionCookie(t, recorder), "registration must not start a session")

	var body struct {
		Success   bool `json:"success"`
		EmailSent bool `json:"emailSent"`
		User      struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.False(t, body.EmailSent, "no mailer is configured in this fixture")
	assert.Equal(t, "johnsmith", body.User.Username)
	assert.Equal(t, "user", body.User.Role)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	fixture := newAuthFixture(t)
	fixture.seedAccount(t, "johnsmith", "secret123", identity.RoleUser)

	recorder := fixture.request(http.MethodPost, "/api/register",
		`{"firstName":"John","lastName":"Smith","gender":"Male","username":"johnsmith"}`)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Username already exists")
}

func TestRegisterValidation(t *testing.T) {
	fixture := newAuthFixture(t)

	recorder := fixture.request(http.MethodPost, "/api/register",
		`{"firstName":"John","lastName":"Smith","gender":"Unknown","username":"johnsmith"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
