package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBackendStub serves the subset of the API the client tests need:
// cookie-based login, verify, and a paginated user list.
func newBackendStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Password != "secret123" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Invalid username or password"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "session-token", Path: "/", HttpOnly: true})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Login successful",
			"admin":   map[string]any{"id": 7, "username": body.Username, "role": "admin"},
		})
	})

	mux.HandleFunc("/api/auth/verify", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		cookie, err := r.Cookie("token")
		if err != nil || cookie.Value != "session-token" {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Invalid or expired token"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Token is valid",
			"admin":   map[string]any{"id": 7, "username": "janedoe", "role": "admin"},
		})
	})

	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := r.Cookie("token"); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Access token is missing"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"id": 11, "firstName": "Terry", "email": "terry@example.com"},
			},
			"pagination": map[string]any{
				"currentPage": 2,
				"totalPages":  3,
				"totalUsers":  25,
				"hasNextPage": true,
				"hasPrevPage": true,
				"limit":       10,
			},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClientLoginCarriesSessionCookie(t *testing.T) {
	server := newBackendStub(t)
	c, err := New(server.URL)
	require.NoError(t, err)

	admin, err := c.Login(context.Background(), "janedoe", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "janedoe", admin.Username)

	// Subsequent requests reuse the cookie from the jar.
	verified, err := c.Verify(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), verified.ID)
}

func TestClientLoginFailure(t *testing.T) {
	server := newBackendStub(t)
	c, err := New(server.URL)
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "janedoe", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid username or password", apiErr.Message)
}

func TestClientVerifyWithoutSession(t *testing.T) {
	server := newBackendStub(t)
	c, err := New(server.URL)
	require.NoError(t, err)

	_, err = c.Verify(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestClientListUsers(t *testing.T) {
	server := newBackendStub(t)
	c, err := New(server.URL)
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "janedoe", "secret123")
	require.NoError(t, err)

	page, err := c.ListUsers(context.Background(), ListParams{Page: 2, Limit: 10})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "terry@example.com", page.Items[0].Email)
	assert.Equal(t, 2, page.Pagination.CurrentPage)
	assert.Equal(t, int64(25), page.Pagination.Total())
	assert.True(t, page.Pagination.HasNextPage)
}

func TestListParamsQuery(t *testing.T) {
	q := ListParams{Page: 2, Limit: 10, Search: "terry"}.query()
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "10", q.Get("limit"))
	assert.Equal(t, "terry", q.Get("search"))

	empty := ListParams{}.query()
	assert.Empty(t, empty.Encode(), "zero params stay off the query string")
}
