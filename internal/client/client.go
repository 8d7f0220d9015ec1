// Package client is the Go client for the dashboard backend. It holds
// the session cookie, mirrors auth state in a persisted store and
// offers typed access to the paginated collections.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"
)

// Admin is the identity returned by the auth endpoints
type Admin struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// authEnvelope is the wire shape of login/verify/me responses
type authEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Admin   *Admin `json:"admin"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// APIError is a non-success response from the backend
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.StatusCode)
}

// Client talks to the backend. The cookie jar carries the session
// cookie across calls, mirroring a browser.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOption is a functional option for Client configuration
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client. The replacement
// should carry a cookie jar or the session will not stick.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		c.http = h
	}
}

// New creates a Client for the backend at baseURL
func New(baseURL string, opts ...ClientOption) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Login authenticates and stores the session cookie in the jar
func (c *Client) Login(ctx context.Context, username, password string) (*Admin, error) {
	body := map[string]string{"username": username, "password": password}
	var envelope authEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &envelope); err != nil {
		return nil, err
	}
	return envelope.Admin, nil
}

// Logout revokes the session server-side and drops the cookie
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}

// Verify asks the backend whether the held session is still valid
func (c *Client) Verify(ctx context.Context) (*Admin, error) {
	var envelope authEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Admin, nil
}

// Me returns the account behind the held session
func (c *Client) Me(ctx context.Context) (*Admin, error) {
	var envelope authEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Admin, nil
}

// ListParams are the query parameters of every list endpoint
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

func (p ListParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// PageInfo mirrors the backend's pagination block. The per-resource
// total key is captured by decoding into the matching field.
type PageInfo struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalUsers    int64 `json:"totalUsers"`
	TotalProducts int64 `json:"totalProducts"`
	TotalAdmins   int64 `json:"totalAdmins"`
	HasNextPage   bool  `json:"hasNextPage"`
	HasPrevPage   bool  `json:"hasPrevPage"`
	Limit         int   `json:"limit"`
}

// Total returns whichever per-resource total the backend sent
func (p PageInfo) Total() int64 {
	switch {
	case p.TotalUsers > 0:
		return p.TotalUsers
	case p.TotalProducts > 0:
		return p.TotalProducts
	default:
		return p.TotalAdmins
	}
}

// Page is one page of a listed collection
type Page[T any] struct {
	Items      []T
	Pagination PageInfo
}

type listEnvelope[T any] struct {
	Success    bool            `json:"success"`
	Data       []T             `json:"data"`
	Pagination PageInfo        `json:"pagination"`
	Message    json.RawMessage `json:"message"`
}

// list fetches one page of a collection
func list[T any](ctx context.Context, c *Client, path string, params ListParams) (*Page[T], error) {
	var envelope listEnvelope[T]
	if err := c.do(ctx, http.MethodGet, path, params.query(), nil, &envelope); err != nil {
		return nil, err
	}
	return &Page[T]{Items: envelope.Data, Pagination: envelope.Pagination}, nil
}

// User is a directory user record
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Gender       string `json:"gender"`
	Email        string `json:"email"`
	BirthDate    string `json:"birthDate"`
	ProfileImage string `json:"profileImage"`
}

// Product is a catalog item
type Product struct {
	ID                 int64   `json:"id"`
	Title              string  `json:"title"`
	Category           string  `json:"category"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Rating             float64 `json:"rating"`
	Stock              int     `json:"stock"`
	Brand              string  `json:"brand"`
	Image              string  `json:"image,omitempty"`
}

// ListUsers fetches one page of users
func (c *Client) ListUsers(ctx context.Context, params ListParams) (*Page[User], error) {
	return list[User](ctx, c, "/api/users", params)
}

// ListProducts fetches one page of products
func (c *Client) ListProducts(ctx context.Context, params ListParams) (*Page[Product], error) {
	return list[Product](ctx, c, "/api/products", params)
}

// ListLocalProducts fetches one page of local products
func (c *Client) ListLocalProducts(ctx context.Context, params ListParams) (*Page[Product], error) {
	return list[Product](ctx, c, "/api/local-products", params)
}

// ListAdmins fetches one page of accounts
func (c *Client) ListAdmins(ctx context.Context, params ListParams) (*Page[Admin], error) {
	return list[Admin](ctx, c, "/api/admins", params)
}

// do executes one request and decodes the response into out. Non-2xx
// responses become *APIError carrying the backend's message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure errorEnvelope
		_ = json.Unmarshal(data, &failure)
		return &APIError{StatusCode: resp.StatusCode, Message: failure.Message}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
