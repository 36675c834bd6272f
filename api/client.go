package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Client executes requests against the learning platform API. It attaches the
// bearer token when one is set and converts failures into the typed errors in
// this package. It never persists or clears tokens itself; the session
// manager owns that.
type Client struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

// New creates a Client for the given origin. All request paths are relative
// to origin + "/api".
func New(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL + "/api").
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient}
}

// SetToken sets the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the in-memory bearer token.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the current in-memory bearer token, "" when absent.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Do executes one request and returns the raw response body. body may be nil;
// when authRequired is set and no token is present, the call fails locally
// with a 401 RequestError instead of hitting the network.
func (c *Client) Do(method, path string, body interface{}, authRequired bool) ([]byte, error) {
	return c.do(method, path, body, authRequired, c.Token())
}

// DoWithToken executes one authenticated request with an explicit bearer
// token, independent of the client's stored one. Used by logout, which
// revokes a token it has already cleared locally.
func (c *Client) DoWithToken(method, path string, body interface{}, token string) ([]byte, error) {
	return c.do(method, path, body, true, token)
}

func (c *Client) do(method, path string, body interface{}, authRequired bool, token string) ([]byte, error) {
	if authRequired && token == "" {
		return nil, &RequestError{
			StatusCode: http.StatusUnauthorized,
			Body:       ErrorBody{Message: "missing bearer token"},
		}
	}

	req := c.http.R().SetHeader("X-Request-ID", uuid.NewString())
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, &NetworkError{Op: method + " " + path, Err: err}
	}

	if resp.IsError() {
		reqErr := &RequestError{StatusCode: resp.StatusCode(), Raw: resp.Body()}
		// Best-effort parse of the error envelope; an unparseable body
		// leaves reqErr.Body empty.
		_ = json.Unmarshal(resp.Body(), &reqErr.Body)
		return nil, reqErr
	}

	return resp.Body(), nil
}

// Get is shorthand for Do with http.MethodGet and no body.
func (c *Client) Get(path string, authRequired bool) ([]byte, error) {
	return c.Do(http.MethodGet, path, nil, authRequired)
}

// Post is shorthand for Do with http.MethodPost.
func (c *Client) Post(path string, body interface{}, authRequired bool) ([]byte, error) {
	return c.Do(http.MethodPost, path, body, authRequired)
}

// Put is shorthand for Do with http.MethodPut.
func (c *Client) Put(path string, body interface{}, authRequired bool) ([]byte, error) {
	return c.Do(http.MethodPut, path, body, authRequired)
}

// Delete is shorthand for Do with http.MethodDelete and no body.
func (c *Client) Delete(path string, authRequired bool) ([]byte, error) {
	return c.Do(http.MethodDelete, path, nil, authRequired)
}
