package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fidelizaplus/gestao/internal/log"
)

// DefaultBaseURL is the hosted Fideliza+ backend.
const DefaultBaseURL = "https://fideliza-backend.onrender.com/api/v1"

// DefaultTimeout bounds every request. Generous because the hosted backend
// cold-starts after idle periods.
const DefaultTimeout = 30 * time.Second

// Client is the single configured entry point to the Fideliza+ backend.
// All requests go through it; it attaches the bearer token and normalizes
// every failure into *Error. The token slot is mutated only by the session
// store.
type Client struct {
	mu         sync.RWMutex
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a gateway client for the given base URL. An empty
// baseURL selects the hosted backend.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     log.DefaultLogger(),
	}
}

// SetTimeout overrides the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.httpClient.Timeout = d
}

// SetLogger overrides the client logger.
func (c *Client) SetLogger(logger *log.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = logger
}

// SetBaseURL repoints the client at a different deployment.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetToken installs the bearer token used on every subsequent request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the bearer token.
func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// HasToken reports whether a bearer token is currently installed.
func (c *Client) HasToken() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

// Patch issues a PATCH request with a JSON body and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE request. The response body, if any, is discarded.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// PostForm issues a POST with a form-encoded body (the token endpoint is
// password-grant style and does not accept JSON).
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.send(req, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	c.mu.RLock()
	base := c.baseURL
	token := c.token
	c.mu.RUnlock()

	req, err := http.NewRequestWithContext(ctx, method, base+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// send performs the request and applies the response interceptor: a 2xx
// response is decoded into out, anything else becomes a *Error.
func (c *Client) send(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		transportErr := c.transportError(err)
		c.logger.Debug("request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"request_id", req.Header.Get("X-Request-ID"),
			"timeout", transportErr.IsTimeout,
			"elapsed", time.Since(start))
		return transportErr
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"request_id", req.Header.Get("X-Request-ID"),
		"elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.responseError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// transportError classifies a failure that produced no HTTP response.
func (c *Client) transportError(err error) *Error {
	isTimeout := false

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		isTimeout = true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		isTimeout = true
	}

	return &Error{
		IsNetwork:   !isTimeout,
		IsTimeout:   isTimeout,
		UserMessage: userMessage(0, "", !isTimeout, isTimeout),
		Cause:       err,
	}
}

// backendDetail is the FastAPI-style error envelope.
type backendDetail struct {
	Detail string `json:"detail"`
}

// responseError normalizes a non-2xx response. A 401 clears the token slot
// so no further request goes out with a credential the backend already
// rejected; deciding to sign out stays with the session store.
func (c *Client) responseError(resp *http.Response) *Error {
	body, _ := io.ReadAll(resp.Body)

	var envelope backendDetail
	_ = json.Unmarshal(body, &envelope)

	if resp.StatusCode == http.StatusUnauthorized {
		c.ClearToken()
	}

	return &Error{
		Status:      resp.StatusCode,
		Detail:      envelope.Detail,
		UserMessage: userMessage(resp.StatusCode, envelope.Detail, false, false),
	}
}
