package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("")
	assert.Equal(t, DefaultBaseURL, client.BaseURL())
	assert.False(t, client.HasToken())
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://localhost:8000/api/v1/")
	assert.Equal(t, "http://localhost:8000/api/v1", client.BaseURL())
}

func TestSetBaseURLSwapsDeployment(t *testing.T) {
	client := NewClient("http://localhost:8000/api/v1")
	client.SetBaseURL("http://10.0.0.5:9000/api/v1")
	assert.Equal(t, "http://10.0.0.5:9000/api/v1", client.BaseURL())
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth, gotRequestID string
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))

	client := NewClient(server.URL)
	client.SetToken("test-token")

	var out struct{}
	require.NoError(t, client.Get(context.Background(), "/users/me", &out))

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.NotEmpty(t, gotRequestID, "every request should carry a correlation id")
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))

	client := NewClient(server.URL)

	var out struct{}
	require.NoError(t, client.Get(context.Background(), "/rewards/", &out))
	assert.Empty(t, gotAuth)
}

func TestResponseErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantDetail  string
	}{
		{
			name:        "401 session expired",
			status:      http.StatusUnauthorized,
			body:        `{"detail":"Could not validate credentials"}`,
			wantMessage: msgSessionGone,
			wantDetail:  "Could not validate credentials",
		},
		{
			name:        "403 admin only",
			status:      http.StatusForbidden,
			body:        `{"detail":"Admins only"}`,
			wantMessage: msgAdminOnly,
			wantDetail:  "Admins only",
		},
		{
			name:        "429 rate limited",
			status:      http.StatusTooManyRequests,
			body:        `{"detail":"slow down"}`,
			wantMessage: msgRateLimited,
			wantDetail:  "slow down",
		},
		{
			name:        "500 server error",
			status:      http.StatusInternalServerError,
			body:        `{"detail":"boom"}`,
			wantMessage: msgServerFailure,
			wantDetail:  "boom",
		},
		{
			name:        "422 validation falls back to backend detail",
			status:      http.StatusUnprocessableEntity,
			body:        `{"detail":"Client not found"}`,
			wantMessage: "Client not found",
			wantDetail:  "Client not found",
		},
		{
			name:        "400 without detail uses generic message",
			status:      http.StatusBadRequest,
			body:        `{}`,
			wantMessage: msgGeneric,
			wantDetail:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			client := NewClient(server.URL)

			var out struct{}
			err := client.Get(context.Background(), "/anything", &out)
			require.Error(t, err)

			apiErr, ok := AsError(err)
			require.True(t, ok, "gateway must return a normalized *Error")
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.UserMessage)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.False(t, apiErr.IsNetwork)
			assert.False(t, apiErr.IsTimeout)
		})
	}
}

func TestUnauthorizedClearsTokenSlot(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"token expired"}`))
	}))

	client := NewClient(server.URL)
	client.SetToken("stale-token")

	var out struct{}
	err := client.Get(context.Background(), "/users/me", &out)
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.True(t, apiErr.Unauthorized())
	assert.NotEmpty(t, apiErr.UserMessage)
	assert.False(t, client.HasToken(), "401 should clear the stored Authorization header")
}

func TestForbiddenKeepsTokenSlot(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	client := NewClient(server.URL)
	client.SetToken("valid-token")

	var out struct{}
	err := client.Get(context.Background(), "/reports/summary", &out)
	require.Error(t, err)
	assert.True(t, client.HasToken(), "non-401 failures must not touch the token")
}

func TestNetworkFailure(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL)

	var out struct{}
	err := client.Get(context.Background(), "/rewards/", &out)
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsNetwork)
	assert.False(t, apiErr.IsTimeout)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, msgNetwork, apiErr.UserMessage)
	assert.True(t, apiErr.Retryable())
}

func TestTimeoutDistinctFromNetworkFailure(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))

	client := NewClient(server.URL)
	client.SetTimeout(20 * time.Millisecond)

	var out struct{}
	err := client.Get(context.Background(), "/reports/summary", &out)
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsTimeout)
	assert.False(t, apiErr.IsNetwork)
	assert.Equal(t, msgTimeout, apiErr.UserMessage)
}

func TestPostSendsJSONBody(t *testing.T) {
	var got map[string]string
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))

	client := NewClient(server.URL)

	var out struct{}
	require.NoError(t, client.Post(context.Background(), "/points/add",
		map[string]string{"client_identifier": "abc-123"}, &out))
	assert.Equal(t, "abc-123", got["client_identifier"])
}

func TestDeleteDiscardsBody(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	client := NewClient(server.URL)
	require.NoError(t, client.Delete(context.Background(), "/rewards/7"))
}

func TestRetryableClassification(t *testing.T) {
	tests := []struct {
		name string
		err  Error
		want bool
	}{
		{"network", Error{IsNetwork: true}, true},
		{"timeout", Error{IsTimeout: true}, true},
		{"rate limited", Error{Status: http.StatusTooManyRequests}, true},
		{"server error", Error{Status: http.StatusBadGateway}, true},
		{"unauthorized", Error{Status: http.StatusUnauthorized}, false},
		{"validation", Error{Status: http.StatusUnprocessableEntity}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Retryable())
		})
	}
}
