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

func TestClient_LoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "ada@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-123",
			"user":  map[string]string{"id": "u1", "email": "ada@example.com"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	user, err := c.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "tok-123", c.token)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "u1"})
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok-abc"))
	_, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestClient_DeleteHandlesNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := New(srv.URL, WithToken("t")).DeleteSimulation(context.Background(), "sim-1")
	assert.NoError(t, err)
}

func TestClient_ListSimulationsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "completed", q.Get("status"))
		require.Equal(t, "2", q.Get("page"))
		require.Equal(t, "10", q.Get("limit"))
		_ = json.NewEncoder(w).Encode(SimulationPage{})
	}))
	defer srv.Close()

	_, err := New(srv.URL, WithToken("t")).ListSimulations(context.Background(), ListSimulationsOptions{
		Status: "completed",
		Page:   2,
		Limit:  10,
	})
	assert.NoError(t, err)
}

func TestClient_ErrorIsNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "simulation quota exceeded"})
	}))
	defer srv.Close()

	_, err := New(srv.URL, WithToken("t")).StartSimulation(context.Background(), "sim-1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "quota_exceeded", apiErr.Code)
	assert.Equal(t, "simulation quota exceeded", apiErr.Message)
	assert.Equal(t, SeverityWarning, apiErr.Severity)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.HTTPStatus)
}

func TestNormalizeError(t *testing.T) {
	cases := []struct {
		status   int
		code     string
		severity string
	}{
		{http.StatusBadRequest, "bad_request", SeverityWarning},
		{http.StatusUnauthorized, "unauthenticated", SeverityError},
		{http.StatusForbidden, "forbidden", SeverityError},
		{http.StatusNotFound, "not_found", SeverityWarning},
		{http.StatusConflict, "conflict", SeverityWarning},
		{http.StatusRequestEntityTooLarge, "file_too_large", SeverityWarning},
		{http.StatusUnsupportedMediaType, "unsupported_file_type", SeverityWarning},
		{http.StatusTooManyRequests, "quota_exceeded", SeverityWarning},
		{http.StatusInternalServerError, "internal", SeverityError},
		{http.StatusBadGateway, "internal", SeverityError},
	}

	for _, tc := range cases {
		e := normalizeError(tc.status, "detail")
		assert.Equal(t, tc.code, e.Code, "status %d", tc.status)
		assert.Equal(t, tc.severity, e.Severity, "status %d", tc.status)
		assert.NotEmpty(t, e.UserMessage, "status %d", tc.status)
	}
}

// An empty server body still yields a usable message.
func TestNormalizeError_EmptyMessageFallsBack(t *testing.T) {
	e := normalizeError(http.StatusServiceUnavailable, "")
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), e.Message)
}
