package figmaapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const localVariables = `{
  "status": 200,
  "error": false,
  "meta": {
    "variableCollections": {
      "c1": {"id": "c1", "name": "Brand", "modes": [{"modeId": "m1", "name": "Default"}], "defaultModeId": "m1", "variableIds": ["1"]}
    },
    "variables": {
      "1": {"id": "1", "name": "Brand/Primary", "variableCollectionId": "c1", "resolvedType": "COLOR", "valuesByMode": {"m1": {"r": 1, "g": 0, "b": 0, "a": 1}}}
    }
  }
}`

func TestGetLocalVariables(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var gotPath, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Figma-Token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(localVariables))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Options{BaseURL: srv.URL, Token: "secret"})
	require.NoError(t, err)

	// --- Act ---
	resp, err := client.GetLocalVariables(context.Background(), "abc123")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "/v1/files/abc123/variables/local", gotPath)
	assert.Equal(t, "secret", gotToken)
	require.Contains(t, resp.Meta.Variables, "1")
	assert.Equal(t, "Brand/Primary", resp.Meta.Variables["1"].Name)
	assert.Equal(t, "Brand", resp.Meta.VariableCollections["c1"].Name)
}

func TestGetLocalVariables_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"status":403,"err":"Invalid token"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Options{BaseURL: srv.URL, Token: "bad"})
	require.NoError(t, err)

	resp, err := client.GetLocalVariables(context.Background(), "abc123")

	require.Error(t, err)
	assert.Nil(t, resp)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "Invalid token")
}

func TestGetLocalVariables_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(localVariables))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Options{BaseURL: srv.URL, Token: "secret", RetryCount: 2})
	require.NoError(t, err)

	// --- Act ---
	resp, err := client.GetLocalVariables(context.Background(), "abc123")

	// --- Assert ---
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetLocalVariables_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"meta":`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Options{BaseURL: srv.URL, Token: "secret"})
	require.NoError(t, err)

	_, err = client.GetLocalVariables(context.Background(), "abc123")

	require.Error(t, err)
}

func TestNewClient_Validation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		opts Options
	}{
		{name: "missing token", opts: Options{}},
		{name: "bad scheme", opts: Options{Token: "x", BaseURL: "ftp://example.com"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewClient(tc.opts)

			require.Error(t, err)
		})
	}
}

func TestGetLocalVariables_EmptyKey(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Options{Token: "secret"})
	require.NoError(t, err)

	_, err = client.GetLocalVariables(context.Background(), "")

	require.Error(t, err)
}
