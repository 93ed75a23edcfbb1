package topdesk_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fourkey/topdesk-gateway/pkg/topdesk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *topdesk.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := topdesk.NewClient(topdesk.Config{
		BaseURL:  server.URL,
		Username: "api-user",
		Password: "api-key",
	})
	require.NoError(t, err)
	return client
}

func TestNewClientValidation(t *testing.T) {
	_, err := topdesk.NewClient(topdesk.Config{
		BaseURL:  "https://example.topdesk.net/tas/api",
		Username: "api-user",
	})
	assert.Error(t, err, "missing password must fail construction")

	_, err = topdesk.NewClient(topdesk.Config{
		Username: "api-user",
		Password: "api-key",
	})
	assert.Error(t, err, "missing base URL must fail construction")
}

func TestRequestCarriesAuthAndAccept(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "api-user", username)
		assert.Equal(t, "api-key", password)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		json.NewEncoder(w).Encode([]topdesk.Record{})
	})

	_, err := client.ListIncidents(context.Background(), nil)
	require.NoError(t, err)
}

func TestBaseURLTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/incidents", r.URL.Path)
		json.NewEncoder(w).Encode([]topdesk.Record{})
	}))
	defer server.Close()

	client, err := topdesk.NewClient(topdesk.Config{
		BaseURL:  server.URL + "/",
		Username: "api-user",
		Password: "api-key",
	})
	require.NoError(t, err)

	_, err = client.ListIncidents(context.Background(), nil)
	require.NoError(t, err)
}

func TestUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "something broke", http.StatusInternalServerError)
	})

	_, err := client.ListIncidents(context.Background(), nil)
	require.Error(t, err)

	var apiErr *topdesk.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "something broke")
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := topdesk.NewClient(topdesk.Config{
		BaseURL:  server.URL,
		Username: "api-user",
		Password: "api-key",
	})
	require.NoError(t, err)

	_, err = client.ListIncidents(context.Background(), nil)
	require.Error(t, err)

	var apiErr *topdesk.Error
	assert.False(t, errors.As(err, &apiErr), "transport errors are not API errors")
}
