package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client := NewClient(Options{BaseURL: ts.URL + "/", Logger: zerolog.Nop()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestClient_URL(t *testing.T) {
	client := NewClient(Options{BaseURL: "https://example.org/public/collection/v1/"})
	defer client.Close()

	assert.Equal(t, "https://example.org/public/collection/v1/departments", client.URL("departments"))
	assert.Equal(t, "https://example.org/public/collection/v1/objects/42", client.URL("/objects/42"))
}

func TestClient_Fetch_DecodesObject(t *testing.T) {
	var gotPath, gotQuery, gotAgent string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total": 2, "objectIDs": [1, 2]}`))
	})

	payload := client.Fetch(context.Background(), "search", map[string]string{"q": "sunflowers"})

	require.False(t, payload.Empty())
	assert.Equal(t, "/search", gotPath)
	assert.Equal(t, "sunflowers", gotQuery)
	assert.Equal(t, DefaultUserAgent, gotAgent)

	var out struct {
		Total     int   `json:"total"`
		ObjectIDs []int `json:"objectIDs"`
	}
	require.NoError(t, payload.Decode(&out))
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, []int{1, 2}, out.ObjectIDs)
}

func TestClient_Fetch_FailuresYieldEmptyPayload(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"message": "boom"}`},
		{name: "not found", status: http.StatusNotFound, body: `{"message": "Not a valid object"}`},
		{name: "malformed json", status: http.StatusOK, body: `{"departments": [`},
		{name: "json array", status: http.StatusOK, body: `[1, 2, 3]`},
		{name: "json null", status: http.StatusOK, body: `null`},
		{name: "empty body", status: http.StatusOK, body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			payload := client.Fetch(context.Background(), "departments", nil)
			assert.True(t, payload.Empty())
			assert.NotNil(t, payload)
		})
	}
}

func TestClient_Fetch_ConnectionRefused(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	client := NewClient(Options{BaseURL: url, Logger: zerolog.Nop()})
	defer client.Close()

	assert.True(t, client.Fetch(context.Background(), "departments", nil).Empty())
}

func TestClient_Get_TypedErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Get(context.Background(), "objects/1", nil)
	require.Error(t, err)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, http.StatusBadGateway, transportErr.StatusCode)
	assert.Equal(t, "objects/1", transportErr.Endpoint)
	assert.True(t, errors.Is(err, &TransportError{}))
	assert.False(t, errors.Is(err, &DecodeError{}))
}

func TestClient_Get_CancelledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "departments", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &TransportError{}))
}

func TestDecodeError_Message(t *testing.T) {
	err := &DecodeError{Endpoint: "search", Err: errors.New("unexpected end of JSON input")}
	assert.Equal(t, "could not decode response from search: unexpected end of JSON input", err.Error())
	assert.True(t, errors.Is(err, &DecodeError{}))
}

func TestPayload_Decode_MissingFields(t *testing.T) {
	var out struct {
		Title *string `json:"title"`
	}
	require.NoError(t, Payload{}.Decode(&out))
	assert.Nil(t, out.Title)
}
