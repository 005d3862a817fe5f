package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_SendsPayload_And_ReturnsBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var m map[string]any
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			t.Errorf("bad json: %v", err)
		}
		assert.Equal(t, float64(1), m["x"]) // JSON number → float64
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	resp, body, err := DoJSON(context.Background(), ts.Client(), http.MethodPost, ts.URL+"/api", map[string]any{"x": 1})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestDoJSON_NoPayloadHasNoContentType(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	resp, body, err := DoJSON(context.Background(), ts.Client(), http.MethodDelete, ts.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, body)
}

func TestDoJSON_Non2xxIsStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer ts.Close()

	_, _, err := DoJSON(context.Background(), ts.Client(), http.MethodGet, ts.URL, nil)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Equal(t, "not found", se.Body)
	assert.Contains(t, se.Error(), "404")
}

func TestDoJSON_JSONMarshalError(t *testing.T) {
	// a chan in the payload makes json.Marshal fail
	_, _, err := DoJSON(context.Background(), http.DefaultClient, http.MethodPost, "http://example.invalid", map[string]any{"c": make(chan int)})
	assert.Error(t, err)
}

func TestDoJSON_NetworkError(t *testing.T) {
	_, _, err := DoJSON(context.Background(), http.DefaultClient, http.MethodGet, "http://127.0.0.1:1", nil)
	assert.Error(t, err)
	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestDoJSON_CancelledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := DoJSON(ctx, ts.Client(), http.MethodGet, ts.URL, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
