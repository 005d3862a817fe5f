package api

import (
	"ItemKeeper/internal/cli/model"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a fake items server that counts calls per method and echoes bodies.
type recorder struct {
	mu     sync.Mutex
	calls  map[string]int
	paths  []string
	bodies []map[string]any
	nextID int64
}

func newRecorder() *recorder {
	return &recorder{calls: map[string]int{}, nextID: 7}
}

func (rec *recorder) count(method string) int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.calls[method]
}

func (rec *recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.calls[r.Method]++
	rec.paths = append(rec.paths, r.URL.Path)

	var body map[string]any
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}
	rec.bodies = append(rec.bodies, body)

	w.Header().Set("Content-Type", "application/json")
	switch r.Method {
	case http.MethodGet:
		_, _ = w.Write([]byte(`[{"id":2,"name":"B","description":"b"},{"id":1,"name":"First Item"}]`))
	case http.MethodPost:
		body["id"] = rec.nextID
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	case http.MethodPut:
		_ = json.NewEncoder(w).Encode(body)
	case http.MethodDelete:
		w.WriteHeader(http.StatusNoContent)
	}
}

func newTestClient(t *testing.T) (*Client, *recorder) {
	t.Helper()
	rec := newRecorder()
	ts := httptest.NewServer(rec)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL+"/", time.Second), rec
}

func TestClient_LoadItems_KeepsServerOrder(t *testing.T) {
	c, rec := newTestClient(t)

	items, err := c.LoadItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Item{
		{ID: 2, Name: "B", Description: "b"},
		{ID: 1, Name: "First Item"},
	}, items)
	assert.Equal(t, 1, rec.count(http.MethodGet))
	assert.Equal(t, []string{"/api/items"}, rec.paths)
}

func TestClient_SaveItem_RoutesByID(t *testing.T) {
	c, rec := newTestClient(t)
	ctx := context.Background()

	newItem := model.Item{Name: "New Item", Description: "Description"}
	existing := model.Item{ID: 1, Name: "Existing Item", Description: "Description"}

	_, err := c.SaveItem(ctx, newItem)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.count(http.MethodPost))
	assert.Equal(t, 0, rec.count(http.MethodPut))

	_, err = c.SaveItem(ctx, existing)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.count(http.MethodPost), "update must not create")
	assert.Equal(t, 1, rec.count(http.MethodPut))
}

func TestClient_CreateItem_SendsNoID(t *testing.T) {
	c, rec := newTestClient(t)

	got, err := c.CreateItem(context.Background(), model.Item{ID: 99, Name: "New", Description: "d"})
	require.NoError(t, err)
	assert.Equal(t, model.Item{ID: 7, Name: "New", Description: "d"}, got)

	require.Len(t, rec.bodies, 1)
	_, hasID := rec.bodies[0]["id"]
	assert.False(t, hasID, "create payload must not carry an id")
	assert.Equal(t, "/api/items", rec.paths[0])
}

func TestClient_UpdateItem_PutsAtResource(t *testing.T) {
	c, rec := newTestClient(t)

	in := model.Item{ID: 1, Name: "First Item Updated", Description: "Described"}
	got, err := c.UpdateItem(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, got)
	assert.Equal(t, []string{"/api/items/1"}, rec.paths)
}

func TestClient_DeleteItem(t *testing.T) {
	c, rec := newTestClient(t)

	err := c.DeleteItem(context.Background(), model.Item{ID: 1, Name: "First Item Updated"})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.count(http.MethodDelete))
	assert.Equal(t, []string{"/api/items/1"}, rec.paths)
}

func TestClient_ErrorsAreNotSwallowed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer ts.Close()
	c := NewClient(ts.URL, time.Second)
	ctx := context.Background()

	_, err := c.LoadItems(ctx)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Code)

	_, err = c.SaveItem(ctx, model.Item{Name: "x"})
	assert.True(t, errors.As(err, &se))
	_, err = c.SaveItem(ctx, model.Item{ID: 3, Name: "x"})
	assert.True(t, errors.As(err, &se))
	assert.True(t, errors.As(c.DeleteItem(ctx, model.Item{ID: 3}), &se))
}

func TestClient_BadJSONResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer ts.Close()
	c := NewClient(ts.URL, time.Second)

	_, err := c.LoadItems(context.Background())
	assert.Error(t, err)
	_, err = c.CreateItem(context.Background(), model.Item{Name: "x"})
	assert.Error(t, err)
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer ts.Close()
	defer close(release)

	c := NewClient(ts.URL, 50*time.Millisecond)
	_, err := c.LoadItems(context.Background())
	assert.Error(t, err)
}
