package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"admin-console/internal/core/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *BackendAdapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewBackendAdapter(httpclient.NewAPIClient(server.URL, time.Second))
}

func TestBackendAdapter_ListMedia(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/media/list", r.URL.Path)
		w.Write([]byte(`{"success":true,"media":[
			{"_id":"m1","image":"https://cdn.test/m1.jpg","caption":"Opening day","createdAt":"2025-03-01T10:30:00Z"},
			{"_id":"m2","image":["https://cdn.test/m2.jpg"],"createdAt":1740825000000}
		]}`))
	})

	items, err := adapter.ListMedia(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Opening day", items[0].Caption)
	assert.Equal(t, "https://cdn.test/m2.jpg", items[1].Image)
	assert.True(t, items[0].CreatedAt.Equal(items[1].CreatedAt))
}

func TestBackendAdapter_DeleteMedia(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/media/m1", r.URL.Path)
			assert.Equal(t, "tok", r.Header.Get("token"))
			w.Write([]byte(`{"success":true}`))
		})

		require.NoError(t, adapter.DeleteMedia(context.Background(), "tok", "m1"))
	})

	t.Run("HTTPError", func(t *testing.T) {
		adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"Not found"}`))
		})

		err := adapter.DeleteMedia(context.Background(), "tok", "m9")
		require.Error(t, err)

		be, ok := httpclient.AsBackendError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, be.StatusCode)
	})
}
