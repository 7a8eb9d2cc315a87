package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"admin-console/internal/core/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductAdapter_Images(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/api/product/single", r.URL.Path)
		assert.Equal(t, "tok", r.Header.Get("token"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch body["productId"] {
		case "p1":
			w.Write([]byte(`{"success":true,"product":{"image":["p1-front.jpg","p1-back.jpg"]}}`))
		case "p2":
			w.Write([]byte(`{"success":true,"product":{"image":"p2.jpg"}}`))
		case "p3":
			w.Write([]byte(`{"success":true,"product":{"image":[]}}`))
		case "p4":
			w.Write([]byte(`{"success":false,"message":"Product not found"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	adapter := NewProductAdapter(httpclient.NewAPIClient(server.URL, time.Second), 2)

	images := adapter.Images(context.Background(), "tok", []string{"p1", "p2", "p3", "p4", "p5"})

	assert.Equal(t, map[string]string{"p1": "p1-front.jpg", "p2": "p2.jpg"}, images)
	assert.Equal(t, int32(5), calls.Load())
}

func TestProductAdapter_Images_Empty(t *testing.T) {
	adapter := NewProductAdapter(httpclient.NewAPIClient("http://127.0.0.1:1", time.Second), 0)

	images := adapter.Images(context.Background(), "tok", nil)
	assert.Empty(t, images)
}
