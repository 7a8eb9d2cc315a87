package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"admin-console/internal/core/httpclient"
	"admin-console/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listOrdersResponseJSON = `{
	"success": true,
	"orders": [
		{
			"_id": "66f1a2",
			"items": [
				{"id": "p1", "name": "Whey Protein", "price": 1000, "discount": 10, "quantity": 2, "size": "1kg", "image": ["a.jpg", "b.jpg"]},
				{"name": "Gym Gloves", "price": 300, "quantity": 1, "image": "gloves.jpg"}
			],
			"amount": 2300,
			"address": {
				"firstName": "Asha",
				"lastName": "Rao",
				"street": "12 MG Road",
				"city": "Bengaluru",
				"state": "KA",
				"country": "India",
				"zipcode": 560001,
				"phone": "9845000000",
				"email": "asha@example.com"
			},
			"paymentMethod": "Razorpay",
			"payment": true,
			"status": "Shipped",
			"date": 1741600800000,
			"adminNotes": "fragile",
			"trackingUrl": "https://track.example.com/1"
		},
		{
			"_id": "66f1a3",
			"items": [],
			"address": {"firstName": "Vikram", "zipcode": "400001"},
			"paymentMethod": "COD",
			"payment": false,
			"status": "Order Placed",
			"date": "2025-03-11T09:30:00Z"
		}
	]
}`

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *BackendAdapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewBackendAdapter(httpclient.NewAPIClient(server.URL, time.Second))
}

// TestBackendAdapter_ListOrders_Success verifies order fetching and mapping.
func TestBackendAdapter_ListOrders_Success(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/order/list", r.URL.Path)
		assert.Equal(t, "admin-token", r.Header.Get("token"))
		w.Write([]byte(listOrdersResponseJSON))
	})

	orders, err := adapter.ListOrders(context.Background(), "admin-token")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	first := orders[0]
	assert.Equal(t, "66f1a2", first.ID)
	assert.Equal(t, domain.OrderStatusShipped, first.Status)
	assert.Equal(t, "Razorpay", first.PaymentMethod)
	assert.True(t, first.Payment)
	assert.Equal(t, 2300.0, first.Amount)
	assert.Equal(t, "fragile", first.AdminNotes)
	assert.Equal(t, "https://track.example.com/1", first.TrackingURL)
	assert.Equal(t, "560001", first.Address.Zipcode)
	assert.Equal(t, "Asha", first.Address.FirstName)
	assert.True(t, time.UnixMilli(1741600800000).Equal(first.Date))

	require.Len(t, first.Items, 2)
	assert.Equal(t, "p1", first.Items[0].ProductID)
	assert.Equal(t, 10.0, first.Items[0].Discount)
	assert.Equal(t, "a.jpg", first.Items[0].Image)
	assert.Equal(t, "1kg", first.Items[0].Size)
	assert.Equal(t, 0.0, first.Items[1].Discount)
	assert.Equal(t, "gloves.jpg", first.Items[1].Image)
	assert.Equal(t, int64(2100), first.ActualTotal())

	second := orders[1]
	assert.Equal(t, domain.OrderStatusPlaced, second.Status)
	assert.Equal(t, "400001", second.Address.Zipcode)
	assert.Empty(t, second.Items)
	assert.True(t, time.Date(2025, 3, 11, 9, 30, 0, 0, time.UTC).Equal(second.Date))
}

func TestBackendAdapter_ListOrders_Rejected(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"Not Authorized Login Again"}`))
	})

	orders, err := adapter.ListOrders(context.Background(), "bad")
	assert.Nil(t, orders)

	be, ok := httpclient.AsBackendError(err)
	require.True(t, ok)
	assert.Equal(t, "Not Authorized Login Again", be.Message)
}

func TestBackendAdapter_ListOrders_InvalidDate(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"orders":[{"_id":"x","date":"yesterday"}]}`))
	})

	_, err := adapter.ListOrders(context.Background(), "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list orders")
}

func TestBackendAdapter_Commands(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		call     func(a *BackendAdapter) error
		expected map[string]string
	}{
		{
			name: "SetStatus",
			path: "/api/order/status",
			call: func(a *BackendAdapter) error {
				return a.SetStatus(context.Background(), "tok", "o1", domain.OrderStatusPacking)
			},
			expected: map[string]string{"orderId": "o1", "status": "Packing"},
		},
		{
			name: "SetNotes",
			path: "/api/order/notes",
			call: func(a *BackendAdapter) error {
				return a.SetNotes(context.Background(), "tok", "o1", "call before delivery")
			},
			expected: map[string]string{"orderId": "o1", "adminNotes": "call before delivery"},
		},
		{
			name: "SetTrackingURL",
			path: "/api/order/tracking",
			call: func(a *BackendAdapter) error {
				return a.SetTrackingURL(context.Background(), "tok", "o1", "https://t.example/1")
			},
			expected: map[string]string{"orderId": "o1", "trackingUrl": "https://t.example/1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				assert.Equal(t, "tok", r.Header.Get("token"))

				body, _ := io.ReadAll(r.Body)
				var got map[string]string
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, tt.expected, got)

				w.Write([]byte(`{"success":true}`))
			})

			assert.NoError(t, tt.call(adapter))
		})
	}
}

func TestBackendAdapter_Command_Error(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"db down"}`))
	})

	err := adapter.SetStatus(context.Background(), "tok", "o1", domain.OrderStatusDelivered)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update status of order o1")

	be, ok := httpclient.AsBackendError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, be.StatusCode)
}

func TestBackendAdapter_Cancel(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/order/cancel", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		var got map[string]string
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "o9", got["orderId"])
		assert.Equal(t, "buyer@example.com", got["userEmail"])

		w.Write([]byte(`{"success":true,"message":"Order cancelled and customer notified"}`))
	})

	msg, err := adapter.Cancel(context.Background(), "tok", "o9", "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Order cancelled and customer notified", msg)
}
