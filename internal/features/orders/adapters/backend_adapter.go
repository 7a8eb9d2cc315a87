package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"admin-console/internal/core/httpclient"
	"admin-console/internal/core/logger"
	"admin-console/internal/features/orders/domain"

	"go.uber.org/zap"
)

// BackendAdapter implements ports.OrderBackend against the shop backend REST API.
type BackendAdapter struct {
	// client is the JSON client for the backend.
	client *httpclient.APIClient
}

// NewBackendAdapter creates a new instance of BackendAdapter.
func NewBackendAdapter(client *httpclient.APIClient) *BackendAdapter {
	return &BackendAdapter{
		client: client,
	}
}

// ListOrders fetches every order and maps it to the domain entity.
func (a *BackendAdapter) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var resp listOrdersResponse
	if err := a.client.Do(ctx, http.MethodPost, "/api/order/list", token, struct{}{}, &resp); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(resp.Orders))
	for _, o := range resp.Orders {
		orders = append(orders, mapToDomain(o))
	}

	logger.Named("orders.backend").Debug("Fetched orders", zap.Int("count", len(orders)))

	return orders, nil
}

// SetStatus updates the order status.
func (a *BackendAdapter) SetStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) error {
	body := map[string]string{"orderId": orderID, "status": string(status)}
	if err := a.client.Do(ctx, http.MethodPost, "/api/order/status", token, body, nil); err != nil {
		return fmt.Errorf("failed to update status of order %s: %w", orderID, err)
	}
	return nil
}

// SetNotes replaces the admin notes of an order.
func (a *BackendAdapter) SetNotes(ctx context.Context, token, orderID, notes string) error {
	body := map[string]string{"orderId": orderID, "adminNotes": notes}
	if err := a.client.Do(ctx, http.MethodPost, "/api/order/notes", token, body, nil); err != nil {
		return fmt.Errorf("failed to update notes of order %s: %w", orderID, err)
	}
	return nil
}

// SetTrackingURL replaces the tracking URL of an order.
func (a *BackendAdapter) SetTrackingURL(ctx context.Context, token, orderID, trackingURL string) error {
	body := map[string]string{"orderId": orderID, "trackingUrl": trackingURL}
	if err := a.client.Do(ctx, http.MethodPost, "/api/order/tracking", token, body, nil); err != nil {
		return fmt.Errorf("failed to update tracking of order %s: %w", orderID, err)
	}
	return nil
}

// Cancel cancels an order and lets the backend notify the customer.
func (a *BackendAdapter) Cancel(ctx context.Context, token, orderID, notifyEmail string) (string, error) {
	body := map[string]string{"orderId": orderID, "userEmail": notifyEmail}

	var resp httpclient.Envelope
	if err := a.client.Do(ctx, http.MethodPost, "/api/order/cancel", token, body, &resp); err != nil {
		return "", fmt.Errorf("failed to cancel order %s: %w", orderID, err)
	}
	return resp.Message, nil
}

// mapToDomain converts a raw backend order into a domain Order entity.
func mapToDomain(o backendOrder) domain.Order {
	items := make([]domain.LineItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, domain.LineItem{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Discount:  item.Discount,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Image:     string(item.Image),
		})
	}

	return domain.Order{
		ID:     o.ID,
		Items:  items,
		Amount: o.Amount,
		Address: domain.Address{
			FirstName: o.Address.FirstName,
			LastName:  o.Address.LastName,
			Street:    o.Address.Street,
			City:      o.Address.City,
			State:     o.Address.State,
			Country:   o.Address.Country,
			Zipcode:   string(o.Address.Zipcode),
			Phone:     string(o.Address.Phone),
			Email:     o.Address.Email,
		},
		PaymentMethod: o.PaymentMethod,
		Payment:       o.Payment,
		Status:        domain.OrderStatus(o.Status),
		Date:          time.Time(o.Date),
		AdminNotes:    o.AdminNotes,
		UserNotes:     o.UserNotes,
		TrackingURL:   o.TrackingURL,
	}
}
