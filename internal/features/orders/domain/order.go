package domain

import (
	"errors"
	"time"
)

// OrderStatus is the fulfilment state an administrator assigns to an order.
// Any status may be set from any other; the backend is the system of record.
type OrderStatus string

const (
	OrderStatusPlaced          OrderStatus = "Order Placed"
	OrderStatusPacking         OrderStatus = "Packing"
	OrderStatusShipped         OrderStatus = "Shipped"
	OrderStatusOutForDelivery  OrderStatus = "Out for delivery"
	OrderStatusDelivered       OrderStatus = "Delivered"
	OrderStatusTopPriority     OrderStatus = "Top Priority"
	OrderStatusCancelled       OrderStatus = "Cancelled"
	OrderStatusCancelAndRefund OrderStatus = "Cancel and Refund"
)

// Statuses lists every valid OrderStatus in display order.
var Statuses = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusPacking,
	OrderStatusShipped,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusTopPriority,
	OrderStatusCancelled,
	OrderStatusCancelAndRefund,
}

var (
	// ErrInvalidStatus is returned for a status outside Statuses.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrOrderIDRequired is returned when a command has no order id.
	ErrOrderIDRequired = errors.New("order id is required")
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Address is the shipping and contact record of an order. It is passed through untouched.
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Zipcode   string `json:"zipcode"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// LineItem is one product line within an order.
type LineItem struct {
	// ProductID weakly references a catalog product; only used to look up a display image.
	ProductID string `json:"product_id,omitempty"`
	Name      string `json:"name"`
	// Price is the list unit price at the time of order.
	Price float64 `json:"price"`
	// Discount is a percentage; zero when the backend omits it.
	Discount float64 `json:"discount"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size,omitempty"`
	// Image is the image stored on the line itself, if any.
	Image string `json:"image,omitempty"`
}

// EffectiveUnitPrice is the discounted and rounded unit price of the line.
func (i LineItem) EffectiveUnitPrice() int64 {
	return EffectiveUnitPrice(i.Price, i.Discount)
}

// Total is the effective unit price times the quantity.
func (i LineItem) Total() int64 {
	return i.EffectiveUnitPrice() * int64(i.Quantity)
}

// Order is one purchase transaction as read from the backend.
type Order struct {
	ID    string     `json:"id"`
	Items []LineItem `json:"items"`
	// Amount is the total the backend recorded at checkout, before any reconciliation.
	Amount        float64     `json:"amount"`
	Address       Address     `json:"address"`
	PaymentMethod string      `json:"payment_method"`
	Payment       bool        `json:"payment"`
	Status        OrderStatus `json:"status"`
	Date          time.Time   `json:"date"`
	AdminNotes    string      `json:"admin_notes,omitempty"`
	UserNotes     string      `json:"user_notes,omitempty"`
	TrackingURL   string      `json:"tracking_url,omitempty"`
}

// ActualTotal recomputes the order total from its line items. It is never stored.
func (o Order) ActualTotal() int64 {
	return ActualTotal(o.Items)
}

// CalendarDate formats t as YYYY-MM-DD in loc.
func CalendarDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.DateOnly)
}
