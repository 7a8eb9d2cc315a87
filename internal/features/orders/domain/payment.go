package domain

import "strings"

// PaymentStatus is the settlement outcome derived from an order.
type PaymentStatus string

const (
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Classifier derives payment status from order status and payment details.
// The set of payment methods that need gateway confirmation is fixed at construction.
type Classifier struct {
	gateways map[string]struct{}
}

// NewClassifier creates a Classifier. Method names are matched case-insensitively.
func NewClassifier(gatewayMethods ...string) *Classifier {
	gateways := make(map[string]struct{}, len(gatewayMethods))
	for _, m := range gatewayMethods {
		gateways[strings.ToLower(strings.TrimSpace(m))] = struct{}{}
	}
	return &Classifier{gateways: gateways}
}

// IsGateway reports whether method is settled by an online gateway.
func (c *Classifier) IsGateway(method string) bool {
	_, ok := c.gateways[strings.ToLower(strings.TrimSpace(method))]
	return ok
}

// Classify returns the payment status of o. First matching rule wins:
// refunded, cancelled, delivered (paid on delivery), confirmed gateway capture, else pending.
func (c *Classifier) Classify(o Order) PaymentStatus {
	switch {
	case o.Status == OrderStatusCancelAndRefund:
		return PaymentStatusRefunded
	case o.Status == OrderStatusCancelled:
		return PaymentStatusCancelled
	case o.Status == OrderStatusDelivered:
		return PaymentStatusPaid
	case c.IsGateway(o.PaymentMethod) && o.Payment:
		return PaymentStatusPaid
	default:
		return PaymentStatusPending
	}
}

// Listable reports whether o belongs in order listings.
// Gateway orders whose capture was never confirmed are abandoned checkouts and are hidden.
// Analytics does not use this predicate.
func (c *Classifier) Listable(o Order) bool {
	return !(c.IsGateway(o.PaymentMethod) && !o.Payment)
}
