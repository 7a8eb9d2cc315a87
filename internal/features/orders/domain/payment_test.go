package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier("Gateway", "Razorpay")

	tests := []struct {
		name  string
		order Order
		want  PaymentStatus
	}{
		{
			name:  "CancelAndRefundWinsOverPayment",
			order: Order{Status: OrderStatusCancelAndRefund, Payment: true, PaymentMethod: "Gateway"},
			want:  PaymentStatusRefunded,
		},
		{
			name:  "CancelAndRefundCashOnDelivery",
			order: Order{Status: OrderStatusCancelAndRefund, PaymentMethod: "COD"},
			want:  PaymentStatusRefunded,
		},
		{
			name:  "Cancelled",
			order: Order{Status: OrderStatusCancelled, Payment: true, PaymentMethod: "Razorpay"},
			want:  PaymentStatusCancelled,
		},
		{
			name:  "DeliveredCashOnDeliveryIsPaid",
			order: Order{Status: OrderStatusDelivered, Payment: false, PaymentMethod: "CashOnDelivery"},
			want:  PaymentStatusPaid,
		},
		{
			name:  "DeliveredUnconfirmedGatewayIsPaid",
			order: Order{Status: OrderStatusDelivered, Payment: false, PaymentMethod: "Gateway"},
			want:  PaymentStatusPaid,
		},
		{
			name:  "ConfirmedGateway",
			order: Order{Status: OrderStatusShipped, Payment: true, PaymentMethod: "Razorpay"},
			want:  PaymentStatusPaid,
		},
		{
			name:  "GatewayMatchIsCaseInsensitive",
			order: Order{Status: OrderStatusPacking, Payment: true, PaymentMethod: "razorpay"},
			want:  PaymentStatusPaid,
		},
		{
			name:  "UnconfirmedGatewayIsPending",
			order: Order{Status: OrderStatusPlaced, Payment: false, PaymentMethod: "Gateway"},
			want:  PaymentStatusPending,
		},
		{
			name:  "CashOnDeliveryWithPaymentFlagIsPending",
			order: Order{Status: OrderStatusOutForDelivery, Payment: true, PaymentMethod: "COD"},
			want:  PaymentStatusPending,
		},
		{
			name:  "TopPriorityCashOnDelivery",
			order: Order{Status: OrderStatusTopPriority, PaymentMethod: "COD"},
			want:  PaymentStatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.order))
		})
	}
}

func TestClassifier_NoGateways(t *testing.T) {
	c := NewClassifier()

	assert.False(t, c.IsGateway("Razorpay"))
	assert.Equal(t, PaymentStatusPending, c.Classify(Order{Status: OrderStatusPlaced, Payment: true, PaymentMethod: "Razorpay"}))
	assert.True(t, c.Listable(Order{PaymentMethod: "Razorpay"}))
}

func TestClassifier_Listable(t *testing.T) {
	c := NewClassifier("Razorpay")

	assert.True(t, c.Listable(Order{PaymentMethod: "COD", Payment: false}))
	assert.True(t, c.Listable(Order{PaymentMethod: "Razorpay", Payment: true}))
	assert.False(t, c.Listable(Order{PaymentMethod: "Razorpay", Payment: false}))
	assert.False(t, c.Listable(Order{PaymentMethod: " RAZORPAY ", Payment: false, Status: OrderStatusDelivered}))
}

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses {
		got, err := ParseStatus(string(s))
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("delivered")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
