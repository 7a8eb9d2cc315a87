package domain

import orders "admin-console/internal/features/orders/domain"

// Bucket is a count of orders and the sum of their actual totals.
type Bucket struct {
	Count  int   `json:"count"`
	Amount int64 `json:"amount"`
}

// PaymentBreakdown splits a set of orders by payment status.
type PaymentBreakdown struct {
	Paid      Bucket `json:"paid"`
	Pending   Bucket `json:"pending"`
	Refunded  Bucket `json:"refunded"`
	Cancelled Bucket `json:"cancelled"`
}

func (b *PaymentBreakdown) add(status orders.PaymentStatus, amount int64) {
	var bucket *Bucket
	switch status {
	case orders.PaymentStatusPaid:
		bucket = &b.Paid
	case orders.PaymentStatusRefunded:
		bucket = &b.Refunded
	case orders.PaymentStatusCancelled:
		bucket = &b.Cancelled
	default:
		bucket = &b.Pending
	}
	bucket.Count++
	bucket.Amount += amount
}

// Totals summarises a set of orders.
type Totals struct {
	Sales           int64 `json:"sales"`
	RefundedAmount  int64 `json:"refunded_amount"`
	CancelledAmount int64 `json:"cancelled_amount"`
	PendingAmount   int64 `json:"pending_amount"`
	Orders          int   `json:"orders"`
	// Active counts orders that are neither cancelled nor refunded.
	Active    int `json:"active"`
	Paid      int `json:"paid"`
	Pending   int `json:"pending"`
	Cancelled int `json:"cancelled"`
	Refunded  int `json:"refunded"`
}

func newTotals(b PaymentBreakdown) Totals {
	total := b.Paid.Count + b.Pending.Count + b.Cancelled.Count + b.Refunded.Count
	return Totals{
		Sales:           b.Paid.Amount,
		RefundedAmount:  b.Refunded.Amount,
		CancelledAmount: b.Cancelled.Amount,
		PendingAmount:   b.Pending.Amount,
		Orders:          total,
		Active:          b.Paid.Count + b.Pending.Count,
		Paid:            b.Paid.Count,
		Pending:         b.Pending.Count,
		Cancelled:       b.Cancelled.Count,
		Refunded:        b.Refunded.Count,
	}
}

// FilteredTotals are the totals of the windowed subset with its payment breakdown.
type FilteredTotals struct {
	Totals
	PaymentBreakdown PaymentBreakdown `json:"payment_breakdown"`
}

// MonthlyPoint is one month of the yearly chart.
type MonthlyPoint struct {
	Month string `json:"month"`
	Sales int64  `json:"sales"`
	// Orders counts orders that are neither cancelled nor refunded.
	Orders    int `json:"orders"`
	Cancelled int `json:"cancelled"`
}

// DailyPoint is one day of the trailing week.
type DailyPoint struct {
	Date   string `json:"date"`
	Sales  int64  `json:"sales"`
	Orders int    `json:"orders"`
}

// Report is the full analytics output.
type Report struct {
	All             Totals         `json:"all"`
	Filtered        FilteredTotals `json:"filtered"`
	ChartYear       int            `json:"chart_year"`
	Monthly         []MonthlyPoint `json:"monthly"`
	MaxMonthlySales int64          `json:"max_monthly_sales"`
	Last7Days       []DailyPoint   `json:"last_7_days"`
	WindowLabel     string         `json:"window_label"`
}
