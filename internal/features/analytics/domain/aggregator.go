package domain

import (
	"time"

	orders "admin-console/internal/features/orders/domain"
)

// Input is everything an aggregation depends on.
type Input struct {
	Orders []orders.Order
	Window Window
	// ChartYear selects the year of the monthly series.
	ChartYear int
	// Now anchors the trailing seven days.
	Now      time.Time
	Location *time.Location
}

// Aggregate computes the analytics report. It is pure and never fails.
// Every order is counted; the listing exclusion of unconfirmed gateway orders does not apply here.
func Aggregate(in Input, c *orders.Classifier) Report {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	var all, filtered PaymentBreakdown

	monthly := make([]MonthlyPoint, 12)
	for i := range monthly {
		monthly[i].Month = time.Month(i + 1).String()[:3]
	}

	today := in.Now.In(loc)
	days := make([]DailyPoint, 7)
	dayIndex := make(map[string]int, 7)
	for i := range days {
		d := time.Date(today.Year(), today.Month(), today.Day()-(6-i), 12, 0, 0, 0, loc)
		days[i].Date = d.Format(time.DateOnly)
		dayIndex[days[i].Date] = i
	}

	for _, o := range in.Orders {
		status := c.Classify(o)
		amount := o.ActualTotal()

		all.add(status, amount)
		if in.Window.Contains(o.Date, loc) {
			filtered.add(status, amount)
		}

		local := o.Date.In(loc)
		if local.Year() == in.ChartYear {
			m := &monthly[local.Month()-1]
			switch status {
			case orders.PaymentStatusCancelled, orders.PaymentStatusRefunded:
				m.Cancelled++
			default:
				m.Orders++
			}
			if status == orders.PaymentStatusPaid {
				m.Sales += amount
			}
		}

		if status == orders.PaymentStatusPaid {
			if i, ok := dayIndex[local.Format(time.DateOnly)]; ok {
				days[i].Sales += amount
				days[i].Orders++
			}
		}
	}

	maxSales := int64(1)
	for _, m := range monthly {
		if m.Sales > maxSales {
			maxSales = m.Sales
		}
	}

	return Report{
		All: newTotals(all),
		Filtered: FilteredTotals{
			Totals:           newTotals(filtered),
			PaymentBreakdown: filtered,
		},
		ChartYear:       in.ChartYear,
		Monthly:         monthly,
		MaxMonthlySales: maxSales,
		Last7Days:       days,
		WindowLabel:     in.Window.Label(),
	}
}
