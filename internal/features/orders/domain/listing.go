package domain

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// StatusFilterAll disables status filtering in a ListFilter.
const StatusFilterAll = "All"

// ErrInvalidDate is returned when a date filter is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// ListFilter narrows an order listing.
type ListFilter struct {
	// Search matches id, customer name, email, phone, item names and status.
	Search string
	// Status is StatusFilterAll, empty, or one exact OrderStatus.
	Status string
	// Date is a calendar date (YYYY-MM-DD) in the listing location; empty means any day.
	Date string
}

// Validate checks the status and date of the filter.
func (f ListFilter) Validate() error {
	if f.Status != "" && f.Status != StatusFilterAll && !OrderStatus(f.Status).Valid() {
		return ErrInvalidStatus
	}
	if f.Date != "" {
		if _, err := time.Parse(time.DateOnly, f.Date); err != nil {
			return ErrInvalidDate
		}
	}
	return nil
}

// List returns the listable orders matching f, most recent first.
func List(orders []Order, f ListFilter, c *Classifier, loc *time.Location) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if !c.Listable(o) {
			continue
		}
		if f.Status != "" && f.Status != StatusFilterAll && string(o.Status) != f.Status {
			continue
		}
		if f.Date != "" && CalendarDate(o.Date, loc) != f.Date {
			continue
		}
		if !matchesSearch(o, f.Search) {
			continue
		}
		out = append(out, o)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	return out
}

// matchesSearch applies a case-insensitive substring search.
// Phone numbers are compared as typed.
func matchesSearch(o Order, term string) bool {
	if strings.TrimSpace(term) == "" {
		return true
	}
	needle := strings.ToLower(term)

	fields := []string{o.ID, o.Address.FirstName, o.Address.LastName, o.Address.Email, string(o.Status)}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	if strings.Contains(o.Address.Phone, term) {
		return true
	}
	for _, item := range o.Items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			return true
		}
	}
	return false
}
