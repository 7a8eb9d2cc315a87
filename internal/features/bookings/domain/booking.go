package domain

import (
	"strings"
	"time"
)

const (
	// DefaultStatus is reported for bookings the backend stored without a status.
	DefaultStatus = "confirmed"
	// FilterAll disables a gym or facility filter.
	FilterAll = "All"
)

// Booking is one facility reservation at a gym branch.
type Booking struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Gym      string `json:"gym"`
	Facility string `json:"facility"`
	// Date is the booked day as entered by the member.
	Date      string    `json:"date"`
	TimeSlot  string    `json:"time_slot"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// WithDefaults fills the status of bookings stored without one.
func (b Booking) WithDefaults() Booking {
	if strings.TrimSpace(b.Status) == "" {
		b.Status = DefaultStatus
	}
	return b
}

// Member is a person who booked at a branch.
type Member struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	BookingCount int       `json:"booking_count"`
	FirstBooking time.Time `json:"first_booking"`
}

// Filter narrows the admin booking list.
type Filter struct {
	Gym      string
	Facility string
	Search   string
}

// Matches reports whether b passes every filter. Search is case-insensitive except for phone numbers.
func (f Filter) Matches(b Booking) bool {
	if f.Gym != "" && f.Gym != FilterAll && b.Gym != f.Gym {
		return false
	}
	if f.Facility != "" && f.Facility != FilterAll && b.Facility != f.Facility {
		return false
	}
	if f.Search == "" {
		return true
	}

	needle := strings.ToLower(f.Search)
	for _, field := range []string{b.Name, b.Email, b.Gym, b.Facility, b.TimeSlot} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return strings.Contains(b.Phone, f.Search)
}

// Stats summarises a booking list.
type Stats struct {
	Total    int `json:"total"`
	Filtered int `json:"filtered"`
	// ByGym and ByFacility count all bookings; names without bookings are absent.
	ByGym      map[string]int `json:"by_gym"`
	ByFacility map[string]int `json:"by_facility"`
}

// Listing is a filtered booking list with its stats.
type Listing struct {
	Stats    Stats     `json:"stats"`
	Bookings []Booking `json:"bookings"`
}

// NewListing applies f to all.
func NewListing(all []Booking, f Filter) Listing {
	stats := Stats{
		Total:      len(all),
		ByGym:      make(map[string]int),
		ByFacility: make(map[string]int),
	}

	filtered := make([]Booking, 0, len(all))
	for _, b := range all {
		b = b.WithDefaults()
		if b.Gym != "" {
			stats.ByGym[b.Gym]++
		}
		if b.Facility != "" {
			stats.ByFacility[b.Facility]++
		}
		if f.Matches(b) {
			filtered = append(filtered, b)
		}
	}
	stats.Filtered = len(filtered)

	return Listing{Stats: stats, Bookings: filtered}
}

// Roster is the bookings or members of one branch.
type Roster[T any] struct {
	Gym   string `json:"gym"`
	Count int    `json:"count"`
	Items []T    `json:"items"`
}
