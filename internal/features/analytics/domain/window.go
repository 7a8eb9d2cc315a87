package domain

import (
	"errors"
	"fmt"
	"time"

	orders "admin-console/internal/features/orders/domain"
)

var (
	// ErrInvalidWindow is returned for an unparsable month, year or date.
	ErrInvalidWindow = errors.New("invalid analytics window")
	// ErrConflictingWindow is returned when a month and a date are requested together.
	ErrConflictingWindow = errors.New("month and date filters are mutually exclusive")
)

// WindowKind tells which calendar range a Window covers.
type WindowKind int

const (
	WindowAllTime WindowKind = iota
	WindowMonth
	WindowDate
)

// Window is the calendar range the filtered analytics cover.
type Window struct {
	Kind  WindowKind
	Year  int
	Month time.Month
	// Date is YYYY-MM-DD when Kind is WindowDate.
	Date string
}

// AllTime returns the unbounded window.
func AllTime() Window {
	return Window{Kind: WindowAllTime}
}

// MonthOf returns the window covering month of year.
func MonthOf(year int, month time.Month) (Window, error) {
	if month < time.January || month > time.December || year < 1 {
		return Window{}, fmt.Errorf("%w: month %d of %d", ErrInvalidWindow, month, year)
	}
	return Window{Kind: WindowMonth, Year: year, Month: month}, nil
}

// Day returns the window covering one calendar date (YYYY-MM-DD).
func Day(date string) (Window, error) {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return Window{}, fmt.Errorf("%w: date %q", ErrInvalidWindow, date)
	}
	return Window{Kind: WindowDate, Date: date}, nil
}

// Contains reports whether t falls inside the window, in loc.
func (w Window) Contains(t time.Time, loc *time.Location) bool {
	switch w.Kind {
	case WindowMonth:
		local := t.In(loc)
		return local.Year() == w.Year && local.Month() == w.Month
	case WindowDate:
		return orders.CalendarDate(t, loc) == w.Date
	default:
		return true
	}
}

// Label is the human readable name of the window.
func (w Window) Label() string {
	switch w.Kind {
	case WindowMonth:
		return fmt.Sprintf("%s %d", w.Month.String()[:3], w.Year)
	case WindowDate:
		return "Date: " + w.Date
	default:
		return "All Time"
	}
}

// Selection is the analytics filter state. A month and a date are never selected together.
type Selection struct {
	window Window
}

// SelectMonth selects a month and drops any selected date.
func (s Selection) SelectMonth(year int, month time.Month) (Selection, error) {
	w, err := MonthOf(year, month)
	if err != nil {
		return s, err
	}
	return Selection{window: w}, nil
}

// SelectDate selects a calendar date and drops any selected month.
func (s Selection) SelectDate(date string) (Selection, error) {
	w, err := Day(date)
	if err != nil {
		return s, err
	}
	return Selection{window: w}, nil
}

// Clear resets the selection to all time.
func (s Selection) Clear() Selection {
	return Selection{}
}

// Window returns the selected window.
func (s Selection) Window() Window {
	return s.window
}

// Query is a raw analytics request. Zero values mean "not set".
type Query struct {
	// Month is 1-12.
	Month int
	// Year applies to Month and picks the chart year; it defaults to the current year.
	Year int
	// Date is YYYY-MM-DD.
	Date string
}

// Resolve turns q into a selection and the chart year.
func (q Query) Resolve(currentYear int) (Selection, int, error) {
	var sel Selection

	if q.Month != 0 && q.Date != "" {
		return sel, 0, ErrConflictingWindow
	}

	year := q.Year
	if year == 0 {
		year = currentYear
	}

	var err error
	switch {
	case q.Month != 0:
		sel, err = sel.SelectMonth(year, time.Month(q.Month))
	case q.Date != "":
		sel, err = sel.SelectDate(q.Date)
	}
	if err != nil {
		return sel, 0, err
	}

	return sel, year, nil
}
