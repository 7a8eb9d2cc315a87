package domain

import (
	"errors"
	"sort"
	"time"
)

// ErrMediaIDRequired is returned when a delete has no media id.
var ErrMediaIDRequired = errors.New("media id is required")

// Item is one image of the public gallery.
type Item struct {
	ID        string    `json:"id"`
	Image     string    `json:"image"`
	Caption   string    `json:"caption,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Newest orders items most recent first. Items without a date go last, in backend order.
func Newest(items []Item) []Item {
	out := append([]Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
