package domain

import (
	"errors"
	"strings"

	orders "admin-console/internal/features/orders/domain"
)

// ErrProductIDRequired is returned when a remove has no product id.
var ErrProductIDRequired = errors.New("product id is required")

// Product is a catalog entry as the administrator sees it.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category"`
	Price       float64 `json:"price"`
	// Discount is a percentage; zero when the backend omits it.
	Discount            float64  `json:"discount"`
	Images              []string `json:"images"`
	ManufacturerDetails string   `json:"manufacturer_details,omitempty"`
}

// EffectivePrice is the discounted unit price, rounded like order lines.
func (p Product) EffectivePrice() int64 {
	return orders.EffectiveUnitPrice(p.Price, p.Discount)
}

// Matches reports whether term occurs in the name, category or sub-category, ignoring case.
// An empty term matches everything.
func (p Product) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Category), term) ||
		strings.Contains(strings.ToLower(p.SubCategory), term)
}

// Search keeps the products matching term, in catalog order.
func Search(products []Product, term string) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Matches(term) {
			out = append(out, p)
		}
	}
	return out
}

// View is a listing row.
type View struct {
	Product
	EffectivePrice int64  `json:"effective_price"`
	Discounted     bool   `json:"discounted"`
	Thumbnail      string `json:"thumbnail"`
}

// NewView derives the listing row of p.
func NewView(p Product) View {
	thumb := orders.PlaceholderImage
	if len(p.Images) > 0 && p.Images[0] != "" {
		thumb = p.Images[0]
	}
	return View{
		Product:        p,
		EffectivePrice: p.EffectivePrice(),
		Discounted:     p.Discount > 0 && p.Price != 0,
		Thumbnail:      thumb,
	}
}
