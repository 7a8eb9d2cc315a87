package domain

// PlaceholderImage is shown for items with neither a catalog nor an inline image.
const PlaceholderImage = "https://via.placeholder.com/60x60?text=No+Image"

// ItemView is a line item with its derived prices and display image.
type ItemView struct {
	LineItem
	EffectiveUnitPrice int64  `json:"effective_unit_price"`
	LineTotal          int64  `json:"line_total"`
	ImageURL           string `json:"image_url"`
}

// OrderView is an order as presented in listings, with reconciled totals.
type OrderView struct {
	Order
	Items         []ItemView    `json:"items"`
	ActualTotal   int64         `json:"actual_total"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	// Savings is the recorded amount minus the actual total, when positive.
	Savings int64 `json:"savings"`
}

// NewOrderView derives the listing representation of o.
// images maps product ids to catalog image URLs and may be nil.
func NewOrderView(o Order, c *Classifier, images map[string]string) OrderView {
	items := make([]ItemView, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, ItemView{
			LineItem:           item,
			EffectiveUnitPrice: item.EffectiveUnitPrice(),
			LineTotal:          item.Total(),
			ImageURL:           imageFor(item, images),
		})
	}

	actual := o.ActualTotal()
	var savings int64
	if recorded := RoundHalfUp(o.Amount); recorded > actual {
		savings = recorded - actual
	}

	return OrderView{
		Order:         o,
		Items:         items,
		ActualTotal:   actual,
		PaymentStatus: c.Classify(o),
		Savings:       savings,
	}
}

func imageFor(item LineItem, images map[string]string) string {
	if item.ProductID != "" {
		if url, ok := images[item.ProductID]; ok && url != "" {
			return url
		}
	}
	if item.Image != "" {
		return item.Image
	}
	return PlaceholderImage
}

// ProductIDs returns the distinct product ids referenced by orders, in first-seen order.
func ProductIDs(orders []Order) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, o := range orders {
		for _, item := range o.Items {
			if item.ProductID == "" {
				continue
			}
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}
	return ids
}
