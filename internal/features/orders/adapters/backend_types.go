package adapter

import "admin-console/internal/core/httpclient"

// backendOrder represents the JSON structure of an order from the backend API.
type backendOrder struct {
	ID            string            `json:"_id"`
	Items         []backendLineItem `json:"items"`
	Amount        float64           `json:"amount"`
	Address       backendAddress    `json:"address"`
	PaymentMethod string            `json:"paymentMethod"`
	Payment       bool              `json:"payment"`
	Status        string            `json:"status"`
	Date          httpclient.Time   `json:"date"`
	AdminNotes    string            `json:"adminNotes"`
	UserNotes     string            `json:"userNotes"`
	TrackingURL   string            `json:"trackingUrl"`
}

// backendLineItem is one product line; discount and id are optional.
type backendLineItem struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Price    float64          `json:"price"`
	Discount float64          `json:"discount"`
	Quantity int              `json:"quantity"`
	Size     string           `json:"size"`
	Image    httpclient.Image `json:"image"`
}

// backendAddress holds the shipping and contact details.
type backendAddress struct {
	FirstName string                 `json:"firstName"`
	LastName  string                 `json:"lastName"`
	Street    string                 `json:"street"`
	City      string                 `json:"city"`
	State     string                 `json:"state"`
	Country   string                 `json:"country"`
	Zipcode   httpclient.LooseString `json:"zipcode"`
	Phone     httpclient.LooseString `json:"phone"`
	Email     string                 `json:"email"`
}

// listOrdersResponse is the reply of /api/order/list.
type listOrdersResponse struct {
	httpclient.Envelope
	Orders []backendOrder `json:"orders"`
}

// singleProductResponse is the reply of /api/product/single.
type singleProductResponse struct {
	httpclient.Envelope
	Product *struct {
		Image httpclient.Image `json:"image"`
	} `json:"product"`
}
