package dto

// CaptureItem is one line item of a checkout-in-progress cart.
type CaptureItem struct {
	ProductID    int64             `json:"product_id"`
	Name         string            `json:"name"`
	Quantity     int               `json:"quantity" validate:"gte=0"`
	UnitPrice    float64           `json:"price"`
	LineSubtotal float64           `json:"line_subtotal"`
	VariationID  int64             `json:"variation_id"`
	Variation    map[string]string `json:"variation"`
}

// CaptureRequest is posted by the storefront on every checkout validation
// attempt while the cart is non-empty.
type CaptureRequest struct {
	SessionID    string        `json:"session_id"`
	UserID       int64         `json:"user_id"`
	Email        string        `json:"email"`
	CustomerName string        `json:"customer_name"`
	Items        []CaptureItem `json:"items" validate:"dive"`
	CartTotal    float64       `json:"cart_total"`
}
