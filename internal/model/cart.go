package model

import (
	"time"
)

// CartItem is a single line item captured from a live cart at checkout time.
type CartItem struct {
	ProductID    int64             `json:"product_id"`
	Name         string            `json:"name"`
	Quantity     int               `json:"quantity"`
	UnitPrice    float64           `json:"price"`
	LineSubtotal float64           `json:"line_subtotal"`
	VariationID  int64             `json:"variation_id,omitempty"`
	Variation    map[string]string `json:"variation,omitempty"`
}

// CartSnapshot is the serialized cart contents stored in the cart_data column.
type CartSnapshot struct {
	Items []CartItem `json:"items"`
}

// IsEmpty reports whether the snapshot has no line items.
func (s CartSnapshot) IsEmpty() bool {
	return len(s.Items) == 0
}

// CartRecord is a tracked abandoned-cart row.
//
// A record is "open" while EmailSent and Recovered are both false; there is at
// most one open record per identity (email, or user id for guests without an
// email). Records are deleted, never flipped to Recovered, when the customer
// comes back through a recovery link or places an order.
type CartRecord struct {
	ID           int64        `json:"id"`
	UserID       int64        `json:"user_id,omitempty"`
	Email        string       `json:"email,omitempty"`
	CustomerName string       `json:"customer_name,omitempty"`
	Snapshot     CartSnapshot `json:"cart_data"`
	CartTotal    float64      `json:"cart_total"`
	CreatedAt    time.Time    `json:"created_at"`
	EmailSent    bool         `json:"email_sent"`
	Recovered    bool         `json:"recovered"`
}
