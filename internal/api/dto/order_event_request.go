package dto

// OrderEventRequest is posted by the commerce platform on order lifecycle
// changes.
type OrderEventRequest struct {
	OrderID int64  `json:"order_id" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Status  string `json:"status" validate:"required"`
}
