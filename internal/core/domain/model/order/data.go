package order

import "time"

// Data is the flat, serializable representation of an Order. It is the only
// shape the order tracking core exposes outward; adapters marshal it directly.
// Timestamps round-trip through their RFC 3339 text form.
type Data struct {
	OrderID    string    `json:"order_id"`
	ItemName   string    `json:"item_name"`
	Quantity   int       `json:"quantity"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Data converts the order to its flat representation.
func (o *Order) Data() Data {
	return Data{
		OrderID:    o.orderID,
		ItemName:   o.itemName,
		Quantity:   o.quantity,
		CustomerID: o.customerID,
		Status:     o.status,
		CreatedAt:  o.createdAt,
		UpdatedAt:  o.updatedAt,
	}
}
