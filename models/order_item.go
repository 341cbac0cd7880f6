package models

type OrderItem struct {
	ID            int     `json:"id"`
	OrderID       int     `json:"orderId"`
	ProductID     int     `json:"productId"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	SelectedColor string  `json:"selectedColor,omitempty"`
	SelectedSize  string  `json:"selectedSize,omitempty"`
}
