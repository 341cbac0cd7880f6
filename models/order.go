package models

import "time"

type Order struct {
	ID              int     `json:"id"`
	OrderNumber     string  `json:"orderNumber"`
	UserID          int     `json:"userId"`
	TotalAmount     float64 `json:"totalAmount"`
	AdvancePaid     float64 `json:"advancePaid"`
	RemainingAmount float64 `json:"remainingAmount"`
	Status          string  `json:"status"`
	ShippingAddress string  `json:"shippingAddress"`
	Phone           string  `json:"phone"`
	UTRNumber       string  `json:"utrNumber,omitempty"`
	// PaymentScreenshot is a file reference; the file itself is never
	// migrated and must be re-uploaded manually.
	PaymentScreenshot string    `json:"paymentScreenshot,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}
