package models

import "time"

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Stock       int       `json:"stock"`
	Colors      string    `json:"colors,omitempty"` // comma-separated
	Sizes       string    `json:"sizes,omitempty"`  // comma-separated
	CreatedAt   time.Time `json:"createdAt"`
}
