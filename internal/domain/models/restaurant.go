package models

import "time"

// Restaurant представляет ресторан, доступный для заказа
type Restaurant struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone,omitempty"`
	CuisineType string    `json:"cuisine_type,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}
