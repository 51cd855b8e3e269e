package models

import "time"

// Статусы заказа, которые возвращает API
const (
	OrderStatusPlaced    = "placed"
	OrderStatusDelivered = "delivered"
)

// Статусы оплаты
const (
	PaymentStatusPaid   = "Paid"
	PaymentStatusUnpaid = "Unpaid"
)

// OrderItem представляет строку заказа
type OrderItem struct {
	ID         int64   `json:"id"`
	MenuItemID int64   `json:"menu_item_id,omitempty"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// Order — авторитетное представление заказа на стороне сервера.
// Клиент никогда не модифицирует его локально: после каждой мутации
// список заказов целиком заменяется свежим ответом сервера.
type Order struct {
	ID             int64       `json:"id"`
	CustomerID     int64       `json:"customer_id"`
	RestaurantID   int64       `json:"restaurant_id"`
	RestaurantName string      `json:"restaurant_name"`
	TotalPrice     float64     `json:"total_price"`
	Status         string      `json:"status"`
	PaymentStatus  string      `json:"payment_status"`
	Items          []OrderItem `json:"items"`
	CreatedAt      time.Time   `json:"created_at"`
}
