package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/linemk/foodcart/internal/domain/models"
)

// OrderItemCreate — строка заказа в момент оформления.
// Цена фиксируется на момент заказа, дальше сервер ей владеет.
type OrderItemCreate struct {
	MenuItemID int64   `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// OrderCreate — тело запроса на создание заказа
type OrderCreate struct {
	CustomerID   int64             `json:"customer_id"`
	RestaurantID int64             `json:"restaurant_id"`
	TotalPrice   float64           `json:"total_price"`
	Items        []OrderItemCreate `json:"items"`
}

// CreateOrder оформляет заказ и возвращает авторитетную запись сервера
func (c *Client) CreateOrder(ctx context.Context, req OrderCreate) (*models.Order, error) {
	const op = "gateway.CreateOrder"

	order := &models.Order{}
	if err := c.doJSON(ctx, http.MethodPost, "/orders", req, order); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return order, nil
}

// Order возвращает заказ по идентификатору
func (c *Client) Order(ctx context.Context, orderID int64) (*models.Order, error) {
	const op = "gateway.Order"

	order := &models.Order{}
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil, order); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return order, nil
}

// OrdersByCustomer возвращает все заказы покупателя
func (c *Client) OrdersByCustomer(ctx context.Context, customerID int64) ([]*models.Order, error) {
	const op = "gateway.OrdersByCustomer"

	var orders []*models.Order
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/orders/customer/%d", customerID), nil, &orders); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

// OrdersByRestaurant возвращает входящие заказы ресторана
func (c *Client) OrdersByRestaurant(ctx context.Context, restaurantID int64) ([]*models.Order, error) {
	const op = "gateway.OrdersByRestaurant"

	var orders []*models.Order
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/orders/restaurant/%d", restaurantID), nil, &orders); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

// UpdateOrderStatus переводит заказ в новый статус (placed -> delivered)
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (*models.Order, error) {
	const op = "gateway.UpdateOrderStatus"

	body := struct {
		Status string `json:"status"`
	}{Status: status}

	order := &models.Order{}
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d", orderID), body, order); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return order, nil
}
