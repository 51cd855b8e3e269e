package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/linemk/foodcart/internal/domain/models"
)

// MenuItemCreate — тело запроса на добавление позиции меню
type MenuItemCreate struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
	Image    string  `json:"image,omitempty"`
}

// Menu возвращает меню ресторана
func (c *Client) Menu(ctx context.Context, restaurantID int64) ([]*models.MenuItem, error) {
	const op = "gateway.Menu"

	var items []*models.MenuItem
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/menu/%d", restaurantID), nil, &items); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// AddMenuItem добавляет позицию в меню ресторана
func (c *Client) AddMenuItem(ctx context.Context, restaurantID int64, req MenuItemCreate) (*models.MenuItem, error) {
	const op = "gateway.AddMenuItem"

	item := &models.MenuItem{}
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/menu/%d", restaurantID), req, item); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

// DeleteMenuItem удаляет позицию меню по её идентификатору
func (c *Client) DeleteMenuItem(ctx context.Context, itemID int64) error {
	const op = "gateway.DeleteMenuItem"

	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/menu/%d", itemID), nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
