package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/linemk/foodcart/internal/domain/models"
)

// RestaurantCreate — тело запроса на создание ресторана
type RestaurantCreate struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone,omitempty"`
	CuisineType string `json:"cuisine_type,omitempty"`
}

// Restaurants возвращает все рестораны маркетплейса
func (c *Client) Restaurants(ctx context.Context) ([]*models.Restaurant, error) {
	const op = "gateway.Restaurants"

	var restaurants []*models.Restaurant
	if err := c.doJSON(ctx, http.MethodGet, "/restaurants", nil, &restaurants); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return restaurants, nil
}

// Restaurant возвращает ресторан по идентификатору
func (c *Client) Restaurant(ctx context.Context, id int64) (*models.Restaurant, error) {
	const op = "gateway.Restaurant"

	restaurant := &models.Restaurant{}
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/restaurants/%d", id), nil, restaurant); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return restaurant, nil
}

// CreateRestaurant регистрирует новый ресторан и возвращает его с присвоенным id
func (c *Client) CreateRestaurant(ctx context.Context, req RestaurantCreate) (*models.Restaurant, error) {
	const op = "gateway.CreateRestaurant"

	restaurant := &models.Restaurant{}
	if err := c.doJSON(ctx, http.MethodPost, "/restaurants", req, restaurant); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return restaurant, nil
}
