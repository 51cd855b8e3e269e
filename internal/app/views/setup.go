package views

import (
	"context"
	"log/slog"

	"github.com/linemk/foodcart/internal/service"
)

// RestaurantSetupView — экран первичной настройки ресторана владельца
type RestaurantSetupView struct {
	log   *slog.Logger
	ui    *UI
	owner *service.OwnerService
}

func NewRestaurantSetupView(log *slog.Logger, ui *UI, owner *service.OwnerService) *RestaurantSetupView {
	return &RestaurantSetupView{log: log, ui: ui, owner: owner}
}

func (v *RestaurantSetupView) Run(ctx context.Context) (Nav, error) {
	v.ui.Title("Set up your restaurant")
	v.ui.Println("You don't have a restaurant yet. Let's create one.")

	name, err := v.ui.Prompt("Restaurant name")
	if err != nil {
		return Nav{Route: RouteQuit}, nil
	}
	address, err := v.ui.Prompt("Address")
	if err != nil {
		return Nav{Route: RouteQuit}, nil
	}
	phone, err := v.ui.Prompt("Phone (optional)")
	if err != nil {
		return Nav{Route: RouteQuit}, nil
	}
	cuisine, err := v.ui.Prompt("Cuisine type (optional)")
	if err != nil {
		return Nav{Route: RouteQuit}, nil
	}

	v.ui.Loading("creating restaurant")
	restaurant, err := v.owner.CreateRestaurant(ctx, service.RestaurantSetup{
		Name:        name,
		Address:     address,
		Phone:       phone,
		CuisineType: cuisine,
	})
	if err != nil {
		// Создание ресторана — первичное действие, ошибку молча не глотаем
		v.ui.Errorf("Failed to create restaurant: %s", userMessage(err))
		return Nav{Route: RouteRestaurantSetup}, nil
	}

	v.ui.Successf("Restaurant %q created!", restaurant.Name)
	return Nav{Route: RouteOwnerDashboard}, nil
}
