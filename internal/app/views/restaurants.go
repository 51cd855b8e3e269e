package views

import (
	"context"
	"errors"
	"log/slog"

	"github.com/linemk/foodcart/internal/gateway"
)

// RestaurantsView — экран выбора ресторана
type RestaurantsView struct {
	log *slog.Logger
	ui  *UI
	gw  *gateway.Client
}

func NewRestaurantsView(log *slog.Logger, ui *UI, gw *gateway.Client) *RestaurantsView {
	return &RestaurantsView{log: log, ui: ui, gw: gw}
}

func (v *RestaurantsView) Run(ctx context.Context) (Nav, error) {
	const op = "views.RestaurantsView.Run"

	v.ui.Title("Restaurants")
	v.ui.Loading("loading restaurants")

	restaurants, err := v.gw.Restaurants(ctx)
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) {
			v.ui.Errorf("%s", userMessage(err))
			return Nav{Route: RouteLanding}, nil
		}
		v.log.Error("failed to load restaurants", slog.String("op", op), slog.Any("error", err))
		v.ui.Errorf("Failed to load restaurants: %s", userMessage(err))
		return Nav{Route: RouteDashboard}, nil
	}

	if len(restaurants) == 0 {
		v.ui.Println("No restaurants available yet.")
		return Nav{Route: RouteDashboard}, nil
	}

	for _, r := range restaurants {
		v.ui.Printf("  [%d] %-28s %s", r.ID, r.Name, r.Address)
		if r.CuisineType != "" {
			v.ui.Printf("  (%s)", r.CuisineType)
		}
		v.ui.Println()
	}

	id, err := v.ui.PromptInt("Restaurant id (0 to go back)")
	if err != nil || id == 0 {
		return Nav{Route: RouteDashboard}, nil
	}
	return Nav{Route: RouteMenu, RestaurantID: id}, nil
}
