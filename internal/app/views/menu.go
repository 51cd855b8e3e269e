package views

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strconv"

	"github.com/linemk/foodcart/internal/cart"
	"github.com/linemk/foodcart/internal/domain/models"
	"github.com/linemk/foodcart/internal/gateway"
)

// MenuView — экран меню ресторана с корзиной.
// Корзина принадлежит только этому экрану; на оформление уходит копия
// в составе набора Checkout.
type MenuView struct {
	log *slog.Logger
	ui  *UI
	gw  *gateway.Client
}

func NewMenuView(log *slog.Logger, ui *UI, gw *gateway.Client) *MenuView {
	return &MenuView{log: log, ui: ui, gw: gw}
}

func (v *MenuView) Run(ctx context.Context, restaurantID int64) (Nav, error) {
	const op = "views.MenuView.Run"
	logger := v.log.With(slog.String("op", op), slog.Int64("restaurantID", restaurantID))

	v.ui.Loading("loading menu")

	// Метаданные ресторана — вторичные данные: при ошибке экран
	// продолжает работать без шапки
	restaurant, err := v.gw.Restaurant(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) {
			v.ui.Errorf("%s", userMessage(err))
			return Nav{Route: RouteLanding}, nil
		}
		logger.Warn("failed to load restaurant", slog.Any("error", err))
		restaurant = &models.Restaurant{ID: restaurantID, Name: "Restaurant"}
	}

	menuItems, err := v.gw.Menu(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) {
			v.ui.Errorf("%s", userMessage(err))
			return Nav{Route: RouteLanding}, nil
		}
		logger.Error("failed to load menu", slog.Any("error", err))
		v.ui.Errorf("Failed to load menu: %s", userMessage(err))
		return Nav{Route: RouteRestaurants}, nil
	}

	v.ui.Title(restaurant.Name)
	if restaurant.Address != "" {
		v.ui.Println(restaurant.Address)
	}

	// Корзина создаётся пустой при открытии меню и живёт, пока открыт экран
	basket := cart.New()

	for {
		v.renderMenu(menuItems, basket)

		choice, err := v.ui.Prompt("Command (+id add, -id remove, c checkout, b back)")
		if err != nil {
			return Nav{Route: RouteQuit}, nil
		}

		switch {
		case choice == "b":
			return Nav{Route: RouteRestaurants}, nil
		case choice == "c":
			if basket.ItemCount() == 0 {
				v.ui.Errorf("Your cart is empty")
				continue
			}
			// Передача на оформление: неизменяемый набор с копией корзины
			return Nav{
				Route:    RouteOrders,
				Checkout: cart.NewCheckout(basket, restaurant, menuItems),
			}, nil
		case len(choice) > 1 && choice[0] == '+':
			if id, ok := parseItemID(choice[1:], menuItems); ok {
				basket.Add(id)
			} else {
				v.ui.Errorf("Unknown menu item")
			}
		case len(choice) > 1 && choice[0] == '-':
			if id, ok := parseItemID(choice[1:], menuItems); ok {
				basket.Remove(id)
			} else {
				v.ui.Errorf("Unknown menu item")
			}
		default:
			v.ui.Errorf("Unknown command")
		}
	}
}

func (v *MenuView) renderMenu(items []*models.MenuItem, basket cart.Cart) {
	groups := models.GroupByCategory(items)

	categories := make([]string, 0, len(groups))
	for category := range groups {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	v.ui.Println()
	for _, category := range categories {
		v.ui.Printf("-- %s --\n", category)
		for _, item := range groups[category] {
			qty := basket.Quantity(item.ID)
			marker := "   "
			if qty > 0 {
				marker = "x" + strconv.Itoa(qty) + " "
			}
			v.ui.Printf("  [%d] %s %-28s $%.2f\n", item.ID, marker, item.Name, item.Price)
		}
	}

	// Сводка корзины пересчитывается после каждой мутации
	if basket.ItemCount() > 0 {
		v.ui.Printf("Cart: %d items, total $%.2f\n", basket.ItemCount(), cart.Total(basket, items))
	} else {
		v.ui.Println("Your cart is empty")
	}
}

func parseItemID(raw string, items []*models.MenuItem) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	for _, item := range items {
		if item.ID == id {
			return id, true
		}
	}
	return 0, false
}
