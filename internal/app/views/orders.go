package views

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/linemk/foodcart/internal/cart"
	"github.com/linemk/foodcart/internal/domain/models"
	"github.com/linemk/foodcart/internal/gateway"
	"github.com/linemk/foodcart/internal/service"
	"github.com/linemk/foodcart/internal/session"
)

// OrdersView — экран оформления заказа и истории заказов.
// Набор Checkout приходит из меню через навигацию; его отсутствие —
// нормальное состояние "оформлять нечего", показывается только история.
type OrdersView struct {
	log      *slog.Logger
	ui       *UI
	checkout *service.CheckoutService
	session  *session.Manager
}

func NewOrdersView(log *slog.Logger, ui *UI, checkout *service.CheckoutService, sess *session.Manager) *OrdersView {
	return &OrdersView{
		log:      log,
		ui:       ui,
		checkout: checkout,
		session:  sess,
	}
}

func (v *OrdersView) Run(ctx context.Context, bundle *cart.Checkout) (Nav, error) {
	user := v.session.User()
	if user == nil {
		return Nav{Route: RouteLanding}, nil
	}

	v.ui.Title("Your orders")

	// История заказов: при ошибке показываем пустое состояние,
	// оформление при этом не блокируется
	history, err := v.checkout.LoadHistory(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) {
			v.ui.Errorf("%s", userMessage(err))
			return Nav{Route: RouteLanding}, nil
		}
		v.log.Warn("failed to load order history", slog.Any("error", err))
		history = nil
	}

	// Цикл оформления: при неудаче корзина сохраняется и можно повторить
	for bundle != nil && len(bundle.Cart) > 0 {
		v.renderCheckout(bundle)

		choice, err := v.ui.Prompt("Place order? (y/n)")
		if err != nil {
			return Nav{Route: RouteQuit}, nil
		}
		if choice != "y" {
			break
		}

		// Пока запрос в полёте, повторная отправка невозможна:
		// экран заблокирован на этом вызове
		v.ui.Loading("placing your order")
		refreshed, err := v.checkout.Submit(ctx, bundle, user.ID)
		if err != nil {
			v.ui.Errorf("Failed to place order: %s", userMessage(err))
			continue
		}

		// Успех: корзина очищается, история уже сверена с сервером
		bundle = nil
		history = refreshed
		v.ui.Successf("Order placed successfully! It will appear in your order history.")
	}

	v.renderHistory(history)

	choice, err := v.ui.Prompt("[r] restaurants, [d] dashboard")
	if err != nil {
		return Nav{Route: RouteQuit}, nil
	}
	if choice == "r" {
		return Nav{Route: RouteRestaurants}, nil
	}
	return Nav{Route: RouteDashboard}, nil
}

func (v *OrdersView) renderCheckout(bundle *cart.Checkout) {
	v.ui.Println()
	v.ui.Printf("Complete your order — %s, %s\n", bundle.Restaurant.Name, bundle.Restaurant.Address)

	itemIDs := make([]int64, 0, len(bundle.Cart))
	for itemID := range bundle.Cart {
		itemIDs = append(itemIDs, itemID)
	}
	sort.Slice(itemIDs, func(i, j int) bool { return itemIDs[i] < itemIDs[j] })

	for _, itemID := range itemIDs {
		qty := bundle.Cart[itemID]
		if item := bundle.Item(itemID); item != nil {
			v.ui.Printf("  %d x %-28s $%.2f\n", qty, item.Name, item.Price*float64(qty))
		}
	}
	v.ui.Printf("Total: $%.2f\n", bundle.Total)
}

func (v *OrdersView) renderHistory(orders []*models.Order) {
	v.ui.Println()
	if len(orders) == 0 {
		v.ui.Println("No orders yet. Start by browsing restaurants and adding items to your cart.")
		return
	}

	v.ui.Println("Order history:")
	for _, order := range orders {
		v.ui.Printf("  #%d  %-24s $%.2f  %s / %s  %s\n",
			order.ID,
			order.RestaurantName,
			order.TotalPrice,
			order.Status,
			paymentLabel(order.PaymentStatus),
			order.CreatedAt.Format("2006-01-02 15:04"),
		)
		for _, line := range order.Items {
			v.ui.Printf("      %d x %s — $%.2f\n", line.Quantity, line.Name, line.Price*float64(line.Quantity))
		}
	}
}
