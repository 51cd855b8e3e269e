package views

import (
	"context"
	"log/slog"

	"github.com/linemk/foodcart/internal/service"
	"github.com/linemk/foodcart/internal/session"
)

// DashboardView — домашний экран покупателя: быстрые действия
// и превью последних заказов
type DashboardView struct {
	log      *slog.Logger
	ui       *UI
	auth     *service.AuthService
	checkout *service.CheckoutService
	session  *session.Manager
	recent   int
}

func NewDashboardView(log *slog.Logger, ui *UI, auth *service.AuthService, checkout *service.CheckoutService, sess *session.Manager, recent int) *DashboardView {
	return &DashboardView{
		log:      log,
		ui:       ui,
		auth:     auth,
		checkout: checkout,
		session:  sess,
		recent:   recent,
	}
}

func (v *DashboardView) Run(ctx context.Context) (Nav, error) {
	user := v.session.User()
	if user == nil {
		return Nav{Route: RouteLanding}, nil
	}

	v.ui.Title("Dashboard — " + user.Name)

	// Превью последних заказов — декоративные данные: при ошибке
	// показываем пустое состояние и не блокируем экран
	orders, err := v.checkout.LoadHistory(ctx, user.ID)
	if err != nil {
		v.log.Warn("failed to load recent orders preview", slog.Any("error", err))
		orders = nil
	}
	if len(orders) > v.recent {
		orders = orders[:v.recent]
	}

	if len(orders) == 0 {
		v.ui.Println("No orders yet. Start by browsing restaurants!")
	} else {
		v.ui.Println("Recent orders:")
		for _, order := range orders {
			v.ui.Printf("  #%d  %-24s $%.2f  %s / %s\n",
				order.ID, order.RestaurantName, order.TotalPrice, order.Status, paymentLabel(order.PaymentStatus))
		}
	}

	v.ui.Println()
	v.ui.Println("  [1] Browse restaurants")
	v.ui.Println("  [2] My orders")
	v.ui.Println("  [3] Payment methods")
	v.ui.Println("  [l] Log out")
	v.ui.Println("  [q] Quit")

	choice, err := v.ui.Prompt("Select")
	if err != nil {
		return Nav{Route: RouteQuit}, nil
	}
	switch choice {
	case "1":
		return Nav{Route: RouteRestaurants}, nil
	case "2":
		return Nav{Route: RouteOrders}, nil
	case "3":
		return Nav{Route: RoutePayments}, nil
	case "l":
		v.auth.Logout()
		return Nav{Route: RouteLanding}, nil
	case "q":
		return Nav{Route: RouteQuit}, nil
	default:
		return Nav{Route: RouteDashboard}, nil
	}
}
