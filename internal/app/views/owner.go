package views

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/linemk/foodcart/internal/gateway"
	"github.com/linemk/foodcart/internal/service"
)

// OwnerDashboardView — консоль владельца ресторана.
// Пока экран активен, сводка обновляется по таймеру; при уходе с экрана
// опрос останавливается, а опоздавшие ответы отбрасываются.
type OwnerDashboardView struct {
	log    *slog.Logger
	ui     *UI
	owner  *service.OwnerService
	auth   *service.AuthService
	poller *service.Poller

	mu       sync.Mutex
	snapshot *service.Dashboard
}

func NewOwnerDashboardView(log *slog.Logger, ui *UI, owner *service.OwnerService, auth *service.AuthService, poller *service.Poller) *OwnerDashboardView {
	return &OwnerDashboardView{
		log:    log,
		ui:     ui,
		owner:  owner,
		auth:   auth,
		poller: poller,
	}
}

func (v *OwnerDashboardView) setSnapshot(d *service.Dashboard) {
	v.mu.Lock()
	v.snapshot = d
	v.mu.Unlock()
}

func (v *OwnerDashboardView) getSnapshot() *service.Dashboard {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot
}

func (v *OwnerDashboardView) Run(ctx context.Context) (Nav, error) {
	const op = "views.OwnerDashboardView.Run"
	logger := v.log.With(slog.String("op", op))

	v.ui.Title("Owner console")
	v.ui.Loading("loading your restaurant")

	dashboard, err := v.owner.Refresh(ctx)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoRestaurant):
			// Ресторан ещё не создан — уводим владельца в настройку
			return Nav{Route: RouteRestaurantSetup}, nil
		case errors.Is(err, gateway.ErrUnauthorized):
			v.ui.Errorf("%s", userMessage(err))
			return Nav{Route: RouteLanding}, nil
		default:
			logger.Error("failed to load dashboard", slog.Any("error", err))
			v.ui.Errorf("Failed to load your dashboard: %s", userMessage(err))
			return Nav{Route: RouteLanding}, nil
		}
	}
	v.setSnapshot(dashboard)

	// Фоновое обновление живёт ровно столько, сколько открыт экран
	pollCtx, stopPolling := context.WithCancel(ctx)
	defer stopPolling()
	go v.poller.Run(pollCtx, func(ctx context.Context) {
		fresh, err := v.owner.Refresh(ctx)
		if err != nil {
			logger.Warn("dashboard poll failed", slog.Any("error", err))
			return
		}
		// Страховка от устаревшего ответа: после ухода с экрана
		// результат не применяется
		if ctx.Err() != nil {
			return
		}
		v.setSnapshot(fresh)
	})

	for {
		v.render()

		choice, err := v.ui.Prompt("Command (a add item, x del item, d deliver order, r refresh, l logout, b back)")
		if err != nil {
			return Nav{Route: RouteQuit}, nil
		}

		switch choice {
		case "b":
			return Nav{Route: RouteDashboard}, nil
		case "l":
			v.auth.Logout()
			return Nav{Route: RouteLanding}, nil
		case "r":
			if fresh, err := v.owner.Refresh(ctx); err == nil {
				v.setSnapshot(fresh)
			} else {
				v.ui.Errorf("Refresh failed: %s", userMessage(err))
			}
		case "a":
			v.addMenuItem(ctx)
		case "x":
			v.deleteMenuItem(ctx)
		case "d":
			v.deliverOrder(ctx)
		default:
			v.ui.Errorf("Unknown command")
		}
	}
}

func (v *OwnerDashboardView) render() {
	snapshot := v.getSnapshot()
	if snapshot == nil {
		return
	}

	v.ui.Println()
	v.ui.Printf("%s — %s\n", snapshot.Restaurant.Name, snapshot.Restaurant.Address)

	v.ui.Println("Menu:")
	if len(snapshot.Menu) == 0 {
		v.ui.Println("  (empty)")
	}
	for _, item := range snapshot.Menu {
		v.ui.Printf("  [%d] %-28s $%.2f  %s\n", item.ID, item.Name, item.Price, item.Category)
	}

	v.ui.Println("Incoming orders:")
	if len(snapshot.Orders) == 0 {
		v.ui.Println("  (none)")
	}
	for _, order := range snapshot.Orders {
		v.ui.Printf("  #%d  $%.2f  %s / %s\n", order.ID, order.TotalPrice, order.Status, paymentLabel(order.PaymentStatus))
	}
}

// addMenuItem — первичное действие: ошибка всегда показывается пользователю
func (v *OwnerDashboardView) addMenuItem(ctx context.Context) {
	name, err := v.ui.Prompt("Item name")
	if err != nil {
		return
	}
	price, err := v.ui.PromptFloat("Price")
	if err != nil {
		v.ui.Errorf("Invalid price")
		return
	}
	category, err := v.ui.Prompt("Category (optional)")
	if err != nil {
		return
	}
	imagePath, err := v.ui.Prompt("Image file path (optional)")
	if err != nil {
		return
	}

	v.ui.Loading("adding menu item")
	item, err := v.owner.AddMenuItem(ctx, service.NewMenuItem{
		Name:      name,
		Price:     price,
		Category:  category,
		ImagePath: imagePath,
	})
	if err != nil {
		v.ui.Errorf("Failed to add menu item: %s", userMessage(err))
		return
	}
	v.ui.Successf("Added %s for $%.2f", item.Name, item.Price)

	if fresh, err := v.owner.Refresh(ctx); err == nil {
		v.setSnapshot(fresh)
	}
}

func (v *OwnerDashboardView) deleteMenuItem(ctx context.Context) {
	itemID, err := v.ui.PromptInt("Item id")
	if err != nil {
		v.ui.Errorf("Invalid item id")
		return
	}

	if err := v.owner.DeleteMenuItem(ctx, itemID); err != nil {
		v.ui.Errorf("Failed to delete menu item: %s", userMessage(err))
		return
	}
	v.ui.Successf("Menu item deleted")

	if fresh, err := v.owner.Refresh(ctx); err == nil {
		v.setSnapshot(fresh)
	}
}

func (v *OwnerDashboardView) deliverOrder(ctx context.Context) {
	orderID, err := v.ui.PromptInt("Order id")
	if err != nil {
		v.ui.Errorf("Invalid order id")
		return
	}

	order, err := v.owner.MarkDelivered(ctx, orderID)
	if err != nil {
		v.ui.Errorf("Failed to update order: %s", userMessage(err))
		return
	}
	v.ui.Successf("Order #%d marked as %s", order.ID, order.Status)

	if fresh, err := v.owner.Refresh(ctx); err == nil {
		v.setSnapshot(fresh)
	}
}
