package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/linemk/foodcart/internal/app/views"
	"github.com/linemk/foodcart/internal/config"
	"github.com/linemk/foodcart/internal/gateway"
	"github.com/linemk/foodcart/internal/service"
	"github.com/linemk/foodcart/internal/session"
)

type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Session *session.Manager
	Gateway *gateway.Client
}

// NewApp собирает приложение: хранилище сессии, менеджер сессии
// и клиент внешнего API
func NewApp(log *slog.Logger, cfg *config.Config) (*App, error) {
	var store session.Store
	switch cfg.Session.Backend {
	case "redis":
		store = session.NewRedisStore(
			cfg.Session.Redis.Address,
			cfg.Session.Redis.Password,
			cfg.Session.Redis.DB,
			cfg.Session.Redis.Key,
		)
	case "file", "":
		fileStore, err := session.NewFileStore(cfg.Session.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to init session store: %w", err)
		}
		store = fileStore
	default:
		return nil, fmt.Errorf("unknown session backend: %s", cfg.Session.Backend)
	}

	sess := session.NewManager(log, store)
	gw := gateway.NewClient(log, cfg.Gateway.BaseURL, cfg.Gateway.Timeout, sess)

	return &App{
		Config:  cfg,
		Logger:  log,
		Session: sess,
		Gateway: gw,
	}, nil
}

// Run крутит цикл навигации между экранами до выхода пользователя.
// Всё состояние корзины живёт внутри экранов; между ними оно передаётся
// только через Nav.
func (a *App) Run(ctx context.Context) error {
	log := a.Logger

	authService := service.NewAuthService(log, a.Gateway, a.Session)
	checkoutService := service.NewCheckoutService(log, a.Gateway)
	ownerService := service.NewOwnerService(log, a.Gateway, a.Session)
	paymentsService := service.NewPaymentsService(log)
	poller := service.NewPoller(log, a.Config.Dashboard.PollInterval)

	ui := views.NewUI(os.Stdin, os.Stdout)

	landing := views.NewLandingView(log, ui)
	login := views.NewLoginView(log, ui, authService)
	register := views.NewRegisterView(log, ui, authService)
	dashboard := views.NewDashboardView(log, ui, authService, checkoutService, a.Session, a.Config.Dashboard.RecentOrders)
	restaurants := views.NewRestaurantsView(log, ui, a.Gateway)
	menu := views.NewMenuView(log, ui, a.Gateway)
	orders := views.NewOrdersView(log, ui, checkoutService, a.Session)
	ownerDashboard := views.NewOwnerDashboardView(log, ui, ownerService, authService, poller)
	setup := views.NewRestaurantSetupView(log, ui, ownerService)
	payments := views.NewPaymentsView(log, ui, paymentsService)

	// Сохранённая сессия переживает перезапуск: начинаем с домашнего экрана
	nav := views.Nav{Route: views.RouteLanding}
	if user := a.Session.User(); user != nil {
		log.Info("restored session", slog.Int64("userID", user.ID))
		if user.IsOwner() {
			nav.Route = views.RouteOwnerDashboard
		} else {
			nav.Route = views.RouteDashboard
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		var err error
		switch nav.Route {
		case views.RouteQuit:
			log.Info("bye")
			return nil
		case views.RouteLanding:
			nav, err = landing.Run(ctx)
		case views.RouteLogin:
			nav, err = login.Run(ctx)
		case views.RouteRegister:
			nav, err = register.Run(ctx)
		case views.RouteDashboard:
			nav, err = dashboard.Run(ctx)
		case views.RouteRestaurants:
			nav, err = restaurants.Run(ctx)
		case views.RouteMenu:
			nav, err = menu.Run(ctx, nav.RestaurantID)
		case views.RouteOrders:
			nav, err = orders.Run(ctx, nav.Checkout)
		case views.RouteOwnerDashboard:
			nav, err = ownerDashboard.Run(ctx)
		case views.RouteRestaurantSetup:
			nav, err = setup.Run(ctx)
		case views.RoutePayments:
			nav, err = payments.Run(ctx)
		default:
			nav = views.Nav{Route: views.RouteLanding}
		}
		if err != nil {
			return err
		}
	}
}
