package views

import (
	"context"
	"log/slog"

	"github.com/linemk/foodcart/internal/domain/models"
	"github.com/linemk/foodcart/internal/service"
)

// LandingView — стартовый экран: вход, регистрация или выход
type LandingView struct {
	log *slog.Logger
	ui  *UI
}

func NewLandingView(log *slog.Logger, ui *UI) *LandingView {
	return &LandingView{log: log, ui: ui}
}

func (v *LandingView) Run(ctx context.Context) (Nav, error) {
	v.ui.Title("Foodcart — order food from local restaurants")
	v.ui.Println("  [1] Log in")
	v.ui.Println("  [2] Register")
	v.ui.Println("  [q] Quit")

	choice, err := v.ui.Prompt("Select")
	if err != nil {
		return Nav{Route: RouteQuit}, nil
	}
	switch choice {
	case "1":
		return Nav{Route: RouteLogin}, nil
	case "2":
		return Nav{Route: RouteRegister}, nil
	case "q":
		return Nav{Route: RouteQuit}, nil
	default:
		return Nav{Route: RouteLanding}, nil
	}
}

// LoginView — экран входа
type LoginView struct {
	log  *slog.Logger
	ui   *UI
	auth *service.AuthService
}

func NewLoginView(log *slog.Logger, ui *UI, auth *service.AuthService) *LoginView {
	return &LoginView{log: log, ui: ui, auth: auth}
}

func (v *LoginView) Run(ctx context.Context) (Nav, error) {
	v.ui.Title("Log in")

	email, err := v.ui.Prompt("Email")
	if err != nil {
		return Nav{Route: RouteQuit}, nil
	}
	password, err := v.ui.Prompt("Password")
	if err != nil {
		return Nav{Route: RouteQuit}, nil
	}

	v.ui.Loading("logging in")
	user, err := v.auth.Login(ctx, service.Credentials{Email: email, Password: password})
	if err != nil {
		v.ui.Errorf("Login failed: %s", userMessage(err))
		return Nav{Route: RouteLanding}, nil
	}

	v.ui.Successf("Welcome back, %s!", user.Name)
	return Nav{Route: homeRoute(user)}, nil
}

// RegisterView — экран регистрации
type RegisterView struct {
	log  *slog.Logger
	ui   *UI
	auth *service.AuthService
}

func NewRegisterView(log *slog.Logger, ui *UI, auth *service.AuthService) *RegisterView {
	return &RegisterView{log: log, ui: ui, auth: auth}
}

func (v *RegisterView) Run(ctx context.Context) (Nav, error) {
	v.ui.Title("Create an account")

	name, err := v.ui.Prompt("Name")
	if err != nil {
		return Nav{Route: RouteQuit}, nil
	}
	email, err := v.ui.Prompt("Email")
	if err != nil {
		return Nav{Route: RouteQuit}, nil
	}
	password, err := v.ui.Prompt("Password (min 8 chars)")
	if err != nil {
		return Nav{Route: RouteQuit}, nil
	}
	role, err := v.ui.Prompt("Role (customer / restaurant_owner, empty for customer)")
	if err != nil {
		return Nav{Route: RouteQuit}, nil
	}

	v.ui.Loading("registering")
	user, err := v.auth.Register(ctx, service.Registration{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		v.ui.Errorf("Registration failed: %s", userMessage(err))
		return Nav{Route: RouteLanding}, nil
	}

	v.ui.Successf("Account created. Welcome, %s!", user.Name)
	return Nav{Route: homeRoute(user)}, nil
}

// homeRoute возвращает домашний экран для роли пользователя
func homeRoute(user *models.User) Route {
	if user.IsOwner() {
		return RouteOwnerDashboard
	}
	return RouteDashboard
}
