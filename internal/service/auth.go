package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/linemk/foodcart/internal/domain/models"
	"github.com/linemk/foodcart/internal/gateway"
	"github.com/linemk/foodcart/internal/session"
)

var validate = validator.New()

// AuthGateway — операции внешнего API, нужные для аутентификации
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*gateway.AuthResponse, error)
	Register(ctx context.Context, req gateway.RegisterRequest) (*gateway.AuthResponse, error)
}

// AuthService управляет входом, регистрацией и выходом.
// Сервер владеет паролями и токенами, клиент только хранит выданную сессию.
type AuthService struct {
	log     *slog.Logger
	gw      AuthGateway
	session *session.Manager
}

func NewAuthService(log *slog.Logger, gw AuthGateway, sess *session.Manager) *AuthService {
	return &AuthService{
		log:     log,
		gw:      gw,
		session: sess,
	}
}

// Credentials — данные формы входа с тегами валидации
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// Registration — данные формы регистрации
type Registration struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"omitempty,oneof=customer restaurant_owner"`
}

// Login аутентифицирует пользователя и устанавливает сессию
func (a *AuthService) Login(ctx context.Context, creds Credentials) (*models.User, error) {
	const op = "service.AuthService.Login"
	logger := a.log.With(
		slog.String("op", op),
		slog.String("email", creds.Email),
	)

	if err := validate.Struct(creds); err != nil {
		logger.Warn("invalid credentials input", slog.Any("error", err))
		return nil, fmt.Errorf("%s: invalid input: %w", op, err)
	}

	logger.Info("logging in")
	resp, err := a.gw.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		logger.Error("login failed", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := a.session.Set(resp.Token, resp.User); err != nil {
		logger.Error("failed to store session", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info("user logged in successfully", slog.Int64("userID", resp.User.ID))
	return resp.User, nil
}

// Register создаёт пользователя и сразу входит под ним
func (a *AuthService) Register(ctx context.Context, reg Registration) (*models.User, error) {
	const op = "service.AuthService.Register"
	logger := a.log.With(
		slog.String("op", op),
		slog.String("email", reg.Email),
	)

	if err := validate.Struct(reg); err != nil {
		logger.Warn("invalid registration input", slog.Any("error", err))
		return nil, fmt.Errorf("%s: invalid input: %w", op, err)
	}

	logger.Info("registering user")
	resp, err := a.gw.Register(ctx, gateway.RegisterRequest{
		Name:     reg.Name,
		Email:    reg.Email,
		Password: reg.Password,
		Role:     reg.Role,
	})
	if err != nil {
		logger.Error("registration failed", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := a.session.Set(resp.Token, resp.User); err != nil {
		logger.Error("failed to store session", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info("user registered successfully", slog.Int64("userID", resp.User.ID))
	return resp.User, nil
}

// Logout завершает сессию пользователя
func (a *AuthService) Logout() {
	a.session.Clear()
}
