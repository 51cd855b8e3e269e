package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/linemk/foodcart/internal/domain/models"
	"github.com/linemk/foodcart/internal/gateway"
	"github.com/linemk/foodcart/internal/session"
)

var ErrNoRestaurant = errors.New("owner has no restaurant yet")

// OwnerGateway — операции внешнего API, нужные консоли владельца
type OwnerGateway interface {
	Restaurant(ctx context.Context, id int64) (*models.Restaurant, error)
	CreateRestaurant(ctx context.Context, req gateway.RestaurantCreate) (*models.Restaurant, error)
	Menu(ctx context.Context, restaurantID int64) ([]*models.MenuItem, error)
	AddMenuItem(ctx context.Context, restaurantID int64, req gateway.MenuItemCreate) (*models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, itemID int64) error
	OrdersByRestaurant(ctx context.Context, restaurantID int64) ([]*models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) (*models.Order, error)
	UploadImage(ctx context.Context, filename string, file io.Reader) (string, error)
}

// OwnerService — логика консоли владельца ресторана:
// сводка (ресторан + меню + входящие заказы), создание ресторана,
// управление меню и статусами заказов.
type OwnerService struct {
	log     *slog.Logger
	gw      OwnerGateway
	session *session.Manager
}

func NewOwnerService(log *slog.Logger, gw OwnerGateway, sess *session.Manager) *OwnerService {
	return &OwnerService{
		log:     log,
		gw:      gw,
		session: sess,
	}
}

// Dashboard — сводка консоли владельца за один цикл обновления
type Dashboard struct {
	Restaurant *models.Restaurant
	Menu       []*models.MenuItem
	Orders     []*models.Order
}

// restaurantID возвращает ресторан владельца из сессии
func (s *OwnerService) restaurantID() (int64, error) {
	user := s.session.User()
	if user == nil {
		return 0, session.ErrNoSession
	}
	if user.RestaurantID == 0 {
		return 0, ErrNoRestaurant
	}
	return user.RestaurantID, nil
}

// Refresh загружает сводку консоли владельца.
// Если ресторан ещё не создан (в сессии нет id или сервер вернул 404),
// возвращается ErrNoRestaurant — вызывающий уводит владельца в настройку.
func (s *OwnerService) Refresh(ctx context.Context) (*Dashboard, error) {
	const op = "service.OwnerService.Refresh"
	logger := s.log.With(slog.String("op", op))

	restaurantID, err := s.restaurantID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	restaurant, err := s.gw.Restaurant(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			logger.Warn("restaurant not found, setup required", slog.Int64("restaurantID", restaurantID))
			return nil, fmt.Errorf("%s: %w", op, ErrNoRestaurant)
		}
		logger.Error("failed to fetch restaurant", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	menu, err := s.gw.Menu(ctx, restaurantID)
	if err != nil {
		logger.Error("failed to fetch menu", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	orders, err := s.gw.OrdersByRestaurant(ctx, restaurantID)
	if err != nil {
		logger.Error("failed to fetch incoming orders", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Dashboard{
		Restaurant: restaurant,
		Menu:       menu,
		Orders:     orders,
	}, nil
}

// RestaurantSetup — данные формы создания ресторана
type RestaurantSetup struct {
	Name        string `validate:"required"`
	Address     string `validate:"required"`
	Phone       string `validate:"omitempty"`
	CuisineType string `validate:"omitempty"`
}

// CreateRestaurant регистрирует ресторан владельца и
// записывает его id в пользователя сессии
func (s *OwnerService) CreateRestaurant(ctx context.Context, setup RestaurantSetup) (*models.Restaurant, error) {
	const op = "service.OwnerService.CreateRestaurant"
	logger := s.log.With(slog.String("op", op), slog.String("name", setup.Name))

	if err := validate.Struct(setup); err != nil {
		logger.Warn("invalid restaurant input", slog.Any("error", err))
		return nil, fmt.Errorf("%s: invalid input: %w", op, err)
	}

	user := s.session.User()
	if user == nil {
		return nil, fmt.Errorf("%s: %w", op, session.ErrNoSession)
	}

	restaurant, err := s.gw.CreateRestaurant(ctx, gateway.RestaurantCreate{
		Name:        setup.Name,
		Address:     setup.Address,
		Phone:       setup.Phone,
		CuisineType: setup.CuisineType,
	})
	if err != nil {
		logger.Error("failed to create restaurant", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated := *user
	updated.RestaurantID = restaurant.ID
	if err := s.session.Update(&updated); err != nil {
		logger.Error("failed to update session user", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info("restaurant created", slog.Int64("restaurantID", restaurant.ID))
	return restaurant, nil
}

// NewMenuItem — данные формы добавления позиции меню
type NewMenuItem struct {
	Name      string  `validate:"required"`
	Price     float64 `validate:"required,gt=0"`
	Category  string  `validate:"omitempty"`
	ImagePath string  `validate:"omitempty"`
}

// AddMenuItem добавляет позицию в меню ресторана владельца.
// Если указан путь к картинке, она сначала загружается на сервер,
// а её URL подставляется в позицию.
func (s *OwnerService) AddMenuItem(ctx context.Context, input NewMenuItem) (*models.MenuItem, error) {
	const op = "service.OwnerService.AddMenuItem"
	logger := s.log.With(slog.String("op", op), slog.String("name", input.Name))

	if err := validate.Struct(input); err != nil {
		logger.Warn("invalid menu item input", slog.Any("error", err))
		return nil, fmt.Errorf("%s: invalid input: %w", op, err)
	}

	restaurantID, err := s.restaurantID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	imageURL := ""
	if input.ImagePath != "" {
		file, err := os.Open(input.ImagePath)
		if err != nil {
			logger.Error("failed to open image file", slog.Any("error", err))
			return nil, fmt.Errorf("%s: failed to open image: %w", op, err)
		}
		defer file.Close()

		imageURL, err = s.gw.UploadImage(ctx, filepath.Base(input.ImagePath), file)
		if err != nil {
			logger.Error("failed to upload image", slog.Any("error", err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		logger.Info("image uploaded", slog.String("url", imageURL))
	}

	item, err := s.gw.AddMenuItem(ctx, restaurantID, gateway.MenuItemCreate{
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
		Image:    imageURL,
	})
	if err != nil {
		logger.Error("failed to add menu item", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info("menu item added", slog.Int64("itemID", item.ID))
	return item, nil
}

// DeleteMenuItem удаляет позицию меню
func (s *OwnerService) DeleteMenuItem(ctx context.Context, itemID int64) error {
	const op = "service.OwnerService.DeleteMenuItem"

	if err := s.gw.DeleteMenuItem(ctx, itemID); err != nil {
		s.log.Error("failed to delete menu item", slog.String("op", op), slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// MarkDelivered переводит заказ в статус delivered
func (s *OwnerService) MarkDelivered(ctx context.Context, orderID int64) (*models.Order, error) {
	const op = "service.OwnerService.MarkDelivered"

	order, err := s.gw.UpdateOrderStatus(ctx, orderID, models.OrderStatusDelivered)
	if err != nil {
		s.log.Error("failed to update order status", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return order, nil
}
