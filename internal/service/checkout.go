package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/linemk/foodcart/internal/cart"
	"github.com/linemk/foodcart/internal/domain/models"
	"github.com/linemk/foodcart/internal/gateway"
)

var (
	ErrSubmitInFlight      = errors.New("order submission already in progress")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrNoCustomer          = errors.New("customer identity is not known")
	ErrRestaurantNotChosen = errors.New("no restaurant selected")
)

// OrderGateway — операции внешнего API, нужные для оформления заказа
type OrderGateway interface {
	CreateOrder(ctx context.Context, req gateway.OrderCreate) (*models.Order, error)
	OrdersByCustomer(ctx context.Context, customerID int64) ([]*models.Order, error)
}

// CheckoutService — координатор оформления заказа.
// Владеет историей заказов покупателя и ведёт поток отправки/сверки:
// после успешного создания заказа история не дополняется локально,
// а целиком заменяется свежим списком с сервера.
type CheckoutService struct {
	log    *slog.Logger
	orders OrderGateway

	mu       sync.Mutex
	inFlight bool
	history  []*models.Order
}

func NewCheckoutService(log *slog.Logger, orders OrderGateway) *CheckoutService {
	return &CheckoutService{
		log:    log,
		orders: orders,
	}
}

// History возвращает последний известный список заказов
func (s *CheckoutService) History() []*models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history
}

// LoadHistory загружает историю заказов покупателя, заменяя локальный список
func (s *CheckoutService) LoadHistory(ctx context.Context, customerID int64) ([]*models.Order, error) {
	const op = "service.CheckoutService.LoadHistory"

	orders, err := s.orders.OrdersByCustomer(ctx, customerID)
	if err != nil {
		s.log.Error("failed to load order history", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.history = orders
	s.mu.Unlock()
	return orders, nil
}

// BuildOrderPayload собирает тело заказа из корзины.
// Цена каждой строки берётся из меню набора; позиция, которой в меню
// уже нет, получает цену 0 — строка не выбрасывается и ошибки нет.
func BuildOrderPayload(bundle *cart.Checkout, customerID int64) gateway.OrderCreate {
	itemIDs := make([]int64, 0, len(bundle.Cart))
	for itemID := range bundle.Cart {
		itemIDs = append(itemIDs, itemID)
	}
	sort.Slice(itemIDs, func(i, j int) bool { return itemIDs[i] < itemIDs[j] })

	items := make([]gateway.OrderItemCreate, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		price := 0.0
		if item := bundle.Item(itemID); item != nil {
			price = item.Price
		}
		items = append(items, gateway.OrderItemCreate{
			MenuItemID: itemID,
			Quantity:   bundle.Cart[itemID],
			Price:      price,
		})
	}

	return gateway.OrderCreate{
		CustomerID:   customerID,
		RestaurantID: bundle.Restaurant.ID,
		TotalPrice:   bundle.Total,
		Items:        items,
	}
}

// Submit отправляет заказ и сверяет историю с сервером.
// Предусловия: известен покупатель, выбран ресторан, корзина не пуста.
// Повторный вызов, пока первый не завершился, отвергается без второго
// запроса к серверу. Сверяющий запрос истории уходит строго после ответа
// на создание заказа, поэтому свежая история содержит только что
// размещённый заказ. При ошибке корзина на стороне вызывающего не
// очищается, и отправку можно повторить.
func (s *CheckoutService) Submit(ctx context.Context, bundle *cart.Checkout, customerID int64) ([]*models.Order, error) {
	const op = "service.CheckoutService.Submit"
	logger := s.log.With(slog.String("op", op), slog.Int64("customerID", customerID))

	if customerID == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoCustomer)
	}
	if bundle == nil || bundle.Restaurant == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrRestaurantNotChosen)
	}
	if len(bundle.Cart) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyCart)
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		logger.Warn("submission rejected: another one is in flight")
		return nil, fmt.Errorf("%s: %w", op, ErrSubmitInFlight)
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	payload := BuildOrderPayload(bundle, customerID)
	logger.Info("submitting order",
		slog.Int64("restaurantID", payload.RestaurantID),
		slog.Int("lines", len(payload.Items)),
		slog.Float64("total", payload.TotalPrice),
	)

	created, err := s.orders.CreateOrder(ctx, payload)
	if err != nil {
		logger.Error("failed to create order", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("order created", slog.Int64("orderID", created.ID))

	// Сверка: серверный список заказов заменяет локальный целиком.
	// Локально созданная запись заказа источником истины не считается.
	orders, err := s.orders.OrdersByCustomer(ctx, customerID)
	if err != nil {
		logger.Error("failed to refresh order history", slog.Any("error", err))
		return nil, fmt.Errorf("%s: order placed but history refresh failed: %w", op, err)
	}

	s.mu.Lock()
	s.history = orders
	s.mu.Unlock()

	logger.Info("order history reconciled", slog.Int("orders", len(orders)))
	return orders, nil
}
