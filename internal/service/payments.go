package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/linemk/foodcart/internal/domain/models"
)

var ErrPaymentMethodNotFound = errors.New("payment method not found")

// PaymentsService — локальный менеджер платёжных методов.
// Это заглушка: методы живут только в памяти клиента, к внешнему API
// платежи не ходят.
type PaymentsService struct {
	log *slog.Logger

	mu      sync.Mutex
	methods []*models.PaymentMethod
	nextID  int64
}

// NewPaymentsService создаёт менеджер с парой демонстрационных методов
func NewPaymentsService(log *slog.Logger) *PaymentsService {
	return &PaymentsService{
		log: log,
		methods: []*models.PaymentMethod{
			{
				ID:      "1",
				Type:    models.PaymentTypeCard,
				Name:    "Visa ending in 1234",
				Details: "**** **** **** 1234",
				Default: true,
			},
			{
				ID:      "2",
				Type:    models.PaymentTypeUPI,
				Name:    "UPI ID",
				Details: "user@paytm",
				Default: false,
			},
		},
		nextID: 3,
	}
}

// NewPaymentMethod — данные формы добавления платёжного метода
type NewPaymentMethod struct {
	Type       string `validate:"required,oneof=card upi wallet"`
	CardNumber string `validate:"required_if=Type card,omitempty,numeric,min=12,max=19"`
	HolderName string `validate:"omitempty"`
	UPIID      string `validate:"required_if=Type upi,omitempty,contains=@"`
	WalletName string `validate:"required_if=Type wallet,omitempty"`
}

// List возвращает копию списка методов
func (s *PaymentsService) List() []*models.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.PaymentMethod, len(s.methods))
	copy(out, s.methods)
	return out
}

// Add добавляет платёжный метод. Номер карты маскируется до последних
// четырёх цифр, бренд определяется по первой (4 — Visa, иначе Mastercard).
// Первый добавленный метод становится методом по умолчанию.
func (s *PaymentsService) Add(input NewPaymentMethod) (*models.PaymentMethod, error) {
	const op = "service.PaymentsService.Add"

	if err := validate.Struct(input); err != nil {
		s.log.Warn("invalid payment method input", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: invalid input: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	method := &models.PaymentMethod{
		ID:      strconv.FormatInt(s.nextID, 10),
		Type:    input.Type,
		Default: len(s.methods) == 0,
	}
	s.nextID++

	switch input.Type {
	case models.PaymentTypeCard:
		last4 := input.CardNumber[len(input.CardNumber)-4:]
		brand := "Mastercard"
		if strings.HasPrefix(input.CardNumber, "4") {
			brand = "Visa"
		}
		method.Name = fmt.Sprintf("%s ending in %s", brand, last4)
		method.Details = "**** **** **** " + last4
	case models.PaymentTypeUPI:
		method.Name = "UPI ID"
		method.Details = input.UPIID
	case models.PaymentTypeWallet:
		method.Name = "Wallet"
		method.Details = input.WalletName
	}

	s.methods = append(s.methods, method)
	s.log.Info("payment method added", slog.String("op", op), slog.String("id", method.ID), slog.String("type", method.Type))
	return method, nil
}

// SetDefault делает метод методом по умолчанию; остальные его теряют
func (s *PaymentsService) SetDefault(id string) error {
	const op = "service.PaymentsService.SetDefault"

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, m := range s.methods {
		if m.ID == id {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%s: %w", op, ErrPaymentMethodNotFound)
	}

	for _, m := range s.methods {
		m.Default = m.ID == id
	}
	return nil
}

// Remove удаляет платёжный метод
func (s *PaymentsService) Remove(id string) error {
	const op = "service.PaymentsService.Remove"

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.methods {
		if m.ID == id {
			s.methods = append(s.methods[:i], s.methods[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, ErrPaymentMethodNotFound)
}
