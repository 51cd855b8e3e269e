package views

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/linemk/foodcart/internal/cart"
	"github.com/linemk/foodcart/internal/domain/models"
	"github.com/linemk/foodcart/internal/gateway"
)

// Route — адрес экрана, аналог пути страницы
type Route string

const (
	RouteQuit            Route = "quit"
	RouteLanding         Route = "landing"
	RouteLogin           Route = "login"
	RouteRegister        Route = "register"
	RouteDashboard       Route = "dashboard"
	RouteOwnerDashboard  Route = "owner-dashboard"
	RouteRestaurantSetup Route = "restaurant-setup"
	RouteRestaurants     Route = "restaurants"
	RouteMenu            Route = "menu"
	RouteOrders          Route = "orders"
	RoutePayments        Route = "payments"
)

// Nav — результат работы экрана: куда идти дальше и что передать.
// Checkout заполняется только при переходе из меню на оформление —
// это и есть передача корзины через состояние навигации.
type Nav struct {
	Route        Route
	RestaurantID int64
	Checkout     *cart.Checkout
}

// UI — общие примитивы ввода/вывода терминальных экранов
type UI struct {
	in  *bufio.Reader
	out io.Writer
}

func NewUI(in io.Reader, out io.Writer) *UI {
	return &UI{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.out, format, args...)
}

func (u *UI) Println(args ...interface{}) {
	fmt.Fprintln(u.out, args...)
}

// Title печатает заголовок экрана
func (u *UI) Title(text string) {
	fmt.Fprintln(u.out)
	fmt.Fprintln(u.out, color.New(color.FgRed, color.Bold).Sprint(text))
}

// Errorf показывает пользователю сообщение об ошибке
func (u *UI) Errorf(format string, args ...interface{}) {
	fmt.Fprintln(u.out, color.RedString(format, args...))
}

// Successf показывает сообщение об успешном действии
func (u *UI) Successf(format string, args ...interface{}) {
	fmt.Fprintln(u.out, color.GreenString(format, args...))
}

// Loading показывает индикатор выполняющегося запроса
func (u *UI) Loading(text string) {
	fmt.Fprintln(u.out, color.YellowString("... %s", text))
}

// Prompt читает одну строку ввода
func (u *UI) Prompt(label string) (string, error) {
	fmt.Fprintf(u.out, "%s ", color.CyanString("%s:", label))
	line, err := u.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptInt читает целое число
func (u *UI) PromptInt(label string) (int64, error) {
	raw, err := u.Prompt(label)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

// PromptFloat читает число с плавающей точкой
func (u *UI) PromptFloat(label string) (float64, error) {
	raw, err := u.Prompt(label)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(raw, 64)
}

// paymentLabel подсвечивает неоплаченные заказы в списках
func paymentLabel(status string) string {
	if status == models.PaymentStatusUnpaid {
		return color.YellowString(status)
	}
	return status
}

// userMessage переводит ошибку в текст для пользователя.
// Сообщение detail от сервера показывается дословно,
// всё остальное сводится к общему тексту.
func userMessage(err error) string {
	if errors.Is(err, gateway.ErrUnauthorized) {
		return "Your session has expired. Please log in again."
	}
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return "Something went wrong. Please try again."
}
