package views

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/linemk/foodcart/internal/domain/models"
	"github.com/linemk/foodcart/internal/gateway"
	"github.com/linemk/foodcart/internal/service"
	"github.com/linemk/foodcart/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// ownerSession создаёт менеджер сессии с пользователем-владельцем
func ownerSession(t *testing.T) *session.Manager {
	t.Helper()

	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	sess := session.NewManager(testLogger(), store)
	require.NoError(t, sess.Set("test-token", &models.User{
		ID:           10,
		Name:         "Owner",
		Role:         models.RoleRestaurantOwner,
		RestaurantID: 55,
	}))
	return sess
}

// nopAuthGateway — заглушка шлюза аутентификации для экранов,
// которые его не вызывают
type nopAuthGateway struct{}

var _ service.AuthGateway = (*nopAuthGateway)(nil)

func (nopAuthGateway) Login(ctx context.Context, email, password string) (*gateway.AuthResponse, error) {
	return nil, nil
}

func (nopAuthGateway) Register(ctx context.Context, req gateway.RegisterRequest) (*gateway.AuthResponse, error) {
	return nil, nil
}

// slowOwnerGateway отвечает на первый запрос сразу, а фоновые
// задерживает до закрытия release
type slowOwnerGateway struct {
	mu          sync.Mutex
	calls       int
	pollStarted chan struct{}
	release     chan struct{}
}

var _ service.OwnerGateway = (*slowOwnerGateway)(nil)

func (f *slowOwnerGateway) Restaurant(ctx context.Context, id int64) (*models.Restaurant, error) {
	f.mu.Lock()
	f.calls++
	n := f.calls
	f.mu.Unlock()

	if n == 1 {
		return &models.Restaurant{ID: 55, Name: "Fresh Bistro"}, nil
	}
	if n == 2 {
		close(f.pollStarted)
	}
	<-f.release
	return &models.Restaurant{ID: 55, Name: "Stale Bistro"}, nil
}

func (f *slowOwnerGateway) CreateRestaurant(ctx context.Context, req gateway.RestaurantCreate) (*models.Restaurant, error) {
	return nil, nil
}

func (f *slowOwnerGateway) Menu(ctx context.Context, restaurantID int64) ([]*models.MenuItem, error) {
	return nil, nil
}

func (f *slowOwnerGateway) AddMenuItem(ctx context.Context, restaurantID int64, req gateway.MenuItemCreate) (*models.MenuItem, error) {
	return nil, nil
}

func (f *slowOwnerGateway) DeleteMenuItem(ctx context.Context, itemID int64) error {
	return nil
}

func (f *slowOwnerGateway) OrdersByRestaurant(ctx context.Context, restaurantID int64) ([]*models.Order, error) {
	return nil, nil
}

func (f *slowOwnerGateway) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (*models.Order, error) {
	return nil, nil
}

func (f *slowOwnerGateway) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	return "", nil
}

// сценарий: ответ фонового обновления, пришедший после ухода с экрана,
// не должен затереть сводку
func TestOwnerDashboardView_DiscardsLateRefresh(t *testing.T) {
	gw := &slowOwnerGateway{
		pollStarted: make(chan struct{}),
		release:     make(chan struct{}),
	}
	sess := ownerSession(t)
	owner := service.NewOwnerService(testLogger(), gw, sess)
	auth := service.NewAuthService(testLogger(), &nopAuthGateway{}, sess)
	poller := service.NewPoller(testLogger(), 5*time.Millisecond)

	in, inWriter := io.Pipe()
	view := NewOwnerDashboardView(testLogger(), NewUI(in, io.Discard), owner, auth, poller)

	done := make(chan Nav, 1)
	go func() {
		nav, err := view.Run(context.Background())
		assert.NoError(t, err)
		done <- nav
	}()

	// Ждём, пока фоновое обновление повиснет на запросе
	<-gw.pollStarted

	// Уходим с экрана, пока запрос ещё в полёте
	_, err := inWriter.Write([]byte("b\n"))
	require.NoError(t, err)
	nav := <-done
	assert.Equal(t, RouteDashboard, nav.Route)

	// Опоздавший ответ отбрасывается
	close(gw.release)
	assert.Never(t, func() bool {
		snapshot := view.getSnapshot()
		return snapshot != nil && snapshot.Restaurant.Name == "Stale Bistro"
	}, 150*time.Millisecond, 10*time.Millisecond)
	assert.Equal(t, "Fresh Bistro", view.getSnapshot().Restaurant.Name)
}

func TestLandingView_Routes(t *testing.T) {
	cases := []struct {
		input string
		want  Route
	}{
		{"1\n", RouteLogin},
		{"2\n", RouteRegister},
		{"q\n", RouteQuit},
		{"zzz\n", RouteLanding},
	}
	for _, tc := range cases {
		view := NewLandingView(testLogger(), NewUI(strings.NewReader(tc.input), io.Discard))
		nav, err := view.Run(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, tc.want, nav.Route, "input %q", tc.input)
	}
}

// сценарий: корзина собирается в меню и уезжает на оформление копией
func TestMenuView_CartToCheckout(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/restaurants/{id}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(&models.Restaurant{ID: 7, Name: "Pizzeria", Address: "123 Main St"})
	})
	router.Get("/menu/{id}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]*models.MenuItem{
			{ID: 1, Name: "Margherita", Price: 10.00, Category: "Pizza"},
			{ID: 2, Name: "Cola", Price: 2.50, Category: "Drinks"},
		})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	sess := session.NewManager(testLogger(), store)
	client := gateway.NewClient(testLogger(), srv.URL, 5*time.Second, sess)

	// Две пиццы, кола добавлена и убрана обратно
	input := strings.NewReader("+1\n+1\n+2\n-2\nc\n")
	view := NewMenuView(testLogger(), NewUI(input, io.Discard), client)

	nav, err := view.Run(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, RouteOrders, nav.Route)
	require.NotNil(t, nav.Checkout)

	assert.Equal(t, 2, nav.Checkout.Cart.Quantity(1))
	assert.Equal(t, 0, nav.Checkout.Cart.Quantity(2))
	assert.InDelta(t, 20.00, nav.Checkout.Total, 1e-9)
	assert.Equal(t, "Pizzeria", nav.Checkout.Restaurant.Name)
}

func TestPaymentLabel(t *testing.T) {
	assert.Contains(t, paymentLabel(models.PaymentStatusUnpaid), models.PaymentStatusUnpaid)
	assert.Equal(t, models.PaymentStatusPaid, paymentLabel(models.PaymentStatusPaid))
}
