package cart

import (
	"github.com/linemk/foodcart/internal/domain/models"
)

// Checkout — неизменяемый набор данных, передаваемый экрану оформления
// в момент навигации. Экран оформления недостижим без этого набора; его
// отсутствие означает "оформлять нечего", а не ошибку.
type Checkout struct {
	Cart       Cart
	Restaurant *models.Restaurant
	MenuItems  []*models.MenuItem
	Total      float64
}

// NewCheckout упаковывает корзину для передачи на оформление.
// Корзина копируется: экран меню и экран оформления не делят состояние.
func NewCheckout(c Cart, restaurant *models.Restaurant, items []*models.MenuItem) *Checkout {
	return &Checkout{
		Cart:       c.Clone(),
		Restaurant: restaurant,
		MenuItems:  items,
		Total:      Total(c, items),
	}
}

// Item возвращает позицию меню из набора по идентификатору
func (ch *Checkout) Item(itemID int64) *models.MenuItem {
	return findItem(ch.MenuItems, itemID)
}
