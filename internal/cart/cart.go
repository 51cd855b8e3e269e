package cart

import (
	"github.com/linemk/foodcart/internal/domain/models"
)

// Cart — корзина покупателя: позиция меню -> количество.
// Инвариант: количество всегда >= 1, запись с нулём удаляется, а не хранится.
// Корзина привязана ровно к одному ресторану.
type Cart map[int64]int

func New() Cart {
	return make(Cart)
}

// Add увеличивает количество позиции на единицу, создавая запись при отсутствии
func (c Cart) Add(itemID int64) {
	c[itemID]++
}

// Remove уменьшает количество позиции на единицу.
// Запись с количеством <= 0 удаляется целиком. Для отсутствующей позиции — no-op.
func (c Cart) Remove(itemID int64) {
	qty, ok := c[itemID]
	if !ok {
		return
	}
	if qty <= 1 {
		delete(c, itemID)
		return
	}
	c[itemID] = qty - 1
}

// Quantity возвращает количество позиции в корзине (0, если её нет)
func (c Cart) Quantity(itemID int64) int {
	return c[itemID]
}

// ItemCount возвращает суммарное количество позиций — индикатор "N items in cart"
func (c Cart) ItemCount() int {
	total := 0
	for _, qty := range c {
		total += qty
	}
	return total
}

// Clone возвращает независимую копию корзины.
// Передача корзины между экранами всегда идёт по значению, не по ссылке.
func (c Cart) Clone() Cart {
	clone := make(Cart, len(c))
	for itemID, qty := range c {
		clone[itemID] = qty
	}
	return clone
}

// Total считает стоимость корзины по прайсу меню.
// Чистая функция: никогда не хранится как отдельное изменяемое состояние,
// пересчитывается после каждой мутации корзины. Позиция, отсутствующая
// в меню, даёт вклад 0, а не ошибку.
func Total(c Cart, items []*models.MenuItem) float64 {
	total := 0.0
	for itemID, qty := range c {
		if item := findItem(items, itemID); item != nil {
			total += item.Price * float64(qty)
		}
	}
	return total
}

func findItem(items []*models.MenuItem, itemID int64) *models.MenuItem {
	for _, item := range items {
		if item.ID == itemID {
			return item
		}
	}
	return nil
}
