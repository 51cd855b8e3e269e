package cart_test

import (
	"testing"

	"github.com/linemk/foodcart/internal/cart"
	"github.com/linemk/foodcart/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func menuFixture() []*models.MenuItem {
	return []*models.MenuItem{
		{ID: 1, Name: "Margherita", Price: 10.00, Category: "Pizza"},
		{ID: 2, Name: "Cola", Price: 5.50, Category: "Drinks"},
		{ID: 3, Name: "Tiramisu", Price: 7.25},
	}
}

func TestCart_AddAndRemove(t *testing.T) {
	c := cart.New()

	c.Add(1)
	c.Add(1)
	c.Add(2)

	assert.Equal(t, 2, c.Quantity(1))
	assert.Equal(t, 1, c.Quantity(2))
	assert.Equal(t, 3, c.ItemCount())

	// Удаление до нуля убирает запись целиком
	c.Remove(2)
	_, exists := c[2]
	assert.False(t, exists, "entry at zero must be deleted, not stored")
	assert.Equal(t, 2, c.ItemCount())
}

func TestCart_QuantitiesAlwaysPositive(t *testing.T) {
	c := cart.New()

	// Произвольная последовательность операций не должна оставить
	// записей с количеством <= 0
	ops := []struct {
		add    bool
		itemID int64
	}{
		{true, 1}, {true, 1}, {false, 1}, {false, 1}, {false, 1},
		{true, 2}, {false, 2}, {false, 2}, {true, 3},
	}
	for _, op := range ops {
		if op.add {
			c.Add(op.itemID)
		} else {
			c.Remove(op.itemID)
		}
	}

	for itemID, qty := range c {
		assert.Greater(t, qty, 0, "item %d has non-positive quantity", itemID)
	}
}

func TestCart_RemoveAbsentIsNoop(t *testing.T) {
	c := cart.New()

	// Удаление отсутствующей позиции ничего не ломает
	assert.NotPanics(t, func() {
		c.Remove(42)
	})
	assert.Empty(t, c)

	// Двойное удаление позиции с количеством 1 тоже безопасно
	c.Add(1)
	c.Remove(1)
	c.Remove(1)
	assert.Empty(t, c)
}

func TestCart_RemoveLastLeavesEmptyCart(t *testing.T) {
	c := cart.Cart{1: 1}
	c.Remove(1)
	assert.Equal(t, cart.Cart{}, c)
}

func TestTotal(t *testing.T) {
	c := cart.Cart{1: 2, 2: 1}

	// {itemA: 2, itemB: 1} при ценах {10.00, 5.50} -> 25.50
	assert.InDelta(t, 25.50, cart.Total(c, menuFixture()), 1e-9)
	assert.Equal(t, 3, c.ItemCount())
}

func TestTotal_IsPureAndDoesNotMutate(t *testing.T) {
	c := cart.Cart{1: 2, 3: 1}
	items := menuFixture()

	first := cart.Total(c, items)
	second := cart.Total(c, items)

	assert.Equal(t, first, second, "total must be deterministic")
	assert.Equal(t, cart.Cart{1: 2, 3: 1}, c, "total must not mutate the cart")
	assert.Equal(t, menuFixture(), items, "total must not mutate the menu")
}

func TestTotal_MissingItemContributesZero(t *testing.T) {
	// Позиция 99 отсутствует в меню — её вклад 0, остальное считается
	c := cart.Cart{1: 1, 99: 5}
	assert.InDelta(t, 10.00, cart.Total(c, menuFixture()), 1e-9)
}

func TestCart_CloneIsIndependent(t *testing.T) {
	c := cart.Cart{1: 2}
	clone := c.Clone()

	clone.Add(1)
	clone.Add(2)

	assert.Equal(t, 2, c.Quantity(1), "mutating the clone must not touch the original")
	assert.Equal(t, 0, c.Quantity(2))
}

func TestNewCheckout_CopiesCartAndComputesTotal(t *testing.T) {
	c := cart.Cart{1: 2, 2: 1}
	restaurant := &models.Restaurant{ID: 7, Name: "Pizzeria"}

	bundle := cart.NewCheckout(c, restaurant, menuFixture())

	assert.InDelta(t, 25.50, bundle.Total, 1e-9)
	assert.Equal(t, restaurant, bundle.Restaurant)

	// Набор несёт копию корзины: дальнейшие изменения исходной
	// корзины его не затрагивают
	c.Add(1)
	assert.Equal(t, 2, bundle.Cart.Quantity(1))
}
