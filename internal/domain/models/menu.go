package models

import "time"

// MenuItem представляет позицию меню ресторана.
// В рамках сессии клиент считает её неизменяемой: меню запрашивается заново
// при каждом открытии ресторана.
type MenuItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Category  string    `json:"category,omitempty"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// GroupByCategory группирует позиции меню по категориям для отображения.
// Позиции без категории попадают в группу "Other".
func GroupByCategory(items []*MenuItem) map[string][]*MenuItem {
	groups := make(map[string][]*MenuItem)
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = "Other"
		}
		groups[category] = append(groups[category], item)
	}
	return groups
}
