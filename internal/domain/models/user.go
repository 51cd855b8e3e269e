package models

// Роли пользователей маркетплейса
const (
	RoleCustomer        = "customer"
	RoleRestaurantOwner = "restaurant_owner"
)

// User представляет пользователя, полученного от API
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	RestaurantID int64  `json:"restaurant_id,omitempty"` // Заполняется для владельца после создания ресторана
}

// IsOwner сообщает, является ли пользователь владельцем ресторана
func (u *User) IsOwner() bool {
	return u.Role == RoleRestaurantOwner
}
