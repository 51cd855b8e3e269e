package models

// Типы платёжных методов
const (
	PaymentTypeCard   = "card"
	PaymentTypeUPI    = "upi"
	PaymentTypeWallet = "wallet"
)

// PaymentMethod представляет платёжный метод пользователя.
// Методы существуют только на стороне клиента, API о них не знает.
type PaymentMethod struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Details string `json:"details"`
	Default bool   `json:"is_default"`
}
