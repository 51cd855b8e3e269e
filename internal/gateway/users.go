package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/linemk/foodcart/internal/domain/models"
)

// RegisterRequest — тело запроса на регистрацию
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// AuthResponse — ответ сервера на вход или регистрацию
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UnmarshalJSON принимает обе формы ответа: историческое поле
// access_token и более новое token
func (r *AuthResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		Token       string       `json:"token"`
		AccessToken string       `json:"access_token"`
		User        *models.User `json:"user"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Token = raw.Token
	if r.Token == "" {
		r.Token = raw.AccessToken
	}
	r.User = raw.User
	return nil
}

// Login аутентифицирует пользователя.
// Сервер принимает form-encoded пару username/password, где username — это email.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	const op = "gateway.Login"

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	resp := &AuthResponse{}
	if err := c.doForm(ctx, "/users/login", form, resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resp, nil
}

// Register создаёт нового пользователя и сразу выдаёт ему токен
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	const op = "gateway.Register"

	resp := &AuthResponse{}
	if err := c.doJSON(ctx, http.MethodPost, "/users/register", req, resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resp, nil
}
