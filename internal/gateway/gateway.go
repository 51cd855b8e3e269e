package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/linemk/foodcart/internal/lib/logger/handlers/httplog"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// APIError — ошибка уровня API с сообщением detail от сервера.
// Для 4xx detail показывается пользователю дословно, для 5xx текст общий.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("unexpected server error (status %d)", e.Status)
}

// TokenSource отдаёт текущий bearer-токен сессии.
// Clear вызывается при 401: локальные учётные данные сбрасываются,
// дальше пользователь отправляется на вход.
type TokenSource interface {
	Token() string
	Clear()
}

// Client — HTTP-клиент внешнего API (рестораны, меню, заказы, пользователи).
// Вся бизнес-логика живёт на сервере, клиент только ходит по контракту.
type Client struct {
	log     *slog.Logger
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(log *slog.Logger, baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		log:     log,
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: httplog.NewLoggingRoundTripper(log, nil),
		},
		tokens: tokens,
	}
}

// do выполняет запрос, подставляет bearer-токен и разбирает ответ в out.
// Возвращает ErrUnauthorized (со сбросом сессии), ErrNotFound или APIError.
func (c *Client) do(ctx context.Context, method, path string, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// Сервер отверг токен — локальная сессия больше недействительна
		c.log.Warn("got 401, clearing local session")
		c.tokens.Clear()
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		return &APIError{Status: resp.StatusCode}
	case resp.StatusCode >= 400:
		return &APIError{Status: resp.StatusCode, Detail: decodeDetail(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, "application/json", reader, out)
}

func (c *Client) doForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), out)
}

// decodeDetail достаёт поле detail из тела ошибки, как его отдаёт сервер
func decodeDetail(r io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	return payload.Detail
}
