package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/linemk/foodcart/internal/domain/models"
)

var ErrNoSession = errors.New("no active session")

// Session — учётные данные пользователя между запусками клиента
type Session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Store отвечает за персистентное хранение сессии.
// Реализации: файл в каталоге конфигурации пользователя и Redis.
type Store interface {
	Load() (*Session, error)
	Save(s *Session) error
	Clear() error
}

// Manager — явный владелец состояния сессии.
// Сессия устанавливается при входе/регистрации, сбрасывается при выходе
// или при 401 от сервера. Никакого обращения к хранилищу из произвольных мест.
type Manager struct {
	log   *slog.Logger
	store Store

	mu      sync.Mutex
	current *Session
}

func NewManager(log *slog.Logger, store Store) *Manager {
	m := &Manager{log: log, store: store}

	// Восстанавливаем сессию прошлого запуска, если она была
	s, err := store.Load()
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			log.Warn("failed to restore session", slog.Any("error", err))
		}
		return m
	}

	// Протухшую сессию не восстанавливаем: сервер всё равно ответит 401,
	// лучше сразу отправить пользователя на вход
	if expired(s.Token) {
		log.Info("stored session has expired, discarding")
		if err := store.Clear(); err != nil {
			log.Warn("failed to clear expired session", slog.Any("error", err))
		}
		return m
	}

	m.current = s
	return m
}

// Current возвращает активную сессию или nil
func (m *Manager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// User возвращает пользователя активной сессии или nil
func (m *Manager) User() *models.User {
	if s := m.Current(); s != nil {
		return s.User
	}
	return nil
}

// Set сохраняет новую сессию после успешного входа или регистрации
func (m *Manager) Set(token string, user *models.User) error {
	const op = "session.Manager.Set"

	s := &Session{Token: token, User: user}
	if err := m.store.Save(s); err != nil {
		return fmt.Errorf("%s: failed to persist session: %w", op, err)
	}

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()

	m.log.Info("session established", slog.Int64("userID", user.ID))
	return nil
}

// Update перезаписывает данные пользователя в активной сессии
// (например, после создания ресторана владельцем)
func (m *Manager) Update(user *models.User) error {
	const op = "session.Manager.Update"

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return fmt.Errorf("%s: %w", op, ErrNoSession)
	}
	m.current.User = user
	if err := m.store.Save(m.current); err != nil {
		return fmt.Errorf("%s: failed to persist session: %w", op, err)
	}
	return nil
}

// Token реализует gateway.TokenSource
func (m *Manager) Token() string {
	if s := m.Current(); s != nil {
		return s.Token
	}
	return ""
}

// Clear сбрасывает сессию: выход пользователя или 401 от сервера
func (m *Manager) Clear() {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		m.log.Warn("failed to clear stored session", slog.Any("error", err))
	}
	m.log.Info("session cleared")
}

// ExpiresAt читает срок действия токена из его claims.
// Подпись не проверяется: секрет принадлежит серверу, клиенту
// достаточно знать, когда токен протухнет.
func (m *Manager) ExpiresAt() (time.Time, error) {
	const op = "session.Manager.ExpiresAt"

	s := m.Current()
	if s == nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, ErrNoSession)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, fmt.Errorf("%s: failed to parse token: %w", op, err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("%s: token has no expiration claim", op)
	}
	return exp.Time, nil
}

// expired сообщает, истёк ли срок действия токена.
// Токен без claim exp или не в формате JWT считается живым:
// окончательное решение за сервером.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(time.Now())
}
