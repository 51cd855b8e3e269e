package session_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linemk/foodcart/internal/domain/models"
	"github.com/linemk/foodcart/internal/session"
	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func testUser() *models.User {
	return &models.User{ID: 42, Name: "Test", Email: "test@example.com", Role: models.RoleCustomer}
}

func TestFileStore_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := session.NewFileStore(path)
	assert.NoError(t, err)

	// Пустое хранилище — сессии нет
	_, err = store.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)

	err = store.Save(&session.Session{Token: "tok", User: testUser()})
	assert.NoError(t, err)

	loaded, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, "tok", loaded.Token)
	assert.Equal(t, int64(42), loaded.User.ID)

	assert.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)

	// Повторная очистка безопасна
	assert.NoError(t, store.Clear())
}

func TestManager_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := session.NewFileStore(path)
	assert.NoError(t, err)
	manager := session.NewManager(testLogger(), store)
	assert.NoError(t, manager.Set("tok", testUser()))

	// "Перезапуск": новый менеджер поверх того же файла
	store2, err := session.NewFileStore(path)
	assert.NoError(t, err)
	restored := session.NewManager(testLogger(), store2)

	assert.Equal(t, "tok", restored.Token())
	assert.Equal(t, int64(42), restored.User().ID)
}

func TestManager_ClearDropsSession(t *testing.T) {
	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	assert.NoError(t, err)

	manager := session.NewManager(testLogger(), store)
	assert.NoError(t, manager.Set("tok", testUser()))

	manager.Clear()

	assert.Empty(t, manager.Token())
	assert.Nil(t, manager.User())
	_, err = store.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestManager_UpdateUser(t *testing.T) {
	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	assert.NoError(t, err)

	manager := session.NewManager(testLogger(), store)
	assert.NoError(t, manager.Set("tok", testUser()))

	updated := *testUser()
	updated.RestaurantID = 55
	assert.NoError(t, manager.Update(&updated))

	// Обновление персистентно
	loaded, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, int64(55), loaded.User.RestaurantID)
}

// signedToken выпускает токен с заданным сроком действия.
// Секрет знает только сервер; клиент подпись не проверяет.
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("server-side-secret"))
	assert.NoError(t, err)
	return signed
}

func TestManager_ExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed := signedToken(t, exp)

	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	assert.NoError(t, err)
	manager := session.NewManager(testLogger(), store)
	assert.NoError(t, manager.Set(signed, testUser()))

	got, err := manager.ExpiresAt()
	assert.NoError(t, err)
	assert.True(t, got.Equal(exp), "expiration must come from token claims")
}

func TestManager_DiscardsExpiredStoredSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := session.NewFileStore(path)
	assert.NoError(t, err)

	// В файле лежит сессия с уже истёкшим токеном
	signed := signedToken(t, time.Now().Add(-time.Hour))
	assert.NoError(t, store.Save(&session.Session{Token: signed, User: testUser()}))

	manager := session.NewManager(testLogger(), store)

	// Протухшая сессия не восстанавливается и вычищается из хранилища
	assert.Nil(t, manager.User())
	assert.Empty(t, manager.Token())
	_, err = store.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestManager_RestoresUnexpiredSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := session.NewFileStore(path)
	assert.NoError(t, err)

	signed := signedToken(t, time.Now().Add(time.Hour))
	assert.NoError(t, store.Save(&session.Session{Token: signed, User: testUser()}))

	manager := session.NewManager(testLogger(), store)

	assert.Equal(t, signed, manager.Token())
	assert.Equal(t, int64(42), manager.User().ID)
}

func TestRedisStore_SaveLoadClear(t *testing.T) {
	srv := miniredis.RunT(t)

	store := session.NewRedisStore(srv.Addr(), "", 0, "foodcart:session")

	_, err := store.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)

	err = store.Save(&session.Session{Token: "tok", User: testUser()})
	assert.NoError(t, err)

	loaded, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, "tok", loaded.Token)
	assert.Equal(t, "test@example.com", loaded.User.Email)

	assert.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)
}
