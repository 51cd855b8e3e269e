package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/linemk/foodcart/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestMustLoadByPath_Success(t *testing.T) {
	// Пример содержимого конфигурационного файла
	content := `
env: "local"
gateway:
  base_url: "http://localhost:8000"
  timeout: "10s"
session:
  backend: "file"
  path: "/tmp/foodcart-session.json"
  redis:
    address: "localhost:6379"
    db: 1
    key: "foodcart:session"
dashboard:
  poll_interval: "30s"
  recent_orders: 5
`
	// Создаем временный файл с конфигурацией
	tmpFile, err := os.CreateTemp("", "config_test_*.yaml")
	assert.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	_, err = tmpFile.WriteString(content)
	assert.NoError(t, err)
	err = tmpFile.Close()
	assert.NoError(t, err)

	// Загружаем конфигурацию из временного файла
	cfg := config.MustLoadByPath(tmpFile.Name())

	// Проверяем, что конфигурация загружена корректно
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "http://localhost:8000", cfg.Gateway.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, "file", cfg.Session.Backend)
	assert.Equal(t, "/tmp/foodcart-session.json", cfg.Session.Path)
	assert.Equal(t, "localhost:6379", cfg.Session.Redis.Address)
	assert.Equal(t, 1, cfg.Session.Redis.DB)
	assert.Equal(t, "foodcart:session", cfg.Session.Redis.Key)
	assert.Equal(t, 30*time.Second, cfg.Dashboard.PollInterval)
	assert.Equal(t, 5, cfg.Dashboard.RecentOrders)
}

func TestMustLoadByPath_FileNotFound(t *testing.T) {
	// Ожидаем панику, если файла не существует
	assert.Panics(t, func() {
		config.MustLoadByPath("non_existent_config.yaml")
	})
}
