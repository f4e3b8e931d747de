// Package config собирает настройки клиента из .env файла и окружения.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	// DefaultServerURL адрес сервера по умолчанию
	DefaultServerURL = "http://localhost:8080"
	// DefaultLogLevel уровень логирования по умолчанию
	DefaultLogLevel = "info"

	envServerURL = "INKPRESS_SERVER_URL"
	envLogLevel  = "INKPRESS_LOG_LEVEL"
)

// Config — настройки клиента
type Config struct {
	ServerURL string // базовый адрес сервера API
	LogLevel  string // уровень логирования zerolog
}

// Load читает .env (если он есть) и переменные окружения.
// Флаги командной строки перекрывают эти значения в main.
func Load() Config {
	// Отсутствие .env не ошибка
	_ = godotenv.Load()

	cfg := Config{
		ServerURL: DefaultServerURL,
		LogLevel:  DefaultLogLevel,
	}
	if v := os.Getenv(envServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}
