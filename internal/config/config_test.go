package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLoad_Defaults проверяет значения по умолчанию без окружения
func TestLoad_Defaults(t *testing.T) {
	t.Setenv(envServerURL, "")
	t.Setenv(envLogLevel, "")

	cfg := Load()

	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

// TestLoad_EnvOverrides проверяет что окружение перекрывает умолчания
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(envServerURL, "https://inkpress.example.com")
	t.Setenv(envLogLevel, "debug")

	cfg := Load()

	assert.Equal(t, "https://inkpress.example.com", cfg.ServerURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}
