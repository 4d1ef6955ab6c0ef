package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/other.db")
	t.Setenv("AUTH_BCRYPT_COST", "10")

	cfg := NewConfig()

	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}
