package config

import (
	"github.com/spf13/viper"
)

// DefaultDatabasePath is where the planner database lives unless
// DATABASE_PATH overrides it.
const DefaultDatabasePath = "./planner.db"

type (
	Config struct {
		Database
		Auth
	}

	Database struct {
		Path string
	}
	Auth struct {
		BcryptCost int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("auth_bcrypt_cost", 12) // bcrypt cost factor

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			BcryptCost: v.GetInt("AUTH_BCRYPT_COST"),
		},
	}
}
