package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Auth
		OpenAI
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Auth struct {
		SecretKey  string        // HMAC signing key for bearer tokens
		TokenTTL   time.Duration // Lifetime of issued tokens
		BcryptCost int
	}
	OpenAI struct {
		APIKey  string
		BaseURL string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Auth defaults
	v.SetDefault("auth_secret_key", "") // Generated at startup if empty
	v.SetDefault("auth_token_ttl", "30m")
	v.SetDefault("auth_bcrypt_cost", DefaultBcryptCost)

	// Chat proxy defaults
	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_base_url", DefaultOpenAIBaseURL)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			SecretKey:  v.GetString("AUTH_SECRET_KEY"),
			TokenTTL:   v.GetDuration("AUTH_TOKEN_TTL"),
			BcryptCost: v.GetInt("AUTH_BCRYPT_COST"),
		},
		OpenAI: OpenAI{
			APIKey:  v.GetString("OPENAI_API_KEY"),
			BaseURL: v.GetString("OPENAI_BASE_URL"),
		},
	}
}
