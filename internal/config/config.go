package config

import (
	"github.com/spf13/viper"
)

// Config is everything main needs to wire the process, read from an
// optional config.toml plus environment variables. Env wins over file.
type Config struct {
	Port     string
	LogLevel string

	// Brand lookup service
	BrandfetchClientID string

	// Identity provider
	AuthProviderURL string
	AuthAPIKey      string
	AuthCallbackURL string

	// SeedData controls whether the store starts with the sample board.
	SeedData bool
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("store.seed_data", true)
	v.SetDefault("auth.callback_url", "http://localhost:8080/auth/callback")

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; env and defaults cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.AutomaticEnv()
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("store.seed_data", "SEED_DATA")
	_ = v.BindEnv("brandfetch.client_id", "BRANDFETCH_CLIENT_ID")
	_ = v.BindEnv("auth.provider_url", "AUTH_PROVIDER_URL")
	_ = v.BindEnv("auth.api_key", "AUTH_API_KEY")
	_ = v.BindEnv("auth.callback_url", "AUTH_CALLBACK_URL")

	return &Config{
		Port:               v.GetString("server.port"),
		LogLevel:           v.GetString("log.level"),
		BrandfetchClientID: v.GetString("brandfetch.client_id"),
		AuthProviderURL:    v.GetString("auth.provider_url"),
		AuthAPIKey:         v.GetString("auth.api_key"),
		AuthCallbackURL:    v.GetString("auth.callback_url"),
		SeedData:           v.GetBool("store.seed_data"),
	}, nil
}
