package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Load reads configurations from the TOML file at path, then applies
// environment overrides for values that should not live in the file.
func Load(path string) (Configs, error) {
	cfg := defaultConfigs()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	override(&cfg.Database.Host, "DB_HOST")
	override(&cfg.Database.Port, "DB_PORT")
	override(&cfg.Database.Database, "DB_NAME")
	override(&cfg.Database.User, "DB_USER")
	override(&cfg.Database.Password, "DB_PASSWORD")
	override(&cfg.Redis.Addr, "REDIS_ADDR")
	override(&cfg.Auth.TokenSecret, "TOKEN_SECRET")
	override(&cfg.Session.Secret, "SESSION_SECRET")
	override(&cfg.ApiServer.Port, "PORT")

	return cfg, nil
}

func defaultConfigs() Configs {
	cfg := Configs{Env: "local"}
	cfg.ApiServer.Host = "0.0.0.0"
	cfg.ApiServer.Port = "8080"
	cfg.ApiServer.DefaultLimit = 20
	cfg.ApiServer.MaxLimit = 50
	cfg.Auth.AccessToken.Name = "access_token"
	cfg.Auth.AccessToken.Expiration.Duration = 24 * time.Hour
	cfg.Session.Name = "admin_session"
	cfg.Onboarding.DefaultBonus = "500"
	return cfg
}

func override(target *string, env string) {
	if v := os.Getenv(env); v != "" {
		*target = v
	}
}
