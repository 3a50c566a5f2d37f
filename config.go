package gomicroauth

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is parsed once at startup and passed into the components that
// need it. Secrets and expirations follow the env names the deployment
// already uses.
type Config struct {
	Addr                   string        `env:"ADDR" envDefault:":8090"`
	MongoURI               string        `env:"MONGO_URI" envDefault:"mongodb://127.0.0.1:27017"`
	MongoDB                string        `env:"MONGO_DB" envDefault:"microauth"`
	AccessTokenSecret      string        `env:"ACCESS_TOKEN_SECRET"`
	RefreshTokenSecret     string        `env:"REFRESH_TOKEN_SECRET"`
	AccessTokenExpiration  time.Duration `env:"ACCESS_TOKEN_EXPIRATION" envDefault:"15m"`
	RefreshTokenExpiration time.Duration `env:"REFRESH_TOKEN_EXPIRATION" envDefault:"168h"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must be set")
	}
	return cfg, nil
}
