package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config defines VoltEdge service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"VOLTEDGE_HTTP_PORT"`
	} `yaml:"http"`
	Auth struct {
		JWTSecret   string `yaml:"jwtSecret" env:"VOLTEDGE_JWT_SECRET"`
		TokenTTLMin int    `yaml:"tokenTtlMinutes" env:"VOLTEDGE_TOKEN_TTL_MIN"`
		BcryptCost  int    `yaml:"bcryptCost" env:"VOLTEDGE_BCRYPT_COST"`
	} `yaml:"auth"`
	Billing struct {
		StartingBalance float64 `yaml:"startingBalance" env:"VOLTEDGE_STARTING_BALANCE"`
	} `yaml:"billing"`
}

// Load reads configuration from the optional CONFIG_FILE YAML and the
// environment.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8080"
	cfg.Auth.TokenTTLMin = 60
	cfg.Billing.StartingBalance = 50.0

	if err := loadInto(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		return nil, errors.New("config: jwt secret required")
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// TokenTTL returns the token validity window as a duration.
func (c *Config) TokenTTL() time.Duration {
	if c.Auth.TokenTTLMin <= 0 {
		return time.Hour
	}
	return time.Duration(c.Auth.TokenTTLMin) * time.Minute
}
