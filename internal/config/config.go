package config

import (
	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

type Config struct {
	APIServerAddress string `json:"api_server_address" env:"API_SERVER_ADDRESS" envDefault:"127.0.0.1:8080"`
	LogLevel         int    `json:"log_level" env:"LOG_LEVEL" envDefault:"-1"`
}

func MustNewConfig() *Config {
	godotenv.Load()

	c := &Config{}
	env.Parse(c)

	return c
}
