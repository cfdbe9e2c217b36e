// Package config загружает настройки ботов из окружения.
package config

import (
	"fmt"
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config — общие настройки обоих ботов. Токены и id администратора
// приходят из окружения или из .env рядом с бинарником.
type Config struct {
	Env             string `env:"ENV" env-default:"local"`
	DatabasePath    string `env:"DATABASE_PATH" env-default:"bot.db"`
	SalesBotToken   string `env:"SALES_BOT_TOKEN"`
	ResultsBotToken string `env:"RESULTS_BOT_TOKEN"`
	AdminID         int64  `env:"ADMIN_ID"`
}

// Load читает .env (если есть) и переменные окружения.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return &cfg, nil
}

// MustLoad — Load с аварийным завершением при ошибке.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}
