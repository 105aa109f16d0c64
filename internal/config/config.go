package config

import (
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"Europe/Moscow"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Clinic struct {
		URL            string `env:"CLINIC_API_URL"`
		TimeoutSeconds int    `env:"CLINIC_API_TIMEOUT_SECONDS" envDefault:"10"`
	}

	Session struct {
		RedisEnabled bool   `env:"SESSION_REDIS_ENABLED"`
		RedisAddr    string `env:"SESSION_REDIS_ADDR" envDefault:"localhost:6379"`
		RedisDB      int    `env:"SESSION_REDIS_DB" envDefault:"0"`
		TTLHours     int    `env:"SESSION_TTL_HOURS" envDefault:"24"`
	}

	RabbitMQ struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED"`
		URL      string `env:"RABBITMQ_URL"`
		Queue    string `env:"RABBITMQ_QUEUE" envDefault:"booking-gateway.appointment"`
		Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"clinic"`
		Bind     string `env:"RABBITMQ_QUEUE_BIND" envDefault:"clinic.booking-gateway.appointment.*"`
	}

	Cache struct {
		Enabled bool `env:"CACHE_ENABLED"`
		Size    int  `env:"CACHE_SIZE" envDefault:"1000"`
	}
}

func NewConfig() (*Config, error) {
	// Локальный .env, если он есть. В контейнере его не будет - это не ошибка
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Без брокера кэш протухает молча, поэтому без RabbitMQ кэш не включаем
	if !cfg.RabbitMQ.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
