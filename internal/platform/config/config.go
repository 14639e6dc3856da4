package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config agrupa toda la configuración del proceso.
// Se llena una sola vez en main y se pasa explícito (nada de globals).
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	DB   DBConfig
	JWT  JWTConfig
	SMTP SMTPConfig
	Log  LogConfig
}

type AppConfig struct {
	Name string `env:"APP_NAME" env-default:"manolos-gestion"`
	Env  string `env:"APP_ENV" env-default:"dev"`
}

type HTTPConfig struct {
	Port         string        `env:"PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

type DBConfig struct {
	// DSN vacío => repos in-memory (modo dev, igual que el router sin DB).
	DSN string `env:"DB_DSN" env-default:""`
}

type JWTConfig struct {
	Secret    string        `env:"JWT_SECRET" env-default:""`
	ExpiresIn time.Duration `env:"JWT_EXPIRES_IN" env-default:"168h"`
}

type SMTPConfig struct {
	Host string `env:"SMTP_HOST" env-default:""`
	Port int    `env:"SMTP_PORT" env-default:"587"`
	User string `env:"SMTP_USER" env-default:""`
	Pass string `env:"SMTP_PASS" env-default:""`
	From string `env:"SMTP_FROM" env-default:""`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}
