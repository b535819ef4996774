package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config хранит конфигурацию сервиса. Создаётся один раз при старте
// и дальше только читается.
type Config struct {
	ServerAddress   string
	SigningSecret   string
	APIKey          string
	APIBaseURL      string
	AppName         string
	RetryMax        uint64
	RetryWait       time.Duration
	RequestTimeout  time.Duration
	SignatureMaxAge time.Duration
}

// MaxRetryMax ограничивает RETRY_MAX: пауза удваивается на каждой попытке,
// и RETRY_WAIT<<RETRY_MAX должен помещаться в time.Duration.
const MaxRetryMax = 10

var (
	ErrMissingSigningSecret = errors.New("SLACK_SIGNING_SECRET is not set")
	ErrMissingAPIKey        = errors.New("I90_API_KEY is not set")
	ErrInvalidRetryMax      = fmt.Errorf("RETRY_MAX must be between 0 and %d", MaxRetryMax)
)

// NewConfig собирает конфигурацию: флаги > переменные окружения > .env > значения по умолчанию.
func NewConfig(args []string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("SLACK_SIGNING_SECRET", "")
	v.SetDefault("I90_API_KEY", "")
	v.SetDefault("API_BASE_URL", "https://go.voteamerica.com")
	v.SetDefault("APP_NAME", "slack")
	v.SetDefault("RETRY_MAX", 3)
	v.SetDefault("RETRY_WAIT", time.Second)
	v.SetDefault("REQUEST_TIMEOUT", 30*time.Second)
	v.SetDefault("SIGNATURE_MAX_AGE", time.Duration(0))

	v.AutomaticEnv()

	// Читаем .env, если есть (не переопределяет переменные окружения)
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	fs := pflag.NewFlagSet("shortenbot", pflag.ContinueOnError)
	fs.StringP("address", "a", "", "server address")
	fs.StringP("base-url", "b", "", "shortener API base URL")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if err := v.BindPFlag("SERVER_ADDRESS", fs.Lookup("address")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("API_BASE_URL", fs.Lookup("base-url")); err != nil {
		return nil, err
	}

	// GetUint64 молча превращает -1 в 0
	retryMax := v.GetInt("RETRY_MAX")
	if retryMax < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRetryMax, retryMax)
	}

	cfg := &Config{
		ServerAddress:   v.GetString("SERVER_ADDRESS"),
		SigningSecret:   v.GetString("SLACK_SIGNING_SECRET"),
		APIKey:          v.GetString("I90_API_KEY"),
		APIBaseURL:      v.GetString("API_BASE_URL"),
		AppName:         v.GetString("APP_NAME"),
		RetryMax:        uint64(retryMax),
		RetryWait:       v.GetDuration("RETRY_WAIT"),
		RequestTimeout:  v.GetDuration("REQUEST_TIMEOUT"),
		SignatureMaxAge: v.GetDuration("SIGNATURE_MAX_AGE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.SigningSecret == "" {
		return ErrMissingSigningSecret
	}
	if cfg.APIKey == "" {
		return ErrMissingAPIKey
	}
	if cfg.ServerAddress == "" {
		return fmt.Errorf("адрес сервера не может быть пустым")
	}
	if cfg.APIBaseURL == "" {
		return fmt.Errorf("базовый URL API не может быть пустым")
	}
	if cfg.RetryMax > MaxRetryMax {
		return fmt.Errorf("%w: got %d", ErrInvalidRetryMax, cfg.RetryMax)
	}
	if cfg.RetryWait < 0 || cfg.RequestTimeout < 0 || cfg.SignatureMaxAge < 0 {
		return fmt.Errorf("интервалы не могут быть отрицательными")
	}
	return nil
}
