package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config хранит конфигурацию сервиса
type Config struct {
	ServerAddress  string
	ISGDEndpoint   string
	RelayEndpoint  string
	RequestTimeout time.Duration
}

// NewConfig читает переменные окружения и флаги, флаг имеет приоритет
func NewConfig(args []string) (*Config, error) {
	v := viper.New()
	v.SetDefault("SERVER_ADDRESS", "localhost:8080")
	v.SetDefault("ISGD_ENDPOINT", "https://is.gd/create.php")
	v.SetDefault("RELAY_ENDPOINT", "https://api.allorigins.win/get")
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.AutomaticEnv()

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	serverAddress := fs.String("a", "", "server address")
	endpoint := fs.String("e", "", "is.gd create endpoint")
	relay := fs.String("r", "", "relay endpoint")
	timeout := fs.Duration("t", 0, "timeout per outbound request")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerAddress:  v.GetString("SERVER_ADDRESS"),
		ISGDEndpoint:   v.GetString("ISGD_ENDPOINT"),
		RelayEndpoint:  v.GetString("RELAY_ENDPOINT"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
	}
	if *serverAddress != "" {
		cfg.ServerAddress = *serverAddress
	}
	if *endpoint != "" {
		cfg.ISGDEndpoint = *endpoint
	}
	if *relay != "" {
		cfg.RelayEndpoint = *relay
	}
	if *timeout > 0 {
		cfg.RequestTimeout = *timeout
	}
	return cfg, cfg.Validate()
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return fmt.Errorf("адрес сервера не может быть пустым")
	}
	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("таймаут не может быть отрицательным")
	}
	return nil
}
