package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort        int           `mapstructure:"APP_PORT"`
	BackendURL     string        `mapstructure:"BACKEND_URL"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	LogFile        string        `mapstructure:"LOG_FILE"`
	TraceFile      string        `mapstructure:"TRACE_FILE"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 3000)
	viper.SetDefault("BACKEND_URL", "http://localhost:8000")
	viper.SetDefault("REQUEST_TIMEOUT", 60*time.Second)
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("TRACE_FILE", "")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")

	return &cfg, nil
}
