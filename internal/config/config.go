package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress           string `env:"RUN_ADDRESS"`
	DatabaseDSN          string `env:"DATABASE_URI"`
	MigrationsDir        string `env:"MIGRATIONS_DIR"`
	JWTSecret            string `env:"JWT_SECRET"`
	Timezone             string `env:"CIVIL_TIMEZONE"`
	DailySendLimitCents  int64  `env:"DAILY_SEND_LIMIT_CENTS"`
	BillingWebhookSecret string `env:"BILLING_WEBHOOK_SECRET"`
}

// Location возвращает гражданскую таймзону, в которой считаются окна продажи алкоголя
// и границы суток для дневного лимита.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load civil timezone %q: %s", c.Timezone, err.Error())
	}
	return loc, nil
}

func LoadConfig() (*Config, error) {
	// .env опционален, в проде переменные приходят из окружения.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	if _, locErr := conf.Location(); locErr != nil {
		return nil, locErr
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTSecret, "s", "", "JWT signing secret")
	flag.StringVar(&flagConfig.Timezone, "tz", "America/Puerto_Rico", "Civil timezone for serving windows")
	flag.Int64Var(&flagConfig.DailySendLimitCents, "limit", 50000, "Daily outbound wallet limit in cents")
	flag.StringVar(&flagConfig.BillingWebhookSecret, "w", "", "Billing provider webhook secret")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:           defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:          defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:        defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:            defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		Timezone:             defaultIfBlank(envConfig.Timezone, flagsConfig.Timezone),
		DailySendLimitCents:  defaultIfZero(envConfig.DailySendLimitCents, flagsConfig.DailySendLimitCents),
		BillingWebhookSecret: defaultIfBlank(envConfig.BillingWebhookSecret, flagsConfig.BillingWebhookSecret),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfZero(value int64, defaultValue int64) int64 {
	if value == 0 {
		return defaultValue
	}
	return value
}
