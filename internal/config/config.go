package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	BrandName   string `env:"BRAND_NAME" envDefault:"AB Jewelery"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Email struct {
		Service string `env:"SERVICE" envDefault:"gmail"`
		// 凭据缺失不在这里校验，由发送邮件时报错
		User string `env:"USER"`
		Pass string `env:"PASS"`
		SMTP struct {
			Host    string `env:"HOST"`
			Port    int    `env:"PORT"`
			Timeout int    `env:"TIMEOUT" envDefault:"15"`
		} `envPrefix:"SMTP_"`
		SES struct {
			Region string `env:"REGION" envDefault:"us-east-1"`
		} `envPrefix:"SES_"`
	} `envPrefix:"EMAIL_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
