package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type (
	APP struct {
		Name          string
		Host          string
		Port          string
		Env           string
		JWTSecret     string
		JWTExpiration time.Duration
	}
	DB struct {
		User     string
		Password string
		Name     string
		Host     string
		Port     string
	}
	Geo struct {
		BrasilAPIURL   string
		OpenCageURL    string
		OpenCageAPIKey string
		Timeout        time.Duration
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}

	Config struct {
		App APP
		DB  DB
		Geo Geo
		MQ  MQ
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvDurationMS(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}

func Load() Config {
	app := APP{
		Name:          getEnv("SERVICE_NAME", "sportmeet-api"),
		Host:          getEnv("SERVICE_HOST", ""),
		Port:          getEnv("SERVICE_PORT", "8080"),
		Env:           getEnv("SERVICE_ENV", ""),
		JWTSecret:     getEnv("SERVICE_JWT_SECRET", ""),
		JWTExpiration: getEnvDurationMS("SERVICE_JWT_EXPIRATION_MS", 2*time.Hour),
	}
	db := DB{
		User:     getEnv("POSTGRES_USER", ""),
		Password: getEnv("POSTGRES_PASSWORD", ""),
		Name:     getEnv("POSTGRES_DB", ""),
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", ""),
	}
	geo := Geo{
		BrasilAPIURL:   getEnv("GEO_BRASILAPI_URL", "https://brasilapi.com.br/api/cep/v2"),
		OpenCageURL:    getEnv("GEO_OPENCAGE_URL", "https://api.opencagedata.com/geocode/v1/json"),
		OpenCageAPIKey: getEnv("GEO_OPENCAGE_API_KEY", ""),
		Timeout:        getEnvDurationMS("GEO_TIMEOUT_MS", 5*time.Second),
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", ""),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", ""),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", ""),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", ""),
	}

	return Config{
		App: app,
		DB:  db,
		Geo: geo,
		MQ:  mq,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
