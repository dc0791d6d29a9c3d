package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	MissionStoreRedis    = "redis"
	MissionStorePostgres = "postgres"

	EventSinkKafka = "kafka"
	EventSinkRedis = "redis"
)

// Config holds the application configuration
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Kafka Config
	KafkaBrokers           []string      `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaGroupID           string        `env:"KAFKA_GROUP_ID" envDefault:"mission-service"`
	KafkaClientID          string        `env:"KAFKA_CLIENT_ID" envDefault:"mission-service"`
	LocationUpdateTopic    string        `env:"KAFKA_LOCATION_UPDATE_TOPIC" envDefault:"topic-responder-location-update"`
	MissionEventTopic      string        `env:"KAFKA_MISSION_EVENT_TOPIC" envDefault:"topic-mission-event"`
	KafkaConnectMaxElapsed time.Duration `env:"KAFKA_CONNECT_MAX_ELAPSED" envDefault:"5m"`

	// Mission store
	MissionStore string        `env:"MISSION_STORE" envDefault:"redis"`
	MissionTTL   time.Duration `env:"MISSION_TTL" envDefault:"0"`
	DatabaseURL  string        `env:"DATABASE_URL"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Domain events
	EventSink   string `env:"EVENT_SINK" envDefault:"kafka"`
	EventSource string `env:"EVENT_SOURCE" envDefault:"mission-service"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig reads the configuration from the environment and an optional .env file
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		KafkaBrokers:           getEnvAsList("KAFKA_BROKERS", []string{"localhost:9092"}),
		KafkaGroupID:           getEnv("KAFKA_GROUP_ID", "mission-service"),
		KafkaClientID:          getEnv("KAFKA_CLIENT_ID", "mission-service"),
		LocationUpdateTopic:    getEnv("KAFKA_LOCATION_UPDATE_TOPIC", "topic-responder-location-update"),
		MissionEventTopic:      getEnv("KAFKA_MISSION_EVENT_TOPIC", "topic-mission-event"),
		KafkaConnectMaxElapsed: getEnvAsDuration("KAFKA_CONNECT_MAX_ELAPSED", 5*time.Minute),
		MissionStore:           strings.ToLower(getEnv("MISSION_STORE", MissionStoreRedis)),
		MissionTTL:             getEnvAsDuration("MISSION_TTL", 0),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		EventSink:              strings.ToLower(getEnv("EVENT_SINK", EventSinkKafka)),
		EventSource:            getEnv("EVENT_SOURCE", "mission-service"),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		APIKeys:                getEnvAsList("API_KEYS", nil),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.MissionStore {
	case MissionStoreRedis:
	case MissionStorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required when MISSION_STORE=%s", MissionStorePostgres)
		}
	default:
		return fmt.Errorf("unsupported MISSION_STORE %q", c.MissionStore)
	}

	switch c.EventSink {
	case EventSinkKafka, EventSinkRedis:
	default:
		return fmt.Errorf("unsupported EVENT_SINK %q", c.EventSink)
	}

	if len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS environment variable is required")
	}
	return nil
}

// getEnv returns the variable value or defaultValue
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the variable as int or defaultValue
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns the variable as time.Duration or defaultValue
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping empty items
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
