// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DatabaseConfig holds the postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the settings as a keyword/value connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// KafkaConfig holds the event-publishing settings. Publishing is disabled
// when no brokers are configured.
type KafkaConfig struct {
	Brokers []string
}

// Enabled reports whether event publishing is configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// ServiceConfig holds all configuration for the sharing service.
type ServiceConfig struct {
	Port   string
	AppEnv string
	DB     DatabaseConfig
	Kafka  KafkaConfig
}

// Load reads configuration from SHARING_-prefixed environment variables with
// local-development defaults.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("SHARING")
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "9090")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "shareit")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("KAFKA_BROKERS", "")

	port := v.GetString("SERVER_PORT")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	var brokers []string
	if raw := v.GetString("KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	return &ServiceConfig{
		Port:   port,
		AppEnv: v.GetString("APP_ENV"),
		DB: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Kafka: KafkaConfig{Brokers: brokers},
	}, nil
}
