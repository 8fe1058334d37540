// Package config loads the gateway's process-wide configuration from
// environment variables at startup. Missing required variables are a
// fatal condition: the process refuses to start rather than limping on
// with an unusable backend.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	defaultHostAddress = "0.0.0.0"
	defaultHostPort    = 2322
	defaultPoolSize    = 50
)

// allValidLanguages is the fixed universe VALID_LANGUAGES must be a subset
// of; this service never builds field names for a language outside it.
var allValidLanguages = []string{"en", "de", "fr", "it"}

// Config holds all configuration for the gateway.
type Config struct {
	Environment string

	HostAddress string
	HostPort    int

	ElasticAPIKey  string
	ElasticCloudID string
	PoolSize       int

	ValidLanguages  []string
	DefaultLanguage string
}

// Load builds a Config from the environment, logging every resolved
// value at info level. It calls os.Exit(1) via logrus.Fatal if a
// required variable is missing or a supplied one is invalid, matching
// the fail-fast bootstrap contract: this service must never start
// against a backend it cannot reach.
func Load() *Config {
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),

		HostAddress: getEnv("HOST_ADDRESS", defaultHostAddress),
		HostPort:    getEnvInt("HOST_PORT", defaultHostPort),

		PoolSize: getEnvInt("POOL_SIZE", defaultPoolSize),

		ValidLanguages: getEnvLanguageList("VALID_LANGUAGES", allValidLanguages),
	}

	elasticAPIKey, ok := os.LookupEnv("ELASTIC_API_KEY")
	if !ok || elasticAPIKey == "" {
		logrus.Fatal("environment variable ELASTIC_API_KEY must be set")
	}
	cfg.ElasticAPIKey = elasticAPIKey

	elasticCloudID, ok := os.LookupEnv("ELASTIC_CLOUD_ID")
	if !ok || elasticCloudID == "" {
		logrus.Fatal("environment variable ELASTIC_CLOUD_ID must be set")
	}
	cfg.ElasticCloudID = elasticCloudID

	cfg.DefaultLanguage = getEnv("DEFAULT_LANGUAGE", "en")
	if !contains(cfg.ValidLanguages, cfg.DefaultLanguage) {
		logrus.Fatalf("DEFAULT_LANGUAGE %q must be a member of VALID_LANGUAGES %v", cfg.DefaultLanguage, cfg.ValidLanguages)
	}

	logrus.WithFields(logrus.Fields{
		"host_address":     cfg.HostAddress,
		"host_port":        cfg.HostPort,
		"pool_size":        cfg.PoolSize,
		"valid_languages":  cfg.ValidLanguages,
		"default_language": cfg.DefaultLanguage,
	}).Info("configuration loaded")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvLanguageList(key string, allValid []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return append([]string(nil), allValid...)
	}

	languages := strings.Split(value, ",")
	for i := range languages {
		languages[i] = strings.TrimSpace(languages[i])
	}

	for _, lang := range languages {
		if !contains(allValid, lang) {
			logrus.Fatal(fmt.Sprintf(
				"invalid language specified in %s: %q. Allowed languages are %v", key, lang, allValid))
		}
	}
	return languages
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
