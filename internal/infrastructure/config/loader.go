package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment.
// A missing config file is not an error; defaults and environment variables apply.
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom loads the named environment's config from the given directories
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Set environment variables to override config
	v.SetEnvPrefix("WL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 30)      // seconds, covers the inline reply call
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")

	v.SetDefault("whatsapp.apiBaseUrl", "https://graph.facebook.com")
	v.SetDefault("whatsapp.apiVersion", "v17.0")
	v.SetDefault("whatsapp.requestTimeout", 10) // seconds
	v.SetDefault("whatsapp.breakerFailureThreshold", 5)
	v.SetDefault("whatsapp.breakerOpenTimeout", 30) // seconds
}

// getEnvironment determines the environment to use based on WL_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("WL_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string][]string{
		"database.driver":   {"WL_DB_DRIVER"},
		"database.host":     {"WL_DB_HOST"},
		"database.port":     {"WL_DB_PORT"},
		"database.username": {"WL_DB_USERNAME"},
		"database.password": {"WL_DB_PASSWORD"},
		"database.database": {"WL_DB_NAME"},
		"database.sslMode":  {"WL_DB_SSL_MODE"},
		"logger.level":      {"WL_LOGGER_LEVEL"},

		// The unprefixed names are what the webhook deployments already export
		"whatsapp.verifyToken":       {"WL_WHATSAPP_VERIFY_TOKEN", "WHATSAPP_VERIFY_TOKEN"},
		"whatsapp.apiToken":          {"WL_WHATSAPP_API_TOKEN", "WHATSAPP_API_TOKEN"},
		"whatsapp.phoneNumberId":     {"WL_WHATSAPP_PHONE_NUMBER_ID", "WHATSAPP_PHONE_NUMBER_ID"},
		"whatsapp.manualEntrySecret": {"WL_WHATSAPP_SECRET_KEY", "WHATSAPP_SECRET_KEY"},
		"whatsapp.apiBaseUrl":        {"WL_WHATSAPP_API_BASE_URL"},
		"whatsapp.apiVersion":        {"WL_WHATSAPP_API_VERSION"},
	}

	for key, names := range overrides {
		for _, name := range names {
			if value := os.Getenv(name); value != "" {
				v.Set(key, value)
				break
			}
		}
	}

	if port := getEnvInt("WL_SERVER_PORT", 0); port > 0 {
		v.Set("server.port", port)
	}
	if maxOpenConns := getEnvInt("WL_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("WL_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if timeout := getEnvInt("WL_WHATSAPP_REQUEST_TIMEOUT_SECONDS", 0); timeout > 0 {
		v.Set("whatsapp.requestTimeout", timeout)
	}
}

// getEnvInt reads an integer from the environment, falling back to defaultValue
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// processDurations converts raw numeric values to time.Duration
func processDurations(config *Config) {
	// Convert seconds to time.Duration
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	// Convert minutes to time.Duration
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute

	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.WhatsApp.RequestTimeout = time.Duration(config.WhatsApp.RequestTimeout) * time.Second
	config.WhatsApp.BreakerOpenTimeout = time.Duration(config.WhatsApp.BreakerOpenTimeout) * time.Second
}
