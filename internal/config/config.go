/**
 * @description
 * This package handles the configuration management for the service. It uses the
 * Viper library to read configuration from environment variables, providing a
 * centralized and straightforward way to manage application settings.
 *
 * @dependencies
 * - github.com/spf13/viper: A popular library for Go application configuration.
 */

package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all the configuration variables for the reconciliation-service.
// These values are loaded from environment variables.
type Config struct {
	ServerPort         string `mapstructure:"SERVER_PORT"`
	DatabaseURL        string `mapstructure:"DATABASE_URL"`
	RabbitMQURL        string `mapstructure:"RABBITMQ_URL"`
	ReconEventExchange string `mapstructure:"RECON_EVENT_EXCHANGE"`
	InternalAPIKey     string `mapstructure:"INTERNAL_API_KEY"`
	MaxUploadSizeMB    int    `mapstructure:"MAX_UPLOAD_SIZE_MB"`
	RunListMaxLimit    int    `mapstructure:"RUN_LIST_MAX_LIMIT"`
}

// LoadConfig reads configuration from environment variables from the given path.
// It uses Viper to automatically bind environment variables to the Config struct.
func LoadConfig(path string) (config Config, err error) {
	// Tell viper the path to look for the optional .env file.
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	// Enable automatic binding of environment variables.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("SERVER_PORT", "8086")
	viper.SetDefault("RECON_EVENT_EXCHANGE", "opsconsole.events")
	viper.SetDefault("MAX_UPLOAD_SIZE_MB", 32)
	viper.SetDefault("RUN_LIST_MAX_LIMIT", 100)

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("DATABASE_URL")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("RECON_EVENT_EXCHANGE")
	_ = viper.BindEnv("INTERNAL_API_KEY", "INTERNAL_API_KEY", "RECONCILIATION_SERVICE_INTERNAL_API_KEY")
	_ = viper.BindEnv("MAX_UPLOAD_SIZE_MB")
	_ = viper.BindEnv("RUN_LIST_MAX_LIMIT")

	// Attempt to read the config file. It's okay if it doesn't exist.
	if err = viper.ReadInConfig(); err != nil {
		// If the config file is not found, we can ignore the error.
		// For other errors, we should return them.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("level=warn component=config msg=\"failed to read config file; using environment values\" err=%v", err)
		}
	}

	// Unmarshal the configuration into the Config struct.
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		config.ServerPort = port
	}
	config.InternalAPIKey = strings.TrimSpace(config.InternalAPIKey)
	if config.InternalAPIKey == "" {
		config.InternalAPIKey = strings.TrimSpace(os.Getenv("RECONCILIATION_SERVICE_INTERNAL_API_KEY"))
	}
	config.ReconEventExchange = strings.TrimSpace(config.ReconEventExchange)
	if config.ReconEventExchange == "" {
		config.ReconEventExchange = "opsconsole.events"
	}

	if config.MaxUploadSizeMB <= 0 {
		log.Printf("level=warn component=config msg=\"invalid max upload size; using default\" max_upload_size_mb=%d", config.MaxUploadSizeMB)
		config.MaxUploadSizeMB = 32
	}
	if config.RunListMaxLimit <= 0 {
		config.RunListMaxLimit = 100
	}

	return
}
