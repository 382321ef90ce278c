package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	APIBaseURL         string `mapstructure:"API_BASE_URL"`
	Env                string `mapstructure:"ENV"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`

	// Where the session token is persisted between runs.
	TokenPath string `mapstructure:"TOKEN_PATH"`

	// Social login configuration.
	GoogleClientID    string `mapstructure:"GOOGLE_CLIENT_ID"`
	TwitterClientID   string `mapstructure:"TWITTER_CLIENT_ID"`
	LinkedInClientID  string `mapstructure:"LINKEDIN_CLIENT_ID"`
	OAuthCallbackPort int    `mapstructure:"OAUTH_CALLBACK_PORT"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("API_BASE_URL", "http://192.168.56.1/api")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	viper.SetDefault("TOKEN_PATH", defaultTokenPath())
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("TWITTER_CLIENT_ID", "")
	viper.SetDefault("LINKEDIN_CLIENT_ID", "")
	viper.SetDefault("OAUTH_CALLBACK_PORT", 8765)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// defaultTokenPath places the persisted token under the user config dir,
// falling back to the working directory when none is available.
func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".createscale_token"
	}
	return filepath.Join(dir, "createscale", "token")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
