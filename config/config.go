package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisLockDB      int    `mapstructure:"REDIS_LOCK_DB"`
	RedisRetentionDB int    `mapstructure:"REDIS_RETENTION_DB"`

	// Chat provider configuration.
	ChatProvider         string `mapstructure:"CHAT_PROVIDER"`
	GroqAPIKey           string `mapstructure:"GROQ_API_KEY"`
	GroqModel            string `mapstructure:"GROQ_MODEL"`
	GeminiAPIKey         string `mapstructure:"GEMINI_API_KEY"`
	ChatTimeoutSecs      int    `mapstructure:"CHAT_PROVIDER_TIMEOUT_SECS"`
	ChatHistoryWindow    int    `mapstructure:"CHAT_HISTORY_WINDOW"`
	ChatRetentionDays    int    `mapstructure:"CHAT_RETENTION_DAYS"`
	ChatRetentionEnabled bool   `mapstructure:"CHAT_RETENTION_ENABLED"`
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
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_LOCK_DB", 0)
	viper.SetDefault("REDIS_RETENTION_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "astrologer_db")
	viper.SetDefault("CHAT_PROVIDER", "groq")
	viper.SetDefault("GROQ_MODEL", "llama-3.3-70b-versatile")
	viper.SetDefault("CHAT_PROVIDER_TIMEOUT_SECS", 20)
	viper.SetDefault("CHAT_HISTORY_WINDOW", 20)
	viper.SetDefault("CHAT_RETENTION_DAYS", 30)
	viper.SetDefault("CHAT_RETENTION_ENABLED", true)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
