package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/spf13/viper"
)

var env = newEnv()

func newEnv() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "roadbuddy")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 10)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 10)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "roadbuddy")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 20)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 5)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// Payment config
	configs.Payment.Provider = GetEnv("PAYMENT_PROVIDER", "sandbox")
	configs.Payment.BaseURL = GetEnv("PAYMENT_BASE_URL", "")
	configs.Payment.SecretKey = GetEnv("PAYMENT_SECRET_KEY", "")
	configs.Payment.Currency = GetEnv("PAYMENT_CURRENCY", "usd")
	configs.Payment.TimeoutMs = GetEnvAsInt("PAYMENT_TIMEOUT_MS", 5000)
	configs.Payment.PenaltyPercent = GetEnvAsInt64("PAYMENT_PENALTY_PERCENT", 20)

	// Rides config
	configs.Rides.Timezone = GetEnv("RIDES_TIMEZONE", "America/Los_Angeles")
	configs.Rides.MinCostCents = GetEnvAsInt64("RIDES_MIN_COST_CENTS", models.MinCostPerSeatCents)
	configs.Rides.SweepIntervalSec = GetEnvAsInt("RIDES_SWEEP_INTERVAL_SEC", 600)
	configs.Rides.RefundConcurrency = GetEnvAsInt("RIDES_REFUND_CONCURRENCY", 4)

	// Notification config
	configs.Notification.QueueSize = GetEnvAsInt("NOTIFICATION_QUEUE_SIZE", 256)
	configs.Notification.Workers = GetEnvAsInt("NOTIFICATION_WORKERS", 2)
	configs.Notification.StreamName = GetEnv("NOTIFICATION_STREAM", "NOTIFICATION_STREAM")
	configs.Notification.ConsumerName = GetEnv("NOTIFICATION_CONSUMER", "notification_created_notifications")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	if !env.IsSet(key) || env.GetString(key) == "" {
		return defaultValue
	}
	return env.GetString(key)
}

func GetEnvAsInt(key string, defaultValue int) int {
	if GetEnv(key, "") == "" {
		return defaultValue
	}
	value := env.GetInt(key)
	if value == 0 && GetEnv(key, "") != "0" {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	if GetEnv(key, "") == "" {
		return defaultValue
	}
	value := env.GetInt64(key)
	if value == 0 && GetEnv(key, "") != "0" {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	raw := GetEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	switch raw {
	case "1", "t", "T", "true", "TRUE", "True", "0", "f", "F", "false", "FALSE", "False":
		return env.GetBool(key)
	}
	log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
	return defaultValue
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	if GetEnv(key, "") == "" {
		return defaultValue
	}
	value := env.GetFloat64(key)
	if value == 0 && GetEnv(key, "") != "0" {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if GetEnv(key, "") == "" {
		return defaultValue
	}
	value := env.GetDuration(key)
	if value == 0 {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}
