package models

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NATS         NATSConfig
	JWT          JWTConfig
	NewRelic     NewRelicConfig
	Logger       LoggerConfig
	Payment      PaymentConfig
	Rides        RidesConfig
	Notification NotificationConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains token verification settings. Tokens are issued by
// the identity provider; this service only validates them.
type JWTConfig struct {
	Secret string
	Issuer string
}

// NewRelicConfig contains APM settings
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains zap logger settings
type LoggerConfig struct {
	Level    string
	FilePath string
}

// PaymentConfig contains settlement gateway settings
type PaymentConfig struct {
	Provider       string // "processor" or "sandbox"
	BaseURL        string
	SecretKey      string
	Currency       string
	TimeoutMs      int
	PenaltyPercent int64
}

// RidesConfig contains ride lifecycle settings
type RidesConfig struct {
	Timezone          string
	MinCostCents      int64
	SweepIntervalSec  int
	RefundConcurrency int
}

// NotificationConfig contains notification pipeline settings
type NotificationConfig struct {
	QueueSize    int
	Workers      int
	StreamName   string
	ConsumerName string
}
