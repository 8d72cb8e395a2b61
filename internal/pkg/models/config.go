package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Dispatch DispatchConfig
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

// DatabaseConfig contains database connection configuration.
// An empty Host disables the load event journal.
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

// RedisConfig contains Redis connection configuration.
// An empty Host disables the idempotency guard and rate limiter.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration.
// An empty URL disables event publishing.
type NATSConfig struct {
	URL              string
	BreakerThreshold int // consecutive publish failures before failing fast
	BreakerTimeout   int // seconds before a probe publish
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains zap logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// DispatchConfig holds the knobs of the load lifecycle and matching engine
type DispatchConfig struct {
	SeedPath             string
	TransitionPolicy     string  // "permissive" or "strict"
	DefaultVehicleType   string  // used when a load does not require a vehicle type
	RecommendationLimit  int     // default size of the recommended list
	SuggestedAdvanceRate float64 // share of the load value paid upfront when no advance is given
	IdempotencyTTL       int     // seconds
	RateLimit            int     // requests per RateLimitPeriod per client, 0 disables
	RateLimitPeriod      int     // seconds
}
