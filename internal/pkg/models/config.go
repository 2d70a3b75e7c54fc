package models

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	Match    MatchConfig
	Pricing  PricingConfig
	Logger   LoggerConfig
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string
	Environment string
	Version     string
	Debug       bool
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig holds NSQ producer configuration
type NSQConfig struct {
	Address string
}

// MatchConfig holds matching parameters. ServiceRadiusKm bounds both
// candidate search and request-creation geometry validation.
type MatchConfig struct {
	ServiceRadiusKm   float64
	CandidateLimit    int
	RejectionCooldown int // seconds a rejecting partner stays excluded
}

// PricingConfig holds the static pricing rule. The commission rate is passed
// by value into every pricing call; it is never mutated at runtime.
type PricingConfig struct {
	CommissionRate float64
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
