package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	envPort                  = "PORT"
	envServerReadTimeout     = "SERVER_READ_TIMEOUT"
	envServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	envDBHost                = "DB_HOST"
	envDBPort                = "DB_PORT"
	envDBName                = "DB_NAME"
	envDBUser                = "DB_USER"
	envDBPassword            = "DB_PASSWORD"
	envDBSSLMode             = "DB_SSL_MODE"
	envDBMaxConns            = "DB_MAX_CONNS"
	envDBMinConns            = "DB_MIN_CONNS"
	envJWTAlgorithm          = "JWT_ALGORITHM"
	envJWTSecret             = "JWT_SECRET"
	envJWTPublicKeyFile      = "JWT_PUBLIC_KEY_FILE"
	envJWTIssuer             = "JWT_ISSUER"
	envJWTAudience           = "JWT_AUDIENCE"
	envJWTLeeway             = "JWT_LEEWAY"
	envJWTRequireExpiry      = "JWT_REQUIRE_EXPIRY"
	envRedisURL              = "REDIS_URL"
	envCacheTTL              = "CACHE_TTL"
	envPaginationPageSize    = "PAGINATION_PAGE_SIZE"
	envPaginationMaxPageSize = "PAGINATION_MAX_PAGE_SIZE"
	envRateLimitRPS          = "RATE_LIMIT_RPS"
	envRateLimitBurst        = "RATE_LIMIT_BURST"
	envLogLevel              = "LOG_LEVEL"
	envLogFormat             = "LOG_FORMAT"
)

const (
	AlgorithmHS256 = "HS256"
	AlgorithmEdDSA = "EdDSA"

	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

const (
	defaultServerPort          = "8080"
	defaultServerReadTimeout   = 10 * time.Second
	defaultServerWriteTimeout  = 10 * time.Second
	defaultServerShutdown      = 10 * time.Second
	defaultDBHost              = "localhost"
	defaultDBPort              = 5432
	defaultDBName              = "fleet"
	defaultDBUser              = "fleet_app"
	defaultDBSSLMode           = "disable"
	defaultDBMaxConns          = 25
	defaultDBMinConns          = 5
	defaultJWTAlgorithm        = AlgorithmHS256
	defaultJWTLeeway           = 0
	defaultCacheTTL            = 5 * time.Minute
	defaultPageSize            = 10
	defaultMaxPageSize         = 100
	defaultRateLimitRPS        = 100
	defaultRateLimitBurst      = 200
	defaultLogLevel            = "info"
	defaultLogFormat           = LogFormatJSON
	maxJWTLeeway               = 2 * time.Minute
	minJWTSecretLength         = 32
	minUniqueCharsInSecret     = 16
	minRepeatedCharThreshold   = 4
	maxRepeatedChars           = 2
	errPortRequiredFmt         = "PORT must be set"
	errDBPasswordRequiredFmt   = "DB_PASSWORD must be set"
	errJWTAlgorithmFmt         = "JWT_ALGORITHM must be one of %s, %s"
	errJWTSecretRequiredFmt    = "JWT_SECRET must be set when JWT_ALGORITHM is HS256"
	errJWTSecretMinLengthFmt   = "JWT_SECRET must be at least %d characters"
	errJWTSecretLowEntropyFmt  = "JWT_SECRET has insufficient entropy (appears non-random). Use a cryptographically secure random string."
	errJWTPublicKeyFmt         = "JWT_PUBLIC_KEY_FILE must be set when JWT_ALGORITHM is EdDSA"
	errJWTLeewayFmt            = "JWT_LEEWAY must be between 0 and %s"
	errPageSizeFmt             = "PAGINATION_PAGE_SIZE must be between 1 and PAGINATION_MAX_PAGE_SIZE (%d)"
	errRateLimitFmt            = "RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"
	errLogFormatFmt            = "LOG_FORMAT must be one of %s, %s"
	errInvalidConfigurationFmt = "invalid configuration: %w"
	errReadPublicKeyFmt        = "failed to read JWT public key: %w"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	App       AppConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

// JWTConfig holds the verification key material. It is read once at startup
// and never changed afterwards.
type JWTConfig struct {
	Algorithm     string
	Secret        string
	PublicKeyFile string
	PublicKey     []byte
	Issuer        string
	Audience      string
	Leeway        time.Duration
	RequireExpiry bool
}

type RedisConfig struct {
	URL      string
	CacheTTL time.Duration
}

// Enabled reports whether a Redis read cache should be wired.
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

type AppConfig struct {
	PageSize    int
	MaxPageSize int
}

type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv(envPort, defaultServerPort),
			ReadTimeout:     getDurationEnv(envServerReadTimeout, defaultServerReadTimeout),
			WriteTimeout:    getDurationEnv(envServerWriteTimeout, defaultServerWriteTimeout),
			ShutdownTimeout: getDurationEnv(envServerShutdownTimeout, defaultServerShutdown),
		},
		Database: DatabaseConfig{
			Host:     getEnv(envDBHost, defaultDBHost),
			Port:     getIntEnv(envDBPort, defaultDBPort),
			Database: getEnv(envDBName, defaultDBName),
			User:     getEnv(envDBUser, defaultDBUser),
			Password: os.Getenv(envDBPassword),
			SSLMode:  getEnv(envDBSSLMode, defaultDBSSLMode),
			MaxConns: getIntEnv(envDBMaxConns, defaultDBMaxConns),
			MinConns: getIntEnv(envDBMinConns, defaultDBMinConns),
		},
		JWT: JWTConfig{
			Algorithm:     getEnv(envJWTAlgorithm, defaultJWTAlgorithm),
			Secret:        os.Getenv(envJWTSecret),
			PublicKeyFile: os.Getenv(envJWTPublicKeyFile),
			Issuer:        os.Getenv(envJWTIssuer),
			Audience:      os.Getenv(envJWTAudience),
			Leeway:        getDurationEnv(envJWTLeeway, defaultJWTLeeway),
			RequireExpiry: getBoolEnv(envJWTRequireExpiry, true),
		},
		Redis: RedisConfig{
			URL:      os.Getenv(envRedisURL),
			CacheTTL: getDurationEnv(envCacheTTL, defaultCacheTTL),
		},
		App: AppConfig{
			PageSize:    getIntEnv(envPaginationPageSize, defaultPageSize),
			MaxPageSize: getIntEnv(envPaginationMaxPageSize, defaultMaxPageSize),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getIntEnv(envRateLimitRPS, defaultRateLimitRPS),
			Burst:             getIntEnv(envRateLimitBurst, defaultRateLimitBurst),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv(envLogLevel, defaultLogLevel)),
			Format: strings.ToLower(getEnv(envLogFormat, defaultLogFormat)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(errInvalidConfigurationFmt, err)
	}

	if cfg.JWT.Algorithm == AlgorithmEdDSA {
		key, err := os.ReadFile(cfg.JWT.PublicKeyFile)
		if err != nil {
			return nil, fmt.Errorf(errReadPublicKeyFmt, err)
		}
		cfg.JWT.PublicKey = key
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf(errPortRequiredFmt)
	}

	if c.Database.Password == "" {
		return fmt.Errorf(errDBPasswordRequiredFmt)
	}

	if err := c.JWT.validate(); err != nil {
		return err
	}

	if c.App.PageSize < 1 || c.App.PageSize > c.App.MaxPageSize {
		return fmt.Errorf(errPageSizeFmt, c.App.MaxPageSize)
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf(errRateLimitFmt)
	}

	if c.Log.Format != LogFormatJSON && c.Log.Format != LogFormatConsole {
		return fmt.Errorf(errLogFormatFmt, LogFormatJSON, LogFormatConsole)
	}

	return nil
}

func (c *JWTConfig) validate() error {
	switch c.Algorithm {
	case AlgorithmHS256:
		if c.Secret == "" {
			return fmt.Errorf(errJWTSecretRequiredFmt)
		}
		if len(c.Secret) < minJWTSecretLength {
			return fmt.Errorf(errJWTSecretMinLengthFmt, minJWTSecretLength)
		}
		if !hasMinimumEntropy(c.Secret) {
			return fmt.Errorf(errJWTSecretLowEntropyFmt)
		}
	case AlgorithmEdDSA:
		if c.PublicKeyFile == "" {
			return fmt.Errorf(errJWTPublicKeyFmt)
		}
	default:
		return fmt.Errorf(errJWTAlgorithmFmt, AlgorithmHS256, AlgorithmEdDSA)
	}

	if c.Leeway < 0 || c.Leeway > maxJWTLeeway {
		return fmt.Errorf(errJWTLeewayFmt, maxJWTLeeway)
	}

	return nil
}

func hasMinimumEntropy(secret string) bool {
	if len(secret) < minJWTSecretLength {
		return false
	}

	charCounts := make(map[rune]int)
	for _, char := range secret {
		charCounts[char]++
	}

	uniqueChars := len(charCounts)
	if uniqueChars < minUniqueCharsInSecret {
		return false
	}

	repeatedChars := 0
	for _, count := range charCounts {
		if count > len(secret)/minRepeatedCharThreshold {
			repeatedChars++
		}
	}

	return repeatedChars <= maxRepeatedChars
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
