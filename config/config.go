package config

import "time"

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Cache     CacheConfig     `json:"cache"`
	Logging   LoggingConfig   `json:"logging"`
	Analytics AnalyticsConfig `json:"analytics"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9200"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	Host     string `json:"host" env:"DB_HOST" default:"localhost"`
	Port     int    `json:"port" env:"DB_PORT" default:"5432"`
	User     string `json:"user" env:"DB_USER" default:"mise"`
	Password string `json:"-" env:"DB_PASSWORD"`
	Name     string `json:"name" env:"DB_NAME" default:"mise"`
	SSLMode  string `json:"ssl_mode" env:"DB_SSL_MODE" default:"prefer"`

	MaxConns        int           `json:"max_conns" env:"DB_MAX_CONNS" default:"25"`
	MinConns        int           `json:"min_conns" env:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `json:"max_conn_lifetime" env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// QueryTimeout becomes the session statement_timeout, so a single
	// degenerate search cannot hold a connection indefinitely.
	QueryTimeout time.Duration `json:"query_timeout" env:"DB_QUERY_TIMEOUT" default:"10s"`
}

type CacheConfig struct {
	RedisAddr      string        `json:"redis_addr" env:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword  string        `json:"-" env:"REDIS_PASSWORD"`
	RedisDB        int           `json:"redis_db" env:"REDIS_DB" default:"0"`
	TrendingExpiry time.Duration `json:"trending_expiry" env:"CACHE_TRENDING_EXPIRY" default:"300s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type AnalyticsConfig struct {
	QueueSize int `json:"queue_size" env:"ANALYTICS_QUEUE_SIZE" default:"1024"`
}

// NewConfig loads configuration from environment variables, falling
// back to tagged defaults, and validates the result.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
