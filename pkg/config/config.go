package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/muhammadchandra19/quotestream/pkg/postgresql"
	"github.com/muhammadchandra19/quotestream/pkg/redis"
)

// Config represents the application configuration.
type Config struct {
	App        AppConfig         `envPrefix:"APP_"`
	Feed       FeedConfig        `envPrefix:"FEED_"`
	Aggregator AggregatorConfig  `envPrefix:"AGGREGATOR_"`
	Hub        HubConfig         `envPrefix:"HUB_"`
	PostgreSQL postgresql.Config `envPrefix:"POSTGRES_"`
	Redis      RedisConfig       `envPrefix:"REDIS_"`
	Kafka      KafkaConfig       `envPrefix:"KAFKA_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name            string        `env:"NAME" envDefault:"quotestream"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	Port            int           `env:"PORT" envDefault:"3000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:5174"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// IsDevelopment reports whether the service runs in the development environment.
func (a AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}

// FeedConfig configures the upstream trade feed connection.
type FeedConfig struct {
	WSURL                string        `env:"WS_URL" envDefault:"wss://ws.finnhub.io"`
	Token                string        `env:"TOKEN"`
	HeartbeatInterval    time.Duration `env:"HEARTBEAT_INTERVAL" envDefault:"30s"`
	BaseReconnectDelay   time.Duration `env:"BASE_RECONNECT_DELAY" envDefault:"500ms"`
	MaxReconnectDelay    time.Duration `env:"MAX_RECONNECT_DELAY" envDefault:"30s"`
	MaxReconnectAttempts int           `env:"MAX_RECONNECT_ATTEMPTS" envDefault:"10"`
	JitterRatio          float64       `env:"JITTER_RATIO" envDefault:"0.1"`
	DialTimeout          time.Duration `env:"DIAL_TIMEOUT" envDefault:"10s"`
	ReadLimit            int64         `env:"READ_LIMIT" envDefault:"1048576"`
	EventBuffer          int           `env:"EVENT_BUFFER" envDefault:"1024"`
}

// AggregatorConfig configures the hourly aggregation engine.
type AggregatorConfig struct {
	SweepInterval  time.Duration `env:"SWEEP_INTERVAL" envDefault:"60s"`
	PersistTimeout time.Duration `env:"PERSIST_TIMEOUT" envDefault:"5s"`
}

// HubConfig configures subscriber fan-out.
type HubConfig struct {
	SendQueueSize int           `env:"SEND_QUEUE_SIZE" envDefault:"256"`
	WriteTimeout  time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	PingInterval  time.Duration `env:"PING_INTERVAL" envDefault:"30s"`
}

// RedisConfig enables the last tick cache.
type RedisConfig struct {
	Enabled     bool          `env:"ENABLED" envDefault:"false"`
	LastTickTTL time.Duration `env:"LAST_TICK_TTL" envDefault:"24h"`
	redis.Config
}

// KafkaConfig enables publishing of flushed hourly averages.
type KafkaConfig struct {
	Enabled       bool          `env:"ENABLED" envDefault:"false"`
	Brokers       []string      `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	AveragesTopic string        `env:"AVERAGES_TOPIC" envDefault:"quotes.hourly-averages"`
	WriteTimeout  time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
}

// Load loads the configuration from the environment, reading a .env file first if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return Parse()
}

// Parse reads the configuration from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
