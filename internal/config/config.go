package config

import (
	"time"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Database DatabaseConfig `yaml:"database"`
	Broker   BrokerConfig   `yaml:"broker"`
	Search   SearchConfig   `yaml:"search"`
	Auth     AuthConfig     `yaml:"auth"`
	POS      POSConfig      `yaml:"pos"`
	Registry RegistryConfig `yaml:"registry"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// MongoConfig holds document store connection settings.
type MongoConfig struct {
	URI            string        `yaml:"uri"             env:"MONGO_URI"             env-required:"true"`
	Database       string        `yaml:"database"        env:"MONGO_DATABASE"        env-default:"erxes"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
	MaxPoolSize    uint64        `yaml:"max_pool_size"   env:"MONGO_MAX_POOL_SIZE"   env-default:"100"`
}

// DatabaseConfig holds PostgreSQL connection settings for the service
// registry. An empty DSN selects the static registry from RegistryConfig.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// BrokerConfig holds inter-service call settings. Endpoints override the
// template for individual services.
type BrokerConfig struct {
	EndpointTemplate string            `yaml:"endpoint_template" env:"BROKER_ENDPOINT_TEMPLATE" env-default:"http://{service}-api:4000"`
	Endpoints        map[string]string `yaml:"endpoints"`
	Timeout          time.Duration     `yaml:"timeout"           env:"BROKER_TIMEOUT"           env-default:"10s"`
}

// SearchConfig holds search index settings used by task segments.
type SearchConfig struct {
	URL         string        `yaml:"url"          env:"SEARCH_URL"          env-default:"http://elasticsearch:9200"`
	IndexPrefix string        `yaml:"index_prefix" env:"SEARCH_INDEX_PREFIX" env-default:"erxes__"`
	ScrollSize  int           `yaml:"scroll_size"  env:"SEARCH_SCROLL_SIZE"  env-default:"1000"`
	ScrollTTL   string        `yaml:"scroll_ttl"   env:"SEARCH_SCROLL_TTL"   env-default:"1m"`
	Timeout     time.Duration `yaml:"timeout"      env:"SEARCH_TIMEOUT"      env-default:"30s"`
}

// AuthConfig holds access token settings.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"crmhub"`
	AccessTTL time.Duration `yaml:"access_ttl" env:"AUTH_ACCESS_TTL" env-default:"1h"`

	// EnforcePermissions checks operation permissions against token claims.
	// When false every authenticated caller may run every operation.
	EnforcePermissions bool `yaml:"enforce_permissions" env:"AUTH_ENFORCE_PERMISSIONS" env-default:"false"`
}

// POSConfig holds POS reporting settings.
type POSConfig struct {
	Timezone string `yaml:"timezone" env:"POS_TIMEZONE" env-default:"UTC"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// RegistryConfig lists sibling services when no registry database is set.
type RegistryConfig struct {
	Services []domain.ServiceDescriptor `yaml:"services"`
}

// LogConfig holds logging settings. When File is set, logs are also written
// to a rotated file.
type LogConfig struct {
	Level      string `yaml:"level"        env:"LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"       env:"LOG_FORMAT"       env-default:"json"`
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"100"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"3"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"28"`
}
