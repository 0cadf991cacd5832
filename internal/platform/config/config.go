// Package config loads process configuration from defaults, an optional YAML
// file and SUMBANDILA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. SUMBANDILA_AUTH_JWT_SIGNING_KEY.
const EnvPrefix = "SUMBANDILA"

// Dev defaults. A production deployment overrides the signing key.
const (
	DefaultAddr          = ":8080"
	DefaultTokenTTL      = 2 * time.Hour
	DefaultJWTAlgorithm  = "HS256"
	DefaultJWTIssuer     = "sumbandila"
	DefaultJWTSigningKey = "dev-secret-key-change-in-production"
	DefaultAuditTopic    = "sumbandila.audit"
	DefaultBcryptCost    = 10
)

// User store backends.
const (
	UserStoreMemory   = "memory"
	UserStorePostgres = "postgres"
	UserStoreRedis    = "redis"
)

// Config is the root configuration shared by every service command.
type Config struct {
	Environment string          `mapstructure:"environment"`
	LogLevel    string          `mapstructure:"log_level"`
	Server      Server          `mapstructure:"server"`
	Auth        AuthConfig      `mapstructure:"auth"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Kafka       KafkaConfig     `mapstructure:"kafka"`
	Providers   ProvidersConfig `mapstructure:"providers"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// AuthConfig configures the token issuer and credential store.
type AuthConfig struct {
	JWTSigningKey string        `mapstructure:"jwt_signing_key"`
	JWTAlgorithm  string        `mapstructure:"jwt_algorithm"`
	JWTIssuer     string        `mapstructure:"jwt_issuer"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	BcryptCost    int           `mapstructure:"bcrypt_cost"`
	UserStore     string        `mapstructure:"user_store"`
}

type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// KafkaConfig enables the Kafka audit sink when Brokers is set.
type KafkaConfig struct {
	Brokers         string        `mapstructure:"brokers"`
	AuditTopic      string        `mapstructure:"audit_topic"`
	Acks            string        `mapstructure:"acks"`
	Retries         int           `mapstructure:"retries"`
	DeliveryTimeout time.Duration `mapstructure:"delivery_timeout"`
}

// ProvidersConfig points at an optional YAML file replacing the embedded seed.
type ProvidersConfig struct {
	SeedFile string `mapstructure:"seed_file"`
}

// SetDefaults registers every key so environment variables bind during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("environment", "local")
	v.SetDefault("log_level", "info")

	v.SetDefault("server.addr", DefaultAddr)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.request_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("auth.jwt_signing_key", DefaultJWTSigningKey)
	v.SetDefault("auth.jwt_algorithm", DefaultJWTAlgorithm)
	v.SetDefault("auth.jwt_issuer", DefaultJWTIssuer)
	v.SetDefault("auth.token_ttl", DefaultTokenTTL)
	v.SetDefault("auth.bcrypt_cost", DefaultBcryptCost)
	v.SetDefault("auth.user_store", UserStoreMemory)

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.dial_timeout", 5*time.Second)
	v.SetDefault("redis.read_timeout", 3*time.Second)
	v.SetDefault("redis.write_timeout", 3*time.Second)

	v.SetDefault("kafka.brokers", "")
	v.SetDefault("kafka.audit_topic", DefaultAuditTopic)
	v.SetDefault("kafka.acks", "all")
	v.SetDefault("kafka.retries", 3)
	v.SetDefault("kafka.delivery_timeout", 30*time.Second)

	v.SetDefault("providers.seed_file", "")
}

// BindEnv wires SUMBANDILA_* variables, mapping "." and "-" in keys to "_".
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// ReadFile reads configFile when set. A missing default config file is not an error.
func ReadFile(v *viper.Viper, configFile string) (string, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("sumbandila")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects combinations the services cannot start with.
func (c *Config) Validate() error {
	switch c.Auth.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("unsupported jwt algorithm %q", c.Auth.JWTAlgorithm)
	}
	if c.Auth.JWTSigningKey == "" {
		return errors.New("jwt signing key is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("token ttl must be positive")
	}

	switch c.Auth.UserStore {
	case UserStoreMemory:
	case UserStorePostgres:
		if c.Database.URL == "" {
			return errors.New("user_store=postgres requires database.url")
		}
	case UserStoreRedis:
		if c.Redis.URL == "" {
			return errors.New("user_store=redis requires redis.url")
		}
	default:
		return fmt.Errorf("unknown user store %q", c.Auth.UserStore)
	}

	if c.IsProduction() && c.Auth.JWTSigningKey == DefaultJWTSigningKey {
		return errors.New("default jwt signing key is not allowed in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
