package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Server captures process level configuration.
type Server struct {
	Addr     string         `yaml:"addr"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`

	// SimulationTTL bounds how long anonymous simulation results stay readable.
	SimulationTTL time.Duration `yaml:"simulation_ttl"`

	// FilingsFile is the YAML table of filings made outside the portal.
	// Empty means no company has filed anything.
	FilingsFile string `yaml:"filings_file"`
}

// PostgresConfig holds the DSN shared by the pgx pool and the database/sql handle.
type PostgresConfig struct {
	URL             string        `yaml:"url"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// RedisConfig configures the simulation cache.
type RedisConfig struct {
	URL          string        `yaml:"url"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// KafkaConfig configures the audit stream.
type KafkaConfig struct {
	Brokers    []string `yaml:"brokers"`
	AuditTopic string   `yaml:"audit_topic"`
}

// AuthConfig configures bearer token validation.
type AuthConfig struct {
	JWTSigningKey string `yaml:"jwt_signing_key"`
	JWTIssuer     string `yaml:"jwt_issuer"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const (
	defaultAddr          = ":8080"
	defaultAuditTopic    = "portail-rse.audit"
	defaultSimulationTTL = 30 * time.Minute
	devSigningKey        = "dev-secret-key-change-in-production"
)

// Defaults returns the configuration used when nothing is provided.
func Defaults() Server {
	return Server{
		Addr: defaultAddr,
		Postgres: PostgresConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Redis: RedisConfig{
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka:         KafkaConfig{AuditTopic: defaultAuditTopic},
		Auth:          AuthConfig{JWTSigningKey: devSigningKey},
		Log:           LogConfig{Level: "info", Format: "json"},
		SimulationTTL: defaultSimulationTTL,
	}
}

// FromEnv builds a Server config from the optional YAML file named by
// PORTAIL_RSE_CONFIG, then applies environment overrides so main stays lean.
func FromEnv() (Server, error) {
	cfg := Defaults()
	if path := os.Getenv("PORTAIL_RSE_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Server{}, err
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Server{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

func (c *Server) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

func (c *Server) applyEnv(getenv func(string) string) error {
	if v := getenv("PORTAIL_RSE_ADDR"); v != "" {
		c.Addr = v
	}
	if v := getenv("DATABASE_URL"); v != "" {
		c.Postgres.URL = v
	}
	if v := getenv("REDIS_URL"); v != "" {
		c.Redis.URL = v
	}
	if v := getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = splitList(v)
	}
	if v := getenv("KAFKA_AUDIT_TOPIC"); v != "" {
		c.Kafka.AuditTopic = v
	}
	if v := getenv("JWT_SIGNING_KEY"); v != "" {
		c.Auth.JWTSigningKey = v
	}
	if v := getenv("JWT_ISSUER"); v != "" {
		c.Auth.JWTIssuer = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := getenv("FILINGS_FILE"); v != "" {
		c.FilingsFile = v
	}
	if v := getenv("SIMULATION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse SIMULATION_TTL: %w", err)
		}
		c.SimulationTTL = ttl
	}
	return nil
}

// Validate rejects configurations the server cannot start with.
func (c Server) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("listen address is required"))
	}
	if c.SimulationTTL <= 0 {
		errs = append(errs, errors.New("simulation ttl must be positive"))
	}
	if c.Auth.JWTSigningKey == "" {
		errs = append(errs, errors.New("jwt signing key is required"))
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.AuditTopic == "" {
		errs = append(errs, errors.New("kafka audit topic is required when brokers are set"))
	}
	return errors.Join(errs...)
}

// UsesDevSigningKey reports whether the built-in development key is active.
func (c Server) UsesDevSigningKey() bool {
	return c.Auth.JWTSigningKey == devSigningKey
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
