package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the full service configuration loaded from config.toml.
// Secrets can be overridden through the environment (.env is loaded when present).
type Config struct {
	Server       ServerConfig                        `toml:"server"`
	Database     DatabaseConfig                      `toml:"database"`
	Redis        RedisConfig                         `toml:"redis"`
	Scheduling   SchedulingConfig                    `toml:"scheduling"`
	Metrics      MetricsConfig                       `toml:"metrics"`
	Logs         LogsConfig                          `toml:"logs"`
	Availability AvailabilityConfig                  `toml:"availability"`
	Services     map[string]map[string]ServiceConfig `toml:"services"` // treatment -> mode -> config
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the PostgreSQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	PoolSize int    `toml:"pool_size"`
}

type SchedulingConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"` // seconds
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type AvailabilityConfig struct {
	CacheTTLMinutes   int `toml:"cache_ttl_minutes"`
	LookaheadDays     int `toml:"lookahead_days"`
	SessionTTLMinutes int `toml:"session_ttl_minutes"`
}

// ServiceConfig describes one bookable (treatment, delivery mode) combination
type ServiceConfig struct {
	CalendarID       string   `toml:"calendar_id"`
	StaffIDs         []string `toml:"staff_ids"`
	PreferredStaffID string   `toml:"preferred_staff_id"`
	DurationMinutes  int      `toml:"duration_minutes"`
	PriceEUR         float64  `toml:"price_eur"`
}

// Load reads and validates the configuration file.
// Unresolvable service configuration is fatal here, at the loading boundary,
// so aggregation calls never have to deal with it.
func Load(path string) (*Config, error) {
	// .env is optional; real environments provide variables directly
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("SCHEDULING_API_KEY"); v != "" {
		c.Scheduling.APIKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.Availability.CacheTTLMinutes == 0 {
		c.Availability.CacheTTLMinutes = 5
	}
	if c.Availability.LookaheadDays == 0 {
		c.Availability.LookaheadDays = 60
	}
	if c.Availability.SessionTTLMinutes == 0 {
		c.Availability.SessionTTLMinutes = 30
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port is required")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.Scheduling.URL == "" {
		return fmt.Errorf("config: scheduling.url is required")
	}
	if len(c.Services) == 0 {
		return fmt.Errorf("config: at least one [services.*] block is required")
	}
	return nil
}
