package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Query     QueryConfig     `mapstructure:"query"`
	Datasets  []DatasetConfig `mapstructure:"datasets"`
	Valkey    ValkeyConfig    `mapstructure:"valkey"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port         int  `mapstructure:"port"`
	ReadTimeout  int  `mapstructure:"read_timeout"`
	WriteTimeout int  `mapstructure:"write_timeout"`
	Debug        bool `mapstructure:"debug"`
}

// QueryConfig bounds and decorates elevation queries.
type QueryConfig struct {
	MaxLocationsPerRequest   int    `mapstructure:"max_locations_per_request"`
	AccessControlAllowOrigin string `mapstructure:"access_control_allow_origin"`
}

// DatasetConfig declares one raster dataset.
type DatasetConfig struct {
	Name string `mapstructure:"name"`
	// Path is the tile directory, enumerated once when the snapshot is
	// built.
	Path string `mapstructure:"path"`
	// ComputeURL is the elevation computation endpoint owning this
	// dataset's rasters.
	ComputeURL string `mapstructure:"compute_url"`
}

type ValkeyConfig struct {
	Addr    string `mapstructure:"addr"`
	Enabled bool   `mapstructure:"enabled"`
}

type TelemetryConfig struct {
	ServiceName string `mapstructure:"service_name"`
	TempoAddr   string `mapstructure:"tempo_addr"`
	Enabled     bool   `mapstructure:"enabled"`
}

// Load reads configuration from file and environment variables.
func Load(service string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.debug", false)
	v.SetDefault("query.max_locations_per_request", 100)
	v.SetDefault("query.access_control_allow_origin", "")
	v.SetDefault("valkey.addr", "localhost:6379")
	v.SetDefault("valkey.enabled", false)
	v.SetDefault("telemetry.service_name", service)
	v.SetDefault("telemetry.tempo_addr", "tempo:4317")
	v.SetDefault("telemetry.enabled", false)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: ELEVATE_SERVER_PORT → server.port
	v.SetEnvPrefix("ELEVATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.Query.MaxLocationsPerRequest <= 0 {
		errs = append(errs, "query.max_locations_per_request must be positive")
	}

	seen := make(map[string]bool, len(c.Datasets))
	for i, ds := range c.Datasets {
		if ds.Name == "" {
			errs = append(errs, fmt.Sprintf("datasets[%d].name is required", i))
			continue
		}
		if seen[ds.Name] {
			errs = append(errs, fmt.Sprintf("duplicate dataset name %q", ds.Name))
		}
		seen[ds.Name] = true
	}

	if c.Valkey.Enabled && c.Valkey.Addr == "" {
		errs = append(errs, "valkey.addr is required when valkey.enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
