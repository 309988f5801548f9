package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"zapis/internal/model"
)

type Config struct {
	Server struct {
		Port           int     `yaml:"port"`
		AdminAPIKey    string  `yaml:"admin_api_key"`
		RateLimitRPS   float64 `yaml:"rate_limit_rps"`
		RateLimitBurst int     `yaml:"rate_limit_burst"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Redis struct {
		Address         string `yaml:"address"`
		Password        string `yaml:"password"`
		DB              int    `yaml:"db"`
		CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	} `yaml:"redis"`

	Monitoring struct {
		HealthCheckPort   int  `yaml:"health_check_port"`
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
		PrometheusPort    int  `yaml:"prometheus_port"`
	} `yaml:"monitoring"`

	Schedule struct {
		// Permanently closed dates, seeded into override resolution ahead
		// of everything configured at runtime.
		BlackoutDates []string `yaml:"blackout_dates"`
	} `yaml:"schedule"`

	Availability struct {
		MaxRangeDays int `yaml:"max_range_days"`
	} `yaml:"availability"`
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = "configs/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitRPS <= 0 {
		cfg.Server.RateLimitRPS = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 20
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/zapis.db"
	}
	if cfg.Availability.MaxRangeDays <= 0 {
		cfg.Availability.MaxRangeDays = 90
	}
	if len(cfg.Schedule.BlackoutDates) == 0 {
		// The salon's one permanent closure.
		cfg.Schedule.BlackoutDates = []string{"2025-11-20"}
	}

	if err = os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// CacheTTL returns the redis cache TTL; zero disables caching.
func (c *Config) CacheTTL() time.Duration {
	if c.Redis.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Redis.CacheTTLSeconds) * time.Second
}

// BlackoutDates parses the configured blackout dates.
func (c *Config) BlackoutDates() ([]time.Time, error) {
	dates := make([]time.Time, 0, len(c.Schedule.BlackoutDates))
	for _, s := range c.Schedule.BlackoutDates {
		d, err := model.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("invalid blackout date %q: %w", s, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}
