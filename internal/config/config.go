package config

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type HyperliquidConfig struct {
	Address string        `yaml:"address"`
	Timeout time.Duration `yaml:"timeout"` // 0 leaves the transport default
}

type QueryConfig struct {
	Coin      string `yaml:"coin"`
	Interval  string `yaml:"interval"`
	StartTime int64  `yaml:"start_time"` // epoch ms, end is always "now"
}

type ReportConfig struct {
	Timezone   string `yaml:"timezone"` // IANA name, "Local" by default
	TimeLayout string `yaml:"time_layout"`
}

type Config struct {
	LogLevel    string            `yaml:"log_level"`
	Hyperliquid HyperliquidConfig `yaml:"hyperliquid"`
	Query       QueryConfig       `yaml:"query"`
	Report      ReportConfig      `yaml:"report"`
}

const (
	_addressDefault    = "https://api.hyperliquid.xyz"
	_coinDefault       = "BTC"
	_intervalDefault   = "1d"
	_logLevelDefault   = "info"
	_timezoneDefault   = "Local"
	_timeLayoutDefault = "1/2/2006, 3:04:05 PM"

	_envAddress  = "HYPERLIQUID_API_URL"
	_envLogLevel = "LOG_LEVEL"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	var c Config
	c.Setup()
	return c
}

func (c *Config) Setup() {
	c.LogLevel = cmp.Or(c.LogLevel, _logLevelDefault)
	c.Hyperliquid.Address = cmp.Or(c.Hyperliquid.Address, _addressDefault)
	if c.Hyperliquid.Timeout < 0 {
		c.Hyperliquid.Timeout = 0
	}
	c.Query.Coin = cmp.Or(c.Query.Coin, _coinDefault)
	c.Query.Interval = cmp.Or(c.Query.Interval, _intervalDefault)
	if c.Query.StartTime < 0 {
		c.Query.StartTime = 0
	}
	c.Report.Timezone = cmp.Or(c.Report.Timezone, _timezoneDefault)
	c.Report.TimeLayout = cmp.Or(c.Report.TimeLayout, _timeLayoutDefault)
}

// ApplyEnv overrides file values with environment variables (.env included).
func (c *Config) ApplyEnv() {
	c.Hyperliquid.Address = cmp.Or(os.Getenv(_envAddress), c.Hyperliquid.Address)
	c.LogLevel = cmp.Or(os.Getenv(_envLogLevel), c.LogLevel)
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.Hyperliquid.Address)
	if err != nil {
		return fmt.Errorf("%w: invalid hyperliquid address", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("hyperliquid address must be http(s), got %q", c.Hyperliquid.Address)
	}
	if u.Host == "" {
		return fmt.Errorf("hyperliquid address has no host")
	}
	if _, err := c.Report.Location(); err != nil {
		return err
	}

	return nil
}

func (c ReportConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: can't load timezone %q", err, c.Timezone)
	}
	return loc, nil
}

// Load reads a YAML config. A missing file is not an error, defaults are used.
func Load(filename string) (Config, error) {
	var cfg Config
	input, err := os.ReadFile(filename)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("%w: can't read file", err)
	default:
		if err := yaml.Unmarshal(input, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: can't unmarshal config", err)
		}
	}

	cfg.ApplyEnv()
	cfg.Setup()

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: can't setup cfg", err)
	}

	return cfg, nil
}
