package utils

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/alpacahq/jpholiday/utils/log"
)

const (
	defaultTimezone = "Asia/Tokyo"
	defaultFormat   = "text"
	defaultWorkers  = 4

	envTimezone = "JPHOLIDAY_TIMEZONE"
	envLogLevel = "JPHOLIDAY_LOG_LEVEL"
)

var InstanceConfig = DefaultConfig()

// Config is the jpholiday configuration, usually read from jpholiday.yml.
type Config struct {
	Timezone *time.Location
	LogLevel log.Level
	Format   string
	Workers  int
	// Market is handed to market.NewConfig as is.
	Market map[string]interface{}
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Timezone: tokyo(),
		LogLevel: log.INFO,
		Format:   defaultFormat,
		Workers:  defaultWorkers,
		Market:   map[string]interface{}{},
	}
}

// tokyo falls back to a fixed +09:00 zone on systems without tzdata.
func tokyo() *time.Location {
	loc, err := time.LoadLocation(defaultTimezone)
	if err != nil {
		return time.FixedZone(defaultTimezone, 9*60*60)
	}
	return loc
}

func (c *Config) Parse(data []byte) error {
	var aux struct {
		Timezone string                 `yaml:"timezone"`
		LogLevel string                 `yaml:"log_level"`
		Format   string                 `yaml:"format"`
		Workers  int                    `yaml:"workers"`
		Market   map[string]interface{} `yaml:"market"`
	}

	if err := yaml.Unmarshal(data, &aux); err != nil {
		return errors.Wrap(err, "failed to unmarshal the config file")
	}

	// environment variables win over the file
	if tz := os.Getenv(envTimezone); tz != "" {
		aux.Timezone = tz
	}
	if lvl := os.Getenv(envLogLevel); lvl != "" {
		aux.LogLevel = lvl
	}

	if aux.Timezone == "" {
		c.Timezone = tokyo()
	} else {
		loc, err := time.LoadLocation(aux.Timezone)
		if err != nil {
			return errors.Wrapf(err, "invalid timezone: %s", aux.Timezone)
		}
		c.Timezone = loc
	}

	c.LogLevel = log.ParseLevel(aux.LogLevel)

	c.Format = aux.Format
	if c.Format == "" {
		c.Format = defaultFormat
	}

	switch {
	case aux.Workers < 0:
		log.Error("Invalid value: %v for workers. Using %d...", aux.Workers, defaultWorkers)
		c.Workers = defaultWorkers
	case aux.Workers == 0:
		c.Workers = defaultWorkers
	default:
		c.Workers = aux.Workers
	}

	c.Market = aux.Market
	if c.Market == nil {
		c.Market = map[string]interface{}{}
	}
	return nil
}

// ParseConfig parses a YAML configuration.
func ParseConfig(data []byte) (*Config, error) {
	c := DefaultConfig()
	if err := c.Parse(data); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadConfig reads the configuration at path. A missing file is not an
// error; the defaults are used instead.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Debug("no config file at %s, using defaults", path)
		return ParseConfig(nil)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read configuration file %s", path)
	}
	return ParseConfig(data)
}
