package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
	Users   []UserConfig  `yaml:"users"`
}

type DataConfig struct {
	FlightsFile   string `yaml:"flights_file"`
	CustomersFile string `yaml:"customers_file"`
	BookingsFile  string `yaml:"bookings_file"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type UserConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Data.FlightsFile == "" {
		c.Data.FlightsFile = "resources/data/flights.txt"
	}
	if c.Data.CustomersFile == "" {
		c.Data.CustomersFile = "resources/data/customers.txt"
	}
	if c.Data.BookingsFile == "" {
		c.Data.BookingsFile = "resources/data/bookings.txt"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
