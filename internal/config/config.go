// Package config handles configuration loading for the openprovider CLI.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax). This allows credentials to
// be injected at runtime instead of being committed to disk.
//
// # Configuration Sections
//
//   - api: endpoint settings (URL, user agent, timeout)
//   - accounts: named credential sets; each needs a username plus exactly
//     one of password and passwordHash
//   - defaultAccount: the account used when none is selected
//   - logging: log level and output format
//
// # Example Configuration
//
//	api:
//	  url: https://api.openprovider.eu
//	  timeout: 30s
//
//	accounts:
//	  default:
//	    username: myreseller
//	    passwordHash: ${OPENPROVIDER_PASSWORD_HASH}
//	  test:
//	    username: myreseller
//	    password: ${OPENPROVIDER_TEST_PASSWORD}
//	    url: https://api.cte.openprovider.eu
//
//	defaultAccount: default
//
//	logging:
//	  level: info
//	  format: text
//
// See [Load] for loading configuration from a file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lagowski/go-openprovider/pkg/transport"
)

// Config is the root configuration structure
type Config struct {
	API            APIConfig                `yaml:"api"`
	Accounts       map[string]AccountConfig `yaml:"accounts"`
	DefaultAccount string                   `yaml:"defaultAccount"`
	Logging        LoggingConfig            `yaml:"logging"`
}

// APIConfig holds endpoint settings shared by all accounts
type APIConfig struct {
	URL       string   `yaml:"url"`
	UserAgent string   `yaml:"userAgent"`
	Timeout   Duration `yaml:"timeout"`
	// TLSSkipVerify disables certificate verification, for test
	// endpoints behind self-signed certificates only
	TLSSkipVerify bool `yaml:"tlsSkipVerify"`
}

// AccountConfig holds one named credential set
type AccountConfig struct {
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"passwordHash"`
	// URL overrides api.url for this account, typically to point a
	// single account at the cte test environment
	URL string `yaml:"url"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Duration decodes YAML durations written as Go duration strings,
// for example "30s" or "2m"
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like '30s', got %s", value.Tag)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration '%s'", s)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a standard time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Validate
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Account resolves a named account, falling back to defaultAccount when
// the name is empty.
func (c *Config) Account(name string) (AccountConfig, error) {
	if name == "" {
		name = c.DefaultAccount
	}
	if name == "" {
		return AccountConfig{}, fmt.Errorf("no account selected and no defaultAccount configured")
	}
	account, ok := c.Accounts[name]
	if !ok {
		return AccountConfig{}, fmt.Errorf("account '%s' is not defined under accounts", name)
	}
	return account, nil
}

func (c *Config) applyDefaults() {
	if c.API.URL == "" {
		c.API.URL = transport.DefaultURL
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = transport.DefaultUserAgent
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = Duration(30 * time.Second)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.DefaultAccount == "" && len(c.Accounts) == 1 {
		for name := range c.Accounts {
			c.DefaultAccount = name
		}
	}
}

func (c *Config) validate() error {
	if len(c.Accounts) == 0 {
		return fmt.Errorf("at least one account is required under accounts")
	}

	for name, account := range c.Accounts {
		if account.Username == "" {
			return fmt.Errorf("accounts.%s.username is required", name)
		}
		if (account.Password == "") == (account.PasswordHash == "") {
			return fmt.Errorf("accounts.%s must set exactly one of password and passwordHash", name)
		}
	}

	if c.DefaultAccount != "" {
		if _, ok := c.Accounts[c.DefaultAccount]; !ok {
			return fmt.Errorf("defaultAccount '%s' is not defined under accounts", c.DefaultAccount)
		}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// Valid levels
	default:
		return fmt.Errorf("logging.level must be 'debug', 'info', 'warn', or 'error', got '%s'", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
		// Valid formats
	default:
		return fmt.Errorf("logging.format must be 'text' or 'json', got '%s'", c.Logging.Format)
	}

	return nil
}
