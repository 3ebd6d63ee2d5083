package config

import (
	"errors"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	Currency   CurrencyConfig   `yaml:"currency" mapstructure:"currency"`
	Categories CategoriesConfig `yaml:"categories" mapstructure:"categories"`
	Ledger     LedgerConfig     `yaml:"ledger" mapstructure:"ledger"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port        int      `yaml:"port" mapstructure:"port"`
	RateLimit   float64  `yaml:"rate_limit" mapstructure:"rate_limit"`
	RateBurst   int      `yaml:"rate_burst" mapstructure:"rate_burst"`
	CORSOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// CurrencyConfig holds the symbols recognized by the extractor.
type CurrencyConfig struct {
	Primary   string `yaml:"primary" mapstructure:"primary"`
	Secondary string `yaml:"secondary" mapstructure:"secondary"`
	Default   string `yaml:"default" mapstructure:"default"`
}

// CategoriesConfig points at an optional YAML category registry.
type CategoriesConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// LedgerConfig bounds the session ledger.
type LedgerConfig struct {
	MaxRecords int `yaml:"max_records" mapstructure:"max_records"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FINANCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.rate_limit", 10)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("currency.primary", "₹")
	v.SetDefault("currency.secondary", "$")
	v.SetDefault("currency.default", "₹")
	v.SetDefault("categories.file", "")
	v.SetDefault("ledger.max_records", 0)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings required by the given run mode and reports
// every problem at once. Modes: "serve", "cli".
func (c *Config) Validate(mode string) error {
	var errs []error

	switch mode {
	case "serve":
		if c.Server.Port < 1 || c.Server.Port > 65535 {
			errs = append(errs, eris.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
		}
		if c.Server.RateLimit < 0 {
			errs = append(errs, eris.Errorf("server.rate_limit must be >= 0, got %v", c.Server.RateLimit))
		}
		if c.Server.RateBurst < 0 {
			errs = append(errs, eris.Errorf("server.rate_burst must be >= 0, got %d", c.Server.RateBurst))
		}
		if c.Server.RateLimit > 0 && c.Server.RateBurst == 0 {
			errs = append(errs, eris.New("server.rate_burst must be > 0 when server.rate_limit is set"))
		}
	case "cli":
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if c.Currency.Primary == "" {
		errs = append(errs, eris.New("currency.primary is required"))
	}
	if c.Currency.Default == "" {
		errs = append(errs, eris.New("currency.default is required"))
	}
	if c.Currency.Secondary != "" && c.Currency.Secondary == c.Currency.Primary {
		errs = append(errs, eris.Errorf("currency.secondary must differ from currency.primary (%q)", c.Currency.Primary))
	}
	if c.Ledger.MaxRecords < 0 {
		errs = append(errs, eris.Errorf("ledger.max_records must be >= 0, got %d", c.Ledger.MaxRecords))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, eris.Errorf("log.format must be json or console, got %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return eris.Wrap(errors.Join(errs...), "config: validate")
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
