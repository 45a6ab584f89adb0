package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Catalog   CatalogConfig   `yaml:"catalog" mapstructure:"catalog"`
	Launch    LaunchConfig    `yaml:"launch" mapstructure:"launch"`
	Advance   AdvanceConfig   `yaml:"advance" mapstructure:"advance"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// AnthropicConfig holds Anthropic API settings for stage-copy generation.
type AnthropicConfig struct {
	Key            string  `yaml:"key" mapstructure:"key"`
	Model          string  `yaml:"model" mapstructure:"model"`
	MaxTokens      int64   `yaml:"max_tokens" mapstructure:"max_tokens"`
	TimeoutSecs    int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RequestsPerSec float64 `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
}

// CatalogConfig points at the loadable datasets. Empty paths fall back to the
// built-in catalogs.
type CatalogConfig struct {
	SuppliersPath  string `yaml:"suppliers_path" mapstructure:"suppliers_path"`
	StrategiesPath string `yaml:"strategies_path" mapstructure:"strategies_path"`
}

// LaunchConfig configures the mass-campaign launcher.
type LaunchConfig struct {
	MaxConcurrentSuppliers int `yaml:"max_concurrent_suppliers" mapstructure:"max_concurrent_suppliers"`
}

// AdvanceConfig configures the stage advancement batch job.
type AdvanceConfig struct {
	BatchSize  int `yaml:"batch_size" mapstructure:"batch_size"`
	BudgetSecs int `yaml:"budget_secs" mapstructure:"budget_secs"`
	RecentRuns int `yaml:"recent_runs" mapstructure:"recent_runs"`
}

// ServerConfig configures the trigger HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("OUTREACH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.max_tokens", 1024)
	v.SetDefault("anthropic.timeout_secs", 20)
	v.SetDefault("anthropic.requests_per_sec", 2.0)
	v.SetDefault("launch.max_concurrent_suppliers", 4)
	v.SetDefault("advance.batch_size", 100)
	v.SetDefault("advance.budget_secs", 300)
	v.SetDefault("advance.recent_runs", 10)

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

// Validate checks the configuration a component needs before it runs.
func (c *Config) Validate(component string) error {
	switch component {
	case "store", "advance", "status":
		if c.Store.DatabaseURL == "" {
			return eris.New("config: store.database_url is required (OUTREACH_STORE_DATABASE_URL)")
		}
	case "launch":
		if c.Store.DatabaseURL == "" {
			return eris.New("config: store.database_url is required (OUTREACH_STORE_DATABASE_URL)")
		}
		if c.Anthropic.Key == "" {
			return eris.New("config: anthropic.key is required for launch (OUTREACH_ANTHROPIC_KEY)")
		}
	default:
		return eris.Errorf("config: unknown component %q", component)
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
