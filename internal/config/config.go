package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	Store      StoreConfig      `yaml:"store" mapstructure:"store"`
	Processing ProcessingConfig `yaml:"processing" mapstructure:"processing"`
	UI         UIConfig         `yaml:"ui" mapstructure:"ui"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	Output string `yaml:"output" mapstructure:"output"`
}

// StoreConfig configures the preference store.
type StoreConfig struct {
	Path     string `yaml:"path" mapstructure:"path"`
	InMemory bool   `yaml:"in_memory" mapstructure:"in_memory"`
}

// ProcessingConfig configures the analysis animation.
type ProcessingConfig struct {
	MessageInterval time.Duration `yaml:"message_interval" mapstructure:"message_interval"`
	SettleDelay     time.Duration `yaml:"settle_delay" mapstructure:"settle_delay"`
	CounterInterval time.Duration `yaml:"counter_interval" mapstructure:"counter_interval"`
}

// UIConfig configures the terminal interface.
type UIConfig struct {
	AltScreen bool `yaml:"alt_screen" mapstructure:"alt_screen"`
}

// EnvPrefix is prepended to every environment override, e.g.
// HEALTHFORGE_LOG_LEVEL.
const EnvPrefix = "HEALTHFORGE"

// DefaultStorePath returns the preference directory under the user's home.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".healthforge", "prefs")
	}
	return filepath.Join(home, ".local", "share", "healthforge", "prefs")
}

// Load reads configuration from file and environment. When path is empty
// healthforge.yaml is looked up in the working directory and
// $HOME/.config/healthforge, and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("healthforge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "healthforge"))
		}
	}

	// Environment
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("store.path", DefaultStorePath())
	v.SetDefault("store.in_memory", false)
	v.SetDefault("processing.message_interval", 500*time.Millisecond)
	v.SetDefault("processing.settle_delay", 2500*time.Millisecond)
	v.SetDefault("processing.counter_interval", 20*time.Millisecond)
	v.SetDefault("ui.alt_screen", true)

	// Read config file (optional unless named explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
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

	if cfg.Output != "" {
		zapCfg.OutputPaths = []string{cfg.Output}
		zapCfg.ErrorOutputPaths = []string{cfg.Output}
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
