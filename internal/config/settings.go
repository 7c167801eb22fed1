package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/rpgo/corpfin-calculator/internal/logging"
)

// Settings holds application settings, as opposed to calculator inputs.
type Settings struct {
	Strict bool           `mapstructure:"strict"`
	Log    LogSettings    `mapstructure:"log"`
	Server ServerSettings `mapstructure:"server"`
	Output OutputSettings `mapstructure:"output"`
}

// LogSettings holds logging configuration.
type LogSettings struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    string `mapstructure:"file"` // empty disables file logging
}

// ServerSettings holds HTTP host configuration.
type ServerSettings struct {
	Addr string `mapstructure:"addr"`
}

// OutputSettings holds report output configuration.
type OutputSettings struct {
	Format string `mapstructure:"format"`
	Dir    string `mapstructure:"dir"`
}

// EnvPrefix prefixes every environment override, e.g. CORPFIN_LOG_LEVEL.
const EnvPrefix = "CORPFIN"

// DefaultConfigDir returns the default settings directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/corpfin"
	}
	return filepath.Join(home, ".config", "corpfin")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("strict", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", true)
	v.SetDefault("log.file", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("output.format", "console")
	v.SetDefault("output.dir", ".")
}

// LoadSettings reads settings from path, or from corpfin.yaml in the working
// directory or DefaultConfigDir when path is empty. A missing default file is
// not an error; a missing explicit file is.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("corpfin")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	return &s, nil
}

// LogConfig converts the log settings into a logging configuration.
func (s *Settings) LogConfig() logging.LogConfig {
	cfg := logging.DefaultLogConfig()
	cfg.Level = s.Log.Level
	cfg.Console = s.Log.Console
	if s.Log.File != "" {
		cfg.File = true
		cfg.FilePath = s.Log.File
	}
	return cfg
}
