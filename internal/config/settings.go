package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings is the process configuration for the API server and CLI.
// Precedence: environment > settings file > defaults.
type Settings struct {
	API       APISettings      `mapstructure:"api"`
	Log       LogSettings      `mapstructure:"log"`
	Scenarios ScenarioSettings `mapstructure:"scenarios"`
	Cache     CacheSettings    `mapstructure:"cache"`
}

type APISettings struct {
	Port        string   `mapstructure:"port"`
	Env         string   `mapstructure:"env"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" | "console"
}

type ScenarioSettings struct {
	Dir string `mapstructure:"dir"`
}

type CacheSettings struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

func (s *Settings) IsProduction() bool {
	return s.API.Env == "production"
}

// LoadSettings reads settings from path, or from settings.yaml in ./configs or
// the working directory when path is empty. A missing default file is not an error.
func LoadSettings(path string) (*Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("scenarios.dir", "SCENARIOS_DIR", "SCENARIO_DIR")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "LOG_FORMAT")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read settings %s: %w", path, err)
		}
	} else {
		v.SetConfigName("settings")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read settings: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.env", "development")
	v.SetDefault("api.cors_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("scenarios.dir", "./scenarios")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", time.Hour)
}

func (s *Settings) Validate() error {
	if strings.TrimSpace(s.API.Port) == "" {
		return errors.New("api.port is required")
	}
	switch s.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", s.Log.Format)
	}
	if s.Cache.Enabled && s.Cache.TTL <= 0 {
		return errors.New("cache.ttl must be > 0 when the cache is enabled")
	}
	return nil
}
