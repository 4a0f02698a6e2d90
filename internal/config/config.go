// Package config loads service settings from defaults, a yaml file,
// ROOMS_* environment variables and bound flags, in increasing priority.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-rooms/internal/errors"
	"github.com/KirkDiggler/rpg-rooms/internal/logging"
)

// EnvPrefix is prepended to every environment variable
const EnvPrefix = "ROOMS"

// Config is the full service configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
	Placement PlacementConfig `mapstructure:"placement"`
	Edgar     EdgarConfig     `mapstructure:"edgar"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Templates TemplatesConfig `mapstructure:"templates"`
}

// ServerConfig controls the gRPC listener
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RedisConfig selects the snapshot store. An empty endpoint keeps
// snapshots in memory.
type RedisConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PlacementConfig holds defaults for new placement sessions
type PlacementConfig struct {
	MinDistance float64 `mapstructure:"min_distance"`
	MaxAttempts int     `mapstructure:"max_attempts"`
	// GridSteps > 0 snaps positions to a dice-driven grid
	GridSteps int `mapstructure:"grid_steps"`
}

// EdgarConfig points at the Edgar API. Empty base URL disables it.
type EdgarConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LLMConfig points at the generation API. Empty base URL disables it.
type LLMConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// TemplatesConfig holds registry settings
type TemplatesConfig struct {
	// Collection is the snapshot name used by save/load
	Collection string `mapstructure:"collection"`
	// DenyWords feed the content policy for generated templates
	DenyWords []string `mapstructure:"deny_words"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:            50051,
			ShutdownTimeout: 30 * time.Second,
		},
		Redis: RedisConfig{
			PoolSize: 10,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Placement: PlacementConfig{
			MinDistance: 2,
			MaxAttempts: 100,
		},
		Edgar: EdgarConfig{
			Timeout: 30 * time.Second,
		},
		LLM: LLMConfig{
			Timeout:  60 * time.Second,
			CacheTTL: time.Hour,
		},
		Templates: TemplatesConfig{
			Collection: "default",
		},
	}
}

// SetDefaults registers every key with v so env variables can override it
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("redis.endpoint", d.Redis.Endpoint)
	v.SetDefault("redis.pool_size", d.Redis.PoolSize)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("placement.min_distance", d.Placement.MinDistance)
	v.SetDefault("placement.max_attempts", d.Placement.MaxAttempts)
	v.SetDefault("placement.grid_steps", d.Placement.GridSteps)
	v.SetDefault("edgar.base_url", d.Edgar.BaseURL)
	v.SetDefault("edgar.token", d.Edgar.Token)
	v.SetDefault("edgar.timeout", d.Edgar.Timeout)
	v.SetDefault("llm.base_url", d.LLM.BaseURL)
	v.SetDefault("llm.timeout", d.LLM.Timeout)
	v.SetDefault("llm.cache_ttl", d.LLM.CacheTTL)
	v.SetDefault("templates.collection", d.Templates.Collection)
	v.SetDefault("templates.deny_words", d.Templates.DenyWords)
}

// Load reads configuration into a validated Config. With an empty
// cfgFile it looks for rooms.yaml in the working directory and then in
// ~/.config/rooms; a missing file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("rooms")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "rooms"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		vb.Fieldf("server.port", "must be between 1 and 65535, got %d", c.Server.Port)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		vb.Field("log.level", err.Error())
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		vb.Fieldf("log.format", "must be json or console, got %q", c.Log.Format)
	}
	errors.ValidateNonNegative("placement.min_distance", c.Placement.MinDistance, vb)
	errors.ValidateMinInt("placement.max_attempts", c.Placement.MaxAttempts, 1, vb)
	errors.ValidateMinInt("placement.grid_steps", c.Placement.GridSteps, 0, vb)
	errors.ValidateRequired("templates.collection", c.Templates.Collection, vb)

	return vb.Build()
}
