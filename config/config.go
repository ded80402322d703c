package config

import (
	"fmt"
	"gametree/meta"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	GameFiles  []string `mapstructure:"GAME_FILES"`
	OutputDir  string   `mapstructure:"OUTPUT_DIR"`
	LogLevel   string   `mapstructure:"LOG_LEVEL"`
	Trials     int      `mapstructure:"TRIALS"`
	Keys       int      `mapstructure:"KEYS"`
	Seed       uint64   `mapstructure:"SEED"`
	DrawBoards bool     `mapstructure:"DRAW_BOARDS"`
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"output":      "OUTPUT_DIR",
	"log-level":   "LOG_LEVEL",
	"trials":      "TRIALS",
	"keys":        "KEYS",
	"seed":        "SEED",
	"draw-boards": "DRAW_BOARDS",
}

// Flags returns the flag set understood by Setup.
func Flags(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringP("config", "c", "", "path to a config file (yaml, json, toml or .env)")
	flags.StringP("output", "o", meta.OUTPUT_DIR, "directory for experiment records")
	flags.String("log-level", meta.LOG_LEVEL, "zerolog level")
	flags.Int("trials", meta.TRIALS, "rebuild trials per insertion order")
	flags.Int("keys", meta.KEYS, "keys inserted per rebuild trial")
	flags.Uint64("seed", meta.SEED, "seed for shuffled insertion orders")
	flags.Bool("draw-boards", false, "draw the root and best reply of every game")
	return flags
}

// Setup loads the configuration. Values are taken, in increasing order of
// precedence, from defaults, the file at cfgPath (if any), GAMETREE_*
// environment variables and changed flags. Positional flag arguments are
// game files.
func Setup(cfgPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("GAME_FILES", []string{})
	v.SetDefault("OUTPUT_DIR", meta.OUTPUT_DIR)
	v.SetDefault("LOG_LEVEL", meta.LOG_LEVEL)
	v.SetDefault("TRIALS", meta.TRIALS)
	v.SetDefault("KEYS", meta.KEYS)
	v.SetDefault("SEED", meta.SEED)
	v.SetDefault("DRAW_BOARDS", false)

	v.SetEnvPrefix(meta.ENV_PREFIX)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
		if flags.NArg() > 0 {
			v.Set("GAME_FILES", flags.Args())
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Trials < 0 {
		return fmt.Errorf("trials must not be negative, got %d", c.Trials)
	}
	if c.Keys < 0 {
		return fmt.Errorf("keys must not be negative, got %d", c.Keys)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the configured zerolog level.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
