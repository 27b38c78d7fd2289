// Package config loads application settings from a YAML file with live
// reload. Settings can also come from COOKMODE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/mkhoury/cookmode/internal/logger"
)

// Keys in the config file.
const (
	KeyReducedMotion = "reduced_motion"
	KeyChime         = "chime"
	KeyRecipesDir    = "recipes_dir"
	KeyLogLevel      = "log_level"
)

// Config wraps a viper instance with typed accessors and change
// notification. Safe for concurrent use.
type Config struct {
	v   *viper.Viper
	log *logger.Logger

	mu   sync.Mutex
	subs []func()
}

// Load reads the config file, if present. A missing file is not an
// error; defaults apply. path overrides the search locations when
// non-empty.
func Load(path string, log *logger.Logger) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyReducedMotion, false)
	v.SetDefault(KeyChime, true)
	v.SetDefault(KeyRecipesDir, "")
	v.SetDefault(KeyLogLevel, "normal")

	v.SetEnvPrefix("COOKMODE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/cookmode")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		log.Debug("config: no file found, using defaults")
	} else {
		log.Debug("config: loaded %s", v.ConfigFileUsed())
	}

	return &Config{v: v, log: log}, nil
}

// Watch starts watching the config file for edits. Subscribers
// registered with OnChange fire on every rewrite. No-op when no config
// file was found.
func (c *Config) Watch() {
	if c.v.ConfigFileUsed() == "" {
		return
	}
	c.v.OnConfigChange(func(e fsnotify.Event) {
		c.log.Debug("config: reloaded after %s on %s", e.Op, e.Name)
		c.mu.Lock()
		subs := append([]func(){}, c.subs...)
		c.mu.Unlock()
		for _, fn := range subs {
			fn()
		}
	})
	c.v.WatchConfig()
}

// OnChange registers a callback for config reloads.
func (c *Config) OnChange(fn func()) {
	c.mu.Lock()
	c.subs = append(c.subs, fn)
	c.mu.Unlock()
}

// ReducedMotion reports whether step transitions should skip animation.
func (c *Config) ReducedMotion() bool { return c.v.GetBool(KeyReducedMotion) }

// ChimeEnabled reports whether audio cues are wanted.
func (c *Config) ChimeEnabled() bool { return c.v.GetBool(KeyChime) }

// RecipesDir returns the directory of user recipe YAML files, or "".
func (c *Config) RecipesDir() string { return c.v.GetString(KeyRecipesDir) }

// LogLevel returns the configured log level name.
func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }
