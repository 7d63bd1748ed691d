//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config holds the settings of a kilo session.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration options for kilo.
type Config struct {
	QuitTimes      int           `mapstructure:"quit_times"`      // quit requests needed to discard changes
	MessageTimeout time.Duration `mapstructure:"message_timeout"` // status message lifetime
	LogFile        string        `mapstructure:"log_file"`
	InitScript     string        `mapstructure:"init_script"` // lisp evaluated at startup
}

func Defaults() Config {
	home, _ := os.UserHomeDir()
	return Config{
		QuitTimes:      3,
		MessageTimeout: 5 * time.Second,
		LogFile:        filepath.Join(home, ".kilolog"),
		InitScript:     filepath.Join(home, ".kilorc"),
	}
}

// SetDefaults registers the defaults with v.
func SetDefaults(v *viper.Viper) {
	defaults := Defaults()
	v.SetDefault("quit_times", defaults.QuitTimes)
	v.SetDefault("message_timeout", defaults.MessageTimeout)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("init_script", defaults.InitScript)
}

// Load reads the configuration into v and returns it.
// Lookup order: .kilo/config.yaml, then ~/.config/kilo/config.yaml.
// Environment variables with the KILO_ prefix override both.
// A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("kilo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(filepath.Join(".kilo", "config.yaml")); err == nil {
		v.SetConfigFile(filepath.Join(".kilo", "config.yaml"))
	} else {
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "kilo"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}
	return Decode(v)
}

// Decode unmarshals and validates the settings already held by v.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.QuitTimes < 0 {
		return fmt.Errorf("quit_times must not be negative, got %d", c.QuitTimes)
	}
	if c.MessageTimeout <= 0 {
		return fmt.Errorf("message_timeout must be positive, got %s", c.MessageTimeout)
	}
	return nil
}
