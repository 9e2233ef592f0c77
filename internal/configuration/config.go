// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package configuration loads the settings of the command line tool from flags, environment
// variables (LINEDIFF_*) and an optional linediff.yaml file.
package configuration

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"lumitools.dev/linediff/internal/logging"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Keys shared by flags, environment variables and the config file.
const (
	KeyColor      = "color"
	KeySideBySide = "side-by-side"
	KeyWidth      = "width"
	KeySummary    = "summary"
	KeyWatch      = "watch"
	KeyDebounce   = "debounce"
)

type Configuration struct {
	Color      string        `mapstructure:"color"`
	SideBySide bool          `mapstructure:"side-by-side"`
	Width      int           `mapstructure:"width"`
	Summary    bool          `mapstructure:"summary"`
	Watch      bool          `mapstructure:"watch"`
	Debounce   time.Duration `mapstructure:"debounce"`
}

// InitConfig prepares v to read cfgFile or, if it's empty, the first linediff.yaml found in the
// working directory, the home directory or /etc/linediff.
func InitConfig(v *viper.Viper, cfgFile string) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
	} else {
		// Without a config type, only names with a known extension match, never the binary itself.
		v.SetConfigName("linediff")
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err != nil {
			logging.Warning("Couldn't detect home directory: %v", err)
		} else {
			v.AddConfigPath(home)
		}
		v.AddConfigPath("/etc/linediff/")
	}

	v.SetEnvPrefix("LINEDIFF")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	setDefaultValues(v)
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault(KeyColor, ColorAuto)
	v.SetDefault(KeySideBySide, false)
	v.SetDefault(KeyWidth, 0)
	v.SetDefault(KeySummary, false)
	v.SetDefault(KeyWatch, false)
	v.SetDefault(KeyDebounce, 100*time.Millisecond)
}

// ReadInConfig reads the config file, if there is one, and returns its path. A missing config file
// is not an error unless it was requested explicitly.
func ReadInConfig(v *viper.Viper) (string, error) {
	err := v.ReadInConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load decodes and validates the configuration.
func Load(v *viper.Viper) (Configuration, error) {
	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return Configuration{}, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := Validate(c); err != nil {
		return Configuration{}, err
	}
	return c, nil
}

func Validate(c Configuration) error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q, must be one of %s, %s or %s", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	if c.Width < 0 {
		return fmt.Errorf("invalid width %d, must not be negative", c.Width)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("invalid debounce %v, must not be negative", c.Debounce)
	}
	return nil
}
