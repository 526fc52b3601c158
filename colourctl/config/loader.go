package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kungfukennyg/colour/colour"
	"github.com/kungfukennyg/colour/colourctl/optional"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/colourctl"
	projectConfigDir = ".colourctl"
	configFileName   = "config.yaml"
)

// Load layers the user config, the project config and finally the file at
// explicitPath (if not empty) over the defaults. Missing user and project
// files are skipped; a missing explicit file is an error.
func Load(explicitPath string) (Config, error) {
	cfg := Default()

	for _, pathFn := range []func() (string, error){getUserConfigPath, getProjectConfigPath} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		layer, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = merge(cfg, layer)
	}

	if explicitPath != "" {
		layer, err := loadFile(explicitPath)
		if err != nil {
			return Config{}, err
		}
		cfg = merge(cfg, layer)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return fc, nil
}

func merge(base Config, layer fileConfig) Config {
	merged := base
	merged.Output = optional.WithValue(layer.Output).OrElse(base.Output)
	merged.LogLevel = optional.WithValue(layer.LogLevel).OrElse(base.LogLevel)
	merged.Lights.Steps = optional.WithValue(layer.Lights.Steps).OrElse(base.Lights.Steps)
	merged.Lights.Pause = optional.WithValue(layer.Lights.Pause).OrElse(base.Lights.Pause)
	merged.Lights.Timeout = optional.WithValue(layer.Lights.Timeout).OrElse(base.Lights.Timeout)

	merged.Palette = make(map[string]string, len(base.Palette)+len(layer.Palette))
	for k, v := range base.Palette {
		merged.Palette[k] = v
	}
	for k, v := range layer.Palette {
		merged.Palette[strings.ToLower(k)] = v
	}
	return merged
}

func (c Config) Validate() error {
	if !slices.Contains(Outputs, c.Output) {
		return errors.Errorf("output must be one of %s, got %q", strings.Join(Outputs, ", "), c.Output)
	}
	if c.Lights.Steps < 1 {
		return errors.Errorf("lights.steps must be at least 1, got %d", c.Lights.Steps)
	}
	if c.Lights.Pause < 0 {
		return errors.Errorf("lights.pause must not be negative, got %s", c.Lights.Pause)
	}
	for alias, text := range c.Palette {
		if _, err := colour.Parse(text); err != nil {
			return errors.Wrapf(err, "palette entry %q", alias)
		}
	}
	return nil
}

// Resolve returns the palette entry for name, or name itself when it is not
// an alias.
func (c Config) Resolve(name string) string {
	if text, ok := c.Palette[strings.ToLower(name)]; ok {
		return text
	}
	return name
}
