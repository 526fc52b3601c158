package config

import "time"

// Config is the merged colourctl configuration.
type Config struct {
	Output   string
	LogLevel string
	// Palette maps user aliases to colour text. Aliases are resolved before
	// parsing and never change the built-in colour keywords.
	Palette map[string]string
	Lights  LightsConfig
}

type LightsConfig struct {
	Steps   int
	Pause   time.Duration
	Timeout time.Duration
}

// fileConfig is the on-disk form. Pointer fields stay nil when a layer
// does not set them.
type fileConfig struct {
	Output   *string           `yaml:"output"`
	LogLevel *string           `yaml:"logLevel"`
	Palette  map[string]string `yaml:"palette"`
	Lights   struct {
		Steps   *int           `yaml:"steps"`
		Pause   *time.Duration `yaml:"pause"`
		Timeout *time.Duration `yaml:"timeout"`
	} `yaml:"lights"`
}
