package config

import "time"

const (
	OutputText   = "text"
	OutputHex    = "hex"
	OutputTriple = "triple"
	OutputSwatch = "swatch"
)

var Outputs = []string{OutputText, OutputHex, OutputTriple, OutputSwatch}

func Default() Config {
	return Config{
		Output:   OutputText,
		LogLevel: "info",
		Palette:  map[string]string{},
		Lights: LightsConfig{
			Steps:   10,
			Pause:   100 * time.Millisecond,
			Timeout: 2 * time.Second,
		},
	}
}
