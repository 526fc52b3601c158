package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/kungfukennyg/colour/colour"
	"github.com/kungfukennyg/colour/colourctl/config"
)

const swatchWidth = 6

func format(output string, t colour.Triple) (string, error) {
	switch output {
	case config.OutputHex:
		if !t.Valid() {
			return "", errors.Wrapf(colour.ErrInvalidTriple, "cannot format [%s] as hex", t)
		}
		return t.Hex(), nil
	case config.OutputTriple:
		return tripleString(t), nil
	case config.OutputSwatch:
		text, err := colour.ToText(t)
		if err != nil {
			return "", err
		}
		return swatch(t) + " " + text, nil
	default:
		return colour.ToText(t)
	}
}

// tripleString pads every channel to three digits so columns line up.
func tripleString(t colour.Triple) string {
	parts := make([]string, len(t))
	for i, val := range t {
		parts[i] = fmt.Sprintf("%03d", val)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func swatch(t colour.Triple) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(t.Hex())).
		Render(strings.Repeat(" ", swatchWidth))
}
