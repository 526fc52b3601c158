package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kungfukennyg/colour/colour"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	if a == nil {
		a = &app{stdin: strings.NewReader("")}
	}
	cmd := newRootCmd(a)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd(&app{})
	assert.Equal(t, "colourctl", root.Use)
	assert.NotEmpty(t, root.Short)
	assert.NotEmpty(t, root.Long)
	assert.True(t, root.SilenceUsage)

	found := map[string]bool{}
	for _, c := range root.Commands() {
		found[c.Name()] = true
	}
	for _, name := range []string{"parse", "text", "add", "multiply", "divide", "average", "mix", "names", "lights", "version"} {
		assert.True(t, found[name], "missing subcommand %s", name)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "colourctl version dev\n", out)
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"parse hex", []string{"parse", "#F0a"}, "rgb(255,0,170)\n"},
		{"parse name as hex", []string{"parse", "-o", "hex", "BLUE"}, "#0000ff\n"},
		{"parse as triple", []string{"parse", "--output", "triple", "#F0a"}, "[255, 000, 170]\n"},
		{"text", []string{"text", "255", "0", "10"}, "rgb(255,0,10)\n"},
		{"add", []string{"add", "red", "blue", "lime"}, "rgb(255,255,255)\n"},
		{"multiply", []string{"multiply", "#110022", "2"}, "rgb(34,0,68)\n"},
		{"divide", []string{"divide", "#333", "3"}, "rgb(17,17,17)\n"},
		{"average", []string{"average", "#030000", "#000300", "#000003"}, "rgb(1,1,1)\n"},
		{"mix", []string{"mix", "red", "blue", "0.5"}, "rgb(128,0,128)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, nil, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind error
	}{
		{"unknown colour", []string{"parse", "notacolour"}, colour.ErrNotRecognised},
		{"channel not integer", []string{"text", "a", "0", "0"}, colour.ErrTypeInput},
		{"channel too wide", []string{"text", "1000", "0", "0"}, colour.ErrInvalidTriple},
		{"factor not a number", []string{"multiply", "red", "lots"}, colour.ErrTypeInput},
		{"divide by zero", []string{"divide", "red", "0"}, colour.ErrDivideByZero},
		{"add bad colour", []string{"add", "red", "#12"}, colour.ErrNotRecognised},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, nil, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
		})
	}
}

func TestBadOutputFlag(t *testing.T) {
	_, err := run(t, nil, "parse", "-o", "sepia", "red")
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	out, err := run(t, nil, "names", "-o", "hex")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(colour.Names()))
	assert.Contains(t, out, "cornflowerblue       #6495ed")
}

func TestSwatchOutput(t *testing.T) {
	out, err := run(t, nil, "parse", "-o", "swatch", "red")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, " rgb(255,0,0)\n"), "got %q", out)
}

func TestPaletteAlias(t *testing.T) {
	path := writeConfig(t, "palette:\n  brand: \"#336699\"\n")

	out, err := run(t, nil, "--config", path, "parse", "Brand")
	require.NoError(t, err)
	assert.Equal(t, "rgb(51,102,153)\n", out)

	out, err = run(t, nil, "--config", path, "add", "brand", "brand")
	require.NoError(t, err)
	assert.Equal(t, "rgb(102,204,255)\n", out)
}
