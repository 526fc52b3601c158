package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kungfukennyg/colour/colourctl/config"
	"github.com/kungfukennyg/colour/colourctl/log"
)

var version = "dev"

// app carries the state shared by every subcommand.
type app struct {
	cfg        config.Config
	configPath string
	output     string
	debug      bool

	stdin   io.Reader
	stderr  io.Writer
	connect func(*app) (lightBackend, error)
}

func main() {
	a := &app{stdin: os.Stdin, connect: connectCync}
	if err := newRootCmd(a).Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "colourctl",
		Short: "Parse, combine and display colour values",
		Long: `colourctl reads colours written as #RGB, #RRGGBB, rgb(R, G, B) or CSS
colour names, combines them with saturating arithmetic and prints the result.
It can also push colours to Cync smart bulbs.`,
		SilenceUsage: true,
		Version:      version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.SetVersionTemplate(`{{printf "colourctl version %s\n" .Version}}`)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file layered over ~/.config/colourctl/config.yaml and ./.colourctl/config.yaml")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text, hex, triple or swatch")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newParseCmd(a),
		newTextCmd(a),
		newAddCmd(a),
		newMultiplyCmd(a),
		newDivideCmd(a),
		newAverageCmd(a),
		newMixCmd(a),
		newNamesCmd(a),
		newLightsCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if a.output != "" {
		cfg.Output = a.output
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.debug {
		level = log.LevelDebug
	}
	a.stderr = cmd.ErrOrStderr()
	log.Init(level, a.stderr)

	a.cfg = cfg
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of colourctl",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "colourctl version %s\n", version)
		},
	}
}
