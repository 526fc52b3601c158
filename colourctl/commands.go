package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kungfukennyg/colour/colour"
	"github.com/kungfukennyg/colour/colourctl/log"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <colour>",
		Short: "Print the channels of a colour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := colour.Parse(a.cfg.Resolve(args[0]))
			if err != nil {
				return err
			}
			log.Debug("parse", "%q -> [%s]", args[0], t)
			return a.print(cmd, t)
		},
	}
}

func newTextCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "text <r> <g> <b>",
		Short: "Format three channel values as rgb(r,g,b)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var t colour.Triple
			for i, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return errors.Wrapf(colour.ErrTypeInput, "channel %q is not an integer", arg)
				}
				t[i] = v
			}
			if _, err := colour.ToText(t); err != nil {
				return err
			}
			return a.print(cmd, t)
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <colour>...",
		Short: "Add colours channel by channel, saturating at 255",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			texts := a.resolveAll(args)
			return a.printText(cmd, "add", args)(colour.Add(texts[0], texts[1:]...))
		},
	}
}

func newAverageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "average <colour>...",
		Short: "Average colours",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			texts := a.resolveAll(args)
			return a.printText(cmd, "average", args)(colour.Average(texts[0], texts[1:]...))
		},
	}
}

func newMultiplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "multiply <colour> <factor>",
		Short: "Scale every channel of a colour by a factor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseFactor(args[1])
			if err != nil {
				return err
			}
			return a.printText(cmd, "multiply", args)(colour.Multiply(a.cfg.Resolve(args[0]), k))
		},
	}
}

func newDivideCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "divide <colour> <factor>",
		Short: "Divide every channel of a colour by a factor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseFactor(args[1])
			if err != nil {
				return err
			}
			return a.printText(cmd, "divide", args)(colour.Divide(a.cfg.Resolve(args[0]), k))
		},
	}
}

func newMixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mix <from> <to> <weight>",
		Short: "Blend two colours; weight 0 gives <from>, 1 gives <to>",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := parseFactor(args[2])
			if err != nil {
				return err
			}
			return a.printText(cmd, "mix", args)(colour.Mix(a.cfg.Resolve(args[0]), a.cfg.Resolve(args[1]), w))
		},
	}
}

func newNamesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List the known colour names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range colour.Names() {
				t, _ := colour.Lookup(name)
				out, err := format(a.cfg.Output, t)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", name, out)
			}
			return nil
		},
	}
}

func (a *app) resolveAll(args []string) []string {
	texts := make([]string, len(args))
	for i, arg := range args {
		texts[i] = a.cfg.Resolve(arg)
	}
	return texts
}

// printText returns a sink for the (text, error) results of the arithmetic
// functions.
func (a *app) printText(cmd *cobra.Command, op string, args []string) func(string, error) error {
	return func(text string, err error) error {
		if err != nil {
			return errors.Wrapf(err, "%s failed", op)
		}
		log.Debug(op, "%v -> %s", args, text)
		t, err := colour.Parse(text)
		if err != nil {
			return err
		}
		return a.print(cmd, t)
	}
}

func (a *app) print(cmd *cobra.Command, t colour.Triple) error {
	out, err := format(a.cfg.Output, t)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func parseFactor(s string) (float64, error) {
	k, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(colour.ErrTypeInput, "factor %q is not a number", s)
	}
	return k, nil
}
