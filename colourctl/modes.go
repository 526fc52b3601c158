package main

import (
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kungfukennyg/colour/colour"
	"github.com/kungfukennyg/colour/colourctl/log"
)

var rainbow = []string{
	"#ff0000", // red
	"#ff8000", // orange
	"#ffff00", // yellow
	"#80ff00", // yellow-green
	"#00ff00", // green
	"#00ff80", // teal-green
	"#00ffff", // teal
	"#0080ff", // light-blue
	"#0000ff", // blue
	"#7f00ff", // purple
	"#ff00ff", // pink
	"#ff007f", // red-pink
}

// cycler hands every bulb a random palette colour per round, avoiding the
// bulb's previous colour and colours already given out in the same round.
type cycler struct {
	palette   []colour.Triple
	lastColor map[string]colour.Triple
	rand      *rand.Rand
}

func newCycler(palette []string, seed int64) (*cycler, error) {
	if len(palette) == 0 {
		return nil, errors.New("palette is empty")
	}
	c := &cycler{
		lastColor: make(map[string]colour.Triple),
		rand:      rand.New(rand.NewSource(seed)),
	}
	for _, text := range palette {
		t, err := colour.Parse(text)
		if err != nil {
			return nil, err
		}
		c.palette = append(c.palette, t)
	}
	return c, nil
}

func (c *cycler) next(bulbs []bulb) []colour.Triple {
	alreadyChosen := make(map[colour.Triple]struct{}, len(bulbs))
	picks := make([]colour.Triple, len(bulbs))
	for i, b := range bulbs {
		var color colour.Triple
		lastColor, ok := c.lastColor[b.ID]
		for attempts := 0; attempts < 1000; attempts++ {
			color = c.palette[c.rand.Intn(len(c.palette))]
			if ok && lastColor == color {
				continue
			}
			if _, taken := alreadyChosen[color]; taken {
				continue
			}
			break
		}
		alreadyChosen[color] = struct{}{}
		c.lastColor[b.ID] = color
		picks[i] = color
	}
	return picks
}

// run plays rounds until count is reached, or until stop is closed when
// count is 0.
func (c *cycler) run(backend lightBackend, bulbs []bulb, count int, pause time.Duration, stop <-chan struct{}, out io.Writer) error {
	writer := log.New(out)
	lines := make([]io.Writer, len(bulbs))
	for i := range bulbs {
		lines[i] = writer.Newline()
	}

	for round := 0; count == 0 || round < count; round++ {
		log.FPrintf(writer, log.MainColor, "[cycle] round %d\n", round+1)
		for i, color := range c.next(bulbs) {
			if err := backend.SetRGB(bulbs[i], color); err != nil {
				return errors.Wrapf(err, "failed to set %s", bulbs[i].Name)
			}
			log.FPrintf(lines[i], log.OutputColor, "\t%s - %s\n", tripleString(color), bulbs[i].Name)
		}
		if err := writer.Flush(); err != nil {
			return err
		}

		if count != 0 && round == count-1 {
			break
		}
		select {
		case <-stop:
			return nil
		case <-time.After(pause):
		}
	}
	return nil
}

func newCycleCmd(a *app, connect func() (lightBackend, []bulb, error)) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "cycle [colour...]",
		Short: "Give devices a new random colour every round",
		Long: `Give every device a random colour from the listed colours (default a
twelve-colour rainbow) each round. With --count 0 it runs until Enter is pressed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			palette := rainbow
			if len(args) > 0 {
				palette = a.resolveAll(args)
			}
			c, err := newCycler(palette, time.Now().UnixNano())
			if err != nil {
				return err
			}
			backend, bulbs, err := connect()
			if err != nil {
				return err
			}

			var stop <-chan struct{}
			if count == 0 {
				stop = log.StopOnInput(a.stdin)
			}
			return c.run(backend, bulbs, count, a.cfg.Lights.Pause, stop, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&count, "count", 0, "number of rounds, 0 to run until Enter is pressed")
	return cmd
}
