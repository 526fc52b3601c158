package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/unixpickle/cbyge"

	"github.com/kungfukennyg/colour/colour"
	"github.com/kungfukennyg/colour/colourctl/log"
)

const CyncUser = "CYNC_USER"
const CyncPass = "CYNC_PASS"
const CyncSession = "CYNC_SESSION"

type ErrUnknownDevice struct {
	name string
}

func (e *ErrUnknownDevice) Error() string {
	return fmt.Sprintf("unrecognized device %s", e.name)
}

type bulb struct {
	ID   string
	Name string
	dev  *cbyge.ControllerDevice
}

type lightBackend interface {
	Bulbs() ([]bulb, error)
	SetRGB(b bulb, t colour.Triple) error
	SetStatus(b bulb, on bool) error
}

type cyncBackend struct {
	wrapped *cbyge.Controller
}

func (c *cyncBackend) Bulbs() ([]bulb, error) {
	devices, err := c.wrapped.Devices()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}
	bulbs := make([]bulb, 0, len(devices))
	for _, d := range devices {
		if d == nil {
			continue
		}
		bulbs = append(bulbs, bulb{ID: d.DeviceID(), Name: d.Name(), dev: d})
	}
	return bulbs, nil
}

func (c *cyncBackend) SetRGB(b bulb, t colour.Triple) error {
	if !t.Valid() {
		return errors.Wrapf(colour.ErrInvalidTriple, "[%s] for %s", t, b.Name)
	}
	return c.wrapped.SetDeviceRGB(b.dev, uint8(t[0]), uint8(t[1]), uint8(t[2]))
}

func (c *cyncBackend) SetStatus(b bulb, on bool) error {
	return c.wrapped.SetDeviceStatus(b.dev, on)
}

// connectCync logs in with a cached session from CYNC_SESSION when present,
// otherwise with CYNC_USER and CYNC_PASS and a 2FA code read from stdin.
func connectCync(a *app) (lightBackend, error) {
	if cached := os.Getenv(CyncSession); cached != "" {
		sessionInfo := cbyge.SessionInfo{}
		if err := json.Unmarshal([]byte(cached), &sessionInfo); err != nil {
			return nil, errors.Wrapf(err, "couldn't unmarshal cached session from %s", CyncSession)
		}
		log.Debug("lights", "logging in with cached session")
		return &cyncBackend{wrapped: cbyge.NewController(&sessionInfo, a.cfg.Lights.Timeout)}, nil
	}

	user, pass := os.Getenv(CyncUser), os.Getenv(CyncPass)
	if user == "" || pass == "" {
		return nil, errors.Errorf("set %s and %s, or %s", CyncUser, CyncPass, CyncSession)
	}
	log.Debug("lights", "logging in with user %v and pass <redacted>, len: %d", user, len(pass))
	controller, err := mfaLogin(a, user, pass)
	if err != nil {
		return nil, err
	}
	return &cyncBackend{wrapped: controller}, nil
}

func mfaLogin(a *app, email, password string) (*cbyge.Controller, error) {
	callback, err := cbyge.Login2FA(email, password, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to login 2fa")
	}

	mfaCode, err := scanInput(a.stdin, a.stderr, "enter 2FA code")
	if err != nil {
		return nil, err
	}

	sessionInfo, err := callback(mfaCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session info from login callback")
	}

	parsed, err := json.Marshal(sessionInfo)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session info to json")
	}
	log.Info("lights", "store session info in env variable '%s' for faster login: %s", CyncSession, string(parsed))

	return cbyge.NewController(sessionInfo, a.cfg.Lights.Timeout), nil
}

func scanInput(in io.Reader, prompt io.Writer, msg string) (string, error) {
	fmt.Fprintf(prompt, "%s: ", msg)
	input := bufio.NewScanner(in)
	if !input.Scan() {
		if err := input.Err(); err != nil {
			return "", errors.Wrap(err, "failed to read input")
		}
		return "", errors.New("no input")
	}
	return strings.TrimSpace(input.Text()), nil
}

// selectBulbs returns every bulb, or the ones named (by name or id,
// ignoring case) in filter.
func selectBulbs(backend lightBackend, filter []string) ([]bulb, error) {
	bulbs, err := backend.Bulbs()
	if err != nil {
		return nil, err
	}
	if len(filter) == 0 {
		return bulbs, nil
	}

	var out []bulb
	for _, want := range filter {
		found := false
		for _, b := range bulbs {
			if strings.EqualFold(b.Name, want) || strings.EqualFold(b.ID, want) {
				out = append(out, b)
				found = true
			}
		}
		if !found {
			return nil, &ErrUnknownDevice{name: want}
		}
	}
	return out, nil
}

// fadeSteps returns the colours a transition passes through, ending exactly
// on to.
func fadeSteps(from, to string, steps int) ([]colour.Triple, error) {
	if steps < 1 {
		return nil, errors.Errorf("steps must be at least 1, got %d", steps)
	}
	out := make([]colour.Triple, 0, steps)
	for i := 1; i <= steps; i++ {
		text, err := colour.Mix(from, to, float64(i)/float64(steps))
		if err != nil {
			return nil, err
		}
		t, err := colour.Parse(text)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func newLightsCmd(a *app) *cobra.Command {
	var devices []string

	cmd := &cobra.Command{
		Use:   "lights",
		Short: "Send colours to Cync smart bulbs",
	}
	cmd.PersistentFlags().StringSliceVarP(&devices, "device", "d", nil, "limit to these device names or ids (default all)")

	connect := func() (lightBackend, []bulb, error) {
		backend, err := a.connect(a)
		if err != nil {
			return nil, nil, err
		}
		bulbs, err := selectBulbs(backend, devices)
		if err != nil {
			return nil, nil, err
		}
		return backend, bulbs, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "devices",
		Short: "List devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, bulbs, err := connect()
			if err != nil {
				return err
			}
			for _, b := range bulbs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", b.ID, b.Name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <colour>",
		Short: "Set devices to a colour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := colour.Parse(a.cfg.Resolve(args[0]))
			if err != nil {
				return err
			}
			backend, bulbs, err := connect()
			if err != nil {
				return err
			}
			for _, b := range bulbs {
				if err := backend.SetRGB(b, t); err != nil {
					return errors.Wrapf(err, "failed to set %s", b.Name)
				}
				log.Debug("lights", "set %s to [%s]", b.Name, t)
			}
			return a.print(cmd, t)
		},
	})

	for _, on := range []bool{true, false} {
		cmd.AddCommand(newStatusCmd(connect, on))
	}

	var steps int
	fade := &cobra.Command{
		Use:   "fade <from> <to>",
		Short: "Fade devices from one colour to another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps == 0 {
				steps = a.cfg.Lights.Steps
			}
			path, err := fadeSteps(a.cfg.Resolve(args[0]), a.cfg.Resolve(args[1]), steps)
			if err != nil {
				return err
			}
			backend, bulbs, err := connect()
			if err != nil {
				return err
			}

			writer := log.New(cmd.OutOrStdout())
			for i, t := range path {
				for _, b := range bulbs {
					if err := backend.SetRGB(b, t); err != nil {
						return errors.Wrapf(err, "failed to set %s", b.Name)
					}
				}
				log.FPrintln(writer, log.OutputColor, fmt.Sprintf("step %d/%d %s", i+1, len(path), tripleString(t)))
				if i < len(path)-1 {
					time.Sleep(a.cfg.Lights.Pause)
				}
			}
			return nil
		},
	}
	fade.Flags().IntVar(&steps, "steps", 0, "number of steps (default from config)")
	cmd.AddCommand(fade)

	cmd.AddCommand(newCycleCmd(a, connect))
	return cmd
}

func newStatusCmd(connect func() (lightBackend, []bulb, error), on bool) *cobra.Command {
	use := "off"
	if on {
		use = "on"
	}
	return &cobra.Command{
		Use:   use,
		Short: "Turn devices " + use,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, bulbs, err := connect()
			if err != nil {
				return err
			}
			for _, b := range bulbs {
				if err := backend.SetStatus(b, on); err != nil {
					return errors.Wrapf(err, "failed to turn %s %s", b.Name, use)
				}
			}
			return nil
		},
	}
}
