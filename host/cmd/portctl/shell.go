package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"tivaport/internal/pincfg"
	"tivaport/port"
)

// board is the part of *mcu.MCU the shell drives.
type board interface {
	SetPinDirection(id port.PinID, dir port.Direction) error
	SetPinMode(id port.PinID, mode port.Mode) error
	RefreshPortDirection() error
	VersionInfo() (port.VersionInfo, error)
	PinState(id port.PinID) (port.PinState, error)
	Config() (*port.Config, error)
	Dictionary() (string, error)
}

var errUsage = errors.New("usage")

type command struct {
	name  string
	args  string
	help  string
	nargs int
	run   func(s *shell, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"help", "", "show this help", 0, (*shell).help},
		{"version", "", "driver identity", 0, (*shell).version},
		{"list", "", "configured pins and their current state", 0, (*shell).list},
		{"get", "PIN", "current state of one pin", 1, (*shell).get},
		{"dir", "PIN in|out", "change a mutable pin's direction", 2, (*shell).dir},
		{"mode", "PIN MODE", "route a mutable pin: gpio, analog, alt1..alt9", 2, (*shell).mode},
		{"refresh", "", "restore the direction of fixed pins", 0, (*shell).refresh},
		{"dict", "", "print the firmware's message table", 0, (*shell).dict},
	}
}

type shell struct {
	b   board
	out io.Writer
	cfg *port.Config // fetched on first use
}

func newShell(b board, out io.Writer) *shell {
	return &shell{b: b, out: out}
}

// line runs one line of input and reports whether the user asked to quit.
func (s *shell) line(text string) bool {
	args, err := shlex.Split(text)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return false
	}
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "quit", "exit", "q":
		return true
	}
	if err := s.exec(args); err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
	return false
}

func (s *shell) exec(args []string) error {
	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		if len(args)-1 != c.nargs {
			return fmt.Errorf("%w: %s %s", errUsage, c.name, c.args)
		}
		return c.run(s, args[1:])
	}
	return fmt.Errorf("unknown command %q (try help)", args[0])
}

func (s *shell) config() (*port.Config, error) {
	if s.cfg == nil {
		cfg, err := s.b.Config()
		if err != nil {
			return nil, err
		}
		s.cfg = cfg
	}
	return s.cfg, nil
}

// pin accepts a table index or a pin name such as PF1.
func (s *shell) pin(arg string) (port.PinID, error) {
	if n, err := strconv.ParseUint(arg, 10, 8); err == nil {
		return port.PinID(n), nil
	}
	p, bit, err := pincfg.ParsePinName(arg)
	if err != nil {
		return 0, err
	}
	cfg, err := s.config()
	if err != nil {
		return 0, err
	}
	for i, d := range cfg.Pins {
		if d.Port == p && d.Pin == bit {
			return port.PinID(i), nil
		}
	}
	return 0, fmt.Errorf("%s is not in the pin table", strings.ToUpper(arg))
}

func (s *shell) help([]string) error {
	for _, c := range commands {
		fmt.Fprintf(s.out, "  %-8s %-12s %s\n", c.name, c.args, c.help)
	}
	fmt.Fprintf(s.out, "  %-8s %-12s %s\n", "quit", "", "leave")
	return nil
}

func (s *shell) version([]string) error {
	v, err := s.b.VersionInfo()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "vendor %d module %d version %d.%d.%d\n",
		v.VendorID, v.ModuleID, v.SWMajorVersion, v.SWMinorVersion, v.SWPatchVersion)
	return nil
}

func (s *shell) list([]string) error {
	cfg, err := s.config()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%3s %-4s %-7s %-7s %-5s %-8s %s\n", "id", "pin", "mode", "dir", "level", "pull", "changes")
	for i, d := range cfg.Pins {
		id := port.PinID(i)
		if port.IsReserved(d.Port, d.Pin) {
			fmt.Fprintf(s.out, "%3d %-4s reserved\n", id, d.Name())
			continue
		}
		st, err := s.b.PinState(id)
		if err != nil {
			fmt.Fprintf(s.out, "%3d %-4s %v\n", id, d.Name(), err)
			continue
		}
		fmt.Fprintf(s.out, "%3d %-4s %-7s %-7s %-5s %-8s %s\n", id, d.Name(),
			st.Mode, st.Direction, st.Level, st.Pull, changes(d))
	}
	return nil
}

func changes(d port.PinDescriptor) string {
	var c []string
	if d.DirectionChange == port.Mutable {
		c = append(c, "dir")
	}
	if d.ModeChange == port.Mutable {
		c = append(c, "mode")
	}
	if len(c) == 0 {
		return "-"
	}
	return strings.Join(c, ",")
}

func (s *shell) get(args []string) error {
	id, err := s.pin(args[0])
	if err != nil {
		return err
	}
	st, err := s.b.PinState(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "mode %s dir %s level %s pull %s\n", st.Mode, st.Direction, st.Level, st.Pull)
	return nil
}

func (s *shell) dir(args []string) error {
	id, err := s.pin(args[0])
	if err != nil {
		return err
	}
	dir, ok := port.ParseDirection(args[1])
	if !ok {
		return fmt.Errorf("bad direction %q", args[1])
	}
	return s.b.SetPinDirection(id, dir)
}

func (s *shell) mode(args []string) error {
	id, err := s.pin(args[0])
	if err != nil {
		return err
	}
	mode, ok := port.ParseMode(args[1])
	if !ok {
		return fmt.Errorf("bad mode %q", args[1])
	}
	return s.b.SetPinMode(id, mode)
}

func (s *shell) refresh([]string) error {
	return s.b.RefreshPortDirection()
}

func (s *shell) dict([]string) error {
	d, err := s.b.Dictionary()
	if err != nil {
		return err
	}
	_, err = io.WriteString(s.out, d)
	return err
}
