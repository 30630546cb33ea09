// Package pincfg reads pin tables written in YAML and turns them into
// port.Config values or generated Go source.
package pincfg

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
	"periph.io/x/conn/v3/gpio"

	"tivaport/port"
)

// File is the YAML document.
type File struct {
	// Package and Variable name the generated table.
	Package  string `yaml:"package"`
	Variable string `yaml:"variable"`

	// Defaults fills in fields left empty on individual pins.
	Defaults Pin `yaml:"defaults"`

	Pins []Pin `yaml:"pins"`
}

// Pin is one table entry. Name is the datasheet name, e.g. "PF1".
type Pin struct {
	Name            string `yaml:"name"`
	Mode            string `yaml:"mode"`             // gpio, analog, alt1..alt9
	Direction       string `yaml:"direction"`        // in, out
	DirectionChange string `yaml:"direction_change"` // fixed, mutable
	ModeChange      string `yaml:"mode_change"`      // fixed, mutable
	Level           string `yaml:"level"`            // low, high; outputs only
	Pull            string `yaml:"pull"`             // none, up, down, keep; inputs only
	Comment         string `yaml:"comment"`
}

var (
	ErrNoPins     = errors.New("pincfg: no pins")
	ErrBadPinName = errors.New("pincfg: bad pin name")
	ErrBadValue   = errors.New("pincfg: bad value")
	ErrDuplicate  = errors.New("pincfg: pin listed twice")
	ErrIdentifier = errors.New("pincfg: not a Go identifier")
)

// Load reads and parses a YAML pin table.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a YAML pin table. Unknown keys are errors.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, err
	}
	applyDefaults(&f)
	return &f, nil
}

func applyDefaults(f *File) {
	if f.Package == "" {
		f.Package = "boardcfg"
	}
	if f.Variable == "" {
		f.Variable = "PinConfiguration"
	}
	d := &f.Defaults
	fill(&d.Mode, "gpio")
	fill(&d.Direction, "in")
	fill(&d.DirectionChange, "fixed")
	fill(&d.ModeChange, "fixed")
	fill(&d.Level, "low")
	fill(&d.Pull, "none")

	for i := range f.Pins {
		p := &f.Pins[i]
		fill(&p.Mode, d.Mode)
		fill(&p.Direction, d.Direction)
		fill(&p.DirectionChange, d.DirectionChange)
		fill(&p.ModeChange, d.ModeChange)
		fill(&p.Level, d.Level)
		fill(&p.Pull, d.Pull)
	}
}

func fill(s *string, def string) {
	if *s == "" {
		*s = def
	}
}

// ParsePinName splits a datasheet pin name such as "PD7".
func ParsePinName(name string) (port.PortID, uint8, error) {
	if len(name) != 3 || (name[0] != 'P' && name[0] != 'p') {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadPinName, name)
	}
	p, ok := port.ParsePort(name[1:2])
	if !ok || name[2] < '0' || name[2] >= '0'+port.PinsPerPort {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadPinName, name)
	}
	return p, name[2] - '0', nil
}

func parseMutability(s string) (port.Mutability, bool) {
	switch strings.ToLower(s) {
	case "fixed":
		return port.Fixed, true
	case "mutable", "changeable":
		return port.Mutable, true
	}
	return 0, false
}

func parseLevel(s string) (gpio.Level, bool) {
	switch strings.ToLower(s) {
	case "low", "0":
		return gpio.Low, true
	case "high", "1":
		return gpio.High, true
	}
	return gpio.Low, false
}

func parsePull(s string) (gpio.Pull, bool) {
	switch strings.ToLower(s) {
	case "none", "float":
		return gpio.Float, true
	case "up":
		return gpio.PullUp, true
	case "down":
		return gpio.PullDown, true
	case "keep":
		return gpio.PullNoChange, true
	}
	return gpio.PullNoChange, false
}

// Descriptor converts one entry.
func (p *Pin) Descriptor() (port.PinDescriptor, error) {
	var d port.PinDescriptor
	var err error
	if d.Port, d.Pin, err = ParsePinName(p.Name); err != nil {
		return d, err
	}
	bad := func(field, val string) error {
		return fmt.Errorf("%w: %s %s %q", ErrBadValue, p.Name, field, val)
	}

	var ok bool
	if d.Mode, ok = port.ParseMode(p.Mode); !ok {
		return d, bad("mode", p.Mode)
	}
	if d.Direction, ok = port.ParseDirection(p.Direction); !ok {
		return d, bad("direction", p.Direction)
	}
	if d.DirectionChange, ok = parseMutability(p.DirectionChange); !ok {
		return d, bad("direction_change", p.DirectionChange)
	}
	if d.ModeChange, ok = parseMutability(p.ModeChange); !ok {
		return d, bad("mode_change", p.ModeChange)
	}
	if d.InitialLevel, ok = parseLevel(p.Level); !ok {
		return d, bad("level", p.Level)
	}
	if d.Pull, ok = parsePull(p.Pull); !ok {
		return d, bad("pull", p.Pull)
	}
	return d, nil
}

// Config converts the table, checking it the way Driver.Init will use it.
// Warnings describe entries that are legal but will be partly ignored.
func (f *File) Config() (*port.Config, []string, error) {
	if len(f.Pins) == 0 {
		return nil, nil, ErrNoPins
	}
	if !isIdent(f.Package) || !isIdent(f.Variable) {
		return nil, nil, fmt.Errorf("%w: %q, %q", ErrIdentifier, f.Package, f.Variable)
	}

	cfg := &port.Config{Pins: make([]port.PinDescriptor, 0, len(f.Pins))}
	var warnings []string
	seen := make(map[string]bool, len(f.Pins))
	for i := range f.Pins {
		p := &f.Pins[i]
		d, err := p.Descriptor()
		if err != nil {
			return nil, nil, err
		}
		name := d.Name()
		if seen[name] {
			return nil, nil, fmt.Errorf("%w: %s", ErrDuplicate, name)
		}
		seen[name] = true

		if port.IsReserved(d.Port, d.Pin) {
			warnings = append(warnings, name+": JTAG pin, left as reset configures it")
		}
		if d.Direction == port.Input && d.InitialLevel == gpio.High {
			warnings = append(warnings, name+": level ignored on an input")
		}
		if d.Direction == port.Output && (d.Pull == gpio.PullUp || d.Pull == gpio.PullDown) {
			warnings = append(warnings, name+": pull ignored on an output")
		}
		cfg.Pins = append(cfg.Pins, d)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, warnings, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		letter := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if !letter && (i == 0 || c < '0' || c > '9') {
			return false
		}
	}
	return true
}
