package port

import (
	"errors"
	"strings"

	"periph.io/x/conn/v3/gpio"
)

// PortID identifies a GPIO register bank.
type PortID uint8

const (
	PortA PortID = iota
	PortB
	PortC
	PortD
	PortE
	PortF
)

const (
	NumPorts    = 6 // GPIO banks on the TM4C123GH6PM
	PinsPerPort = 8 // pins governed by one bank
)

func (p PortID) String() string {
	if p >= NumPorts {
		return "?"
	}
	return string(rune('A' + p))
}

// ParsePort accepts a bank letter ("A".."F", any case).
func ParsePort(s string) (PortID, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := s[0] | 0x20 // lower case
	if c < 'a' || c >= 'a'+NumPorts {
		return 0, false
	}
	return PortID(c - 'a'), true
}

// PinID indexes a pin in the active configuration table.
type PinID uint8

// Direction of a pin.
type Direction uint8

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	switch d {
	case Input:
		return "in"
	case Output:
		return "out"
	default:
		return "unknown"
	}
}

// ParseDirection accepts "in", "input", "out" or "output".
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "in", "input":
		return Input, true
	case "out", "output":
		return Output, true
	}
	return 0, false
}

// Mutability says whether an attribute may change after Init.
type Mutability uint8

const (
	Fixed Mutability = iota
	Mutable
)

func (m Mutability) String() string {
	if m == Mutable {
		return "mutable"
	}
	return "fixed"
}

// Mode selects how a pin is routed.
//
// The numeric values are shared with the command link, so they must not be
// reordered.
type Mode uint8

const (
	ModeAnalog Mode = iota
	ModeAlt1
	ModeAlt2
	ModeAlt3
	ModeAlt4
	ModeAlt5
	ModeAlt6
	ModeAlt7
	ModeAlt8
	ModeAlt9
	ModeGPIO
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m <= ModeGPIO
}

// IsAlternate reports whether m is one of ModeAlt1..ModeAlt9.
func (m Mode) IsAlternate() bool {
	return m >= ModeAlt1 && m <= ModeAlt9
}

func (m Mode) String() string {
	switch {
	case m == ModeAnalog:
		return "analog"
	case m == ModeGPIO:
		return "gpio"
	case m.IsAlternate():
		return "alt" + string(rune('0'+m))
	default:
		return "invalid"
	}
}

// ParseMode accepts the names produced by Mode.String, plus "adc".
func ParseMode(s string) (Mode, bool) {
	s = strings.ToLower(s)
	switch s {
	case "analog", "adc":
		return ModeAnalog, true
	case "gpio":
		return ModeGPIO, true
	}
	if len(s) == 4 && strings.HasPrefix(s, "alt") && s[3] >= '1' && s[3] <= '9' {
		return Mode(s[3] - '0'), true
	}
	return 0, false
}

// PinDescriptor is one entry of the configuration table.
type PinDescriptor struct {
	Port PortID
	Pin  uint8 // bit position within the bank

	Direction       Direction
	DirectionChange Mutability

	Mode       Mode
	ModeChange Mutability

	InitialLevel gpio.Level // Output pins only
	Pull         gpio.Pull  // Input pins only; PullNoChange leaves the resistors alone
}

// Name returns the datasheet name of the pin, e.g. "PD7".
func (d *PinDescriptor) Name() string {
	return "P" + d.Port.String() + string(rune('0'+d.Pin%10))
}

func (d *PinDescriptor) valid() bool {
	return d.Port < NumPorts && d.Pin < PinsPerPort
}

// Config is the pin configuration table consumed by Driver.Init.
type Config struct {
	Pins []PinDescriptor
}

var (
	ErrPinOutOfRange = errors.New("port: pin out of range")
	ErrDuplicatePin  = errors.New("port: pin configured twice")
	ErrInvalidEntry  = errors.New("port: invalid table entry")
)

func validPull(p gpio.Pull) bool {
	switch p {
	case gpio.PullNoChange, gpio.Float, gpio.PullDown, gpio.PullUp:
		return true
	}
	return false
}

// Validate checks that every entry addresses an existing pin exactly once
// and uses known enumeration values.
func (c *Config) Validate() error {
	var seen [NumPorts]uint8
	for i := range c.Pins {
		p := &c.Pins[i]
		if !p.valid() {
			return errors.Join(ErrPinOutOfRange, errors.New("entry "+Utoa(uint32(i))))
		}
		if seen[p.Port]&(1<<p.Pin) != 0 {
			return errors.Join(ErrDuplicatePin, errors.New(p.Name()))
		}
		seen[p.Port] |= 1 << p.Pin
		if !p.Mode.Valid() || p.Direction > Output || p.DirectionChange > Mutable || p.ModeChange > Mutable || !validPull(p.Pull) {
			return errors.Join(ErrInvalidEntry, errors.New(p.Name()))
		}
	}
	return nil
}
