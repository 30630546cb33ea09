package port

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"analog", ModeAnalog, true},
		{"ADC", ModeAnalog, true},
		{"gpio", ModeGPIO, true},
		{"alt1", ModeAlt1, true},
		{"ALT9", ModeAlt9, true},
		{"alt0", 0, false},
		{"alt10", 0, false},
		{"uart", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseMode(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestModeString(t *testing.T) {
	for m := ModeAnalog; m <= ModeGPIO; m++ {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if s := Mode(42).String(); s != "invalid" {
		t.Errorf("Mode(42).String() = %q", s)
	}
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		in   string
		want PortID
		ok   bool
	}{
		{"A", PortA, true},
		{"f", PortF, true},
		{"G", 0, false},
		{"AB", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePort(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParsePort(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPinDescriptorName(t *testing.T) {
	p := PinDescriptor{Port: PortD, Pin: 7}
	if got := p.Name(); got != "PD7" {
		t.Errorf("Name() = %q, want PD7", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		pins []PinDescriptor
		want error
	}{
		{"empty", nil, nil},
		{"valid", []PinDescriptor{
			{Port: PortA, Pin: 0, Mode: ModeAlt1},
			{Port: PortF, Pin: 7, Mode: ModeGPIO, Direction: Output},
		}, nil},
		{"every pull", []PinDescriptor{
			{Port: PortB, Pin: 2, Mode: ModeGPIO, Pull: gpio.PullNoChange},
			{Port: PortB, Pin: 3, Mode: ModeGPIO, Pull: gpio.Float},
			{Port: PortB, Pin: 4, Mode: ModeGPIO, Pull: gpio.PullDown},
			{Port: PortB, Pin: 5, Mode: ModeGPIO, Pull: gpio.PullUp},
		}, nil},
		{"pin out of range", []PinDescriptor{{Port: PortA, Pin: 8}}, ErrPinOutOfRange},
		{"port out of range", []PinDescriptor{{Port: PortID(6), Pin: 0}}, ErrPinOutOfRange},
		{"duplicate", []PinDescriptor{
			{Port: PortB, Pin: 2, Mode: ModeGPIO},
			{Port: PortB, Pin: 2, Mode: ModeAnalog},
		}, ErrDuplicatePin},
		{"bad mode", []PinDescriptor{{Port: PortB, Pin: 2, Mode: Mode(11)}}, ErrInvalidEntry},
		{"bad pull", []PinDescriptor{{Port: PortB, Pin: 2, Pull: gpio.Pull(9)}}, ErrInvalidEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Pins: tt.pins}
			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
