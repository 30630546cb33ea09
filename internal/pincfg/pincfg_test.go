package pincfg

import (
	"bytes"
	"errors"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"testing"

	"periph.io/x/conn/v3/gpio"

	"tivaport/port"
)

const sample = `
package: board
variable: Pins
defaults:
  pull: down
pins:
  - name: PF1
    direction: out
    level: high
    pull: none
    mode_change: mutable
    comment: red LED
  - name: PE3
    mode: analog
    pull: none
  - name: PC1
  - name: PB2
    direction: out
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg, warnings, err := f.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}

	want := []port.PinDescriptor{
		{Port: port.PortF, Pin: 1, Direction: port.Output, Mode: port.ModeGPIO, ModeChange: port.Mutable, InitialLevel: gpio.High, Pull: gpio.Float},
		{Port: port.PortE, Pin: 3, Direction: port.Input, Mode: port.ModeAnalog, Pull: gpio.Float},
		{Port: port.PortC, Pin: 1, Direction: port.Input, Mode: port.ModeGPIO, Pull: gpio.PullDown},
		{Port: port.PortB, Pin: 2, Direction: port.Output, Mode: port.ModeGPIO, Pull: gpio.PullDown},
	}
	if len(cfg.Pins) != len(want) {
		t.Fatalf("got %d pins, want %d", len(cfg.Pins), len(want))
	}
	for i := range want {
		if cfg.Pins[i] != want[i] {
			t.Errorf("pin %d = %+v, want %+v", i, cfg.Pins[i], want[i])
		}
	}

	if len(warnings) != 2 {
		t.Fatalf("warnings = %q, want two", warnings)
	}
	if !strings.HasPrefix(warnings[0], "PC1:") || !strings.HasPrefix(warnings[1], "PB2:") {
		t.Errorf("warnings = %q", warnings)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"bad name", "pins:\n  - name: PG1\n", ErrBadPinName},
		{"bad bit", "pins:\n  - name: PA8\n", ErrBadPinName},
		{"bad mode", "pins:\n  - name: PA2\n    mode: alt12\n", ErrBadValue},
		{"bad pull", "pins:\n  - name: PA2\n    pull: sideways\n", ErrBadValue},
		{"duplicate", "pins:\n  - name: PA2\n  - name: pa2\n", ErrDuplicate},
		{"no pins", "package: board\n", ErrNoPins},
		{"bad package", "package: 9lives\npins:\n  - name: PA2\n", ErrIdentifier},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if _, _, err := f.Config(); !errors.Is(err, tt.want) {
				t.Errorf("Config() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseUnknownKey(t *testing.T) {
	if _, err := Parse([]byte("pins:\n  - name: PA2\n    drive: 8ma\n")); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestGenerate(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var buf bytes.Buffer
	if err := Generate(&buf, f, "sample.yaml"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	src := buf.String()

	if _, err := parser.ParseFile(token.NewFileSet(), "pins.go", src, 0); err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
	for _, want := range []string{
		"// Code generated by portgen from sample.yaml. DO NOT EDIT.",
		"package board",
		"const ConfiguredPins = 4",
		"PE3 port.PinID = 1",
		"var Pins = &port.Config{",
		"// PF1: red LED",
		"{Port: port.PortE, Pin: 3, Direction: port.Input, DirectionChange: port.Fixed, Mode: port.ModeAnalog, ModeChange: port.Fixed, InitialLevel: gpio.Low, Pull: gpio.Float},",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source lacks %q", want)
		}
	}
}

func TestLaunchPadUpToDate(t *testing.T) {
	f, err := Load("../../boardcfg/launchpad.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var buf bytes.Buffer
	if err := Generate(&buf, f, "launchpad.yaml"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	have, err := os.ReadFile("../../boardcfg/launchpad_cfg.go")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), have) {
		t.Error("boardcfg/launchpad_cfg.go is stale; run go generate ./boardcfg")
	}
}
