package pincfg

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"

	"periph.io/x/conn/v3/gpio"

	"tivaport/port"
)

var tableTemplate = template.Must(template.New("table").Parse(`// Code generated by portgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
	"periph.io/x/conn/v3/gpio"

	"tivaport/port"
)

// ConfiguredPins is the number of entries in {{.Variable}}.
const ConfiguredPins = {{len .Rows}}

// Indices into {{.Variable}}, for SetPinDirection and SetPinMode.
const (
{{- range .Rows}}
	{{.Name}} port.PinID = {{.Index}}
{{- end}}
)

// {{.Variable}} is the pin table applied by port.Driver.Init.
var {{.Variable}} = &port.Config{Pins: []port.PinDescriptor{
{{- range .Rows}}
{{- if .Comment}}
	// {{.Name}}: {{.Comment}}
{{- end}}
	{Port: {{.Port}}, Pin: {{.Pin}}, Direction: {{.Direction}}, DirectionChange: {{.DirectionChange}}, Mode: {{.Mode}}, ModeChange: {{.ModeChange}}, InitialLevel: {{.Level}}, Pull: {{.Pull}}},
{{- end}}
}}
`))

type row struct {
	Index   int
	Name    string
	Comment string

	Port, Pin                  string
	Direction, DirectionChange string
	Mode, ModeChange           string
	Level, Pull                string
}

// Generate writes Go source declaring the table as a *port.Config. source
// names the input in the generated header.
func Generate(w io.Writer, f *File, source string) error {
	cfg, _, err := f.Config()
	if err != nil {
		return err
	}

	data := struct {
		Source, Package, Variable string
		Rows                      []row
	}{Source: source, Package: f.Package, Variable: f.Variable}

	for i, d := range cfg.Pins {
		data.Rows = append(data.Rows, row{
			Index:           i,
			Name:            d.Name(),
			Comment:         strings.Join(strings.Fields(f.Pins[i].Comment), " "),
			Port:            "port.Port" + d.Port.String(),
			Pin:             fmt.Sprint(d.Pin),
			Direction:       goDirection(d.Direction),
			DirectionChange: goMutability(d.DirectionChange),
			Mode:            goMode(d.Mode),
			ModeChange:      goMutability(d.ModeChange),
			Level:           goLevel(d.InitialLevel),
			Pull:            goPull(d.Pull),
		})
	}

	var buf bytes.Buffer
	if err := tableTemplate.Execute(&buf, data); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func goDirection(d port.Direction) string {
	if d == port.Output {
		return "port.Output"
	}
	return "port.Input"
}

func goMutability(m port.Mutability) string {
	if m == port.Mutable {
		return "port.Mutable"
	}
	return "port.Fixed"
}

func goMode(m port.Mode) string {
	switch {
	case m == port.ModeAnalog:
		return "port.ModeAnalog"
	case m == port.ModeGPIO:
		return "port.ModeGPIO"
	}
	return fmt.Sprintf("port.ModeAlt%d", m)
}

func goLevel(l gpio.Level) string {
	if l == gpio.High {
		return "gpio.High"
	}
	return "gpio.Low"
}

func goPull(p gpio.Pull) string {
	switch p {
	case gpio.PullUp:
		return "gpio.PullUp"
	case gpio.PullDown:
		return "gpio.PullDown"
	case gpio.PullNoChange:
		return "gpio.PullNoChange"
	}
	return "gpio.Float"
}
