package port

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
)

// Functions a pin can be routed to.
const (
	FuncAnalog pin.Func = "ANALOG"
	FuncGPIO   pin.Func = "GPIO"
)

var altFuncs = [...]pin.Func{
	ModeAlt1: "ALT1",
	ModeAlt2: "ALT2",
	ModeAlt3: "ALT3",
	ModeAlt4: "ALT4",
	ModeAlt5: "ALT5",
	ModeAlt6: "ALT6",
	ModeAlt7: "ALT7",
	ModeAlt8: "ALT8",
	ModeAlt9: "ALT9",
}

// Func returns the periph function name of m.
func (m Mode) Func() pin.Func {
	switch {
	case m == ModeAnalog:
		return FuncAnalog
	case m == ModeGPIO:
		return FuncGPIO
	case m.IsAlternate():
		return altFuncs[m]
	}
	return pin.FuncNone
}

// ModeOf maps a function name back to a Mode.
func ModeOf(f pin.Func) (Mode, bool) {
	return ParseMode(string(f))
}

// Pin is a handle to one configured pin. It implements pin.Pin and
// pin.PinFunc so periph-style consumers can inspect and reroute it.
type Pin struct {
	d  *Driver
	id PinID
}

var (
	_ pin.Pin     = &Pin{}
	_ pin.PinFunc = &Pin{}
)

// Pin returns a handle to the table entry id. The handle is checked on use,
// not on creation.
func (d *Driver) Pin(id PinID) *Pin {
	return &Pin{d: d, id: id}
}

// String implements conn.Resource.
func (p *Pin) String() string {
	return p.Name()
}

// Halt implements conn.Resource. It has no effect.
func (p *Pin) Halt() error {
	return nil
}

// Name implements pin.Pin.
func (p *Pin) Name() string {
	if p.d.config != nil && int(p.id) < len(p.d.config.Pins) {
		return p.d.config.Pins[p.id].Name()
	}
	return "PIN" + Utoa(uint32(p.id))
}

// Number implements pin.Pin. It is the table index.
func (p *Pin) Number() int {
	return int(p.id)
}

// Function implements pin.Pin.
func (p *Pin) Function() string {
	return string(p.Func())
}

// Func implements pin.PinFunc.
func (p *Pin) Func() pin.Func {
	st, ok := p.d.peekState(p.id)
	if !ok {
		return pin.FuncNone
	}
	return st.Mode.Func()
}

// SupportedFuncs implements pin.PinFunc.
func (p *Pin) SupportedFuncs() []pin.Func {
	funcs := make([]pin.Func, 0, ModeGPIO+1)
	for m := ModeAnalog; m <= ModeGPIO; m++ {
		funcs = append(funcs, m.Func())
	}
	return funcs
}

// SetFunc implements pin.PinFunc by calling SetPinMode.
func (p *Pin) SetFunc(f pin.Func) error {
	mode, ok := ModeOf(f)
	if !ok {
		return p.d.report(ServiceSetPinMode, CodeParamInvalidMode)
	}
	return p.d.SetPinMode(p.id, mode)
}

// Read returns the level held in the pin's data register.
func (p *Pin) Read() gpio.Level {
	st, ok := p.d.peekState(p.id)
	if !ok {
		return gpio.Low
	}
	return st.Level
}
