package port

import "periph.io/x/conn/v3/gpio"

// Options configures a Driver.
type Options struct {
	// Registers is the register file to program. Nil selects Hardware().
	Registers Registers

	// Reporter receives development errors. Nil selects DebugReporter.
	Reporter ErrorReporter

	// DevErrorDetect enables reporting. Checks guard the registers either
	// way; this only controls whether Reporter hears about them.
	DevErrorDetect bool
}

// DefaultOptions returns options for the on-chip register file with error
// reporting to the debug writer.
func DefaultOptions() Options {
	return Options{
		Registers:      Hardware(),
		Reporter:       DebugReporter{},
		DevErrorDetect: true,
	}
}

// Driver programs pins from a Config. A Driver starts uninitialized; Init
// may be called again to redrive every pin from a new table.
//
// Init and RefreshPortDirection are not reentrant. SetPinDirection and
// SetPinMode touch only their own pin's bits, but pins sharing a bank must
// not be changed concurrently.
type Driver struct {
	regs           Registers
	reporter       ErrorReporter
	devErrorDetect bool

	config      *Config
	initialized bool
}

// New returns an uninitialized Driver.
func New(opts Options) *Driver {
	if opts.Registers == nil {
		opts.Registers = Hardware()
	}
	if opts.Reporter == nil {
		opts.Reporter = DebugReporter{}
	}
	return &Driver{
		regs:           opts.Registers,
		reporter:       opts.Reporter,
		devErrorDetect: opts.DevErrorDetect,
	}
}

// Initialized reports whether Init has run.
func (d *Driver) Initialized() bool {
	return d.initialized
}

// Config returns the active table, or nil before Init.
func (d *Driver) Config() *Config {
	return d.config
}

// report forwards an error to the reporter and returns it.
func (d *Driver) report(service ServiceID, code ErrorCode) error {
	if d.devErrorDetect {
		d.reporter.ReportError(ModuleID, InstanceID, service, code)
	}
	return &Error{Service: service, Code: code}
}

// bank resolves the register block of a table entry.
func (d *Driver) bank(p *PinDescriptor) *Bank {
	if !p.valid() {
		return nil
	}
	return d.regs.Bank(p.Port)
}

// enableClock gates the bank's clock on and waits for it to settle.
func (d *Driver) enableClock(p PortID) {
	sc := d.regs.SysCtl()
	if sc.RCGC2.HasBits(bit(uint8(p))) {
		return
	}
	sc.RCGC2.SetBits(bit(uint8(p)))
	_ = sc.RCGC2.Get() // a few cycles before the bank may be accessed
}

// Init programs every pin of cfg, in table order. Reserved pins are
// skipped. Entries addressing a pin that does not exist, or naming an
// unknown mode, are reported and skipped; the first such error is
// returned after the rest of the table has been applied.
//
// A nil cfg is reported and leaves the driver unchanged.
func (d *Driver) Init(cfg *Config) error {
	if cfg == nil {
		return d.report(ServiceInit, CodeParamConfig)
	}

	var first error
	keep := func(err error) {
		if first == nil {
			first = err
		}
	}

	for i := range cfg.Pins {
		p := &cfg.Pins[i]
		b := d.bank(p)
		if b == nil {
			keep(d.report(ServiceInit, CodeParamInvalidPinID))
			continue
		}
		if IsReserved(p.Port, p.Pin) {
			continue
		}
		if !p.Mode.Valid() {
			keep(d.report(ServiceInit, CodeParamInvalidMode))
			continue
		}

		d.enableClock(p.Port)
		if RequiresUnlock(p.Port, p.Pin) {
			unlock(b, p.Pin)
		}

		applyMode(b, p.Pin, p.Mode)
		applyDirection(b, p.Pin, p.Direction)
		switch p.Direction {
		case Output:
			applyInitialLevel(b, p.Pin, p.InitialLevel)
		case Input:
			if p.Pull != gpio.PullNoChange {
				applyPull(b, p.Pin, p.Pull)
			}
		}
	}

	d.config = cfg
	d.initialized = true
	DebugPrintln("[PORT] initialized " + Utoa(uint32(len(cfg.Pins))) + " pins")
	return first
}

// lookup resolves a pin's descriptor and bank without reporting.
func (d *Driver) lookup(id PinID) (*PinDescriptor, *Bank, ErrorCode) {
	if !d.initialized {
		return nil, nil, CodeUninit
	}
	if int(id) >= len(d.config.Pins) {
		return nil, nil, CodeParamInvalidPinID
	}
	p := &d.config.Pins[id]
	if IsReserved(p.Port, p.Pin) {
		return nil, nil, CodeParamInvalidPinID
	}
	b := d.bank(p)
	if b == nil {
		return nil, nil, CodeParamInvalidPinID
	}
	return p, b, CodeOK
}

// target runs the checks shared by the per-pin operations and resolves the
// pin's descriptor and bank. Every failed check is a hard stop.
func (d *Driver) target(service ServiceID, id PinID) (*PinDescriptor, *Bank, error) {
	p, b, code := d.lookup(id)
	if code != CodeOK {
		return nil, nil, d.report(service, code)
	}
	return p, b, nil
}

// SetPinDirection changes the direction of a pin whose direction is
// Mutable. Only the pin's direction bit is written.
func (d *Driver) SetPinDirection(id PinID, dir Direction) error {
	p, b, err := d.target(ServiceSetPinDirection, id)
	if err != nil {
		return err
	}
	if p.DirectionChange != Mutable {
		return d.report(ServiceSetPinDirection, CodeDirectionUnchangeable)
	}
	applyDirection(b, p.Pin, dir)
	return nil
}

// SetPinMode changes the routing of a pin whose mode is Mutable. Direction,
// level and pull are left alone.
func (d *Driver) SetPinMode(id PinID, mode Mode) error {
	p, b, err := d.target(ServiceSetPinMode, id)
	if err != nil {
		return err
	}
	if !mode.Valid() {
		return d.report(ServiceSetPinMode, CodeParamInvalidMode)
	}
	if p.ModeChange != Mutable {
		return d.report(ServiceSetPinMode, CodeModeUnchangeable)
	}
	applyMode(b, p.Pin, mode)
	return nil
}

// RefreshPortDirection rewrites the configured direction of every Fixed
// pin. Mutable pins keep whatever direction they were last given.
func (d *Driver) RefreshPortDirection() error {
	if !d.initialized {
		return d.report(ServiceRefreshPortDirection, CodeUninit)
	}
	for i := range d.config.Pins {
		p := &d.config.Pins[i]
		if p.DirectionChange != Fixed || IsReserved(p.Port, p.Pin) {
			continue
		}
		if b := d.bank(p); b != nil {
			applyDirection(b, p.Pin, p.Direction)
		}
	}
	return nil
}

// PinState is the configuration read back from a pin's registers.
type PinState struct {
	Mode      Mode
	Direction Direction
	Level     gpio.Level
	Pull      gpio.Pull
}

// PinState reads back the current configuration of a pin.
func (d *Driver) PinState(id PinID) (PinState, error) {
	p, b, err := d.target(ServicePinState, id)
	if err != nil {
		return PinState{}, err
	}
	st, ok := readState(b, p.Pin)
	if !ok {
		return PinState{}, d.report(ServicePinState, CodeParamInvalidMode)
	}
	return st, nil
}

// peekState is PinState without error reporting.
func (d *Driver) peekState(id PinID) (PinState, bool) {
	p, b, code := d.lookup(id)
	if code != CodeOK {
		return PinState{}, false
	}
	return readState(b, p.Pin)
}

func readState(b *Bank, pin uint8) (PinState, bool) {
	mode, ok := readMode(b, pin)
	if !ok {
		return PinState{}, false
	}
	return PinState{
		Mode:      mode,
		Direction: readDirection(b, pin),
		Level:     readLevel(b, pin),
		Pull:      readPull(b, pin),
	}, true
}
