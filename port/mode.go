package port

// altFunctionCode is the GPIOPCTL PMCx value selecting each alternate
// function (datasheet table 23-5 numbers the digital functions 1..15; the
// driver exposes 1..9).
var altFunctionCode = [...]uint32{
	ModeAlt1: 1,
	ModeAlt2: 2,
	ModeAlt3: 3,
	ModeAlt4: 4,
	ModeAlt5: 5,
	ModeAlt6: 6,
	ModeAlt7: 7,
	ModeAlt8: 8,
	ModeAlt9: 9,
}

// applyMode routes a pin. It does not check change permission.
func applyMode(b *Bank, pin uint8, mode Mode) {
	m := bit(pin)
	pos := pin * 4
	switch {
	case mode == ModeAnalog:
		b.AMSEL.SetBits(m)
		b.DEN.ClearBits(m)
		b.AFSEL.SetBits(m)
		b.PCTL.ReplaceBits(pctlAnalog, pctlMask, pos)
	case mode.IsAlternate():
		b.AMSEL.ClearBits(m)
		b.DEN.SetBits(m)
		b.AFSEL.SetBits(m)
		b.PCTL.ReplaceBits(altFunctionCode[mode], pctlMask, pos)
	case mode == ModeGPIO:
		b.AMSEL.ClearBits(m)
		b.DEN.SetBits(m)
		b.AFSEL.ClearBits(m)
		b.PCTL.ReplaceBits(0, pctlMask, pos)
	}
}

// readMode decodes the routing of a pin from its registers.
func readMode(b *Bank, pin uint8) (Mode, bool) {
	m := bit(pin)
	if b.AMSEL.HasBits(m) {
		return ModeAnalog, true
	}
	if !b.AFSEL.HasBits(m) {
		return ModeGPIO, true
	}
	code := (b.PCTL.Get() >> (pin * 4)) & pctlMask
	for mode := ModeAlt1; mode <= ModeAlt9; mode++ {
		if altFunctionCode[mode] == code {
			return mode, true
		}
	}
	return 0, false
}
