package port

import "periph.io/x/conn/v3/gpio"

func applyDirection(b *Bank, pin uint8, dir Direction) {
	switch dir {
	case Output:
		b.DIR.SetBits(bit(pin))
	case Input:
		b.DIR.ClearBits(bit(pin))
	}
}

// applyInitialLevel drives the output latch. Only meaningful for outputs.
func applyInitialLevel(b *Bank, pin uint8, level gpio.Level) {
	if level == gpio.High {
		b.DATA.SetBits(bit(pin))
	} else {
		b.DATA.ClearBits(bit(pin))
	}
}

// applyPull selects the internal resistor. Only meaningful for inputs.
func applyPull(b *Bank, pin uint8, pull gpio.Pull) {
	m := bit(pin)
	switch pull {
	case gpio.PullUp:
		b.PUR.SetBits(m)
		b.PDR.ClearBits(m)
	case gpio.PullDown:
		b.PDR.SetBits(m)
		b.PUR.ClearBits(m)
	case gpio.Float:
		b.PUR.ClearBits(m)
		b.PDR.ClearBits(m)
	}
}

func readDirection(b *Bank, pin uint8) Direction {
	if b.DIR.HasBits(bit(pin)) {
		return Output
	}
	return Input
}

func readPull(b *Bank, pin uint8) gpio.Pull {
	switch {
	case b.PUR.HasBits(bit(pin)):
		return gpio.PullUp
	case b.PDR.HasBits(bit(pin)):
		return gpio.PullDown
	}
	return gpio.Float
}

func readLevel(b *Bank, pin uint8) gpio.Level {
	return gpio.Level(b.DATA.HasBits(bit(pin)))
}
