package port

// RequiresUnlock reports whether the pin is commit-protected and needs the
// GPIOLOCK/GPIOCR sequence before its control bits can be written.
func RequiresUnlock(p PortID, pin uint8) bool {
	return (p == PortD && pin == 7) || (p == PortF && pin == 0)
}

// IsReserved reports whether the pin belongs to the JTAG/SWD interface.
// Reserved pins are left exactly as reset left them.
func IsReserved(p PortID, pin uint8) bool {
	return p == PortC && pin <= 3
}

// unlock opens the commit register and enables commits for one pin.
func unlock(b *Bank, pin uint8) {
	b.LOCK.Set(unlockKey)
	b.CR.SetBits(bit(pin))
}
