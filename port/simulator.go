package port

// Simulator is an in-memory register file with the hardware reset state
// of the TM4C123GH6PM GPIO banks.
type Simulator struct {
	banks  [NumPorts]Bank
	sysctl SysCtl

	onWrite func(r *Register32, value uint32)
}

// NewSimulator returns a Simulator in its reset state.
func NewSimulator() *Simulator {
	s := &Simulator{}
	s.Reset()
	return s
}

// Reset restores the reset values. Only the JTAG pins PC0..PC3 come out of
// reset with a non-zero configuration.
func (s *Simulator) Reset() {
	*s = Simulator{onWrite: s.onWrite}
	for p := range s.banks {
		s.banks[p].LOCK.Reg = 1 // locked
		s.banks[p].CR.Reg = 0xFF
	}
	s.banks[PortD].CR.Reg = 0x7F // PD7 commit-protected
	s.banks[PortF].CR.Reg = 0xFE // PF0 commit-protected

	c := &s.banks[PortC]
	c.AFSEL.Reg = 0x0F
	c.DEN.Reg = 0x0F
	c.PUR.Reg = 0x0F
	c.PCTL.Reg = 0x00001111
	c.CR.Reg = 0xF0
}

func (s *Simulator) Bank(p PortID) *Bank {
	if p >= NumPorts {
		return nil
	}
	return &s.banks[p]
}

func (s *Simulator) SysCtl() *SysCtl {
	return &s.sysctl
}
