//go:build !tinygo

package port

import "unsafe"

// Register32 stands in for runtime/volatile.Register32 on regular Go, with
// the same method set. It is plain memory.
type Register32 struct {
	Reg uint32
}

// tracing is the Simulator whose stores are being traced, if any. Register32
// cannot reach its owner, so stores are routed through here.
var tracing *Simulator

func (r *Register32) Get() uint32 {
	return r.Reg
}

func (r *Register32) Set(value uint32) {
	r.Reg = value
	if tracing != nil {
		tracing.observe(r, value)
	}
}

func (r *Register32) SetBits(value uint32) {
	r.Set(r.Reg | value)
}

func (r *Register32) ClearBits(value uint32) {
	r.Set(r.Reg &^ value)
}

func (r *Register32) HasBits(value uint32) bool {
	return r.Reg&value != 0
}

func (r *Register32) ReplaceBits(value uint32, mask uint32, pos uint8) {
	r.Set(r.Reg&^(mask<<pos) | (value&mask)<<pos)
}

var hostRegisters = NewSimulator()

// Hardware returns the process-wide register file. Without real MMIO it is
// a shared Simulator.
func Hardware() Registers {
	return hostRegisters
}

// TraceWrites calls fn for every store to a register of s, in order, until
// the returned stop function runs. One Simulator is traced at a time.
func (s *Simulator) TraceWrites(fn func(r *Register32, value uint32)) (stop func()) {
	s.onWrite = fn
	tracing = s
	return func() {
		if tracing == s {
			tracing = nil
		}
		s.onWrite = nil
	}
}

func (s *Simulator) observe(r *Register32, value uint32) {
	if s.onWrite == nil {
		return
	}
	p := uintptr(unsafe.Pointer(r))
	lo := uintptr(unsafe.Pointer(s))
	if p >= lo && p < lo+unsafe.Sizeof(*s) {
		s.onWrite(r, value)
	}
}
