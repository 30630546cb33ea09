//go:build tinygo

package port

import (
	"runtime/volatile"
	"unsafe"
)

// Register32 is a memory-mapped 32-bit register.
type Register32 = volatile.Register32

type mmio struct{}

func (mmio) Bank(p PortID) *Bank {
	base := BaseAddress(p)
	if base == 0 {
		return nil
	}
	return (*Bank)(unsafe.Pointer(base))
}

func (mmio) SysCtl() *SysCtl {
	return (*SysCtl)(unsafe.Pointer(uintptr(SysCtlBase)))
}

// Hardware returns the memory-mapped register file.
func Hardware() Registers {
	return mmio{}
}
