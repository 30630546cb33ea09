//go:build tinygo && tm4c123

package main

import (
	"unsafe"

	"tivaport/port"
)

const (
	uart0Base = 0x4000C000
	uart1Base = 0x4000D000

	frTXFF = 1 << 5 // transmit FIFO full
	frRXFE = 1 << 4 // receive FIFO empty

	lcrhFEN   = 1 << 4
	lcrhWLEN8 = 3 << 5

	ctlUARTEN = 1 << 0
	ctlTXE    = 1 << 8
	ctlRXE    = 1 << 9

	// 115200 baud from the 16 MHz precision oscillator:
	// 16e6 / (16 * 115200) = 8.6806, fraction 0.6806 * 64 = 44.
	baudIBRD = 8
	baudFBRD = 44
)

type uartRegs struct {
	DR   port.Register32    // 0x000
	RSR  port.Register32    // 0x004
	_    [4]port.Register32 // 0x008-0x014
	FR   port.Register32    // 0x018
	_    port.Register32    // 0x01C
	ILPR port.Register32    // 0x020
	IBRD port.Register32    // 0x024
	FBRD port.Register32    // 0x028
	LCRH port.Register32    // 0x02C
	CTL  port.Register32    // 0x030
}

// uart is a polled UART, 8N1 with FIFOs. Read never blocks; Write blocks
// until every byte is queued.
type uart struct {
	regs *uartRegs
}

// newUART gates on UART index and programs it. The pins must already be
// routed to it.
func newUART(base uintptr, index uint8, sc *port.SysCtl) *uart {
	sc.RCGCUART.SetBits(1 << index)
	_ = sc.RCGCUART.Get()

	u := &uart{regs: (*uartRegs)(unsafe.Pointer(base))}
	u.regs.CTL.ClearBits(ctlUARTEN)
	u.regs.IBRD.Set(baudIBRD)
	u.regs.FBRD.Set(baudFBRD)
	u.regs.LCRH.Set(lcrhWLEN8 | lcrhFEN)
	u.regs.CTL.Set(ctlUARTEN | ctlTXE | ctlRXE)
	return u
}

func (u *uart) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) && !u.regs.FR.HasBits(frRXFE) {
		p[n] = byte(u.regs.DR.Get())
		n++
	}
	return n, nil
}

func (u *uart) Write(p []byte) (int, error) {
	for _, b := range p {
		for u.regs.FR.HasBits(frTXFF) {
		}
		u.regs.DR.Set(uint32(b))
	}
	return len(p), nil
}
