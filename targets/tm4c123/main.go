//go:build tinygo && tm4c123

// Firmware for the EK-TM4C123GXL LaunchPad. It applies the board pin table
// and serves pin commands on UART0 (the ICDI virtual COM port). Diagnostics
// go to UART1 on PB1.
//
//	tinygo flash -target=./targets/tm4c123/tm4c123.json ./targets/tm4c123
package main

import (
	"tivaport/boardcfg"
	"tivaport/port"
	"tivaport/portcmd"
)

// refreshInterval is the number of polls between direction refreshes.
const refreshInterval = 1 << 18

var crlf = []byte("\r\n")

func main() {
	regs := port.Hardware()
	d := port.New(port.DefaultOptions())
	initErr := d.Init(boardcfg.LaunchPad)

	if d.SetPinMode(boardcfg.PB0, port.ModeAlt1) == nil && d.SetPinMode(boardcfg.PB1, port.ModeAlt1) == nil {
		dbg := newUART(uart1Base, 1, regs.SysCtl())
		port.SetDebugWriter(func(s string) {
			dbg.Write([]byte(s))
			dbg.Write(crlf)
		})
	}
	if initErr != nil {
		port.DebugPrintln("[PORT] init: " + initErr.Error())
	}

	srv := portcmd.NewServer(d, newUART(uart0Base, 0, regs.SysCtl()))
	port.DebugPrintln("[PORT] serving on UART0")

	polls := 0
	for {
		if err := srv.Poll(); err != nil {
			port.DebugPrintln("[CMD] " + err.Error())
		}
		polls++
		if polls == refreshInterval {
			polls = 0
			if err := d.RefreshPortDirection(); err != nil {
				port.DebugPrintln("[PORT] refresh: " + err.Error())
			}
		}
	}
}
