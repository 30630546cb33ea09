// Package serial opens the UART link to the board.
package serial

import (
	"io"
	"time"
)

// Port is an open serial link.
type Port interface {
	io.ReadWriteCloser

	// Flush discards bytes received but not yet read.
	Flush() error
}

// Config holds serial port settings.
type Config struct {
	// Device path, e.g. "/dev/ttyACM0" or "COM3".
	Device string

	// Baud must match the firmware's UART0 setting.
	Baud int

	// ReadTimeout bounds a single read. Zero blocks.
	ReadTimeout time.Duration
}

// DefaultBaud is the UART0 rate programmed by the firmware.
const DefaultBaud = 115200

// DefaultConfig returns settings for the LaunchPad's debug UART.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        DefaultBaud,
		ReadTimeout: 500 * time.Millisecond,
	}
}
