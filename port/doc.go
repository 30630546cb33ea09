// Package port configures the GPIO pins of the TM4C123GH6PM.
//
// A build-time Config table describes every pin: its bank and bit, the
// electrical mode (analog, GPIO or one of nine alternate functions), the
// direction, the pull resistor or initial output level, and whether the
// direction and mode may be changed after initialization. Driver.Init
// turns that table into register writes; SetPinDirection, SetPinMode and
// RefreshPortDirection adjust single attributes at runtime.
//
// Registers are reached through the Registers interface. TinyGo builds map
// the banks onto the memory-mapped GPIO apertures; regular Go builds use a
// Simulator so the engine can be exercised on a host.
//
// Two classes of pins get special treatment. PD7 and PF0 are
// commit-protected and are unlocked before their first write. PC0..PC3
// carry JTAG/SWD and are never written.
package port
