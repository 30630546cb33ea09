// Package portcmd carries pin driver operations over a protocol link. The
// firmware runs a Server; host tools speak the same message table.
package portcmd

import (
	"errors"

	"tivaport/port"
)

// Message ids are positions in Messages and must not be reordered.
const (
	CmdSetPinDirection uint16 = iota
	CmdSetPinMode
	CmdRefreshDirection
	CmdGetVersion
	CmdGetPin
	CmdGetConfig
	CmdGetPinConfig
	CmdIdentify

	RspStatus
	RspVersion
	RspPinState
	RspConfig
	RspPinConfig
	RspIdentify
)

// Service ids for operations that exist only on the link.
const (
	ServiceGetConfig port.ServiceID = 0x10
	ServiceIdentify  port.ServiceID = 0x11
	ServiceUnknown   port.ServiceID = 0xFF
)

// Status codes beyond those of the driver.
const (
	CodeMalformed      port.ErrorCode = 0xFD
	CodeUnknownCommand port.ErrorCode = 0xFE
)

var (
	ErrMalformed      = errors.New("portcmd: malformed arguments")
	ErrUnknownCommand = errors.New("portcmd: unknown command")
)

// Message describes one entry of the message table.
type Message struct {
	ID      uint16
	Name    string
	Format  string
	Service port.ServiceID // reported in the status reply; commands only
}

// Messages is the table shared by both ends of the link.
var Messages = [...]Message{
	{CmdSetPinDirection, "set_pin_direction", "pin=%u dir=%c", port.ServiceSetPinDirection},
	{CmdSetPinMode, "set_pin_mode", "pin=%u mode=%c", port.ServiceSetPinMode},
	{CmdRefreshDirection, "refresh_direction", "", port.ServiceRefreshPortDirection},
	{CmdGetVersion, "get_version", "", port.ServiceGetVersionInfo},
	{CmdGetPin, "get_pin", "pin=%u", port.ServicePinState},
	{CmdGetConfig, "get_config", "", ServiceGetConfig},
	{CmdGetPinConfig, "get_pin_config", "pin=%u", ServiceGetConfig},
	{CmdIdentify, "identify", "offset=%u count=%c", ServiceIdentify},

	{RspStatus, "status", "service=%c code=%c", 0},
	{RspVersion, "version", "vendor=%hu module=%hu major=%c minor=%c patch=%c", 0},
	{RspPinState, "pin_state", "pin=%u mode=%c dir=%c level=%c pull=%c", 0},
	{RspConfig, "config", "pins=%u initialized=%c", 0},
	{RspPinConfig, "pin_config", "pin=%u port=%c bit=%c dir=%c dir_change=%c mode=%c mode_change=%c level=%c pull=%c", 0},
	{RspIdentify, "identify_response", "offset=%u data=%*s", 0},
}

// Lookup finds a message by name.
func Lookup(name string) (Message, bool) {
	for _, m := range Messages {
		if m.Name == name {
			return m, true
		}
	}
	return Message{}, false
}

// Dictionary lists the message table, one "name format" line per entry.
func Dictionary() string {
	dict := ""
	for _, m := range Messages {
		if m.Format != "" {
			dict += m.Name + " " + m.Format + "\n"
		} else {
			dict += m.Name + "\n"
		}
	}
	return dict
}

// IsReply reports whether id names a message sent by the firmware.
func IsReply(id uint32) bool {
	return id >= uint32(RspStatus) && id < uint32(len(Messages))
}

// StatusError turns a status reply into an error. CodeOK yields nil.
func StatusError(service port.ServiceID, code port.ErrorCode) error {
	switch code {
	case port.CodeOK:
		return nil
	case CodeMalformed:
		return ErrMalformed
	case CodeUnknownCommand:
		return ErrUnknownCommand
	}
	return &port.Error{Service: service, Code: code}
}

// statusCode is the inverse of StatusError.
func statusCode(err error) port.ErrorCode {
	switch {
	case err == nil:
		return port.CodeOK
	case errors.Is(err, ErrMalformed):
		return CodeMalformed
	case errors.Is(err, ErrUnknownCommand):
		return CodeUnknownCommand
	}
	return port.CodeOf(err)
}
