// Package mcu drives the pin-configuration firmware from the host.
package mcu

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"periph.io/x/conn/v3/gpio"

	"tivaport/host/serial"
	"tivaport/port"
	"tivaport/portcmd"
	"tivaport/protocol"
)

// maxStale bounds how many replies to earlier requests are skipped while
// waiting for the current one.
const maxStale = 8

var (
	ErrNotConnected    = errors.New("mcu: not connected")
	ErrUnexpectedReply = errors.New("mcu: unexpected reply")
)

// MCU is a synchronous connection to the board. It is not safe for
// concurrent use.
type MCU struct {
	link   *protocol.Link
	closer io.Closer
	seq    uint8
	log    *slog.Logger
}

// New talks to firmware over rw. A nil logger discards output.
func New(rw io.ReadWriter, log *slog.Logger) *MCU {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	m := &MCU{
		link: protocol.NewLink(rw),
		seq:  protocol.SeqDest,
		log:  log.With("component", "mcu"),
	}
	if c, ok := rw.(io.Closer); ok {
		m.closer = c
	}
	return m
}

// Connect opens the serial device in cfg and drops any stale input.
func Connect(cfg *serial.Config, log *slog.Logger) (*MCU, error) {
	p, err := serial.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := p.Flush(); err != nil {
		p.Close()
		return nil, fmt.Errorf("flush %s: %w", cfg.Device, err)
	}
	m := New(p, log)
	m.log.Info("connected", "device", cfg.Device, "baud", cfg.Baud)
	return m, nil
}

// Close closes the underlying stream if it can be closed.
func (m *MCU) Close() error {
	if m.closer == nil {
		return nil
	}
	err := m.closer.Close()
	m.closer = nil
	m.link = nil
	return err
}

// roundTrip sends one command and returns the reply id and its undecoded
// arguments. A status reply is turned into its error.
func (m *MCU) roundTrip(cmd uint16, args ...uint32) (uint16, []byte, error) {
	if m.link == nil {
		return 0, nil, ErrNotConnected
	}
	seq := m.seq
	m.seq = protocol.NextSeq(seq)
	name := portcmd.Messages[cmd].Name

	m.log.Debug("send", "cmd", name, "seq", seq, "args", args)
	err := m.link.Send(seq, func(out protocol.OutputBuffer) {
		protocol.AppendUint(out, uint32(cmd))
		for _, a := range args {
			protocol.AppendUint(out, a)
		}
	})
	if err != nil {
		return 0, nil, fmt.Errorf("send %s: %w", name, err)
	}

	for range maxStale {
		f, err := m.link.Receive()
		if err != nil {
			return 0, nil, fmt.Errorf("%s: %w", name, err)
		}
		if f.Seq != seq {
			m.log.Debug("skipping stale reply", "seq", f.Seq, "want", seq)
			continue
		}
		data := f.Payload
		id, err := protocol.DecodeUint(&data)
		if err != nil {
			return 0, nil, fmt.Errorf("%s: %w", name, err)
		}
		if !portcmd.IsReply(id) {
			return 0, nil, fmt.Errorf("%s: %w: id %d", name, ErrUnexpectedReply, id)
		}
		rsp := uint16(id)
		m.log.Debug("recv", "rsp", portcmd.Messages[rsp].Name, "len", len(data))
		if rsp == portcmd.RspStatus {
			vals, err := decodeValues(data)
			if err != nil || len(vals) != 2 {
				return 0, nil, fmt.Errorf("%s: %w: malformed status", name, ErrUnexpectedReply)
			}
			return rsp, nil, portcmd.StatusError(port.ServiceID(vals[0]), port.ErrorCode(vals[1]))
		}
		return rsp, data, nil
	}
	return 0, nil, fmt.Errorf("%s: no reply with sequence %#x", name, seq)
}

// call is roundTrip for replies made only of integers.
func (m *MCU) call(cmd uint16, args ...uint32) (uint16, []uint32, error) {
	rsp, data, err := m.roundTrip(cmd, args...)
	if err != nil {
		return rsp, nil, err
	}
	vals, err := decodeValues(data)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", portcmd.Messages[rsp].Name, err)
	}
	return rsp, vals, nil
}

func decodeValues(data []byte) ([]uint32, error) {
	var vals []uint32
	for len(data) > 0 {
		v, err := protocol.DecodeUint(&data)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// query runs a command that must answer with want carrying n values.
func (m *MCU) query(cmd, want uint16, n int, args ...uint32) ([]uint32, error) {
	rsp, vals, err := m.call(cmd, args...)
	if err != nil {
		return nil, err
	}
	if rsp != want || len(vals) != n {
		return nil, fmt.Errorf("%w: %s with %d values", ErrUnexpectedReply, portcmd.Messages[rsp].Name, len(vals))
	}
	return vals, nil
}

// exec runs a command answered by a plain status.
func (m *MCU) exec(cmd uint16, args ...uint32) error {
	rsp, _, err := m.roundTrip(cmd, args...)
	if err != nil {
		return err
	}
	if rsp != portcmd.RspStatus {
		return fmt.Errorf("%w: %s", ErrUnexpectedReply, portcmd.Messages[rsp].Name)
	}
	return nil
}

func (m *MCU) SetPinDirection(id port.PinID, dir port.Direction) error {
	return m.exec(portcmd.CmdSetPinDirection, uint32(id), uint32(dir))
}

func (m *MCU) SetPinMode(id port.PinID, mode port.Mode) error {
	return m.exec(portcmd.CmdSetPinMode, uint32(id), uint32(mode))
}

func (m *MCU) RefreshPortDirection() error {
	return m.exec(portcmd.CmdRefreshDirection)
}

// VersionInfo asks the firmware for its driver identity.
func (m *MCU) VersionInfo() (port.VersionInfo, error) {
	v, err := m.query(portcmd.CmdGetVersion, portcmd.RspVersion, 5)
	if err != nil {
		return port.VersionInfo{}, err
	}
	return port.VersionInfo{
		VendorID:       uint16(v[0]),
		ModuleID:       uint16(v[1]),
		SWMajorVersion: uint8(v[2]),
		SWMinorVersion: uint8(v[3]),
		SWPatchVersion: uint8(v[4]),
	}, nil
}

// PinState reads back a pin's registers.
func (m *MCU) PinState(id port.PinID) (port.PinState, error) {
	v, err := m.query(portcmd.CmdGetPin, portcmd.RspPinState, 5, uint32(id))
	if err != nil {
		return port.PinState{}, err
	}
	return port.PinState{
		Mode:      port.Mode(v[1]),
		Direction: port.Direction(v[2]),
		Level:     gpio.Level(v[3] != 0),
		Pull:      gpio.Pull(v[4]),
	}, nil
}

// Config downloads the firmware's pin table.
func (m *MCU) Config() (*port.Config, error) {
	v, err := m.query(portcmd.CmdGetConfig, portcmd.RspConfig, 2)
	if err != nil {
		return nil, err
	}
	if v[1] == 0 {
		return nil, &port.Error{Service: portcmd.ServiceGetConfig, Code: port.CodeUninit}
	}
	if v[0] > port.NumPorts*port.PinsPerPort {
		return nil, fmt.Errorf("%w: %d configured pins", ErrUnexpectedReply, v[0])
	}
	cfg := &port.Config{Pins: make([]port.PinDescriptor, v[0])}
	for i := range cfg.Pins {
		p, err := m.query(portcmd.CmdGetPinConfig, portcmd.RspPinConfig, 9, uint32(i))
		if err != nil {
			return nil, fmt.Errorf("pin %d: %w", i, err)
		}
		cfg.Pins[i] = port.PinDescriptor{
			Port:            port.PortID(p[1]),
			Pin:             uint8(p[2]),
			Direction:       port.Direction(p[3]),
			DirectionChange: port.Mutability(p[4]),
			Mode:            port.Mode(p[5]),
			ModeChange:      port.Mutability(p[6]),
			InitialLevel:    gpio.Level(p[7] != 0),
			Pull:            gpio.Pull(p[8]),
		}
	}
	return cfg, nil
}

// maxDictionary bounds the compressed dictionary download.
const maxDictionary = 64 << 10

// Dictionary downloads the firmware's message table.
func (m *MCU) Dictionary() (string, error) {
	var z []byte
	for {
		rsp, data, err := m.roundTrip(portcmd.CmdIdentify, uint32(len(z)), portcmd.MaxIdentifyChunk)
		if err != nil {
			return "", err
		}
		if rsp != portcmd.RspIdentify {
			return "", fmt.Errorf("%w: %s", ErrUnexpectedReply, portcmd.Messages[rsp].Name)
		}
		offset, err := protocol.DecodeUint(&data)
		if err != nil {
			return "", fmt.Errorf("identify: %w", err)
		}
		chunk, err := protocol.DecodeString(&data)
		if err != nil {
			return "", fmt.Errorf("identify: %w", err)
		}
		if offset != uint32(len(z)) {
			return "", fmt.Errorf("%w: chunk at %d, want %d", ErrUnexpectedReply, offset, len(z))
		}
		if chunk == "" {
			break
		}
		if len(z)+len(chunk) > maxDictionary {
			return "", fmt.Errorf("identify: dictionary larger than %d bytes", maxDictionary)
		}
		z = append(z, chunk...)
	}

	r, err := zlib.NewReader(bytes.NewReader(z))
	if err != nil {
		return "", fmt.Errorf("identify: %w", err)
	}
	defer r.Close()
	dict, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("identify: %w", err)
	}
	m.log.Debug("dictionary", "compressed", len(z), "size", len(dict))
	return string(dict), nil
}
