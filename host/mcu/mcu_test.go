package mcu

import (
	"bytes"
	"errors"
	"io"
	"net"
	"testing"

	"periph.io/x/conn/v3/gpio"

	"tivaport/port"
	"tivaport/portcmd"
	"tivaport/protocol"
)

var boardConfig = &port.Config{Pins: []port.PinDescriptor{
	{Port: port.PortA, Pin: 0, Direction: port.Input, Mode: port.ModeAlt1},
	{Port: port.PortC, Pin: 2, Direction: port.Output, Mode: port.ModeGPIO},
	{Port: port.PortF, Pin: 1, Direction: port.Output, DirectionChange: port.Mutable, Mode: port.ModeGPIO, ModeChange: port.Mutable, InitialLevel: gpio.High},
	{Port: port.PortF, Pin: 4, Direction: port.Input, Mode: port.ModeGPIO, Pull: gpio.PullUp},
}}

// startBoard runs a firmware command server on the far end of a pipe.
func startBoard(t *testing.T, initialized bool) *MCU {
	t.Helper()
	d := port.New(port.Options{Registers: port.NewSimulator(), Reporter: port.ReporterFunc(func(uint16, uint8, port.ServiceID, port.ErrorCode) {})})
	if initialized {
		if err := d.Init(boardConfig); err != nil {
			t.Fatalf("Init failed: %v", err)
		}
	}

	host, board := net.Pipe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		portcmd.NewServer(d, board).Serve()
	}()
	t.Cleanup(func() {
		host.Close()
		board.Close()
		<-done
	})
	return New(host, nil)
}

func TestMCUSetPinDirection(t *testing.T) {
	m := startBoard(t, true)

	if err := m.SetPinDirection(2, port.Input); err != nil {
		t.Fatalf("SetPinDirection failed: %v", err)
	}
	st, err := m.PinState(2)
	if err != nil {
		t.Fatalf("PinState failed: %v", err)
	}
	if st.Direction != port.Input {
		t.Errorf("direction = %v, want in", st.Direction)
	}

	err = m.SetPinDirection(3, port.Output)
	if !errors.Is(err, port.ErrDirectionUnchangeable) {
		t.Errorf("SetPinDirection(fixed) = %v, want %v", err, port.ErrDirectionUnchangeable)
	}
	var perr *port.Error
	if !errors.As(err, &perr) || perr.Service != port.ServiceSetPinDirection {
		t.Errorf("error %v does not carry the service", err)
	}
}

func TestMCUSetPinMode(t *testing.T) {
	m := startBoard(t, true)

	if err := m.SetPinMode(2, port.ModeAlt5); err != nil {
		t.Fatalf("SetPinMode failed: %v", err)
	}
	st, err := m.PinState(2)
	if err != nil {
		t.Fatalf("PinState failed: %v", err)
	}
	want := port.PinState{Mode: port.ModeAlt5, Direction: port.Output, Level: gpio.High, Pull: gpio.Float}
	if st != want {
		t.Errorf("PinState = %+v, want %+v", st, want)
	}

	if err := m.SetPinMode(0, port.ModeGPIO); !errors.Is(err, port.ErrModeUnchangeable) {
		t.Errorf("SetPinMode(fixed) = %v", err)
	}
	if _, err := m.PinState(1); !errors.Is(err, port.ErrParamInvalidPinID) {
		t.Errorf("PinState(reserved) = %v, want %v", err, port.ErrParamInvalidPinID)
	}
}

func TestMCUQueries(t *testing.T) {
	m := startBoard(t, true)

	info, err := m.VersionInfo()
	if err != nil {
		t.Fatalf("VersionInfo failed: %v", err)
	}
	if info.VendorID != port.VendorID || info.ModuleID != port.ModuleID || info.SWMajorVersion != 1 {
		t.Errorf("VersionInfo = %+v", info)
	}

	cfg, err := m.Config()
	if err != nil {
		t.Fatalf("Config failed: %v", err)
	}
	if len(cfg.Pins) != len(boardConfig.Pins) {
		t.Fatalf("got %d pins, want %d", len(cfg.Pins), len(boardConfig.Pins))
	}
	for i := range cfg.Pins {
		if cfg.Pins[i] != boardConfig.Pins[i] {
			t.Errorf("pin %d = %+v, want %+v", i, cfg.Pins[i], boardConfig.Pins[i])
		}
	}

	if err := m.RefreshPortDirection(); err != nil {
		t.Errorf("RefreshPortDirection failed: %v", err)
	}
}

func TestMCUUninitializedBoard(t *testing.T) {
	m := startBoard(t, false)

	if err := m.RefreshPortDirection(); !errors.Is(err, port.ErrUninit) {
		t.Errorf("RefreshPortDirection = %v, want %v", err, port.ErrUninit)
	}
	if _, err := m.Config(); !errors.Is(err, port.ErrUninit) {
		t.Errorf("Config = %v, want %v", err, port.ErrUninit)
	}
}

// script replays canned firmware output and discards writes.
type script struct {
	io.Reader
	io.Writer
}

func frame(t *testing.T, seq uint8, id uint16, vals ...uint32) []byte {
	t.Helper()
	var out protocol.ScratchOutput
	err := protocol.EncodeFrame(&out, seq, func(o protocol.OutputBuffer) {
		protocol.AppendUint(o, uint32(id))
		for _, v := range vals {
			protocol.AppendUint(o, v)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	return append([]byte(nil), out.Bytes()...)
}

func TestMCUSkipsStaleReplies(t *testing.T) {
	var stream bytes.Buffer
	stream.Write(frame(t, 0x1F, portcmd.RspStatus, 0, 0))
	stream.Write(frame(t, 0x10, portcmd.RspVersion, 1000, 120, 1, 2, 3))

	m := New(script{&stream, io.Discard}, nil)
	info, err := m.VersionInfo()
	if err != nil {
		t.Fatalf("VersionInfo failed: %v", err)
	}
	if info.SWMinorVersion != 2 || info.SWPatchVersion != 3 {
		t.Errorf("VersionInfo = %+v", info)
	}
}

func TestMCUUnexpectedReply(t *testing.T) {
	var stream bytes.Buffer
	stream.Write(frame(t, 0x10, portcmd.RspConfig, 1, 1))

	m := New(script{&stream, io.Discard}, nil)
	if _, err := m.VersionInfo(); !errors.Is(err, ErrUnexpectedReply) {
		t.Errorf("VersionInfo = %v, want %v", err, ErrUnexpectedReply)
	}
}

func TestMCUClosed(t *testing.T) {
	m := startBoard(t, true)
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := m.RefreshPortDirection(); !errors.Is(err, ErrNotConnected) {
		t.Errorf("call after Close = %v, want %v", err, ErrNotConnected)
	}
}

func TestMCUDictionary(t *testing.T) {
	m := startBoard(t, false)
	dict, err := m.Dictionary()
	if err != nil {
		t.Fatalf("Dictionary failed: %v", err)
	}
	if dict != portcmd.Dictionary() {
		t.Errorf("Dictionary() =\n%s\nwant\n%s", dict, portcmd.Dictionary())
	}
}

func TestMCURejectsCommandAsReply(t *testing.T) {
	var stream bytes.Buffer
	stream.Write(frame(t, 0x10, portcmd.CmdGetPin, 3))

	m := New(script{&stream, io.Discard}, nil)
	if _, err := m.PinState(3); !errors.Is(err, ErrUnexpectedReply) {
		t.Errorf("PinState = %v, want %v", err, ErrUnexpectedReply)
	}
}

func TestMCUConfigTooLarge(t *testing.T) {
	var stream bytes.Buffer
	stream.Write(frame(t, 0x10, portcmd.RspConfig, 1<<20, 1))

	m := New(script{&stream, io.Discard}, nil)
	if _, err := m.Config(); !errors.Is(err, ErrUnexpectedReply) {
		t.Errorf("Config = %v, want %v", err, ErrUnexpectedReply)
	}
}
