package portcmd

import (
	"errors"
	"io"

	"periph.io/x/conn/v3/gpio"

	"tivaport/port"
	"tivaport/protocol"
	"tivaport/tinycompress"
)

// MaxIdentifyChunk is the most dictionary bytes one identify_response
// carries.
const MaxIdentifyChunk = 40

// CommandHandler decodes its arguments from args. A handler that sends no
// reply of its own gets a status reply built from its error.
type CommandHandler func(args *[]byte) error

// Server answers commands for one Driver. Every command frame gets exactly
// one reply per command, carrying the same sequence number.
type Server struct {
	d        *port.Driver
	link     *protocol.Link
	handlers [len(Messages)]CommandHandler
	dict     []byte // zlib-wrapped Dictionary()

	seq     uint8
	replied bool
}

// NewServer returns a Server reading commands from rw.
func NewServer(d *port.Driver, rw io.ReadWriter) *Server {
	s := &Server{d: d, link: protocol.NewLink(rw), dict: tinycompress.Zlib([]byte(Dictionary()))}
	s.handlers[CmdSetPinDirection] = s.setPinDirection
	s.handlers[CmdSetPinMode] = s.setPinMode
	s.handlers[CmdRefreshDirection] = s.refreshDirection
	s.handlers[CmdGetVersion] = s.getVersion
	s.handlers[CmdGetPin] = s.getPin
	s.handlers[CmdGetConfig] = s.getConfig
	s.handlers[CmdGetPinConfig] = s.getPinConfig
	s.handlers[CmdIdentify] = s.identify
	return s
}

// Serve handles commands until the link fails. Idle timeouts are not
// failures.
func (s *Server) Serve() error {
	for {
		f, err := s.link.Receive()
		if errors.Is(err, protocol.ErrNoData) {
			continue
		}
		if err != nil {
			return err
		}
		s.Handle(f)
	}
}

// Poll handles whatever commands have arrived without blocking, provided
// the underlying reader does not block.
func (s *Server) Poll() error {
	return s.link.Poll(s.Handle)
}

// Handle runs every command in one frame.
func (s *Server) Handle(f protocol.Frame) {
	s.seq = f.Seq
	data := f.Payload
	for len(data) > 0 {
		id, err := protocol.DecodeUint(&data)
		if err != nil {
			s.status(ServiceUnknown, CodeMalformed)
			return
		}
		if id >= uint32(len(s.handlers)) || s.handlers[id] == nil {
			port.DebugPrintln("[CMD] unknown command " + port.Utoa(id))
			s.status(ServiceUnknown, CodeUnknownCommand)
			return
		}

		s.replied = false
		err = s.handlers[id](&data)
		if !s.replied {
			s.status(Messages[id].Service, statusCode(err))
		}
		if errors.Is(err, ErrMalformed) {
			return // the rest of the frame cannot be parsed
		}
	}
}

func (s *Server) respond(id uint16, body func(protocol.OutputBuffer)) {
	s.replied = true
	err := s.link.Send(s.seq, func(out protocol.OutputBuffer) {
		protocol.AppendUint(out, uint32(id))
		body(out)
	})
	if err != nil {
		port.DebugPrintln("[CMD] send failed: " + err.Error())
	}
}

func (s *Server) status(service port.ServiceID, code port.ErrorCode) {
	s.respond(RspStatus, func(out protocol.OutputBuffer) {
		protocol.AppendUint(out, uint32(service))
		protocol.AppendUint(out, uint32(code))
	})
}

// decodeArgs reads n values, failing with ErrMalformed.
func decodeArgs(args *[]byte, vals ...*uint32) error {
	for _, v := range vals {
		x, err := protocol.DecodeUint(args)
		if err != nil {
			return ErrMalformed
		}
		*v = x
	}
	return nil
}

// pinID saturates so an oversized index stays out of range.
func pinID(v uint32) port.PinID {
	if v > 0xFF {
		return 0xFF
	}
	return port.PinID(v)
}

func (s *Server) setPinDirection(args *[]byte) error {
	var pin, dir uint32
	if err := decodeArgs(args, &pin, &dir); err != nil {
		return err
	}
	if dir > uint32(port.Output) {
		return ErrMalformed
	}
	return s.d.SetPinDirection(pinID(pin), port.Direction(dir))
}

func (s *Server) setPinMode(args *[]byte) error {
	var pin, mode uint32
	if err := decodeArgs(args, &pin, &mode); err != nil {
		return err
	}
	if mode > 0xFF {
		mode = 0xFF
	}
	return s.d.SetPinMode(pinID(pin), port.Mode(mode))
}

func (s *Server) refreshDirection(*[]byte) error {
	return s.d.RefreshPortDirection()
}

func (s *Server) getVersion(*[]byte) error {
	var info port.VersionInfo
	if err := s.d.GetVersionInfo(&info); err != nil {
		return err
	}
	s.respond(RspVersion, func(out protocol.OutputBuffer) {
		protocol.AppendUint(out, uint32(info.VendorID))
		protocol.AppendUint(out, uint32(info.ModuleID))
		protocol.AppendUint(out, uint32(info.SWMajorVersion))
		protocol.AppendUint(out, uint32(info.SWMinorVersion))
		protocol.AppendUint(out, uint32(info.SWPatchVersion))
	})
	return nil
}

func (s *Server) getPin(args *[]byte) error {
	var pin uint32
	if err := decodeArgs(args, &pin); err != nil {
		return err
	}
	st, err := s.d.PinState(pinID(pin))
	if err != nil {
		return err
	}
	s.respond(RspPinState, func(out protocol.OutputBuffer) {
		protocol.AppendUint(out, pin)
		protocol.AppendUint(out, uint32(st.Mode))
		protocol.AppendUint(out, uint32(st.Direction))
		protocol.AppendUint(out, levelBit(st.Level))
		protocol.AppendUint(out, uint32(st.Pull))
	})
	return nil
}

func (s *Server) getConfig(*[]byte) error {
	n := 0
	if cfg := s.d.Config(); cfg != nil {
		n = len(cfg.Pins)
	}
	initialized := uint32(0)
	if s.d.Initialized() {
		initialized = 1
	}
	s.respond(RspConfig, func(out protocol.OutputBuffer) {
		protocol.AppendUint(out, uint32(n))
		protocol.AppendUint(out, initialized)
	})
	return nil
}

func (s *Server) getPinConfig(args *[]byte) error {
	var pin uint32
	if err := decodeArgs(args, &pin); err != nil {
		return err
	}
	cfg := s.d.Config()
	if cfg == nil {
		return &port.Error{Service: ServiceGetConfig, Code: port.CodeUninit}
	}
	if pin >= uint32(len(cfg.Pins)) {
		return &port.Error{Service: ServiceGetConfig, Code: port.CodeParamInvalidPinID}
	}
	p := cfg.Pins[pin]
	s.respond(RspPinConfig, func(out protocol.OutputBuffer) {
		protocol.AppendUint(out, pin)
		protocol.AppendUint(out, uint32(p.Port))
		protocol.AppendUint(out, uint32(p.Pin))
		protocol.AppendUint(out, uint32(p.Direction))
		protocol.AppendUint(out, uint32(p.DirectionChange))
		protocol.AppendUint(out, uint32(p.Mode))
		protocol.AppendUint(out, uint32(p.ModeChange))
		protocol.AppendUint(out, levelBit(p.InitialLevel))
		protocol.AppendUint(out, uint32(p.Pull))
	})
	return nil
}

// identify returns a slice of the compressed dictionary. Reading past the
// end yields an empty chunk.
func (s *Server) identify(args *[]byte) error {
	var offset, count uint32
	if err := decodeArgs(args, &offset, &count); err != nil {
		return err
	}
	count = min(count, MaxIdentifyChunk)
	var chunk []byte
	if offset < uint32(len(s.dict)) {
		chunk = s.dict[offset:min(offset+count, uint32(len(s.dict)))]
	}
	s.respond(RspIdentify, func(out protocol.OutputBuffer) {
		protocol.AppendUint(out, offset)
		protocol.AppendString(out, string(chunk))
	})
	return nil
}

func levelBit(l gpio.Level) uint32 {
	if l == gpio.High {
		return 1
	}
	return 0
}
