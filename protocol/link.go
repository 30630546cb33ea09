package protocol

import "io"

// maxEmptyReads bounds how many reads may return nothing before Receive
// gives up. Serial ports with a read timeout return (0, nil) when idle.
const maxEmptyReads = 3

// Link exchanges frames over a byte stream. It is not safe for concurrent
// use.
type Link struct {
	rw      io.ReadWriter
	rx      *FifoBuffer
	dec     Decoder
	out     ScratchOutput
	chunk   [MaxFrame]byte
	payload [MaxPayload]byte
}

func NewLink(rw io.ReadWriter) *Link {
	return &Link{rw: rw, rx: NewFifoBuffer(4 * MaxFrame)}
}

// Send encodes one frame and writes it in a single Write.
func (l *Link) Send(seq uint8, body func(OutputBuffer)) error {
	l.out.Reset()
	if err := EncodeFrame(&l.out, seq, body); err != nil {
		return err
	}
	_, err := l.rw.Write(l.out.Bytes())
	return err
}

// Receive blocks until a frame arrives. The payload is valid until the
// next call to Receive or Poll.
func (l *Link) Receive() (Frame, error) {
	empty := 0
	for {
		if f, ok := l.next(); ok {
			return f, nil
		}
		n, err := l.fill()
		if err != nil {
			return Frame{}, err
		}
		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return Frame{}, ErrNoData
			}
		}
	}
}

// Poll performs one read and hands every complete frame to fn. It is meant
// for readers that return immediately when no data is pending.
func (l *Link) Poll(fn func(Frame)) error {
	if _, err := l.fill(); err != nil {
		return err
	}
	for {
		f, ok := l.next()
		if !ok {
			return nil
		}
		fn(f)
	}
}

// Dropped returns the number of corrupt frames discarded so far.
func (l *Link) Dropped() int {
	return l.dec.Dropped
}

func (l *Link) fill() (int, error) {
	buf := l.chunk[:]
	if free := l.rx.Free(); free < len(buf) {
		buf = buf[:free]
	}
	n, err := l.rw.Read(buf)
	l.rx.Write(buf[:n])
	if err != nil && n > 0 {
		err = nil // deliver what arrived; the error recurs on the next read
	}
	return n, err
}

func (l *Link) next() (Frame, bool) {
	f, ok := l.dec.Next(l.rx)
	if !ok {
		return Frame{}, false
	}
	n := copy(l.payload[:], f.Payload)
	f.Payload = l.payload[:n]
	return f, true
}
