package protocol

// OutputBuffer receives encoded bytes. CurPosition, Update and DataSince
// let the frame encoder patch the length byte once the payload is known.
type OutputBuffer interface {
	Output(data []byte)
	CurPosition() int
	Update(pos int, val byte)
	DataSince(pos int) []byte
}

// InputBuffer holds received bytes awaiting decoding.
type InputBuffer interface {
	Data() []byte
	Available() int
	Pop(n int)
}

// ScratchOutput is a fixed OutputBuffer large enough for a few frames.
// Bytes past its capacity are dropped.
type ScratchOutput struct {
	buf [4 * MaxFrame]byte
	pos int
}

func (s *ScratchOutput) Output(data []byte) {
	s.pos += copy(s.buf[s.pos:], data)
}

func (s *ScratchOutput) CurPosition() int {
	return s.pos
}

func (s *ScratchOutput) Update(pos int, val byte) {
	if pos < s.pos {
		s.buf[pos] = val
	}
}

func (s *ScratchOutput) DataSince(pos int) []byte {
	if pos > s.pos {
		return nil
	}
	return s.buf[pos:s.pos]
}

// Bytes returns everything written since the last Reset.
func (s *ScratchOutput) Bytes() []byte {
	return s.buf[:s.pos]
}

// Truncate discards everything written after pos.
func (s *ScratchOutput) Truncate(pos int) {
	if pos < s.pos {
		s.pos = pos
	}
}

func (s *ScratchOutput) Reset() {
	s.pos = 0
}

// FifoBuffer is a byte ring used to accumulate a receive stream. One slot
// is kept free to tell full from empty.
type FifoBuffer struct {
	buf        []byte
	head, tail int // read, write
	flat       []byte
}

// NewFifoBuffer returns a ring holding up to capacity-1 bytes.
func NewFifoBuffer(capacity int) *FifoBuffer {
	return &FifoBuffer{buf: make([]byte, capacity), flat: make([]byte, 0, capacity)}
}

// Write stores as much of data as fits and returns the count stored.
func (f *FifoBuffer) Write(data []byte) int {
	n := 0
	for _, b := range data {
		next := (f.tail + 1) % len(f.buf)
		if next == f.head {
			break
		}
		f.buf[f.tail] = b
		f.tail = next
		n++
	}
	return n
}

func (f *FifoBuffer) Available() int {
	if f.tail >= f.head {
		return f.tail - f.head
	}
	return len(f.buf) - f.head + f.tail
}

// Free returns the number of bytes Write can still accept.
func (f *FifoBuffer) Free() int {
	return len(f.buf) - 1 - f.Available()
}

// Data returns the buffered bytes as one slice. When the ring has wrapped
// they are copied into a preallocated linear buffer. The slice is valid
// until the next Write.
func (f *FifoBuffer) Data() []byte {
	if f.head <= f.tail {
		return f.buf[f.head:f.tail]
	}
	f.flat = append(f.flat[:0], f.buf[f.head:]...)
	return append(f.flat, f.buf[:f.tail]...)
}

func (f *FifoBuffer) Pop(n int) {
	if avail := f.Available(); n > avail {
		n = avail
	}
	f.head = (f.head + n) % len(f.buf)
}

func (f *FifoBuffer) Reset() {
	f.head, f.tail = 0, 0
}
