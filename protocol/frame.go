package protocol

// Frame is one decoded message.
type Frame struct {
	Seq     uint8
	Payload []byte
}

// EncodeFrame writes a frame with sequence seq around the payload produced
// by body. If the payload does not fit, nothing is left in out.
func EncodeFrame(out *ScratchOutput, seq uint8, body func(OutputBuffer)) error {
	start := out.CurPosition()
	out.Output([]byte{0, seq})
	if body != nil {
		body(out)
	}
	n := len(out.DataSince(start)) + TrailerSize
	if n > MaxFrame || out.CurPosition() == len(out.buf) {
		out.Truncate(start)
		return ErrFrameTooLong
	}
	out.Update(start+posLen, byte(n))
	crc := CRC16(out.DataSince(start))
	out.Output([]byte{byte(crc >> 8), byte(crc), SyncByte})
	return nil
}

// Decoder splits a byte stream into frames. After a corrupt frame it
// discards input up to the next sync byte.
type Decoder struct {
	desync  bool
	Dropped int // corrupt frames discarded
}

// Next removes and returns the first complete frame in in. It returns
// false when in holds no complete frame; the partial tail stays in in.
//
// The payload aliases in's storage and is valid until in is next used.
func (d *Decoder) Next(in InputBuffer) (Frame, bool) {
	data := in.Data()
	consumed := 0
	defer func() { in.Pop(consumed) }()

	for consumed < len(data) {
		rest := data[consumed:]
		if d.desync {
			i := 0
			for i < len(rest) && rest[i] != SyncByte {
				i++
			}
			if i == len(rest) {
				consumed = len(data)
				return Frame{}, false
			}
			consumed += i + 1
			d.desync = false
			continue
		}
		if rest[0] == SyncByte {
			consumed++
			continue
		}
		if len(rest) < MinFrame {
			return Frame{}, false
		}
		n := int(rest[posLen])
		seq := rest[posSeq]
		if n < MinFrame || n > MaxFrame || seq&^SeqMask != SeqDest {
			d.drop()
			continue
		}
		if len(rest) < n {
			return Frame{}, false
		}
		crc := uint16(rest[n-3])<<8 | uint16(rest[n-2])
		if rest[n-1] != SyncByte || crc != CRC16(rest[:n-TrailerSize]) {
			d.drop()
			continue
		}
		consumed += n
		return Frame{Seq: seq, Payload: rest[HeaderSize : n-TrailerSize]}, true
	}
	return Frame{}, false
}

func (d *Decoder) drop() {
	d.desync = true
	d.Dropped++
}
