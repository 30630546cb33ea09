package protocol

// AppendInt encodes v as a variable-length quantity, most significant
// group first. Values in [-32, 96) take one byte.
func AppendInt(out OutputBuffer, v int32) {
	var buf [5]byte
	n := 0
	if v < -(1<<26) || v >= 3<<26 {
		buf[n] = byte(v>>28)&0x7F | 0x80
		n++
	}
	if v < -(1<<19) || v >= 3<<19 {
		buf[n] = byte(v>>21)&0x7F | 0x80
		n++
	}
	if v < -(1<<12) || v >= 3<<12 {
		buf[n] = byte(v>>14)&0x7F | 0x80
		n++
	}
	if v < -(1<<5) || v >= 3<<5 {
		buf[n] = byte(v>>7)&0x7F | 0x80
		n++
	}
	buf[n] = byte(v) & 0x7F
	out.Output(buf[:n+1])
}

// AppendUint encodes v. Values above MaxInt32 wrap, as on the wire.
func AppendUint(out OutputBuffer, v uint32) {
	AppendInt(out, int32(v))
}

// AppendString encodes a length-prefixed string.
func AppendString(out OutputBuffer, s string) {
	AppendUint(out, uint32(len(s)))
	out.Output([]byte(s))
}

// DecodeInt decodes one value from the front of *data and advances it.
func DecodeInt(data *[]byte) (int32, error) {
	d := *data
	if len(d) == 0 {
		return 0, ErrBadVLQ
	}
	c := uint32(d[0])
	v := c & 0x7F
	if c&0x60 == 0x60 {
		v |= ^uint32(0x1F) // negative
	}
	i := 1
	for c&0x80 != 0 {
		if i >= len(d) {
			return 0, ErrBadVLQ
		}
		c = uint32(d[i])
		v = v<<7 | c&0x7F
		i++
	}
	*data = d[i:]
	return int32(v), nil
}

// DecodeUint decodes one unsigned value from the front of *data.
func DecodeUint(data *[]byte) (uint32, error) {
	v, err := DecodeInt(data)
	return uint32(v), err
}

// DecodeString decodes a length-prefixed string.
func DecodeString(data *[]byte) (string, error) {
	n, err := DecodeUint(data)
	if err != nil {
		return "", err
	}
	if uint32(len(*data)) < n {
		return "", ErrPayloadLength
	}
	s := string((*data)[:n])
	*data = (*data)[n:]
	return s, nil
}
