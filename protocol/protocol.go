// Package protocol frames the messages exchanged between the host tools and
// the pin-configuration firmware.
//
// A frame is
//
//	len seq payload... crc_hi crc_lo 0x7E
//
// where len counts the whole frame, seq is 0x10 | (n & 0x0F), and the
// payload is a command or response id followed by its arguments, all
// VLQ-encoded.
package protocol

import "errors"

// Frame layout.
const (
	HeaderSize  = 2
	TrailerSize = 3
	MinFrame    = HeaderSize + TrailerSize
	MaxFrame    = 64
	MaxPayload  = MaxFrame - MinFrame

	posLen = 0
	posSeq = 1

	SyncByte = 0x7E
	SeqDest  = 0x10
	SeqMask  = 0x0F
)

var (
	ErrBadVLQ        = errors.New("protocol: truncated VLQ")
	ErrFrameTooLong  = errors.New("protocol: frame too long")
	ErrNoData        = errors.New("protocol: no data received")
	ErrPayloadLength = errors.New("protocol: string exceeds payload")
)

// NextSeq returns the sequence number following seq.
func NextSeq(seq uint8) uint8 {
	return (seq+1)&SeqMask | SeqDest
}
