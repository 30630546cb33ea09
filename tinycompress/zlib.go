// Package tinycompress writes zlib streams without a compressor, so
// firmware can publish data that any zlib reader accepts.
package tinycompress

import "hash/adler32"

// maxStored is the largest payload of one stored DEFLATE block.
const maxStored = 0xFFFF

// Append wraps src in a zlib stream of uncompressed blocks and appends the
// stream to dst.
func Append(dst, src []byte) []byte {
	sum := adler32.Checksum(src)
	dst = append(dst, 0x78, 0x01) // deflate, 32K window, fastest
	for {
		n := len(src)
		final := byte(1)
		if n > maxStored {
			n = maxStored
			final = 0
		}
		l := uint16(n)
		dst = append(dst, final, byte(l), byte(l>>8), byte(^l), byte(^l>>8))
		dst = append(dst, src[:n]...)
		src = src[n:]
		if final == 1 {
			break
		}
	}
	return append(dst, byte(sum>>24), byte(sum>>16), byte(sum>>8), byte(sum))
}

// Zlib returns src as a complete zlib stream.
func Zlib(src []byte) []byte {
	return Append(make([]byte, 0, len(src)+11+5*(len(src)/maxStored)), src)
}
