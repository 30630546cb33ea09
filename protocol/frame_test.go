package protocol

import (
	"bytes"
	"testing"
)

// frame3_1000 carries the values 3 and 1000 with sequence 0x11.
var frame3_1000 = []byte{0x08, 0x11, 0x03, 0x87, 0x68, 0x74, 0x5C, 0x7E}

func body3_1000(out OutputBuffer) {
	AppendUint(out, 3)
	AppendUint(out, 1000)
}

func TestEncodeFrame(t *testing.T) {
	var out ScratchOutput
	if err := EncodeFrame(&out, 0x11, body3_1000); err != nil {
		t.Fatalf("EncodeFrame failed: %v", err)
	}
	if !bytes.Equal(out.Bytes(), frame3_1000) {
		t.Errorf("EncodeFrame = % x, want % x", out.Bytes(), frame3_1000)
	}
}

func TestEncodeFrameTooLong(t *testing.T) {
	var out ScratchOutput
	AppendUint(&out, 1)
	before := out.CurPosition()

	err := EncodeFrame(&out, SeqDest, func(o OutputBuffer) {
		o.Output(make([]byte, MaxPayload+1))
	})
	if err != ErrFrameTooLong {
		t.Fatalf("EncodeFrame = %v, want %v", err, ErrFrameTooLong)
	}
	if out.CurPosition() != before {
		t.Error("oversized frame left bytes in the buffer")
	}
}

func decodeAll(d *Decoder, in InputBuffer) [][]byte {
	var payloads [][]byte
	for {
		f, ok := d.Next(in)
		if !ok {
			return payloads
		}
		payloads = append(payloads, append([]byte(nil), f.Payload...))
	}
}

func TestDecoderResync(t *testing.T) {
	corrupt := append([]byte(nil), frame3_1000...)
	corrupt[3] ^= 0x01

	var stream []byte
	stream = append(stream, 0x00, 0x42, 0x99) // line noise
	stream = append(stream, SyncByte)
	stream = append(stream, frame3_1000...)
	stream = append(stream, corrupt...)
	stream = append(stream, frame3_1000...)

	in := NewFifoBuffer(256)
	in.Write(stream)
	var d Decoder
	got := decodeAll(&d, in)

	if len(got) != 2 {
		t.Fatalf("decoded %d frames, want 2", len(got))
	}
	want := frame3_1000[HeaderSize : len(frame3_1000)-TrailerSize]
	for _, p := range got {
		if !bytes.Equal(p, want) {
			t.Errorf("payload = % x, want % x", p, want)
		}
	}
	if d.Dropped == 0 {
		t.Error("no frames counted as dropped")
	}
	if in.Available() != 0 {
		t.Errorf("%d bytes left in buffer", in.Available())
	}
}

func TestDecoderPartialFrame(t *testing.T) {
	in := NewFifoBuffer(16)
	var d Decoder

	in.Write(frame3_1000[:5])
	if _, ok := d.Next(in); ok {
		t.Fatal("decoded a frame from a partial one")
	}
	if in.Available() != 5 {
		t.Fatalf("partial frame consumed: %d bytes left", in.Available())
	}

	in.Write(frame3_1000[5:])
	if _, ok := d.Next(in); !ok {
		t.Fatal("completed frame not decoded")
	}

	// The second copy wraps around the 16-byte ring.
	in.Write(frame3_1000)
	f, ok := d.Next(in)
	if !ok {
		t.Fatal("wrapped frame not decoded")
	}
	if f.Seq != 0x11 || len(f.Payload) != 3 {
		t.Errorf("got seq %#x payload % x", f.Seq, f.Payload)
	}
}

func TestNextSeq(t *testing.T) {
	if got := NextSeq(0x10); got != 0x11 {
		t.Errorf("NextSeq(0x10) = %#x", got)
	}
	if got := NextSeq(0x1F); got != 0x10 {
		t.Errorf("NextSeq(0x1F) = %#x", got)
	}
}
