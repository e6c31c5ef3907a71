package padding

import (
	"bytes"
	"testing"
)

func TestZeroPadBlockAligned(t *testing.T) {
	in := []byte("Two One Nine Two")[:16]
	out := ZeroPad(in)

	if len(out) != 16 {
		t.Fatalf("ZeroPad(16-byte input) length = %d, want 16", len(out))
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("ZeroPad(16-byte input) modified an already-aligned block")
	}
}

func TestZeroPadUnaligned(t *testing.T) {
	in := []byte("hello")
	out := ZeroPad(in)

	if len(out) != 16 {
		t.Fatalf("ZeroPad(5-byte input) length = %d, want 16", len(out))
	}
	if !bytes.Equal(out[:5], in) {
		t.Fatalf("ZeroPad did not preserve the original bytes")
	}
	for _, b := range out[5:] {
		if b != 0 {
			t.Fatalf("ZeroPad padding byte = %#x, want 0x00", b)
		}
	}
}

func TestZeroUnpadStripsTrailingZeros(t *testing.T) {
	in := []byte{'h', 'i', 0, 0, 0, 0}
	out := ZeroUnpad(in)

	if !bytes.Equal(out, []byte("hi")) {
		t.Fatalf("ZeroUnpad = %q, want %q", out, "hi")
	}
}
