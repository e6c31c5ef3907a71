package base64x

import (
	"bytes"
	"testing"
)

func TestEncodeKnownVector(t *testing.T) {
	got := Encode([]byte("Many hands make light work."))
	want := "TWFueSBoYW5kcyBtYWtlIGxpZ2h0IHdvcmsu"

	if got != want {
		t.Fatalf("Encode = %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("f"),
		[]byte("fo"),
		[]byte("foo"),
		[]byte("foob"),
		[]byte("fooba"),
		[]byte("foobar"),
		{0x00, 0xff, 0x10, 0x42, 0x99},
	}

	for _, c := range cases {
		encoded := Encode(c)
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(%q): %v", encoded, err)
		}

		if !bytes.Equal(decoded, c) {
			t.Fatalf("round trip of %q: got %q", c, decoded)
		}
	}
}

func TestDecodeInvalidSymbol(t *testing.T) {
	if _, err := Decode("not valid base64!!"); err != ErrInvalidSymbol {
		t.Fatalf("Decode(invalid) = %v, want ErrInvalidSymbol", err)
	}
}
