package sha256x

import "testing"

func TestSumKnownVectors(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}

	for _, c := range cases {
		got := Sum([]byte(c.input))
		if got != c.want {
			t.Errorf("Sum(%q) = %s, want %s", c.input, got, c.want)
		}
	}
}

func TestSumIsLowerHex64(t *testing.T) {
	got := Sum([]byte("arbitrary input of any length, really"))
	if len(got) != 64 {
		t.Fatalf("Sum length = %d, want 64", len(got))
	}

	for _, r := range got {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')) {
			t.Fatalf("Sum contains non-hex character %q", r)
		}
	}
}
