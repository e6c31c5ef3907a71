package consts

import "testing"

func TestKeySizeDerivedFields(t *testing.T) {
	cases := []struct {
		size       KeySize
		wantNk     int
		wantRounds int
	}{
		{AES128, 4, 10},
		{AES192, 6, 12},
		{AES256, 8, 14},
	}

	for _, c := range cases {
		if !c.size.Valid() {
			t.Fatalf("%s.Valid() = false", c.size)
		}
		if got := c.size.Nk(); got != c.wantNk {
			t.Errorf("%s.Nk() = %d, want %d", c.size, got, c.wantNk)
		}
		if got := c.size.Rounds(); got != c.wantRounds {
			t.Errorf("%s.Rounds() = %d, want %d", c.size, got, c.wantRounds)
		}
		if got := c.size.ExpandedKeySize(); got != BLOCK_SIZE*(c.wantRounds+1) {
			t.Errorf("%s.ExpandedKeySize() = %d, want %d", c.size, got, BLOCK_SIZE*(c.wantRounds+1))
		}
	}
}

func TestParseKeySize(t *testing.T) {
	if size, ok := ParseKeySize("aes256"); !ok || size != AES256 {
		t.Fatalf("ParseKeySize(aes256) = (%v, %v), want (AES256, true)", size, ok)
	}

	if _, ok := ParseKeySize("aes512"); ok {
		t.Fatalf("ParseKeySize(aes512) = ok, want not ok")
	}
}

func TestInvalidKeySize(t *testing.T) {
	if KeySize(20).Valid() {
		t.Fatalf("KeySize(20).Valid() = true, want false")
	}
}
