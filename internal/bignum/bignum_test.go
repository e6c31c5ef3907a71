package bignum

import (
	"math/big"
	"testing"
)

func TestImportExportRoundTrip(t *testing.T) {
	orig := []byte{0x01, 0x02, 0x03, 0xff}
	n := ImportBE(orig)

	if got := ExportBE(n); string(got) != string(orig) {
		t.Fatalf("ExportBE(ImportBE(%x)) = %x, want %x", orig, got, orig)
	}
}

func TestExportBEZero(t *testing.T) {
	if got := ExportBE(big.NewInt(0)); len(got) != 0 {
		t.Fatalf("ExportBE(0) = %x, want empty", got)
	}
}

func TestModExp(t *testing.T) {
	got := ModExp(big.NewInt(4), big.NewInt(13), big.NewInt(497))
	if got.Cmp(big.NewInt(445)) != 0 {
		t.Fatalf("ModExp(4, 13, 497) = %s, want 445", got)
	}
}

func TestModInverse(t *testing.T) {
	inv, err := ModInverse(big.NewInt(3), big.NewInt(11))
	if err != nil {
		t.Fatalf("ModInverse: %v", err)
	}
	if inv.Cmp(big.NewInt(4)) != 0 {
		t.Fatalf("ModInverse(3, 11) = %s, want 4", inv)
	}

	if _, err := ModInverse(big.NewInt(2), big.NewInt(4)); err != ErrNoInverse {
		t.Fatalf("ModInverse(2, 4) = %v, want ErrNoInverse", err)
	}
}

func TestNextPrime(t *testing.T) {
	p := NextPrime(big.NewInt(14))
	if p.Cmp(big.NewInt(17)) != 0 {
		t.Fatalf("NextPrime(14) = %s, want 17", p)
	}
}
