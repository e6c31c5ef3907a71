// Package sha256x implements the classical Merkle-Damgård SHA-256
// algorithm: message padding with a single 1-bit then zero bits to a
// 448-mod-512 boundary followed by a 64-bit big-endian bit length,
// sequential 512-bit chunk processing, the standard sigma/Sigma/Ch/Maj
// round functions, and the 64-entry round constant table.
//
// Sum returns the 64-character lowercase hex digest as a string, not the
// raw 32-byte digest.
package sha256x

import "fmt"

var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var iv = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

func rrotate(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}

func sigma0(x uint32) uint32 {
	return rrotate(x, 7) ^ rrotate(x, 18) ^ (x >> 3)
}

func sigma1(x uint32) uint32 {
	return rrotate(x, 17) ^ rrotate(x, 19) ^ (x >> 10)
}

func sum0(x uint32) uint32 {
	return rrotate(x, 2) ^ rrotate(x, 13) ^ rrotate(x, 22)
}

func sum1(x uint32) uint32 {
	return rrotate(x, 6) ^ rrotate(x, 11) ^ rrotate(x, 25)
}

func choice(e, f, g uint32) uint32 {
	return (e & f) ^ (^e & g)
}

func majority(a, b, c uint32) uint32 {
	return (a & b) ^ (a & c) ^ (b & c)
}

// pad appends the 1-bit, zero bits and the 64-bit big-endian length in bits
// so the result is a whole number of 512-bit (64-byte) chunks.
func pad(message []byte) []byte {
	bitLen := uint64(len(message)) * 8

	padded := make([]byte, len(message), len(message)+64+8)
	copy(padded, message)

	padded = append(padded, 0x80)
	for len(padded)%64 != 56 {
		padded = append(padded, 0x00)
	}

	for i := 7; i >= 0; i-- {
		padded = append(padded, byte(bitLen>>(uint(i)*8)))
	}

	return padded
}

func messageSchedule(chunk []byte) [64]uint32 {
	var w [64]uint32

	for i := 0; i < 16; i++ {
		w[i] = uint32(chunk[i*4])<<24 | uint32(chunk[i*4+1])<<16 |
			uint32(chunk[i*4+2])<<8 | uint32(chunk[i*4+3])
	}

	for i := 16; i < 64; i++ {
		w[i] = w[i-16] + sigma0(w[i-15]) + w[i-7] + sigma1(w[i-2])
	}

	return w
}

// Sum256 computes the raw 8-word digest state for message.
func Sum256(message []byte) [8]uint32 {
	h := iv
	padded := pad(message)

	for chunkStart := 0; chunkStart < len(padded); chunkStart += 64 {
		chunk := padded[chunkStart : chunkStart+64]
		w := messageSchedule(chunk)

		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

		for i := 0; i < 64; i++ {
			t1 := hh + sum1(e) + choice(e, f, g) + k[i] + w[i]
			t2 := sum0(a) + majority(a, b, c)

			hh = g
			g = f
			f = e
			e = d + t1
			d = c
			c = b
			b = a
			a = t1 + t2
		}

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += f
		h[6] += g
		h[7] += hh
	}

	return h
}

// Sum returns the 64-character lowercase hexadecimal digest of message.
func Sum(message []byte) string {
	h := Sum256(message)

	hash := make([]byte, 0, 64)
	for _, word := range h {
		hash = append(hash, []byte(fmt.Sprintf("%08x", word))...)
	}

	return string(hash)
}
