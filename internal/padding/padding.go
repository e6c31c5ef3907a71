// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package padding implements the zero-byte padding used by the ECB mode
// wrapper. This is the only padding scheme the hybrid and symmetric
// containers use: it is length-ambiguous when the plaintext legitimately
// ends in zero bytes (see aesengine.DecryptECB), a known limitation of
// zero-byte padding rather than a bug.
package padding

import "github.com/wedkarz02/cryptfile/internal/consts"

// ZeroPad appends zero bytes until data is a multiple of the AES block
// size (ciphertext_size = ceil(plaintext_size/16)*16). Data that is
// already block-aligned is returned unpadded — the last existing block is
// the final block, there is no empty block to add.
func ZeroPad(data []byte) []byte {
	padded := make([]byte, len(data))
	copy(padded, data)

	remainder := len(padded) % consts.BLOCK_SIZE
	if remainder == 0 {
		return padded
	}

	padLen := consts.BLOCK_SIZE - remainder
	padded = append(padded, make([]byte, padLen)...)
	return padded
}

// ZeroUnpad strips trailing zero bytes. An all-zero buffer unpads to an
// empty slice.
func ZeroUnpad(padded []byte) []byte {
	end := len(padded)
	for end > 0 && padded[end-1] == 0x00 {
		end--
	}

	data := make([]byte, end)
	copy(data, padded[:end])
	return data
}
