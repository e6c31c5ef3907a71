// Package base64x implements standard base64 (RFC 4648 alphabet, '='
// padding, no line breaks): 3-byte groups map to 4 symbols on encode, and
// decode halts at the first '=' in a 4-symbol group, emitting
// group_symbols-1 bytes.
package base64x

import "errors"

// ErrInvalidSymbol is returned by Decode when the input contains a byte
// that is not part of the base64 alphabet and is not the '=' padding
// character.
var ErrInvalidSymbol = errors.New("base64x: invalid symbol")

const symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var symbolIndex [256]int8

func init() {
	for i := range symbolIndex {
		symbolIndex[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		symbolIndex[symbols[i]] = int8(i)
	}
}

func mapEncode(tmp [3]byte) [4]byte {
	var buf [4]byte
	buf[0] = (tmp[0] & 0xfc) >> 2
	buf[1] = ((tmp[0] & 0x03) << 4) + ((tmp[1] & 0xf0) >> 4)
	buf[2] = ((tmp[1] & 0x0f) << 2) + ((tmp[2] & 0xc0) >> 6)
	buf[3] = tmp[2] & 0x3f
	return buf
}

func mapDecode(tmp [4]byte) [3]byte {
	var buf [3]byte
	buf[0] = (tmp[0] << 2) | (tmp[1] >> 4)
	buf[1] = (tmp[1] << 4) | (tmp[2] >> 2)
	buf[2] = (tmp[2] << 6) | tmp[3]
	return buf
}

// Encode returns the base64 encoding of message. Output length is
// ceil(len(message)/3)*4.
func Encode(message []byte) string {
	resultSize := ((len(message) + 2) / 3) * 4
	result := make([]byte, 0, resultSize)

	var i int
	for i = 0; i+3 <= len(message); i += 3 {
		var tmp [3]byte
		copy(tmp[:], message[i:i+3])

		buf := mapEncode(tmp)
		result = append(result, symbols[buf[0]], symbols[buf[1]], symbols[buf[2]], symbols[buf[3]])
	}

	if rem := len(message) - i; rem > 0 {
		var tmp [3]byte
		copy(tmp[:], message[i:])

		buf := mapEncode(tmp)
		bytesUsed := rem + 1

		for idx := 0; idx < bytesUsed; idx++ {
			result = append(result, symbols[buf[idx]])
		}
		for idx := bytesUsed; idx < 4; idx++ {
			result = append(result, '=')
		}
	}

	return string(result)
}

// Decode reverses Encode. It returns ErrInvalidSymbol if message contains a
// byte outside the base64 alphabet that isn't '='. Decoding does not
// require the input length to be a multiple of 4; a short trailing group is
// simply ignored, consuming input one 4-symbol group at a time.
func Decode(message string) ([]byte, error) {
	result := make([]byte, 0, len(message)*3/4)

	for i := 0; i+4 <= len(message); i += 4 {
		var tmp [4]byte
		bytesFound := 0

		for j := 0; j < 4; j++ {
			ch := message[i+j]
			if ch == '=' {
				break
			}

			idx := symbolIndex[ch]
			if idx < 0 {
				return nil, ErrInvalidSymbol
			}

			tmp[j] = byte(idx)
			bytesFound++
		}

		if bytesFound == 0 {
			continue
		}

		buf := mapDecode(tmp)
		result = append(result, buf[:bytesFound-1]...)
	}

	return result, nil
}
