package rsax

import (
	"encoding/binary"

	"github.com/wedkarz02/cryptfile/internal/bignum"
)

// Keys are serialized as a fixed-capacity-buffer record: a 2-byte
// big-endian length prefix followed by a fixed-size buffer, per field, in
// a documented field order. The fixed 2-byte length (rather than a
// host-native word size) keeps the encoded form bit-exact across
// architectures.

const lenFieldSize = 2

func putField(dst []byte, value []byte, bufSize int) {
	binary.BigEndian.PutUint16(dst[:lenFieldSize], uint16(len(value)))
	copy(dst[lenFieldSize:lenFieldSize+bufSize], value)
}

func getField(src []byte, bufSize int) (length int, buf []byte, err error) {
	length = int(binary.BigEndian.Uint16(src[:lenFieldSize]))
	if length > bufSize {
		return 0, nil, ErrInvalidEncodedKeyField
	}
	buf = src[lenFieldSize : lenFieldSize+bufSize]
	return length, buf, nil
}

// publicRecordSize is the total encoded size of a PublicKey: (len, N) +
// (len, E).
func publicRecordSize() int {
	return (lenFieldSize + EncryptSize) + (lenFieldSize + 1)
}

// privateRecordSize is the total encoded size of a PrivateKey: (len, N) +
// (len, E) + (len, D) + (len, P) + (len, Q).
func privateRecordSize() int {
	return (lenFieldSize+EncryptSize)*2 + (lenFieldSize + 1) + (lenFieldSize+BufferSize)*2
}

// EncodePublicKey serializes pub into the fixed (ns, n, es, e) record.
func EncodePublicKey(pub *PublicKey) ([]byte, error) {
	nBytes := bignum.ExportBE(pub.N)
	eBytes := bignum.ExportBE(pub.E)

	if len(nBytes) > EncryptSize || len(eBytes) > 1 {
		return nil, ErrInvalidEncodedKeyField
	}

	record := make([]byte, publicRecordSize())
	offset := 0

	putField(record[offset:], nBytes, EncryptSize)
	offset += lenFieldSize + EncryptSize

	putField(record[offset:], eBytes, 1)

	return record, nil
}

// DecodePublicKey parses a record produced by EncodePublicKey. size must
// exactly equal publicRecordSize(), otherwise ErrInvalidEncodedKeyLen.
func DecodePublicKey(data []byte) (*PublicKey, error) {
	if len(data) != publicRecordSize() {
		return nil, ErrInvalidEncodedKeyLen
	}

	offset := 0
	nLen, nBuf, err := getField(data[offset:], EncryptSize)
	if err != nil {
		return nil, err
	}
	offset += lenFieldSize + EncryptSize

	eLen, eBuf, err := getField(data[offset:], 1)
	if err != nil {
		return nil, err
	}

	return &PublicKey{
		N: bignum.ImportBE(nBuf[:nLen]),
		E: bignum.ImportBE(eBuf[:eLen]),
	}, nil
}

// EncodePrivateKey serializes priv into the fixed
// (ns, n, es, e, ds, d, ps, p, qs, q) record.
func EncodePrivateKey(priv *PrivateKey) ([]byte, error) {
	nBytes := bignum.ExportBE(priv.N)
	eBytes := bignum.ExportBE(priv.E)
	dBytes := bignum.ExportBE(priv.D)
	pBytes := bignum.ExportBE(priv.P)
	qBytes := bignum.ExportBE(priv.Q)

	if len(nBytes) > EncryptSize || len(eBytes) > 1 || len(dBytes) > EncryptSize ||
		len(pBytes) > BufferSize || len(qBytes) > BufferSize {
		return nil, ErrInvalidEncodedKeyField
	}

	record := make([]byte, privateRecordSize())
	offset := 0

	putField(record[offset:], nBytes, EncryptSize)
	offset += lenFieldSize + EncryptSize

	putField(record[offset:], eBytes, 1)
	offset += lenFieldSize + 1

	putField(record[offset:], dBytes, EncryptSize)
	offset += lenFieldSize + EncryptSize

	putField(record[offset:], pBytes, BufferSize)
	offset += lenFieldSize + BufferSize

	putField(record[offset:], qBytes, BufferSize)

	return record, nil
}

// DecodePrivateKey parses a record produced by EncodePrivateKey. size must
// exactly equal privateRecordSize(), otherwise ErrInvalidEncodedKeyLen.
func DecodePrivateKey(data []byte) (*PrivateKey, error) {
	if len(data) != privateRecordSize() {
		return nil, ErrInvalidEncodedKeyLen
	}

	offset := 0
	nLen, nBuf, err := getField(data[offset:], EncryptSize)
	if err != nil {
		return nil, err
	}
	offset += lenFieldSize + EncryptSize

	eLen, eBuf, err := getField(data[offset:], 1)
	if err != nil {
		return nil, err
	}
	offset += lenFieldSize + 1

	dLen, dBuf, err := getField(data[offset:], EncryptSize)
	if err != nil {
		return nil, err
	}
	offset += lenFieldSize + EncryptSize

	pLen, pBuf, err := getField(data[offset:], BufferSize)
	if err != nil {
		return nil, err
	}
	offset += lenFieldSize + BufferSize

	qLen, qBuf, err := getField(data[offset:], BufferSize)
	if err != nil {
		return nil, err
	}

	return &PrivateKey{
		N: bignum.ImportBE(nBuf[:nLen]),
		E: bignum.ImportBE(eBuf[:eLen]),
		D: bignum.ImportBE(dBuf[:dLen]),
		P: bignum.ImportBE(pBuf[:pLen]),
		Q: bignum.ImportBE(qBuf[:qLen]),
	}, nil
}
