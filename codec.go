/*
Package hstore – binary wire codec.

Layout, all integers signed 32-bit big-endian: entry count, then per entry
a length-prefixed key, a value length, and the value bytes. A value length
of -1 is the NULL sentinel and carries no bytes.
*/
package hstore

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgtype"
)

// nullValueLen marks a NULL value on the wire.
const nullValueLen = -1

// encodeBinary appends the wire form of h to buf and returns the extended
// slice. Pair order follows map iteration and carries no meaning.
func encodeBinary(h Hstore, buf []byte) []byte {
	buf = appendInt32(buf, int32(len(h)))
	for k, v := range h {
		buf = appendPascalString(buf, k)
		if !v.Valid {
			buf = appendInt32(buf, nullValueLen)
			continue
		}
		buf = appendPascalString(buf, v.String)
	}
	return buf
}

func appendInt32(buf []byte, v int32) []byte {
	return binary.BigEndian.AppendUint32(buf, uint32(v))
}

func appendPascalString(buf []byte, s string) []byte {
	buf = appendInt32(buf, int32(len(s)))
	return append(buf, s...)
}

// decodeBinary parses one wire value into a fresh Hstore. Decoding is
// all-or-nothing: on any error the caller receives nil, never a partially
// populated container. NULL-sentinel entries are kept with Valid == false.
func decodeBinary(src []byte) (Hstore, error) {
	count, off, err := readInt32(src, 0)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, decodeErr(ErrMalformedCount, 0, fmt.Sprintf("negative entry count %d", count))
	}
	// the count is wire data; size the map from what the buffer can
	// actually hold (12 bytes minimum per entry), not from the claim
	h := make(Hstore, min(int(count), len(src)/12))
	for i := int32(0); i < count; i++ {
		kLen, kOff, err := readInt32(src, off)
		if err != nil {
			return nil, err
		}
		if kLen < 0 {
			return nil, decodeErr(ErrMalformedKeyLength, off, fmt.Sprintf("negative key length %d", kLen))
		}
		key, kEnd, err := readString(src, kOff, int(kLen))
		if err != nil {
			return nil, err
		}

		vLen, vOff, err := readInt32(src, kEnd)
		if err != nil {
			return nil, err
		}
		if vLen == nullValueLen {
			h[key] = pgtype.Text{}
			off = vOff
			continue
		}
		if vLen < 0 {
			return nil, decodeErr(ErrMalformedValueLength, kEnd, fmt.Sprintf("negative value length %d", vLen))
		}
		val, vEnd, err := readString(src, vOff, int(vLen))
		if err != nil {
			return nil, err
		}
		h[key] = pgtype.Text{String: val, Valid: true}
		off = vEnd
	}
	if off != len(src) {
		return nil, decodeErr(ErrTrailingData, off, fmt.Sprintf("%d trailing bytes after %d entries", len(src)-off, count))
	}
	return h, nil
}

func readInt32(src []byte, off int) (int32, int, error) {
	if off+4 > len(src) {
		return 0, off, decodeErr(ErrTrailingData, off, "buffer truncated reading length")
	}
	return int32(binary.BigEndian.Uint32(src[off:])), off + 4, nil
}

// readString copies n bytes out of src starting at off. The single copy
// happens in the string conversion.
func readString(src []byte, off, n int) (string, int, error) {
	if off+n > len(src) {
		return "", off, decodeErr(ErrTrailingData, off, "buffer truncated reading string")
	}
	raw := src[off : off+n]
	if !utf8.Valid(raw) {
		return "", off, decodeErr(ErrInvalidUTF8, off, "string is not valid UTF-8")
	}
	return string(raw), off + n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the engine's
// wire format.
func (h Hstore) MarshalBinary() ([]byte, error) {
	return encodeBinary(h, nil), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler with the engine's
// wire format.
func (h *Hstore) UnmarshalBinary(data []byte) error {
	decoded, err := decodeBinary(data)
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}
