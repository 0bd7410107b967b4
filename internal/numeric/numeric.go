// Package numeric implements a lossless transform for columns of wide
// numeric values. Integers are stored as zigzag-encoded deltas, floats as
// the xor of consecutive bit patterns, both as uvarints. Sorted or slowly
// changing columns shrink to one or two bytes per element before any
// entropy coder runs.
//
// Stream layout:
//
//	[magic 'N'][type tag][uvarint count][count uvarints]
package numeric

import (
	"encoding/binary"
	"math"

	"github.com/hstreamdb/hstream-codec/column"
	"github.com/pkg/errors"
)

const magic byte = 'N'

var (
	// ErrCorrupt is returned for a stream that does not follow the layout.
	ErrCorrupt = errors.New("numeric: corrupt stream")
	// ErrTypeMismatch is returned when a stream is decoded into a sequence
	// of a different type than it was encoded from. It matches
	// column.ErrUnsupportedType.
	ErrTypeMismatch = errors.Wrap(column.ErrUnsupportedType, "numeric: type mismatch")
)

// Supports reports whether t can be transformed. Single-byte types gain
// nothing from it and are excluded.
func Supports(t column.Type) bool {
	return t.Valid() && t.Size() > 1
}

// Encode appends the transformed form of v to dst.
func Encode(dst []byte, v column.Values) ([]byte, error) {
	if column.IsNil(v) || !Supports(v.Type()) {
		return dst, errors.Wrapf(column.ErrUnsupportedType, "numeric: %T", v)
	}
	dst = append(dst, magic, byte(v.Type()))
	dst = binary.AppendUvarint(dst, uint64(v.Len()))

	switch s := v.(type) {
	case *column.Slice[uint16]:
		return encodeInts(dst, s.Data), nil
	case *column.Slice[uint32]:
		return encodeInts(dst, s.Data), nil
	case *column.Slice[uint64]:
		return encodeInts(dst, s.Data), nil
	case *column.Slice[int16]:
		return encodeInts(dst, s.Data), nil
	case *column.Slice[int32]:
		return encodeInts(dst, s.Data), nil
	case *column.Slice[int64]:
		return encodeInts(dst, s.Data), nil
	case *column.Slice[float32]:
		return encodeFloats(dst, s.Data, func(x float32) uint64 { return uint64(math.Float32bits(x)) }), nil
	case *column.Slice[float64]:
		return encodeFloats(dst, s.Data, math.Float64bits), nil
	}
	return dst, errors.Wrapf(column.ErrUnsupportedType, "numeric: %T", v)
}

// Decode appends the values held in src to out and returns how many were
// appended. out is left at its original length on error.
func Decode(out column.Values, src []byte) (int, error) {
	if column.IsNil(out) || !Supports(out.Type()) {
		return 0, errors.Wrapf(column.ErrUnsupportedType, "numeric: %T", out)
	}
	if len(src) < 2 || src[0] != magic {
		return 0, errors.Wrap(ErrCorrupt, "missing header")
	}
	if t := column.Type(src[1]); t != out.Type() {
		return 0, errors.Wrapf(ErrTypeMismatch, "stream holds %s, output is %s", t, out.Type())
	}
	count, k := binary.Uvarint(src[2:])
	if k <= 0 {
		return 0, errors.Wrap(ErrCorrupt, "bad element count")
	}
	body := src[2+k:]
	// every element takes at least one byte
	if count > uint64(len(body)) {
		return 0, errors.Wrapf(ErrCorrupt, "%d elements in %d bytes", count, len(body))
	}
	n := int(count)

	mark := out.Len()
	var (
		rest []byte
		err  error
	)
	switch s := out.(type) {
	case *column.Slice[uint16]:
		rest, err = decodeInts(s, body, n)
	case *column.Slice[uint32]:
		rest, err = decodeInts(s, body, n)
	case *column.Slice[uint64]:
		rest, err = decodeInts(s, body, n)
	case *column.Slice[int16]:
		rest, err = decodeInts(s, body, n)
	case *column.Slice[int32]:
		rest, err = decodeInts(s, body, n)
	case *column.Slice[int64]:
		rest, err = decodeInts(s, body, n)
	case *column.Slice[float32]:
		rest, err = decodeFloats(s, body, n, func(b uint64) float32 { return math.Float32frombits(uint32(b)) })
	case *column.Slice[float64]:
		rest, err = decodeFloats(s, body, n, math.Float64frombits)
	default:
		return 0, errors.Wrapf(column.ErrUnsupportedType, "numeric: %T", out)
	}
	if err == nil && len(rest) != 0 {
		err = errors.Wrapf(ErrCorrupt, "%d trailing bytes", len(rest))
	}
	if err != nil {
		out.Truncate(mark)
		return 0, err
	}
	return n, nil
}

type integer interface {
	uint16 | uint32 | uint64 | int16 | int32 | int64
}

func encodeInts[T integer](dst []byte, data []T) []byte {
	var prev uint64
	for _, x := range data {
		cur := uint64(x)
		d := int64(cur - prev)
		dst = binary.AppendUvarint(dst, uint64(d<<1)^uint64(d>>63))
		prev = cur
	}
	return dst
}

func decodeInts[T integer](s *column.Slice[T], src []byte, n int) ([]byte, error) {
	var prev uint64
	for i := 0; i < n; i++ {
		u, k := binary.Uvarint(src)
		if k <= 0 {
			return nil, errors.Wrapf(ErrCorrupt, "element %d", i)
		}
		src = src[k:]
		prev += uint64(int64(u>>1) ^ -int64(u&1))
		s.Data = append(s.Data, T(prev))
	}
	return src, nil
}

func encodeFloats[T float32 | float64](dst []byte, data []T, bits func(T) uint64) []byte {
	var prev uint64
	for _, x := range data {
		cur := bits(x)
		dst = binary.AppendUvarint(dst, cur^prev)
		prev = cur
	}
	return dst
}

func decodeFloats[T float32 | float64](s *column.Slice[T], src []byte, n int, frombits func(uint64) T) ([]byte, error) {
	var prev uint64
	for i := 0; i < n; i++ {
		u, k := binary.Uvarint(src)
		if k <= 0 {
			return nil, errors.Wrapf(ErrCorrupt, "element %d", i)
		}
		src = src[k:]
		prev ^= u
		s.Data = append(s.Data, frombits(prev))
	}
	return src, nil
}
