package column

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/pkg/errors"
)

var be = binary.BigEndian

// AppendBytes appends the big-endian encoding of v to dst and returns the
// extended buffer. Single-byte types are copied unchanged.
func AppendBytes(dst []byte, v Values) ([]byte, error) {
	if IsNil(v) {
		return dst, errors.Wrap(ErrUnsupportedType, "nil values")
	}
	switch s := v.(type) {
	case *Slice[uint8]:
		return append(dst, s.Data...), nil
	case *Slice[int8]:
		return appendEncoded(dst, s.Data, 1, func(b []byte, x int8) []byte {
			return append(b, uint8(x))
		}), nil
	case *Slice[uint16]:
		return appendEncoded(dst, s.Data, 2, be.AppendUint16), nil
	case *Slice[int16]:
		return appendEncoded(dst, s.Data, 2, func(b []byte, x int16) []byte {
			return be.AppendUint16(b, uint16(x))
		}), nil
	case *Slice[uint32]:
		return appendEncoded(dst, s.Data, 4, be.AppendUint32), nil
	case *Slice[int32]:
		return appendEncoded(dst, s.Data, 4, func(b []byte, x int32) []byte {
			return be.AppendUint32(b, uint32(x))
		}), nil
	case *Slice[uint64]:
		return appendEncoded(dst, s.Data, 8, be.AppendUint64), nil
	case *Slice[int64]:
		return appendEncoded(dst, s.Data, 8, func(b []byte, x int64) []byte {
			return be.AppendUint64(b, uint64(x))
		}), nil
	case *Slice[float32]:
		return appendEncoded(dst, s.Data, 4, func(b []byte, x float32) []byte {
			return be.AppendUint32(b, math.Float32bits(x))
		}), nil
	case *Slice[float64]:
		return appendEncoded(dst, s.Data, 8, func(b []byte, x float64) []byte {
			return be.AppendUint64(b, math.Float64bits(x))
		}), nil
	default:
		return dst, errors.Wrapf(ErrUnsupportedType, "cannot marshal %T", v)
	}
}

// AppendFromBytes decodes big-endian elements from src and appends them to v.
// It returns the number of elements appended. v is left untouched on error.
func AppendFromBytes(v Values, src []byte) (int, error) {
	if IsNil(v) {
		return 0, errors.Wrap(ErrUnsupportedType, "nil values")
	}
	t := v.Type()
	size := t.Size()
	if size == 0 {
		return 0, errors.Wrapf(ErrUnsupportedType, "cannot unmarshal into %T", v)
	}
	if len(src)%size != 0 {
		return 0, errors.Wrapf(ErrLengthMismatch,
			"%d bytes is not a multiple of the %s width %d", len(src), t, size)
	}

	switch s := v.(type) {
	case *Slice[uint8]:
		s.Data = append(s.Data, src...)
	case *Slice[int8]:
		decodeInto(s, src, 1, func(b []byte) int8 { return int8(b[0]) })
	case *Slice[uint16]:
		decodeInto(s, src, 2, be.Uint16)
	case *Slice[int16]:
		decodeInto(s, src, 2, func(b []byte) int16 { return int16(be.Uint16(b)) })
	case *Slice[uint32]:
		decodeInto(s, src, 4, be.Uint32)
	case *Slice[int32]:
		decodeInto(s, src, 4, func(b []byte) int32 { return int32(be.Uint32(b)) })
	case *Slice[uint64]:
		decodeInto(s, src, 8, be.Uint64)
	case *Slice[int64]:
		decodeInto(s, src, 8, func(b []byte) int64 { return int64(be.Uint64(b)) })
	case *Slice[float32]:
		decodeInto(s, src, 4, func(b []byte) float32 { return math.Float32frombits(be.Uint32(b)) })
	case *Slice[float64]:
		decodeInto(s, src, 8, func(b []byte) float64 { return math.Float64frombits(be.Uint64(b)) })
	default:
		return 0, errors.Wrapf(ErrUnsupportedType, "cannot unmarshal into %T", v)
	}
	return len(src) / size, nil
}

// FromBytes decodes src into a new sequence of type t.
func FromBytes(t Type, src []byte) (Values, error) {
	size := t.Size()
	if size == 0 {
		return nil, errors.Wrapf(ErrUnsupportedType, "type tag %d", uint8(t))
	}
	v, err := NewValues(t, len(src)/size)
	if err != nil {
		return nil, err
	}
	if _, err = AppendFromBytes(v, src); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodedLen returns the number of bytes AppendBytes produces for v.
func EncodedLen(v Values) int {
	if IsNil(v) {
		return 0
	}
	return v.Len() * v.Type().Size()
}

func appendEncoded[T Primitive](dst []byte, data []T, size int, put func([]byte, T) []byte) []byte {
	dst = slices.Grow(dst, len(data)*size)
	for _, x := range data {
		dst = put(dst, x)
	}
	return dst
}

func decodeInto[T Primitive](s *Slice[T], src []byte, size int, get func([]byte) T) {
	s.Data = slices.Grow(s.Data, len(src)/size)
	for i := 0; i < len(src); i += size {
		s.Data = append(s.Data, get(src[i:i+size]))
	}
}
