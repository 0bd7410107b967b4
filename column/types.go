package column

import "github.com/pkg/errors"

// Type identifies the primitive element type of a column buffer.
type Type uint8

const (
	Uint8 Type = iota + 1
	Uint16
	Uint32
	Uint64
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
)

var types = []Type{Uint8, Uint16, Uint32, Uint64, Int8, Int16, Int32, Int64, Float32, Float64}

// Types returns every supported Type in declaration order. The slice is a
// copy owned by the caller.
func Types() []Type {
	return append([]Type(nil), types...)
}

// Primitive is the set of Go types a Slice may hold.
type Primitive interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64 | float32 | float64
}

// Size returns the width of one element in bytes, or 0 for an invalid Type.
func (t Type) Size() int {
	switch t {
	case Uint8, Int8:
		return 1
	case Uint16, Int16:
		return 2
	case Uint32, Int32, Float32:
		return 4
	case Uint64, Int64, Float64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether t is one of the declared types.
func (t Type) Valid() bool {
	return t.Size() != 0
}

func (t Type) String() string {
	switch t {
	case Uint8:
		return "u8"
	case Uint16:
		return "u16"
	case Uint32:
		return "u32"
	case Uint64:
		return "u64"
	case Int8:
		return "i8"
	case Int16:
		return "i16"
	case Int32:
		return "i32"
	case Int64:
		return "i64"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	default:
		return "UNKNOWN"
	}
}

// ParseType returns the Type named by s ("u8", "i32", "f64", ...).
func ParseType(s string) (Type, error) {
	for _, t := range types {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedType, "%q", s)
}

// TypeOf returns the Type tag matching T.
func TypeOf[T Primitive]() Type {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	}
	return 0
}
