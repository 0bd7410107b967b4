package column

import "github.com/pkg/errors"

// Values is an ordered, homogeneous sequence of primitive values.
// The only implementation understood by this module is *Slice[T].
type Values interface {
	// Type returns the element type. It never changes for a given sequence.
	Type() Type
	// Len returns the number of elements.
	Len() int
	// Truncate drops every element at index n and beyond.
	Truncate(n int)
}

// Slice is the Values implementation backed by a Go slice.
type Slice[T Primitive] struct {
	Data []T
}

var _ Values = (*Slice[uint8])(nil)

// NewSlice wraps data, which is not copied.
func NewSlice[T Primitive](data ...T) *Slice[T] {
	return &Slice[T]{Data: data}
}

func (s *Slice[T]) Type() Type {
	return TypeOf[T]()
}

func (s *Slice[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Data)
}

func (s *Slice[T]) isNil() bool {
	return s == nil
}

// IsNil reports whether v is nil or a nil *Slice.
func IsNil(v Values) bool {
	if v == nil {
		return true
	}
	n, ok := v.(interface{ isNil() bool })
	return ok && n.isNil()
}

func (s *Slice[T]) Truncate(n int) {
	if s != nil && n >= 0 && n < len(s.Data) {
		s.Data = s.Data[:n]
	}
}

// NewValues returns an empty sequence of type t with room for capacity elements.
func NewValues(t Type, capacity int) (Values, error) {
	if capacity < 0 {
		capacity = 0
	}
	switch t {
	case Uint8:
		return &Slice[uint8]{Data: make([]uint8, 0, capacity)}, nil
	case Uint16:
		return &Slice[uint16]{Data: make([]uint16, 0, capacity)}, nil
	case Uint32:
		return &Slice[uint32]{Data: make([]uint32, 0, capacity)}, nil
	case Uint64:
		return &Slice[uint64]{Data: make([]uint64, 0, capacity)}, nil
	case Int8:
		return &Slice[int8]{Data: make([]int8, 0, capacity)}, nil
	case Int16:
		return &Slice[int16]{Data: make([]int16, 0, capacity)}, nil
	case Int32:
		return &Slice[int32]{Data: make([]int32, 0, capacity)}, nil
	case Int64:
		return &Slice[int64]{Data: make([]int64, 0, capacity)}, nil
	case Float32:
		return &Slice[float32]{Data: make([]float32, 0, capacity)}, nil
	case Float64:
		return &Slice[float64]{Data: make([]float64, 0, capacity)}, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "type tag %d", uint8(t))
	}
}
