package test_util

import (
	"math"
	"math/rand"
	"time"

	"github.com/hstreamdb/hstream-codec/column"
)

// Sizes are the element counts every round-trip test covers.
var Sizes = []int{0, 1, 100, 10000, 100000}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// RandomBytes returns n random bytes.
func RandomBytes(n int) []byte {
	r := newRand()
	b := make([]byte, n)
	r.Read(b)
	return b
}

// RandomSlice returns n random finite values of T. Integers cover the full
// range of T; floats are drawn from a narrow band around zero with a random
// sign so that neighbouring values share high bits, as real columns do.
func RandomSlice[T column.Primitive](n int) *column.Slice[T] {
	r := newRand()
	data := make([]T, n)
	for i := range data {
		data[i] = randomValue[T](r)
	}
	return column.NewSlice(data...)
}

// RandomValues returns n random values of type t.
func RandomValues(t column.Type, n int) column.Values {
	switch t {
	case column.Uint8:
		return RandomSlice[uint8](n)
	case column.Uint16:
		return RandomSlice[uint16](n)
	case column.Uint32:
		return RandomSlice[uint32](n)
	case column.Uint64:
		return RandomSlice[uint64](n)
	case column.Int8:
		return RandomSlice[int8](n)
	case column.Int16:
		return RandomSlice[int16](n)
	case column.Int32:
		return RandomSlice[int32](n)
	case column.Int64:
		return RandomSlice[int64](n)
	case column.Float32:
		return RandomSlice[float32](n)
	case column.Float64:
		return RandomSlice[float64](n)
	}
	return nil
}

func randomValue[T column.Primitive](r *rand.Rand) T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = uint8(r.Uint32())
	case *uint16:
		*p = uint16(r.Uint32())
	case *uint32:
		*p = r.Uint32()
	case *uint64:
		*p = r.Uint64()
	case *int8:
		*p = int8(r.Uint32())
	case *int16:
		*p = int16(r.Uint32())
	case *int32:
		*p = int32(r.Uint32())
	case *int64:
		*p = int64(r.Uint64())
	case *float32:
		*p = float32(signed(r) * r.Float64() * 1e3)
	case *float64:
		*p = signed(r) * r.Float64() * math.Pi * 1e6
	}
	return v
}

func signed(r *rand.Rand) float64 {
	if r.Intn(2) == 0 {
		return -1
	}
	return 1
}
