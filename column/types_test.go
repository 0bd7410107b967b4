package column

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestTypeSizes(t *testing.T) {
	t.Parallel()
	want := map[Type]int{
		Uint8: 1, Int8: 1,
		Uint16: 2, Int16: 2,
		Uint32: 4, Int32: 4, Float32: 4,
		Uint64: 8, Int64: 8, Float64: 8,
	}
	require.Len(t, Types(), len(want))
	for typ, size := range want {
		require.Equal(t, size, typ.Size(), typ.String())
		require.True(t, typ.Valid())
	}
	require.False(t, Type(0).Valid())
	require.Equal(t, "UNKNOWN", Type(0).String())
}

func TestTypesIsACopy(t *testing.T) {
	t.Parallel()
	all := Types()
	all[0] = Float64
	require.Equal(t, Uint8, Types()[0])
}

func TestParseType(t *testing.T) {
	t.Parallel()
	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		require.NoError(t, err)
		require.Equal(t, typ, got)
	}
	_, err := ParseType("u128")
	require.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestSliceType(t *testing.T) {
	t.Parallel()
	require.Equal(t, Uint8, NewSlice[uint8]().Type())
	require.Equal(t, Int16, NewSlice[int16]().Type())
	require.Equal(t, Float32, NewSlice[float32]().Type())
	require.Equal(t, Float64, NewSlice[float64]().Type())

	for _, typ := range Types() {
		v, err := NewValues(typ, 4)
		require.NoError(t, err)
		require.Equal(t, typ, v.Type())
		require.Equal(t, 0, v.Len())
	}
	_, err := NewValues(Type(0), 1)
	require.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestSliceTruncate(t *testing.T) {
	t.Parallel()
	s := NewSlice[int32](1, 2, 3, 4)
	s.Truncate(10)
	require.Equal(t, 4, s.Len())
	s.Truncate(-1)
	require.Equal(t, 4, s.Len())
	s.Truncate(2)
	require.Equal(t, []int32{1, 2}, s.Data)
	s.Truncate(0)
	require.Equal(t, 0, s.Len())
}
