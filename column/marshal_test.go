package column_test

import (
	"math"
	"testing"

	"github.com/hstreamdb/hstream-codec/column"
	"github.com/hstreamdb/hstream-codec/util/test_util"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMarshalInverse(t *testing.T) {
	t.Parallel()
	for _, typ := range column.Types() {
		for _, n := range []int{0, 1, 7, 1000} {
			values := test_util.RandomValues(typ, n)
			encoded, err := column.AppendBytes(nil, values)
			require.NoError(t, err)
			require.Len(t, encoded, n*typ.Size(), typ.String())
			require.Equal(t, len(encoded), column.EncodedLen(values))

			decoded, err := column.FromBytes(typ, encoded)
			require.NoError(t, err)
			require.Equal(t, values, decoded, typ.String())
		}
	}
}

func TestMarshalBigEndian(t *testing.T) {
	t.Parallel()
	cases := []struct {
		values column.Values
		want   []byte
	}{
		{column.NewSlice[uint8](0x01, 0xff), []byte{0x01, 0xff}},
		{column.NewSlice[int8](-1, 2), []byte{0xff, 0x02}},
		{column.NewSlice[uint16](0x0102), []byte{0x01, 0x02}},
		{column.NewSlice[int16](-2), []byte{0xff, 0xfe}},
		{column.NewSlice[uint32](0x01020304), []byte{0x01, 0x02, 0x03, 0x04}},
		{column.NewSlice[int32](-1), []byte{0xff, 0xff, 0xff, 0xff}},
		{column.NewSlice[uint64](0x0102030405060708), []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{column.NewSlice[int64](math.MinInt64), []byte{0x80, 0, 0, 0, 0, 0, 0, 0}},
		{column.NewSlice[float32](1), []byte{0x3f, 0x80, 0x00, 0x00}},
		{column.NewSlice[float64](-2), []byte{0xc0, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, c := range cases {
		got, err := column.AppendBytes(nil, c.values)
		require.NoError(t, err)
		require.Equal(t, c.want, got, c.values.Type().String())
	}
}

func TestMarshalAppends(t *testing.T) {
	t.Parallel()
	prefix := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	dst := append([]byte(nil), prefix...)
	dst, err := column.AppendBytes(dst, column.NewSlice[uint16](1, 2))
	require.NoError(t, err)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF, 0, 1, 0, 2}, dst)

	out := column.NewSlice[uint16](7)
	n, err := column.AppendFromBytes(out, []byte{0, 1, 0, 2})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []uint16{7, 1, 2}, out.Data)
}

func TestMarshalNaNBits(t *testing.T) {
	t.Parallel()
	nan32 := math.Float32frombits(0x7fc00123)
	nan64 := math.Float64frombits(0x7ff8000000000abc)

	b, err := column.AppendBytes(nil, column.NewSlice(nan32))
	require.NoError(t, err)
	v32 := column.NewSlice[float32]()
	_, err = column.AppendFromBytes(v32, b)
	require.NoError(t, err)
	require.Equal(t, uint32(0x7fc00123), math.Float32bits(v32.Data[0]))

	b, err = column.AppendBytes(nil, column.NewSlice(nan64))
	require.NoError(t, err)
	v64 := column.NewSlice[float64]()
	_, err = column.AppendFromBytes(v64, b)
	require.NoError(t, err)
	require.Equal(t, uint64(0x7ff8000000000abc), math.Float64bits(v64.Data[0]))
}

func TestMarshalLengthMismatch(t *testing.T) {
	t.Parallel()
	for _, typ := range column.Types() {
		if typ.Size() == 1 {
			continue
		}
		out, err := column.NewValues(typ, 0)
		require.NoError(t, err)
		_, err = column.AppendFromBytes(out, make([]byte, typ.Size()+1))
		require.True(t, errors.Is(err, column.ErrLengthMismatch), typ.String())
		require.Equal(t, 0, out.Len())

		_, err = column.FromBytes(typ, make([]byte, typ.Size()-1))
		require.True(t, errors.Is(err, column.ErrLengthMismatch), typ.String())
	}
}

type foreignValues struct{}

func (foreignValues) Type() column.Type { return column.Uint32 }
func (foreignValues) Len() int          { return 1 }
func (foreignValues) Truncate(int)      {}

func TestMarshalUnsupportedType(t *testing.T) {
	t.Parallel()
	_, err := column.FromBytes(column.Type(0), []byte{1})
	require.True(t, errors.Is(err, column.ErrUnsupportedType))

	_, err = column.FromBytes(column.Type(42), []byte{1})
	require.True(t, errors.Is(err, column.ErrUnsupportedType))

	_, err = column.AppendBytes(nil, foreignValues{})
	require.True(t, errors.Is(err, column.ErrUnsupportedType))

	_, err = column.AppendFromBytes(foreignValues{}, []byte{0, 0, 0, 1})
	require.True(t, errors.Is(err, column.ErrUnsupportedType))

	_, err = column.AppendFromBytes(nil, nil)
	require.True(t, errors.Is(err, column.ErrUnsupportedType))

	var typedNil *column.Slice[uint16]
	require.True(t, column.IsNil(typedNil))
	require.Equal(t, 0, column.EncodedLen(typedNil))
	dst, err := column.AppendBytes([]byte{1}, typedNil)
	require.True(t, errors.Is(err, column.ErrUnsupportedType))
	require.Equal(t, []byte{1}, dst)
	_, err = column.AppendFromBytes(typedNil, []byte{0, 1})
	require.True(t, errors.Is(err, column.ErrUnsupportedType))
}

func FuzzMarshalUint32(f *testing.F) {
	f.Add([]byte{0, 0, 0, 1, 0xff, 0xff, 0xff, 0xff})
	f.Fuzz(func(t *testing.T, input []byte) {
		input = input[:len(input)-len(input)%4]
		values, err := column.FromBytes(column.Uint32, input)
		require.NoError(t, err)
		encoded, err := column.AppendBytes(nil, values)
		require.NoError(t, err)
		require.Equal(t, len(input), len(encoded))
		if len(input) > 0 {
			require.Equal(t, input, encoded)
		}
	})
}
