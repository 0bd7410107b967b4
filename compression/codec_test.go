package compression

import (
	"io"
	"testing"

	"github.com/hstreamdb/hstream-codec/column"
	"github.com/hstreamdb/hstream-codec/internal/numeric"
	"github.com/hstreamdb/hstream-codec/util/test_util"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewCodec(t *testing.T) {
	t.Parallel()
	codec, err := NewCodec(Uncompressed)
	require.NoError(t, err)
	require.Nil(t, codec)

	for _, alg := range SupportedAlgorithms() {
		codec := newTestCodec(t, alg)
		require.Equal(t, alg, codec.Algorithm())
	}

	for _, alg := range []Algorithm{LZO, Algorithm(42), Algorithm(-1)} {
		codec, err := NewCodec(alg)
		require.ErrorIs(t, err, ErrUnsupportedAlgorithm, alg.String())
		require.Nil(t, codec)
	}
}

func TestNewCodecInvalidOptions(t *testing.T) {
	t.Parallel()
	opts := []Option{
		WithGzipLevel(42),
		WithBrotliQuality(12),
		WithBrotliWindow(9),
		WithZstdLevel(zstd.EncoderLevel(0)),
	}
	for _, opt := range opts {
		codec, err := NewCodec(Snappy, opt)
		require.ErrorIs(t, err, ErrInvalidOption)
		require.Nil(t, codec)
	}
}

func TestCodecOptions(t *testing.T) {
	t.Parallel()
	in := test_util.RandomSlice[float64](1000)
	codecs := map[Algorithm][]Option{
		Gzip:    {WithGzipLevel(9)},
		Brotli:  {WithBrotliQuality(11), WithBrotliWindow(10)},
		Zstd:    {WithZstdLevel(zstd.SpeedBestCompression)},
		Numeric: {WithZstdLevel(zstd.SpeedDefault)},
	}
	for alg, opts := range codecs {
		c1 := newTestCodec(t, alg, opts...)
		c2 := newTestCodec(t, alg)
		roundTrip(t, c1, c2, in, true)
	}
}

func TestAlgorithmNames(t *testing.T) {
	t.Parallel()
	for alg, name := range algorithmNames {
		require.Equal(t, name, alg.String())
		parsed, err := ParseAlgorithm(name)
		require.NoError(t, err)
		require.Equal(t, alg, parsed)
	}

	alg, err := ParseAlgorithm(" lz4_raw ")
	require.NoError(t, err)
	require.Equal(t, LZ4Raw, alg)

	_, err = ParseAlgorithm("lzma")
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)
	require.Equal(t, "UNKNOWN", Algorithm(42).String())
}

func TestNumericCodecTypes(t *testing.T) {
	t.Parallel()
	codec := newTestCodec(t, Numeric)
	for _, typ := range column.Types() {
		require.Equal(t, typ.Size() > 1, codec.Allowed(typ), typ.String())
	}
	require.False(t, codec.Allowed(column.Type(0)))

	dst := []byte{0xAB}
	dst, err := codec.Compress(dst, column.NewSlice[int8](1, 2, 3))
	require.ErrorIs(t, err, ErrUnsupportedType)
	require.Equal(t, []byte{0xAB}, dst)

	compressed, err := codec.Compress(nil, column.NewSlice[int32](1, 2, 3))
	require.NoError(t, err)

	_, err = codec.Decompress(compressed, column.NewSlice[uint8](), UnknownSize)
	require.ErrorIs(t, err, ErrUnsupportedType)

	out := column.NewSlice[uint32](7)
	_, err = codec.Decompress(compressed, out, UnknownSize)
	require.ErrorIs(t, err, numeric.ErrTypeMismatch)
	require.ErrorIs(t, err, ErrUnsupportedType)
	require.NotErrorIs(t, err, ErrBackendFailure)
	require.Equal(t, []uint32{7}, out.Data)

	_, err = codec.Decompress(compressed, column.NewSlice[int32](), 8)
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestNumericCodecShrinksSortedColumns(t *testing.T) {
	t.Parallel()
	data := make([]int64, 10000)
	for i := range data {
		data[i] = int64(1_700_000_000_000 + i*1000)
	}
	in := column.NewSlice(data...)

	numericCodec := newTestCodec(t, Numeric)
	zstdCodec := newTestCodec(t, Zstd)
	viaNumeric, err := numericCodec.Compress(nil, in)
	require.NoError(t, err)
	viaZstd, err := zstdCodec.Compress(nil, in)
	require.NoError(t, err)
	require.Less(t, len(viaNumeric), len(viaZstd))
}

func TestCodecRejectsNilValues(t *testing.T) {
	t.Parallel()
	for _, alg := range SupportedAlgorithms() {
		codec := newTestCodec(t, alg)
		_, err := codec.Compress(nil, nil)
		require.ErrorIs(t, err, ErrUnsupportedType, alg.String())
		_, err = codec.Decompress([]byte{0}, nil, UnknownSize)
		require.ErrorIs(t, err, ErrUnsupportedType, alg.String())

		var typedNil *column.Slice[uint16]
		dst, err := codec.Compress([]byte{1}, typedNil)
		require.ErrorIs(t, err, ErrUnsupportedType, alg.String())
		require.Equal(t, []byte{1}, dst)
		_, err = codec.Decompress([]byte{0}, typedNil, UnknownSize)
		require.ErrorIs(t, err, ErrUnsupportedType, alg.String())
	}
}

func TestGzipInvalidLevel(t *testing.T) {
	t.Parallel()
	compressor, err := NewGzipCompressor(42)
	require.ErrorIs(t, err, ErrInvalidOption)
	require.Contains(t, err.Error(), "gzip level 42")
	require.Nil(t, compressor)
}

func TestBackendError(t *testing.T) {
	t.Parallel()
	err := decompressError(Gzip, io.ErrUnexpectedEOF)
	require.ErrorIs(t, err, ErrBackendFailure)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.NotErrorIs(t, err, ErrTruncatedFrame)

	var backendErr *BackendError
	require.True(t, errors.As(err, &backendErr))
	require.Equal(t, Gzip, backendErr.Algorithm)
	require.Equal(t, "decompress", backendErr.Op)
	require.Equal(t, "GZIP decompress: unexpected EOF", backendErr.Error())

	codec := newTestCodec(t, Gzip)
	_, err = codec.Decompress([]byte("not gzip"), column.NewSlice[uint8](), UnknownSize)
	require.ErrorIs(t, err, ErrBackendFailure)
}
