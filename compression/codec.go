package compression

import (
	"github.com/hstreamdb/hstream-codec/column"
	"github.com/hstreamdb/hstream-codec/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Codec compresses and decompresses typed column values. A Codec keeps
// reusable backend state and is not safe for concurrent use; give each
// goroutine its own instance.
type Codec interface {
	Algorithm() Algorithm
	// Compress appends the compressed form of in to dst and returns the
	// extended buffer. Bytes already in dst are never modified. On error
	// dst is returned at its original length.
	Compress(dst []byte, in column.Values) ([]byte, error)
	// Decompress decodes src and appends the values to out, returning the
	// number of elements appended. uncompressedSize is the decompressed
	// length in bytes, or UnknownSize to let the backend estimate it. On
	// error out keeps its original length.
	Decompress(src []byte, out column.Values, uncompressedSize int) (int, error)
	// Allowed reports whether the codec accepts values of type t.
	Allowed(t column.Type) bool
	// Close releases backend state. The codec must not be used afterwards.
	Close()
}

// NewCodec returns the codec for alg. It returns a nil Codec and a nil
// error for Uncompressed, in which case data is stored as is.
func NewCodec(alg Algorithm, opts ...Option) (Codec, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	var (
		codec Codec
		err   error
	)
	switch alg {
	case Uncompressed:
		return nil, nil
	case Snappy:
		codec = newTypedCodec(NewSnappyCompressor(), NewSnappyDeCompressor())
	case Gzip:
		codec, err = newGzipCodec(o.GzipLevel)
	case Brotli:
		codec = newTypedCodec(
			NewBrotliCompressor(o.BrotliQuality, o.BrotliWindow),
			NewBrotliDeCompressor(),
		)
	case LZ4:
		codec = newTypedCodec(
			NewLZ4HadoopCompressor(),
			NewLZ4HadoopDeCompressor(o.BackwardCompatibleLZ4),
		)
	case LZ4Raw:
		codec = newTypedCodec(NewLZ4RawCompressor(), NewLZ4RawDeCompressor())
	case LZ4Frame:
		codec = newTypedCodec(NewLZ4FrameCompressor(), NewLZ4FrameDeCompressor())
	case Zstd:
		codec, err = newZstdCodec(o.ZstdLevel)
	case Numeric:
		codec, err = newNumericCodec(o.ZstdLevel)
	default:
		return nil, unsupportedAlgorithm(alg)
	}
	if err != nil {
		return nil, err
	}
	util.Logger().Debug("codec created",
		zap.String("algorithm", alg.String()),
		zap.Bool("backwardCompatibleLZ4", o.BackwardCompatibleLZ4))
	return codec, nil
}

// typedCodec adapts a byte-level Compressor/Decompressor pair to Codec by
// marshalling values to and from big-endian bytes.
type typedCodec struct {
	compressor   Compressor
	decompressor Decompressor
	// scratch holds marshalled or decompressed bytes between calls.
	scratch []byte
}

func newTypedCodec(compressor Compressor, decompressor Decompressor) *typedCodec {
	return &typedCodec{
		compressor:   compressor,
		decompressor: decompressor,
	}
}

func (c *typedCodec) Algorithm() Algorithm {
	return c.compressor.GetAlgorithm()
}

func (c *typedCodec) Allowed(t column.Type) bool {
	return t.Valid()
}

func (c *typedCodec) Compress(dst []byte, in column.Values) ([]byte, error) {
	if err := checkAllowed(c, in); err != nil {
		return dst, err
	}
	raw, err := column.AppendBytes(c.scratch[:0], in)
	if err != nil {
		return dst, err
	}
	c.scratch = raw

	mark := len(dst)
	res, err := c.compressor.Compress(dst, raw)
	if err != nil {
		logFailure(c.Algorithm(), "compress", err)
		return dst[:mark], err
	}
	return res, nil
}

func (c *typedCodec) Decompress(src []byte, out column.Values, uncompressedSize int) (int, error) {
	if err := checkAllowed(c, out); err != nil {
		return 0, err
	}
	raw, err := c.decompressor.Decompress(c.scratch[:0], src, uncompressedSize)
	if err != nil {
		logFailure(c.Algorithm(), "decompress", err)
		return 0, err
	}
	c.scratch = raw
	return column.AppendFromBytes(out, raw)
}

func (c *typedCodec) Close() {
	c.compressor.Close()
	c.decompressor.Close()
	c.scratch = nil
}

func checkAllowed(c Codec, v column.Values) error {
	if column.IsNil(v) {
		return errors.Wrapf(ErrUnsupportedType, "%s: nil values", c.Algorithm())
	}
	if !c.Allowed(v.Type()) {
		return errors.Wrapf(ErrUnsupportedType, "%s does not accept %s", c.Algorithm(), v.Type())
	}
	return nil
}

func logFailure(alg Algorithm, op string, err error) {
	if errors.Is(err, ErrBackendFailure) {
		util.Logger().Error(op+" failed", zap.String("algorithm", alg.String()), zap.Error(err))
	}
}
