package compression

import (
	"github.com/hstreamdb/hstream-codec/column"
	"github.com/hstreamdb/hstream-codec/internal/numeric"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// numericCodec works on the values themselves instead of their byte
// image: it delta or xor encodes them (see internal/numeric) and
// compresses the result with zstd. Single-byte types are not accepted.
type numericCodec struct {
	compressor   Compressor
	decompressor Decompressor
	scratch      []byte
}

func newNumericCodec(level zstd.EncoderLevel) (Codec, error) {
	compressor, err := NewZstdCompressor(level)
	if err != nil {
		return nil, err
	}
	decompressor, err := NewZstdDeCompressor()
	if err != nil {
		compressor.Close()
		return nil, err
	}
	return &numericCodec{
		compressor:   compressor,
		decompressor: decompressor,
	}, nil
}

func (c *numericCodec) Algorithm() Algorithm {
	return Numeric
}

func (c *numericCodec) Allowed(t column.Type) bool {
	return numeric.Supports(t)
}

func (c *numericCodec) Compress(dst []byte, in column.Values) ([]byte, error) {
	if err := checkAllowed(c, in); err != nil {
		return dst, err
	}
	encoded, err := numeric.Encode(c.scratch[:0], in)
	if err != nil {
		return dst, err
	}
	c.scratch = encoded

	mark := len(dst)
	res, err := c.compressor.Compress(dst, encoded)
	if err != nil {
		logFailure(Numeric, "compress", err)
		return dst[:mark], err
	}
	return res, nil
}

func (c *numericCodec) Decompress(src []byte, out column.Values, uncompressedSize int) (int, error) {
	if err := checkAllowed(c, out); err != nil {
		return 0, err
	}
	// uncompressedSize describes the marshalled values, not the encoded
	// stream, so it cannot size the zstd output.
	encoded, err := c.decompressor.Decompress(c.scratch[:0], src, UnknownSize)
	if err != nil {
		logFailure(Numeric, "decompress", err)
		return 0, err
	}
	c.scratch = encoded

	mark := out.Len()
	n, err := numeric.Decode(out, encoded)
	if err != nil {
		if errors.Is(err, numeric.ErrCorrupt) {
			err = decompressError(Numeric, err)
		}
		return 0, err
	}
	if uncompressedSize >= 0 && n*out.Type().Size() != uncompressedSize {
		out.Truncate(mark)
		return 0, errors.Wrapf(ErrSizeMismatch, "numeric: expected %d bytes, decoded %d", uncompressedSize, n*out.Type().Size())
	}
	return n, nil
}

func (c *numericCodec) Close() {
	c.compressor.Close()
	c.decompressor.Close()
	c.scratch = nil
}
