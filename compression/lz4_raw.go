package compression

import (
	"slices"

	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

// LZ4RawCompressor writes a single LZ4 block with no header. The reader
// has to know the decompressed length.
type LZ4RawCompressor struct {
	encoder lz4.Compressor
}

func NewLZ4RawCompressor() Compressor {
	return &LZ4RawCompressor{}
}

func (l *LZ4RawCompressor) GetAlgorithm() Algorithm {
	return LZ4Raw
}

func (l *LZ4RawCompressor) Compress(dst, src []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(src))
	mark := len(dst)
	dst = slices.Grow(dst, bound)
	// With a window of CompressBlockBound bytes incompressible input is
	// stored as literals instead of being reported as n == 0.
	n, err := l.encoder.CompressBlock(src, dst[mark:mark+bound])
	if err != nil {
		return dst[:mark], compressError(LZ4Raw, err)
	}
	return dst[:mark+n], nil
}

func (l *LZ4RawCompressor) Close() {}

type LZ4RawDeCompressor struct{}

func NewLZ4RawDeCompressor() Decompressor {
	return &LZ4RawDeCompressor{}
}

func (l *LZ4RawDeCompressor) GetAlgorithm() Algorithm {
	return LZ4Raw
}

func (l *LZ4RawDeCompressor) Decompress(dst, src []byte, size int) ([]byte, error) {
	if size < 0 {
		return dst, errors.Wrap(ErrMissingExpectedLength, "lz4 raw")
	}
	if size == 0 {
		return dst, nil
	}
	mark := len(dst)
	dst = slices.Grow(dst, size)
	n, err := lz4.UncompressBlock(src, dst[mark:mark+size])
	if err != nil {
		return dst[:mark], decompressError(LZ4Raw, err)
	}
	if n != size {
		return dst[:mark], errors.Wrapf(ErrSizeMismatch, "lz4 raw: expected %d bytes, got %d", size, n)
	}
	return dst[:mark+n], nil
}

func (l *LZ4RawDeCompressor) Close() {}
