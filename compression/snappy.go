package compression

import (
	"bytes"
	"slices"

	xerial "github.com/eapache/go-xerial-snappy"
	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// xerialHeader starts a stream written by snappy-java's framing output
// stream rather than a raw snappy block.
var xerialHeader = []byte{0x82, 'S', 'N', 'A', 'P', 'P', 'Y', 0}

// SnappyCompressor writes raw snappy blocks.
type SnappyCompressor struct{}

func NewSnappyCompressor() Compressor {
	return &SnappyCompressor{}
}

func (s *SnappyCompressor) GetAlgorithm() Algorithm {
	return Snappy
}

func (s *SnappyCompressor) Compress(dst, src []byte) ([]byte, error) {
	bound := snappy.MaxEncodedLen(len(src))
	if bound < 0 {
		return dst, errors.Wrapf(ErrInputTooLarge, "snappy: %d bytes", len(src))
	}
	mark := len(dst)
	dst = slices.Grow(dst, bound)
	// Encode writes in place when the window holds MaxEncodedLen bytes.
	encoded := snappy.Encode(dst[mark:mark+bound], src)
	return dst[:mark+len(encoded)], nil
}

func (s *SnappyCompressor) Close() {}

// SnappyDeCompressor reads raw snappy blocks, and xerial framed streams
// written by Java producers.
type SnappyDeCompressor struct{}

func NewSnappyDeCompressor() Decompressor {
	return &SnappyDeCompressor{}
}

func (s *SnappyDeCompressor) GetAlgorithm() Algorithm {
	return Snappy
}

func (s *SnappyDeCompressor) Decompress(dst, src []byte, size int) ([]byte, error) {
	mark := len(dst)
	if bytes.HasPrefix(src, xerialHeader) {
		decoded, err := xerial.Decode(src)
		if err != nil {
			return dst, decompressError(Snappy, err)
		}
		if size >= 0 && len(decoded) != size {
			return dst, errors.Wrapf(ErrSizeMismatch, "snappy: expected %d bytes, got %d", size, len(decoded))
		}
		return append(dst, decoded...), nil
	}

	n, err := snappy.DecodedLen(src)
	if err != nil {
		return dst, decompressError(Snappy, err)
	}
	if size >= 0 && n != size {
		return dst, errors.Wrapf(ErrSizeMismatch, "snappy: expected %d bytes, block holds %d", size, n)
	}
	dst = slices.Grow(dst, n)
	decoded, err := snappy.Decode(dst[mark:mark+n], src)
	if err != nil {
		return dst[:mark], decompressError(Snappy, err)
	}
	return dst[:mark+len(decoded)], nil
}

func (s *SnappyDeCompressor) Close() {}
