package compression

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/hstreamdb/hstream-codec/util"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Hadoop's Lz4Codec splits its input into frames, each laid out as
//
//	bytes 0..3  big-endian uint32 decompressed size
//	bytes 4..7  big-endian uint32 compressed size
//	bytes 8...  one raw LZ4 block of the compressed size
//
// Older writers used the same codec id for LZ4 frame and raw LZ4 block
// output, hence the fallback chain in LZ4HadoopDeCompressor.
const (
	sizeU32         = 4
	hadoopPrefixLen = 2 * sizeU32
)

// LZ4HadoopCompressor writes its whole input as a single Hadoop frame.
type LZ4HadoopCompressor struct {
	raw Compressor
}

func NewLZ4HadoopCompressor() Compressor {
	return &LZ4HadoopCompressor{
		raw: NewLZ4RawCompressor(),
	}
}

func (h *LZ4HadoopCompressor) GetAlgorithm() Algorithm {
	return LZ4
}

func (h *LZ4HadoopCompressor) Compress(dst, src []byte) ([]byte, error) {
	if uint64(len(src)) > math.MaxUint32 {
		return dst, errors.Wrapf(ErrInputTooLarge, "lz4 hadoop frame: %d bytes", len(src))
	}
	mark := len(dst)
	dst = append(dst, make([]byte, hadoopPrefixLen)...)
	res, err := h.raw.Compress(dst, src)
	if err != nil {
		return dst[:mark], err
	}
	compressed := len(res) - mark - hadoopPrefixLen
	if uint64(compressed) > math.MaxUint32 {
		return dst[:mark], errors.Wrapf(ErrInputTooLarge, "lz4 hadoop frame: %d compressed bytes", compressed)
	}
	binary.BigEndian.PutUint32(res[mark:], uint32(len(src)))
	binary.BigEndian.PutUint32(res[mark+sizeU32:], uint32(compressed))
	return res, nil
}

func (h *LZ4HadoopCompressor) Close() {
	h.raw.Close()
}

// attempt is one decoder in a fallback chain.
type attempt struct {
	name   string
	decode func(dst, src []byte, size int) ([]byte, error)
}

// LZ4HadoopDeCompressor decodes Hadoop frames. When backward compatible,
// input that does not parse as frames is retried as an LZ4 frame and then
// as a raw LZ4 block.
type LZ4HadoopDeCompressor struct {
	attempts []attempt
}

func NewLZ4HadoopDeCompressor(backwardCompatible bool) Decompressor {
	attempts := []attempt{{name: "hadoop", decode: decodeHadoopFrames}}
	if backwardCompatible {
		attempts = append(attempts,
			attempt{name: "frame", decode: NewLZ4FrameDeCompressor().Decompress},
			attempt{name: "raw", decode: NewLZ4RawDeCompressor().Decompress},
		)
	}
	return &LZ4HadoopDeCompressor{attempts: attempts}
}

func (h *LZ4HadoopDeCompressor) GetAlgorithm() Algorithm {
	return LZ4
}

// Decompress runs the attempts in order. Each one starts from dst at its
// original length. Without fallback the frame error is returned as is;
// otherwise the error of the last attempt is returned.
func (h *LZ4HadoopDeCompressor) Decompress(dst, src []byte, size int) ([]byte, error) {
	mark := len(dst)
	var err error
	for i, a := range h.attempts {
		var res []byte
		if res, err = a.decode(dst[:mark], src, size); err == nil {
			if i > 0 {
				util.Logger().Debug("lz4 hadoop input decoded by fallback", zap.String("attempt", a.name))
			}
			return res, nil
		}
		if i+1 < len(h.attempts) {
			util.Logger().Debug("lz4 hadoop decode attempt failed",
				zap.String("attempt", a.name),
				zap.String("next", h.attempts[i+1].name),
				zap.Error(err))
		}
	}
	return dst[:mark], err
}

func (h *LZ4HadoopDeCompressor) Close() {}

// decodeHadoopFrames appends the decompressed content of every frame in src
// to dst. When size is known it bounds the total output and must match it
// exactly; otherwise output grows as frames announce their sizes.
func decodeHadoopFrames(dst, src []byte, size int) ([]byte, error) {
	mark := len(dst)
	bounded := size >= 0
	if bounded {
		dst = slices.Grow(dst, size)
	}

	frames := 0
	for len(src) >= hadoopPrefixLen {
		decompressedSize := uint64(binary.BigEndian.Uint32(src))
		compressedSize := uint64(binary.BigEndian.Uint32(src[sizeU32:]))
		src = src[hadoopPrefixLen:]

		if uint64(len(src)) < compressedSize {
			return dst[:mark], errors.Wrapf(ErrTruncatedFrame,
				"frame %d announces %d compressed bytes, %d remain", frames, compressedSize, len(src))
		}
		produced := len(dst) - mark
		if bounded && uint64(size-produced) < decompressedSize {
			return dst[:mark], errors.Wrapf(ErrOutputTooSmall,
				"frame %d announces %d bytes, %d of %d left", frames, decompressedSize, size-produced, size)
		}
		if !bounded && decompressedSize > maxBlockDecodedLen(compressedSize) {
			return dst[:mark], errors.Wrapf(ErrSizeMismatch,
				"frame %d: %d compressed bytes cannot hold %d bytes", frames, compressedSize, decompressedSize)
		}

		payload := src[:compressedSize]
		src = src[compressedSize:]
		frames++
		if decompressedSize == 0 {
			continue
		}

		start := len(dst)
		var window []byte
		if bounded {
			window = dst[start : mark+size]
		} else {
			dst = slices.Grow(dst, int(decompressedSize))
			window = dst[start : start+int(decompressedSize)]
		}
		n, err := lz4.UncompressBlock(payload, window)
		if err != nil {
			return dst[:mark], decompressError(LZ4, err)
		}
		if uint64(n) != decompressedSize {
			return dst[:mark], errors.Wrapf(ErrSizeMismatch,
				"frame %d: expected %d bytes, got %d", frames-1, decompressedSize, n)
		}
		dst = dst[:start+n]
	}

	if len(src) > 0 {
		if frames == 0 {
			return dst[:mark], errors.Wrapf(ErrTruncatedFrame, "%d bytes cannot hold a frame header", len(src))
		}
		return dst[:mark], errors.Wrapf(ErrUnconsumedInput, "%d bytes after frame %d", len(src), frames-1)
	}
	if bounded && len(dst)-mark != size {
		return dst[:mark], errors.Wrapf(ErrSizeMismatch, "expected %d bytes, frames hold %d", size, len(dst)-mark)
	}
	return dst, nil
}

// maxBlockDecodedLen bounds what n bytes of LZ4 block can expand to: every
// extra match-length byte adds at most 255 output bytes.
func maxBlockDecodedLen(n uint64) uint64 {
	bound := n*255 + 64
	if bound > math.MaxInt32 {
		return math.MaxInt32
	}
	return bound
}
