package compression

import (
	"slices"

	"github.com/klauspost/compress/zstd"
)

type ZstdCompressor struct {
	encoder *zstd.Encoder
}

// NewZstdCompressor returns a zstd compressor. Empty input is written as a
// full frame so that every writer produces a decodable stream.
func NewZstdCompressor(level zstd.EncoderLevel) (Compressor, error) {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(level),
		zstd.WithZeroFrames(true),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, compressError(Zstd, err)
	}
	return &ZstdCompressor{
		encoder: encoder,
	}, nil
}

func (z *ZstdCompressor) GetAlgorithm() Algorithm {
	return Zstd
}

func (z *ZstdCompressor) Compress(dst, src []byte) ([]byte, error) {
	return z.encoder.EncodeAll(src, dst), nil
}

func (z *ZstdCompressor) Close() {
	z.encoder.Close()
}

type ZstdDeCompressor struct {
	decoder *zstd.Decoder
}

func NewZstdDeCompressor() (Decompressor, error) {
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, decompressError(Zstd, err)
	}
	return &ZstdDeCompressor{
		decoder: decoder,
	}, nil
}

func (z *ZstdDeCompressor) GetAlgorithm() Algorithm {
	return Zstd
}

func (z *ZstdDeCompressor) Decompress(dst, src []byte, size int) ([]byte, error) {
	mark := len(dst)
	if size > 0 {
		dst = slices.Grow(dst, size)
	}
	res, err := z.decoder.DecodeAll(src, dst)
	if err != nil {
		return dst[:mark], decompressError(Zstd, err)
	}
	return res, nil
}

func (z *ZstdDeCompressor) Close() {
	z.decoder.Close()
}

func newZstdCodec(level zstd.EncoderLevel) (Codec, error) {
	compressor, err := NewZstdCompressor(level)
	if err != nil {
		return nil, err
	}
	decompressor, err := NewZstdDeCompressor()
	if err != nil {
		compressor.Close()
		return nil, err
	}
	return newTypedCodec(compressor, decompressor), nil
}
