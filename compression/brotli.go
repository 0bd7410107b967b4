package compression

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
)

type BrotliCompressor struct {
	encoder *brotli.Writer
}

func NewBrotliCompressor(quality, lgwin int) Compressor {
	return &BrotliCompressor{
		encoder: brotli.NewWriterOptions(nil, brotli.WriterOptions{
			Quality: quality,
			LGWin:   lgwin,
		}),
	}
}

func (b *BrotliCompressor) GetAlgorithm() Algorithm {
	return Brotli
}

func (b *BrotliCompressor) Compress(dst, src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst)
	b.encoder.Reset(buf)
	if _, err := b.encoder.Write(src); err != nil {
		return dst, compressError(Brotli, err)
	}
	if err := b.encoder.Close(); err != nil {
		return dst, compressError(Brotli, err)
	}
	return buf.Bytes(), nil
}

func (b *BrotliCompressor) Close() {
	b.encoder.Reset(io.Discard)
}

type BrotliDeCompressor struct {
	decoder *brotli.Reader
}

func NewBrotliDeCompressor() Decompressor {
	return &BrotliDeCompressor{
		decoder: brotli.NewReader(nil),
	}
}

func (b *BrotliDeCompressor) GetAlgorithm() Algorithm {
	return Brotli
}

func (b *BrotliDeCompressor) Decompress(dst, src []byte, size int) ([]byte, error) {
	if err := b.decoder.Reset(bytes.NewReader(src)); err != nil {
		return dst, decompressError(Brotli, err)
	}
	buf := bytes.NewBuffer(dst)
	if size > 0 {
		buf.Grow(size)
	}
	if _, err := buf.ReadFrom(b.decoder); err != nil {
		return dst, decompressError(Brotli, err)
	}
	return buf.Bytes(), nil
}

func (b *BrotliDeCompressor) Close() {}
