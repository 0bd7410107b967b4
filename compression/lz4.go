package compression

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4FrameCompressor writes the LZ4 frame format (magic 0x184D2204).
type LZ4FrameCompressor struct {
	encoder *lz4.Writer
}

func NewLZ4FrameCompressor() Compressor {
	return &LZ4FrameCompressor{
		encoder: lz4.NewWriter(nil),
	}
}

func (l *LZ4FrameCompressor) GetAlgorithm() Algorithm {
	return LZ4Frame
}

func (l *LZ4FrameCompressor) Compress(dst, src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst)
	l.encoder.Reset(buf)
	if _, err := l.encoder.Write(src); err != nil {
		return dst, compressError(LZ4Frame, err)
	}
	if err := l.encoder.Close(); err != nil {
		return dst, compressError(LZ4Frame, err)
	}
	return buf.Bytes(), nil
}

func (l *LZ4FrameCompressor) Close() {
	l.encoder.Reset(io.Discard)
}

type LZ4FrameDeCompressor struct {
	decoder *lz4.Reader
}

func NewLZ4FrameDeCompressor() Decompressor {
	return &LZ4FrameDeCompressor{
		decoder: lz4.NewReader(nil),
	}
}

func (l *LZ4FrameDeCompressor) GetAlgorithm() Algorithm {
	return LZ4Frame
}

func (l *LZ4FrameDeCompressor) Decompress(dst, src []byte, size int) ([]byte, error) {
	l.decoder.Reset(bytes.NewReader(src))
	buf := bytes.NewBuffer(dst)
	if size > 0 {
		buf.Grow(size)
	}
	if _, err := buf.ReadFrom(l.decoder); err != nil {
		return dst, decompressError(LZ4Frame, err)
	}
	return buf.Bytes(), nil
}

func (l *LZ4FrameDeCompressor) Close() {
	l.decoder.Reset(nil)
}
