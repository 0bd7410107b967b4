package compression

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

type GzipCompressor struct {
	encoder *gzip.Writer
}

func NewGzipCompressor(level int) (Compressor, error) {
	zw, err := gzip.NewWriterLevel(nil, level)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidOption, "gzip level %d: %v", level, err)
	}
	return &GzipCompressor{
		encoder: zw,
	}, nil
}

func (g *GzipCompressor) GetAlgorithm() Algorithm {
	return Gzip
}

func (g *GzipCompressor) Compress(dst, src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst)
	g.encoder.Reset(buf)
	if _, err := g.encoder.Write(src); err != nil {
		return dst, compressError(Gzip, err)
	}
	if err := g.encoder.Close(); err != nil {
		return dst, compressError(Gzip, err)
	}
	return buf.Bytes(), nil
}

func (g *GzipCompressor) Close() {
	g.encoder.Reset(io.Discard)
}

type GzipDeCompressor struct {
	// created on first use, gzip.NewReader reads the header right away
	decoder *gzip.Reader
}

func NewGzipDeCompressor() Decompressor {
	return &GzipDeCompressor{}
}

func (g *GzipDeCompressor) GetAlgorithm() Algorithm {
	return Gzip
}

func (g *GzipDeCompressor) Decompress(dst, src []byte, size int) ([]byte, error) {
	var err error
	reader := bytes.NewReader(src)
	if g.decoder == nil {
		g.decoder, err = gzip.NewReader(reader)
	} else {
		err = g.decoder.Reset(reader)
	}
	if err != nil {
		return dst, decompressError(Gzip, err)
	}

	buf := bytes.NewBuffer(dst)
	if size > 0 {
		buf.Grow(size)
	}
	if _, err = buf.ReadFrom(g.decoder); err != nil {
		return dst, decompressError(Gzip, err)
	}
	return buf.Bytes(), nil
}

func (g *GzipDeCompressor) Close() {
	if g.decoder != nil {
		g.decoder.Close()
	}
}

func newGzipCodec(level int) (Codec, error) {
	compressor, err := NewGzipCompressor(level)
	if err != nil {
		return nil, err
	}
	return newTypedCodec(compressor, NewGzipDeCompressor()), nil
}
