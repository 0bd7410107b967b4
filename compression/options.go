package compression

import (
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

const (
	DEFAULT_BROTLI_QUALITY = 1
	DEFAULT_BROTLI_WINDOW  = 22
	DEFAULT_GZIP_LEVEL     = gzip.DefaultCompression
	DEFAULT_ZSTD_LEVEL     = zstd.SpeedFastest
)

// Options configures the codecs built by NewCodec. It is fixed once the
// codec is constructed.
type Options struct {
	// BackwardCompatibleLZ4 makes the Hadoop-framed LZ4 codec retry a failed
	// decode as LZ4 frame and then as raw LZ4 block, the formats older
	// writers produced under the same codec id.
	BackwardCompatibleLZ4 bool
	GzipLevel             int
	BrotliQuality         int
	BrotliWindow          int
	ZstdLevel             zstd.EncoderLevel
}

// Option is the option for NewCodec.
type Option func(opts *Options)

// DefaultOptions returns the options NewCodec uses when none are given.
func DefaultOptions() Options {
	return Options{
		BackwardCompatibleLZ4: true,
		GzipLevel:             DEFAULT_GZIP_LEVEL,
		BrotliQuality:         DEFAULT_BROTLI_QUALITY,
		BrotliWindow:          DEFAULT_BROTLI_WINDOW,
		ZstdLevel:             DEFAULT_ZSTD_LEVEL,
	}
}

// WithBackwardCompatibleLZ4 enables or disables the LZ4 fallback chain.
func WithBackwardCompatibleLZ4(enable bool) Option {
	return func(opts *Options) {
		opts.BackwardCompatibleLZ4 = enable
	}
}

// WithGzipLevel sets the gzip level, from gzip.StatelessCompression to
// gzip.BestCompression.
func WithGzipLevel(level int) Option {
	return func(opts *Options) {
		opts.GzipLevel = level
	}
}

// WithBrotliQuality sets the brotli quality, 0 to 11.
func WithBrotliQuality(quality int) Option {
	return func(opts *Options) {
		opts.BrotliQuality = quality
	}
}

// WithBrotliWindow sets log2 of the brotli window size, 10 to 24.
func WithBrotliWindow(lgwin int) Option {
	return func(opts *Options) {
		opts.BrotliWindow = lgwin
	}
}

// WithZstdLevel sets the zstd encoder level.
func WithZstdLevel(level zstd.EncoderLevel) Option {
	return func(opts *Options) {
		opts.ZstdLevel = level
	}
}

func (o *Options) validate() error {
	if o.GzipLevel < gzip.StatelessCompression || o.GzipLevel > gzip.BestCompression {
		return errors.Wrapf(ErrInvalidOption, "gzip level %d", o.GzipLevel)
	}
	if o.BrotliQuality < brotli.BestSpeed || o.BrotliQuality > brotli.BestCompression {
		return errors.Wrapf(ErrInvalidOption, "brotli quality %d", o.BrotliQuality)
	}
	if o.BrotliWindow < 10 || o.BrotliWindow > 24 {
		return errors.Wrapf(ErrInvalidOption, "brotli window %d", o.BrotliWindow)
	}
	if o.ZstdLevel < zstd.SpeedFastest || o.ZstdLevel > zstd.SpeedBestCompression {
		return errors.Wrapf(ErrInvalidOption, "zstd level %d", o.ZstdLevel)
	}
	return nil
}
