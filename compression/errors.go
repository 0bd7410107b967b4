package compression

import (
	"fmt"

	"github.com/hstreamdb/hstream-codec/column"
	"github.com/pkg/errors"
)

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported compression algorithm")
	// ErrUnsupportedType is returned when a codec does not accept the
	// element type of its input or output.
	ErrUnsupportedType = column.ErrUnsupportedType
	// ErrLengthMismatch is returned when decompressed bytes are not a whole
	// number of elements.
	ErrLengthMismatch        = column.ErrLengthMismatch
	ErrMissingExpectedLength = errors.New("decompressed length is required")
	ErrTruncatedFrame        = errors.New("truncated lz4 hadoop frame")
	ErrSizeMismatch          = errors.New("decompressed size mismatch")
	ErrUnconsumedInput       = errors.New("input not fully consumed")
	ErrOutputTooSmall        = errors.New("output too small")
	ErrInputTooLarge         = errors.New("input too large")
	ErrInvalidOption         = errors.New("invalid codec option")
	// ErrBackendFailure matches every *BackendError.
	ErrBackendFailure = errors.New("compression backend failure")
)

// BackendError carries an error reported by a third-party compression library.
type BackendError struct {
	Algorithm Algorithm
	Op        string
	Err       error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Algorithm, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func (e *BackendError) Is(target error) bool {
	return target == ErrBackendFailure
}

func compressError(alg Algorithm, err error) error {
	return errors.WithStack(&BackendError{Algorithm: alg, Op: "compress", Err: err})
}

func decompressError(alg Algorithm, err error) error {
	return errors.WithStack(&BackendError{Algorithm: alg, Op: "decompress", Err: err})
}

func unsupportedAlgorithm(v interface{}) error {
	return errors.Wrapf(ErrUnsupportedAlgorithm, "%v", v)
}
