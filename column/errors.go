package column

import "github.com/pkg/errors"

var (
	// ErrUnsupportedType is returned for a Type, or a Values implementation,
	// that the marshaller does not handle.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrLengthMismatch is returned when a byte buffer is not a whole
	// number of elements.
	ErrLengthMismatch = errors.New("length mismatch")
)
