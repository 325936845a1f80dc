package distfield

import "errors"

// Sentinel errors for the distfield package.
var (
	// ErrInvalidSize is returned when a width or height is less than 1.
	ErrInvalidSize = errors.New("distfield: width and height must be positive")

	// ErrSizeMismatch is returned when a pixel buffer length is not width*height.
	ErrSizeMismatch = errors.New("distfield: buffer length does not match width*height")

	// ErrClosestSize is returned when a nearest-point buffer is not width*height long.
	ErrClosestSize = errors.New("distfield: closest point buffer length does not match width*height")

	// ErrInvalidRadius is returned when a kernel radius is not positive.
	ErrInvalidRadius = errors.New("distfield: radius must be positive")

	// ErrNilPredicate is returned when an occupancy predicate is nil.
	ErrNilPredicate = errors.New("distfield: nil occupancy predicate")

	// ErrNilMask is returned when a transform is called with a nil mask.
	ErrNilMask = errors.New("distfield: nil mask")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm for unknown names.
	ErrUnknownAlgorithm = errors.New("distfield: unknown algorithm")

	// ErrNotSigned is returned when an operation needs a KindSigned field.
	ErrNotSigned = errors.New("distfield: field is not signed")

	// ErrInvalidSpread is returned when a quantization spread is not positive.
	ErrInvalidSpread = errors.New("distfield: spread must be positive")
)
