// errors.go defines public error types for the govorbis package.

package govorbis

import "errors"

// Public error types for header packet framing.
var (
	// ErrNotVorbis indicates a header packet without the "vorbis" signature.
	ErrNotVorbis = errors.New("govorbis: not a Vorbis header packet")

	// ErrHeaderType indicates a header packet of a different type than the
	// one requested.
	ErrHeaderType = errors.New("govorbis: unexpected header packet type")

	// ErrInvalidArgument indicates one or more function arguments are invalid.
	ErrInvalidArgument = errors.New("govorbis: invalid argument")
)
