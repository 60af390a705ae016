package comment

import "errors"

// ErrTooLong indicates a vendor string, comment or comment count that does
// not fit its 32-bit length field.
var ErrTooLong = errors.New("comment: field exceeds 32-bit length")
