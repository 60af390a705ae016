package bitpack

import "errors"

// ErrUnexpectedEOF indicates a read would consume bits past the declared
// length of the buffer. Once returned, every later read on the same Buffer
// returns it as well.
var ErrUnexpectedEOF = errors.New("bitpack: read past end of buffer")
