package wire

import (
	"errors"
	"fmt"
)

// ErrDecode is the sentinel matched by every *DecodeError.
var ErrDecode = errors.New("wire: malformed keystore data")

// DecodeError reports where and why decoding stopped.
type DecodeError struct {
	Offset int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("wire: decode failed at offset %d: %s", e.Offset, e.Reason)
}

// Is lets errors.Is(err, ErrDecode) match.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
