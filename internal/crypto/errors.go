package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is matched by every *FormatError.
	ErrFormat = errors.New("crypto: malformed encrypted payload")

	// Returned when the password is wrong or the ciphertext has been modified / corrupted.
	ErrAuthentication = errors.New("crypto: wrong password or corrupted keystore")
)

// FormatError describes a payload field that cannot be used for decryption.
type FormatError struct {
	Field string
	Want  int
	Got   int
	Err   error // set when the field failed to decode at all
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("crypto: invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("crypto: invalid %s length: expected %d, got %d", e.Field, e.Want, e.Got)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrFormat) match.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }
