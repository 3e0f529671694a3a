package store

import "errors"

// ErrMissingPassword is returned when the keystore file is encrypted but the
// store was opened without a password.
var ErrMissingPassword = errors.New("store: keystore is encrypted but no password was provided (KEYSTORE_PASSWORD or --password)")
