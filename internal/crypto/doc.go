// Package crypto guards serialised keystores with a password.
//
// Contents
//
//   - scrypt (N=16384, r=8, p=1) key derivation to a 32-byte AES key
//   - AES-256-GCM sealing into the EncryptedPayload JSON envelope
//     (Encrypt, Decrypt)
//   - Envelope shape detection for format sniffing (IsEncryptedPayload,
//     PayloadFromJSON)
//   - Best-effort memory wiping for derived keys (Wipe)
//
// # Notes
//
// The envelope is shared with other keystore implementations: salt, iv and
// tag are lowercase hex, data is padded standard base64 of the ciphertext
// without the tag. Changing any of it breaks existing files.
package crypto
