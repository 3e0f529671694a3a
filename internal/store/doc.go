// Package store persists keystores.
//
// FileStore keeps one keystore file and an in-memory view of it. The file is
// read lazily on first access; Set and Delete change only memory until Write.
// Read accepts three layouts, detected in this order:
//
//   - an encrypted JSON envelope (see package crypto) whose plaintext is
//     base64 wire data, or for very old files a JSON object
//   - a bare JSON object of string values (legacy, unencrypted)
//   - raw wire data (see package wire)
//
// Write only produces raw wire data or, when a password is set, the
// encrypted envelope, so reading a legacy file and writing it back upgrades
// it. Writes go to a temp sibling that is renamed over the target.
//
// A FileStore is safe for concurrent use within a process. Nothing
// coordinates separate processes or stores sharing a path: each write is
// atomic, the last rename wins.
//
// Memory is a Keystore without a file.
package store
