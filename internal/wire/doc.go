// Package wire encodes KeystoreData in the protobuf wire format of
//
//	message KeystoreData {
//	  map<string, string> entries = 1;
//	}
//
// without depending on generated code. Each entry is an outer field 1
// (length-delimited) whose payload holds the key as field 1 and the value as
// field 2. Files written here can be parsed by any protobuf runtime and vice
// versa.
//
// Varints are bounded to 5 bytes (32-bit field numbers and lengths). Anything
// malformed, truncated or overlong is reported as a *DecodeError, which
// matches ErrDecode under errors.Is.
package wire
