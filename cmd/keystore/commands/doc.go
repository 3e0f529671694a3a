// Package commands defines the keystore CLI and wires dependencies for subcommands.
//
// Commands
//
//   - read [key]           Print one value, or every entry as JSON
//   - write <key> <value>  Set a value and persist the keystore
//   - delete <key>         Remove a key and persist the keystore
//   - init                 Create an empty keystore file
//   - info                 Show path, on-disk format, size and entry count
//
// # Implementation
//
// The root command resolves the path and password from flags or the
// KEYSTORE_PATH / KEYSTORE_PASSWORD environment variables and builds the
// logger and keystore before any subcommand runs.
package commands
