// Package app wires application dependencies for the CLI.
//
// It resolves Config from flags, environment (KEYSTORE_PATH,
// KEYSTORE_PASSWORD) and defaults, then builds the zap logger and the
// file-backed keystore for commands to use.
package app
