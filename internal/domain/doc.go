// Package domain defines the keystore data model and the Keystore contract
// shared by the store implementations and the signing providers that read
// credentials from them. It contains plain types and interfaces only.
package domain
