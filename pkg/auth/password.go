// Package auth provides the password hashing used by the account service.
//
// Hashing is deterministic (SHA-256, base64-encoded) so verification is a
// hash-and-compare. Stored hashes are therefore unsalted; acceptable for a
// local catalog application, not for anything internet-facing.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// HashPassword returns the base64-encoded SHA-256 digest of password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// VerifyPassword reports whether password hashes to hash.
func VerifyPassword(password, hash string) bool {
	computed := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
