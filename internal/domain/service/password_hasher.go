// Package service declares the ports the use cases depend on for
// credentials, tokens and outbound events.
package service

// PasswordHasher turns plaintext passwords into slow, salted hashes.
// Hashing the same password twice yields two different hashes that both verify.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool

	// Verify returns nil on a match, ErrPasswordMismatch on a wrong password and
	// ErrInvalidCredentialFormat when hash cannot be parsed. It never panics.
	Verify(password, hash string) error
}
