package service

// TokenVault encrypts secrets at rest.
type TokenVault interface {
	// Encrypt returns <ivHex>:<authTagHex>:<ciphertextHex> using a fresh IV.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Tampered or malformed input yields ErrIntegrity.
	Decrypt(blob string) (string, error)
}
