// Package crypto implements the token vault that keeps Google refresh tokens
// encrypted at rest.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"adpulse/config"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/domain/service"
	"adpulse/internal/errors"

	"go.uber.org/fx"
)

const (
	keySize   = 32
	ivSize    = 16
	tagSize   = 16
	separator = ":"
)

// aesVault is AES-256-GCM with a 16 byte IV and the tag stored apart from the ciphertext.
type aesVault struct {
	aead cipher.AEAD
}

// VaultParams holds dependencies for the token vault, injected by Fx
type VaultParams struct {
	fx.In

	Config *config.Config
}

// NewTokenVault builds the vault from configuration.
func NewTokenVault(params VaultParams) (service.TokenVault, error) {
	return NewAESVault(params.Config.TokenVault.EncryptionKey)
}

// NewAESVault builds a vault from a raw key. The key must be exactly 32 bytes.
func NewAESVault(key string) (service.TokenVault, error) {
	if len(key) != keySize {
		return nil, errors.WithStack(domainerrors.ErrInvalidVaultKey)
	}

	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	aead, err := cipher.NewGCMWithNonceSize(block, ivSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GCM")
	}

	return &aesVault{aead: aead}, nil
}

func (v *aesVault) Encrypt(plaintext string) (string, error) {
	iv := make([]byte, ivSize)
	if _, err := rand.Read(iv); err != nil {
		return "", errors.Wrap(err, "failed to generate IV")
	}

	sealed := v.aead.Seal(nil, iv, []byte(plaintext), nil)
	ciphertext, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	return strings.Join([]string{
		hex.EncodeToString(iv),
		hex.EncodeToString(tag),
		hex.EncodeToString(ciphertext),
	}, separator), nil
}

func (v *aesVault) Decrypt(blob string) (string, error) {
	parts := strings.Split(blob, separator)
	if len(parts) != 3 {
		return "", errors.WithStack(domainerrors.ErrIntegrity)
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != ivSize {
		return "", errors.WithStack(domainerrors.ErrIntegrity)
	}

	tag, err := hex.DecodeString(parts[1])
	if err != nil || len(tag) != tagSize {
		return "", errors.WithStack(domainerrors.ErrIntegrity)
	}

	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrIntegrity)
	}

	plaintext, err := v.aead.Open(nil, iv, append(ciphertext, tag...), nil)
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrIntegrity)
	}

	return string(plaintext), nil
}
