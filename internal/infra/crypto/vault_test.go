package crypto

import (
	"strings"
	"testing"

	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestNewAESVault_RejectsWrongKeyLength(t *testing.T) {
	for _, key := range []string{"", "short", testKey + "x"} {
		_, err := NewAESVault(key)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidVaultKey))
	}
}

func TestAESVault_RoundTrip(t *testing.T) {
	vault, err := NewAESVault(testKey)
	require.NoError(t, err)

	for _, plaintext := range []string{"", "1//0g-refresh-token", strings.Repeat("x", 4096), "ünïcødé"} {
		blob, err := vault.Encrypt(plaintext)
		require.NoError(t, err)

		parts := strings.Split(blob, ":")
		require.Len(t, parts, 3)
		assert.Len(t, parts[0], 32, "iv is 16 bytes hex")
		assert.Len(t, parts[1], 32, "tag is 16 bytes hex")

		got, err := vault.Decrypt(blob)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestAESVault_FreshIVPerEncryption(t *testing.T) {
	vault, err := NewAESVault(testKey)
	require.NoError(t, err)

	first, err := vault.Encrypt("same")
	require.NoError(t, err)
	second, err := vault.Encrypt("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestAESVault_DetectsTampering(t *testing.T) {
	vault, err := NewAESVault(testKey)
	require.NoError(t, err)

	blob, err := vault.Encrypt("refresh-token-value")
	require.NoError(t, err)
	parts := strings.Split(blob, ":")

	flip := func(s string) string {
		b := []byte(s)
		if b[0] == '0' {
			b[0] = '1'
		} else {
			b[0] = '0'
		}

		return string(b)
	}

	tests := []struct {
		name string
		blob string
	}{
		{name: "iv flipped", blob: flip(parts[0]) + ":" + parts[1] + ":" + parts[2]},
		{name: "tag flipped", blob: parts[0] + ":" + flip(parts[1]) + ":" + parts[2]},
		{name: "ciphertext flipped", blob: parts[0] + ":" + parts[1] + ":" + flip(parts[2])},
		{name: "two segments", blob: parts[0] + ":" + parts[1]},
		{name: "four segments", blob: blob + ":00"},
		{name: "not hex", blob: "zz:" + parts[1] + ":" + parts[2]},
		{name: "empty", blob: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vault.Decrypt(tt.blob)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrIntegrity))
		})
	}
}

func TestAESVault_OtherKeyCannotDecrypt(t *testing.T) {
	vault, err := NewAESVault(testKey)
	require.NoError(t, err)
	other, err := NewAESVault("fedcba9876543210fedcba9876543210")
	require.NoError(t, err)

	blob, err := vault.Encrypt("secret")
	require.NoError(t, err)

	_, err = other.Decrypt(blob)
	assert.True(t, errors.Is(err, domainerrors.ErrIntegrity))
}
