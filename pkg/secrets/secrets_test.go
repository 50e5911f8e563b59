package secrets_test

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/attestkit/pkg/secrets"
)

func TestSealOpenString(t *testing.T) {
	t.Parallel()
	master, err := secrets.GenerateKey()
	require.NoError(t, err)
	scope := []byte("attest:seed")

	tests := []struct {
		name      string
		plaintext string
	}{
		{"empty string", ""},
		{"seed", "a2f15f10fe07977e1a2c3d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a9b0c1d2e3f4a"},
		{"unicode", "Hello 世界 🌍"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sealed, err := secrets.SealString(master, scope, tt.plaintext)
			require.NoError(t, err)
			if tt.plaintext != "" {
				assert.NotContains(t, sealed, tt.plaintext)
			}

			opened, err := secrets.OpenString(master, scope, sealed)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, opened)
		})
	}
}

func TestSealIsRandomized(t *testing.T) {
	t.Parallel()
	master, err := secrets.GenerateKey()
	require.NoError(t, err)

	a, err := secrets.Seal(master, []byte("s"), []byte("same"))
	require.NoError(t, err)
	b, err := secrets.Seal(master, []byte("s"), []byte("same"))
	require.NoError(t, err)
	assert.False(t, bytes.Equal(a, b))
}

func TestOpenRejects(t *testing.T) {
	t.Parallel()
	master, err := secrets.GenerateKey()
	require.NoError(t, err)
	other, err := secrets.GenerateKey()
	require.NoError(t, err)

	sealed, err := secrets.Seal(master, []byte("student-1"), []byte("payload"))
	require.NoError(t, err)

	t.Run("other scope", func(t *testing.T) {
		t.Parallel()
		_, err := secrets.Open(master, []byte("student-2"), sealed)
		assert.ErrorIs(t, err, secrets.ErrOpenFailed)
	})

	t.Run("other master key", func(t *testing.T) {
		t.Parallel()
		_, err := secrets.Open(other, []byte("student-1"), sealed)
		assert.ErrorIs(t, err, secrets.ErrOpenFailed)
	})

	t.Run("tampered", func(t *testing.T) {
		t.Parallel()
		tampered := append([]byte(nil), sealed...)
		tampered[len(tampered)-1] ^= 0xff
		_, err := secrets.Open(master, []byte("student-1"), tampered)
		assert.ErrorIs(t, err, secrets.ErrOpenFailed)
	})

	t.Run("too short", func(t *testing.T) {
		t.Parallel()
		_, err := secrets.Open(master, []byte("student-1"), sealed[:10])
		assert.ErrorIs(t, err, secrets.ErrInvalidCiphertext)
	})

	t.Run("not base64", func(t *testing.T) {
		t.Parallel()
		_, err := secrets.OpenString(master, []byte("student-1"), "***")
		assert.ErrorIs(t, err, secrets.ErrInvalidCiphertext)
	})
}

func TestInvalidKeys(t *testing.T) {
	t.Parallel()

	_, err := secrets.Seal(make([]byte, 16), []byte("s"), []byte("x"))
	assert.ErrorIs(t, err, secrets.ErrInvalidMasterKey)

	_, err = secrets.Seal(make([]byte, secrets.KeySize), nil, []byte("x"))
	assert.ErrorIs(t, err, secrets.ErrEmptyScope)

	_, err = secrets.Open(make([]byte, 31), []byte("s"), make([]byte, 64))
	assert.ErrorIs(t, err, secrets.ErrInvalidMasterKey)
}

func TestDecodeKey(t *testing.T) {
	t.Parallel()
	key, err := secrets.GenerateKey()
	require.NoError(t, err)

	got, err := secrets.DecodeKey(" " + base64.StdEncoding.EncodeToString(key) + "\n")
	require.NoError(t, err)
	assert.Equal(t, key, got)

	_, err = secrets.DecodeKey(base64.StdEncoding.EncodeToString(key[:16]))
	assert.ErrorIs(t, err, secrets.ErrInvalidMasterKey)

	_, err = secrets.DecodeKey("!!")
	assert.ErrorIs(t, err, secrets.ErrInvalidMasterKey)
}
