package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/attestkit/pkg/qrcode"
)

const uri = "otpauth://totp/attest:student?algorithm=SHA1&digits=6&issuer=attest&period=30&secret=JBSWY3DP"

func TestPNG(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     int
		wantEdge int
	}{
		{"explicit size", 128, 128},
		{"default size", 0, qrcode.DefaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data, err := qrcode.PNG(uri, tt.size)
			require.NoError(t, err)
			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, tt.wantEdge, img.Bounds().Dx())
		})
	}
}

func TestEmptyContent(t *testing.T) {
	t.Parallel()
	_, err := qrcode.PNG("  ", 64)
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
	_, err = qrcode.DataURI("", 64)
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
	_, err = qrcode.Terminal("")
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
}

func TestDataURI(t *testing.T) {
	t.Parallel()
	s, err := qrcode.DataURI(uri, 64)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(s, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(s, "data:image/png;base64,"))
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	assert.NoError(t, err)
}

func TestTerminal(t *testing.T) {
	t.Parallel()
	s, err := qrcode.Terminal(uri)
	require.NoError(t, err)
	assert.Greater(t, strings.Count(s, "\n"), 10)
}

func TestTooLong(t *testing.T) {
	t.Parallel()
	_, err := qrcode.PNG(strings.Repeat("x", 8000), 64)
	assert.ErrorIs(t, err, qrcode.ErrGenerate)
}
