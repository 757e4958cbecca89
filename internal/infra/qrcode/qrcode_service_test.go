package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQRCodeService_GenerateLinkQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateLinkQR("https://go.dev/doc/effective_go")
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "expected a PNG image")
}

func TestQRCodeService_UnknownLevelDefaultsToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GenerateLinkQR("https://example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestQRCodeService_EmptyContent(t *testing.T) {
	svc := NewQRCodeService(128, "M")

	_, err := svc.GenerateLinkQR("")
	assert.Error(t, err)
}
