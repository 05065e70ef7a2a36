package storage

import (
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImage(t *testing.T) {
	assert.NoError(t, ValidateImage(&multipart.FileHeader{Filename: "receipt.PNG", Size: 1024}))
	assert.NoError(t, ValidateImage(&multipart.FileHeader{Filename: "qr.jpeg", Size: maxUploadSize}))

	assert.Error(t, ValidateImage(&multipart.FileHeader{Filename: "receipt.png", Size: maxUploadSize + 1}))
	assert.Error(t, ValidateImage(&multipart.FileHeader{Filename: "notes.pdf", Size: 1024}))
	assert.Error(t, ValidateImage(&multipart.FileHeader{Filename: "noextension", Size: 1024}))
}

func TestObjectKeyIsCollisionResistant(t *testing.T) {
	first := objectKey("receipts", "slip.png")
	second := objectKey("receipts", "slip.png")

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "receipts/"))
	assert.True(t, strings.HasSuffix(first, ".png"))
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/png", contentTypeFor("a.png"))
	assert.Equal(t, "image/jpeg", contentTypeFor("b.JPG"))
	assert.Equal(t, "application/octet-stream", contentTypeFor("c.bin"))
}
