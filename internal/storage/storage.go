package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Service uploads user-provided files (payment receipts, QR codes) and
// returns a publicly resolvable URL for each stored object.
type Service interface {
	Upload(ctx context.Context, folder string, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

const maxUploadSize = 10 << 20 // 10MB

var imageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ValidateImage rejects files that are not images or exceed the size ceiling.
func ValidateImage(file *multipart.FileHeader) error {
	if file.Size > maxUploadSize {
		return fmt.Errorf("file too large: %d bytes (max %d)", file.Size, maxUploadSize)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := imageExtensions[ext]; !ok {
		return fmt.Errorf("unsupported file type %q, expected an image", ext)
	}
	return nil
}

// objectKey builds a collision-resistant key preserving the original extension.
func objectKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)
}

func contentTypeFor(filename string) string {
	if ct, ok := imageExtensions[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}
