package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes uploads to a directory served by the HTTP server under
// /uploads. Used when no S3 bucket is configured.
type LocalStorage struct {
	baseDir string
	baseURL string
}

func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (l *LocalStorage) Upload(ctx context.Context, folder string, file *multipart.FileHeader) (string, error) {
	if err := ValidateImage(file); err != nil {
		return "", err
	}

	key := objectKey(folder, file.Filename)
	dst := filepath.Join(l.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return l.baseURL + "/uploads/" + key, nil
}

func (l *LocalStorage) Delete(ctx context.Context, publicURL string) error {
	prefix := l.baseURL + "/uploads/"
	key := strings.TrimPrefix(publicURL, prefix)
	if key == "" || key == publicURL {
		return fmt.Errorf("URL %q is not a local upload", publicURL)
	}

	path := filepath.Join(l.baseDir, filepath.FromSlash(key))
	clean := filepath.Clean(path)
	if !strings.HasPrefix(clean, filepath.Clean(l.baseDir)) {
		return fmt.Errorf("invalid upload path")
	}
	return os.Remove(clean)
}
