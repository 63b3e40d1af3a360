// Package upload stores customer and order images on the local disk and
// hands back the public /uploads path the frontend embeds in <img> tags.
package upload

import (
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hallmarkbd/hallmark-api/pkg/apperror"
)

// PublicPrefix is the URL prefix the saved files are served under.
const PublicPrefix = "/uploads"

// Saver writes uploaded images into a directory on the local filesystem.
type Saver struct {
	dir     string
	maxSize int64
}

// NewSaver creates a saver rooted at dir, creating it if needed.
// maxSize caps the accepted file size in bytes.
func NewSaver(dir string, maxSize int64) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload: mkdir %s: %w", dir, err)
	}
	return &Saver{dir: dir, maxSize: maxSize}, nil
}

// Dir returns the directory files are written to.
func (s *Saver) Dir() string {
	return s.dir
}

// Save validates and stores one uploaded image, returning its public
// path ("/uploads/<name>"). Only image content types are accepted and
// files above the size cap are rejected.
func (s *Saver) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > s.maxSize {
		return "", apperror.NewBadRequestError(fmt.Sprintf("Image exceeds the %d byte upload limit", s.maxSize))
	}
	if ct := file.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return "", apperror.NewBadRequestError("Only image files are allowed")
	}

	name := uniqueName(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("upload: open multipart file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("upload: create %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("upload: write %s: %w", name, err)
	}

	return PublicPrefix + "/" + name, nil
}

// Remove deletes a previously saved file given its public path. Missing
// files are not an error; the record is already gone.
func (s *Saver) Remove(publicPath string) error {
	name := strings.TrimPrefix(publicPath, PublicPrefix+"/")
	if name == "" || strings.Contains(name, "/") {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("upload: remove %s: %w", name, err)
	}
	return nil
}

// uniqueName builds "image-<millis>-<rand><ext>". The filename never
// derives from user input beyond the extension.
func uniqueName(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("image-%d-%d%s", time.Now().UnixMilli(), rand.IntN(1_000_000_000), ext)
}
