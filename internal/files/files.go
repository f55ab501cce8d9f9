// Package files stores uploaded receipts on disk and names the public URL
// they are served under.
package files

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var ErrUnsupportedType = errors.New("receipt must be a jpg, jpeg or png file")

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// AllowedExtension reports whether name has a receipt image extension.
func AllowedExtension(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// Dir stores receipts under Root; BaseURL is the public prefix Root is
// served at.
type Dir struct {
	Root    string
	BaseURL string
}

// Save writes data as <key><ext> and returns its relative path and public URL.
func (d Dir) Save(ctx context.Context, key, fileName string, data []byte) (filePath, fileURL string, err error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	if !AllowedExtension(fileName) {
		return "", "", ErrUnsupportedType
	}

	if err := os.MkdirAll(d.Root, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	name := key + strings.ToLower(filepath.Ext(fileName))
	if err := os.WriteFile(filepath.Join(d.Root, name), data, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write receipt: %w", err)
	}

	return path.Join("public", name), strings.TrimRight(d.BaseURL, "/") + "/" + name, nil
}
