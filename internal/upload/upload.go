// Package upload reads the documents the user points the initial screen
// at. PDFs travel base64-encoded; DOCX is refused with a hint; plain
// text, markdown, and CSV pass through untouched.
package upload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedType marks a file extension the backend cannot process.
var ErrUnsupportedType = errors.New("upload: unsupported file type")

// ErrDocx marks a DOCX upload; the backend cannot read it directly.
var ErrDocx = errors.New("upload: DOCX is not supported, convert to PDF, plain text, or Markdown")

// Document is a read, encoded document ready for the analysis request.
type Document struct {
	Name    string
	Content string
	IsPDF   bool
}

var textExtensions = map[string]bool{
	".txt":      true,
	".text":     true,
	".md":       true,
	".markdown": true,
	".csv":      true,
}

// ReadDocument loads the file at path and prepares it for upload.
func ReadDocument(path string) (*Document, error) {
	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".docx":
		return nil, fmt.Errorf("%w: %s", ErrDocx, name)
	case ext == ".pdf":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return &Document{
			Name:    name,
			Content: base64.StdEncoding.EncodeToString(raw),
			IsPDF:   true,
		}, nil
	case textExtensions[ext]:
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return &Document{Name: name, Content: string(raw)}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, name)
	}
}
