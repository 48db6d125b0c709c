package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	wire "github.com/abdulkader3/expence-go/pkg/api"
)

// buildMultipart assembles a multipart/form-data body from named text fields
// plus an optional file part. It returns the encoded body and its content
// type (which carries the boundary, so the JSON default must not be applied).
// Both the avatar update and the receipt upload go through here so boundary
// and header handling live in one place.
func buildMultipart(fields map[string]string, fileField string, file *wire.FileUpload) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %q: %w", name, err)
		}
	}

	if file != nil {
		name := file.Name
		if name == "" {
			name = filepath.Base(file.Path)
		}
		part, err := w.CreateFormFile(fileField, name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part: %w", err)
		}
		f, err := os.Open(file.Path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open %s: %w", file.Path, err)
		}
		defer func() {
			_ = f.Close()
		}()
		if _, err := io.Copy(part, f); err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", file.Path, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
