// Package upload reads multipart file uploads into memory with size and
// content-type checks. Reading eagerly means every exit path, success or
// failure, releases the underlying temp file handle in one place.
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

const (
	// largest accepted source image
	MaxImageSize = 10 << 20 // 10 MB

	// largest accepted resume PDF
	MaxResumeSize = 5 << 20 // 5 MB
)

var (
	ErrTooLarge        = errors.New("upload: file exceeds size limit")
	ErrUnsupportedType = errors.New("upload: unsupported file type")
)

var pdfMagic = []byte("%PDF-")

// reads an uploaded image, enforcing the size cap and an image content type
func ReadImage(fh *multipart.FileHeader) ([]byte, error) {
	data, err := read(fh, MaxImageSize)
	if err != nil {
		return nil, err
	}

	switch http.DetectContentType(data) {
	case "image/png", "image/jpeg", "image/webp":
		return data, nil
	}

	return nil, ErrUnsupportedType
}

// reads an uploaded resume, enforcing the size cap and a PDF header
func ReadPDF(fh *multipart.FileHeader) ([]byte, error) {
	data, err := read(fh, MaxResumeSize)
	if err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(data, pdfMagic) {
		return nil, ErrUnsupportedType
	}

	return data, nil
}

func read(fh *multipart.FileHeader, limit int64) ([]byte, error) {
	if fh.Size > limit {
		return nil, ErrTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("upload: failed to open file: %w", err)
	}

	defer f.Close() //nolint:errcheck

	// limit+1 so oversized streams that lied about Size are still caught
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("upload: failed to read file: %w", err)
	}

	if int64(len(data)) > limit {
		return nil, ErrTooLarge
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("upload: empty file")
	}

	return data, nil
}
