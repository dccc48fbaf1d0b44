package portal

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/mshakil/ictportal/internal/common"
)

// Upload guards. Oversized or mistyped files are rejected before any state
// is touched; accepted ones are embedded as data URIs, there is no real
// file storage.
const (
	MaxPhotoBytes = 1 << 20     // 1 MB
	MaxCVBytes    = 2 * 1 << 20 // 2 MB
)

var cvExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// ReadPhoto reads an image file and returns it as a data URI. Non-image
// content fails with common.ErrUnsupportedFile, oversized files with
// common.ErrFileTooLarge.
func ReadPhoto(path string) (string, error) {
	data, err := readLimited(path, MaxPhotoBytes)
	if err != nil {
		return "", err
	}
	mt := detectMIME(data)
	if !strings.HasPrefix(mt, "image/") {
		return "", fmt.Errorf("%w: %s is %s, want an image", common.ErrUnsupportedFile, filepath.Base(path), mt)
	}
	return dataURI(mt, data), nil
}

// ReadCV reads a pdf/doc/docx file and returns it as a data URI. The type
// gate is the file extension, like the original upload picker; content
// detection only supplies the embedded MIME.
func ReadCV(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := cvExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %s, want pdf/doc/docx", common.ErrUnsupportedFile, filepath.Base(path))
	}
	data, err := readLimited(path, MaxCVBytes)
	if err != nil {
		return "", err
	}
	// The stdlib sniffer reports docx archives as plain zip, so go
	// straight to the mimetype library here.
	return dataURI(mimetype.Detect(data).String(), data), nil
}

func readLimited(path string, max int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > max {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", common.ErrFileTooLarge, filepath.Base(path), info.Size(), max)
	}
	return os.ReadFile(path)
}

// detectMIME determines a MIME type using stdlib detection first and
// falling back to the broader mimetype library when ambiguous.
func detectMIME(head []byte) string {
	if len(head) == 0 {
		return "application/octet-stream"
	}
	mt := http.DetectContentType(head)
	if mt != "application/octet-stream" {
		return mt
	}
	return mimetype.Detect(head).String()
}

func dataURI(mime string, data []byte) string {
	// mimetype appends charset parameters that data URIs do not need.
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
