package storage

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// MIME types for the artifacts this service produces.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// DetectContentType determines the MIME type of an object.
//
// Priority: explicit providedType, then the key's extension, then
// sniffing the first 512 bytes when a reader is supplied, then the
// generic binary type.
func DetectContentType(providedType, filename string, data io.Reader) string {
	if providedType != "" {
		return providedType
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}

	if data != nil {
		buffer := make([]byte, 512)
		n, err := io.ReadFull(data, buffer)
		if err == nil || err == io.EOF || err == io.ErrUnexpectedEOF {
			return http.DetectContentType(buffer[:n])
		}
	}

	return "application/octet-stream"
}

// IsPDF reports whether the content type is a PDF document, ignoring
// parameters such as charset.
func IsPDF(contentType string) bool {
	baseType := strings.TrimSpace(strings.ToLower(strings.Split(contentType, ";")[0]))
	return baseType == "application/pdf"
}
