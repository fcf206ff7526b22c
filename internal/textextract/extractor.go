// Package textextract pulls plain text out of uploaded documents so
// typed invoices skip OCR entirely.
package textextract

import (
	"facturo/internal/domain"
)

// IsSupported reports whether data of the given file type can be
// extracted without OCR.
func IsSupported(t domain.FileType) bool {
	switch t {
	case domain.FileTypePDF, domain.FileTypeDOCX, domain.FileTypeTXT:
		return true
	}
	return false
}

// ForFile extracts plain text from data according to its file type.
func ForFile(t domain.FileType, data []byte) (string, error) {
	switch t {
	case domain.FileTypePDF:
		return fromPDF(data)
	case domain.FileTypeDOCX:
		return fromDOCX(data)
	case domain.FileTypeTXT:
		return fromPlain(data)
	}
	return "", domain.ErrUnsupportedFileType
}
