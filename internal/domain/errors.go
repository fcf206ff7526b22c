package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrSessionNotFound      = errors.New("chat session not found")
	ErrRecordNotFound       = errors.New("extracted record not found")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrNoTextRecognized     = errors.New("no text could be recognized in the document")
	ErrRecordNotUsable      = errors.New("extraction produced no usable invoice data")
	ErrUnsupportedExportFmt = errors.New("unsupported export format")
)
