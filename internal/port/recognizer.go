package port

import "context"

// RecognizeInput is one OCR attempt over an image.
type RecognizeInput struct {
	Image []byte
	// Languages is a Tesseract language spec, e.g. "eng", "fra" or
	// "eng+fra".
	Languages string
}

// TextRecognizer turns an image into plain text.
type TextRecognizer interface {
	Recognize(ctx context.Context, in RecognizeInput) (string, error)
}
