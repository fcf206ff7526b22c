package ocr

import (
	"bytes"
	"image/png"

	"github.com/disintegration/imaging"
)

// Enhance preprocesses an uploaded image for recognition: grayscale,
// a contrast boost and a sharpen pass. Bytes that do not decode as an
// image are returned untouched so the recognizer still gets a chance.
func Enhance(data []byte) []byte {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}

	img = imaging.Grayscale(img)
	img = imaging.AdjustContrast(img, 30)
	img = imaging.Sharpen(img, 1.5)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return data
	}
	return buf.Bytes()
}
