package ocr

import (
	"context"
	"log"
	"strings"

	"facturo/internal/domain"
	"facturo/internal/port"
)

// Words whose presence suggests recognized text really is an invoice.
var commonWords = []string{"invoice", "facture", "total", "date", "ref", "price", "qty"}

// Service runs several recognition attempts with different language
// specs and keeps the best-scoring text.
type Service struct {
	recognizer port.TextRecognizer
	languages  []string
}

// NewService builds a multi-attempt OCR service. With no languages
// given it tries English, French and the combined pack.
func NewService(recognizer port.TextRecognizer, languages []string) *Service {
	if len(languages) == 0 {
		languages = []string{"eng", "fra", "eng+fra"}
	}
	return &Service{recognizer: recognizer, languages: languages}
}

// RecognizeBest enhances the image and recognizes it once per language
// spec, scoring each result. Failed attempts are logged and skipped;
// ErrNoTextRecognized is returned when every attempt failed or came
// back empty.
func (s *Service) RecognizeBest(ctx context.Context, image []byte) (string, error) {
	enhanced := Enhance(image)

	best := ""
	bestScore := 0.0
	for _, lang := range s.languages {
		text, err := s.recognizer.Recognize(ctx, port.RecognizeInput{Image: enhanced, Languages: lang})
		if err != nil {
			log.Printf("ocr.Service: attempt with %s failed: %v", lang, err)
			continue
		}
		if score := textConfidence(text); score > bestScore {
			bestScore = score
			best = text
		}
	}

	if strings.TrimSpace(best) == "" {
		return "", domain.ErrNoTextRecognized
	}
	return best, nil
}

// textConfidence scores recognized text by its alphanumeric ratio and
// the presence of common invoice vocabulary, weighted by length so a
// longer plausible text beats a short clean one.
func textConfidence(text string) float64 {
	if len(text) == 0 {
		return 0
	}

	alnum := 0
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			alnum++
		}
	}
	alnumRatio := float64(alnum) / float64(len([]rune(text)))

	lower := strings.ToLower(text)
	found := 0
	for _, w := range commonWords {
		if strings.Contains(lower, w) {
			found++
		}
	}
	wordScore := float64(found) / float64(len(commonWords))

	return (alnumRatio*0.5 + wordScore*0.5) * float64(len([]rune(text)))
}
