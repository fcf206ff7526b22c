package textextract

import "strings"

// fromPlain trims a UTF-8 BOM and surrounding whitespace.
func fromPlain(data []byte) (string, error) {
	s := strings.TrimPrefix(string(data), "\ufeff")
	return strings.TrimSpace(s), nil
}
